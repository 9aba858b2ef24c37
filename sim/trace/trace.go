package trace

// Timeline collects tick records during a simulation run.
type Timeline struct {
	Records []TickRecord
}

// NewTimeline creates a Timeline ready for recording.
func NewTimeline() *Timeline {
	return &Timeline{Records: make([]TickRecord, 0)}
}

// Record appends one tick's execution record.
func (tl *Timeline) Record(rec TickRecord) {
	tl.Records = append(tl.Records, rec)
}

// RecordExecution appends a busy tick.
func (tl *Timeline) RecordExecution(time int64, processID int, name string) {
	tl.Record(TickRecord{Time: time, ProcessID: processID, Name: name})
}

// RecordIdle appends an idle tick.
func (tl *Timeline) RecordIdle(time int64) {
	tl.Record(TickRecord{Time: time, Idle: true})
}

// BusyTicks returns the number of recorded ticks that executed a process.
func (tl *Timeline) BusyTicks() int64 {
	var busy int64
	for _, rec := range tl.Records {
		if !rec.Idle {
			busy++
		}
	}
	return busy
}

// Segments compacts the timeline into maximal same-process runs, the shape
// a Gantt chart renders directly. Safe for nil or empty timelines.
func (tl *Timeline) Segments() []Segment {
	if tl == nil || len(tl.Records) == 0 {
		return nil
	}
	segments := make([]Segment, 0)
	cur := Segment{
		Name:      tl.Records[0].Name,
		ProcessID: tl.Records[0].ProcessID,
		Idle:      tl.Records[0].Idle,
		Start:     tl.Records[0].Time,
		End:       tl.Records[0].Time + 1,
	}
	for _, rec := range tl.Records[1:] {
		same := rec.Idle == cur.Idle && (rec.Idle || rec.ProcessID == cur.ProcessID)
		if same && rec.Time == cur.End {
			cur.End = rec.Time + 1
			continue
		}
		segments = append(segments, cur)
		cur = Segment{Name: rec.Name, ProcessID: rec.ProcessID, Idle: rec.Idle, Start: rec.Time, End: rec.Time + 1}
	}
	return append(segments, cur)
}
