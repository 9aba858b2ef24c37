package sim

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_IdempotentWithoutTick(t *testing.T) {
	s := NewScheduler()
	s.SetAlgorithm("RR")
	s.SetTimeQuantum(2)
	s.AddProcess(1, "P1", 0, 4, 1)
	s.AddProcess(2, "P2", 1, 2, 0)
	s.AddProcess(3, "P3", 5, 1, 2)

	s.Tick()
	s.Tick()

	first := s.Snapshot()
	second := s.Snapshot()
	assert.Equal(t, first, second)
}

func TestSnapshot_DoesNotAliasEngineState(t *testing.T) {
	s := NewScheduler()
	s.AddProcess(1, "P1", 0, 3, 1)
	s.AddProcess(2, "P2", 0, 3, 1)
	s.Tick()

	snap := s.Snapshot()
	require.Len(t, snap.ReadyQueue, 1)
	snap.ReadyQueue[0].Remaining = 99
	snap.CPUProcess.Remaining = 99

	fresh := s.Snapshot()
	assert.NotEqual(t, 99, fresh.ReadyQueue[0].Remaining)
	assert.NotEqual(t, 99, fresh.CPUProcess.Remaining)
}

func TestSnapshot_JSONShape(t *testing.T) {
	s := NewScheduler()
	s.SetAlgorithm("RR")
	s.SetTimeQuantum(2)
	s.AddProcess(1, "P1", 0, 3, 2)
	s.AddProcess(2, "P2", 0, 2, 1)
	s.AddProcess(3, "P3", 9, 1, 0)
	s.Tick()

	data, err := json.Marshal(s.Snapshot())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	for _, key := range []string{"time", "algorithm", "cpu_process", "last_executed", "ready_queue", "job_pool", "finished"} {
		assert.Contains(t, decoded, key)
	}

	cpu := decoded["cpu_process"].(map[string]any)
	assert.Equal(t, float64(1), cpu["id"])
	assert.Equal(t, "P1", cpu["name"])
	assert.Equal(t, float64(2), cpu["remaining"])
	assert.Equal(t, float64(1), cpu["quantum_used"])

	ready := decoded["ready_queue"].([]any)
	require.Len(t, ready, 1)
	entry := ready[0].(map[string]any)
	for _, key := range []string{"id", "name", "remaining", "priority", "age_counter"} {
		assert.Contains(t, entry, key)
	}

	pool := decoded["job_pool"].([]any)
	require.Len(t, pool, 1)
	assert.Equal(t, float64(9), pool[0].(map[string]any)["arrival"])
}

func TestSnapshot_NullsWhenIdle(t *testing.T) {
	s := NewScheduler()
	s.AddProcess(1, "P1", 5, 1, 0)
	s.Tick()

	data, err := json.Marshal(s.Snapshot())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Nil(t, decoded["cpu_process"])
	assert.Nil(t, decoded["last_executed"])
}

func TestSnapshot_LastExecutedSurvivesCompletion(t *testing.T) {
	s := NewScheduler()
	s.AddProcess(1, "P1", 0, 1, 0)
	s.Tick()

	// P1 finished during the tick, so the CPU slot is empty, but the
	// snapshot still reports what actually ran.
	snap := s.Snapshot()
	require.Nil(t, snap.CPUProcess)
	require.NotNil(t, snap.LastExecuted)
	assert.Equal(t, 1, snap.LastExecuted.ID)
	assert.Equal(t, "P1", snap.LastExecuted.Name)
}

func TestSnapshot_FinishedInCompletionOrder(t *testing.T) {
	s := NewScheduler()
	s.SetAlgorithm("SJF")
	s.AddProcess(1, "P1", 0, 6, 1)
	s.AddProcess(2, "P2", 1, 1, 1)
	s.AddProcess(3, "P3", 1, 3, 1)

	for !s.IsFinished() {
		s.Tick()
	}

	snap := s.Snapshot()
	ids := make([]int, 0, len(snap.Finished))
	for _, f := range snap.Finished {
		ids = append(ids, f.ID)
	}
	assert.Equal(t, []int{1, 2, 3}, ids)
}
