// CSV workload loading. A workload file lists one process per row:
//
//	id,name,arrival,burst,priority
//
// A header row is detected by a non-numeric first field and skipped.

package sim

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ProcessSpec is one parsed workload row, ready to hand to AddProcess.
type ProcessSpec struct {
	ID       int    `yaml:"id"`
	Name     string `yaml:"name"`
	Arrival  int    `yaml:"arrival"`
	Burst    int    `yaml:"burst"`
	Priority int    `yaml:"priority"`
}

// LoadWorkloadCSV reads process specs from a CSV file.
func LoadWorkloadCSV(path string) ([]ProcessSpec, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv file: %w", err)
	}
	defer file.Close()

	return ReadWorkload(file)
}

// ReadWorkload parses process specs from CSV data.
func ReadWorkload(r io.Reader) ([]ProcessSpec, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 5
	reader.TrimLeadingSpace = true

	specs := make([]ProcessSpec, 0)
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading csv at row %d: %w", row, err)
		}

		// Header row: first field is not an integer.
		if row == 0 {
			if _, err := strconv.Atoi(strings.TrimSpace(record[0])); err != nil {
				row++
				continue
			}
		}

		spec, err := parseSpec(record)
		if err != nil {
			return nil, fmt.Errorf("invalid process at row %d: %w", row, err)
		}
		specs = append(specs, spec)
		row++
	}
	return specs, nil
}

func parseSpec(record []string) (ProcessSpec, error) {
	var spec ProcessSpec
	var err error

	if spec.ID, err = strconv.Atoi(strings.TrimSpace(record[0])); err != nil {
		return spec, fmt.Errorf("id: %w", err)
	}
	spec.Name = strings.TrimSpace(record[1])
	if spec.Arrival, err = strconv.Atoi(strings.TrimSpace(record[2])); err != nil {
		return spec, fmt.Errorf("arrival: %w", err)
	}
	if spec.Arrival < 0 {
		return spec, fmt.Errorf("arrival must be >= 0, got %d", spec.Arrival)
	}
	if spec.Burst, err = strconv.Atoi(strings.TrimSpace(record[3])); err != nil {
		return spec, fmt.Errorf("burst: %w", err)
	}
	if spec.Burst < 1 {
		return spec, fmt.Errorf("burst must be >= 1, got %d", spec.Burst)
	}
	if spec.Priority, err = strconv.Atoi(strings.TrimSpace(record[4])); err != nil {
		return spec, fmt.Errorf("priority: %w", err)
	}
	return spec, nil
}

// Submit adds every spec to the scheduler's job pool.
func Submit(s *Scheduler, specs []ProcessSpec) {
	for _, spec := range specs {
		s.AddProcess(spec.ID, spec.Name, spec.Arrival, spec.Burst, spec.Priority)
	}
}
