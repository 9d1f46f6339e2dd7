// Package house holds the household reference data and the volatile
// in-memory state the assistant's tools operate on.
package house

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Data is the static roster/chore document, loaded once at startup.
// It never changes for the lifetime of the process.
type Data struct {
	Members          []string          `json:"members"`
	CleaningTasks    []string          `json:"cleaning_tasks"`
	DishDuty         map[string]string `json:"dish_duty"`
	CleaningSchedule string            `json:"cleaning_schedule,omitempty"`
}

// LoadData reads the house document at path. A missing file yields an empty
// Data so the assistant can still run (with no roster) on a fresh install.
func LoadData(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Data{}, nil
		}
		return nil, fmt.Errorf("read house data %s: %w", path, err)
	}

	var d Data
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("parse house data %s: %w", path, err)
	}
	return &d, nil
}

// ScheduleText returns the cleaning schedule for display. The precomputed
// string wins when present; otherwise tasks are assigned round-robin over
// the roster.
func (d *Data) ScheduleText() string {
	if d.CleaningSchedule != "" {
		return d.CleaningSchedule
	}
	if len(d.CleaningTasks) == 0 {
		return "No cleaning tasks configured."
	}

	var b strings.Builder
	for i, task := range d.CleaningTasks {
		if i > 0 {
			b.WriteByte('\n')
		}
		if len(d.Members) > 0 {
			fmt.Fprintf(&b, "%s — %s", task, d.Members[i%len(d.Members)])
		} else {
			b.WriteString(task)
		}
	}
	return b.String()
}
