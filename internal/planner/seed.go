package planner

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// SeedFile is the YAML document accepted by LoadSeed.
//
//	tasks:
//	  - name: Write report
//	    duration: 30
//	    column: scheduled
//	    time: "14:00"
type SeedFile struct {
	Tasks []SeedTask `yaml:"tasks"`
}

// SeedTask is one entry of a seed file.
type SeedTask struct {
	Name     string `yaml:"name"`
	Duration int    `yaml:"duration"`
	Column   string `yaml:"column"`
	Details  string `yaml:"details"`
	Time     string `yaml:"time"`
}

// LoadSeed parses a seed document. Missing durations default to
// DefaultDuration and missing columns to TODO.
func LoadSeed(r io.Reader) ([]NewTask, error) {
	var doc SeedFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	tasks := make([]NewTask, 0, len(doc.Tasks))
	for i, st := range doc.Tasks {
		col := ColumnTodo
		if st.Column != "" {
			c, err := ParseColumn(st.Column)
			if err != nil {
				return nil, fmt.Errorf("task %d: %w", i+1, err)
			}
			col = c
		}
		if !ValidClock(st.Time) {
			return nil, fmt.Errorf("task %d: invalid time %q, want HH:MM", i+1, st.Time)
		}

		duration := DefaultDuration
		if st.Duration != 0 {
			duration = SnapDuration(st.Duration)
		}

		tasks = append(tasks, NewTask{
			Name:     st.Name,
			Duration: duration,
			Column:   col,
			Details:  st.Details,
			Time:     st.Time,
		})
	}
	return tasks, nil
}

// LoadSeedFile opens path and parses it with LoadSeed.
func LoadSeedFile(path string) ([]NewTask, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()
	return LoadSeed(f)
}
