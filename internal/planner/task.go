package planner

import (
	"fmt"
	"strings"
)

// ID identifies a task. IDs are derived from the creation time in
// milliseconds and are strictly increasing within an engine.
type ID int64

// Column is the category a task is filed under.
type Column string

// Column constants
const (
	ColumnScheduled Column = "scheduled"
	ColumnDetailed  Column = "detailed"
	ColumnTodo      Column = "todo"
)

// Columns lists every column in display order.
var Columns = []Column{ColumnScheduled, ColumnDetailed, ColumnTodo}

// Duration limits in minutes
const (
	MinDuration     = 5
	MaxDuration     = 120
	DurationStep    = 5
	DefaultDuration = 25
)

// Task is a single time-boxed unit of work.
type Task struct {
	ID        ID     `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Duration  int    `json:"duration" yaml:"duration"`
	Completed bool   `json:"completed" yaml:"completed"`
	Column    Column `json:"column" yaml:"column"`
	Details   string `json:"details,omitempty" yaml:"details,omitempty"`
	Time      string `json:"time,omitempty" yaml:"time,omitempty"`

	// Editing is UI mode, not task data.
	Editing bool `json:"-" yaml:"-"`
}

// NewTask holds the fields supplied when a task is created.
type NewTask struct {
	Name     string
	Duration int
	Column   Column
	Details  string
	Time     string
}

// Label returns the human readable column name.
func (c Column) Label() string {
	switch c {
	case ColumnScheduled:
		return "Scheduled"
	case ColumnDetailed:
		return "Detailed"
	case ColumnTodo:
		return "TODO"
	default:
		return string(c)
	}
}

// IsValid checks if the column is one of the defined constants
func (c Column) IsValid() bool {
	switch c {
	case ColumnScheduled, ColumnDetailed, ColumnTodo:
		return true
	default:
		return false
	}
}

// Next returns the column after c in display order, wrapping around.
func (c Column) Next() Column {
	for i, col := range Columns {
		if col == c {
			return Columns[(i+1)%len(Columns)]
		}
	}
	return ColumnScheduled
}

// ParseColumn accepts the English column names in any case as well as the
// Japanese board labels (予定, 詳細, TODO).
func ParseColumn(s string) (Column, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scheduled", "schedule", "予定":
		return ColumnScheduled, nil
	case "detailed", "details", "詳細":
		return ColumnDetailed, nil
	case "todo":
		return ColumnTodo, nil
	default:
		return "", fmt.Errorf("unknown column %q", s)
	}
}

// SnapDuration clamps d into [MinDuration, MaxDuration] and rounds it to the
// nearest DurationStep.
func SnapDuration(d int) int {
	if d <= MinDuration {
		return MinDuration
	}
	if d >= MaxDuration {
		return MaxDuration
	}
	return ((d + DurationStep/2) / DurationStep) * DurationStep
}

// ValidClock reports whether s is empty or a 24h "HH:MM" time.
func ValidClock(s string) bool {
	if s == "" {
		return true
	}
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	for i, r := range s {
		if i == 2 {
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	hours := int(s[0]-'0')*10 + int(s[1]-'0')
	minutes := int(s[3]-'0')*10 + int(s[4]-'0')
	return hours < 24 && minutes < 60
}

// String formats the task the way the board shows it.
func (t Task) String() string {
	var b strings.Builder
	if t.Time != "" {
		b.WriteString(t.Time)
		b.WriteString(" - ")
	}
	fmt.Fprintf(&b, "%s (%d min)", t.Name, t.Duration)
	return b.String()
}
