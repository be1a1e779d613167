package planner

import "sort"

// Board groups the three column views derived from one snapshot.
type Board struct {
	Scheduled []Task
	Detailed  []Task
	Todo      []Task
}

func filterColumn(tasks []Task, col Column) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Column == col {
			out = append(out, t)
		}
	}
	return out
}

// ScheduledView returns the scheduled tasks ordered by time. Tasks without
// a time come first; equal times keep insertion order.
func ScheduledView(tasks []Task) []Task {
	out := filterColumn(tasks, ColumnScheduled)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time < out[j].Time
	})
	return out
}

// DetailedView returns the detailed tasks in insertion order.
func DetailedView(tasks []Task) []Task {
	return filterColumn(tasks, ColumnDetailed)
}

// TodoView returns the TODO tasks in insertion order.
func TodoView(tasks []Task) []Task {
	return filterColumn(tasks, ColumnTodo)
}

// Views derives every column view from tasks.
func Views(tasks []Task) Board {
	return Board{
		Scheduled: ScheduledView(tasks),
		Detailed:  DetailedView(tasks),
		Todo:      TodoView(tasks),
	}
}

// Column returns the view for col.
func (b Board) Column(col Column) []Task {
	switch col {
	case ColumnScheduled:
		return b.Scheduled
	case ColumnDetailed:
		return b.Detailed
	case ColumnTodo:
		return b.Todo
	default:
		return nil
	}
}

// TotalMinutes sums the durations in col.
func (b Board) TotalMinutes(col Column) int {
	total := 0
	for _, t := range b.Column(col) {
		total += t.Duration
	}
	return total
}
