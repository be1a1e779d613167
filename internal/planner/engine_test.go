package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(opts ...Option) (*Engine, *fakeClock) {
	clock := newFakeClock()
	opts = append([]Option{WithClock(clock)}, opts...)
	return NewEngine(opts...), clock
}

func TestAddTask(t *testing.T) {
	e, _ := newTestEngine()

	seen := make(map[ID]bool)
	for i, name := range []string{"Write report", "Review PR", "Lunch"} {
		id, ok := e.AddTask(NewTask{Name: name, Duration: 30, Column: ColumnTodo})
		require.True(t, ok)
		assert.False(t, seen[id], "id %d reused", id)
		seen[id] = true
		assert.Equal(t, i+1, e.Len())
	}

	task, ok := e.Task(e.Snapshot()[0].ID)
	require.True(t, ok)
	assert.Equal(t, "Write report", task.Name)
	assert.Equal(t, 30, task.Duration)
	assert.False(t, task.Completed)
	assert.False(t, task.Editing)
}

func TestAddTaskKeepsNameAsGiven(t *testing.T) {
	e, _ := newTestEngine()

	id, ok := e.AddTask(NewTask{Name: "  padded  ", Column: ColumnTodo})
	require.True(t, ok)

	task, _ := e.Task(id)
	assert.Equal(t, "  padded  ", task.Name)
}

func TestAddTaskRejectsBlankName(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "spaces", input: "   "},
		{name: "tabs and newlines", input: "\t\n "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEngine()
			e.AddTask(NewTask{Name: "existing", Column: ColumnTodo})

			id, ok := e.AddTask(NewTask{Name: tt.input, Duration: 30, Column: ColumnScheduled})
			assert.False(t, ok)
			assert.Zero(t, id)
			assert.Equal(t, 1, e.Len())
		})
	}
}

func TestIDsAreUniqueWithinTheSameMillisecond(t *testing.T) {
	e, clock := newTestEngine()

	var prev ID
	for i := 0; i < 50; i++ {
		id, ok := e.AddTask(NewTask{Name: "same instant", Column: ColumnTodo})
		require.True(t, ok)
		assert.Greater(t, id, prev)
		prev = id
	}

	assert.Equal(t, ID(clock.Now().UnixMilli()+49), prev)
}

func TestRemoveTask(t *testing.T) {
	e, _ := newTestEngine()
	a, _ := e.AddTask(NewTask{Name: "a", Column: ColumnTodo})
	b, _ := e.AddTask(NewTask{Name: "b", Column: ColumnTodo})
	c, _ := e.AddTask(NewTask{Name: "c", Column: ColumnTodo})

	assert.True(t, e.RemoveTask(b))
	assert.False(t, e.RemoveTask(b), "second remove should be a no-op")
	assert.False(t, e.RemoveTask(ID(12345)))

	snap := e.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, a, snap[0].ID)
	assert.Equal(t, c, snap[1].ID)
}

func TestToggleEditMode(t *testing.T) {
	e, _ := newTestEngine()
	id, _ := e.AddTask(NewTask{Name: "a", Column: ColumnTodo})

	require.True(t, e.ToggleEditMode(id))
	task, _ := e.Task(id)
	assert.True(t, task.Editing)

	require.True(t, e.ToggleEditMode(id))
	task, _ = e.Task(id)
	assert.False(t, task.Editing, "toggling twice restores the original value")

	assert.False(t, e.ToggleEditMode(ID(99)))
}

func TestRenameTask(t *testing.T) {
	tests := []struct {
		name        string
		editingFrom bool
		newName     string
	}{
		{name: "from view mode", editingFrom: false, newName: "X"},
		{name: "from edit mode", editingFrom: true, newName: "X"},
		{name: "empty name accepted", editingFrom: true, newName: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEngine()
			id, _ := e.AddTask(NewTask{Name: "old", Column: ColumnTodo})
			if tt.editingFrom {
				e.ToggleEditMode(id)
			}

			require.True(t, e.RenameTask(id, tt.newName))
			task, _ := e.Task(id)
			assert.Equal(t, tt.newName, task.Name)
			assert.False(t, task.Editing)
		})
	}
}

func TestRenameTaskUnknownID(t *testing.T) {
	e, _ := newTestEngine()
	id, _ := e.AddTask(NewTask{Name: "old", Column: ColumnTodo})
	e.ToggleEditMode(id)

	assert.False(t, e.RenameTask(id+1, "new"))

	task, _ := e.Task(id)
	assert.Equal(t, "old", task.Name)
	assert.True(t, task.Editing, "missing id must not touch other tasks")
}

func TestSnapshotIsIndependent(t *testing.T) {
	e, _ := newTestEngine()
	id, _ := e.AddTask(NewTask{Name: "original", Column: ColumnTodo})

	snap := e.Snapshot()
	snap[0].Name = "mutated"
	e.RenameTask(id, "renamed")

	assert.Equal(t, "mutated", snap[0].Name)
	task, _ := e.Task(id)
	assert.Equal(t, "renamed", task.Name)
}

func TestStateChangedEvents(t *testing.T) {
	e, _ := newTestEngine()

	id, _ := e.AddTask(NewTask{Name: "a", Column: ColumnTodo})
	e.AddTask(NewTask{Name: " ", Column: ColumnTodo})
	e.RemoveTask(id)
	e.RemoveTask(id)

	require.Len(t, e.Events(), 2, "only real changes are announced")
	for i := 0; i < 2; i++ {
		ev := <-e.Events()
		assert.Equal(t, EventStateChanged, ev.Kind)
	}
}

func TestEventsNeverBlock(t *testing.T) {
	e, _ := newTestEngine(WithEventBuffer(1))

	for i := 0; i < 10; i++ {
		e.AddTask(NewTask{Name: "a", Column: ColumnTodo})
	}

	assert.Equal(t, 10, e.Len())
	assert.Len(t, e.Events(), 1)
}

func TestSeed(t *testing.T) {
	e, _ := newTestEngine()

	added := e.Seed([]NewTask{
		{Name: "one", Column: ColumnTodo},
		{Name: "", Column: ColumnTodo},
		{Name: "two", Column: ColumnDetailed, Details: "notes"},
	})

	assert.Equal(t, 2, added)
	assert.Equal(t, 2, e.Len())
}

// Mirrors the example scenario: add, rejected add, remove.
func TestExampleScenario(t *testing.T) {
	e, _ := newTestEngine()
	require.Equal(t, 0, e.Len())

	first, ok := e.AddTask(NewTask{Name: "Write report", Duration: 30, Column: ColumnScheduled, Time: "14:00"})
	require.True(t, ok)
	assert.Equal(t, 1, e.Len())

	_, ok = e.AddTask(NewTask{Name: "", Duration: 30, Column: ColumnScheduled})
	assert.False(t, ok)
	assert.Equal(t, 1, e.Len())

	e.RemoveTask(first)
	assert.Equal(t, 0, e.Len())
}
