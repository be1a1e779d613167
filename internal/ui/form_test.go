package ui

import (
	"testing"

	"github.com/adriangreen/timebox/internal/planner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestFormFieldsFollowColumn(t *testing.T) {
	tests := []struct {
		column planner.Column
		want   []formField
	}{
		{planner.ColumnScheduled, []formField{fieldName, fieldDuration, fieldColumn, fieldTime}},
		{planner.ColumnDetailed, []formField{fieldName, fieldDuration, fieldColumn, fieldDetails}},
		{planner.ColumnTodo, []formField{fieldName, fieldDuration, fieldColumn}},
	}

	for _, tt := range tests {
		t.Run(string(tt.column), func(t *testing.T) {
			f := newTaskForm(25)
			f.column = tt.column
			assert.Equal(t, tt.want, f.fields())
		})
	}
}

func TestFormFieldCycling(t *testing.T) {
	f := newTaskForm(25)
	f.column = planner.ColumnTodo

	f.nextField()
	assert.Equal(t, fieldDuration, f.focus)
	f.nextField()
	assert.Equal(t, fieldColumn, f.focus)
	f.nextField()
	assert.Equal(t, fieldName, f.focus, "tab should wrap around")
	f.prevField()
	assert.Equal(t, fieldColumn, f.focus)
}

func TestFormDurationStepper(t *testing.T) {
	f := newTaskForm(25)
	f.focusField(fieldDuration)

	right := tea.KeyMsg{Type: tea.KeyRight}
	left := tea.KeyMsg{Type: tea.KeyLeft}

	f, _ = f.Update(right)
	assert.Equal(t, 30, f.duration)

	for i := 0; i < 30; i++ {
		f, _ = f.Update(right)
	}
	assert.Equal(t, planner.MaxDuration, f.duration)

	for i := 0; i < 30; i++ {
		f, _ = f.Update(left)
	}
	assert.Equal(t, planner.MinDuration, f.duration)
}

func TestFormColumnSelector(t *testing.T) {
	f := newTaskForm(25)
	f.focusField(fieldColumn)

	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, planner.ColumnDetailed, f.column)
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, planner.ColumnScheduled, f.column)
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, planner.ColumnTodo, f.column)
}

func TestFormValueDropsFieldsOfOtherColumns(t *testing.T) {
	f := newTaskForm(25)
	f.name.SetValue("Plan")
	f.details.SetValue("agenda")
	f.clock.SetValue("10:00")

	f.column = planner.ColumnTodo
	v := f.Value()
	assert.Equal(t, "", v.Details)
	assert.Equal(t, "", v.Time)

	f.column = planner.ColumnDetailed
	v = f.Value()
	assert.Equal(t, "agenda", v.Details)
	assert.Equal(t, "", v.Time)

	f.column = planner.ColumnScheduled
	v = f.Value()
	assert.Equal(t, "", v.Details)
	assert.Equal(t, "10:00", v.Time)
	assert.Equal(t, "Plan", v.Name)
	assert.Equal(t, 25, v.Duration)
}

func TestFormValidate(t *testing.T) {
	f := newTaskForm(25)

	f.clock.SetValue("")
	assert.NoError(t, f.Validate())

	f.clock.SetValue("9:30")
	err := f.Validate()
	if assert.Error(t, err) {
		appErr, ok := err.(*AppError)
		assert.True(t, ok)
		assert.Equal(t, ErrorCategoryValidation, appErr.Category)
	}

	// time is ignored outside the scheduled column
	f.column = planner.ColumnTodo
	assert.NoError(t, f.Validate())
}

func TestFormReset(t *testing.T) {
	f := newTaskForm(40)
	f.name.SetValue("Plan")
	f.duration = 90
	f.column = planner.ColumnDetailed
	f.focusField(fieldDetails)

	f.Reset()
	assert.Equal(t, "", f.name.Value())
	assert.Equal(t, 40, f.duration)
	assert.Equal(t, planner.ColumnDetailed, f.column)
	assert.Equal(t, fieldName, f.focus)
}

func TestNewTaskFormSnapsDefault(t *testing.T) {
	assert.Equal(t, planner.DefaultDuration, newTaskForm(0).duration)
	assert.Equal(t, 25, newTaskForm(23).duration)
	assert.Equal(t, planner.MaxDuration, newTaskForm(500).duration)
}
