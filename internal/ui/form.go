package ui

import (
	"fmt"
	"strings"

	"github.com/adriangreen/timebox/internal/planner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// formField identifies an input of the add-task form
type formField int

const (
	fieldName formField = iota
	fieldDuration
	fieldColumn
	fieldDetails
	fieldTime
)

// taskForm holds the draft of a task that has not been added yet
type taskForm struct {
	name    textinput.Model
	details textinput.Model
	clock   textinput.Model

	duration        int
	defaultDuration int
	column          planner.Column
	focus           formField
}

func newTaskForm(defaultDuration int) taskForm {
	if defaultDuration <= 0 {
		defaultDuration = planner.DefaultDuration
	}
	defaultDuration = planner.SnapDuration(defaultDuration)

	name := textinput.New()
	name.Placeholder = "Task name"
	name.CharLimit = 120
	name.Width = 40

	details := textinput.New()
	details.Placeholder = "Task details"
	details.CharLimit = 500
	details.Width = 40

	clock := textinput.New()
	clock.Placeholder = "HH:MM"
	clock.CharLimit = 5
	clock.Width = 6

	f := taskForm{
		name:            name,
		details:         details,
		clock:           clock,
		duration:        defaultDuration,
		defaultDuration: defaultDuration,
		column:          planner.ColumnScheduled,
	}
	f.focusField(fieldName)
	return f
}

// fields lists the inputs visible for the selected column
func (f taskForm) fields() []formField {
	fields := []formField{fieldName, fieldDuration, fieldColumn}
	switch f.column {
	case planner.ColumnDetailed:
		fields = append(fields, fieldDetails)
	case planner.ColumnScheduled:
		fields = append(fields, fieldTime)
	}
	return fields
}

func (f *taskForm) focusField(field formField) tea.Cmd {
	f.focus = field
	f.name.Blur()
	f.details.Blur()
	f.clock.Blur()

	switch field {
	case fieldName:
		return f.name.Focus()
	case fieldDetails:
		return f.details.Focus()
	case fieldTime:
		return f.clock.Focus()
	}
	return nil
}

func (f *taskForm) move(delta int) tea.Cmd {
	fields := f.fields()
	idx := 0
	for i, field := range fields {
		if field == f.focus {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(fields)) % len(fields)
	return f.focusField(fields[idx])
}

func (f *taskForm) nextField() tea.Cmd { return f.move(1) }

func (f *taskForm) prevField() tea.Cmd { return f.move(-1) }

// Update routes a key to the focused field
func (f taskForm) Update(msg tea.KeyMsg) (taskForm, tea.Cmd) {
	var cmd tea.Cmd

	switch f.focus {
	case fieldDuration:
		switch msg.String() {
		case "left", "h", "-":
			f.duration = planner.SnapDuration(f.duration - planner.DurationStep)
		case "right", "l", "+":
			f.duration = planner.SnapDuration(f.duration + planner.DurationStep)
		}
	case fieldColumn:
		switch msg.String() {
		case "left", "h":
			f.column = f.column.Next().Next()
		case "right", "l", " ":
			f.column = f.column.Next()
		}
	case fieldName:
		f.name, cmd = f.name.Update(msg)
	case fieldDetails:
		f.details, cmd = f.details.Update(msg)
	case fieldTime:
		f.clock, cmd = f.clock.Update(msg)
	}

	return f, cmd
}

// Validate checks the inputs the engine does not check itself
func (f taskForm) Validate() error {
	if f.column == planner.ColumnScheduled {
		if t := strings.TrimSpace(f.clock.Value()); !planner.ValidClock(t) {
			return NewValidationError("Invalid time", fmt.Sprintf("%q is not a HH:MM time", t))
		}
	}
	return nil
}

// Value returns the draft as engine input. Details and time are only kept
// for the columns that show them.
func (f taskForm) Value() planner.NewTask {
	t := planner.NewTask{
		Name:     f.name.Value(),
		Duration: f.duration,
		Column:   f.column,
	}
	switch f.column {
	case planner.ColumnDetailed:
		t.Details = f.details.Value()
	case planner.ColumnScheduled:
		t.Time = strings.TrimSpace(f.clock.Value())
	}
	return t
}

// Reset clears the draft after a successful add. The column is kept.
func (f *taskForm) Reset() tea.Cmd {
	f.name.SetValue("")
	f.details.SetValue("")
	f.clock.SetValue("")
	f.duration = f.defaultDuration
	return f.focusField(fieldName)
}

// View renders the form
func (f taskForm) View(styles *Styles, active bool) string {
	var b strings.Builder

	b.WriteString(styles.PanelTitle.Render("Add a new task"))
	b.WriteString("\n")

	label := func(field formField, text string) string {
		if active && f.focus == field {
			return styles.FormFocused.Render("› " + text)
		}
		return styles.FormLabel.Render("  " + text)
	}

	for _, field := range f.fields() {
		switch field {
		case fieldName:
			b.WriteString(label(fieldName, "Name     ") + " " + f.name.View())
		case fieldDuration:
			b.WriteString(label(fieldDuration, "Duration ") + " " + fmt.Sprintf("◀ %3d min ▶", f.duration))
		case fieldColumn:
			b.WriteString(label(fieldColumn, "Category ") + " " + fmt.Sprintf("◀ %s ▶", f.column.Label()))
		case fieldDetails:
			b.WriteString(label(fieldDetails, "Details  ") + " " + f.details.View())
		case fieldTime:
			b.WriteString(label(fieldTime, "Time     ") + " " + f.clock.View())
		}
		b.WriteString("\n")
	}

	if active {
		b.WriteString(styles.Subtle.Render("enter add • tab next field • ←/→ adjust • esc back"))
	} else {
		b.WriteString(styles.Subtle.Render("press a to add a task"))
	}
	return b.String()
}
