package planner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColumn(t *testing.T) {
	tests := []struct {
		in      string
		want    Column
		wantErr bool
	}{
		{in: "scheduled", want: ColumnScheduled},
		{in: "Scheduled", want: ColumnScheduled},
		{in: "予定", want: ColumnScheduled},
		{in: "DETAILED", want: ColumnDetailed},
		{in: "詳細", want: ColumnDetailed},
		{in: "todo", want: ColumnTodo},
		{in: " TODO ", want: ColumnTodo},
		{in: "later", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColumn(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
		})
	}
}

func TestColumnNextWraps(t *testing.T) {
	assert.Equal(t, ColumnDetailed, ColumnScheduled.Next())
	assert.Equal(t, ColumnTodo, ColumnDetailed.Next())
	assert.Equal(t, ColumnScheduled, ColumnTodo.Next())
	assert.Equal(t, ColumnScheduled, Column("bogus").Next())
}

func TestSnapDuration(t *testing.T) {
	tests := map[int]int{
		-10: 5,
		0:   5,
		5:   5,
		7:   5,
		8:   10,
		25:  25,
		119: 120,
		500: 120,
	}
	for in, want := range tests {
		assert.Equal(t, want, SnapDuration(in), "SnapDuration(%d)", in)
	}
}

func TestValidClock(t *testing.T) {
	valid := []string{"", "00:00", "09:30", "23:59"}
	invalid := []string{"9:30", "24:00", "12:60", "ab:cd", "12-30", "12:300"}

	for _, s := range valid {
		assert.True(t, ValidClock(s), s)
	}
	for _, s := range invalid {
		assert.False(t, ValidClock(s), s)
	}
}

func TestTaskString(t *testing.T) {
	assert.Equal(t, "14:00 - Write report (30 min)", Task{Name: "Write report", Duration: 30, Time: "14:00"}.String())
	assert.Equal(t, "Lunch (60 min)", Task{Name: "Lunch", Duration: 60}.String())
}

func TestLoadSeed(t *testing.T) {
	doc := `
tasks:
  - name: Write report
    duration: 30
    column: scheduled
    time: "14:00"
  - name: Design review
    column: 詳細
    details: bring the mockups
  - name: Call the bank
    duration: 7
`
	tasks, err := LoadSeed(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	assert.Equal(t, NewTask{Name: "Write report", Duration: 30, Column: ColumnScheduled, Time: "14:00"}, tasks[0])
	assert.Equal(t, ColumnDetailed, tasks[1].Column)
	assert.Equal(t, DefaultDuration, tasks[1].Duration)
	assert.Equal(t, "bring the mockups", tasks[1].Details)
	assert.Equal(t, ColumnTodo, tasks[2].Column)
	assert.Equal(t, 5, tasks[2].Duration)
}

func TestLoadSeedErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantMsg string
	}{
		{name: "bad column", doc: "tasks:\n  - name: a\n    column: someday\n", wantMsg: "task 1"},
		{name: "bad time", doc: "tasks:\n  - name: a\n  - name: b\n    time: \"25:00\"\n", wantMsg: "task 2"},
		{name: "not yaml", doc: "tasks: [", wantMsg: "parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSeed(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoadSeedEmpty(t *testing.T) {
	tasks, err := LoadSeed(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
