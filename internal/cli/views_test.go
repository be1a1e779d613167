package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adriangreen/timebox/internal/planner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSeed = `tasks:
  - name: Afternoon review
    duration: 30
    column: scheduled
    time: "14:00"
  - name: Morning standup
    duration: 15
    column: scheduled
    time: "09:00"
  - name: Write design doc
    duration: 60
    column: detailed
    details: cover the storage layer
  - name: Buy milk
    column: todo
`

// runCommand executes the root command with an isolated config path
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	args = append([]string{"--config", filepath.Join(dir, "config.json")}, args...)

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestViewsCommand(t *testing.T) {
	out, err := runCommand(t, "views", "--seed", writeSeed(t, testSeed))
	require.NoError(t, err)

	assert.Contains(t, out, "Scheduled")
	assert.Contains(t, out, "Detailed")
	assert.Contains(t, out, "TODO")
	assert.Contains(t, out, "cover the storage layer")

	// scheduled column is sorted by time
	standup := strings.Index(out, "Morning standup")
	review := strings.Index(out, "Afternoon review")
	require.True(t, standup >= 0 && review >= 0)
	assert.Less(t, standup, review)

	// todo entry got the default duration
	assert.Contains(t, out, "Buy milk")
	assert.Contains(t, out, "25")
}

func TestViewsCommandWithSuggestion(t *testing.T) {
	out, err := runCommand(t, "views", "--suggest", "--suggest-delay", "5ms", "--lang", "ja")
	require.NoError(t, err)
	assert.Contains(t, out, planner.SuggestionNameJA)
}

func TestViewsCommandSuggestionTimeout(t *testing.T) {
	_, err := runCommand(t, "views", "--suggest", "--suggest-delay", "1h", "--timeout", "20ms")
	require.Error(t, err)
}

func TestViewsCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "unknown language",
			args: []string{"views", "--lang", "fr"},
			want: "fr",
		},
		{
			name: "missing seed file",
			args: []string{"views", "--seed", filepath.Join(t.TempDir(), "missing.yaml")},
			want: "failed to load seed file",
		},
		{
			name: "bad column in seed",
			args: []string{"views", "--seed", writeSeed(t, "tasks:\n  - name: x\n    column: someday\n")},
			want: "task 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCommand(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRenderBoardEmpty(t *testing.T) {
	var out bytes.Buffer
	renderBoard(&out, planner.Views(nil))

	text := out.String()
	assert.Contains(t, text, "Scheduled")
	// go-pretty upper-cases footers
	assert.Contains(t, strings.ToUpper(text), "TOTAL")
}
