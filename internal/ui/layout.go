package ui

import (
	"fmt"
	"strings"

	"github.com/adriangreen/timebox/internal/planner"
	"github.com/charmbracelet/bubbles/key"
)

const (
	headerHeight    = 1
	statusBarHeight = 1
	noticeHeight    = 1
	panelBorder     = 2
	minColumnWidth  = 20
	minColumnHeight = 6
	maxLogLines     = 5
)

// LayoutDimensions holds the calculated dimensions for each panel
type LayoutDimensions struct {
	// Total dimensions
	Width  int
	Height int

	// Add-task form (top)
	FormWidth  int
	FormHeight int

	// Task columns, side by side
	ColumnWidth  int
	ColumnHeight int

	// Activity log lines shown under the notice
	LogLines int
}

// formHeight returns the number of rows the form panel occupies
func (m Model) formHeight() int {
	// title, hint and one row per visible field
	return len(m.form.fields()) + 2 + panelBorder
}

// calculateLayout computes the layout dimensions based on terminal size
func (m Model) calculateLayout() LayoutDimensions {
	layout := LayoutDimensions{
		Width:  m.width,
		Height: m.height,
	}

	layout.FormWidth = m.width - panelBorder
	if layout.FormWidth < minColumnWidth {
		layout.FormWidth = minColumnWidth
	}
	layout.FormHeight = m.formHeight()

	// Three columns share the width, borders included
	columnWidth := m.width/len(planner.Columns) - panelBorder
	if columnWidth < minColumnWidth {
		columnWidth = minColumnWidth
	}
	layout.ColumnWidth = columnWidth

	remaining := m.height - headerHeight - statusBarHeight - noticeHeight - layout.FormHeight

	logLines := remaining / 4
	if logLines > maxLogLines {
		logLines = maxLogLines
	}
	if logLines < 0 {
		logLines = 0
	}
	layout.LogLines = logLines

	columnHeight := remaining - logLines - panelBorder
	if columnHeight < minColumnHeight {
		columnHeight = minColumnHeight
	}
	layout.ColumnHeight = columnHeight

	return layout
}

// renderHeader renders the title with task counts
func (m Model) renderHeader() string {
	var parts []string
	for _, col := range planner.Columns {
		if n := len(m.board.Column(col)); n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, strings.ToLower(col.Label())))
		}
	}
	if n := m.engine.Pending(); n > 0 {
		parts = append(parts, fmt.Sprintf("%d suggestion(s) pending", n))
	}

	title := "⏱ AI Time Boxing"
	if len(parts) > 0 {
		title += "  " + strings.Join(parts, " | ")
	}
	return m.styles.Header.Width(max(m.width, 1)).Render(title)
}

// renderStatusBar renders the bottom status bar with keyboard hints
func (m Model) renderStatusBar() string {
	var helpText string
	switch m.focus {
	case FocusForm:
		helpText = m.helpModel.ShortHelpView([]key.Binding{
			m.keyMap.NextField, m.keyMap.PrevField, m.keyMap.Submit, m.keyMap.Back,
		})
	case FocusRename:
		helpText = m.helpModel.ShortHelpView([]key.Binding{m.keyMap.Submit, m.keyMap.Back})
	default:
		helpText = m.helpModel.ShortHelpView(m.keyMap.ShortHelp())
	}
	return m.styles.StatusBar.Width(max(m.width, 1)).Render(helpText)
}
