package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// renderHelpOverlay renders the full key reference built from the active key map
func (m Model) renderHelpOverlay() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString(titleStyle.Render("⏱ AI Time Boxing Help"))
	b.WriteString("\n\n")

	helpWidth := 70
	if m.width <= 60 {
		helpWidth = m.width - 4
	} else if m.width <= 80 {
		helpWidth = m.width - 10
	}
	if helpWidth < 30 {
		helpWidth = 30
	}

	k := m.keyMap
	ks := m.styles.Key

	// Board navigation
	b.WriteString(formatTableRow(ks, bindingKey(k.Up), "Move up", bindingKey(k.Down), "Move down", helpWidth))
	b.WriteString(formatTableRow(ks, bindingKey(k.Left), "Previous column", bindingKey(k.Right), "Next column", helpWidth))
	b.WriteString("\n")

	// Task operations
	b.WriteString(formatCompactKey(ks, bindingKey(k.Add), "Open the add-task form", helpWidth))
	b.WriteString(formatCompactKey(ks, bindingKey(k.Edit), "Rename the selected task inline", helpWidth))
	b.WriteString(formatCompactKey(ks, bindingKey(k.Delete), "Delete the selected task", helpWidth))
	b.WriteString(formatTableRow(ks, bindingKey(k.Suggest), "Ask the AI assistant", bindingKey(k.Cancel), "Cancel pending suggestions", helpWidth))
	b.WriteString("\n")

	// Form and rename
	b.WriteString(formatTableRow(ks, bindingKey(k.NextField), "Next form field", bindingKey(k.PrevField), "Previous form field", helpWidth))
	b.WriteString(formatCompactKey(ks, "←/→", "Adjust duration (5 min steps) or category", helpWidth))
	b.WriteString(formatTableRow(ks, bindingKey(k.Submit), "Add task / save name", bindingKey(k.Back), "Back / cancel rename", helpWidth))
	b.WriteString("\n")

	b.WriteString(formatTableRow(ks, bindingKey(k.Help), "Toggle this help", bindingKey(k.Quit), "Quit application", helpWidth))
	b.WriteString("\n")

	promptStyle := lipgloss.NewStyle().Align(lipgloss.Center)
	b.WriteString(promptStyle.Render(fmt.Sprintf("Press '%s' or 'esc' to close help", bindingKey(k.Help))))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Width(helpWidth).
		Align(lipgloss.Center)

	wrapperStyle := lipgloss.NewStyle().
		Width(max(m.width, helpWidth+2)).
		Align(lipgloss.Center)

	return wrapperStyle.Render(boxStyle.Render(b.String()))
}

// bindingKey returns the label shown for a binding
func bindingKey(b key.Binding) string {
	if k := b.Help().Key; k != "" {
		return k
	}
	if keys := b.Keys(); len(keys) > 0 {
		return keys[0]
	}
	return ""
}

// formatCompactKey formats a single help item on its own centered line
func formatCompactKey(ks lipgloss.Style, keyName string, description string, width int) string {
	line := fmt.Sprintf("%s - %s", ks.Render(keyName), description)
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(line) + "\n"
}

// formatTableRow formats two keys and their descriptions side by side
func formatTableRow(ks lipgloss.Style, key1 string, desc1 string, key2 string, desc2 string, width int) string {
	halfWidth := (width - 4) / 2

	left := fmt.Sprintf("%s - %s", ks.Render(key1), desc1)
	right := fmt.Sprintf("%s - %s", ks.Render(key2), desc2)

	row := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(halfWidth).PaddingRight(2).Render(left),
		lipgloss.NewStyle().Width(halfWidth).Render(right))

	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(row) + "\n"
}
