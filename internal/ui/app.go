package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/adriangreen/timebox/internal/config"
	"github.com/adriangreen/timebox/internal/debuglog"
	"github.com/adriangreen/timebox/internal/planner"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Focus represents which part of the screen receives key presses
type Focus int

const (
	FocusBoard Focus = iota
	FocusForm
	FocusRename
)

// noticeKind controls how the notice line is styled
type noticeKind int

const (
	noticeInfo noticeKind = iota
	noticeSuccess
	noticeError
)

// Notice texts for the assistant
const (
	noticeSuggestionPending   = "AI assistant: analyzing your tasks and optimizing the schedule..."
	noticeSuggestionReady     = "AI suggestion added: a short break was added to keep you productive."
	noticeSuggestionCancelled = "AI suggestion cancelled."
)

const defaultLogLimit = 200

// Model represents the TUI application state
type Model struct {
	// Services
	ctx           context.Context
	engine        *planner.Engine
	config        *config.Config
	configManager *config.ConfigManager

	// Task data, re-derived from the engine snapshot after every change
	tasks []planner.Task
	board planner.Board

	// View state
	focus   Focus
	column  planner.Column
	cursors map[planner.Column]int

	// Form and inline rename
	form        taskForm
	renameInput textinput.Model
	renamingID  planner.ID

	// Layout
	width  int
	height int
	ready  bool

	helpModel help.Model
	keyMap    KeyMap
	styles    *Styles
	showHelp  bool

	// Notices and log
	notice     string
	noticeKind noticeKind
	logLines   []string
	logLimit   int
}

// NewModel creates a new TUI model. configManager may be nil.
func NewModel(ctx context.Context, engine *planner.Engine, cfg *config.Config, configManager *config.ConfigManager) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg == nil {
		cfg = config.Default()
	}

	rename := textinput.New()
	rename.CharLimit = 120
	rename.Width = 30

	m := Model{
		ctx:           ctx,
		engine:        engine,
		config:        cfg,
		configManager: configManager,
		column:        planner.ColumnScheduled,
		cursors:       make(map[planner.Column]int),
		form:          newTaskForm(cfg.Planner.DefaultDuration),
		renameInput:   rename,
		helpModel:     help.New(),
		keyMap:        NewKeyMap(cfg),
		styles:        NewStyles(cfg.Theme),
		logLimit:      cfg.Planner.LogLimit,
	}
	if m.logLimit <= 0 {
		m.logLimit = defaultLogLimit
	}

	m.refresh()
	return m
}

// Init starts listening for engine and config notifications
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{WaitForEngineEvent(m.engine)}
	if m.configManager != nil {
		cmds = append(cmds, WaitForConfigReload(m.configManager), WaitForConfigError(m.configManager))
	}
	return tea.Batch(cmds...)
}

// refresh re-reads the engine snapshot and re-derives the column views
func (m *Model) refresh() {
	m.tasks = m.engine.Snapshot()
	m.board = planner.Views(m.tasks)

	for _, col := range planner.Columns {
		n := len(m.board.Column(col))
		if m.cursors[col] >= n {
			m.cursors[col] = n - 1
		}
		if m.cursors[col] < 0 {
			m.cursors[col] = 0
		}
	}

	if m.focus == FocusRename {
		if t, ok := m.engine.Task(m.renamingID); !ok || !t.Editing {
			m.endRename()
		}
	}
}

// selectedTask returns the task under the cursor in the active column
func (m Model) selectedTask() (planner.Task, bool) {
	tasks := m.board.Column(m.column)
	i := m.cursors[m.column]
	if i < 0 || i >= len(tasks) {
		return planner.Task{}, false
	}
	return tasks[i], true
}

// selectTask moves the cursor onto the task with the given id
func (m *Model) selectTask(id planner.ID) {
	for _, col := range planner.Columns {
		for i, t := range m.board.Column(col) {
			if t.ID == id {
				m.column = col
				m.cursors[col] = i
				return
			}
		}
	}
}

func (m *Model) moveCursor(delta int) {
	n := len(m.board.Column(m.column))
	if n == 0 {
		return
	}
	i := m.cursors[m.column] + delta
	if i < 0 {
		i = 0
	}
	if i >= n {
		i = n - 1
	}
	m.cursors[m.column] = i
}

func (m *Model) addLogLine(line string) {
	debuglog.Logf("%s", line)
	m.logLines = append(m.logLines, fmt.Sprintf("%s %s", time.Now().Format("15:04:05"), line))
	if len(m.logLines) > m.logLimit {
		m.logLines = m.logLines[len(m.logLines)-m.logLimit:]
	}
}

func (m *Model) setNotice(kind noticeKind, text string) {
	m.notice = text
	m.noticeKind = kind
}

func (m *Model) showError(err error) {
	text := err.Error()
	if appErr, ok := err.(*AppError); ok {
		text = appErr.DisplayMessage()
	}
	m.setNotice(noticeError, text)
	m.addLogLine("Error: " + err.Error())
}

// Update handles incoming messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.helpModel.Width = msg.Width
		return m, nil

	case EngineEventMsg:
		m.refresh()
		switch msg.Event.Kind {
		case planner.EventSuggestionReady:
			m.setNotice(noticeSuccess, noticeSuggestionReady)
			m.addLogLine("Suggestion added")
		case planner.EventSuggestionCancelled:
			m.setNotice(noticeInfo, noticeSuggestionCancelled)
			m.addLogLine("Suggestion cancelled")
		}
		return m, WaitForEngineEvent(m.engine)

	case ConfigReloadedMsg:
		m.applyConfig(m.configManager.GetConfig())
		m.addLogLine("Configuration reloaded")
		return m, WaitForConfigReload(m.configManager)

	case ConfigErrorMsg:
		m.showError(NewParsingError("Config reload failed", "could not apply the new settings", msg.Err))
		return m, WaitForConfigError(m.configManager)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// applyConfig swaps in a reloaded configuration
func (m *Model) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	m.config = cfg
	m.keyMap = NewKeyMap(cfg)
	m.styles = NewStyles(cfg.Theme)
	if cfg.Planner.LogLimit > 0 {
		m.logLimit = cfg.Planner.LogLimit
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Help overlay takes priority
	if m.showHelp {
		if key.Matches(msg, m.keyMap.Help) || key.Matches(msg, m.keyMap.Back) {
			m.showHelp = false
		}
		return m, nil
	}

	switch m.focus {
	case FocusForm:
		return m.handleFormKey(msg)
	case FocusRename:
		return m.handleRenameKey(msg)
	}

	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Help):
		m.showHelp = true

	case key.Matches(msg, m.keyMap.Add):
		m.focus = FocusForm
		return m, m.form.focusField(fieldName)

	case key.Matches(msg, m.keyMap.Up):
		m.moveCursor(-1)

	case key.Matches(msg, m.keyMap.Down):
		m.moveCursor(1)

	case key.Matches(msg, m.keyMap.Left):
		m.column = m.column.Next().Next()

	case key.Matches(msg, m.keyMap.Right):
		m.column = m.column.Next()

	case key.Matches(msg, m.keyMap.Edit):
		return m.startRename()

	case key.Matches(msg, m.keyMap.Delete):
		if t, ok := m.selectedTask(); ok {
			m.engine.RemoveTask(t.ID)
			m.refresh()
			m.addLogLine(fmt.Sprintf("Removed %q", t.Name))
		}

	case key.Matches(msg, m.keyMap.Suggest):
		m.engine.RequestSuggestion(m.ctx)
		m.setNotice(noticeInfo, noticeSuggestionPending)
		m.addLogLine("Suggestion requested")

	case key.Matches(msg, m.keyMap.Cancel):
		if n := m.engine.CancelSuggestions(); n > 0 {
			m.addLogLine(fmt.Sprintf("Cancelled %d pending suggestion(s)", n))
		}
	}

	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Back):
		m.focus = FocusBoard
		m.form.focusField(fieldName)
		m.form.name.Blur()
		return m, nil

	case key.Matches(msg, m.keyMap.NextField):
		return m, m.form.nextField()

	case key.Matches(msg, m.keyMap.PrevField):
		return m, m.form.prevField()

	case key.Matches(msg, m.keyMap.Submit):
		return m.submitForm()
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

// submitForm adds the drafted task. An empty name is silently ignored.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	if err := m.form.Validate(); err != nil {
		m.showError(err)
		return m, nil
	}

	draft := m.form.Value()
	id, ok := m.engine.AddTask(draft)
	if !ok {
		return m, nil
	}

	m.refresh()
	m.selectTask(id)
	m.setNotice(noticeSuccess, fmt.Sprintf("Added %q to %s", draft.Name, draft.Column.Label()))
	m.addLogLine(fmt.Sprintf("Added %q (%d min, %s)", draft.Name, draft.Duration, draft.Column.Label()))
	return m, m.form.Reset()
}

// startRename enters edit mode for the selected task
func (m Model) startRename() (tea.Model, tea.Cmd) {
	t, ok := m.selectedTask()
	if !ok {
		return m, nil
	}
	if !t.Editing {
		m.engine.ToggleEditMode(t.ID)
	}

	m.focus = FocusRename
	m.renamingID = t.ID
	m.renameInput.SetValue(t.Name)
	m.renameInput.CursorEnd()
	cmd := m.renameInput.Focus()
	m.refresh()
	return m, cmd
}

func (m Model) handleRenameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Submit):
		name := m.renameInput.Value()
		if m.engine.RenameTask(m.renamingID, name) {
			m.addLogLine(fmt.Sprintf("Renamed task to %q", name))
		}
		m.endRename()
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keyMap.Back):
		m.engine.ToggleEditMode(m.renamingID)
		m.endRename()
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.renameInput, cmd = m.renameInput.Update(msg)
	return m, cmd
}

func (m *Model) endRename() {
	m.focus = FocusBoard
	m.renamingID = 0
	m.renameInput.Blur()
	m.renameInput.SetValue("")
}

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return m.styles.Info.Render("Initializing timebox...")
	}

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	layout := m.calculateLayout()

	sections := []string{
		m.renderHeader(),
		m.renderForm(layout),
		m.renderColumns(layout),
		m.renderNotice(),
		m.renderLog(layout),
		m.renderStatusBar(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderForm(layout LayoutDimensions) string {
	style := m.styles.Panel
	if m.focus == FocusForm {
		style = m.styles.PanelActive
	}
	return style.Width(layout.FormWidth).Render(m.form.View(m.styles, m.focus == FocusForm))
}

func (m Model) renderColumns(layout LayoutDimensions) string {
	panels := make([]string, 0, len(planner.Columns))
	for _, col := range planner.Columns {
		panels = append(panels, m.renderColumn(col, layout))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, panels...)
}

func columnTitle(col planner.Column) string {
	switch col {
	case planner.ColumnScheduled:
		return "Scheduled tasks"
	case planner.ColumnDetailed:
		return "Detailed tasks"
	default:
		return "TODO list"
	}
}

func (m Model) renderColumn(col planner.Column, layout LayoutDimensions) string {
	active := m.focus != FocusForm && m.column == col

	var b strings.Builder
	title := fmt.Sprintf("%s (%d min)", columnTitle(col), m.board.TotalMinutes(col))
	b.WriteString(m.styles.PanelTitle.Render(title))
	b.WriteString("\n\n")

	tasks := m.board.Column(col)
	if len(tasks) == 0 {
		b.WriteString(m.styles.Subtle.Render("No tasks"))
	}
	for i, t := range tasks {
		selected := active && i == m.cursors[col]
		b.WriteString(m.renderTask(t, selected))
		b.WriteString("\n")
		if col == planner.ColumnDetailed && t.Details != "" {
			b.WriteString(m.styles.Details.Render(t.Details))
			b.WriteString("\n")
		}
	}

	style := m.styles.Panel
	if active {
		style = m.styles.PanelActive
	}
	return style.Width(layout.ColumnWidth).Height(layout.ColumnHeight).Render(b.String())
}

func (m Model) renderTask(t planner.Task, selected bool) string {
	if t.Editing && m.focus == FocusRename && t.ID == m.renamingID {
		return m.styles.TaskEditing.Render("✎ ") + m.renameInput.View()
	}

	cursor := "  "
	style := m.styles.TaskNormal
	switch {
	case selected:
		cursor = "› "
		style = m.styles.TaskSelected
	case t.Completed:
		style = m.styles.TaskDone
	case t.Editing:
		style = m.styles.TaskEditing
	}
	return cursor + style.Render(t.String())
}

func (m Model) renderNotice() string {
	if m.notice == "" {
		return ""
	}
	switch m.noticeKind {
	case noticeError:
		return m.styles.Error.Render(m.notice)
	case noticeSuccess:
		return m.styles.Success.Render(m.notice)
	default:
		return m.styles.Info.Render(m.notice)
	}
}

func (m Model) renderLog(layout LayoutDimensions) string {
	if layout.LogLines <= 0 || len(m.logLines) == 0 {
		return ""
	}
	lines := m.logLines
	if len(lines) > layout.LogLines {
		lines = lines[len(lines)-layout.LogLines:]
	}
	return m.styles.Subtle.Render(strings.Join(lines, "\n"))
}
