package ui

import (
	"github.com/adriangreen/timebox/internal/config"
	"github.com/adriangreen/timebox/internal/planner"
	tea "github.com/charmbracelet/bubbletea"
)

// EngineEventMsg wraps a notification from the task engine
type EngineEventMsg struct {
	Event planner.Event
}

// ConfigReloadedMsg is sent when the config file has been reloaded from disk
type ConfigReloadedMsg struct{}

// ConfigErrorMsg is sent when reloading or watching the config fails
type ConfigErrorMsg struct {
	Err error
}

// WaitForEngineEvent returns a command that waits for the next engine
// notification. The model re-arms it after every EngineEventMsg.
func WaitForEngineEvent(engine *planner.Engine) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-engine.Events()
		if !ok {
			return nil
		}
		return EngineEventMsg{Event: ev}
	}
}

// WaitForConfigReload returns a command that waits for config to be reloaded
// and sends a ConfigReloadedMsg when that happens
func WaitForConfigReload(manager *config.ConfigManager) tea.Cmd {
	return func() tea.Msg {
		<-manager.ReloadEvents()
		return ConfigReloadedMsg{}
	}
}

// WaitForConfigError returns a command that surfaces config watcher errors
func WaitForConfigError(manager *config.ConfigManager) tea.Cmd {
	return func() tea.Msg {
		err, ok := <-manager.Errors()
		if !ok {
			return nil
		}
		return ConfigErrorMsg{Err: err}
	}
}
