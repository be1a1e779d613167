package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Environment variable that overrides the config file location
const EnvConfigPath = "TIMEBOX_CONFIG"

// Config represents the planner configuration
type Config struct {
	KeyBindings  map[string]string `json:"keyBindings"`
	Theme        ThemeConfig       `json:"theme"`
	Planner      PlannerConfig     `json:"planner"`
	DebugLogPath string            `json:"debugLogPath,omitempty"`

	// Path is the file the configuration was read from, if any.
	Path string `json:"-"`
}

// ThemeConfig defines color and styling options
type ThemeConfig struct {
	PrimaryColor string `json:"primaryColor"`
	AccentColor  string `json:"accentColor"`
	SuccessColor string `json:"successColor"`
	ErrorColor   string `json:"errorColor"`
	WarningColor string `json:"warningColor"`
	SubtleColor  string `json:"subtleColor"`
}

// PlannerConfig defines task and assistant defaults
type PlannerConfig struct {
	DefaultDuration   int    `json:"defaultDuration"`
	SuggestionDelayMs int    `json:"suggestionDelayMs"`
	Language          string `json:"language"`
	LogLimit          int    `json:"logLimit"`
}

// SuggestionDelay returns the configured assistant delay.
func (c *Config) SuggestionDelay() time.Duration {
	return time.Duration(c.Planner.SuggestionDelayMs) * time.Millisecond
}

// DefaultPath returns the config file location: $TIMEBOX_CONFIG, or
// timebox/config.json under the user config directory.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config dir: %w", err)
	}
	return filepath.Join(dir, "timebox", "config.json"), nil
}

// Load builds the configuration from defaults and the file at path. An
// empty path means DefaultPath. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}
	cfg.Path = path

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}

	if err := mergeConfigFile(cfg, path); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// mergeConfigFile loads a config file and merges its non-zero values into target
func mergeConfigFile(target *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var partial Config
	if err := json.Unmarshal(data, &partial); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	for action, k := range partial.KeyBindings {
		if k != "" {
			target.KeyBindings[action] = k
		}
	}

	mergeString(&target.Theme.PrimaryColor, partial.Theme.PrimaryColor)
	mergeString(&target.Theme.AccentColor, partial.Theme.AccentColor)
	mergeString(&target.Theme.SuccessColor, partial.Theme.SuccessColor)
	mergeString(&target.Theme.ErrorColor, partial.Theme.ErrorColor)
	mergeString(&target.Theme.WarningColor, partial.Theme.WarningColor)
	mergeString(&target.Theme.SubtleColor, partial.Theme.SubtleColor)

	if partial.Planner.DefaultDuration > 0 {
		target.Planner.DefaultDuration = partial.Planner.DefaultDuration
	}
	if partial.Planner.SuggestionDelayMs > 0 {
		target.Planner.SuggestionDelayMs = partial.Planner.SuggestionDelayMs
	}
	if partial.Planner.LogLimit > 0 {
		target.Planner.LogLimit = partial.Planner.LogLimit
	}
	mergeString(&target.Planner.Language, partial.Planner.Language)
	mergeString(&target.DebugLogPath, partial.DebugLogPath)

	return nil
}

func mergeString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// defaultConfig returns the default configuration
func defaultConfig() *Config {
	return &Config{
		KeyBindings: map[string]string{
			"quit":    "q",
			"help":    "?",
			"add":     "a",
			"edit":    "e",
			"delete":  "x",
			"suggest": "s",
		},
		Theme: ThemeConfig{
			PrimaryColor: "#7d56f4",
			AccentColor:  "#F780E2",
			SuccessColor: "#04B575",
			ErrorColor:   "#EF4146",
			WarningColor: "#FF9800",
			SubtleColor:  "#666666",
		},
		Planner: PlannerConfig{
			DefaultDuration:   25,
			SuggestionDelayMs: 2000,
			Language:          "en",
			LogLimit:          200,
		},
	}
}

// Default returns a fresh default configuration.
func Default() *Config {
	return defaultConfig()
}

// ConfigManager handles configuration with file watching capabilities
type ConfigManager struct {
	config     *Config
	path       string
	watcher    *Watcher
	reloadChan chan struct{}
	errChan    chan error
	mu         sync.RWMutex
}

// NewConfigManager loads the configuration at path (or the default path)
func NewConfigManager(path string) (*ConfigManager, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	return &ConfigManager{
		config:     cfg,
		path:       cfg.Path,
		reloadChan: make(chan struct{}, 1),
		errChan:    make(chan error, 1),
	}, nil
}

// GetConfig returns the current configuration (thread-safe)
func (cm *ConfigManager) GetConfig() *Config {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.config
}

// Reload loads the configuration from disk
func (cm *ConfigManager) Reload() error {
	cfg, err := Load(cm.path)
	if err != nil {
		return fmt.Errorf("failed to reload config: %w", err)
	}

	cm.mu.Lock()
	cm.config = cfg
	cm.mu.Unlock()
	return nil
}

// StartWatcher begins watching the config file for changes with a 300ms debounce
func (cm *ConfigManager) StartWatcher(ctx context.Context) error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.watcher != nil {
		return fmt.Errorf("watcher already started")
	}
	if cm.path == "" {
		return fmt.Errorf("no config path to watch")
	}

	watcher, err := NewWatcher(ctx, cm.path)
	if err != nil {
		return fmt.Errorf("failed to create config watcher: %w", err)
	}
	if err := watcher.Start(300 * time.Millisecond); err != nil {
		watcher.Stop()
		return fmt.Errorf("failed to start config watcher: %w", err)
	}

	cm.watcher = watcher
	go cm.handleConfigChanges(ctx, watcher)

	return nil
}

// handleConfigChanges processes config file change notifications
func (cm *ConfigManager) handleConfigChanges(ctx context.Context, w *Watcher) {
	for {
		select {
		case <-ctx.Done():
			return

		case _, ok := <-w.Events():
			if !ok {
				return
			}
			if err := cm.Reload(); err != nil {
				cm.sendError(err)
				continue
			}
			select {
			case cm.reloadChan <- struct{}{}:
			default:
				// reload notification already pending
			}

		case err, ok := <-w.Errors():
			if !ok {
				return
			}
			cm.sendError(err)
		}
	}
}

func (cm *ConfigManager) sendError(err error) {
	select {
	case cm.errChan <- err:
	default:
	}
}

// StopWatcher stops the config file watcher if it's running
func (cm *ConfigManager) StopWatcher() error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.watcher == nil {
		return nil
	}

	err := cm.watcher.Stop()
	cm.watcher = nil
	return err
}

// ReloadEvents returns a channel that signals when config has been reloaded
func (cm *ConfigManager) ReloadEvents() <-chan struct{} {
	return cm.reloadChan
}

// Errors returns reload and watcher failures
func (cm *ConfigManager) Errors() <-chan error {
	return cm.errChan
}
