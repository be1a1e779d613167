package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adriangreen/timebox/internal/config"
	"github.com/adriangreen/timebox/internal/debuglog"
	"github.com/adriangreen/timebox/internal/planner"
	"github.com/adriangreen/timebox/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timebox",
		Short: "timebox - time boxing planner for the terminal",
		Long: `timebox is a terminal planner for time boxing your day. Tasks live in
three columns (scheduled, detailed and TODO) and a mock AI assistant can
suggest a short break for you.`,
		SilenceUsage: true,
		RunE:         runTUI,
	}

	cmd.PersistentFlags().String("config", "", "Path to the config file (default $"+config.EnvConfigPath+" or the user config dir)")
	cmd.PersistentFlags().String("seed", "", "YAML file with tasks to load at startup")
	cmd.PersistentFlags().Duration("suggest-delay", 0, "Delay before the AI suggestion appears (default from config, 2s)")
	cmd.PersistentFlags().String("lang", "", "Language of the AI suggestion (en or ja)")
	cmd.Flags().String("debug-log", "", "Write a debug log to this file")

	cmd.AddCommand(newViewsCommand())

	return cmd
}

// setup holds what every command needs after flags and config are resolved
type setup struct {
	configManager *config.ConfigManager
	config        *config.Config
	engine        *planner.Engine
	delay         time.Duration
	seeded        int
}

// newSetup loads config, applies flag overrides and builds a seeded engine
func newSetup(cmd *cobra.Command) (*setup, error) {
	configPath, _ := cmd.Flags().GetString("config")
	configManager, err := config.NewConfigManager(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create config manager: %w", err)
	}
	cfg := configManager.GetConfig()

	langFlag, _ := cmd.Flags().GetString("lang")
	if langFlag == "" {
		langFlag = cfg.Planner.Language
	}
	lang, err := planner.ParseLanguage(langFlag)
	if err != nil {
		return nil, err
	}

	delay := cfg.SuggestionDelay()
	if d, _ := cmd.Flags().GetDuration("suggest-delay"); d > 0 {
		delay = d
	}

	engine := planner.NewEngine(
		planner.WithSuggestion(planner.DefaultSuggestion(lang)),
		planner.WithSuggestionDelay(delay),
	)

	seeded := 0
	seedPath, _ := cmd.Flags().GetString("seed")
	if seedPath != "" {
		tasks, err := planner.LoadSeedFile(seedPath)
		if err != nil {
			engine.Close()
			return nil, fmt.Errorf("failed to load seed file: %w", err)
		}
		seeded = engine.Seed(tasks)
	}

	return &setup{
		configManager: configManager,
		config:        cfg,
		engine:        engine,
		delay:         delay,
		seeded:        seeded,
	}, nil
}

// signalContext returns a context cancelled on SIGINT or SIGTERM
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}

// runTUI starts the Bubble Tea TUI application
func runTUI(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	s, err := newSetup(cmd)
	if err != nil {
		return err
	}
	defer s.engine.Close()

	debugPath, _ := cmd.Flags().GetString("debug-log")
	if debugPath == "" {
		debugPath = s.config.DebugLogPath
	}
	if err := debuglog.Init(debugPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to open debug log: %v\n", err)
	}
	defer debuglog.Close()

	// Hot reload only applies to a config file that exists
	if _, err := os.Stat(s.config.Path); err == nil {
		if err := s.configManager.StartWatcher(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to start config watcher: %v\n", err)
		}
		defer s.configManager.StopWatcher()
	}

	debuglog.Logf("Starting timebox: %d seeded task(s), suggestion delay %s", s.seeded, s.delay)

	m := ui.NewModel(ctx, s.engine, s.config, s.configManager)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}
