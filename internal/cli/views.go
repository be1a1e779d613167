package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/adriangreen/timebox/internal/planner"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newViewsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "views",
		Short: "Print the scheduled, detailed and TODO columns as tables",
		Long: `Loads the tasks from --seed and prints the three board columns without
starting the interactive UI. With --suggest, one AI suggestion is requested
and awaited first.`,
		Args: cobra.NoArgs,
		RunE: runViews,
	}

	cmd.Flags().Bool("suggest", false, "Request an AI suggestion and wait for it before printing")
	cmd.Flags().Duration("timeout", 10*time.Second, "How long to wait for the suggestion")

	return cmd
}

func runViews(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	s, err := newSetup(cmd)
	if err != nil {
		return err
	}
	defer s.engine.Close()

	if suggest, _ := cmd.Flags().GetBool("suggest"); suggest {
		timeout, _ := cmd.Flags().GetDuration("timeout")
		if err := awaitSuggestion(ctx, s.engine, timeout); err != nil {
			return err
		}
	}

	renderBoard(cmd.OutOrStdout(), planner.Views(s.engine.Snapshot()))
	return nil
}

// awaitSuggestion requests one suggestion and blocks until it is appended
func awaitSuggestion(ctx context.Context, engine *planner.Engine, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// Seeding may have filled the event buffer
	for drained := false; !drained; {
		select {
		case <-engine.Events():
		default:
			drained = true
		}
	}

	ticket := engine.RequestSuggestion(ctx)
	for {
		select {
		case ev := <-engine.Events():
			if ev.Ticket != ticket.ID {
				continue
			}
			switch ev.Kind {
			case planner.EventSuggestionReady:
				return nil
			case planner.EventSuggestionCancelled:
				return errors.New("suggestion cancelled")
			}
		case <-ctx.Done():
			ticket.Cancel()
			return fmt.Errorf("suggestion not ready: %w", ctx.Err())
		}
	}
}

// renderBoard writes one table per column
func renderBoard(w io.Writer, board planner.Board) {
	for i, col := range planner.Columns {
		if i > 0 {
			fmt.Fprintln(w)
		}
		renderColumn(w, col, board.Column(col), board.TotalMinutes(col))
	}
}

func renderColumn(w io.Writer, col planner.Column, tasks []planner.Task, total int) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleDouble)
	t.SetTitle(col.Label())

	switch col {
	case planner.ColumnScheduled:
		t.AppendHeader(table.Row{"#", "Time", "Task", "Minutes"})
	case planner.ColumnDetailed:
		t.AppendHeader(table.Row{"#", "Task", "Minutes", "Details"})
	default:
		t.AppendHeader(table.Row{"#", "Task", "Minutes"})
	}

	for i, task := range tasks {
		switch col {
		case planner.ColumnScheduled:
			t.AppendRow(table.Row{i + 1, task.Time, task.Name, task.Duration})
		case planner.ColumnDetailed:
			t.AppendRow(table.Row{i + 1, task.Name, task.Duration, task.Details})
		default:
			t.AppendRow(table.Row{i + 1, task.Name, task.Duration})
		}
	}

	switch col {
	case planner.ColumnScheduled:
		t.AppendFooter(table.Row{"", "", "Total", total})
	default:
		t.AppendFooter(table.Row{"", "Total", total})
	}

	t.Render()
}
