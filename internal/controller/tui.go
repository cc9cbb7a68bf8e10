package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	m "github.com/TechnoBlogger14o3/AlgoLab/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer

	mu      sync.Mutex
	program *tea.Program
	started bool
	done    chan struct{}

	// programOptions are appended to the defaults; tests use them to detach
	// the program from the terminal.
	programOptions []tea.ProgramOption
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the interactive view for a run.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return t.startWithModel(newRunModel(newStartConfig(options)))
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	options := append([]tea.ProgramOption{tea.WithOutput(t.output), tea.WithAltScreen()}, t.programOptions...)
	program := tea.NewProgram(model, options...)
	done := make(chan struct{})

	go func() {
		defer close(done)

		if _, err := program.Run(); err != nil {
			slog.Error("tui stopped", "error", err)
		}
	}()

	t.program = program
	t.done = done
	t.started = true

	return nil
}

// send forwards msg to the running program; it is a no-op before Start.
func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(msg)
}

// Close stops the program and waits for it to restore the terminal.
func (t *TUI) Close(ctx context.Context) {
	t.mu.Lock()
	program, done := t.program, t.done
	t.program, t.done, t.started = nil, nil, false
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()

	select {
	case <-done:
	case <-ctx.Done():
	}
}

// Wait blocks until the user quits the program.
func (t *TUI) Wait(ctx context.Context) {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done == nil {
		return
	}

	select {
	case <-done:
	case <-ctx.Done():
	}
}

// DisplayAlgorithms prints the catalog as a styled table without starting
// the interactive program.
func (t *TUI) DisplayAlgorithms(ctx context.Context, algorithms []m.AlgorithmInfo) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rows := make([][]string, 0, len(algorithms))
	for _, info := range algorithms {
		rows = append(rows, []string{string(info.ID), info.Name, string(info.Kind), describeNeeds(info)})
	}

	catalog := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerCellStyle
			}

			return cellStyle
		}).
		Headers("ID", "Name", "Kind", "Input").
		Rows(rows...)

	_, err := fmt.Fprintf(t.output, "%s\n%s\n", renderBanner(), catalog.Render())

	return err
}

// DisplayFrame forwards a frame to the program.
func (t *TUI) DisplayFrame(ctx context.Context, frame m.Frame) {
	if ctx.Err() != nil {
		return
	}

	t.send(frameMsg{frame: frame})
}

// DisplayOutcome forwards the final statistics to the program.
func (t *TUI) DisplayOutcome(ctx context.Context, outcomes []m.Outcome) {
	if ctx.Err() != nil {
		return
	}

	t.send(outcomeMsg{outcomes: outcomes})
}
