package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/TechnoBlogger14o3/AlgoLab/internal/model"
)

// SimpleUI implements UI using cobra Command's output, one line per frame.
type SimpleUI struct {
	cmd *cobra.Command

	mu     sync.Mutex
	config StartConfig

	failed  *color.Color
	swapped *color.Color
	done    *color.Color
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{
		cmd:     cmd,
		failed:  color.New(color.FgRed, color.Bold),
		swapped: color.New(color.FgYellow),
		done:    color.New(color.FgGreen),
	}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	config := newStartConfig(options)

	s.mu.Lock()
	s.config = config
	s.mu.Unlock()

	if len(config.titles) > 0 {
		s.printf("%s: %s\n", config.mode, strings.Join(config.titles, " vs "))
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
	// SimpleUI doesn't block - it just prints and continues
}

// DisplayAlgorithms prints the catalog as a table.
func (s *SimpleUI) DisplayAlgorithms(ctx context.Context, algorithms []m.AlgorithmInfo) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderAlgorithmTable(algorithms))

	return nil
}

func renderAlgorithmTable(algorithms []m.AlgorithmInfo) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"ID", "Name", "Kind", "Input"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
	})

	for _, info := range algorithms {
		table.Append([]string{string(info.ID), info.Name, string(info.Kind), describeNeeds(info)})
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(algorithms)), "", "", ""})
	table.Render()

	return tableBuffer.String()
}

func describeNeeds(info m.AlgorithmInfo) string {
	switch {
	case info.NeedsGraph:
		return "graph + start"
	case info.NeedsTarget:
		return "array + target"
	default:
		return "array"
	}
}

// DisplayFrame prints one frame.
func (s *SimpleUI) DisplayFrame(ctx context.Context, frame m.Frame) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.mu.Lock()
	config := s.config
	s.mu.Unlock()

	var b strings.Builder

	if config.mode == ModeCompare {
		fmt.Fprintf(&b, "[%s] ", config.title(frame.Lane))
	}

	fmt.Fprintf(&b, "#%-4d", frame.Stats.Steps)

	if frame.Snapshot.Line != m.NoLine {
		fmt.Fprintf(&b, " L%-3d", frame.Snapshot.Line+1)
	}

	b.WriteString(" " + describePayload(frame.Snapshot))

	if frame.Snapshot.Message != "" {
		b.WriteString("  " + frame.Snapshot.Message)
	}

	line := b.String()

	switch {
	case frame.Snapshot.Failed:
		line = s.failed.Sprint(line)
	case len(frame.Swaps) > 0:
		line += "  " + s.swapped.Sprint("swap "+describeSwaps(frame.Swaps))
	}

	s.printf("%s\n", line)
}

// DisplayOutcome prints the final statistics table.
func (s *SimpleUI) DisplayOutcome(ctx context.Context, outcomes []m.Outcome) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\n%s", renderOutcomeTable(outcomes))

	for _, outcome := range outcomes {
		if outcome.Err != nil {
			s.printf("%s\n", s.failed.Sprintf("%s failed: %v", outcome.Algorithm, outcome.Err))
			return
		}
	}

	s.printf("%s\n", s.done.Sprint("Run complete"))
}

func renderOutcomeTable(outcomes []m.Outcome) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Algorithm", "State", "Steps", "Comparisons", "Swaps", "Elapsed", "Result"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, outcome := range outcomes {
		table.Append([]string{
			string(outcome.Algorithm),
			outcome.State.String(),
			formatCount(outcome.Stats.Steps),
			formatCount(outcome.Stats.Comparisons),
			formatCount(outcome.Stats.Swaps),
			formatElapsed(outcome.Stats.Elapsed),
			describeResult(outcome.Result),
		})
	}

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
