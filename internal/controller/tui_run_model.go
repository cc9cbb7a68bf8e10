package controller

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	m "github.com/TechnoBlogger14o3/AlgoLab/internal/model"
)

const (
	refreshInterval = 100 * time.Millisecond
	barWidth        = 40
	maxBars         = 24
	listingWindow   = 12
)

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	messageStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	mutedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	comparingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	finalizedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	pivotStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	failedStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	currentLine     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
	laneStyle       = lipgloss.NewStyle().Padding(0, 2)
	borderStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	headerCellStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle       = lipgloss.NewStyle().Padding(0, 1)
)

func renderBanner() string {
	return bannerStyle.Render("AlgoLab - Algorithm Visualizer")
}

type keyMap struct {
	Toggle key.Binding
	Faster key.Binding
	Slower key.Binding
	Reset  key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Faster, k.Slower, k.Reset, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newKeyMap() keyMap {
	return keyMap{
		Toggle: key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space", "pause/resume")),
		Faster: key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "faster")),
		Slower: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "slower")),
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// laneView is the latest frame of one lane.
type laneView struct {
	title    string
	frame    m.Frame
	hasFrame bool
}

// runModel is the Bubble Tea model that renders a running stepper.
type runModel struct {
	config   StartConfig
	lanes    []laneView
	runID    string
	dropped  map[string]bool
	state    m.State
	speed    time.Duration
	outcomes []m.Outcome
	status   string

	keys     keyMap
	help     help.Model
	progress progress.Model
	width    int
	quitting bool
}

func newRunModel(config StartConfig) runModel {
	count := 1
	if config.mode == ModeCompare {
		count = 2
	}

	lanes := make([]laneView, count)
	for i := range lanes {
		lanes[i].title = config.title(m.Lane(i))
	}

	model := runModel{
		config:  config,
		lanes:   lanes,
		dropped: map[string]bool{},
		keys:    newKeyMap(),
		help:    help.New(),
		progress: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(barWidth),
		),
	}

	return model.refresh()
}

func (rm runModel) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (rm runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rm.width = msg.Width
		rm.help.Width = msg.Width

		return rm, nil

	case tea.KeyMsg:
		return rm.handleKeyPress(msg)

	case tickMsg:
		return rm.refresh(), tick()

	case frameMsg:
		return rm.handleFrame(msg.frame), nil

	case outcomeMsg:
		rm.outcomes = msg.outcomes
		return rm.refresh(), nil
	}

	return rm, nil
}

// refresh pulls state and speed from the controls.
func (rm runModel) refresh() runModel {
	if rm.config.controls == nil {
		return rm
	}

	rm.state = rm.config.controls.State()
	rm.speed = rm.config.controls.Speed()

	return rm
}

func (rm runModel) handleFrame(frame m.Frame) runModel {
	if rm.dropped[frame.RunID] {
		return rm
	}

	if frame.RunID != rm.runID {
		rm.runID = frame.RunID
		rm.outcomes = nil

		for i := range rm.lanes {
			rm.lanes[i].hasFrame = false
		}
	}

	if int(frame.Lane) < len(rm.lanes) {
		rm.lanes[frame.Lane].frame = frame
		rm.lanes[frame.Lane].hasFrame = true
	}

	return rm
}

func (rm runModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	controls := rm.config.controls

	switch {
	case key.Matches(msg, rm.keys.Quit):
		rm.quitting = true

		if controls != nil && (controls.State() == m.StateRunning || controls.State() == m.StatePaused) {
			controls.Reset()
		}

		return rm, tea.Quit

	case controls == nil:
		return rm, nil

	case key.Matches(msg, rm.keys.Toggle):
		var err error
		if controls.State() == m.StatePaused {
			err = controls.Resume()
		} else {
			err = controls.Pause()
		}

		rm.status = statusOf(err)

	case key.Matches(msg, rm.keys.Faster):
		rm.status = statusOf(controls.SetSpeed(controls.Speed() / 2))

	case key.Matches(msg, rm.keys.Slower):
		rm.status = statusOf(controls.SetSpeed(controls.Speed() * 2))

	case key.Matches(msg, rm.keys.Reset):
		controls.Reset()

		if rm.runID != "" {
			rm.dropped[rm.runID] = true
		}

		rm.runID = ""
		rm.outcomes = nil

		for i := range rm.lanes {
			rm.lanes[i].hasFrame = false
		}

		rm.status = "reset"
	}

	return rm.refresh(), nil
}

func statusOf(err error) string {
	if err != nil {
		return err.Error()
	}

	return ""
}

func (rm runModel) View() string {
	if rm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(renderBanner() + "\n\n")

	views := make([]string, len(rm.lanes))
	for i, lane := range rm.lanes {
		views[i] = laneStyle.Render(rm.renderLane(lane))
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, views...) + "\n")

	if rm.config.mode == ModePractice && len(rm.config.listing) > 0 {
		line := m.NoLine
		if rm.lanes[0].hasFrame {
			line = rm.lanes[0].frame.Snapshot.Line
		}

		b.WriteString("\n" + renderListing(rm.config.listing, line) + "\n")
	}

	if len(rm.outcomes) > 0 {
		b.WriteString("\n" + renderOutcomes(rm.outcomes) + "\n")
	}

	status := fmt.Sprintf("state: %s  speed: %s", rm.state, rm.speed)
	if rm.status != "" {
		status += "  " + rm.status
	}

	b.WriteString("\n" + mutedStyle.Render(status) + "\n")
	b.WriteString(rm.help.View(rm.keys) + "\n")

	return b.String()
}

func (rm runModel) renderLane(lane laneView) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(lane.title) + "\n")

	if !lane.hasFrame {
		b.WriteString(mutedStyle.Render("waiting for the first step") + "\n")
		return b.String()
	}

	snapshot := lane.frame.Snapshot
	message := messageStyle.Render(snapshot.Message)

	if snapshot.Failed {
		message = failedStyle.Render(snapshot.Message)
	}

	b.WriteString(message + "\n\n")

	if trace := snapshot.Array(); trace != nil {
		b.WriteString(renderBars(trace))
	} else {
		b.WriteString(describePayload(snapshot) + "\n")
	}

	stats := lane.frame.Stats
	fmt.Fprintf(&b, "\nsteps %s  comparisons %s  swaps %s  %s\n",
		formatCount(stats.Steps), formatCount(stats.Comparisons), formatCount(stats.Swaps),
		formatElapsed(stats.Elapsed))

	if len(lane.frame.Swaps) > 0 {
		b.WriteString(comparingStyle.Render("swap "+describeSwaps(lane.frame.Swaps)) + "\n")
	}

	b.WriteString(rm.progress.ViewAs(completion(snapshot)) + "\n")

	return b.String()
}

// renderBars draws one horizontal bar per array element.
func renderBars(trace *m.ArrayTrace) string {
	var b strings.Builder

	peak := 1
	for _, v := range trace.Array {
		peak = max(peak, v)
	}

	for i, v := range trace.Array {
		if i == maxBars {
			fmt.Fprintf(&b, "%s\n", mutedStyle.Render(fmt.Sprintf("... %d more", len(trace.Array)-maxBars)))
			break
		}

		width := max(0, v*barWidth/peak)
		bar := fmt.Sprintf("%4d %s", v, strings.Repeat("█", width))

		switch {
		case slices.Contains(trace.Comparing, i):
			bar = comparingStyle.Render(bar)
		case i == trace.Pivot || i == trace.Min || i == trace.Mid:
			bar = pivotStyle.Render(bar)
		case trace.IsFinalized(i):
			bar = finalizedStyle.Render(bar)
		}

		b.WriteString(bar + "\n")
	}

	return b.String()
}

// renderListing shows a window of the listing around the active line.
func renderListing(listing []string, active int) string {
	start := max(0, active-listingWindow/2)
	end := min(len(listing), start+listingWindow)

	var b strings.Builder

	for i := start; i < end; i++ {
		text := fmt.Sprintf("%3d  %s", i+1, listing[i])
		if i == active {
			text = currentLine.Render(text)
		}

		b.WriteString(text + "\n")
	}

	return b.String()
}

func renderOutcomes(outcomes []m.Outcome) string {
	rows := make([][]string, 0, len(outcomes))
	for _, outcome := range outcomes {
		result := describeResult(outcome.Result)
		if outcome.Err != nil {
			result = outcome.Err.Error()
		}

		rows = append(rows, []string{
			string(outcome.Algorithm),
			outcome.State.String(),
			formatCount(outcome.Stats.Steps),
			formatCount(outcome.Stats.Comparisons),
			formatCount(outcome.Stats.Swaps),
			formatElapsed(outcome.Stats.Elapsed),
			result,
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerCellStyle
			}

			return cellStyle
		}).
		Headers("Algorithm", "State", "Steps", "Comparisons", "Swaps", "Elapsed", "Result").
		Rows(rows...).
		Render()
}
