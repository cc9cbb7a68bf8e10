package model

import "time"

// Swap is an inferred exchange between two positions, From < To is not
// guaranteed.
type Swap struct {
	From int
	To   int
}

// RunStatistics are the cumulative counters of one run.
type RunStatistics struct {
	RunID       string
	Steps       int
	Comparisons int
	Swaps       int
	StartedAt   time.Time
	Elapsed     time.Duration
}

// Lane identifies which side of a comparison run a frame belongs to.
type Lane int

// Lanes. A single stepper only ever publishes LaneLeft.
const (
	LaneLeft Lane = iota
	LaneRight
)

func (l Lane) String() string {
	if l == LaneRight {
		return "right"
	}

	return "left"
}

// Frame is what a stepper publishes per tick.
type Frame struct {
	RunID    string
	Lane     Lane
	Snapshot Snapshot
	Swaps    []Swap
	Stats    RunStatistics
}

// Outcome summarizes a finished lane for display.
type Outcome struct {
	Algorithm AlgorithmID
	Lane      Lane
	State     State
	Stats     RunStatistics
	Result    Result
	Err       error
}
