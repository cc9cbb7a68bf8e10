package model

// ResultKind tells which Result fields are meaningful.
type ResultKind string

// Available ResultKind values.
const (
	ResultNone  ResultKind = ""
	ResultArray ResultKind = "array"
	ResultIndex ResultKind = "index"
	ResultFound ResultKind = "found"
	ResultOrder ResultKind = "order"
	ResultPair  ResultKind = "pair"
	ResultSum   ResultKind = "sum"
)

// Result is the final value a step source returns when exhausted.
type Result struct {
	Kind  ResultKind
	Array []int
	Index int
	Found bool
	Order []int
	Pair  [2]int
	Sum   int
}

// Step is one pull from a step source.
type Step struct {
	Snapshot Snapshot
	// Done reports exhaustion; Snapshot is zero and Result is final.
	Done   bool
	Result Result
	// Pending reports that no step is ready yet; the caller should pull
	// again on its next tick.
	Pending bool
}
