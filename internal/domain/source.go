package domain

import (
	"iter"

	"github.com/TechnoBlogger14o3/AlgoLab/internal/domain/algorithms"
	m "github.com/TechnoBlogger14o3/AlgoLab/internal/model"
)

// StepSource is a forward-only, single-use producer of snapshots.
type StepSource interface {
	// Next returns the next step. Once Done is reported, further calls keep
	// returning the same final step.
	Next() (m.Step, error)
	// Close releases the source. It is safe to call more than once.
	Close()
}

// SourceFactory builds a fresh step source for one run.
type SourceFactory func() (StepSource, error)

type traceSource struct {
	trace  algorithms.Trace
	next   func() (m.Snapshot, bool)
	stop   func()
	done   bool
	result m.Result
}

// NewTraceSource adapts a native trace into a StepSource.
func NewTraceSource(trace algorithms.Trace) StepSource {
	next, stop := iter.Pull(trace.Seq)

	return &traceSource{trace: trace, next: next, stop: stop}
}

func (s *traceSource) Next() (m.Step, error) {
	if s.done {
		return m.Step{Done: true, Result: s.result}, nil
	}

	snapshot, ok := s.next()
	if !ok {
		s.done = true
		s.result = s.trace.Result()
		s.stop()

		return m.Step{Done: true, Result: s.result}, nil
	}

	return m.Step{Snapshot: snapshot}, nil
}

func (s *traceSource) Close() {
	s.done = true
	s.stop()
}
