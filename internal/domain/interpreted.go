package domain

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/TechnoBlogger14o3/AlgoLab/internal/adapter"
	m "github.com/TechnoBlogger14o3/AlgoLab/internal/model"
)

const lineExcerpt = 40

type scriptOutcome struct {
	result adapter.ScriptResult
	err    error
}

// interpretedSource runs learner code once and replays an approximate
// trace: the initial array, one snapshot per executable line linearly
// interpolated towards the final array, then a completion snapshot.
// Intermediate arrays are illustrative only; multiple overwrites of one
// index are not reflected.
type interpretedSource struct {
	input      m.RunInput
	lines      []string
	executable []int

	outcome chan scriptOutcome
	cancel  context.CancelFunc

	started bool
	queue   []m.Snapshot
	result  m.Result
	err     error
	done    bool
}

// NewInterpretedFactory returns a factory for a practice run of
// input.Source. Execution starts when the factory is called and is bounded
// by the runner; Close cancels it. Next reports a pending step until the
// script has finished, so callers never block on it.
func NewInterpretedFactory(ctx context.Context, runner adapter.ScriptAdapter, input m.RunInput) SourceFactory {
	return func() (StepSource, error) {
		kind := input.Kind
		if kind == "" {
			kind = m.KindSort
		}

		if kind != m.KindSort && kind != m.KindSearch {
			return nil, fmt.Errorf("%w: practice kind must be sort or search, got %q", ErrInvalidInput, kind)
		}

		if kind == m.KindSearch && input.Target == nil {
			return nil, fmt.Errorf("%w: search practice requires a target", ErrInvalidInput)
		}

		input.Kind = kind
		input.Array = clone(input.Array)

		ctx, cancel := context.WithCancel(ctx)
		s := &interpretedSource{
			input:      input,
			lines:      strings.Split(input.Source, "\n"),
			executable: ExecutableLines(input.Source),
			outcome:    make(chan scriptOutcome, 1),
			cancel:     cancel,
		}

		go func() {
			result, err := runner.Execute(ctx, adapter.ScriptRequest{
				Source: input.Source,
				Kind:   kind,
				Array:  clone(input.Array),
				Target: input.Target,
			})
			s.outcome <- scriptOutcome{result: result, err: err}
		}()

		return s, nil
	}
}

// ExecutableLines returns the 0-based indexes of lines that are neither
// blank nor comment-only.
func ExecutableLines(source string) []int {
	var out []int

	for i, line := range strings.Split(source, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" ||
			strings.HasPrefix(trimmed, "//") ||
			strings.HasPrefix(trimmed, "/*") ||
			strings.HasPrefix(trimmed, "*") {
			continue
		}

		out = append(out, i)
	}

	return out
}

func (s *interpretedSource) Next() (m.Step, error) {
	if !s.started {
		s.started = true
		return m.Step{Snapshot: s.snapshot(0, "Starting execution", s.input.Array)}, nil
	}

	if s.queue == nil && !s.done && s.err == nil {
		select {
		case out := <-s.outcome:
			s.replay(out)
		default:
			return m.Step{Pending: true}, nil
		}
	}

	if len(s.queue) > 0 {
		next := s.queue[0]
		s.queue = s.queue[1:]

		return m.Step{Snapshot: next}, nil
	}

	if s.err != nil {
		return m.Step{}, s.err
	}

	s.done = true

	return m.Step{Done: true, Result: s.result}, nil
}

func (s *interpretedSource) Close() {
	s.cancel()
}

// replay turns the execution outcome into the remaining snapshots.
func (s *interpretedSource) replay(out scriptOutcome) {
	if out.err != nil {
		failed := s.snapshot(0, "Error: "+out.err.Error(), s.input.Array)
		failed.Failed = true

		s.queue = []m.Snapshot{failed}
		s.err = fmt.Errorf("%w: %w", ErrExecution, out.err)

		return
	}

	final := out.result.Array
	count := len(s.executable)
	s.queue = make([]m.Snapshot, 0, count+1)

	for k, line := range s.executable {
		values := final
		if k+1 < count {
			values = interpolate(s.input.Array, final, float64(k+1)/float64(count))
		}

		excerpt := strings.TrimSpace(s.lines[line])
		if runes := []rune(excerpt); len(runes) > lineExcerpt {
			excerpt = string(runes[:lineExcerpt])
		}

		s.queue = append(s.queue, s.snapshot(line, fmt.Sprintf("Executing line %d: %s", line+1, excerpt), values))
	}

	completion := s.snapshot(len(s.lines)-1, "Execution complete", final)

	if s.input.Kind == m.KindSearch {
		index := m.NoIndex
		if out.result.Index != nil {
			index = *out.result.Index
		}

		trace := completion.Array()
		trace.Current = index
		trace.Found = index >= 0 && index < len(final)
		if trace.Found {
			trace.Comparing = []int{index}
		}

		s.result = m.Result{Kind: m.ResultIndex, Index: index, Found: trace.Found}
	} else {
		s.result = m.Result{Kind: m.ResultArray, Array: clone(final)}
	}

	s.queue = append(s.queue, completion)
}

func (s *interpretedSource) snapshot(line int, message string, values []int) m.Snapshot {
	trace := m.NewArrayTrace(values)
	if s.input.Target != nil {
		trace.Target = m.IntPtr(*s.input.Target)
	}

	return m.Snapshot{Line: line, Message: message, Payload: trace}
}

// interpolate moves every index of from towards to by progress, rounding
// halves up. Indexes missing from from start at their final value.
func interpolate(from, to []int, progress float64) []int {
	out := make([]int, len(to))

	for i, target := range to {
		start := target
		if i < len(from) {
			start = from[i]
		}

		out[i] = int(math.Floor(float64(start) + float64(target-start)*progress + 0.5))
	}

	return out
}

func clone(values []int) []int {
	out := make([]int, len(values))
	copy(out, values)

	return out
}
