package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"github.com/TechnoBlogger14o3/AlgoLab/internal/adapter"
	"github.com/TechnoBlogger14o3/AlgoLab/internal/controller"
	m "github.com/TechnoBlogger14o3/AlgoLab/internal/model"
)

// Input defaults used when neither flags nor a case file provide a value.
const (
	DefaultArraySize  = 20
	DefaultGraphNodes = 8
)

var argsValidate = validator.New()

// InputArgs describes where the input of a run comes from. Explicit values
// win over the case file, and the case file wins over generated data.
type InputArgs struct {
	Array     []int
	Target    *int
	Case      m.Path
	Start     int          `validate:"gte=0"`
	Size      int          `validate:"gte=0,lte=200"`
	ArrayType m.ArrayType  `validate:"omitempty,oneof=random sorted reversed nearlySorted"`
	Nodes     int          `validate:"gte=0,lte=64"`
	Shape     m.GraphShape `validate:"omitempty,oneof=random tree grid"`
}

// RunArgs are the arguments of a single algorithm run. Algorithm may be
// empty when the case file names one.
type RunArgs struct {
	Algorithm m.AlgorithmID
	Input     InputArgs
	Speed     time.Duration `validate:"gte=0"`
}

// Validate checks the argument ranges.
func (a *RunArgs) Validate() error {
	return argsValidate.Struct(a)
}

// CompareArgs are the arguments of a side-by-side run over one input.
type CompareArgs struct {
	Left  m.AlgorithmID `validate:"required"`
	Right m.AlgorithmID `validate:"required"`
	Input InputArgs
	Speed time.Duration `validate:"gte=0"`
}

// Validate checks the argument ranges.
func (a *CompareArgs) Validate() error {
	return argsValidate.Struct(a)
}

// PracticeArgs are the arguments of an interpreted run of learner code.
type PracticeArgs struct {
	Source m.Path `validate:"required"`
	Kind   m.Kind `validate:"omitempty,oneof=sort search"`
	Input  InputArgs
	Speed  time.Duration `validate:"gte=0"`
}

// Validate checks the argument ranges.
func (a *PracticeArgs) Validate() error {
	return argsValidate.Struct(a)
}

// Workflow wires inputs, steppers and the UI together for each command.
type Workflow interface {
	Run(ctx context.Context, args RunArgs) error
	Compare(ctx context.Context, args CompareArgs) error
	Practice(ctx context.Context, args PracticeArgs) error
	List(ctx context.Context) error
}

// runner is the part of Stepper and ParallelStepper the workflow waits on.
type runner interface {
	controller.Controls
	Wait(ctx context.Context) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.InputGenerator
	adapter.ScriptAdapter
	controller.UI

	options []Option
}

// NewWorkflow constructs a Workflow. Extra options are applied to every
// stepper the workflow builds.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	generator adapter.InputGenerator,
	scripts adapter.ScriptAdapter,
	ui controller.UI,
	opts ...Option,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		InputGenerator:  generator,
		ScriptAdapter:   scripts,
		UI:              ui,
		options:         opts,
	}
}

func (w *workflow) List(ctx context.Context) error {
	return w.DisplayAlgorithms(ctx, Algorithms())
}

func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	if err := args.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	c, err := w.loadCase(args.Input.Case)
	if err != nil {
		return err
	}

	id := args.Algorithm
	if id == "" && c != nil {
		id = c.Algorithm
	}

	info, ok := Lookup(id)
	if !ok {
		return fmt.Errorf("%w: unknown algorithm %q", ErrInvalidInput, id)
	}

	input, err := w.resolveInput(args.Input, c, info.NeedsTarget, info.NeedsGraph)
	if err != nil {
		return err
	}

	input.Algorithm = info.ID

	slog.Info("Starting run", "algorithm", info.ID, "size", len(input.Array))

	stepper := NewStepper(w.stepperOptions(ctx, args.Speed, info.ID)...)

	return w.drive(ctx, stepper,
		[]controller.StartOption{
			controller.WithRunMode(),
			controller.WithTitles(info.Name),
			controller.WithListing(nil),
			controller.WithControls(stepper),
		},
		func() error { return stepper.Start(NewSourceFactory(input)) },
	)
}

func (w *workflow) Compare(ctx context.Context, args CompareArgs) error {
	if err := args.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	left, ok := Lookup(args.Left)
	if !ok {
		return fmt.Errorf("%w: unknown algorithm %q", ErrInvalidInput, args.Left)
	}

	right, ok := Lookup(args.Right)
	if !ok {
		return fmt.Errorf("%w: unknown algorithm %q", ErrInvalidInput, args.Right)
	}

	c, err := w.loadCase(args.Input.Case)
	if err != nil {
		return err
	}

	input, err := w.resolveInput(args.Input, c,
		left.NeedsTarget || right.NeedsTarget, left.NeedsGraph || right.NeedsGraph)
	if err != nil {
		return err
	}

	leftInput, rightInput := input, input
	leftInput.Algorithm = left.ID
	rightInput.Algorithm = right.ID

	slog.Info("Starting comparison", "left", left.ID, "right", right.ID, "size", len(input.Array))

	stepper := NewParallelStepper(w.stepperOptions(ctx, args.Speed, left.ID, right.ID)...)

	return w.drive(ctx, stepper,
		[]controller.StartOption{
			controller.WithCompareMode(),
			controller.WithTitles(left.Name, right.Name),
			controller.WithListing(nil),
			controller.WithControls(stepper),
		},
		func() error {
			return stepper.Start(NewSourceFactory(leftInput), NewSourceFactory(rightInput))
		},
	)
}

func (w *workflow) Practice(ctx context.Context, args PracticeArgs) error {
	if err := args.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	code, err := w.ReadFile(args.Source)
	if err != nil {
		return fmt.Errorf("read practice source: %w", err)
	}

	kind := args.Kind
	if kind == "" {
		kind = m.KindSort
	}

	c, err := w.loadCase(args.Input.Case)
	if err != nil {
		return err
	}

	input, err := w.resolveInput(args.Input, c, kind == m.KindSearch, false)
	if err != nil {
		return err
	}

	input.Algorithm = m.AlgorithmPractice
	input.Source = string(code)
	input.Kind = kind

	slog.Info("Starting practice run", "source", args.Source, "kind", kind, "size", len(input.Array))

	stepper := NewStepper(w.stepperOptions(ctx, args.Speed, m.AlgorithmPractice)...)

	return w.drive(ctx, stepper,
		[]controller.StartOption{
			controller.WithPracticeMode(),
			controller.WithTitles(string(args.Source)),
			controller.WithListing(strings.Split(input.Source, "\n")),
			controller.WithControls(stepper),
		},
		func() error { return stepper.Start(NewInterpretedFactory(ctx, w.ScriptAdapter, input)) },
	)
}

func (w *workflow) loadCase(path m.Path) (*m.Case, error) {
	if path == "" {
		return nil, nil
	}

	c, err := w.LoadCase(path)
	if err != nil {
		return nil, fmt.Errorf("load case: %w", err)
	}

	return &c, nil
}

// resolveInput fills the run input from explicit values, then the case
// file, then the generator.
func (w *workflow) resolveInput(args InputArgs, c *m.Case, needsTarget, needsGraph bool) (m.RunInput, error) {
	input := m.RunInput{
		Array:  args.Array,
		Target: args.Target,
		Start:  args.Start,
	}

	if c != nil {
		if len(input.Array) == 0 {
			input.Array = c.Array
		}

		if input.Target == nil {
			input.Target = c.Target
		}

		if len(c.Graph) > 0 {
			input.Graph = c.Graph
			if args.Start == 0 {
				input.Start = c.Start
			}
		}
	}

	if len(input.Array) == 0 && !needsGraph {
		size := args.Size
		if size == 0 {
			size = DefaultArraySize
		}

		values, err := w.Array(size, args.ArrayType)
		if err != nil {
			return m.RunInput{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}

		input.Array = values
	}

	if needsTarget && input.Target == nil {
		input.Target = m.IntPtr(w.Target(input.Array))
	}

	if needsGraph && len(input.Graph) == 0 {
		nodes := args.Nodes
		if nodes == 0 {
			nodes = DefaultGraphNodes
		}

		graph, err := w.Graph(nodes, args.Shape)
		if err != nil {
			return m.RunInput{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}

		input.Graph = graph
	}

	return input, nil
}

// stepperOptions forwards frames and named outcomes to the UI.
func (w *workflow) stepperOptions(ctx context.Context, speed time.Duration, ids ...m.AlgorithmID) []Option {
	opts := []Option{
		WithSpeed(speed),
		WithFrameHandler(func(frame m.Frame) {
			w.DisplayFrame(ctx, frame)
		}),
		WithFinishHandler(func(outcomes []m.Outcome) {
			for i := range outcomes {
				if lane := int(outcomes[i].Lane); lane < len(ids) {
					outcomes[i].Algorithm = ids[lane]
				}
			}

			w.DisplayOutcome(ctx, outcomes)
		}),
	}

	return append(opts, w.options...)
}

// drive starts the UI and the run, then waits for both. A failing run is
// left on screen until the UI closes and then returned.
func (w *workflow) drive(ctx context.Context, r runner, options []controller.StartOption, start func() error) error {
	if err := w.Start(ctx, options...); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return fmt.Errorf("start ui: %w", err)
	}

	defer w.Close(context.WithoutCancel(ctx))

	if err := start(); err != nil {
		slog.Error("Failed to start run", "error", err)
		return err
	}

	var runErr error

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		runErr = r.Wait(groupCtx)
		if errors.Is(runErr, ErrExecution) {
			return nil
		}

		return runErr
	})

	group.Go(func() error {
		w.Wait(groupCtx)
		return nil
	})

	if err := group.Wait(); err != nil {
		r.Reset()
		return err
	}

	if runErr != nil {
		slog.Warn("Run failed", "error", runErr)
	}

	return runErr
}
