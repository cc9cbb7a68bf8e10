package adapter

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/dop251/goja"

	m "github.com/TechnoBlogger14o3/AlgoLab/internal/model"
)

// DefaultScriptTimeout bounds one learner script execution.
const DefaultScriptTimeout = 2 * time.Second

const maxCallStackSize = 1024

// ScriptRequest is one learner submission and the data it runs against.
type ScriptRequest struct {
	Source string
	Kind   m.Kind
	Array  []int
	Target *int
}

// ScriptResult is the state left behind by a finished script.
type ScriptResult struct {
	// Array is the returned array, or the bound array after execution.
	Array []int
	// Index is the number a search returned, if any.
	Index *int
}

// ScriptError carries the message a script raised.
type ScriptError struct {
	Message string
}

func (e *ScriptError) Error() string {
	return e.Message
}

// ScriptAdapter runs learner code once against an array.
type ScriptAdapter interface {
	Execute(ctx context.Context, req ScriptRequest) (ScriptResult, error)
}

// GojaScriptAdapter runs JavaScript in a fresh goja runtime per call. Only
// arr, array, target, n, length and swap are bound for the script.
type GojaScriptAdapter struct {
	timeout time.Duration
}

// NewGojaScriptAdapter constructs a GojaScriptAdapter. A non-positive timeout
// selects DefaultScriptTimeout.
func NewGojaScriptAdapter(timeout time.Duration) *GojaScriptAdapter {
	if timeout <= 0 {
		timeout = DefaultScriptTimeout
	}

	return &GojaScriptAdapter{timeout: timeout}
}

// entryPoint names the function a submission may declare instead of
// top-level statements.
func entryPoint(kind m.Kind) string {
	if kind == m.KindSearch {
		return "search"
	}

	return "sort"
}

// wrap puts the learner code in a function frame. When the code falls
// through without returning, a declared sort/search function is called.
func wrap(source string, kind m.Kind) string {
	entry := entryPoint(kind)

	return fmt.Sprintf(`(function(arr, array, target, n, length) {
function swap(i, j) { var t = arr[i]; arr[i] = arr[j]; arr[j] = t; }
return (function() {
%s
;if (typeof %s === 'function') { return %s(arr, target); }
return arr;
})();
})(arr, array, target, n, length)`, source, entry, entry)
}

// Execute implements ScriptAdapter.
func (a *GojaScriptAdapter) Execute(ctx context.Context, req ScriptRequest) (ScriptResult, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	rt := goja.New()
	rt.SetMaxCallStackSize(maxCallStackSize)

	items := make([]any, len(req.Array))
	for i, v := range req.Array {
		items[i] = v
	}

	arr := rt.NewArray(items...)

	var target any
	if req.Target != nil {
		target = *req.Target
	}

	bindings := map[string]any{
		"arr":    arr,
		"array":  arr,
		"target": target,
		"n":      len(req.Array),
		"length": len(req.Array),
	}

	for name, value := range bindings {
		if err := rt.Set(name, value); err != nil {
			return ScriptResult{}, fmt.Errorf("bind %s: %w", name, err)
		}
	}

	stop := context.AfterFunc(ctx, func() {
		rt.Interrupt(ctx.Err())
	})
	defer stop()

	returned, err := rt.RunString(wrap(req.Source, req.Kind))
	if err != nil {
		return ScriptResult{}, scriptError(err, a.timeout)
	}

	return collect(rt, arr, returned)
}

func collect(rt *goja.Runtime, arr *goja.Object, returned goja.Value) (ScriptResult, error) {
	var result ScriptResult

	final := goja.Value(arr)

	if obj, ok := returned.(*goja.Object); ok && obj.ClassName() == "Array" {
		final = obj
	} else if returned != nil && !goja.IsUndefined(returned) && !goja.IsNull(returned) {
		if number, ok := returned.Export().(int64); ok {
			index := int(number)
			result.Index = &index
		} else if number, ok := returned.Export().(float64); ok && !math.IsNaN(number) && !math.IsInf(number, 0) {
			index := int(math.Round(number))
			result.Index = &index
		}
	}

	var values []float64
	if err := rt.ExportTo(final, &values); err != nil {
		return ScriptResult{}, &ScriptError{Message: fmt.Sprintf("arr holds a value that is not a number: %v", err)}
	}

	result.Array = make([]int, len(values))

	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ScriptResult{}, &ScriptError{Message: fmt.Sprintf("arr[%d] is not a number", i)}
		}

		result.Array[i] = int(math.Round(v))
	}

	return result, nil
}

func scriptError(err error, timeout time.Duration) error {
	var interrupted *goja.InterruptedError
	if errors.As(err, &interrupted) {
		if errors.Is(err, context.DeadlineExceeded) {
			return &ScriptError{Message: fmt.Sprintf("execution timed out after %s", timeout)}
		}

		return &ScriptError{Message: "execution cancelled"}
	}

	var overflow *goja.StackOverflowError
	if errors.As(err, &overflow) {
		return &ScriptError{Message: "maximum call stack size exceeded"}
	}

	var exception *goja.Exception
	if errors.As(err, &exception) {
		return &ScriptError{Message: thrownMessage(exception)}
	}

	return &ScriptError{Message: err.Error()}
}

// thrownMessage returns the message property of a thrown Error, or the
// thrown value itself.
func thrownMessage(ex *goja.Exception) string {
	value := ex.Value()
	if value == nil {
		return ex.Error()
	}

	if obj, ok := value.(*goja.Object); ok {
		if msg := obj.Get("message"); msg != nil && !goja.IsUndefined(msg) {
			return msg.String()
		}
	}

	return value.String()
}
