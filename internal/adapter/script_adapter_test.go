package adapter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/TechnoBlogger14o3/AlgoLab/internal/model"
)

func TestGojaScriptAdapter_Execute_InPlaceSort(t *testing.T) {
	adapter := NewGojaScriptAdapter(time.Second)

	source := `for (let i = 0; i < n; i++) {
  for (let j = 0; j < n - i - 1; j++) {
    if (arr[j] > arr[j + 1]) swap(j, j + 1);
  }
}`

	result, err := adapter.Execute(context.Background(), ScriptRequest{
		Source: source,
		Kind:   m.KindSort,
		Array:  []int{5, 3, 8, 1},
	})

	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 5, 8}, result.Array)
	assert.Nil(t, result.Index)
}

func TestGojaScriptAdapter_Execute_DeclaredSortIsInvoked(t *testing.T) {
	adapter := NewGojaScriptAdapter(time.Second)

	source := `function sort(a) {
  return a.slice().sort(function(x, y) { return x - y; });
}`

	result, err := adapter.Execute(context.Background(), ScriptRequest{
		Source: source,
		Kind:   m.KindSort,
		Array:  []int{3, 1, 2},
	})

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, result.Array)
}

func TestGojaScriptAdapter_Execute_SearchReturnsIndex(t *testing.T) {
	adapter := NewGojaScriptAdapter(time.Second)

	source := `function search(a, t) {
  for (let i = 0; i < a.length; i++) {
    if (a[i] === t) return i;
  }
  return -1;
}`

	tests := []struct {
		name   string
		target int
		want   int
	}{
		{"present", 7, 2},
		{"absent", 4, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := adapter.Execute(context.Background(), ScriptRequest{
				Source: source,
				Kind:   m.KindSearch,
				Array:  []int{1, 3, 7},
				Target: m.IntPtr(tt.target),
			})

			require.NoError(t, err)
			require.NotNil(t, result.Index)
			assert.Equal(t, tt.want, *result.Index)
			assert.Equal(t, []int{1, 3, 7}, result.Array)
		})
	}
}

func TestGojaScriptAdapter_Execute_TargetIsNullWithoutValue(t *testing.T) {
	adapter := NewGojaScriptAdapter(time.Second)

	result, err := adapter.Execute(context.Background(), ScriptRequest{
		Source: `if (target !== null) { throw new Error("expected null"); }`,
		Kind:   m.KindSort,
		Array:  []int{2, 1},
	})

	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, result.Array)
}

func TestGojaScriptAdapter_Execute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		timeout time.Duration
		want    string
	}{
		{"thrown error", `throw new Error("boom");`, time.Second, "boom"},
		{"thrown string", `throw "boom";`, time.Second, "boom"},
		{"reference error", `undefinedFunction();`, time.Second, "undefinedFunction"},
		{"syntax error", `for (let i = 0; i < n; i++ {`, time.Second, "SyntaxError"},
		{"timeout", `while (true) {}`, 50 * time.Millisecond, "timed out"},
		{"non numeric", `arr[0] = "x";`, time.Second, "not a number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter := NewGojaScriptAdapter(tt.timeout)

			_, err := adapter.Execute(context.Background(), ScriptRequest{
				Source: tt.source,
				Kind:   m.KindSort,
				Array:  []int{1, 2},
			})

			require.Error(t, err)

			var scriptErr *ScriptError
			require.ErrorAs(t, err, &scriptErr)
			assert.Contains(t, scriptErr.Message, tt.want)
		})
	}
}

func TestGojaScriptAdapter_Execute_ThrownMessageIsVerbatim(t *testing.T) {
	adapter := NewGojaScriptAdapter(time.Second)

	_, err := adapter.Execute(context.Background(), ScriptRequest{
		Source: `throw new Error("boom");`,
		Kind:   m.KindSort,
		Array:  []int{1},
	})

	assert.EqualError(t, err, "boom")
}

func TestGojaScriptAdapter_Execute_Cancelled(t *testing.T) {
	adapter := NewGojaScriptAdapter(time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel)

	_, err := adapter.Execute(ctx, ScriptRequest{Source: `while (true) {}`, Kind: m.KindSort})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cancelled")
}

func TestNewGojaScriptAdapter_DefaultTimeout(t *testing.T) {
	assert.Equal(t, DefaultScriptTimeout, NewGojaScriptAdapter(0).timeout)
}
