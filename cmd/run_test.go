package cmd

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/TechnoBlogger14o3/AlgoLab/internal/domain"
	domainmocks "github.com/TechnoBlogger14o3/AlgoLab/internal/domain/mocks"
	m "github.com/TechnoBlogger14o3/AlgoLab/internal/model"
)

// withMockWorkflow swaps the shared workflow for a mock for one test.
func withMockWorkflow(t *testing.T) *domainmocks.MockWorkflow {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow

	t.Cleanup(func() { workflow = originalWorkflow })

	return mockWorkflow
}

func executeCmd(sub *cobra.Command, args ...string) error {
	cmd := newRootCmd()
	cmd.AddCommand(sub)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	return cmd.Execute()
}

func TestRunCmd_Defaults(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.EXPECT().Run(mock.Anything, domain.RunArgs{
		Algorithm: m.AlgorithmBubble,
		Input: domain.InputArgs{
			Size:      defaultSize,
			ArrayType: m.ArrayRandom,
			Nodes:     defaultGraphNodes,
			Shape:     m.GraphRandom,
		},
		Speed: 500 * time.Millisecond,
	}).Return(nil).Once()

	require.NoError(t, executeCmd(newRunCmd(), "run", "bubble"))
}

func TestRunCmd_Flags(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.EXPECT().Run(mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.Algorithm == m.AlgorithmBinarySearch &&
			args.Speed == 100*time.Millisecond &&
			args.Input.Size == 12 &&
			args.Input.ArrayType == m.ArraySorted &&
			args.Input.Target != nil && *args.Input.Target == 42 &&
			args.Input.Case == ""
	})).Return(nil).Once()

	err := executeCmd(newRunCmd(), "run", "binary", "--speed", "100", "-n", "12", "-t", "sorted", "--target", "42")
	require.NoError(t, err)
}

func TestRunCmd_ExplicitArrayAndCase(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.EXPECT().Run(mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.Algorithm == "" &&
			args.Input.Case == m.Path("cases/graph.yaml") &&
			assert.ObjectsAreEqual([]int{5, 3, 8}, args.Input.Array) &&
			args.Input.Start == 2
	})).Return(nil).Once()

	err := executeCmd(newRunCmd(), "run", "--case", "cases/graph.yaml", "--array", "5,3,8", "--start", "2")
	require.NoError(t, err)
}

func TestRunCmd_InvalidArray(t *testing.T) {
	withMockWorkflow(t)

	err := executeCmd(newRunCmd(), "run", "bubble", "--array", "5,x")
	require.Error(t, err)
}

func TestRunCmd_InvalidTarget(t *testing.T) {
	withMockWorkflow(t)

	err := executeCmd(newRunCmd(), "run", "linear", "--target", "ten")
	require.ErrorContains(t, err, "invalid target")
}

func TestRunCmd_PropagatesWorkflowError(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.EXPECT().Run(mock.Anything, mock.Anything).Return(domain.ErrInvalidInput).Once()

	err := executeCmd(newRunCmd(), "run", "bogo")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRunCmd_TooManyArgs(t *testing.T) {
	withMockWorkflow(t)

	require.Error(t, executeCmd(newRunCmd(), "run", "bubble", "quick"))
}

func TestCompareCmd(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.EXPECT().Compare(mock.Anything, mock.MatchedBy(func(args domain.CompareArgs) bool {
		return args.Left == m.AlgorithmBubble &&
			args.Right == m.AlgorithmQuick &&
			args.Input.Size == 30 &&
			args.Input.ArrayType == m.ArrayReversed &&
			args.Speed == 250*time.Millisecond
	})).Return(nil).Once()

	err := executeCmd(newCompareCmd(), "compare", "bubble", "quick", "-n", "30", "-t", "reversed", "-s", "250")
	require.NoError(t, err)
}

func TestCompareCmd_RequiresTwoAlgorithms(t *testing.T) {
	withMockWorkflow(t)

	require.Error(t, executeCmd(newCompareCmd(), "compare", "bubble"))
}

func TestPracticeCmd(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.EXPECT().Practice(mock.Anything, mock.MatchedBy(func(args domain.PracticeArgs) bool {
		return args.Source == m.Path("search.js") &&
			args.Kind == m.KindSearch &&
			args.Input.Target != nil && *args.Input.Target == 7
	})).Return(nil).Once()

	err := executeCmd(newPracticeCmd(), "practice", "search.js", "--kind", "search", "--target", "7")
	require.NoError(t, err)
}

func TestPracticeCmd_DefaultKind(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.EXPECT().Practice(mock.Anything, mock.MatchedBy(func(args domain.PracticeArgs) bool {
		return args.Kind == m.KindSort && args.Input.Target == nil
	})).Return(nil).Once()

	require.NoError(t, executeCmd(newPracticeCmd(), "practice", "sort.js"))
}

func TestListCmd(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.EXPECT().List(mock.Anything).Return(nil).Once()

	require.NoError(t, executeCmd(newListCmd(), "list"))
}

func TestListCmd_Error(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.EXPECT().List(mock.Anything).Return(errors.New("render failed")).Once()

	require.ErrorContains(t, executeCmd(newListCmd(), "list"), "render failed")
}
