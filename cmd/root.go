// Package cmd provides the root command and CLI setup for algolab.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/TechnoBlogger14o3/AlgoLab/internal/adapter"
	"github.com/TechnoBlogger14o3/AlgoLab/internal/controller"
	"github.com/TechnoBlogger14o3/AlgoLab/internal/domain"
)

var sourceFSAdapter adapter.SourceFSAdapter
var inputGenerator adapter.InputGenerator
var scriptAdapter adapter.ScriptAdapter
var workflow domain.Workflow
var ui controller.UI

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	sourceFSAdapter = adapter.NewLocalSourceFSAdapter()
	inputGenerator = adapter.NewRandomInputGenerator(viper.GetUint64(seedConfigKey))
	scriptAdapter = adapter.NewGojaScriptAdapter(viper.GetDuration(practiceTimeoutConfigKey))
	workflow = domain.NewWorkflow(
		sourceFSAdapter,
		inputGenerator,
		scriptAdapter,
		ui,
	)
}

const inputHelp = `Input is resolved in this order:
  - explicit values (--array, --target)
  - a YAML case file (--case)
  - generated data (--size, --array-type, --nodes, --shape)`

const rootLongDescription = `AlgoLab steps through sorting, searching, graph, tree, linked-list and
problem algorithms one snapshot at a time, showing comparisons, inferred
swaps and running statistics as the algorithm works.

` + inputHelp

const runLongDescription = `Visualize one algorithm (see "algolab list" for the ids).

` + inputHelp

const compareLongDescription = `Run two algorithms side by side over the same input.

` + inputHelp

const practiceLongDescription = `Execute your own JavaScript against the input and step through it line by
line. The script sees arr (alias array), n, length, target and swap(i, j);
it may sort arr in place, return an array, or return an index for searches.

` + inputHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algolab",
		Short: "Step-by-step algorithm visualizer",
		Long:  rootLongDescription,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolP(verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		configureLogger("", viper.GetBool(logVerboseKey))
	}

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}
