package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/TechnoBlogger14o3/AlgoLab/internal/domain"
	m "github.com/TechnoBlogger14o3/AlgoLab/internal/model"
)

// configureInputFlags adds the flags shared by run, compare and practice.
// Config-backed flags are bound when the command runs, so each command
// feeds viper with its own flag set.
func configureInputFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.IntP(speedFlagName, "s", defaultSpeedMs, "milliseconds between steps (31-2000)")
	flags.IntP(sizeFlagName, "n", defaultSize, "generated array size")
	flags.StringP(arrayTypeFlagName, "t", defaultArrayType, "generated array type: random, sorted, reversed, nearlySorted")
	flags.String(targetFlagName, "", "search or problem target (default: picked from the input)")
	flags.String(arrayFlagName, "", "explicit comma separated input, e.g. 5,3,8")
	flags.StringP(caseFlagName, "c", "", "YAML case file with algorithm, array, target and graph")
	flags.Int(nodesFlagName, defaultGraphNodes, "generated graph size")
	flags.String(shapeFlagName, defaultGraphShape, "generated graph shape: random, tree, grid")
	flags.Int(startFlagName, 0, "start node for graph traversals")

	cmd.PreRun = func(cmd *cobra.Command, _ []string) {
		bindInputFlags(cmd.Flags())
	}
}

func bindInputFlags(flags *pflag.FlagSet) {
	bindFlagToConfig(flags.Lookup(speedFlagName), speedConfigKey)
	bindFlagToConfig(flags.Lookup(sizeFlagName), sizeConfigKey)
	bindFlagToConfig(flags.Lookup(arrayTypeFlagName), arrayTypeConfigKey)
	bindFlagToConfig(flags.Lookup(targetFlagName), targetConfigKey)
	bindFlagToConfig(flags.Lookup(nodesFlagName), graphNodesConfigKey)
	bindFlagToConfig(flags.Lookup(shapeFlagName), graphShapeConfigKey)
}

// inputArgs collects the run input from flags and configuration.
func inputArgs(flags *pflag.FlagSet) (domain.InputArgs, error) {
	rawArray, err := flags.GetString(arrayFlagName)
	if err != nil {
		return domain.InputArgs{}, err
	}

	array, err := parseInts(rawArray)
	if err != nil {
		return domain.InputArgs{}, err
	}

	target, err := targetFromConfig()
	if err != nil {
		return domain.InputArgs{}, err
	}

	casePath, err := flags.GetString(caseFlagName)
	if err != nil {
		return domain.InputArgs{}, err
	}

	start, err := flags.GetInt(startFlagName)
	if err != nil {
		return domain.InputArgs{}, err
	}

	return domain.InputArgs{
		Array:     array,
		Target:    target,
		Start:     start,
		Case:      m.Path(casePath),
		Size:      viper.GetInt(sizeConfigKey),
		ArrayType: m.ArrayType(viper.GetString(arrayTypeConfigKey)),
		Nodes:     viper.GetInt(graphNodesConfigKey),
		Shape:     m.GraphShape(viper.GetString(graphShapeConfigKey)),
	}, nil
}
