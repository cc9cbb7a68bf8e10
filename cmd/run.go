package cmd

import (
	"github.com/spf13/cobra"

	"github.com/TechnoBlogger14o3/AlgoLab/internal/domain"
	m "github.com/TechnoBlogger14o3/AlgoLab/internal/model"
)

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "Visualize an algorithm step by step",
		Long:  runLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := inputArgs(cmd.Flags())
			if err != nil {
				return err
			}

			var algorithm m.AlgorithmID
			if len(args) == 1 {
				algorithm = m.AlgorithmID(args[0])
			}

			return workflow.Run(cmd.Context(), domain.RunArgs{
				Algorithm: algorithm,
				Input:     input,
				Speed:     speedFromConfig(),
			})
		},
	}

	configureInputFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}
