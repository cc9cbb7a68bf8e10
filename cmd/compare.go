package cmd

import (
	"github.com/spf13/cobra"

	"github.com/TechnoBlogger14o3/AlgoLab/internal/domain"
	m "github.com/TechnoBlogger14o3/AlgoLab/internal/model"
)

// compareCmd represents the compare command.
var compareCmd = newCompareCmd()

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <left> <right>",
		Short: "Race two algorithms over the same input",
		Long:  compareLongDescription,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := inputArgs(cmd.Flags())
			if err != nil {
				return err
			}

			return workflow.Compare(cmd.Context(), domain.CompareArgs{
				Left:  m.AlgorithmID(args[0]),
				Right: m.AlgorithmID(args[1]),
				Input: input,
				Speed: speedFromConfig(),
			})
		},
	}

	configureInputFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(compareCmd)
}
