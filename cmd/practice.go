package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/TechnoBlogger14o3/AlgoLab/internal/domain"
	m "github.com/TechnoBlogger14o3/AlgoLab/internal/model"
)

// practiceCmd represents the practice command.
var practiceCmd = newPracticeCmd()

func newPracticeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "practice <file.js>",
		Short: "Step through your own sort or search code",
		Long:  practiceLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := inputArgs(cmd.Flags())
			if err != nil {
				return err
			}

			return workflow.Practice(cmd.Context(), domain.PracticeArgs{
				Source: m.Path(args[0]),
				Kind:   m.Kind(viper.GetString(practiceKindConfigKey)),
				Input:  input,
				Speed:  speedFromConfig(),
			})
		},
	}

	configureInputFlags(cmd)
	cmd.Flags().StringP(kindFlagName, "k", defaultPracticeKind, "what the code does: sort or search")

	bindInputs := cmd.PreRun
	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		bindInputs(cmd, args)
		bindFlagToConfig(cmd.Flags().Lookup(kindFlagName), practiceKindConfigKey)
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(practiceCmd)
}
