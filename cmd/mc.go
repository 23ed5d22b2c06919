package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Axect/RLAI/predictor"
)

func MCCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mc",
		Short: "Learn with every-visit Monte Carlo prediction",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(predictor.EveryVisitMCType)
		},
	}

	return cmd
}
