package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Axect/RLAI/predictor"
)

func TD0Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "td0",
		Short: "Learn with one-step temporal difference prediction",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(predictor.TD0Type)
		},
	}

	return cmd
}
