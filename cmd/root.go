package cmd

import "github.com/spf13/cobra"

func RootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rlai",
		Short: "Tabular value prediction and control on small MDPs",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			UpdateFlags(cmd)
			return flags.Record()
		},
		SilenceUsage: true,
	}
	AddFlags(cmd)

	cmd.AddCommand(
		MCCommand(),
		TD0Command(),
	)

	return cmd
}
