package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/courtbot/internal/services/auth"
)

func newTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Bridge token helpers",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "hash <token>",
		Short: "Print the bcrypt hash to set as COURTBOT_API_TOKEN_HASH",
		Args:  cobra.ExactArgs(1),
		// Runs offline
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := auth.HashToken(args[0])
			if err != nil {
				return err
			}

			output(cmd).PrintMessage(hash)
			return nil
		},
	})

	return cmd
}
