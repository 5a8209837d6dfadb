package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newRosterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Roster inspection and organizer overrides",
	}

	cmd.AddCommand(newRosterShowCmd())
	cmd.AddCommand(newRosterStatusCmd())
	cmd.AddCommand(newRosterResetCmd())
	cmd.AddCommand(newRosterCourtsCmd())

	return cmd
}

func newRosterShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show players and waitlist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Roster

			if err := client.Get("/api/v1/roster", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newRosterStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the status message the bot would post",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result StatusResult

			if err := client.Get("/api/v1/roster/status", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newRosterResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear the roster for a new week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result StatusResult

			if err := client.Post("/api/v1/roster/reset", nil, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newRosterCourtsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "courts <count>",
		Short: "Set the number of booked courts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid court count %q", args[0])
			}

			var result Result

			if err := client.Put("/api/v1/roster/courts", map[string]int{"count": count}, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}
