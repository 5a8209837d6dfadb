package cli

import (
	"github.com/spf13/cobra"
)

func newPollCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "poll",
		Short: "Feed poll events to the bot",
	}

	cmd.AddCommand(newPollVoteCmd())

	return cmd
}

func newPollVoteCmd() *cobra.Command {
	var (
		voter    string
		pollText string
	)

	cmd := &cobra.Command{
		Use:     "vote <option>...",
		Short:   "Record a poll vote with the selected options",
		Example: `  courtbot poll vote --voter Dana --poll "Badminton Saturday?" Yes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"voter":            voter,
				"poll_text":        pollText,
				"selected_options": append([]string{}, args...),
			}

			var result Result

			if err := client.Post("/api/v1/poll-votes", req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&voter, "voter", "", "Display name of the voter (required)")
	cmd.Flags().StringVar(&pollText, "poll", "", "Poll question text")
	_ = cmd.MarkFlagRequired("voter")

	return cmd
}
