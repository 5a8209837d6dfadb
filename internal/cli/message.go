package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func newMessageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "message",
		Short: "Feed group chat messages to the bot",
	}

	cmd.AddCommand(newMessageSendCmd())

	return cmd
}

func newMessageSendCmd() *cobra.Command {
	var (
		sender   string
		kind     string
		fromSelf bool
	)

	cmd := &cobra.Command{
		Use:   "send <text>...",
		Short: "Send a chat message as if it was posted to the group",
		Example: `  courtbot message send --sender Bob "count me in"
  courtbot message send --sender "Adam Shin" "booked 2 courts"
  courtbot message send --sender "Adam Shin" --from-self --kind poll_creation "Badminton Saturday?"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"sender":    sender,
				"text":      strings.Join(args, " "),
				"kind":      kind,
				"from_self": fromSelf,
			}

			var result Result

			if err := client.Post("/api/v1/messages", req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&sender, "sender", "", "Display name of the sender (required)")
	cmd.Flags().StringVar(&kind, "kind", "chat", "Message kind: chat, poll_creation")
	cmd.Flags().BoolVar(&fromSelf, "from-self", false, "Message was sent by the bot's own account")
	_ = cmd.MarkFlagRequired("sender")

	return cmd
}
