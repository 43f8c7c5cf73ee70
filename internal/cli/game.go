package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameStartCmd())
	cmd.AddCommand(newGameSubmitCmd())
	cmd.AddCommand(newGameSkipCmd())
	cmd.AddCommand(newGameRevealCmd())
	cmd.AddCommand(newGameWinnerCmd())

	return cmd
}

func newGameStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start <code>",
		Short: "Start the game (owner only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]

			var result RoomView

			if err := client.Post(fmt.Sprintf("/api/v1/rooms/%s/start", code), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameSubmitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "submit <code> <card-id> [card-id...]",
		Short: "Submit answer card(s) for the current prompt",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]

			req := map[string][]string{"card_ids": args[1:]}

			if err := client.Post(fmt.Sprintf("/api/v1/rooms/%s/submit", code), req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Submitted")
			return nil
		},
	}
}

func newGameSkipCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "skip <code>",
		Short: "Skip the current prompt (judge only, before submissions)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]

			if err := client.Post(fmt.Sprintf("/api/v1/rooms/%s/skip-prompt", code), nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Prompt skipped")
			return nil
		},
	}
}

func newGameRevealCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reveal <code>",
		Short: "Reveal the next submission (judge only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]

			if err := client.Post(fmt.Sprintf("/api/v1/rooms/%s/reveal", code), nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Revealed")
			return nil
		},
	}
}

func newGameWinnerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "winner <code> <player-id>",
		Short: "Pick the round winner (judge only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]

			req := map[string]string{"winner_id": args[1]}

			if err := client.Post(fmt.Sprintf("/api/v1/rooms/%s/winner", code), req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Winner selected")
			return nil
		},
	}
}
