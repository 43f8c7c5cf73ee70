package cli

import (
	"github.com/spf13/cobra"
)

func newReportCmd() *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Send a bug report",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"message": message}

			if err := client.Post("/api/v1/report-bug", req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Report sent")
			return nil
		},
	}

	cmd.Flags().StringVar(&message, "message", "", "Report text (required)")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}
