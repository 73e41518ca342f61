package cli

import (
	"github.com/spf13/cobra"

	"github.com/gymsplit/notification-scheduler/internal/config"
	"github.com/gymsplit/notification-scheduler/internal/infra/mailer"
	"github.com/gymsplit/notification-scheduler/internal/infra/planfiles"
	"github.com/gymsplit/notification-scheduler/internal/infra/sendrecorder"
	"github.com/gymsplit/notification-scheduler/internal/service/delivery"
)

func newRenderCmd() *cobra.Command {
	var (
		dateFlag string
		outDir   string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render today's emails to local HTML files without sending",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, cleanup, err := newStack(ctx, "gymsplit-render")
			if err != nil {
				return err
			}
			defer cleanup()

			if err := config.ValidateForServe(st.cfg); err != nil {
				return err
			}

			today, err := resolveDate(st.cfg, dateFlag)
			if err != nil {
				return err
			}

			recipients, err := planfiles.LoadRecipients(st.cfg.DataDir)
			if err != nil {
				return err
			}

			// Preview: files instead of SMTP, no sent markers, no result
			// recording. Rotation state still advances exactly as a real
			// send would, so previews match what the send will contain.
			svc := delivery.NewService(
				st.selector, st.renderer, mailer.NewFileMailer(outDir), st.activity,
				sendrecorder.NewNoopRecorder(), nil, st.cfg.Links, false,
			)

			result, err := svc.Run(ctx, recipients, today)
			if err != nil {
				return err
			}

			printSuccess("rendered %d emails to %s (%d rest, %d failed)",
				result.Sent+result.Rest, outDir, result.Rest, result.Failed)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Render for this date (YYYY-MM-DD) instead of today")
	cmd.Flags().StringVar(&outDir, "out", "out", "Directory for rendered HTML files")
	return cmd
}
