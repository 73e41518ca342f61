package cli

import (
	"github.com/spf13/cobra"

	"github.com/gymsplit/notification-scheduler/internal/config"
	"github.com/gymsplit/notification-scheduler/internal/infra/mailer"
	"github.com/gymsplit/notification-scheduler/internal/infra/planfiles"
	"github.com/gymsplit/notification-scheduler/internal/service/delivery"
)

func newSendCmd() *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send today's workout email to every recipient",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, cleanup, err := newStack(ctx, "gymsplit-send")
			if err != nil {
				return err
			}
			defer cleanup()

			if err := config.ValidateForSend(st.cfg); err != nil {
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

			smtp, err := mailer.NewSMTPMailer(st.cfg.SMTP)
			if err != nil {
				return err
			}

			svc := delivery.NewService(
				st.selector, st.renderer, smtp, st.activity,
				st.recorder, st.metrics, st.cfg.Links, true,
			)

			result, err := svc.Run(ctx, recipients, today)
			if err != nil {
				return err
			}

			printInfo("run %s: %d sent, %d rest, %d failed", result.RunID, result.Sent, result.Rest, result.Failed)
			if result.Failed > 0 {
				printWarning("%d deliveries failed, see logs", result.Failed)
			} else {
				printSuccess("all deliveries completed")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Send for this date (YYYY-MM-DD) instead of today")
	return cmd
}
