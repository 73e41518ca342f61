package cli

import (
	"github.com/spf13/cobra"

	"github.com/gymsplit/notification-scheduler/internal/infra/mailer"
	"github.com/gymsplit/notification-scheduler/internal/infra/planfiles"
	"github.com/gymsplit/notification-scheduler/internal/service/summary"
)

func newSummaryCmd() *cobra.Command {
	var (
		dateFlag string
		days     int
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Mail the trailing activity summary to every recipient",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, cleanup, err := newStack(ctx, "gymsplit-summary")
			if err != nil {
				return err
			}
			defer cleanup()

			if err := st.cfg.SMTP.Validate(); err != nil {
				return err
			}

			end, err := resolveDate(st.cfg, dateFlag)
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

			svc := summary.NewService(st.activity, st.renderer, smtp)
			if err := svc.Run(ctx, recipients, end, days); err != nil {
				return err
			}

			printSuccess("summary sent to %d recipients", len(recipients))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Window end date (YYYY-MM-DD), default today")
	cmd.Flags().IntVar(&days, "days", 7, "Window length in days")
	return cmd
}
