package cmd

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"industry-flow/internal/entities"
	"industry-flow/internal/notifier"
	"industry-flow/internal/render"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print new notifications as they arrive",
	Long: `Poll the notification feed of a running API and print each new unread
notification once.

Notifications that are already unread when watching starts are skipped
unless --show-existing is set. Stop with Ctrl+C.`,
	Example: `  industry-flow watch --email ada@example.com --interval 10s
  industry-flow watch --email ada@example.com --show-existing --mark-read`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		log, err := remoteLogger(cmd)
		if err != nil {
			return err
		}
		c, err := login(cmd, log)
		if err != nil {
			return err
		}

		interval, _ := cmd.Flags().GetDuration("interval")
		showExisting, _ := cmd.Flags().GetBool("show-existing")
		markRead, _ := cmd.Flags().GetBool("mark-read")

		out := cmd.OutOrStdout()
		poller := notifier.NewPoller(c, log,
			notifier.WithInterval(interval),
			notifier.WithShowExisting(showExisting),
		)

		err = poller.Run(ctx, func(ctx context.Context, n entities.Notification) {
			_, _ = fmt.Fprintln(out, render.Notification(n))
			if !markRead {
				return
			}
			if err := c.MarkNotificationRead(ctx, n.ID); err != nil {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), render.Error(err))
			}
		})
		log.Debugw("watch stopped", "seen", poller.Seen())
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	addRemoteFlags(watchCmd)

	watchCmd.Flags().Duration("interval", notifier.DefaultInterval, "Polling interval")
	watchCmd.Flags().Bool("show-existing", false, "Also print notifications that were unread before watching started")
	watchCmd.Flags().Bool("mark-read", false, "Mark printed notifications as read")
}
