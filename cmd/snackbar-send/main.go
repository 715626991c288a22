// Package main provides the CLI entrypoint for snackbar-send.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/llehouerou/snackbar/internal/notify"
)

var opts struct {
	verbose  bool
	appName  string
	icon     string
	timeout  string
	urgency  string
	replaces uint32
}

var rootCmd = &cobra.Command{
	Use:   "snackbar-send <title> [body]",
	Short: "Send a desktop notification over D-Bus",
	Long: `snackbar-send sends a one-shot notification through the
org.freedesktop.Notifications service.

It exercises the same D-Bus bridge the snackbar TUI mirrors through, so a
notification that arrives from snackbar-send means mirroring will work too.
Prints the notification ID assigned by the daemon; pass it back with
--replaces to update the notification in place.

Examples:
  # Simple notification
  snackbar-send "Build finished"

  # Critical, stays until dismissed
  snackbar-send "Disk almost full" "3% left on /" --urgency critical --timeout 0

  # Replace a previous notification
  snackbar-send "Download done" --replaces 42`,
	Args: cobra.RangeArgs(1, 2),
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		setupLogger()
	},
	RunE:         runSend,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.Flags().StringVar(&opts.appName, "app-name", "snackbar",
		"Application name reported to the daemon")
	rootCmd.Flags().StringVar(&opts.icon, "icon", "",
		"Icon name or image path")
	rootCmd.Flags().StringVar(&opts.timeout, "timeout", "",
		"Expiry duration (e.g. 5s); 0 never expires (default: server decides)")
	rootCmd.Flags().StringVar(&opts.urgency, "urgency", "normal",
		"Urgency level (low, normal, critical)")
	rootCmd.Flags().Uint32Var(&opts.replaces, "replaces", 0,
		"ID of a previous notification to replace")
}

// setupLogger configures the global slog logger.
// Logs go to stderr so stdout carries only the notification ID.
func setupLogger() {
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func runSend(_ *cobra.Command, args []string) error {
	urgency, err := notify.ParseUrgency(opts.urgency)
	if err != nil {
		return err
	}
	timeout, err := parseTimeout(opts.timeout)
	if err != nil {
		return err
	}

	var body string
	if len(args) > 1 {
		body = args[1]
	}

	notifier, err := notify.Connect(opts.appName)
	if err != nil {
		return fmt.Errorf("connect to notification service: %w", err)
	}

	slog.Debug("sending notification",
		"title", args[0], "urgency", opts.urgency, "timeout", timeout, "replaces", opts.replaces)

	id, err := notifier.Notify(notify.Notification{
		Title:      args[0],
		Body:       body,
		Icon:       opts.icon,
		Timeout:    timeout,
		ReplacesID: opts.replaces,
		Urgency:    urgency,
	})
	if err != nil {
		return fmt.Errorf("send notification: %w", err)
	}

	fmt.Println(id)
	return nil
}

// parseTimeout converts the flag value to the wire expiry in milliseconds:
// -1 lets the server decide, 0 never expires.
func parseTimeout(s string) (int32, error) {
	if s == "" {
		return -1, nil
	}
	if s == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", s, err)
	}
	if d < 0 {
		return -1, nil
	}
	return int32(d / time.Millisecond), nil
}
