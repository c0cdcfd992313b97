// Command fullsend sends a single message through the Twilio Messaging API.
//
// Credentials and sender identity come from the environment (optionally via
// a .env file): TWILIO_ACCOUNT_SID plus TWILIO_ACCOUNT_TKN or
// TWILIO_API_KEY_SID/TWILIO_API_KEY_SECRET, and TWILIO_SENDER_NUM or
// TWILIO_MESSAGING_SERVICE_SID. The destination and content come from
// flags:
//
//	fullsend --to +15558675309 --body "howdy from fullsend!"
//	fullsend --to +15558675309 --content-sid HX123 --content-var name=Taylor
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tweakdeveloper/fullsend"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

type sendFlags struct {
	to          string
	body        string
	contentSID  string
	contentVars map[string]string
	mediaURL    string
	verbose     bool
}

func newRootCmd() *cobra.Command {
	flags := &sendFlags{}

	cmd := &cobra.Command{
		Use:           "fullsend",
		Short:         "Send a message through Twilio",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return send(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.to, "to", "", "destination phone number")
	cmd.Flags().StringVar(&flags.body, "body", "", "message text")
	cmd.Flags().StringVar(&flags.contentSID, "content-sid", "", "content template SID (alternative to --body)")
	cmd.Flags().StringToStringVar(&flags.contentVars, "content-var", nil, "content template variable as key=value (repeatable)")
	cmd.Flags().StringVar(&flags.mediaURL, "media-url", "", "media attachment URL")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "log requests at debug level")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func send(cmd *cobra.Command, flags *sendFlags) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(flags.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	opts := []fullsend.Option{
		fullsend.WithAccountSID(cfg.AccountSID),
		fullsend.WithRequestLogger(fullsend.NewZapLogger(logger)),
	}
	if cfg.AuthToken != "" {
		opts = append(opts, fullsend.WithAuthToken(cfg.AuthToken))
	} else {
		opts = append(opts, fullsend.WithAPIKey(cfg.APIKeySID, cfg.APIKeySecret))
	}

	client, err := fullsend.New(opts...)
	if err != nil {
		return err
	}
	defer client.Close()

	msgOpts := []fullsend.MessageOption{fullsend.To(flags.to)}
	if cfg.SenderNum != "" {
		msgOpts = append(msgOpts, fullsend.From(cfg.SenderNum))
	}
	if cfg.MessagingServiceSID != "" {
		msgOpts = append(msgOpts, fullsend.MessagingServiceSID(cfg.MessagingServiceSID))
	}
	if flags.body != "" {
		msgOpts = append(msgOpts, fullsend.Body(flags.body))
	}
	if flags.contentSID != "" {
		msgOpts = append(msgOpts, fullsend.ContentSID(flags.contentSID))
		if len(flags.contentVars) > 0 {
			msgOpts = append(msgOpts, fullsend.ContentVariables(flags.contentVars))
		}
	}
	if flags.mediaURL != "" {
		msgOpts = append(msgOpts, fullsend.MediaURL(flags.mediaURL))
	}

	msg, err := fullsend.NewMessage(msgOpts...)
	if err != nil {
		return err
	}

	outcome, err := client.SendMessage(cmd.Context(), msg)
	if err != nil {
		return err
	}

	cmd.Printf("sent %s (%s)\n", outcome.Sid, outcome.Status)

	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)

	return cfg.Build()
}
