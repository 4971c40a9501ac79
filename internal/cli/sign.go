package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fanhub-webhooks/internal/webhook"
)

func newSignCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Print the signature headers for a body",
		Long: `Print the signature and timestamp headers a sender would attach to the body.

Examples:
  webhookctl sign --data '{"userId":"u1"}'
  webhookctl sign --file body.json --timestamp 1700000000
  webhookctl sign --file body.json --no-timestamp`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := webhookConfig(v, 0)
			if err != nil {
				return err
			}
			body, err := readBody(cmd, v)
			if err != nil {
				return err
			}

			timestamp := ""
			if !v.GetBool("no-timestamp") {
				timestamp = v.GetString("timestamp")
				if timestamp == "" {
					timestamp = strconv.FormatInt(time.Now().Unix(), 10)
				}
			}

			signature := webhook.NewValidator(cfg).GenerateSignature(body, timestamp)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %s%s\n", cfg.SignatureHeader(), webhook.SignaturePrefix, signature)
			if timestamp != "" {
				fmt.Fprintf(out, "%s: %s\n", cfg.TimestampHeader(), timestamp)
			}
			return nil
		},
	}

	cmd.Flags().String("timestamp", "", "unix timestamp to sign with (default now)")
	cmd.Flags().Bool("no-timestamp", false, "sign the body alone, without a timestamp")
	return cmd
}
