package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fanhub-webhooks/internal/webhook"
	"fanhub-webhooks/pkg/forwarder"
)

var errSendFailed = errors.New("send failed")

func newSendCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Sign a body and POST it to an endpoint",
		Long: `Sign a JSON body with the current timestamp and POST it.
The response is printed as JSON.

Examples:
  webhookctl send --url http://localhost:8080/api/webhooks/signup --file signup.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			url := v.GetString("url")
			if url == "" {
				return errors.New("--url is required")
			}
			cfg, err := webhookConfig(v, 0)
			if err != nil {
				return err
			}
			body, err := readBody(cmd, v)
			if err != nil {
				return err
			}
			if !json.Valid(body) {
				return errors.New("body is not valid JSON")
			}

			// Sign the exact bytes the forwarder will put on the wire.
			wire, err := json.Marshal(json.RawMessage(body))
			if err != nil {
				return fmt.Errorf("encode body: %w", err)
			}

			timestamp := strconv.FormatInt(time.Now().Unix(), 10)
			signature := webhook.NewValidator(cfg).GenerateSignature(wire, timestamp)

			ctx, cancel := context.WithTimeout(cmd.Context(), v.GetDuration("timeout"))
			defer cancel()

			fwd := forwarder.New(forwarder.WithTimeout(v.GetDuration("timeout")))
			res := fwd.Forward(ctx, url, json.RawMessage(wire), map[string]string{
				cfg.SignatureHeader(): webhook.SignaturePrefix + signature,
				cfg.TimestampHeader(): timestamp,
			})

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(res); err != nil {
				return err
			}
			if !res.Success {
				return errSendFailed
			}
			return nil
		},
	}

	cmd.Flags().String("url", "", "endpoint to POST to")
	cmd.Flags().Duration("timeout", forwarder.DefaultTimeout, "request timeout")
	return cmd
}
