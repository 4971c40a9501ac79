package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fanhub-webhooks/internal/webhook"
)

// envPrefix maps flags to environment variables, e.g. --secret to WEBHOOK_SECRET.
const envPrefix = "WEBHOOK"

// NewRootCmd builds the webhookctl command tree. Each call returns an
// independent tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:   "webhookctl",
		Short: "Sign, verify and send FanHub webhooks",
		Long: `webhookctl produces and checks HMAC-SHA256 webhook signatures the same
way the webhook gateway does.

The shared secret is read from --secret or WEBHOOK_SECRET.

Examples:
  webhookctl sign --data '{"userId":"u1"}'
  webhookctl verify --file body.json --signature sha256=ab12... --timestamp 1700000000
  webhookctl send --url http://localhost:8080/api/webhooks/signup --file signup.json`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return v.BindPFlags(cmd.Flags())
		},
	}

	root.PersistentFlags().String("secret", "", "shared HMAC secret (env WEBHOOK_SECRET)")
	root.PersistentFlags().String("signature-header", webhook.DefaultSignatureHeader, "signature header name")
	root.PersistentFlags().String("timestamp-header", webhook.DefaultTimestampHeader, "timestamp header name")
	root.PersistentFlags().String("data", "", "request body; read from --file or stdin when empty")
	root.PersistentFlags().String("file", "", "file holding the request body")

	root.AddCommand(newSignCmd(v), newVerifyCmd(v), newSendCmd(v))
	return root
}

// Execute runs webhookctl with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

func webhookConfig(v *viper.Viper, tolerance int) (webhook.Config, error) {
	return webhook.NewConfig([]byte(v.GetString("secret")),
		webhook.WithSignatureHeader(v.GetString("signature-header")),
		webhook.WithTimestampHeader(v.GetString("timestamp-header")),
		webhook.WithTolerance(tolerance),
	)
}

// readBody returns --data, the contents of --file, or stdin, in that order.
func readBody(cmd *cobra.Command, v *viper.Viper) ([]byte, error) {
	if data := v.GetString("data"); data != "" {
		return []byte(data), nil
	}
	if path := v.GetString("file"); path != "" {
		body, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read body file: %w", err)
		}
		return body, nil
	}
	body, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("read body from stdin: %w", err)
	}
	return body, nil
}
