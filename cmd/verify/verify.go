// Package verify implements the verify command for checking LinkedIn
// credentials before wiring the tool into CI.
package verify

import (
	"fmt"
	"log/slog"

	"github.com/alan/devlog-poster/cmd"
	"github.com/alan/devlog-poster/internal/config"
	"github.com/alan/devlog-poster/internal/linkedin"
	"github.com/spf13/cobra"
)

// NewVerifyCmd creates and returns the verify command
func NewVerifyCmd(globalConfigFile *string, loadConfig func(string) (*cmd.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check that the configured LinkedIn credentials work",
		Long: `Validate the configuration and call the userinfo endpoint with the
configured access token. Only non-sensitive token diagnostics (length and a
truncated hash) are ever logged.`,
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*globalConfigFile)
			if err != nil {
				return err
			}
			if err := config.Validate(cfg); err != nil {
				return err
			}

			slog.Debug("Token diagnostics",
				"token_len", len(cfg.AccessToken),
				"token_sha256_prefix", config.TokenFingerprint(cfg.AccessToken))

			client := linkedin.NewClient(cobraCmd.Context(), cfg.AccessToken, cfg.AuthorURN, cfg.Visibility, cfg.APIVersion)
			if err := client.VerifyToken(cobraCmd.Context()); err != nil {
				return err
			}

			fmt.Printf("✅ Token accepted (fingerprint %s)\n", config.TokenFingerprint(cfg.AccessToken))
			return nil
		},
	}
}
