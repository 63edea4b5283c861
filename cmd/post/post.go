// Package post implements the post command: summarize the push, decide
// whether it is worth sharing, and publish it to LinkedIn.
package post

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alan/devlog-poster/cmd"
	"github.com/alan/devlog-poster/internal/commands"
	"github.com/alan/devlog-poster/internal/config"
	"github.com/alan/devlog-poster/internal/linkedin"
	"github.com/spf13/cobra"
)

// PostCommand encapsulates the post command
type PostCommand struct {
	Config   *cmd.Config
	RepoPath string
	DryRun   bool
}

// NewPostCmd creates and returns the post command
func NewPostCmd(globalConfigFile *string, loadConfig func(string) (*cmd.Config, error)) *cobra.Command {
	postCmd := &PostCommand{}

	cobraCmd := &cobra.Command{
		Use:   "post",
		Short: "Post a dev update for the current push to LinkedIn",
		Long: `Inspect the push described by BEFORE_SHA/AFTER_SHA (falling back to the
current HEAD), skip it if it is doc-only, merge-only or dependency-only,
compose or generate the update text, and publish it.

Exits 0 on success or an intentional skip, 1 on configuration or publish
failure.`,
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*globalConfigFile)
			if err != nil {
				return err
			}
			if postCmd.DryRun {
				cfg.DryRun = true
			}
			postCmd.Config = cfg

			return postCmd.Run(cobraCmd.Context())
		},
	}

	cobraCmd.Flags().StringVar(&postCmd.RepoPath, "repo-path", ".", "Path to the checked-out repository to inspect")
	cobraCmd.Flags().BoolVar(&postCmd.DryRun, "dry-run", false, "Compose the post but do not publish it")

	return cobraCmd
}

// Run executes the full post workflow
func (pc *PostCommand) Run(ctx context.Context) error {
	if err := config.Validate(pc.Config); err != nil {
		return err
	}

	slog.Debug("Run configuration",
		"author", pc.Config.AuthorURN,
		"mode", string(pc.Config.PostMode),
		"visibility", string(pc.Config.Visibility),
		"version", pc.Config.APIVersion,
		"token_len", len(pc.Config.AccessToken),
		"token_sha256_prefix", config.TokenFingerprint(pc.Config.AccessToken))

	client := linkedin.NewClient(ctx, pc.Config.AccessToken, pc.Config.AuthorURN, pc.Config.Visibility, pc.Config.APIVersion)
	if err := client.VerifyToken(ctx); err != nil {
		return err
	}

	result, err := commands.BuildPost(ctx, pc.Config, pc.RepoPath)
	if err != nil {
		return err
	}

	if result.Decision.Skip {
		slog.Info("Skipping push", "reason", result.Decision.Reason)
		return nil
	}

	if pc.Config.DryRun {
		slog.Info("Dry run, not posting")
		fmt.Println(result.Text)
		return nil
	}

	id, err := client.Publish(ctx, pc.Config.PostMode, result.Text, result.Link)
	if err != nil {
		return err
	}

	slog.Info("Published devlog", "mode", string(pc.Config.PostMode), "id", id)
	return nil
}
