// Package preview implements the preview command for composing a devlog
// post without touching LinkedIn.
package preview

import (
	"fmt"

	"github.com/alan/devlog-poster/cmd"
	"github.com/alan/devlog-poster/internal/commands"
	"github.com/spf13/cobra"
)

// NewPreviewCmd creates and returns the preview command
func NewPreviewCmd(globalConfigFile *string, loadConfig func(string) (*cmd.Config, error)) *cobra.Command {
	var repoPath string

	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "Compose the post for the current push without publishing",
		Long: `Run the summarize, filter and compose steps for the push and print the
resulting post text to stdout. No LinkedIn credentials are needed; text
generation still runs when OPENAI_API_KEY is set.`,
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*globalConfigFile)
			if err != nil {
				return err
			}

			result, err := commands.BuildPost(cobraCmd.Context(), cfg, repoPath)
			if err != nil {
				return err
			}

			if result.Decision.Skip {
				fmt.Printf("Would skip this push: %s\n", result.Decision.Reason)
				return nil
			}

			fmt.Println(result.Text)
			return nil
		},
	}

	previewCmd.Flags().StringVar(&repoPath, "repo-path", ".", "Path to the checked-out repository to inspect")

	return previewCmd
}
