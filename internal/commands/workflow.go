// Package commands holds the workflow shared by the post and preview
// commands: summarize the push, run the skip rules, compose the text.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/alan/devlog-poster/cmd"
	"github.com/alan/devlog-poster/internal/compose"
	"github.com/alan/devlog-poster/internal/filter"
	"github.com/alan/devlog-poster/internal/generate"
	"github.com/alan/devlog-poster/internal/github"
	"github.com/alan/devlog-poster/internal/gitlog"
)

// PushResult is the outcome of preparing one push for posting
type PushResult struct {
	Summary  gitlog.Summary
	Decision filter.Decision
	Text     string
	Link     string
}

// ResolveRepoName returns the display name for the repository: the
// configured owner/name when set, the checkout directory's base name
// otherwise.
func ResolveRepoName(config *cmd.Config, repoPath string) string {
	if config.Repo != "" {
		return config.Repo
	}
	abs, err := filepath.Abs(repoPath)
	if err != nil {
		return filepath.Base(repoPath)
	}
	return filepath.Base(abs)
}

// BuildPost summarizes the push, evaluates the skip rules and, when the push
// is postable, produces the final text and link. A skipped push comes back
// with Decision.Skip set and no text.
func BuildPost(ctx context.Context, config *cmd.Config, repoPath string) (*PushResult, error) {
	collector := gitlog.Collector{RepoPath: repoPath}
	if !collector.IsRepository() {
		return nil, fmt.Errorf("%s is not a git repository", repoPath)
	}

	summary, err := collector.Collect(config.BeforeSHA, config.AfterSHA)
	if err != nil {
		return nil, err
	}

	result := &PushResult{Summary: summary, Decision: filter.Evaluate(summary)}
	if result.Decision.Skip {
		return result, nil
	}

	repo := ResolveRepoName(config, repoPath)
	htmlURL, description := repoMetadata(ctx, config, repo)
	result.Link = compose.Link(compose.RepoURL(htmlURL, repo), config.BeforeSHA, config.AfterSHA)

	text, err := generate.ForConfig(config).Summarize(ctx, generate.Request{
		Repo:        repo,
		Subjects:    summary.Subjects,
		Files:       summary.Files,
		Shortstat:   summary.Shortstat,
		Link:        result.Link,
		Description: description,
	})
	if err != nil {
		return nil, err
	}

	result.Text = compose.Truncate(text)
	return result, nil
}

// repoMetadata fetches canonical URL and description when a GitHub token is
// configured. Enrichment is best effort; failures just mean default links.
func repoMetadata(ctx context.Context, config *cmd.Config, repo string) (string, string) {
	if config.GitHubToken == "" || !strings.Contains(repo, "/") {
		return "", ""
	}

	info, err := github.NewClient(ctx, config.GitHubToken).RepoInfo(repo)
	if err != nil {
		slog.Warn("Repository enrichment failed", "repo", repo, "error", err)
		return "", ""
	}
	return info.HTMLURL, info.Description
}
