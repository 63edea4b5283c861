// Package github enriches the post with repository metadata when a token is
// available. The poster works without it; links then fall back to the
// default github.com URL scheme.
package github

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// Client wraps the GitHub API client
type Client struct {
	client *github.Client
	ctx    context.Context
}

// RepoInfo is the repository metadata the poster cares about
type RepoInfo struct {
	FullName    string
	Description string
	HTMLURL     string
}

// NewClient creates a new GitHub client with token authentication
func NewClient(ctx context.Context, token string) *Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)

	return &Client{
		client: github.NewClient(tc),
		ctx:    ctx,
	}
}

// RepoInfo fetches metadata for an "owner/name" repository
func (c *Client) RepoInfo(fullName string) (*RepoInfo, error) {
	owner, name, err := splitFullName(fullName)
	if err != nil {
		return nil, err
	}

	repo, _, err := c.client.Repositories.Get(c.ctx, owner, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get repository %s: %w", fullName, err)
	}

	return &RepoInfo{
		FullName:    repo.GetFullName(),
		Description: repo.GetDescription(),
		HTMLURL:     repo.GetHTMLURL(),
	}, nil
}

// splitFullName splits "owner/name" into its parts
func splitFullName(fullName string) (string, string, error) {
	parts := strings.SplitN(fullName, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("repository %q is not in owner/name form", fullName)
	}
	return parts[0], parts[1], nil
}
