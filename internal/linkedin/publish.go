package linkedin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/alan/devlog-poster/cmd"
)

// restliIDHeader carries the server-assigned id of a newly created post
const restliIDHeader = "X-Restli-Id"

// postsRequest is the /rest/posts wire format
type postsRequest struct {
	Author                    string            `json:"author"`
	Commentary                string            `json:"commentary"`
	Visibility                string            `json:"visibility"`
	Distribution              postsDistribution `json:"distribution"`
	LifecycleState            string            `json:"lifecycleState"`
	IsReshareDisabledByAuthor bool              `json:"isReshareDisabledByAuthor"`
}

type postsDistribution struct {
	FeedDistribution               string   `json:"feedDistribution"`
	TargetEntities                 []string `json:"targetEntities"`
	ThirdPartyDistributionChannels []string `json:"thirdPartyDistributionChannels"`
}

// ugcRequest is the /v2/ugcPosts wire format
type ugcRequest struct {
	Author          string             `json:"author"`
	LifecycleState  string             `json:"lifecycleState"`
	SpecificContent ugcSpecificContent `json:"specificContent"`
	Visibility      ugcVisibility      `json:"visibility"`
}

type ugcSpecificContent struct {
	ShareContent ugcShareContent `json:"com.linkedin.ugc.ShareContent"`
}

type ugcShareContent struct {
	ShareCommentary    ugcText    `json:"shareCommentary"`
	ShareMediaCategory string     `json:"shareMediaCategory"`
	Media              []ugcMedia `json:"media"`
}

type ugcText struct {
	Text string `json:"text"`
}

type ugcMedia struct {
	Status      string `json:"status"`
	OriginalURL string `json:"originalUrl"`
}

type ugcVisibility struct {
	MemberNetworkVisibility string `json:"com.linkedin.ugc.MemberNetworkVisibility"`
}

// CreatePost publishes via the versioned Posts API and returns the new
// post's server-assigned id.
func (c *Client) CreatePost(ctx context.Context, text string) (string, error) {
	body := postsRequest{
		Author:     c.authorURN,
		Commentary: text,
		Visibility: string(c.visibility),
		Distribution: postsDistribution{
			FeedDistribution:               "MAIN_FEED",
			TargetEntities:                 []string{},
			ThirdPartyDistributionChannels: []string{},
		},
		LifecycleState:            "PUBLISHED",
		IsReshareDisabledByAuthor: false,
	}

	headers, err := c.do(ctx, http.MethodPost, "/rest/posts", body, true)
	if err != nil {
		return "", fmt.Errorf("posts api: %w", err)
	}
	return headers.Get(restliIDHeader), nil
}

// CreateUGCPost publishes via the UGC API, attaching the link as an article
// share, and returns the new post's server-assigned id.
func (c *Client) CreateUGCPost(ctx context.Context, text, link string) (string, error) {
	body := ugcRequest{
		Author:         c.authorURN,
		LifecycleState: "PUBLISHED",
		SpecificContent: ugcSpecificContent{
			ShareContent: ugcShareContent{
				ShareCommentary:    ugcText{Text: text},
				ShareMediaCategory: "ARTICLE",
				Media: []ugcMedia{
					{Status: "READY", OriginalURL: link},
				},
			},
		},
		Visibility: ugcVisibility{
			MemberNetworkVisibility: string(c.visibility),
		},
	}

	headers, err := c.do(ctx, http.MethodPost, "/v2/ugcPosts", body, true)
	if err != nil {
		return "", fmt.Errorf("ugc api: %w", err)
	}
	return headers.Get(restliIDHeader), nil
}

// Publish sends the post using the configured mode. In auto mode the Posts
// API is tried first; only an API-level failure (non-2xx) triggers a single
// UGC attempt, whose outcome is then the run's outcome.
func (c *Client) Publish(ctx context.Context, mode cmd.PostMode, text, link string) (string, error) {
	switch mode {
	case cmd.ModePosts:
		return c.CreatePost(ctx, text)
	case cmd.ModeUGC:
		return c.CreateUGCPost(ctx, text, link)
	default:
		id, err := c.CreatePost(ctx, text)
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			slog.Warn("Posts API rejected the share, falling back to UGC", "status", apiErr.Status)
			return c.CreateUGCPost(ctx, text, link)
		}
		return id, err
	}
}
