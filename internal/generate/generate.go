// Package generate produces the post text. A Summarizer is a capability:
// the OpenAI-backed implementation rewrites the push data into prose, the
// static one renders the deterministic composed text, and WithFallback
// chains the two so generation failures never block a post.
package generate

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/alan/devlog-poster/cmd"
	"github.com/alan/devlog-poster/internal/compose"
)

// Request carries the push data handed to a summarizer. The raw diff is
// deliberately absent; only metadata leaves the machine.
type Request struct {
	Repo        string   `json:"repo"`
	Subjects    []string `json:"commit_subjects"`
	Files       []string `json:"changed_files"`
	Shortstat   string   `json:"shortstat"`
	Link        string   `json:"link"`
	Description string   `json:"repo_description,omitempty"`
}

// Summarizer turns a push summary into post text
type Summarizer interface {
	Summarize(ctx context.Context, req Request) (string, error)
}

// Static renders the deterministic composed text. It never fails.
type Static struct{}

// Summarize implements Summarizer
func (Static) Summarize(_ context.Context, req Request) (string, error) {
	return compose.Fallback(req.Repo, req.Subjects, req.Shortstat, req.Link), nil
}

type fallbackSummarizer struct {
	primary  Summarizer
	fallback Summarizer
}

// WithFallback returns a Summarizer that tries primary and, on error or
// empty output, silently uses fallback instead.
func WithFallback(primary, fallback Summarizer) Summarizer {
	return fallbackSummarizer{primary: primary, fallback: fallback}
}

func (f fallbackSummarizer) Summarize(ctx context.Context, req Request) (string, error) {
	text, err := f.primary.Summarize(ctx, req)
	if err != nil {
		slog.Warn("Summarizer failed, using composed text", "error", err)
		return f.fallback.Summarize(ctx, req)
	}
	if strings.TrimSpace(text) == "" {
		slog.Warn("Summarizer returned empty text, using composed text")
		return f.fallback.Summarize(ctx, req)
	}
	return strings.TrimSpace(text), nil
}

// ForConfig selects the summarizer: OpenAI-backed with a static fallback
// when a key is configured, plain static otherwise.
func ForConfig(config *cmd.Config) Summarizer {
	if config.OpenAIKey == "" {
		return Static{}
	}
	style := LoadStyleGuide(config.StyleGuidePath)
	return WithFallback(NewOpenAI(config.OpenAIKey, config.OpenAIModel, style), Static{})
}

// LoadStyleGuide reads the style guide text. A missing or unreadable file
// means no style, not an error.
func LoadStyleGuide(path string) string {
	if path == "" {
		return ""
	}
	data, err := os.ReadFile(path) //nolint:gosec // Path comes from operator configuration
	if err != nil {
		slog.Warn("Style guide not readable, using empty style", "path", path)
		return ""
	}
	return string(data)
}
