package generate

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alan/devlog-poster/cmd"
	"github.com/alan/devlog-poster/internal/compose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSummarizer returns fixed output for fallback combinator tests
type stubSummarizer struct {
	text  string
	err   error
	calls int
}

func (s *stubSummarizer) Summarize(_ context.Context, _ Request) (string, error) {
	s.calls++
	return s.text, s.err
}

func TestStaticMatchesComposedText(t *testing.T) {
	req := Request{
		Repo:      "acme/app",
		Subjects:  []string{"Fix bug", "Add feature"},
		Shortstat: "2 files changed",
		Link:      "https://github.com/acme/app/commit/abc",
	}

	text, err := Static{}.Summarize(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, compose.Fallback(req.Repo, req.Subjects, req.Shortstat, req.Link), text)
}

func TestWithFallback(t *testing.T) {
	req := Request{Repo: "acme/app", Link: "https://x/y"}

	t.Run("primary success is used and trimmed", func(t *testing.T) {
		primary := &stubSummarizer{text: "  generated post \n"}
		fallback := &stubSummarizer{text: "fallback"}

		text, err := WithFallback(primary, fallback).Summarize(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "generated post", text)
		assert.Zero(t, fallback.calls)
	})

	t.Run("primary error falls back", func(t *testing.T) {
		primary := &stubSummarizer{err: errors.New("api unavailable")}
		fallback := &stubSummarizer{text: "fallback"}

		text, err := WithFallback(primary, fallback).Summarize(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "fallback", text)
		assert.Equal(t, 1, fallback.calls)
	})

	t.Run("primary empty output falls back", func(t *testing.T) {
		primary := &stubSummarizer{text: "   \n"}
		fallback := &stubSummarizer{text: "fallback"}

		text, err := WithFallback(primary, fallback).Summarize(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "fallback", text)
	})
}

func TestForConfig(t *testing.T) {
	withoutKey := ForConfig(&cmd.Config{})
	assert.IsType(t, Static{}, withoutKey)

	withKey := ForConfig(&cmd.Config{OpenAIKey: "sk-test", OpenAIModel: "gpt-4.1-mini"})
	assert.IsType(t, fallbackSummarizer{}, withKey)
}

func TestLoadStyleGuide(t *testing.T) {
	assert.Empty(t, LoadStyleGuide(""))
	assert.Empty(t, LoadStyleGuide(filepath.Join(t.TempDir(), "missing.txt")))

	path := filepath.Join(t.TempDir(), "style.txt")
	require.NoError(t, os.WriteFile(path, []byte("keep it short"), 0600))
	assert.Equal(t, "keep it short", LoadStyleGuide(path))
}
