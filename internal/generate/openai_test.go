package generate

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func responsesBody(text string) string {
	return `{"output":[{"content":[{"type":"output_text","text":` + strings.TrimSpace(string(mustJSON(text))) + `}]}]}`
}

func mustJSON(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}

func TestOpenAISummarize(t *testing.T) {
	var gotAuth string
	var gotPayload responsesPayload

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/responses", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &gotPayload))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(responsesBody("Shipped retry logic today 🚀")))
	}))
	defer server.Close()

	client := NewOpenAI("sk-test", "gpt-4.1-mini", "keep it punchy")
	client.BaseURL = server.URL

	text, err := client.Summarize(context.Background(), Request{
		Repo:      "acme/app",
		Subjects:  []string{"Add retry logic"},
		Files:     []string{"internal/upload/retry.go"},
		Shortstat: "1 file changed",
		Link:      "https://github.com/acme/app/commit/abc",
	})
	require.NoError(t, err)

	assert.Equal(t, "Shipped retry logic today 🚀", text)
	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "gpt-4.1-mini", gotPayload.Model)
	require.Len(t, gotPayload.Input, 2)
	assert.Contains(t, gotPayload.Input[0].Content, "keep it punchy")
	assert.Contains(t, gotPayload.Input[1].Content, "acme/app")
	assert.Contains(t, gotPayload.Input[1].Content, "Add retry logic")
}

func TestOpenAISummarizeCapsPromptSize(t *testing.T) {
	var gotPayload responsesPayload

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotPayload))
		_, _ = w.Write([]byte(responsesBody("ok")))
	}))
	defer server.Close()

	client := NewOpenAI("sk-test", "gpt-4.1-mini", "")
	client.BaseURL = server.URL

	subjects := make([]string, 25)
	files := make([]string, 60)
	for i := range subjects {
		subjects[i] = "subject"
	}
	for i := range files {
		files[i] = "file.go"
	}

	_, err := client.Summarize(context.Background(), Request{Repo: "acme/app", Subjects: subjects, Files: files})
	require.NoError(t, err)

	var data Request
	idx := strings.Index(gotPayload.Input[1].Content, "{")
	require.NoError(t, json.Unmarshal([]byte(gotPayload.Input[1].Content[idx:]), &data))
	assert.Len(t, data.Subjects, maxPromptSubjects)
	assert.Len(t, data.Files, maxPromptFiles)
}

func TestOpenAISummarizeErrors(t *testing.T) {
	t.Run("http error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := NewOpenAI("sk-test", "gpt-4.1-mini", "")
		client.BaseURL = server.URL

		_, err := client.Summarize(context.Background(), Request{Repo: "acme/app"})
		assert.ErrorContains(t, err, "openai responded with status")
	})

	t.Run("no output text is empty not an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"output":[]}`))
		}))
		defer server.Close()

		client := NewOpenAI("sk-test", "gpt-4.1-mini", "")
		client.BaseURL = server.URL

		text, err := client.Summarize(context.Background(), Request{Repo: "acme/app"})
		require.NoError(t, err)
		assert.Empty(t, text)
	})
}
