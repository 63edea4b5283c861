// Package config builds the devlog configuration from the optional defaults
// file and the process environment.
package config

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/alan/devlog-poster/cmd"
	"gopkg.in/yaml.v3"
)

// Defaults applied when neither the file nor the environment say otherwise.
const (
	DefaultAPIVersion  = "202601"
	DefaultOpenAIModel = "gpt-4.1-mini"
)

// Load builds the configuration: YAML defaults file first (missing file is
// fine), then environment variables on top. Secrets are only ever read from
// the environment.
func Load(filename string) (*cmd.Config, error) {
	config := &cmd.Config{}

	data, err := os.ReadFile(filename) //nolint:gosec // Config filename is from command-line flag
	if err == nil {
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	applyEnv(config)
	applyDefaults(config)

	return config, nil
}

func applyEnv(config *cmd.Config) {
	setIfPresent(&config.AuthorURN, "LINKEDIN_AUTHOR_URN")
	setIfPresent(&config.AccessToken, "LINKEDIN_ACCESS_TOKEN")
	setIfPresent(&config.APIVersion, "LINKEDIN_VERSION")
	setIfPresent(&config.Repo, "GITHUB_REPO")
	setIfPresent(&config.BeforeSHA, "BEFORE_SHA")
	setIfPresent(&config.AfterSHA, "AFTER_SHA")
	setIfPresent(&config.StyleGuidePath, "STYLE_GUIDE_PATH")
	setIfPresent(&config.OpenAIKey, "OPENAI_API_KEY")
	setIfPresent(&config.OpenAIModel, "OPENAI_MODEL")
	setIfPresent(&config.GitHubToken, "GITHUB_TOKEN")

	if v := envValue("LINKEDIN_VISIBILITY"); v != "" {
		config.Visibility = cmd.ParseVisibility(v)
	}
	if v := envValue("LINKEDIN_POST_MODE"); v != "" {
		config.PostMode = cmd.ParsePostMode(strings.ToLower(v))
	}
	switch envValue("DRY_RUN") {
	case "1", "true", "yes":
		config.DryRun = true
	}
}

func applyDefaults(config *cmd.Config) {
	if config.APIVersion == "" {
		config.APIVersion = DefaultAPIVersion
	}
	if config.Visibility == "" {
		config.Visibility = cmd.VisibilityPublic
	}
	if config.PostMode == "" {
		config.PostMode = cmd.ModeAuto
	}
	if config.OpenAIModel == "" {
		config.OpenAIModel = DefaultOpenAIModel
	}
}

func setIfPresent(dst *string, key string) {
	if v := envValue(key); v != "" {
		*dst = v
	}
}

func envValue(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

// Validate checks that the fields every publish run needs are present
func Validate(config *cmd.Config) error {
	if config.AuthorURN == "" {
		return fmt.Errorf("LINKEDIN_AUTHOR_URN is required")
	}
	if config.AccessToken == "" {
		return fmt.Errorf("LINKEDIN_ACCESS_TOKEN is required")
	}
	return nil
}

// TokenFingerprint returns a short one-way hash of the access token, safe to
// log. The token itself must never reach the diagnostic stream.
func TokenFingerprint(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])[:10]
}
