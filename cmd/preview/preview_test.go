package preview

import (
	"errors"
	"testing"

	"github.com/alan/devlog-poster/cmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewPreviewCmd tests command creation and initialization
func TestNewPreviewCmd(t *testing.T) {
	configFile := "devlog.yaml"
	loadConfig := func(string) (*cmd.Config, error) {
		return &cmd.Config{}, nil
	}

	previewCmd := NewPreviewCmd(&configFile, loadConfig)

	assert.NotNil(t, previewCmd)
	assert.Equal(t, "preview", previewCmd.Use)
	assert.NotEmpty(t, previewCmd.Short)
	assert.NotNil(t, previewCmd.RunE)
	assert.NotNil(t, previewCmd.Flags().Lookup("repo-path"))
}

// TestPreviewCmd_RunE_ConfigLoadError tests error propagation from config loading
func TestPreviewCmd_RunE_ConfigLoadError(t *testing.T) {
	configFile := "devlog.yaml"
	loadConfig := func(string) (*cmd.Config, error) {
		return nil, errors.New("config exploded")
	}

	previewCmd := NewPreviewCmd(&configFile, loadConfig)
	err := previewCmd.RunE(previewCmd, nil)

	require.Error(t, err)
	assert.ErrorContains(t, err, "config exploded")
}

// TestPreviewCmd_RunE_OutsideRepository tests the loud failure on a non-repo path
func TestPreviewCmd_RunE_OutsideRepository(t *testing.T) {
	configFile := "devlog.yaml"
	loadConfig := func(string) (*cmd.Config, error) {
		return &cmd.Config{Repo: "acme/app"}, nil
	}

	previewCmd := NewPreviewCmd(&configFile, loadConfig)
	require.NoError(t, previewCmd.Flags().Set("repo-path", t.TempDir()))

	err := previewCmd.RunE(previewCmd, nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, "not a git repository")
}
