package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jsproj/internal/adapters/config"
	"go.trai.ch/jsproj/internal/core/domain"
	"go.trai.ch/jsproj/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeSettings(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, domain.SettingsFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newLoader(t *testing.T) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	return config.NewLoader(log), log
}

func TestLoader_Defaults(t *testing.T) {
	loader, _ := newLoader(t)

	settings, err := loader.Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)
}

func TestLoader_Overrides(t *testing.T) {
	loader, _ := newLoader(t)
	dir := t.TempDir()
	path := writeSettings(t, dir, `
debounce: 250ms
ignore:
  - "**/dist/**"
projectMarkers:
  - .tern-project
logFormat: json
`)

	settings, err := loader.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, path, settings.Path)
	assert.Equal(t, 250*time.Millisecond, settings.Debounce)
	assert.Equal(t, []string{"**/dist/**"}, settings.Ignore)
	assert.Equal(t, []string{domain.TernProjectName}, settings.ProjectMarkers)
	assert.Equal(t, domain.LogFormatJSON, settings.LogFormat)
}

func TestLoader_WalksUp(t *testing.T) {
	loader, _ := newLoader(t)
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o750))
	path := writeSettings(t, root, "debounce: 1s\n")

	settings, err := loader.Load(nested)
	require.NoError(t, err)
	assert.Equal(t, path, settings.Path)
	assert.Equal(t, time.Second, settings.Debounce)
}

func TestLoader_EmptyFile(t *testing.T) {
	loader, _ := newLoader(t)
	dir := t.TempDir()
	writeSettings(t, dir, "")

	settings, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDebounce, settings.Debounce)
}

func TestLoader_EmptyMarkersWarns(t *testing.T) {
	loader, log := newLoader(t)
	log.EXPECT().Warn(gomock.Any()).Times(1)
	dir := t.TempDir()
	writeSettings(t, dir, "projectMarkers: []\n")

	settings, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings().ProjectMarkers, settings.ProjectMarkers)
}

func TestLoader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "bad yaml", content: "debounce: [", wantErr: domain.ErrSettingsParseFailed.Error()},
		{name: "unknown field", content: "colour: red\n", wantErr: domain.ErrSettingsParseFailed.Error()},
		{name: "bad duration", content: "debounce: soon\n", wantErr: domain.ErrSettingsParseFailed.Error()},
		{name: "negative duration", content: "debounce: -1s\n", wantErr: domain.ErrSettingsParseFailed.Error()},
		{name: "bad log format", content: "logFormat: xml\n", wantErr: domain.ErrSettingsParseFailed.Error()},
		{name: "bad glob", content: "ignore: ['[oops']\n", wantErr: domain.ErrInvalidIgnorePattern.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, _ := newLoader(t)
			dir := t.TempDir()
			writeSettings(t, dir, tt.content)

			_, err := loader.Load(dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
