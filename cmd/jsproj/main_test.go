package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/jsproj/internal/adapters/fs"
	"go.trai.ch/jsproj/internal/adapters/telemetry"
	"go.trai.ch/jsproj/internal/app"
	"go.trai.ch/jsproj/internal/core/domain"
	"go.trai.ch/jsproj/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newComponents(t *testing.T, settings *mocks.MockSettingsLoader, log *mocks.MockLogger) ComponentProvider {
	t.Helper()
	ctrl := gomock.NewController(t)

	application := app.New(
		fs.NewAccess(),
		fs.NewLocator(),
		settings,
		mocks.NewMockWatcher(ctrl),
		telemetry.NewNoOpTracer(),
		log,
	)
	return func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: log}, func() {}, nil
	}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := newComponents(t, mocks.NewMockSettingsLoader(ctrl), mocks.NewMockLogger(ctrl))

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "jsproj version")
}

// TestRun_Resolve verifies a resolve against a real project tree.
func TestRun_Resolve(t *testing.T) {
	root := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(root, domain.TernProjectName), []byte(`{"ecmaVersion": 7}`), 0o600))

	ctrl := gomock.NewController(t)
	settings := mocks.NewMockSettingsLoader(ctrl)
	settings.EXPECT().Load(root).Return(domain.DefaultSettings(), nil)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"resolve", root, "--json"}, stdout, new(bytes.Buffer),
		newComponents(t, settings, log))

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), `"ecmaLevel": 7`)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 and logs when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	dir := t.TempDir()

	ctrl := gomock.NewController(t)
	settings := mocks.NewMockSettingsLoader(ctrl)
	settings.EXPECT().Load(dir).Return(nil, domain.ErrSettingsParseFailed)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Error(gomock.Any()).Times(1)

	exitCode := run(context.Background(), []string{"resolve", dir}, new(bytes.Buffer), new(bytes.Buffer),
		newComponents(t, settings, log))

	assert.Equal(t, 1, exitCode)
}
