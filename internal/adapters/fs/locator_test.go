package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jsproj/internal/adapters/fs"
	"go.trai.ch/jsproj/internal/core/domain"
)

func TestLocator_Ancestry(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "src", "lib")
	require.NoError(t, os.MkdirAll(src, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(root, domain.PackageJSONName), []byte(`{}`), 0o600))
	input := filepath.Join(src, "index.js")
	require.NoError(t, os.WriteFile(input, []byte(""), 0o600))

	event, err := fs.NewLocator().Ancestry(input, []string{domain.TernProjectName, domain.PackageJSONName})
	require.NoError(t, err)

	require.NotNil(t, event.File)
	assert.Equal(t, input, event.File.Location)
	require.Len(t, event.File.Parents, 3)
	assert.Equal(t, src, event.File.Parents[0].Location)
	assert.Equal(t, "lib", event.File.Parents[0].Name)

	projectRoot, ok := event.ProjectRoot()
	require.True(t, ok)
	assert.Equal(t, root, projectRoot.Location)
}

func TestLocator_Ancestry_NearestMarkerWins(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "packages", "web")
	require.NoError(t, os.MkdirAll(nested, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(root, domain.PackageJSONName), []byte(`{}`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(nested, domain.TernProjectName), []byte(`{}`), 0o600))

	event, err := fs.NewLocator().Ancestry(nested, []string{domain.TernProjectName, domain.PackageJSONName})
	require.NoError(t, err)

	projectRoot, ok := event.ProjectRoot()
	require.True(t, ok)
	assert.Equal(t, nested, projectRoot.Location)
}

func TestLocator_Ancestry_NoProject(t *testing.T) {
	dir := t.TempDir()

	event, err := fs.NewLocator().Ancestry(dir, []string{"no-such-marker-file"})
	require.NoError(t, err)

	_, ok := event.ProjectRoot()
	assert.False(t, ok)
}

func TestLocator_Ancestry_MissingInput(t *testing.T) {
	_, err := fs.NewLocator().Ancestry(filepath.Join(t.TempDir(), "gone.js"), nil)
	require.Error(t, err)
}
