// Package fs provides file system adapters for reading project files and
// locating project roots.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/jsproj/internal/core/domain"
	"go.trai.ch/jsproj/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileAccess = (*Access)(nil)

// Access implements ports.FileAccess on the local file system.
type Access struct{}

// NewAccess creates a new Access.
func NewAccess() *Access {
	return &Access{}
}

// Read returns the contents of path. A missing file yields an error wrapping fs.ErrNotExist.
func (a *Access) Read(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read file"), "path", path)
	}
	return data, nil
}

// Write replaces the contents of path.
// Data is written to a temporary sibling first and renamed into place.
func (a *Access) Write(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create temporary file"), "dir", dir)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, "failed to write temporary file"), "path", tmpName)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close temporary file"), "path", tmpName)
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to set file mode"), "path", tmpName)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to replace file"), "path", path)
	}
	return nil
}

// Create creates an empty file called name in parent. It fails when the file exists.
func (a *Access) Create(ctx context.Context, parent, name string) (domain.FileHandle, error) {
	if err := ctx.Err(); err != nil {
		return domain.FileHandle{}, err
	}

	path := domain.ChildPath(parent, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, domain.FilePerm)
	if err != nil {
		return domain.FileHandle{}, zerr.With(zerr.Wrap(err, "failed to create file"), "path", path)
	}
	if err := f.Close(); err != nil {
		return domain.FileHandle{}, zerr.With(zerr.Wrap(err, "failed to close file"), "path", path)
	}
	return domain.FileHandle{Location: path, Name: name}, nil
}
