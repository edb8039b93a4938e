package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/jsproj/internal/core/domain"
	"go.trai.ch/jsproj/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ProjectLocator = (*Locator)(nil)

// Locator finds project roots by walking up the directory tree.
type Locator struct{}

// NewLocator creates a new Locator.
func NewLocator() *Locator {
	return &Locator{}
}

// Ancestry builds the input event for path.
//
// Directories are visited from path upwards until one contains any of markers; that
// directory becomes the last parent. When no directory qualifies the event carries no
// parents, meaning the input belongs to no project.
func (l *Locator) Ancestry(path string, markers []string) (domain.InputChangedEvent, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return domain.InputChangedEvent{}, zerr.With(zerr.Wrap(err, "failed to resolve path"), "path", path)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return domain.InputChangedEvent{}, zerr.With(zerr.Wrap(err, "failed to stat input"), "path", abs)
	}

	dir := abs
	if !info.IsDir() {
		dir = filepath.Dir(abs)
	}

	input := &domain.InputFile{Location: abs}
	var visited []domain.Parent
	for {
		visited = append(visited, domain.Parent{Location: dir, Name: filepath.Base(dir)})
		if hasMarker(dir, markers) {
			input.Parents = visited
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return domain.InputChangedEvent{File: input}, nil
}

func hasMarker(dir string, markers []string) bool {
	for _, marker := range markers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}
