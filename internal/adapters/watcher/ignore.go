package watcher

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/jsproj/internal/core/domain"
	"go.trai.ch/zerr"
)

// IgnoreMatcher reports whether paths below a root match any ignore glob.
type IgnoreMatcher struct {
	root     string
	patterns []string
}

// NewIgnoreMatcher validates patterns and returns a matcher for paths below root.
func NewIgnoreMatcher(root string, patterns []string) (*IgnoreMatcher, error) {
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, zerr.With(domain.ErrInvalidIgnorePattern, "pattern", pattern)
		}
	}
	return &IgnoreMatcher{root: root, patterns: patterns}, nil
}

// Match reports whether path is ignored. Directories also match patterns that
// only select their contents, such as "**/node_modules/**".
func (m *IgnoreMatcher) Match(path string, isDir bool) bool {
	rel, err := filepath.Rel(m.root, path)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	rel = filepath.ToSlash(rel)

	for _, pattern := range m.patterns {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
		if isDir {
			if ok, _ := doublestar.Match(pattern, rel+"/"); ok {
				return true
			}
		}
	}
	return false
}
