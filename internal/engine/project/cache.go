// Package project implements the per-project configuration resolver and its
// invalidation engine.
package project

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/jsproj/internal/core/domain"
	"go.trai.ch/jsproj/internal/core/ports"
)

// FileCache maps absolute paths to lazily fetched project files.
//
// Reads happen outside the lock. A fetched record is only stored when neither the
// project nor any cached path changed while the read was in flight; otherwise it is
// handed to the caller without being cached.
type FileCache struct {
	mu      sync.Mutex
	entries map[string]domain.CachedFile
	epoch   uint64
	gen     uint64
	access  ports.FileAccess
	logger  ports.Logger
}

// NewFileCache creates an empty cache reading through access.
func NewFileCache(access ports.FileAccess, logger ports.Logger) *FileCache {
	return &FileCache{
		entries: make(map[string]domain.CachedFile),
		access:  access,
		logger:  logger,
	}
}

// Get returns the cached record for path, fetching it on a miss.
// A missing or unreadable file yields a record with nil Contents, which is cached too.
func (c *FileCache) Get(ctx context.Context, scope domain.Scope, path string) domain.CachedFile {
	c.mu.Lock()
	if entry, ok := c.entries[path]; ok {
		c.mu.Unlock()
		return entry
	}
	gen := c.gen
	c.mu.Unlock()

	entry := domain.CachedFile{Path: path, ProjectLocation: scope.Location}
	data, err := c.access.Read(ctx, path)
	switch {
	case err == nil:
		text := string(data)
		entry.Contents = &text
		entry.Digest = xxhash.Sum64(data)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return entry
	case !errors.Is(err, fs.ErrNotExist):
		c.logger.Debug(fmt.Sprintf("reading %s failed, treating it as absent: %v", path, err))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if scope.Epoch != c.epoch || gen != c.gen {
		return entry
	}
	if existing, ok := c.entries[path]; ok {
		return existing
	}
	c.entries[path] = entry
	return entry
}

// Invalidate removes the entry for path. It is a no-op when path is not cached.
func (c *FileCache) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, path)
	c.gen++
}

// Reset drops every entry and adopts the epoch of the newly active project.
func (c *FileCache) Reset(epoch uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]domain.CachedFile)
	c.epoch = epoch
	c.gen++
}

// Len returns the number of cached entries.
func (c *FileCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
