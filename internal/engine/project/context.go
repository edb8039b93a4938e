package project

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"

	"go.trai.ch/jsproj/internal/core/domain"
	"go.trai.ch/jsproj/internal/core/ports"
	"go.trai.ch/zerr"
)

// Context tracks the active project and owns its derived configuration caches.
type Context struct {
	mu      sync.Mutex
	current *domain.ProjectIdentity
	epoch   uint64

	access   ports.FileAccess
	logger   ports.Logger
	files    *FileCache
	resolver *Resolver
	registry *Registry
}

// NewContext creates a project context with no active project and the built-in
// lint and ECMA invalidation observers registered.
func NewContext(access ports.FileAccess, logger ports.Logger, tracer ports.Tracer) *Context {
	c := &Context{
		access:   access,
		logger:   logger,
		files:    NewFileCache(access, logger),
		registry: NewRegistry(logger),
	}
	c.resolver = NewResolver(c.files, c, tracer, logger)
	c.registry.Register(NewLintObserver(c.resolver))
	c.registry.Register(NewEcmaObserver(c.resolver))
	return c
}

// Register adds an observer after the built-in ones.
func (c *Context) Register(observer ports.Observer) {
	c.registry.Register(observer)
}

// Scope returns a snapshot of the active project.
func (c *Context) Scope() domain.Scope {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return domain.Scope{Epoch: c.epoch}
	}
	return domain.Scope{Location: c.current.Location, Epoch: c.epoch, Active: true}
}

// Location returns the root of the active project.
func (c *Context) Location() (string, bool) {
	scope := c.Scope()
	return scope.Location, scope.Active
}

// Files exposes the file cache of the context.
func (c *Context) Files() *FileCache {
	return c.files
}

// EcmaLevel resolves the ECMA level of the active project.
func (c *Context) EcmaLevel(ctx context.Context) int {
	return c.resolver.ResolveEcmaLevel(ctx)
}

// LintConfig resolves the lint configuration of the active project.
func (c *Context) LintConfig(ctx context.Context) (domain.Config, bool) {
	return c.resolver.ResolveLintConfig(ctx)
}

// OnInputChanged reacts to the editor switching inputs.
//
// The outermost ancestor of the input is the project root. When it differs from the
// active project, including switches to or from no project, the identity is replaced,
// every cache is cleared and OnProjectChanged is dispatched before this method returns.
// Otherwise only OnInputChanged is dispatched.
func (c *Context) OnInputChanged(ctx context.Context, event domain.InputChangedEvent) {
	var next *domain.ProjectIdentity
	if root, ok := event.ProjectRoot(); ok && root.Location != "" {
		next = &domain.ProjectIdentity{Location: root.Location}
	}

	c.mu.Lock()
	if sameProject(c.current, next) {
		c.mu.Unlock()
		c.registry.InputChanged(ctx, event, locationOf(next))
		return
	}
	c.current = next
	c.epoch++
	epoch := c.epoch
	c.mu.Unlock()

	c.files.Reset(epoch)
	c.resolver.ForgetEcmaLevel()
	c.logger.Debug(fmt.Sprintf("active project changed to %q", locationOf(next)))
	c.registry.ProjectChanged(ctx, event, locationOf(next))
}

// OnFileChanged invalidates cached files touched by event and notifies observers.
// Groups are processed in the order modified, deleted, created, moved. Both ends of
// a move are invalidated.
func (c *Context) OnFileChanged(ctx context.Context, event domain.FileChangedEvent) {
	if event.Type != domain.ChangedEventType {
		return
	}

	for _, path := range event.Modified {
		c.files.Invalidate(path)
		c.registry.Modified(ctx, path, domain.ShortName(path))
	}
	for _, entry := range event.Deleted {
		c.files.Invalidate(entry.DeleteLocation)
		c.registry.Deleted(ctx, entry.DeleteLocation, domain.ShortName(entry.DeleteLocation))
	}
	for _, path := range event.Created {
		c.files.Invalidate(path)
		c.registry.Created(ctx, path, domain.ShortName(path))
	}
	for _, entry := range event.Moved {
		var toPath, toName string
		if entry.Result != nil {
			toPath, toName = entry.Result.Location, entry.Result.Name
		}
		c.files.Invalidate(entry.Source)
		if toPath != "" {
			c.files.Invalidate(toPath)
		}
		c.registry.Moved(ctx, entry.Source, domain.ShortName(entry.Source), toPath, toName)
	}
}

// File returns the cached project child called name.
// It returns false when no project is active.
func (c *Context) File(ctx context.Context, name string) (domain.CachedFile, bool) {
	scope := c.Scope()
	if !scope.Active {
		return domain.CachedFile{}, false
	}
	return c.files.Get(ctx, scope, domain.ChildPath(scope.Location, name)), true
}

// UpdateFile merges values into the JSON project child called name.
//
// An existing file is parsed, merged with values and written back. A missing file is
// created with values when create is set, and left alone otherwise. Observers are
// notified of the write as if the change came from the file system.
func (c *Context) UpdateFile(ctx context.Context, name string, create bool, values domain.Config) error {
	if name == "" || name != filepath.Base(name) {
		return zerr.With(domain.ErrInvalidFileName, "name", name)
	}

	scope := c.Scope()
	if !scope.Active {
		return domain.ErrNoActiveProject
	}

	path := domain.ChildPath(scope.Location, name)
	current, err := c.access.Read(ctx, path)
	switch {
	case err == nil:
		return c.mergeInto(ctx, path, current, values)
	case errors.Is(err, fs.ErrNotExist):
		if !create {
			return nil
		}
		return c.createWith(ctx, scope.Location, name, values)
	default:
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}
}

func (c *Context) mergeInto(ctx context.Context, path string, current []byte, values domain.Config) error {
	existing, err := domain.ParseConfig(current)
	if err != nil {
		return zerr.With(err, "path", path)
	}
	if values == nil {
		return nil
	}
	if err := c.writeJSON(ctx, path, domain.Merge(existing, values)); err != nil {
		return err
	}
	c.OnFileChanged(ctx, domain.FileChangedEvent{Type: domain.ChangedEventType, Modified: []string{path}})
	return nil
}

func (c *Context) createWith(ctx context.Context, location, name string, values domain.Config) error {
	handle, err := c.access.Create(ctx, location, name)
	if err != nil {
		err = zerr.Wrap(err, domain.ErrFileCreateFailed.Error())
		return zerr.With(err, "path", domain.ChildPath(location, name))
	}
	if values == nil {
		values = domain.Config{}
	}
	if err := c.writeJSON(ctx, handle.Location, values); err != nil {
		return err
	}
	c.OnFileChanged(ctx, domain.FileChangedEvent{Type: domain.ChangedEventType, Created: []string{handle.Location}})
	return nil
}

func (c *Context) writeJSON(ctx context.Context, path string, values domain.Config) error {
	data, err := json.MarshalIndent(values, "", "\t")
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigMarshalFailed.Error())
	}
	if err := c.access.Write(ctx, path, data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigWriteFailed.Error()), "path", path)
	}
	return nil
}

func sameProject(a, b *domain.ProjectIdentity) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Location == b.Location
}

func locationOf(p *domain.ProjectIdentity) string {
	if p == nil {
		return ""
	}
	return p.Location
}
