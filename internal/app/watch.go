package app

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"go.trai.ch/jsproj/internal/adapters/watcher" //nolint:depguard // Debouncing is wired in app layer
	"go.trai.ch/jsproj/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

// WatchOptions configures Watch.
type WatchOptions struct {
	Log LogOptions
	// OnReport receives the initial report and every report produced after an invalidation.
	OnReport func(*Report)
}

// Watch resolves the project owning path, then re-resolves it whenever one of its
// configuration files changes. It blocks until ctx is cancelled.
func (a *App) Watch(ctx context.Context, path string, opts WatchOptions) error {
	s, err := a.open(ctx, path, opts.Log)
	if err != nil {
		return err
	}
	root, err := s.requireProject()
	if err != nil {
		return err
	}

	trigger := &reloadTrigger{}
	s.project.Register(trigger)

	emit := func(work context.Context) {
		if opts.OnReport != nil {
			opts.OnReport(a.report(work, s))
		}
	}
	emit(ctx)

	if err := a.watcher.Start(ctx, root, s.settings.Ignore); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("watching %s", root))

	// Batches still pending at shutdown are processed to completion.
	work := context.WithoutCancel(ctx)
	var mu sync.Mutex
	debouncer := watcher.NewDebouncer(s.settings.Debounce, func(event domain.FileChangedEvent) {
		mu.Lock()
		defer mu.Unlock()

		s.project.OnFileChanged(work, event)
		if trigger.dirty.Swap(false) {
			a.logger.Debug("configuration changed, resolving again")
			emit(work)
		}
	})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		for event := range a.watcher.Events() {
			debouncer.Add(event)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		return a.watcher.Stop()
	})

	err = g.Wait()
	debouncer.Flush()
	return err
}

// reloadTrigger records changes to files a report is derived from.
type reloadTrigger struct {
	dirty atomic.Bool
}

func (t *reloadTrigger) touch(names ...string) {
	for _, name := range names {
		if name == domain.TernProjectName || domain.IsLintFile(name) {
			t.dirty.Store(true)
			return
		}
	}
}

func (t *reloadTrigger) OnModified(_ context.Context, _, name string) { t.touch(name) }

func (t *reloadTrigger) OnDeleted(_ context.Context, _, name string) { t.touch(name) }

func (t *reloadTrigger) OnCreated(_ context.Context, _, name string) { t.touch(name) }

func (t *reloadTrigger) OnMoved(_ context.Context, _, name, _, toName string) {
	t.touch(name, toName)
}
