package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jsproj/internal/adapters/watcher"
	"go.trai.ch/jsproj/internal/core/domain"
	"go.trai.ch/jsproj/internal/core/ports"
)

func TestDebouncer_CoalescesWithinWindow(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var mu sync.Mutex
		var batches []domain.FileChangedEvent

		d := watcher.NewDebouncer(100*time.Millisecond, func(ev domain.FileChangedEvent) {
			mu.Lock()
			defer mu.Unlock()
			batches = append(batches, ev)
		})

		d.Add(ports.WatchEvent{Path: "/p/.eslintrc", Operation: ports.OpWrite})
		time.Sleep(50 * time.Millisecond)
		d.Add(ports.WatchEvent{Path: "/p/.eslintrc", Operation: ports.OpWrite})
		d.Add(ports.WatchEvent{Path: "/p/package.json", Operation: ports.OpWrite})

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		mu.Lock()
		defer mu.Unlock()
		require.Len(t, batches, 1)
		assert.Equal(t, []string{"/p/.eslintrc", "/p/package.json"}, batches[0].Modified)
	})
}

func TestDebouncer_SeparateWindows(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var mu sync.Mutex
		var count int

		d := watcher.NewDebouncer(10*time.Millisecond, func(domain.FileChangedEvent) {
			mu.Lock()
			defer mu.Unlock()
			count++
		})

		d.Add(ports.WatchEvent{Path: "/p/a", Operation: ports.OpWrite})
		time.Sleep(20 * time.Millisecond)
		synctest.Wait()
		d.Add(ports.WatchEvent{Path: "/p/b", Operation: ports.OpWrite})
		time.Sleep(20 * time.Millisecond)
		synctest.Wait()

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, 2, count)
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var got []domain.FileChangedEvent

		d := watcher.NewDebouncer(time.Hour, func(ev domain.FileChangedEvent) {
			got = append(got, ev)
		})

		d.Add(ports.WatchEvent{Path: "/p/.tern-project", Operation: ports.OpCreate})
		d.Flush()

		require.Len(t, got, 1)
		assert.Equal(t, []string{"/p/.tern-project"}, got[0].Created)

		d.Flush()
		assert.Len(t, got, 1, "an empty flush must not invoke the callback")
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		d := watcher.NewDebouncer(time.Millisecond, nil)
		d.Add(ports.WatchEvent{Path: "/p/a", Operation: ports.OpWrite})
		time.Sleep(5 * time.Millisecond)
		synctest.Wait()
	})
}
