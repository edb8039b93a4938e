package project_test

import (
	"context"
	"io/fs"
	"path/filepath"
	"sync"
	"testing"

	"go.trai.ch/jsproj/internal/adapters/telemetry"
	"go.trai.ch/jsproj/internal/core/domain"
	"go.trai.ch/jsproj/internal/core/ports/mocks"
	"go.trai.ch/jsproj/internal/engine/project"
	"go.uber.org/mock/gomock"
)

var (
	rootA = filepath.FromSlash("/work/alpha")
	rootB = filepath.FromSlash("/work/beta")
)

// disk is an in-memory file tree served through a MockFileAccess.
type disk struct {
	mu     sync.Mutex
	files  map[string]string
	reads  map[string]int
	onRead func(path string)
}

func newDisk(files map[string]string) *disk {
	if files == nil {
		files = make(map[string]string)
	}
	return &disk{files: files, reads: make(map[string]int)}
}

func (d *disk) set(path, contents string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.files[path] = contents
}

func (d *disk) remove(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.files, path)
}

func (d *disk) get(path string) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	contents, ok := d.files[path]
	return contents, ok
}

func (d *disk) readCount(path string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.reads[path]
}

func (d *disk) read(_ context.Context, path string) ([]byte, error) {
	d.mu.Lock()
	d.reads[path]++
	hook := d.onRead
	contents, ok := d.files[path]
	d.mu.Unlock()

	if hook != nil {
		hook(path)
	}
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return []byte(contents), nil
}

func (d *disk) write(_ context.Context, path string, data []byte) error {
	d.set(path, string(data))
	return nil
}

func (d *disk) create(_ context.Context, parent, name string) (domain.FileHandle, error) {
	path := domain.ChildPath(parent, name)
	if _, ok := d.get(path); ok {
		return domain.FileHandle{}, &fs.PathError{Op: "open", Path: path, Err: fs.ErrExist}
	}
	d.set(path, "")
	return domain.FileHandle{Location: path, Name: name}, nil
}

// serve wires every FileAccess method of access to d.
func (d *disk) serve(access *mocks.MockFileAccess) {
	access.EXPECT().Read(gomock.Any(), gomock.Any()).DoAndReturn(d.read).AnyTimes()
	access.EXPECT().Write(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(d.write).AnyTimes()
	access.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(d.create).AnyTimes()
}

type fixture struct {
	ctx    *project.Context
	disk   *disk
	access *mocks.MockFileAccess
	logger *mocks.MockLogger
}

func newFixture(t *testing.T, files map[string]string) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	access := mocks.NewMockFileAccess(ctrl)
	d := newDisk(files)
	d.serve(access)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	return &fixture{
		ctx:    project.NewContext(access, log, telemetry.NewNoOpTracer()),
		disk:   d,
		access: access,
		logger: log,
	}
}

func inputIn(root string) domain.InputChangedEvent {
	return domain.InputChangedEvent{File: &domain.InputFile{
		Location: filepath.Join(root, "src", "index.js"),
		Parents: []domain.Parent{
			{Location: filepath.Join(root, "src"), Name: "src"},
			{Location: root, Name: filepath.Base(root)},
		},
	}}
}

func noProject() domain.InputChangedEvent {
	return domain.InputChangedEvent{File: &domain.InputFile{Location: filepath.FromSlash("/tmp/scratch.js")}}
}

func (f *fixture) open(t *testing.T, root string) {
	t.Helper()
	f.ctx.OnInputChanged(t.Context(), inputIn(root))
}

func modified(paths ...string) domain.FileChangedEvent {
	return domain.FileChangedEvent{Type: domain.ChangedEventType, Modified: paths}
}

func errNotExist(path string) error {
	return &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
}
