package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jsproj/internal/core/ports"
)

const (
	// AccessNodeID is the unique identifier for the file access Graft node.
	AccessNodeID graft.ID = "adapter.fs.access"
	// LocatorNodeID is the unique identifier for the project locator Graft node.
	LocatorNodeID graft.ID = "adapter.fs.locator"
)

func init() {
	graft.Register(graft.Node[ports.FileAccess]{
		ID:        AccessNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileAccess, error) {
			return NewAccess(), nil
		},
	})

	graft.Register(graft.Node[ports.ProjectLocator]{
		ID:        LocatorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProjectLocator, error) {
			return NewLocator(), nil
		},
	})
}
