package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jsproj/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/jsproj/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/jsproj/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/jsproj/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/jsproj/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/jsproj/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.AccessNodeID,
			fs.LocatorNodeID,
			config.NodeID,
			watcher.WatcherNodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewComponents(a, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	access, err := graft.Dep[ports.FileAccess](ctx)
	if err != nil {
		return nil, err
	}

	locator, err := graft.Dep[ports.ProjectLocator](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[ports.SettingsLoader](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[*logger.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(access, locator, settings, w, tracer, log), nil
}
