package ports

import (
	"context"

	"go.trai.ch/jsproj/internal/core/domain"
)

// Observer is any value implementing one or more of the capability interfaces below.
// Callbacks an observer does not implement are skipped during dispatch.
type Observer any

// ModifiedObserver is notified when a file is modified.
type ModifiedObserver interface {
	OnModified(ctx context.Context, path, name string)
}

// DeletedObserver is notified when a file is deleted.
type DeletedObserver interface {
	OnDeleted(ctx context.Context, path, name string)
}

// CreatedObserver is notified when a file is created.
type CreatedObserver interface {
	OnCreated(ctx context.Context, path, name string)
}

// MovedObserver is notified when a file is moved from path to toPath.
type MovedObserver interface {
	OnMoved(ctx context.Context, path, name, toPath, toName string)
}

// ProjectChangedObserver is notified when the active project changes.
// location is empty when no project is active anymore.
type ProjectChangedObserver interface {
	OnProjectChanged(ctx context.Context, event domain.InputChangedEvent, location string)
}

// InputChangedObserver is notified when the editor input changes within the same project.
type InputChangedObserver interface {
	OnInputChanged(ctx context.Context, event domain.InputChangedEvent, location string)
}
