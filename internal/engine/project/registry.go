package project

import (
	"context"
	"fmt"
	"sync"

	"go.trai.ch/jsproj/internal/core/domain"
	"go.trai.ch/jsproj/internal/core/ports"
	"go.trai.ch/zerr"
)

// Registry holds the ordered list of observers and dispatches lifecycle callbacks to them.
//
// Observers must not rely on their position relative to other observers. A panicking
// callback is reported through the logger and delivery continues with the next observer.
type Registry struct {
	mu        sync.RWMutex
	observers []ports.Observer
	logger    ports.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(logger ports.Logger) *Registry {
	return &Registry{logger: logger}
}

// Register appends an observer.
func (r *Registry) Register(observer ports.Observer) {
	if observer == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observers = append(r.observers, observer)
}

// Len returns the number of registered observers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.observers)
}

// Modified dispatches OnModified.
func (r *Registry) Modified(ctx context.Context, path, name string) {
	dispatch(r, "OnModified", func(o ports.ModifiedObserver) { o.OnModified(ctx, path, name) })
}

// Deleted dispatches OnDeleted.
func (r *Registry) Deleted(ctx context.Context, path, name string) {
	dispatch(r, "OnDeleted", func(o ports.DeletedObserver) { o.OnDeleted(ctx, path, name) })
}

// Created dispatches OnCreated.
func (r *Registry) Created(ctx context.Context, path, name string) {
	dispatch(r, "OnCreated", func(o ports.CreatedObserver) { o.OnCreated(ctx, path, name) })
}

// Moved dispatches OnMoved.
func (r *Registry) Moved(ctx context.Context, path, name, toPath, toName string) {
	dispatch(r, "OnMoved", func(o ports.MovedObserver) { o.OnMoved(ctx, path, name, toPath, toName) })
}

// ProjectChanged dispatches OnProjectChanged.
func (r *Registry) ProjectChanged(ctx context.Context, event domain.InputChangedEvent, location string) {
	dispatch(r, "OnProjectChanged", func(o ports.ProjectChangedObserver) { o.OnProjectChanged(ctx, event, location) })
}

// InputChanged dispatches OnInputChanged.
func (r *Registry) InputChanged(ctx context.Context, event domain.InputChangedEvent, location string) {
	dispatch(r, "OnInputChanged", func(o ports.InputChangedObserver) { o.OnInputChanged(ctx, event, location) })
}

func (r *Registry) snapshot() []ports.Observer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	observers := make([]ports.Observer, len(r.observers))
	copy(observers, r.observers)
	return observers
}

// dispatch invokes call on every observer implementing T, in registration order.
func dispatch[T any](r *Registry, callback string, call func(T)) {
	for _, observer := range r.snapshot() {
		target, ok := observer.(T)
		if !ok {
			continue
		}
		r.invoke(observer, callback, func() { call(target) })
	}
}

func (r *Registry) invoke(observer ports.Observer, callback string, call func()) {
	defer func() {
		if rec := recover(); rec != nil {
			cause := fmt.Errorf("%T.%s: %v", observer, callback, rec)
			err := zerr.Wrap(cause, domain.ErrObserverPanicked.Error())
			err = zerr.With(err, "observer", fmt.Sprintf("%T", observer))
			err = zerr.With(err, "callback", callback)
			r.logger.Error(err)
		}
	}()
	call()
}
