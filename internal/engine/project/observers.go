package project

import (
	"context"

	"go.trai.ch/jsproj/internal/core/domain"
)

// LintObserver forgets the resolved lint configuration when a file that can
// contribute to it changes, and whenever the project changes.
type LintObserver struct {
	resolver *Resolver
}

// NewLintObserver creates the built-in lint invalidation observer.
func NewLintObserver(resolver *Resolver) *LintObserver {
	return &LintObserver{resolver: resolver}
}

func (o *LintObserver) update(name string) {
	if domain.IsLintFile(name) {
		o.resolver.ForgetLintConfig()
	}
}

// OnModified implements ports.ModifiedObserver.
func (o *LintObserver) OnModified(_ context.Context, _, name string) { o.update(name) }

// OnDeleted implements ports.DeletedObserver.
func (o *LintObserver) OnDeleted(_ context.Context, _, name string) { o.update(name) }

// OnCreated implements ports.CreatedObserver.
func (o *LintObserver) OnCreated(_ context.Context, _, name string) { o.update(name) }

// OnMoved implements ports.MovedObserver.
func (o *LintObserver) OnMoved(_ context.Context, _, name, _, toName string) {
	o.update(name)
	o.update(toName)
}

// OnProjectChanged implements ports.ProjectChangedObserver.
func (o *LintObserver) OnProjectChanged(_ context.Context, _ domain.InputChangedEvent, _ string) {
	o.resolver.ForgetLintConfig()
}

// EcmaObserver forgets the resolved ECMA level when .tern-project changes.
type EcmaObserver struct {
	resolver *Resolver
}

// NewEcmaObserver creates the built-in ECMA level invalidation observer.
func NewEcmaObserver(resolver *Resolver) *EcmaObserver {
	return &EcmaObserver{resolver: resolver}
}

func (o *EcmaObserver) update(name string) {
	if name == domain.TernProjectName {
		o.resolver.ForgetEcmaLevel()
	}
}

// OnModified implements ports.ModifiedObserver.
func (o *EcmaObserver) OnModified(_ context.Context, _, name string) { o.update(name) }

// OnDeleted implements ports.DeletedObserver.
func (o *EcmaObserver) OnDeleted(_ context.Context, _, name string) { o.update(name) }

// OnCreated implements ports.CreatedObserver.
func (o *EcmaObserver) OnCreated(_ context.Context, _, name string) { o.update(name) }

// OnMoved implements ports.MovedObserver.
func (o *EcmaObserver) OnMoved(_ context.Context, _, name, _, toName string) {
	o.update(name)
	o.update(toName)
}
