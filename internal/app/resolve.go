package app

import (
	"context"
	"fmt"

	"go.trai.ch/jsproj/internal/core/domain"
)

// FileStatus describes one inspected project file.
type FileStatus struct {
	Name    string `json:"name"`
	Present bool   `json:"present"`
	Digest  string `json:"digest,omitempty"`
}

// Report is the resolved configuration of the project owning an input.
type Report struct {
	Input      string        `json:"input"`
	Project    string        `json:"project"`
	EcmaLevel  int           `json:"ecmaLevel"`
	LintConfig domain.Config `json:"lintConfig"`
	Files      []FileStatus  `json:"files"`
}

// ResolveOptions configures Resolve.
type ResolveOptions struct {
	Log LogOptions
}

// Resolve opens the project owning path and resolves its configuration.
// An input outside any project resolves to the defaults.
func (a *App) Resolve(ctx context.Context, path string, opts ResolveOptions) (*Report, error) {
	ctx, span := a.tracer.Start(ctx, "app.resolve")
	defer span.End()

	s, err := a.open(ctx, path, opts.Log)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return a.report(ctx, s), nil
}

func (a *App) report(ctx context.Context, s *session) *Report {
	location, _ := s.project.Location()
	r := &Report{
		Input:     s.input,
		Project:   location,
		EcmaLevel: s.project.EcmaLevel(ctx),
		Files:     []FileStatus{},
	}
	if cfg, ok := s.project.LintConfig(ctx); ok {
		r.LintConfig = cfg
	}

	for _, name := range inspectedFiles {
		file, ok := s.project.File(ctx, name)
		if !ok {
			break
		}
		status := FileStatus{Name: name, Present: file.Exists()}
		if file.Exists() {
			status.Digest = fmt.Sprintf("%016x", file.Digest)
		}
		r.Files = append(r.Files, status)
	}
	return r
}
