package app

import (
	"context"

	"go.trai.ch/jsproj/internal/core/domain"
	"go.trai.ch/zerr"
)

// UpdateOptions configures Update.
type UpdateOptions struct {
	// Create creates the file when it does not exist.
	Create bool
	Log    LogOptions
}

// Update merges values into the project file called name, in the project owning path.
func (a *App) Update(ctx context.Context, path, name string, raw []byte, opts UpdateOptions) error {
	ctx, span := a.tracer.Start(ctx, "app.update")
	defer span.End()
	span.SetAttribute("file", name)

	values, err := domain.ParseConfig(raw)
	if err != nil {
		span.RecordError(err)
		return zerr.Wrap(err, domain.ErrInvalidValues.Error())
	}

	s, err := a.open(ctx, path, opts.Log)
	if err != nil {
		span.RecordError(err)
		return err
	}
	if _, err := s.requireProject(); err != nil {
		span.RecordError(err)
		return err
	}

	if err := s.project.UpdateFile(ctx, name, opts.Create, values); err != nil {
		span.RecordError(err)
		return err
	}

	target := domain.ChildPath(s.project.Scope().Location, name)
	if file, _ := s.project.File(ctx, name); !file.Exists() {
		a.logger.Warn("skipped " + target + ": file does not exist")
		return nil
	}
	a.logger.Info("updated " + target)
	return nil
}
