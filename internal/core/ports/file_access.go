// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/jsproj/internal/core/domain"
)

// FileAccess is the transport used to read and write project files.
//
//go:generate mockgen -source=file_access.go -destination=mocks/mock_file_access.go -package=mocks
type FileAccess interface {
	// Read returns the contents of the file at path.
	// A missing file yields an error wrapping fs.ErrNotExist.
	Read(ctx context.Context, path string) ([]byte, error)

	// Write replaces the contents of the file at path.
	Write(ctx context.Context, path string, data []byte) error

	// Create creates an empty file named name inside parent.
	Create(ctx context.Context, parent, name string) (domain.FileHandle, error)
}
