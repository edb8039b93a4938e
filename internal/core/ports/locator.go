package ports

import "go.trai.ch/jsproj/internal/core/domain"

// ProjectLocator finds the project owning a path.
//
//go:generate mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type ProjectLocator interface {
	// Ancestry describes path as an editor input whose outermost parent is the
	// project root. markers are the file names identifying a project root.
	Ancestry(path string, markers []string) (domain.InputChangedEvent, error)
}
