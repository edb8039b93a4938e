// Package domain contains the core types of the project configuration resolver.
package domain

// ProjectIdentity identifies the active project by its root location.
// A new identity replaces the previous one on every project change; it is never mutated.
type ProjectIdentity struct {
	Location string
}

// Scope is a snapshot of the active project taken when a request starts.
// Results computed under a scope whose Epoch is no longer current are discarded.
type Scope struct {
	// Location is the root of the active project, empty when Active is false.
	Location string
	// Epoch increments on every project change.
	Epoch uint64
	// Active is false when no project is open.
	Active bool
}

// CachedFile is a fetched project file.
// Contents is nil when the file does not exist or could not be read.
type CachedFile struct {
	Path            string
	Contents        *string
	ProjectLocation string
	// Digest is the xxhash of Contents, zero when Contents is nil.
	Digest uint64
}

// Exists reports whether the file had readable contents when it was fetched.
func (f CachedFile) Exists() bool {
	return f.Contents != nil
}

// Text returns the file contents, or an empty string when the file is absent.
func (f CachedFile) Text() string {
	if f.Contents == nil {
		return ""
	}
	return *f.Contents
}

// FileHandle describes a file created through FileAccess.
type FileHandle struct {
	Location string
	Name     string
}
