package domain

// ChangedEventType is the only FileChangedEvent type the resolver reacts to.
const ChangedEventType = "Changed"

// Parent is one ancestor of an editor input.
type Parent struct {
	Location string
	Name     string
}

// InputFile is the editor input carried by an InputChangedEvent.
type InputFile struct {
	Location string
	// Parents lists the ancestors of the input, innermost first.
	// The last element is the project root.
	Parents []Parent
}

// InputChangedEvent is raised when the editor switches to another input.
type InputChangedEvent struct {
	File *InputFile
}

// ProjectRoot returns the outermost ancestor of the input, if any.
func (e InputChangedEvent) ProjectRoot() (Parent, bool) {
	if e.File == nil || len(e.File.Parents) == 0 {
		return Parent{}, false
	}
	return e.File.Parents[len(e.File.Parents)-1], true
}

// DeletedEntry identifies a deleted file by its deletion source location.
type DeletedEntry struct {
	DeleteLocation string
}

// MoveResult is the destination of a moved file.
type MoveResult struct {
	Location string
	Name     string
}

// MovedEntry describes a file moved from Source to Result.
type MovedEntry struct {
	Source string
	Result *MoveResult
}

// FileChangedEvent groups the paths affected by a batch of file operations.
type FileChangedEvent struct {
	Type     string
	Modified []string
	Deleted  []DeletedEntry
	Created  []string
	Moved    []MovedEntry
}

// Empty reports whether the event carries no paths.
func (e FileChangedEvent) Empty() bool {
	return len(e.Modified) == 0 && len(e.Deleted) == 0 && len(e.Created) == 0 && len(e.Moved) == 0
}
