package watcher

import (
	"path/filepath"

	"go.trai.ch/jsproj/internal/core/domain"
	"go.trai.ch/jsproj/internal/core/ports"
)

// Collapse folds a batch of raw watch events into one file change event.
//
// A rename is paired with the next create in the batch and reported as a move;
// renames left unpaired are reported as deletions. Writes to a path created or
// removed in the same batch are not reported as modifications.
func Collapse(events []ports.WatchEvent) domain.FileChangedEvent {
	var (
		modified = newOrderedSet()
		created  = newOrderedSet()
		deleted  = newOrderedSet()
		renamed  []string
		moved    []domain.MovedEntry
	)

	for _, ev := range events {
		switch ev.Operation {
		case ports.OpWrite:
			if !created.has(ev.Path) && !deleted.has(ev.Path) {
				modified.add(ev.Path)
			}
		case ports.OpCreate:
			deleted.remove(ev.Path)
			if len(renamed) > 0 {
				source := renamed[0]
				renamed = renamed[1:]
				moved = append(moved, domain.MovedEntry{
					Source: source,
					Result: &domain.MoveResult{Location: ev.Path, Name: filepath.Base(ev.Path)},
				})
				continue
			}
			created.add(ev.Path)
		case ports.OpRemove:
			modified.remove(ev.Path)
			created.remove(ev.Path)
			deleted.add(ev.Path)
		case ports.OpRename:
			modified.remove(ev.Path)
			renamed = append(renamed, ev.Path)
		}
	}
	for _, path := range renamed {
		deleted.add(path)
	}

	out := domain.FileChangedEvent{
		Type:     domain.ChangedEventType,
		Modified: modified.items(),
		Created:  created.items(),
		Moved:    moved,
	}
	for _, path := range deleted.items() {
		out.Deleted = append(out.Deleted, domain.DeletedEntry{DeleteLocation: path})
	}
	return out
}

type orderedSet struct {
	order []string
	index map[string]struct{}
}

func newOrderedSet() *orderedSet {
	return &orderedSet{index: make(map[string]struct{})}
}

func (s *orderedSet) add(v string) {
	if s.has(v) {
		return
	}
	s.index[v] = struct{}{}
	s.order = append(s.order, v)
}

func (s *orderedSet) has(v string) bool {
	_, ok := s.index[v]
	return ok
}

func (s *orderedSet) remove(v string) {
	if !s.has(v) {
		return
	}
	delete(s.index, v)
	for i, item := range s.order {
		if item == v {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}

func (s *orderedSet) items() []string {
	if len(s.order) == 0 {
		return nil
	}
	return append([]string(nil), s.order...)
}
