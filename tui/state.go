package tui

import (
	"taskpad/domain"
)

// boardState is the task collection view state: the re-orderable working
// copy, the retained original fetch order, the active sort key and the
// selection set. It holds no I/O; the Board model drives it from messages.
type boardState struct {
	working  []domain.Task
	original []domain.Task
	sortKey  SortKey
	selected map[string]struct{}
}

func newBoardState() boardState {
	return boardState{selected: map[string]struct{}{}}
}

// setTasks replaces both the working copy and the retained original order
// with a fresh fetch result. The active sort is re-applied to the new data
// and the selection is pruned to ids that are still displayed.
func (s *boardState) setTasks(tasks []domain.Task) {
	s.original = make([]domain.Task, len(tasks))
	copy(s.original, tasks)
	s.working = make([]domain.Task, len(tasks))
	copy(s.working, tasks)
	sortTasks(s.working, s.sortKey)

	if len(s.selected) == 0 {
		return
	}
	displayed := make(map[string]struct{}, len(tasks))
	for _, t := range tasks {
		displayed[t.ID] = struct{}{}
	}
	for id := range s.selected {
		if _, ok := displayed[id]; !ok {
			delete(s.selected, id)
		}
	}
}

// toggleSort activates the key, or clears sorting when the key is already
// active, restoring the original fetched order exactly. Selection membership
// is never touched, only display order.
func (s *boardState) toggleSort(key SortKey) {
	if s.sortKey == key {
		s.sortKey = SortNone
		s.working = make([]domain.Task, len(s.original))
		copy(s.working, s.original)
		return
	}
	s.sortKey = key
	sortTasks(s.working, key)
}

// toggleSelect adds the id to the selection if absent, else removes it.
func (s *boardState) toggleSelect(id string) {
	if _, ok := s.selected[id]; ok {
		delete(s.selected, id)
		return
	}
	s.selected[id] = struct{}{}
}

// selectAll replaces the selection with all currently displayed ids.
func (s *boardState) selectAll() {
	s.selected = make(map[string]struct{}, len(s.working))
	for _, t := range s.working {
		s.selected[t.ID] = struct{}{}
	}
}

// clearSelection empties the selection set.
func (s *boardState) clearSelection() {
	s.selected = map[string]struct{}{}
}

func (s *boardState) isSelected(id string) bool {
	_, ok := s.selected[id]
	return ok
}

// selectedIDs returns the selection in display order.
func (s *boardState) selectedIDs() []string {
	ids := make([]string, 0, len(s.selected))
	for _, t := range s.working {
		if s.isSelected(t.ID) {
			ids = append(ids, t.ID)
		}
	}
	return ids
}
