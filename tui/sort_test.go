package tui

import (
	"testing"
	"time"

	"taskpad/domain"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func ids(tasks []domain.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func assertOrder(t *testing.T, tasks []domain.Task, want ...string) {
	t.Helper()
	got := ids(tasks)
	if len(got) != len(want) {
		t.Fatalf("unexpected length: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected order: got %v, want %v", got, want)
		}
	}
}

func TestSortByDueDateLatestFirstUndatedLast(t *testing.T) {
	tasks := []domain.Task{
		{ID: "undated-1"},
		{ID: "early", DueDate: datePtr(2026, 9, 1)},
		{ID: "late", DueDate: datePtr(2026, 12, 24)},
		{ID: "undated-2"},
		{ID: "mid", DueDate: datePtr(2026, 10, 15)},
	}

	sortTasks(tasks, SortDueDate)

	assertOrder(t, tasks, "late", "mid", "early", "undated-1", "undated-2")
}

func TestSortByPriorityHighMediumLowThenNone(t *testing.T) {
	tasks := []domain.Task{
		{ID: "none"},
		{ID: "low", Priority: domain.PriorityLow},
		{ID: "high", Priority: domain.PriorityHigh},
		{ID: "medium", Priority: domain.PriorityMedium},
	}

	sortTasks(tasks, SortPriority)

	assertOrder(t, tasks, "high", "medium", "low", "none")
}

func TestSortByCreatedMostRecentFirst(t *testing.T) {
	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	tasks := []domain.Task{
		{ID: "old", CreatedAt: base},
		{ID: "new", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "mid", CreatedAt: base.Add(time.Hour)},
	}

	sortTasks(tasks, SortCreated)

	assertOrder(t, tasks, "new", "mid", "old")
}

func TestSortByTitleLocaleAwareAscending(t *testing.T) {
	tasks := []domain.Task{
		{ID: "b", Title: "banana"},
		{ID: "a2", Title: "Apple"},
		{ID: "a1", Title: "apple pie"},
	}

	sortTasks(tasks, SortTitle)

	assertOrder(t, tasks, "a2", "a1", "b")
}

func TestSortIsStableForTies(t *testing.T) {
	tasks := []domain.Task{
		{ID: "first", Priority: domain.PriorityLow},
		{ID: "second", Priority: domain.PriorityLow},
		{ID: "third", Priority: domain.PriorityLow},
	}

	sortTasks(tasks, SortPriority)

	assertOrder(t, tasks, "first", "second", "third")
}

// Mirrors the scenario: fetch returns B/Low then A/High; title sort and
// priority sort both yield [2,1]; toggling title sort off restores [1,2].
func TestSortScenarioTitleAndPriority(t *testing.T) {
	fetched := []domain.Task{
		{ID: "1", Title: "B", Priority: domain.PriorityLow},
		{ID: "2", Title: "A", Priority: domain.PriorityHigh},
	}

	state := newBoardState()
	state.setTasks(fetched)

	state.toggleSort(SortTitle)
	assertOrder(t, state.working, "2", "1")

	state.toggleSort(SortTitle)
	assertOrder(t, state.working, "1", "2")

	state.toggleSort(SortPriority)
	assertOrder(t, state.working, "2", "1")
}

func TestToggleSortTwiceRestoresFetchedOrder(t *testing.T) {
	fetched := []domain.Task{
		{ID: "c", DueDate: datePtr(2026, 9, 1)},
		{ID: "a"},
		{ID: "b", DueDate: datePtr(2026, 11, 1)},
	}

	state := newBoardState()
	state.setTasks(fetched)

	state.toggleSort(SortDueDate)
	assertOrder(t, state.working, "b", "c", "a")

	state.toggleSort(SortDueDate)
	assertOrder(t, state.working, "c", "a", "b")
}
