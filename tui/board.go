package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"taskpad/domain"
)

// ViewMode is a pure rendering toggle; it never affects data or ordering.
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewGrid
)

// Board is the task collection view: fetch, sort, select, delete.
type Board struct {
	svc    TaskService
	logger *log.Logger

	state      boardState
	cursor     int
	mode       ViewMode
	confirming bool
	loading    bool
	toasts     toaster

	width  int
	height int
}

func newBoard(svc TaskService, logger *log.Logger) Board {
	return Board{
		svc:     svc,
		logger:  logger,
		state:   newBoardState(),
		loading: true,
	}
}

// toastRequest is a pending notification emission.
type toastRequest struct {
	kind    toastKind
	message string
}

// deleteOutcomeToasts reports the batch delete tally: one notification per
// nonzero outcome count, successes first.
func deleteOutcomeToasts(succeeded, failed int) []toastRequest {
	var out []toastRequest
	if succeeded > 0 {
		out = append(out, toastRequest{
			kind:    toastSuccess,
			message: fmt.Sprintf("Successfully deleted %d task(s)", succeeded),
		})
	}
	if failed > 0 {
		out = append(out, toastRequest{
			kind:    toastError,
			message: fmt.Sprintf("Failed to delete %d task(s)", failed),
		})
	}
	return out
}

// Update handles board messages and key presses.
func (b *Board) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return b.handleKey(msg)

	case tasksLoadedMsg:
		b.loading = false
		b.state.setTasks(msg.tasks)
		if b.cursor >= len(b.state.working) {
			b.cursor = len(b.state.working) - 1
		}
		if b.cursor < 0 {
			b.cursor = 0
		}
		return nil

	case fetchFailedMsg:
		// Prior working set stays untouched.
		b.loading = false
		b.logger.WithError(msg.err).Error("fetch tasks")
		return b.toasts.show(toastError, "Failed to load tasks")

	case deletesDoneMsg:
		var cmds []tea.Cmd
		for _, req := range deleteOutcomeToasts(msg.succeeded, msg.failed) {
			cmds = append(cmds, b.toasts.show(req.kind, req.message))
		}
		b.state.clearSelection()
		b.confirming = false
		b.loading = true
		cmds = append(cmds, fetchTasksCmd(b.svc))
		return tea.Batch(cmds...)

	case toastExpiredMsg:
		b.toasts.expire(msg)
		return nil
	}
	return nil
}

func (b *Board) handleKey(msg tea.KeyMsg) tea.Cmd {
	if b.confirming {
		switch msg.String() {
		case "y", "Y", "enter":
			b.confirming = false
			ids := b.state.selectedIDs()
			if len(ids) == 0 {
				return nil
			}
			return deleteTasksCmd(b.svc, ids)
		case "n", "N", "esc":
			b.confirming = false
			return nil
		}
		return nil
	}

	switch msg.String() {
	case "up", "k":
		if b.cursor > 0 {
			b.cursor--
		}
	case "down", "j":
		if b.cursor < len(b.state.working)-1 {
			b.cursor++
		}
	case " ":
		if t, ok := b.cursorTask(); ok {
			b.state.toggleSelect(t.ID)
		}
	case "a":
		b.state.selectAll()
	case "esc":
		b.state.clearSelection()
	case "d":
		if len(b.state.selected) > 0 {
			b.confirming = true
		}
	case "x":
		// Single-task delete skips the confirmation step but follows the
		// same per-item request, tally and re-fetch contract.
		if t, ok := b.cursorTask(); ok {
			return deleteTasksCmd(b.svc, []string{t.ID})
		}
	case "v":
		if b.mode == ViewList {
			b.mode = ViewGrid
		} else {
			b.mode = ViewList
		}
	case "r":
		b.loading = true
		return fetchTasksCmd(b.svc)
	case "1":
		b.state.toggleSort(SortDueDate)
	case "2":
		b.state.toggleSort(SortPriority)
	case "3":
		b.state.toggleSort(SortCreated)
	case "4":
		b.state.toggleSort(SortUpdated)
	case "5":
		b.state.toggleSort(SortTitle)
	}
	return nil
}

func (b *Board) cursorTask() (domain.Task, bool) {
	if b.cursor < 0 || b.cursor >= len(b.state.working) {
		return domain.Task{}, false
	}
	return b.state.working[b.cursor], true
}
