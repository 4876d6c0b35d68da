// Package tui implements the terminal presentation layer: a task board with
// sorting, multi-select and batch deletion, and a dashboard with a creation
// form and live clock.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"taskpad/domain"
)

const requestTimeout = 10 * time.Second

// TaskService is the slice of the REST API the views consume.
type TaskService interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
	CreateTask(ctx context.Context, draft domain.TaskDraft) (domain.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

// Message types delivered back into the update loop by commands.
type tasksLoadedMsg struct{ tasks []domain.Task }
type fetchFailedMsg struct{ err error }
type taskCreatedMsg struct{ task domain.Task }
type createFailedMsg struct{ err error }
type deletesDoneMsg struct {
	succeeded int
	failed    int
}
type clockTickMsg time.Time

// toastExpiredMsg carries the owning toaster so the expiry of one view's
// toast can never clear another view's.
type toastExpiredMsg struct {
	owner *toaster
	id    int
}

// fetchTasksCmd requests the full collection. Failures come back as a
// message; nothing escapes the command boundary.
func fetchTasksCmd(svc TaskService) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		tasks, err := svc.ListTasks(ctx)
		if err != nil {
			return fetchFailedMsg{err}
		}
		return tasksLoadedMsg{tasks}
	}
}

// createTaskCmd posts a draft to the API.
func createTaskCmd(svc TaskService, draft domain.TaskDraft) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		task, err := svc.CreateTask(ctx, draft)
		if err != nil {
			return createFailedMsg{err}
		}
		return taskCreatedMsg{task}
	}
}

// deleteTasksCmd issues one delete request per id, tallying successes and
// failures independently. Per-item failures never stop the remaining
// requests; the aggregate message is only produced once every request has
// settled.
func deleteTasksCmd(svc TaskService, ids []string) tea.Cmd {
	return func() tea.Msg {
		var succeeded, failed int
		for _, id := range ids {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			err := svc.DeleteTask(ctx, id)
			cancel()
			if err != nil {
				failed++
				continue
			}
			succeeded++
		}
		return deletesDoneMsg{succeeded: succeeded, failed: failed}
	}
}

// tickClockCmd re-renders the dashboard clock once per second.
func tickClockCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}
