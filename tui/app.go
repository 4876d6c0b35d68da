package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
)

type activeView int

const (
	viewBoard activeView = iota
	viewDashboard
)

// App is the top-level program model. It routes messages to the board and
// dashboard views; each view owns and mutates only its own state.
type App struct {
	board  Board
	dash   Dashboard
	active activeView

	width  int
	height int
}

// New builds the program model around a task service. The logger is the
// diagnostic channel for caught network errors; it must not write to the
// terminal the program is drawing on.
func New(svc TaskService, logger *log.Logger) *App {
	return &App{
		board: newBoard(svc, logger),
		dash:  newDashboard(svc, logger),
	}
}

// Init fetches the initial collection and starts the dashboard clock.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		fetchTasksCmd(a.board.svc),
		tickClockCmd(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.board.width = msg.Width
		a.board.height = msg.Height
		a.dash.width = msg.Width
		a.dash.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "tab":
			if a.active == viewBoard {
				a.active = viewDashboard
			} else {
				a.active = viewBoard
			}
			return a, nil
		case "q":
			// The dashboard needs "q" for text entry.
			if a.active == viewBoard && !a.board.confirming {
				return a, tea.Quit
			}
		}
		if a.active == viewBoard {
			return a, a.board.Update(msg)
		}
		return a, a.dash.Update(msg)

	case clockTickMsg:
		return a, a.dash.Update(msg)

	case tasksLoadedMsg:
		// Both views refresh their working copies from the same fetch.
		boardCmd := a.board.Update(msg)
		dashCmd := a.dash.Update(msg)
		return a, tea.Batch(boardCmd, dashCmd)

	case fetchFailedMsg:
		// Both views show the failure; a re-fetch can be triggered from
		// either one.
		boardCmd := a.board.Update(msg)
		dashCmd := a.dash.Update(msg)
		return a, tea.Batch(boardCmd, dashCmd)

	case taskCreatedMsg, createFailedMsg:
		return a, a.dash.Update(msg)

	case deletesDoneMsg:
		return a, a.board.Update(msg)

	case toastExpiredMsg:
		a.board.toasts.expire(msg)
		a.dash.toasts.expire(msg)
		return a, nil
	}
	return a, nil
}

// View implements tea.Model.
func (a *App) View() string {
	if a.active == viewDashboard {
		return a.dash.View()
	}
	return a.board.View()
}
