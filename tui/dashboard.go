package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"taskpad/domain"
)

const dueDateLayout = "2006-01-02"

var statusOptions = []string{domain.DefaultStatus, "In Progress", "Completed"}

// Form field rows, in focus order.
const (
	fieldTitle = iota
	fieldDescription
	fieldDueDate
	fieldPriority
	fieldStatus
	fieldTags
	fieldCount
)

// Dashboard is the creation view: a multi-field form, a live clock and a
// sidebar of recently fetched tasks.
type Dashboard struct {
	svc    TaskService
	logger *log.Logger

	title       textinput.Model
	description textinput.Model
	dueDate     textinput.Model
	tags        textinput.Model
	priority    domain.Priority
	statusIdx   int
	focus       int

	clock  time.Time
	toasts toaster
	recent []domain.Task

	width  int
	height int
}

func newDashboard(svc TaskService, logger *log.Logger) Dashboard {
	title := textinput.New()
	title.Placeholder = "Task title"
	title.CharLimit = 200
	title.Focus()

	description := textinput.New()
	description.Placeholder = "Description"
	description.CharLimit = 500

	dueDate := textinput.New()
	dueDate.Placeholder = "YYYY-MM-DD"
	dueDate.CharLimit = 10

	tags := textinput.New()
	tags.Placeholder = "tags, comma, separated"
	tags.CharLimit = 200

	return Dashboard{
		svc:         svc,
		logger:      logger,
		title:       title,
		description: description,
		dueDate:     dueDate,
		tags:        tags,
		clock:       time.Now(),
	}
}

// Update handles dashboard messages and key presses.
func (d *Dashboard) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return d.handleKey(msg)

	case clockTickMsg:
		d.clock = time.Time(msg)
		return tickClockCmd()

	case tasksLoadedMsg:
		d.recent = msg.tasks
		return nil

	case fetchFailedMsg:
		// The board logs the error; here only the user-facing notice matters.
		return d.toasts.show(toastError, "Failed to load tasks")

	case taskCreatedMsg:
		d.resetForm()
		return tea.Batch(
			d.toasts.show(toastSuccess, "Task created"),
			fetchTasksCmd(d.svc),
		)

	case createFailedMsg:
		// Form contents are preserved so the user can retry.
		d.logger.WithError(msg.err).Error("create task")
		return d.toasts.show(toastError, msg.err.Error())

	case toastExpiredMsg:
		d.toasts.expire(msg)
		return nil
	}
	return nil
}

func (d *Dashboard) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter", "ctrl+s":
		return d.submit()
	case "down":
		d.setFocus((d.focus + 1) % fieldCount)
		return nil
	case "up":
		d.setFocus((d.focus + fieldCount - 1) % fieldCount)
		return nil
	case "left", "right":
		switch d.focus {
		case fieldPriority:
			d.cyclePriority(msg.String() == "right")
			return nil
		case fieldStatus:
			d.cycleStatus(msg.String() == "right")
			return nil
		}
	}

	var cmd tea.Cmd
	switch d.focus {
	case fieldTitle:
		d.title, cmd = d.title.Update(msg)
	case fieldDescription:
		d.description, cmd = d.description.Update(msg)
	case fieldDueDate:
		d.dueDate, cmd = d.dueDate.Update(msg)
	case fieldTags:
		d.tags, cmd = d.tags.Update(msg)
	}
	return cmd
}

func (d *Dashboard) setFocus(focus int) {
	d.focus = focus
	inputs := []*textinput.Model{&d.title, &d.description, &d.dueDate, &d.tags}
	fields := []int{fieldTitle, fieldDescription, fieldDueDate, fieldTags}
	for i, in := range inputs {
		if fields[i] == focus {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func (d *Dashboard) cyclePriority(forward bool) {
	order := []domain.Priority{domain.PriorityNone, domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh}
	idx := 0
	for i, p := range order {
		if p == d.priority {
			idx = i
			break
		}
	}
	if forward {
		idx = (idx + 1) % len(order)
	} else {
		idx = (idx + len(order) - 1) % len(order)
	}
	d.priority = order[idx]
}

func (d *Dashboard) cycleStatus(forward bool) {
	if forward {
		d.statusIdx = (d.statusIdx + 1) % len(statusOptions)
	} else {
		d.statusIdx = (d.statusIdx + len(statusOptions) - 1) % len(statusOptions)
	}
}

// submit validates the form and posts the draft. An empty trimmed title
// aborts before any network call is issued.
func (d *Dashboard) submit() tea.Cmd {
	title := strings.TrimSpace(d.title.Value())
	if title == "" {
		d.logger.Warn("create task rejected: empty title")
		return d.toasts.show(toastError, "Title is required")
	}

	draft := domain.TaskDraft{
		Title:       title,
		Description: strings.TrimSpace(d.description.Value()),
		Priority:    d.priority,
		Status:      statusOptions[d.statusIdx],
		Tags:        strings.TrimSpace(d.tags.Value()),
	}
	if raw := strings.TrimSpace(d.dueDate.Value()); raw != "" {
		due, err := time.Parse(dueDateLayout, raw)
		if err != nil {
			return d.toasts.show(toastError, "Due date must be YYYY-MM-DD")
		}
		draft.DueDate = &due
	}

	return createTaskCmd(d.svc, draft)
}

func (d *Dashboard) resetForm() {
	d.title.SetValue("")
	d.description.SetValue("")
	d.dueDate.SetValue("")
	d.tags.SetValue("")
	d.priority = domain.PriorityNone
	d.statusIdx = 0
	d.setFocus(fieldTitle)
}
