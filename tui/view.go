package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"taskpad/domain"
)

// View renders the task collection in the active layout.
func (b *Board) View() string {
	var sb strings.Builder

	header := "Tasks"
	if b.state.sortKey != SortNone {
		header += dimStyle.Render(fmt.Sprintf("  sorted by %s", b.state.sortKey))
	}
	if n := len(b.state.selected); n > 0 {
		header += dimStyle.Render(fmt.Sprintf("  %d selected", n))
	}
	sb.WriteString(titleStyle.Render(header))
	sb.WriteString("\n")

	switch {
	case b.loading && len(b.state.working) == 0:
		sb.WriteString(dimStyle.Render("Loading tasks..."))
	case len(b.state.working) == 0:
		sb.WriteString(dimStyle.Render("No tasks yet. Press tab to create one."))
	case b.mode == ViewGrid:
		sb.WriteString(b.renderGrid())
	default:
		sb.WriteString(b.renderList())
	}
	sb.WriteString("\n")

	if b.confirming {
		sb.WriteString("\n")
		sb.WriteString(confirmStyle.Render(fmt.Sprintf("Delete %d task(s)? (y/n)", len(b.state.selected))))
		sb.WriteString("\n")
	}

	if msg := renderToast(b.toasts.current); msg != "" {
		sb.WriteString("\n")
		sb.WriteString(msg)
		sb.WriteString("\n")
	}

	sb.WriteString(helpStyle.Render("space select · a all · esc clear · d delete · x delete one · 1-5 sort · v layout · r refresh · tab dashboard · q quit"))
	return sb.String()
}

func (b *Board) renderList() string {
	var sb strings.Builder
	for i, t := range b.state.working {
		line := taskLine(t, b.state.isSelected(t.ID))
		switch {
		case i == b.cursor:
			line = cursorStyle.Render("> " + line)
		case b.state.isSelected(t.ID):
			line = selectedStyle.Render("  " + line)
		default:
			line = "  " + line
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

func (b *Board) renderGrid() string {
	cols := 1
	if b.width > 0 {
		cols = b.width / 30
	}
	if cols < 1 {
		cols = 1
	}

	var cards []string
	for i, t := range b.state.working {
		body := taskCard(t, b.state.isSelected(t.ID))
		style := cardStyle
		if i == b.cursor {
			style = style.BorderForeground(lipgloss.Color("212"))
		}
		cards = append(cards, style.Render(body))
	}

	var rows []string
	for start := 0; start < len(cards); start += cols {
		end := start + cols
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func taskLine(t domain.Task, selected bool) string {
	mark := "[ ]"
	if selected {
		mark = "[x]"
	}
	due := "no due date"
	if t.DueDate != nil {
		due = t.DueDate.Format("2006-01-02")
	}
	prio := t.Priority.String()
	if prio == "" {
		prio = "-"
	}
	status := t.Status
	if status == "" {
		status = domain.DefaultStatus
	}
	return fmt.Sprintf("%s %-30s %s  %-6s %s", mark, truncate(t.Title, 30), due, prio, dimStyle.Render(status))
}

func taskCard(t domain.Task, selected bool) string {
	var sb strings.Builder
	title := truncate(t.Title, 24)
	if selected {
		sb.WriteString(selectedStyle.Render("[x] " + title))
	} else {
		sb.WriteString(title)
	}
	sb.WriteString("\n")
	if t.DueDate != nil {
		sb.WriteString(dimStyle.Render("due " + t.DueDate.Format("2006-01-02")))
	} else {
		sb.WriteString(dimStyle.Render("no due date"))
	}
	if p := t.Priority.String(); p != "" {
		sb.WriteString("\n")
		sb.WriteString(dimStyle.Render(p))
	}
	return sb.String()
}

// View renders the creation form, sidebar and clock.
func (d *Dashboard) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("New task"))
	sb.WriteString(dimStyle.Render("   " + d.clock.Format("Mon Jan 2 15:04:05")))
	sb.WriteString("\n\n")

	sb.WriteString(formRow("Title", d.title.View(), d.focus == fieldTitle))
	sb.WriteString(formRow("Description", d.description.View(), d.focus == fieldDescription))
	sb.WriteString(formRow("Due date", d.dueDate.View(), d.focus == fieldDueDate))
	sb.WriteString(formRow("Priority", priorityLabel(d.priority), d.focus == fieldPriority))
	sb.WriteString(formRow("Status", statusOptions[d.statusIdx], d.focus == fieldStatus))
	sb.WriteString(formRow("Tags", d.tags.View(), d.focus == fieldTags))

	if len(d.recent) > 0 {
		sb.WriteString("\n")
		sb.WriteString(dimStyle.Render("Recent tasks"))
		sb.WriteString("\n")
		limit := len(d.recent)
		if limit > 5 {
			limit = 5
		}
		for _, t := range d.recent[:limit] {
			sb.WriteString(dimStyle.Render("  · " + truncate(t.Title, 40)))
			sb.WriteString("\n")
		}
	}

	if msg := renderToast(d.toasts.current); msg != "" {
		sb.WriteString("\n")
		sb.WriteString(msg)
		sb.WriteString("\n")
	}

	sb.WriteString(helpStyle.Render("up/down field · left/right cycle · enter create · tab board · ctrl+c quit"))
	return sb.String()
}

func formRow(label, value string, focused bool) string {
	prefix := "  "
	if focused {
		prefix = cursorStyle.Render("> ")
	}
	return fmt.Sprintf("%s%-12s %s\n", prefix, label, value)
}

func priorityLabel(p domain.Priority) string {
	if s := p.String(); s != "" {
		return s
	}
	return "None"
}

// truncate shortens s to at most max runes, never splitting a multibyte
// character.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
