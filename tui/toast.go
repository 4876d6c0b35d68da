package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// toastTTL is how long a notification stays on screen before auto-clearing.
const toastTTL = 3 * time.Second

type toastKind int

const (
	toastSuccess toastKind = iota
	toastError
)

// toast is a transient notification. The id is a generation counter: a newer
// toast replaces the current one and restarts the expiry window, and the
// stale expiry tick is ignored because its id no longer matches.
type toast struct {
	kind    toastKind
	message string
	id      int
}

// toaster owns the single display slot for notifications. A zero ttl means
// the default window.
type toaster struct {
	current *toast
	seq     int
	ttl     time.Duration
}

// show replaces any displayed toast and returns the expiry command for the
// new one.
func (t *toaster) show(kind toastKind, message string) tea.Cmd {
	t.seq++
	t.current = &toast{kind: kind, message: message, id: t.seq}
	id := t.seq
	ttl := t.ttl
	if ttl == 0 {
		ttl = toastTTL
	}
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return toastExpiredMsg{owner: t, id: id}
	})
}

// expire clears the toast if the expiry tick belongs to it. Ticks from
// replaced toasts or other views are inert.
func (t *toaster) expire(msg toastExpiredMsg) {
	if msg.owner != t {
		return
	}
	if t.current != nil && t.current.id == msg.id {
		t.current = nil
	}
}
