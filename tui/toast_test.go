package tui

import (
	"testing"
)

func TestNewToastReplacesCurrentAndRestartsWindow(t *testing.T) {
	tr := &toaster{}

	first := tr.show(toastSuccess, "first")
	if first == nil {
		t.Fatalf("expected expiry command")
	}
	firstID := tr.current.id

	tr.show(toastError, "second")
	if tr.current.message != "second" {
		t.Fatalf("expected newer toast to replace, got %q", tr.current.message)
	}

	// The replaced toast's expiry is stale and must not clear the newer one.
	tr.expire(toastExpiredMsg{owner: tr, id: firstID})
	if tr.current == nil || tr.current.message != "second" {
		t.Fatalf("stale expiry cleared a newer toast")
	}

	tr.expire(toastExpiredMsg{owner: tr, id: tr.current.id})
	if tr.current != nil {
		t.Fatalf("expected toast cleared by its own expiry")
	}
}

func TestExpiryFromAnotherViewIsInert(t *testing.T) {
	a := &toaster{}
	b := &toaster{}

	a.show(toastSuccess, "board")
	b.show(toastSuccess, "dashboard")

	a.expire(toastExpiredMsg{owner: b, id: b.current.id})
	if a.current == nil {
		t.Fatalf("expiry tick for another view cleared this view's toast")
	}
}
