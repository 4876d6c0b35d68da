package api

import (
	"context"

	"taskpad/domain"
)

// Storage abstracts persistence for handlers.
type Storage interface {
	ListTasks(ctx context.Context, ownerID string) ([]domain.Task, error)
	InsertTask(ctx context.Context, ownerID string, task domain.Task) error
	DeleteTask(ctx context.Context, ownerID, taskID string) error
}

// Deduper prevents replays of create requests carrying the same
// idempotency key.
type Deduper interface {
	// Add records the idempotency key and returns true if it was newly added.
	Add(ctx context.Context, ownerID, key string) (bool, error)
	// Remove deletes a previously added key, used when the insert fails so
	// the caller may retry.
	Remove(ctx context.Context, ownerID, key string) error
}
