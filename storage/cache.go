package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"taskpad/domain"
)

type backend interface {
	ListTasks(ctx context.Context, ownerID string) ([]domain.Task, error)
	InsertTask(ctx context.Context, ownerID string, task domain.Task) error
	DeleteTask(ctx context.Context, ownerID, taskID string) error
}

// Cache wraps a Storage instance with Redis-backed caching for task list
// reads. Writes pass through to the backing store and evict the owner's
// cached list.
type Cache struct {
	*Storage
	base  backend
	redis *redis.Client
	ttl   time.Duration
}

// NewCache creates a caching Storage wrapper using the provided Redis client
// and TTL.
func NewCache(base backend, client *redis.Client, ttl time.Duration) *Cache {
	if base == nil {
		panic("storage.NewCache: base storage is nil")
	}
	if ttl < 0 {
		ttl = 0
	}

	c := &Cache{
		base:  base,
		redis: client,
		ttl:   ttl,
	}
	if s, ok := base.(*Storage); ok {
		c.Storage = s
	}
	return c
}

func (c *Cache) ListTasks(ctx context.Context, ownerID string) ([]domain.Task, error) {
	if tasks, ok := c.loadTasksFromCache(ctx, ownerID); ok {
		return tasks, nil
	}

	tasks, err := c.base.ListTasks(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	c.storeTasks(ctx, ownerID, tasks)
	return tasks, nil
}

func (c *Cache) InsertTask(ctx context.Context, ownerID string, task domain.Task) error {
	if err := c.base.InsertTask(ctx, ownerID, task); err != nil {
		return err
	}

	c.evict(ctx, ownerID)
	return nil
}

func (c *Cache) DeleteTask(ctx context.Context, ownerID, taskID string) error {
	if err := c.base.DeleteTask(ctx, ownerID, taskID); err != nil {
		return err
	}

	c.evict(ctx, ownerID)
	return nil
}

func (c *Cache) loadTasksFromCache(ctx context.Context, ownerID string) ([]domain.Task, bool) {
	if c.redis == nil {
		return nil, false
	}
	data, err := c.redis.Get(ctx, tasksCacheKey(ownerID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			// On redis errors fall back to the backing storage without failing.
			_ = c.redis.Del(ctx, tasksCacheKey(ownerID)).Err()
		}
		return nil, false
	}
	var tasks []domain.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		_ = c.redis.Del(ctx, tasksCacheKey(ownerID)).Err()
		return nil, false
	}
	return tasks, true
}

func (c *Cache) storeTasks(ctx context.Context, ownerID string, tasks []domain.Task) {
	if c.redis == nil || c.ttl == 0 {
		return
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return
	}
	_ = c.redis.Set(ctx, tasksCacheKey(ownerID), data, c.ttl).Err()
}

func (c *Cache) evict(ctx context.Context, ownerID string) {
	if c.redis == nil {
		return
	}
	_, _ = c.redis.Del(ctx, tasksCacheKey(ownerID)).Result()
}

func tasksCacheKey(ownerID string) string {
	return "tasks:" + ownerID
}
