package api

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newDeduperForTest(t *testing.T) *RedisDeduper {
	t.Helper()
	m, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(m.Close)

	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	t.Cleanup(func() {
		if cerr := client.Close(); cerr != nil {
			t.Logf("redis close: %v", cerr)
		}
	})
	return NewRedisDeduper(client, time.Minute)
}

func TestRedisDeduperAdd(t *testing.T) {
	deduper := newDeduperForTest(t)
	ctx := context.Background()

	added, err := deduper.Add(ctx, "owner", "k1")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !added {
		t.Fatalf("expected key to be newly added")
	}

	again, err := deduper.Add(ctx, "owner", "k1")
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if again {
		t.Fatalf("expected duplicate key to be rejected")
	}
}

func TestRedisDeduperRemoveAllowsRetry(t *testing.T) {
	deduper := newDeduperForTest(t)
	ctx := context.Background()

	if _, err := deduper.Add(ctx, "owner", "k1"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := deduper.Remove(ctx, "owner", "k1"); err != nil {
		t.Fatalf("remove: %v", err)
	}

	added, err := deduper.Add(ctx, "owner", "k1")
	if err != nil {
		t.Fatalf("re-add: %v", err)
	}
	if !added {
		t.Fatalf("expected removed key to be addable again")
	}
}

func TestRedisDeduperKeyNamespacing(t *testing.T) {
	deduper := newDeduperForTest(t)
	ctx := context.Background()

	if _, err := deduper.Add(ctx, "owner-a", "k1"); err != nil {
		t.Fatalf("add owner-a: %v", err)
	}

	added, err := deduper.Add(ctx, "owner-b", "k1")
	if err != nil {
		t.Fatalf("add owner-b: %v", err)
	}
	if !added {
		t.Fatalf("expected same key under another owner to be independent")
	}
}
