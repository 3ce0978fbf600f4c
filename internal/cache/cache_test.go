package cache

import (
	"context"
	"testing"

	"github.com/Varun5711/taskhub/internal/models"
)

func TestTaskListCache_SetGet(t *testing.T) {
	c := NewTaskListCache(10, nil, 0)
	ctx := context.Background()

	tasks := []*models.Task{
		{ID: "t1", Title: "first", UserID: "u1"},
		{ID: "t2", Title: "second", UserID: "u1"},
	}

	if err := c.Set(ctx, "u1", tasks); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, found := c.Get(ctx, "u1")
	if !found {
		t.Fatal("expected cache hit")
	}
	if len(got) != 2 || got[0].ID != "t1" {
		t.Errorf("unexpected cached tasks: %+v", got)
	}
}

func TestTaskListCache_Miss(t *testing.T) {
	c := NewTaskListCache(10, nil, 0)

	if _, found := c.Get(context.Background(), "nobody"); found {
		t.Error("expected cache miss for unknown owner")
	}
}

func TestTaskListCache_Invalidate(t *testing.T) {
	c := NewTaskListCache(10, nil, 0)
	ctx := context.Background()

	tasks := []*models.Task{{ID: "t1", UserID: "u1"}}
	if err := c.Set(ctx, "u1", tasks); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := c.Invalidate(ctx, "u1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, found := c.Get(ctx, "u1"); found {
		t.Error("expected miss after invalidation")
	}
}

func TestTaskListCache_OwnersAreIsolated(t *testing.T) {
	c := NewTaskListCache(10, nil, 0)
	ctx := context.Background()

	if err := c.Set(ctx, "u1", []*models.Task{{ID: "t1", UserID: "u1"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, found := c.Get(ctx, "u2"); found {
		t.Error("expected owner u2 to have no cached entry")
	}
}
