package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Varun5711/taskhub/internal/models"
	"github.com/redis/go-redis/v9"
)

// TaskListCache caches the unfiltered task list per owner: L1 is an
// in-process LRU, L2 is Redis. Mutations invalidate the owner's entry, so a
// stale read is bounded by the L2 TTL only when invalidation itself fails.
type TaskListCache struct {
	l1    *LRUCache
	l2    *redis.Client
	l2TTL time.Duration
}

func NewTaskListCache(l1Capacity int, redisClient *redis.Client, l2TTL time.Duration) *TaskListCache {
	return &TaskListCache{
		l1:    NewLRUCache(l1Capacity),
		l2:    redisClient,
		l2TTL: l2TTL,
	}
}

func cacheKey(userID string) string {
	return "tasks:" + userID
}

func (c *TaskListCache) Get(ctx context.Context, userID string) ([]*models.Task, bool) {
	key := cacheKey(userID)

	if val, found := c.l1.Get(key); found {
		if tasks, ok := val.([]*models.Task); ok {
			return tasks, true
		}
	}

	if c.l2 == nil {
		return nil, false
	}

	raw, err := c.l2.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}

	var tasks []*models.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		return nil, false
	}

	c.l1.Set(key, tasks)
	return tasks, true
}

func (c *TaskListCache) Set(ctx context.Context, userID string, tasks []*models.Task) error {
	key := cacheKey(userID)
	c.l1.Set(key, tasks)

	if c.l2 == nil {
		return nil
	}

	data, err := json.Marshal(tasks)
	if err != nil {
		return err
	}

	return c.l2.Set(ctx, key, string(data), c.l2TTL).Err()
}

func (c *TaskListCache) Invalidate(ctx context.Context, userID string) error {
	key := cacheKey(userID)
	c.l1.Delete(key)

	if c.l2 == nil {
		return nil
	}

	return c.l2.Del(ctx, key).Err()
}
