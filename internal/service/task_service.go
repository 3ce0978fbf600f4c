package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Varun5711/taskhub/internal/cache"
	"github.com/Varun5711/taskhub/internal/logger"
	"github.com/Varun5711/taskhub/internal/models"
	"github.com/Varun5711/taskhub/internal/storage"
	"github.com/Varun5711/taskhub/internal/validation"
	"github.com/google/uuid"
)

// ErrTaskNotFound covers both a missing task and a task owned by someone
// else. The two cases are deliberately indistinguishable to the caller.
var ErrTaskNotFound = errors.New("task not found")

type TaskService struct {
	store     storage.TaskStorage
	listCache *cache.TaskListCache
	log       *logger.Logger
}

// NewTaskService wires the task controller. listCache may be nil, in which
// case every list goes to storage.
func NewTaskService(store storage.TaskStorage, listCache *cache.TaskListCache) *TaskService {
	return &TaskService{
		store:     store,
		listCache: listCache,
		log:       logger.New("task-service"),
	}
}

// List returns the caller's tasks, newest first. search matches title or
// description case-insensitively; status is matched literally, so an
// unrecognized value yields an empty result rather than an error. Only the
// unfiltered list is served from cache.
func (s *TaskService) List(ctx context.Context, userID, search, status string) ([]*models.Task, error) {
	unfiltered := search == "" && status == ""

	if unfiltered && s.listCache != nil {
		if tasks, found := s.listCache.Get(ctx, userID); found {
			return tasks, nil
		}
	}

	tasks, err := s.store.List(ctx, userID, search, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	if tasks == nil {
		tasks = []*models.Task{}
	}

	if unfiltered && s.listCache != nil {
		if err := s.listCache.Set(ctx, userID, tasks); err != nil {
			s.log.Warn("Failed to cache task list for %s: %v", userID, err)
		}
	}

	return tasks, nil
}

func (s *TaskService) Create(ctx context.Context, userID string, req *models.CreateTaskRequest) (*models.Task, error) {
	if err := validation.ValidateCreateTask(req.Title, req.Description); err != nil {
		return nil, err
	}

	now := time.Now()
	task := &models.Task{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Status:      models.StatusPending,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Length limits are not checked here: over-limit values are rejected by
	// the column types and surface as a storage error.
	if err := s.store.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.invalidateList(ctx, userID)

	return task, nil
}

// Update applies a partial update. A field that decodes to the empty string
// counts as "not provided". A status value other than pending/completed is
// ignored without error; any other supplied fields still apply.
func (s *TaskService) Update(ctx context.Context, userID, taskID string, req *models.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.store.GetByID(ctx, taskID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up task: %w", err)
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	if req.Title != "" {
		task.Title = req.Title
	}
	if req.Description != "" {
		task.Description = req.Description
	}
	if validation.IsTaskStatus(req.Status) {
		task.Status = req.Status
	}
	task.UpdatedAt = time.Now()

	if err := s.store.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	s.invalidateList(ctx, userID)

	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, userID, taskID string) error {
	deleted, err := s.store.Delete(ctx, taskID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if !deleted {
		return ErrTaskNotFound
	}

	s.invalidateList(ctx, userID)

	return nil
}

func (s *TaskService) invalidateList(ctx context.Context, userID string) {
	if s.listCache == nil {
		return
	}
	if err := s.listCache.Invalidate(ctx, userID); err != nil {
		s.log.Warn("Failed to invalidate task list cache for %s: %v", userID, err)
	}
}
