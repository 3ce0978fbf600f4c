package storage

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/Varun5711/taskhub/internal/models"
	usermodel "github.com/Varun5711/taskhub/internal/models/user"
	"github.com/google/uuid"
)

// MemoryTaskStorage mirrors the Postgres semantics closely enough for tests:
// owner scoping, case-insensitive substring search, literal status matching,
// newest-first ordering, and column-limit rejection.
type MemoryTaskStorage struct {
	mu    sync.RWMutex
	tasks map[string]*models.Task
}

func NewMemoryTaskStorage() *MemoryTaskStorage {
	return &MemoryTaskStorage{
		tasks: make(map[string]*models.Task),
	}
}

func checkColumnLimits(task *models.Task) error {
	if len(task.Title) > 100 {
		return fmt.Errorf("value too long for type character varying(100)")
	}
	if len(task.Description) > 500 {
		return fmt.Errorf("value too long for type character varying(500)")
	}
	return nil
}

func (s *MemoryTaskStorage) Create(ctx context.Context, task *models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tasks[task.ID]; exists {
		return fmt.Errorf("task %s already exists", task.ID)
	}

	if err := checkColumnLimits(task); err != nil {
		return err
	}

	copied := *task
	s.tasks[task.ID] = &copied
	return nil
}

func (s *MemoryTaskStorage) GetByID(ctx context.Context, taskID, userID string) (*models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, exists := s.tasks[taskID]
	if !exists || task.UserID != userID {
		return nil, nil
	}

	copied := *task
	return &copied, nil
}

func (s *MemoryTaskStorage) List(ctx context.Context, userID, search, status string) ([]*models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(search)

	var tasks []*models.Task
	for _, task := range s.tasks {
		if task.UserID != userID {
			continue
		}
		if search != "" {
			title := strings.ToLower(task.Title)
			description := strings.ToLower(task.Description)
			if !strings.Contains(title, needle) && !strings.Contains(description, needle) {
				continue
			}
		}
		if status != "" && task.Status != status {
			continue
		}

		copied := *task
		tasks = append(tasks, &copied)
	}

	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})

	return tasks, nil
}

func (s *MemoryTaskStorage) Update(ctx context.Context, task *models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, exists := s.tasks[task.ID]
	if !exists || existing.UserID != task.UserID {
		return fmt.Errorf("task %s not found", task.ID)
	}

	if err := checkColumnLimits(task); err != nil {
		return err
	}

	copied := *task
	s.tasks[task.ID] = &copied
	return nil
}

func (s *MemoryTaskStorage) Delete(ctx context.Context, taskID, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, exists := s.tasks[taskID]
	if !exists || task.UserID != userID {
		return false, nil
	}

	delete(s.tasks, taskID)
	return true, nil
}

type MemoryUserStorage struct {
	mu    sync.RWMutex
	users map[string]*usermodel.User
}

func NewMemoryUserStorage() *MemoryUserStorage {
	return &MemoryUserStorage{
		users: make(map[string]*usermodel.User),
	}
}

func (s *MemoryUserStorage) CreateUser(ctx context.Context, email, name, passwordHash string) (*usermodel.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return nil, fmt.Errorf("duplicate key value violates unique constraint")
		}
	}

	user := &usermodel.User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
	}
	s.users[user.ID] = user

	copied := *user
	return &copied, nil
}

func (s *MemoryUserStorage) GetUserByEmail(ctx context.Context, email string) (*usermodel.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *MemoryUserStorage) GetUserByID(ctx context.Context, userID string) (*usermodel.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[userID]
	if !exists {
		return nil, nil
	}

	copied := *user
	return &copied, nil
}
