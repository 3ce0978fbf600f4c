package storage

import (
	"context"

	"github.com/Varun5711/taskhub/internal/models"
	usermodel "github.com/Varun5711/taskhub/internal/models/user"
)

// TaskStorage is the persistence contract for tasks. Every query and
// mutation is scoped to the owning user; a lookup miss is (nil, nil), not
// an error.
type TaskStorage interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, taskID, userID string) (*models.Task, error)
	List(ctx context.Context, userID, search, status string) ([]*models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, taskID, userID string) (bool, error)
}

type UserStore interface {
	CreateUser(ctx context.Context, email, name, passwordHash string) (*usermodel.User, error)
	GetUserByEmail(ctx context.Context, email string) (*usermodel.User, error)
	GetUserByID(ctx context.Context, userID string) (*usermodel.User, error)
}
