package storage

import (
	"context"
	"fmt"

	"github.com/Varun5711/taskhub/internal/database"
	"github.com/Varun5711/taskhub/internal/models"
	"github.com/jackc/pgx/v5"
)

type PostgresTaskStorage struct {
	db *database.DBManager
}

func NewPostgresTaskStorage(db *database.DBManager) *PostgresTaskStorage {
	return &PostgresTaskStorage{
		db: db,
	}
}

func (s *PostgresTaskStorage) Create(ctx context.Context, task *models.Task) error {
	query := `
		INSERT INTO tasks (id, title, description, status, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := s.db.Write().Exec(ctx, query,
		task.ID,
		task.Title,
		task.Description,
		task.Status,
		task.UserID,
		task.CreatedAt,
		task.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	return nil
}

func (s *PostgresTaskStorage) GetByID(ctx context.Context, taskID, userID string) (*models.Task, error) {
	query := `
		SELECT id, title, description, status, user_id, created_at, updated_at
		FROM tasks
		WHERE id = $1 AND user_id = $2
	`

	var task models.Task
	err := s.db.Read().QueryRow(ctx, query, taskID, userID).Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.UserID,
		&task.CreatedAt,
		&task.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return &task, nil
}

func (s *PostgresTaskStorage) List(ctx context.Context, userID, search, status string) ([]*models.Task, error) {
	query := `
		SELECT id, title, description, status, user_id, created_at, updated_at
		FROM tasks
		WHERE user_id = $1
	`
	args := []interface{}{userID}

	if search != "" {
		args = append(args, "%"+search+"%")
		query += fmt.Sprintf(" AND (title ILIKE $%d OR description ILIKE $%d)", len(args), len(args))
	}

	// The status value is matched literally: an unrecognized value simply
	// matches zero rows.
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}

	query += " ORDER BY created_at DESC"

	rows, err := s.db.Read().Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		var task models.Task
		err := rows.Scan(
			&task.ID,
			&task.Title,
			&task.Description,
			&task.Status,
			&task.UserID,
			&task.CreatedAt,
			&task.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		tasks = append(tasks, &task)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return tasks, nil
}

func (s *PostgresTaskStorage) Update(ctx context.Context, task *models.Task) error {
	query := `
		UPDATE tasks
		SET title = $1, description = $2, status = $3, updated_at = $4
		WHERE id = $5 AND user_id = $6
	`

	cmdTag, err := s.db.Write().Exec(ctx, query,
		task.Title,
		task.Description,
		task.Status,
		task.UpdatedAt,
		task.ID,
		task.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("task %s not found", task.ID)
	}

	return nil
}

func (s *PostgresTaskStorage) Delete(ctx context.Context, taskID, userID string) (bool, error) {
	query := `
		DELETE FROM tasks
		WHERE id = $1 AND user_id = $2
	`

	cmdTag, err := s.db.Write().Exec(ctx, query, taskID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete task: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}
