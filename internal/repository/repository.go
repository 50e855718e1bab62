package repository

import (
	"context"
	"errors"
	"taskboard/internal/models"
)

var ErrNotFound = errors.New("not found")

type TaskRepository interface {
	CreateTask(ctx context.Context, task *models.Task) error
	GetTaskByID(ctx context.Context, id int64) (*models.Task, error)
	ListTasks(ctx context.Context, limit, offset int) ([]*models.Task, int, error)
	UpdateTask(ctx context.Context, task *models.Task) error
	DeleteTask(ctx context.Context, id int64) error
	HealthCheck(ctx context.Context) error
}

type CommentRepository interface {
	CreateComment(ctx context.Context, comment *models.Comment) error
	GetCommentByID(ctx context.Context, id int64) (*models.Comment, error)
	ListCommentsByTask(ctx context.Context, taskID int64, limit, offset int) ([]*models.Comment, int, error)
	UpdateComment(ctx context.Context, comment *models.Comment) error
	DeleteComment(ctx context.Context, id int64) error
}
