package handlers

import (
	"context"
	"taskboard/internal/models"
	"taskboard/internal/service"
)

type TaskService interface {
	HealthCheck(ctx context.Context) error
	CreateTask(ctx context.Context, title, description, status, priority string) (*models.Task, error)
	ListTasks(ctx context.Context, page, perPage int) ([]*models.Task, service.Pagination, error)
	GetTaskByID(ctx context.Context, id int64) (*models.Task, error)
	UpdateTask(ctx context.Context, id int64, upd service.TaskUpdate) (*models.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}

type CommentService interface {
	ListTaskComments(ctx context.Context, taskID int64, page, perPage int) ([]*models.Comment, service.Pagination, error)
	CreateComment(ctx context.Context, taskID int64, content string) (*models.Comment, error)
	GetCommentByID(ctx context.Context, id int64) (*models.Comment, error)
	UpdateComment(ctx context.Context, id int64, upd service.CommentUpdate) (*models.Comment, error)
	DeleteComment(ctx context.Context, id int64) error
}
