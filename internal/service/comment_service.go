package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"taskboard/internal/logger"
	"taskboard/internal/models"
	"taskboard/internal/repository"

	"go.uber.org/zap"
)

type CommentUpdate struct {
	Content *string
}

// CommentService держит оба репозитория: перед работой с комментариями
// проверяется существование родительской задачи.
type CommentService struct {
	comments repository.CommentRepository
	tasks    repository.TaskRepository
}

func NewCommentService(comments repository.CommentRepository, tasks repository.TaskRepository) CommentService {
	return CommentService{
		comments: comments,
		tasks:    tasks,
	}
}

func (s *CommentService) taskExists(ctx context.Context, taskID int64) error {
	if _, err := s.tasks.GetTaskByID(ctx, taskID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Info("Service: Задача не найдена", zap.Int64("task_id", taskID))
			return NewNotFound("Task not found", err)
		}
		return fmt.Errorf("получение задачи: %w", err)
	}
	return nil
}

func (s *CommentService) ListTaskComments(ctx context.Context, taskID int64, page, perPage int) ([]*models.Comment, Pagination, error) {
	if err := s.taskExists(ctx, taskID); err != nil {
		return nil, Pagination{}, err
	}

	page, perPage = normalizePage(page, perPage)

	comments, total, err := s.comments.ListCommentsByTask(ctx, taskID, perPage, (page-1)*perPage)
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("получение комментариев: %w", err)
	}

	return comments, paginate(total, page, perPage), nil
}

func (s *CommentService) CreateComment(ctx context.Context, taskID int64, content string) (*models.Comment, error) {
	if err := s.taskExists(ctx, taskID); err != nil {
		return nil, err
	}

	if content == "" {
		return nil, NewValidationError("Comment content is required")
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, NewValidationError("Comment content cannot be empty")
	}

	comment := &models.Comment{
		Content: content,
		TaskID:  taskID,
	}

	if err := s.comments.CreateComment(ctx, comment); err != nil {
		// задача могла исчезнуть между проверкой и вставкой,
		// внешний ключ ловит это надёжнее проверки
		if errors.Is(err, repository.ErrNotFound) {
			logger.Info("Service: Задача не найдена", zap.Int64("task_id", taskID))
			return nil, NewNotFound("Task not found", err)
		}
		return nil, fmt.Errorf("создание комментария: %w", err)
	}

	return comment, nil
}

func (s *CommentService) GetCommentByID(ctx context.Context, id int64) (*models.Comment, error) {
	comment, err := s.comments.GetCommentByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Info("Service: Комментарий не найден", zap.Int64("comment_id", id))
			return nil, NewNotFound("Comment not found", err)
		}
		return nil, fmt.Errorf("получение комментария: %w", err)
	}
	return comment, nil
}

func (s *CommentService) UpdateComment(ctx context.Context, id int64, upd CommentUpdate) (*models.Comment, error) {
	// сначала существование, потом валидация тела
	comment, err := s.GetCommentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Content != nil && strings.TrimSpace(*upd.Content) == "" {
		return nil, NewValidationError("Comment content cannot be empty")
	}

	if upd.Content != nil {
		comment.Content = strings.TrimSpace(*upd.Content)
	}

	if err := s.comments.UpdateComment(ctx, comment); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Info("Service: Комментарий не найден", zap.Int64("comment_id", id))
			return nil, NewNotFound("Comment not found", err)
		}
		return nil, fmt.Errorf("обновление комментария: %w", err)
	}

	return comment, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, id int64) error {
	if err := s.comments.DeleteComment(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Info("Service: Комментарий не найден", zap.Int64("comment_id", id))
			return NewNotFound("Comment not found", err)
		}
		return fmt.Errorf("удаление комментария: %w", err)
	}
	return nil
}
