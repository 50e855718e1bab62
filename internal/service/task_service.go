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

// TaskUpdate — частичное обновление: меняются только переданные поля.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *string
}

type TaskService struct {
	repo repository.TaskRepository
}

func NewTaskService(repo repository.TaskRepository) TaskService {
	return TaskService{repo: repo}
}

func (s *TaskService) HealthCheck(ctx context.Context) error {
	return s.repo.HealthCheck(ctx)
}

func (s *TaskService) CreateTask(ctx context.Context, title, description, status, priority string) (*models.Task, error) {
	if title == "" {
		return nil, NewValidationError("Task title is required")
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, NewValidationError("Task title cannot be empty")
	}

	if status == "" {
		status = models.DefaultStatus
	}
	if priority == "" {
		priority = models.DefaultPriority
	}

	task := &models.Task{
		Title:       title,
		Description: strings.TrimSpace(description),
		Status:      status,
		Priority:    priority,
	}

	if err := s.repo.CreateTask(ctx, task); err != nil {
		return nil, fmt.Errorf("создание задачи: %w", err)
	}

	return task, nil
}

func (s *TaskService) ListTasks(ctx context.Context, page, perPage int) ([]*models.Task, Pagination, error) {
	page, perPage = normalizePage(page, perPage)

	tasks, total, err := s.repo.ListTasks(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("получение задач: %w", err)
	}

	return tasks, paginate(total, page, perPage), nil
}

func (s *TaskService) GetTaskByID(ctx context.Context, id int64) (*models.Task, error) {
	task, err := s.repo.GetTaskByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Info("Service: Задача не найдена", zap.Int64("task_id", id))
			return nil, NewNotFound("Task not found", err)
		}
		return nil, fmt.Errorf("получение задачи: %w", err)
	}
	return task, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, id int64, upd TaskUpdate) (*models.Task, error) {
	// сначала существование, потом валидация тела
	task, err := s.GetTaskByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Title == nil && upd.Description == nil && upd.Status == nil && upd.Priority == nil {
		return nil, NewValidationError("No data provided")
	}
	if upd.Title != nil && strings.TrimSpace(*upd.Title) == "" {
		return nil, NewValidationError("Task title cannot be empty")
	}

	if upd.Title != nil {
		task.Title = strings.TrimSpace(*upd.Title)
	}
	if upd.Description != nil {
		task.Description = strings.TrimSpace(*upd.Description)
	}
	if upd.Status != nil {
		task.Status = *upd.Status
	}
	if upd.Priority != nil {
		task.Priority = *upd.Priority
	}

	if err := s.repo.UpdateTask(ctx, task); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Info("Service: Задача не найдена", zap.Int64("task_id", id))
			return nil, NewNotFound("Task not found", err)
		}
		return nil, fmt.Errorf("обновление задачи: %w", err)
	}

	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id int64) error {
	if err := s.repo.DeleteTask(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Info("Service: Задача не найдена", zap.Int64("task_id", id))
			return NewNotFound("Task not found", err)
		}
		return fmt.Errorf("удаление задачи: %w", err)
	}
	return nil
}
