package postgres

import (
	"context"
	"fmt"
	"taskboard/internal/logger"
)

// Seed наполняет пустую базу стартовыми данными: три задачи и три
// комментария. Если задачи уже есть, ничего не делает.
func (s *Storage) Seed(ctx context.Context) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		logger.Error("Repository: Не удалось открыть транзакцию", err)
		return fmt.Errorf("открытие транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	var count int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&count); err != nil {
		logger.Error("Repository: Не удалось посчитать задачи", err)
		return fmt.Errorf("подсчёт задач: %w", err)
	}
	if count > 0 {
		return nil
	}

	seedTasks := []struct {
		title, description, status, priority string
	}{
		{
			title:       "Build Comment API",
			description: "Implement CRUD operations for task comments",
			status:      "in_progress",
			priority:    "high",
		},
		{
			title:       "Create React Frontend",
			description: "Build React components for task and comment management",
			status:      "pending",
			priority:    "medium",
		},
		{
			title:       "Write Tests",
			description: "Create comprehensive test suite for the application",
			status:      "completed",
			priority:    "high",
		},
	}

	taskIDs := make([]int64, 0, len(seedTasks))
	for _, t := range seedTasks {
		var id int64
		err := tx.QueryRow(ctx,
			`INSERT INTO tasks (title, description, status, priority)
				VALUES ($1, $2, $3, $4) RETURNING id`,
			t.title, t.description, t.status, t.priority,
		).Scan(&id)
		if err != nil {
			logger.Error("Repository: Не удалось добавить стартовую задачу", err)
			return fmt.Errorf("добавление стартовой задачи: %w", err)
		}
		taskIDs = append(taskIDs, id)
	}

	seedComments := []struct {
		content string
		taskID  int64
	}{
		{
			content: "Started working on the comment model and basic CRUD operations.",
			taskID:  taskIDs[0],
		},
		{
			content: "API endpoints are working well. Need to add proper validation.",
			taskID:  taskIDs[0],
		},
		{
			content: "Planning the React component structure.",
			taskID:  taskIDs[1],
		},
	}

	for _, c := range seedComments {
		_, err := tx.Exec(ctx,
			`INSERT INTO comments (content, task_id) VALUES ($1, $2)`,
			c.content, c.taskID,
		)
		if err != nil {
			logger.Error("Repository: Не удалось добавить стартовый комментарий", err)
			return fmt.Errorf("добавление стартового комментария: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		logger.Error("Repository: Не удалось зафиксировать транзакцию", err)
		return fmt.Errorf("фиксация транзакции: %w", err)
	}

	logger.Info("Repository: Стартовые данные добавлены")
	return nil
}
