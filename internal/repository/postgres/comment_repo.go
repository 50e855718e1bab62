package postgres

import (
	"context"
	"errors"
	"fmt"
	"taskboard/internal/logger"
	"taskboard/internal/models"
	"taskboard/internal/repository"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

func (s *Storage) CreateComment(ctx context.Context, comment *models.Comment) error {
	start := time.Now()

	query := `INSERT INTO comments (content, task_id)
				VALUES ($1, $2)
				RETURNING id, created_at, updated_at`

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		logger.Error("Repository: Не удалось открыть транзакцию", err)
		return fmt.Errorf("открытие транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, query, comment.Content, comment.TaskID).
		Scan(&comment.ID, &comment.CreatedAt, &comment.UpdatedAt)

	if err != nil {
		// нарушение внешнего ключа — задачи не существует
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			logger.Warn("Repository: Комментарий ссылается на несуществующую задачу",
				zap.Int64("task_id", comment.TaskID))
			return repository.ErrNotFound
		}

		logger.Error("Repository: Не удалось добавить комментарий", err, zap.Duration("ms", time.Since(start)))
		return fmt.Errorf("добавление комментария: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		logger.Error("Repository: Не удалось зафиксировать транзакцию", err)
		return fmt.Errorf("фиксация транзакции: %w", err)
	}

	if time.Since(start) > time.Millisecond*50 {
		logger.Warn("Repository: Медленный запрос", zap.Duration("ms", time.Since(start)))
	}
	return nil
}

func (s *Storage) GetCommentByID(ctx context.Context, id int64) (*models.Comment, error) {
	start := time.Now()

	query := `SELECT id, content, task_id, created_at, updated_at
				FROM comments
				WHERE id = $1`

	comment := &models.Comment{}
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&comment.ID,
		&comment.Content,
		&comment.TaskID,
		&comment.CreatedAt,
		&comment.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		logger.Error("Repository: Не удалось получить комментарий", err, zap.Duration("ms", time.Since(start)))
		return nil, fmt.Errorf("получение комментария: %w", err)
	}

	if time.Since(start) > time.Millisecond*100 {
		logger.Warn("Repository: Медленный запрос", zap.Duration("ms", time.Since(start)))
	}

	return comment, nil
}

func (s *Storage) ListCommentsByTask(ctx context.Context, taskID int64, limit, offset int) ([]*models.Comment, int, error) {
	start := time.Now()

	var total int
	err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM comments WHERE task_id = $1`, taskID).Scan(&total)
	if err != nil {
		logger.Error("Repository: Не удалось посчитать комментарии", err)
		return nil, 0, fmt.Errorf("подсчёт комментариев: %w", err)
	}

	query := `SELECT id, content, task_id, created_at, updated_at
				FROM comments
				WHERE task_id = $1
				ORDER BY created_at DESC, id DESC
				LIMIT $2 OFFSET $3`

	rows, err := s.pool.Query(ctx, query, taskID, limit, offset)
	if err != nil {
		logger.Error("Repository: Не удалось получить комментарии", err, zap.Duration("ms", time.Since(start)))
		return nil, 0, fmt.Errorf("получение комментариев: %w", err)
	}
	defer rows.Close()

	comments := []*models.Comment{}
	for rows.Next() {
		comment := &models.Comment{}
		err := rows.Scan(
			&comment.ID,
			&comment.Content,
			&comment.TaskID,
			&comment.CreatedAt,
			&comment.UpdatedAt,
		)
		if err != nil {
			logger.Error("Repository: Ошибка сканирования комментария", err)
			return nil, 0, fmt.Errorf("сканирование комментария: %w", err)
		}
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		logger.Error("Repository: Ошибка итерации по строкам", err)
		return nil, 0, fmt.Errorf("итерация по строкам: %w", err)
	}

	if time.Since(start) > time.Millisecond*50+time.Millisecond*10*time.Duration(limit) {
		logger.Warn("Repository: Медленный запрос", zap.Duration("ms", time.Since(start)))
	}

	return comments, total, nil
}

func (s *Storage) UpdateComment(ctx context.Context, comment *models.Comment) error {
	start := time.Now()

	query := `UPDATE comments
			SET content = $1,
				updated_at = NOW()
			WHERE id = $2
			RETURNING updated_at`

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		logger.Error("Repository: Не удалось открыть транзакцию", err)
		return fmt.Errorf("открытие транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, query, comment.Content, comment.ID).Scan(&comment.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.ErrNotFound
		}
		logger.Error("Repository: Не удалось обновить комментарий", err)
		return fmt.Errorf("обновление комментария: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		logger.Error("Repository: Не удалось зафиксировать транзакцию", err)
		return fmt.Errorf("фиксация транзакции: %w", err)
	}

	if time.Since(start) > time.Millisecond*100 {
		logger.Warn("Repository: Медленная операция", zap.Duration("ms", time.Since(start)))
	}
	return nil
}

func (s *Storage) DeleteComment(ctx context.Context, id int64) error {
	start := time.Now()

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		logger.Error("Repository: Не удалось открыть транзакцию", err)
		return fmt.Errorf("открытие транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		logger.Error("Repository: Не удалось удалить комментарий", err, zap.Duration("ms", time.Since(start)))
		return fmt.Errorf("удаление комментария: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		logger.Error("Repository: Не удалось зафиксировать транзакцию", err)
		return fmt.Errorf("фиксация транзакции: %w", err)
	}

	if time.Since(start) > time.Millisecond*100 {
		logger.Warn("Repository: Медленная операция", zap.Duration("ms", time.Since(start)))
	}
	return nil
}
