package inmemory

import (
	"context"
	"sort"
	"sync"
	"taskboard/internal/models"
	"taskboard/internal/repository"
	"time"
)

// Storage — потокобезопасное хранилище в памяти, используется
// в юнит-тестах вместо PostgreSQL.
type Storage struct {
	mu            sync.RWMutex
	tasks         map[int64]*models.Task
	comments      map[int64]*models.Comment
	nextTaskID    int64
	nextCommentID int64
}

func NewStorage() *Storage {
	return &Storage{
		tasks:         make(map[int64]*models.Task),
		comments:      make(map[int64]*models.Comment),
		nextTaskID:    1,
		nextCommentID: 1,
	}
}

func (s *Storage) HealthCheck(ctx context.Context) error {
	return nil
}

func cloneTask(t *models.Task) *models.Task {
	c := *t
	return &c
}

func cloneComment(c *models.Comment) *models.Comment {
	cc := *c
	return &cc
}

func (s *Storage) commentsCount(taskID int64) int {
	count := 0
	for _, c := range s.comments {
		if c.TaskID == taskID {
			count++
		}
	}
	return count
}

func (s *Storage) CreateTask(ctx context.Context, task *models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	task.ID = s.nextTaskID
	s.nextTaskID++
	task.CreatedAt = &now
	task.UpdatedAt = &now
	task.CommentsCount = 0

	s.tasks[task.ID] = cloneTask(task)
	return nil
}

func (s *Storage) GetTaskByID(ctx context.Context, id int64) (*models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	result := cloneTask(task)
	result.CommentsCount = s.commentsCount(id)
	return result, nil
}

func (s *Storage) ListTasks(ctx context.Context, limit, offset int) ([]*models.Task, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]*models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		result := cloneTask(t)
		result.CommentsCount = s.commentsCount(t.ID)
		all = append(all, result)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(*all[j].CreatedAt) {
			return all[i].ID > all[j].ID
		}
		return all[i].CreatedAt.After(*all[j].CreatedAt)
	})

	total := len(all)
	if offset >= total {
		return []*models.Task{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (s *Storage) UpdateTask(ctx context.Context, task *models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.tasks[task.ID]
	if !ok {
		return repository.ErrNotFound
	}

	now := time.Now()
	existing.Title = task.Title
	existing.Description = task.Description
	existing.Status = task.Status
	existing.Priority = task.Priority
	existing.UpdatedAt = &now
	task.UpdatedAt = &now
	return nil
}

// удаление задачи забирает с собой её комментарии
func (s *Storage) DeleteTask(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return repository.ErrNotFound
	}

	delete(s.tasks, id)
	for cid, c := range s.comments {
		if c.TaskID == id {
			delete(s.comments, cid)
		}
	}
	return nil
}

func (s *Storage) CreateComment(ctx context.Context, comment *models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[comment.TaskID]; !ok {
		return repository.ErrNotFound
	}

	now := time.Now()
	comment.ID = s.nextCommentID
	s.nextCommentID++
	comment.CreatedAt = &now
	comment.UpdatedAt = &now

	s.comments[comment.ID] = cloneComment(comment)
	return nil
}

func (s *Storage) GetCommentByID(ctx context.Context, id int64) (*models.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	comment, ok := s.comments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneComment(comment), nil
}

func (s *Storage) ListCommentsByTask(ctx context.Context, taskID int64, limit, offset int) ([]*models.Comment, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := []*models.Comment{}
	for _, c := range s.comments {
		if c.TaskID == taskID {
			all = append(all, cloneComment(c))
		}
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(*all[j].CreatedAt) {
			return all[i].ID > all[j].ID
		}
		return all[i].CreatedAt.After(*all[j].CreatedAt)
	})

	total := len(all)
	if offset >= total {
		return []*models.Comment{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (s *Storage) UpdateComment(ctx context.Context, comment *models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.comments[comment.ID]
	if !ok {
		return repository.ErrNotFound
	}

	now := time.Now()
	existing.Content = comment.Content
	existing.UpdatedAt = &now
	comment.UpdatedAt = &now
	comment.TaskID = existing.TaskID
	return nil
}

func (s *Storage) DeleteComment(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.comments[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.comments, id)
	return nil
}
