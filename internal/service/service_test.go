package service_test

import (
	"context"
	"os"
	"taskboard/internal/logger"
	"taskboard/internal/repository/inmemory"
	"taskboard/internal/service"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := logger.Init(true); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newServices() (service.TaskService, service.CommentService) {
	storage := inmemory.NewStorage()
	taskService := service.NewTaskService(storage)
	commentService := service.NewCommentService(storage, storage)
	return taskService, commentService
}

func strPtr(s string) *string {
	return &s
}

func TestCreateTask(t *testing.T) {
	taskService, _ := newServices()
	ctx := context.Background()

	task, err := taskService.CreateTask(ctx, "  Write docs  ", "  some description ", "", "")
	require.NoError(t, err)

	assert.Equal(t, "Write docs", task.Title)
	assert.Equal(t, "some description", task.Description)
	assert.Equal(t, "pending", task.Status)
	assert.Equal(t, "medium", task.Priority)
	assert.NotZero(t, task.ID)
	require.NotNil(t, task.CreatedAt)
	require.NotNil(t, task.UpdatedAt)

	// созданная задача читается обратно с тем же содержимым
	got, err := taskService.GetTaskByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.Title, got.Title)
	assert.Equal(t, 0, got.CommentsCount)
}

func TestCreateTaskValidation(t *testing.T) {
	taskService, _ := newServices()
	ctx := context.Background()

	tests := []struct {
		name    string
		title   string
		message string
	}{
		{name: "missing title", title: "", message: "Task title is required"},
		{name: "blank title", title: "   ", message: "Task title cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := taskService.CreateTask(ctx, tt.title, "", "", "")
			require.Error(t, err)

			var businessErr *service.BusinessError
			require.ErrorAs(t, err, &businessErr)
			assert.Equal(t, service.CodeValidationError, businessErr.Code)
			assert.Equal(t, tt.message, businessErr.Message)
		})
	}

	// задача не сохранилась
	tasks, pagination, err := taskService.ListTasks(ctx, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, tasks)
	assert.Equal(t, 0, pagination.Total)
}

func TestGetTaskNotFound(t *testing.T) {
	taskService, _ := newServices()

	_, err := taskService.GetTaskByID(context.Background(), 999)
	require.Error(t, err)

	var businessErr *service.BusinessError
	require.ErrorAs(t, err, &businessErr)
	assert.Equal(t, service.CodeNotFound, businessErr.Code)
}

func TestUpdateTaskPartial(t *testing.T) {
	taskService, _ := newServices()
	ctx := context.Background()

	task, err := taskService.CreateTask(ctx, "Initial", "desc", "pending", "low")
	require.NoError(t, err)
	createdUpdatedAt := *task.UpdatedAt

	time.Sleep(10 * time.Millisecond)

	updated, err := taskService.UpdateTask(ctx, task.ID, service.TaskUpdate{
		Status: strPtr("completed"),
	})
	require.NoError(t, err)

	// меняется только переданное поле
	assert.Equal(t, "Initial", updated.Title)
	assert.Equal(t, "desc", updated.Description)
	assert.Equal(t, "low", updated.Priority)
	assert.Equal(t, "completed", updated.Status)
	assert.True(t, updated.UpdatedAt.After(createdUpdatedAt))
}

func TestUpdateTaskBlankTitle(t *testing.T) {
	taskService, _ := newServices()
	ctx := context.Background()

	task, err := taskService.CreateTask(ctx, "Initial", "", "", "")
	require.NoError(t, err)

	_, err = taskService.UpdateTask(ctx, task.ID, service.TaskUpdate{Title: strPtr("  ")})
	require.Error(t, err)

	var businessErr *service.BusinessError
	require.ErrorAs(t, err, &businessErr)
	assert.Equal(t, service.CodeValidationError, businessErr.Code)

	got, err := taskService.GetTaskByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Initial", got.Title)
}

func TestUpdateTaskNotFound(t *testing.T) {
	taskService, _ := newServices()

	_, err := taskService.UpdateTask(context.Background(), 42, service.TaskUpdate{Status: strPtr("done")})

	var businessErr *service.BusinessError
	require.ErrorAs(t, err, &businessErr)
	assert.Equal(t, service.CodeNotFound, businessErr.Code)
}

func TestUpdateTaskMissingBeforeValidation(t *testing.T) {
	taskService, _ := newServices()

	// несуществующий id — 404, даже если тело невалидно
	_, err := taskService.UpdateTask(context.Background(), 999, service.TaskUpdate{Title: strPtr("   ")})

	var businessErr *service.BusinessError
	require.ErrorAs(t, err, &businessErr)
	assert.Equal(t, service.CodeNotFound, businessErr.Code)
}

func TestUpdateTaskNoFields(t *testing.T) {
	taskService, _ := newServices()
	ctx := context.Background()

	task, err := taskService.CreateTask(ctx, "Initial", "", "", "")
	require.NoError(t, err)

	_, err = taskService.UpdateTask(ctx, task.ID, service.TaskUpdate{})

	var businessErr *service.BusinessError
	require.ErrorAs(t, err, &businessErr)
	assert.Equal(t, service.CodeValidationError, businessErr.Code)
	assert.Equal(t, "No data provided", businessErr.Message)
}

func TestListTasksPagination(t *testing.T) {
	taskService, _ := newServices()
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		_, err := taskService.CreateTask(ctx, title, "", "", "")
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}

	tasks, pagination, err := taskService.ListTasks(ctx, 2, 2)
	require.NoError(t, err)

	assert.Len(t, tasks, 1)
	assert.Equal(t, 3, pagination.Total)
	assert.Equal(t, 2, pagination.Pages)
	assert.Equal(t, 2, pagination.CurrentPage)
	assert.False(t, pagination.HasNext)
	assert.True(t, pagination.HasPrev)

	// сортировка — новые первыми
	firstPage, _, err := taskService.ListTasks(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, firstPage, 3)
	assert.Equal(t, "third", firstPage[0].Title)
	assert.Equal(t, "first", firstPage[2].Title)
}

func TestListTasksOutOfRangePage(t *testing.T) {
	taskService, _ := newServices()
	ctx := context.Background()

	_, err := taskService.CreateTask(ctx, "only", "", "", "")
	require.NoError(t, err)

	tasks, pagination, err := taskService.ListTasks(ctx, 50, 10)
	require.NoError(t, err)
	assert.Empty(t, tasks)
	assert.Equal(t, 1, pagination.Total)
	assert.False(t, pagination.HasNext)
	assert.True(t, pagination.HasPrev)
}

func TestDeleteTaskCascade(t *testing.T) {
	taskService, commentService := newServices()
	ctx := context.Background()

	task, err := taskService.CreateTask(ctx, "with comments", "", "", "")
	require.NoError(t, err)

	first, err := commentService.CreateComment(ctx, task.ID, "first")
	require.NoError(t, err)
	second, err := commentService.CreateComment(ctx, task.ID, "second")
	require.NoError(t, err)

	require.NoError(t, taskService.DeleteTask(ctx, task.ID))

	var businessErr *service.BusinessError

	_, err = taskService.GetTaskByID(ctx, task.ID)
	require.ErrorAs(t, err, &businessErr)
	assert.Equal(t, service.CodeNotFound, businessErr.Code)

	for _, id := range []int64{first.ID, second.ID} {
		_, err = commentService.GetCommentByID(ctx, id)
		require.ErrorAs(t, err, &businessErr)
		assert.Equal(t, service.CodeNotFound, businessErr.Code)
	}
}

func TestDeleteTaskNotFound(t *testing.T) {
	taskService, _ := newServices()

	err := taskService.DeleteTask(context.Background(), 1)

	var businessErr *service.BusinessError
	require.ErrorAs(t, err, &businessErr)
	assert.Equal(t, service.CodeNotFound, businessErr.Code)
}

func TestCreateComment(t *testing.T) {
	taskService, commentService := newServices()
	ctx := context.Background()

	task, err := taskService.CreateTask(ctx, "parent", "", "", "")
	require.NoError(t, err)

	comment, err := commentService.CreateComment(ctx, task.ID, "  hi there  ")
	require.NoError(t, err)
	assert.Equal(t, "hi there", comment.Content)
	assert.Equal(t, task.ID, comment.TaskID)

	got, err := taskService.GetTaskByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.CommentsCount)
}

func TestCreateCommentUnderMissingTask(t *testing.T) {
	_, commentService := newServices()

	_, err := commentService.CreateComment(context.Background(), 123, "hi")

	var businessErr *service.BusinessError
	require.ErrorAs(t, err, &businessErr)
	assert.Equal(t, service.CodeNotFound, businessErr.Code)
	assert.Equal(t, "Task not found", businessErr.Message)
}

func TestCreateCommentValidation(t *testing.T) {
	taskService, commentService := newServices()
	ctx := context.Background()

	task, err := taskService.CreateTask(ctx, "parent", "", "", "")
	require.NoError(t, err)

	tests := []struct {
		name    string
		content string
		message string
	}{
		{name: "missing content", content: "", message: "Comment content is required"},
		{name: "blank content", content: " \t ", message: "Comment content cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commentService.CreateComment(ctx, task.ID, tt.content)

			var businessErr *service.BusinessError
			require.ErrorAs(t, err, &businessErr)
			assert.Equal(t, service.CodeValidationError, businessErr.Code)
			assert.Equal(t, tt.message, businessErr.Message)
		})
	}
}

func TestListTaskComments(t *testing.T) {
	taskService, commentService := newServices()
	ctx := context.Background()

	task, err := taskService.CreateTask(ctx, "parent", "", "", "")
	require.NoError(t, err)
	other, err := taskService.CreateTask(ctx, "other", "", "", "")
	require.NoError(t, err)

	for _, content := range []string{"a", "b", "c"} {
		_, err := commentService.CreateComment(ctx, task.ID, content)
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}
	_, err = commentService.CreateComment(ctx, other.ID, "foreign")
	require.NoError(t, err)

	comments, pagination, err := commentService.ListTaskComments(ctx, task.ID, 1, 2)
	require.NoError(t, err)

	assert.Len(t, comments, 2)
	assert.Equal(t, 3, pagination.Total)
	assert.Equal(t, 2, pagination.Pages)
	assert.True(t, pagination.HasNext)
	assert.False(t, pagination.HasPrev)
	assert.Equal(t, "c", comments[0].Content)

	_, _, err = commentService.ListTaskComments(ctx, 999, 1, 10)
	var businessErr *service.BusinessError
	require.ErrorAs(t, err, &businessErr)
	assert.Equal(t, service.CodeNotFound, businessErr.Code)
}

func TestUpdateComment(t *testing.T) {
	taskService, commentService := newServices()
	ctx := context.Background()

	task, err := taskService.CreateTask(ctx, "parent", "", "", "")
	require.NoError(t, err)
	comment, err := commentService.CreateComment(ctx, task.ID, "before")
	require.NoError(t, err)

	updated, err := commentService.UpdateComment(ctx, comment.ID, service.CommentUpdate{
		Content: strPtr("  after  "),
	})
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Content)
	assert.Equal(t, task.ID, updated.TaskID)

	_, err = commentService.UpdateComment(ctx, comment.ID, service.CommentUpdate{Content: strPtr("")})
	var businessErr *service.BusinessError
	require.ErrorAs(t, err, &businessErr)
	assert.Equal(t, service.CodeValidationError, businessErr.Code)

	_, err = commentService.UpdateComment(ctx, 999, service.CommentUpdate{Content: strPtr("x")})
	require.ErrorAs(t, err, &businessErr)
	assert.Equal(t, service.CodeNotFound, businessErr.Code)

	// несуществующий id — 404, даже если тело невалидно
	_, err = commentService.UpdateComment(ctx, 999, service.CommentUpdate{Content: strPtr("   ")})
	require.ErrorAs(t, err, &businessErr)
	assert.Equal(t, service.CodeNotFound, businessErr.Code)
}

func TestDeleteComment(t *testing.T) {
	taskService, commentService := newServices()
	ctx := context.Background()

	task, err := taskService.CreateTask(ctx, "parent", "", "", "")
	require.NoError(t, err)
	comment, err := commentService.CreateComment(ctx, task.ID, "bye")
	require.NoError(t, err)

	require.NoError(t, commentService.DeleteComment(ctx, comment.ID))

	var businessErr *service.BusinessError
	_, err = commentService.GetCommentByID(ctx, comment.ID)
	require.ErrorAs(t, err, &businessErr)
	assert.Equal(t, service.CodeNotFound, businessErr.Code)

	// задача остаётся на месте
	_, err = taskService.GetTaskByID(ctx, task.ID)
	require.NoError(t, err)
}
