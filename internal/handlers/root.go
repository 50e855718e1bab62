package handlers

import (
	"net/http"
	"taskboard/internal/logger"
)

// Index — баннер сервиса с картой эндпоинтов.
func (h *TaskHandler) Index(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP: Index")

	responseWithJSON(w, http.StatusOK,
		toPayload("message", "Taskboard API"),
		toPayload("status", "running"),
		toPayload("endpoints", map[string]string{
			"tasks":         "/api/tasks",
			"task_comments": "/api/tasks/{task_id}/comments",
			"comments":      "/api/comments/{comment_id}",
		}),
	)
}

func (h *TaskHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP: Health check")

	if err := h.TaskService.HealthCheck(r.Context()); err != nil {
		responseWithJSON(w, http.StatusServiceUnavailable,
			toPayload("status", "unavailable"),
			toPayload("error", err.Error()),
		)
		return
	}

	responseWithJSON(w, http.StatusOK, toPayload("status", "ok"))
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	responseWithError(w, http.StatusNotFound, "Resource not found")
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	responseWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
}
