package handlers

import (
	"encoding/json"
	"net/http"
	"taskboard/internal/handlers/dto"
	"taskboard/internal/logger"
	"taskboard/internal/service"
	"time"

	"go.uber.org/zap"
)

type CommentHandler struct {
	CommentService CommentService
}

func NewCommentHandler(commentService CommentService) CommentHandler {
	return CommentHandler{
		CommentService: commentService,
	}
}

func (h *CommentHandler) GetTaskComments(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	taskID, err := parseID(r)
	if err != nil {
		logger.Warn("HTTP: Не удалось получить id",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "Invalid task id")
		return
	}

	page := queryIntDefault(r, "page", service.DefaultPage)
	perPage := queryIntDefault(r, "per_page", service.DefaultPerPage)

	comments, pagination, err := h.CommentService.ListTaskComments(r.Context(), taskID, page, perPage)
	if err != nil {
		respondServiceError(w, err, "list_comments", "Failed to retrieve comments")
		return
	}

	logger.Info("HTTP_OUT: Комментарии получены",
		zap.Int64("task_id", taskID),
		zap.Int("count", len(comments)),
		zap.Int("total", pagination.Total),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithJSON(w, http.StatusOK,
		toPayload("comments", dto.FromCommentList(comments)),
		toPayload("total", pagination.Total),
		toPayload("pages", pagination.Pages),
		toPayload("current_page", pagination.CurrentPage),
		toPayload("per_page", pagination.PerPage),
		toPayload("has_next", pagination.HasNext),
		toPayload("has_prev", pagination.HasPrev),
	)
}

func (h *CommentHandler) PostComment(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	taskID, err := parseID(r)
	if err != nil {
		logger.Warn("HTTP: Не удалось получить id",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "Invalid task id")
		return
	}

	var request dto.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.Warn("HTTP: Ошибка чтения JSON",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "Bad request")
		return
	}
	defer r.Body.Close()

	comment, err := h.CommentService.CreateComment(r.Context(), taskID, request.Content)
	if err != nil {
		respondServiceError(w, err, "create_comment", "Failed to create comment")
		return
	}

	logger.Info("HTTP_OUT: Комментарий создан",
		zap.Int64("comment_id", comment.ID),
		zap.Int64("task_id", taskID),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusCreated))

	responseWithJSON(w, http.StatusCreated,
		toPayload("message", "Comment created successfully"),
		toPayload("comment", dto.FromComment(comment)),
	)
}

func (h *CommentHandler) GetCommentByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, err := parseID(r)
	if err != nil {
		logger.Warn("HTTP: Не удалось получить id",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "Invalid comment id")
		return
	}

	comment, err := h.CommentService.GetCommentByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, "get_comment", "Failed to retrieve comment")
		return
	}

	logger.Info("HTTP_OUT: Комментарий получен",
		zap.Int64("comment_id", comment.ID),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithJSON(w, http.StatusOK, toPayload("comment", dto.FromComment(comment)))
}

func (h *CommentHandler) UpdateCommentByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, err := parseID(r)
	if err != nil {
		logger.Warn("HTTP: Не удалось получить id",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "Invalid comment id")
		return
	}

	var request dto.UpdateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.Warn("HTTP: Ошибка чтения JSON",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "Bad request")
		return
	}
	defer r.Body.Close()

	comment, err := h.CommentService.UpdateComment(r.Context(), id, service.CommentUpdate{
		Content: request.Content,
	})
	if err != nil {
		respondServiceError(w, err, "update_comment", "Failed to update comment")
		return
	}

	logger.Info("HTTP_OUT: Комментарий обновлён",
		zap.Int64("comment_id", comment.ID),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithJSON(w, http.StatusOK,
		toPayload("message", "Comment updated successfully"),
		toPayload("comment", dto.FromComment(comment)),
	)
}

func (h *CommentHandler) DeleteCommentByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, err := parseID(r)
	if err != nil {
		logger.Warn("HTTP: Не удалось получить id",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "Invalid comment id")
		return
	}

	if err := h.CommentService.DeleteComment(r.Context(), id); err != nil {
		respondServiceError(w, err, "delete_comment", "Failed to delete comment")
		return
	}

	logger.Info("HTTP_OUT: Комментарий удалён",
		zap.Int64("comment_id", id),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithJSON(w, http.StatusOK, toPayload("message", "Comment deleted successfully"))
}
