package handlers

import (
	"errors"
	"net/http"
	"taskboard/internal/logger"
	"taskboard/internal/service"

	"go.uber.org/zap"
)

// handleBusinessError отвечает клиенту, если ошибка типизированная.
// Возвращает false, если это не бизнес-ошибка и её нужно отдать как 500.
func handleBusinessError(w http.ResponseWriter, err error) bool {
	var businessErr *service.BusinessError
	if errors.As(err, &businessErr) {
		statusCode := mapBusinessErrorToHTTP(businessErr.Code)

		logger.Warn("HTTP: Бизнес-ошибка",
			zap.String("error_code", businessErr.Code),
			zap.Int("http_status", statusCode))

		responseWithError(w, statusCode, businessErr.Message)
		return true
	}
	return false
}

func mapBusinessErrorToHTTP(code string) int {
	switch code {
	case service.CodeNotFound:
		return http.StatusNotFound
	case service.CodeValidationError:
		return http.StatusBadRequest
	default:
		return http.StatusBadRequest
	}
}

// respondServiceError — общий выход для ошибок сервиса: бизнес-ошибки
// получают свой статус, всё остальное — 500 с внутренним сообщением.
func respondServiceError(w http.ResponseWriter, err error, operation, fallbackMessage string) {
	if handleBusinessError(w, err) {
		return
	}

	logger.Error("HTTP: Ошибка Service", err, zap.String("operation", operation))

	responseWithJSON(w, http.StatusInternalServerError,
		toPayload("error", fallbackMessage),
		toPayload("message", err.Error()),
	)
}
