package handler

import (
	"errors"
	"net/http"

	"lightbnb/internal/api"
	"lightbnb/internal/apperrors"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// StatusFor 將 AppError 類型對應到 HTTP 狀態碼
func StatusFor(err error) int {
	switch apperrors.TypeOf(err) {
	case apperrors.ErrorTypeValidation:
		return http.StatusBadRequest
	case apperrors.ErrorTypeUnauthorized:
		return http.StatusUnauthorized
	case apperrors.ErrorTypeNotFound:
		return http.StatusNotFound
	case apperrors.ErrorTypeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// RespondError 記錄錯誤並回傳 ErrorResponse；5xx 不回傳內部細節
func RespondError(c echo.Context, op string, err error) error {
	status := StatusFor(err)
	ev := log.Warn()
	if status >= http.StatusInternalServerError {
		ev = log.Error()
	}
	ev.Err(err).Str("op", op).Int("status", status).Msg("request failed")

	msg := http.StatusText(status)
	var appErr *apperrors.AppError
	if status < http.StatusInternalServerError && errors.As(err, &appErr) {
		msg = appErr.Message
	}
	return c.JSON(status, api.ErrorResponse{Message: msg})
}
