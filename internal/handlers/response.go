package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/apperrors"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/domain"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/dto"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/middleware"
)

// statusForError maps service errors onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrDuplicate),
		errors.Is(err, apperrors.ErrInvalidTransition),
		errors.Is(err, apperrors.ErrInsufficientHoldings):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthorized),
		errors.Is(err, apperrors.ErrRefreshTokenExpired):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error envelope. Server errors are logged and never
// leak their message to the client.
func respondError(c *gin.Context, err error, logMsg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		logger.Error(logMsg, slog.String("error", err.Error()))
		c.JSON(status, dto.Fail("Internal server error"))
		return
	}

	logger.Warn(logMsg, slog.String("error", err.Error()), slog.Int("status", status))
	message := err.Error()
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}
	c.JSON(status, dto.Fail(message))
}

func respondBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.Fail("Invalid request format: "+err.Error()))
}

func respondSuccess(c *gin.Context, status int, message string, data any) {
	c.JSON(status, dto.OK(message, data))
}

// bindURIOrNotFound binds path IDs into uri. An ID that is not a UUID cannot
// name a stored row, so it gets the same 404 as a missing one.
func bindURIOrNotFound(c *gin.Context, uri any, notFoundMsg string) bool {
	if err := c.ShouldBindUri(uri); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Malformed path ID", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, dto.Fail(notFoundMsg))
		return false
	}
	return true
}

// actorOrAbort returns the authenticated actor or writes a 401.
func actorOrAbort(c *gin.Context) (domain.Actor, bool) {
	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, dto.Fail("Unauthorized"))
		return domain.Actor{}, false
	}
	return actor, true
}
