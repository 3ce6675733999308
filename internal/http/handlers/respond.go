package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error envelope. The wizard front-end keys on the top-level "error" code,
// e.g. "duplicate_name" gets its own user-facing message.
type APIError struct {
	Code      string      `json:"error"`
	Message   string      `json:"message,omitempty"`
	RequestID string      `json:"requestId,omitempty"`
	Details   interface{} `json:"details,omitempty"`
}

func requestIDFrom(ctx *gin.Context) string {
	v, ok := ctx.Get("request_id")

	if ok {
		s, ok := v.(string)
		if ok && s != "" {
			return s
		}
	}

	// fallback header
	return ctx.GetHeader("X-Request-Id")
}

func RespondError(ctx *gin.Context, status int, code, message string, details interface{}) {
	ctx.JSON(status, APIError{
		Code:      code,
		Message:   message,
		RequestID: requestIDFrom(ctx),
		Details:   details,
	})
}

func RespondBadRequest(ctx *gin.Context, message string, details interface{}) {
	RespondError(ctx, http.StatusBadRequest, "invalid_request", message, details)
}

func RespondNotFound(ctx *gin.Context, message string) {
	RespondError(ctx, http.StatusNotFound, "not_found", message, nil)
}

func RespondInternal(ctx *gin.Context, message string) {
	RespondError(ctx, http.StatusInternalServerError, "internal_error", message, nil)
}

func RespondConflict(ctx *gin.Context, code, message string) {
	RespondError(ctx, http.StatusConflict, code, message, nil)
}

func RespondBadGateway(ctx *gin.Context, code, message string) {
	RespondError(ctx, http.StatusBadGateway, code, message, nil)
}
