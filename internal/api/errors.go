// Package api holds HTTP helpers shared by every feature handler: error
// responses, parameter binding and request validators.
package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goslynn/pasteleria-mil-sabores-sub000/internal/shared/apperror"
)

// ErrorResponse is the JSON body of every error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusFor maps the shared error taxonomy to an HTTP status.
func StatusFor(err error) int {
	switch {
	case apperror.IsInternal(err):
		return http.StatusInternalServerError
	case apperror.IsValidation(err):
		return http.StatusBadRequest
	case apperror.IsNotFound(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// WriteError writes err as JSON. Anything outside the taxonomy is logged and
// reported as "internal error".
func WriteError(c *gin.Context, err error) {
	status := StatusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		slog.Error("request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"remote_addr", c.ClientIP(),
			"error", err,
		)
		msg = apperror.Internal(err).Error()
	}
	c.JSON(status, ErrorResponse{Error: msg})
}

// MsgAuthRequired is the body of every 401 outside the form actions.
const MsgAuthRequired = "authentication required"

// Unauthorized aborts the request with a 401.
func Unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: MsgAuthRequired})
}

// BadRequest writes a 400 with msg.
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}
