// Package apperror holds the user-facing error type shared by all
// delivery layers. Every error carries an HTTP status and one or more
// human-readable messages which are rendered as {"errors": [...]}.
package apperror

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type Error struct {
	Status   int      `json:"-"`
	Messages []string `json:"errors"`
}

func (e *Error) Error() string {
	return strings.Join(e.Messages, "; ")
}

func New(status int, messages ...string) *Error {
	if len(messages) == 0 {
		messages = []string{"An unknown error happened."}
	}
	return &Error{Status: status, Messages: messages}
}

func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

func Forbidden(message string) *Error {
	return New(http.StatusForbidden, message)
}

func Internal(messages ...string) *Error {
	return New(http.StatusInternalServerError, messages...)
}

// Abort writes err as a JSON error response and aborts the request.
// Errors that are not *Error are masked as a generic 500.
func Abort(c *gin.Context, err error) {
	var appErr *Error
	if !errors.As(err, &appErr) {
		appErr = Internal("An unknown error happened.")
	}
	c.AbortWithStatusJSON(appErr.Status, gin.H{"errors": appErr.Messages})
}
