package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Error represents an application error that maps to an HTTP response.
type Error struct {
	Status  int    `json:"status"`
	Label   string `json:"error"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidation reports a payload that fails field-level or business-rule checks.
func NewValidation(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Label: "Bad Request", Message: message}
}

// NewNotFound reports a failed lookup by a field value.
func NewNotFound(resource, field, value string) *Error {
	return &Error{
		Status:  http.StatusNotFound,
		Label:   "Not Found",
		Message: fmt.Sprintf("%s not found with %s: '%s'", resource, field, value),
	}
}

// NewAlreadyExists reports a create with a duplicate identifier.
func NewAlreadyExists(resource, field, value string) *Error {
	return &Error{
		Status:  http.StatusConflict,
		Label:   "Conflict",
		Message: fmt.Sprintf("%s already exists with %s: '%s'", resource, field, value),
	}
}

// ErrInvalidCredentials is returned for every authentication failure so the
// response never distinguishes an unknown user from a wrong password.
var ErrInvalidCredentials = &Error{
	Status:  http.StatusUnauthorized,
	Label:   "Unauthorized",
	Message: "Invalid username or password",
}

// ErrInternal is the fallback for errors that carry no application type,
// including persistence-layer constraint violations.
var ErrInternal = &Error{
	Status:  http.StatusInternalServerError,
	Label:   "Internal Server Error",
	Message: "An unexpected error occurred",
}

// Response is the JSON envelope returned for every error.
type Response struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Label     string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
}

// Respond writes err to the client as a Response envelope, aborting the
// request. Untyped errors become ErrInternal.
func Respond(c *gin.Context, err error) {
	var appErr *Error
	if !errors.As(err, &appErr) {
		appErr = ErrInternal
	}

	c.AbortWithStatusJSON(appErr.Status, Response{
		Timestamp: time.Now(),
		Status:    appErr.Status,
		Label:     appErr.Label,
		Message:   appErr.Message,
		Path:      c.Request.URL.Path,
	})
}
