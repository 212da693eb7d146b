package utils

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AppError carries an HTTP status alongside the operator-facing message.
// Services return these; handlers pass them through HandleError unchanged.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	return e.Message
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// NewNotFoundError formats "<resource> not found" for stays, rooms, orders,
// cash sessions and banquet bookings alike.
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

func NewInternalError(message string) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: message,
	}
}

func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// NewConflictError reports a state clash, e.g. closing an already closed
// cash session or re-creating an existing room.
func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// HandleError writes the error as a JSON response. Errors without an
// AppError status are logged and masked behind a generic 500.
func HandleError(c *gin.Context, err error) {
	if appErr, ok := err.(*AppError); ok {
		body := gin.H{"error": appErr.Message}
		if appErr.Details != "" {
			body["details"] = appErr.Details
		}
		c.JSON(appErr.Code, body)
		return
	}

	LogError(err, "Unhandled error reached the HTTP boundary")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
}

// HandleSuccess writes the payload with a 200.
func HandleSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}
