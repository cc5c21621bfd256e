package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeBadRequest          ErrorType = "BAD_REQUEST"
	ErrorTypeUnauthorized        ErrorType = "UNAUTHORIZED"
	ErrorTypeQuotaExceeded       ErrorType = "QUOTA_EXCEEDED"
	ErrorTypeNotFound            ErrorType = "NOT_FOUND"
	ErrorTypeInternalServerError ErrorType = "INTERNAL_SERVER_ERROR"
)

// CustomError represents a custom error with associated HTTP status code and type
type CustomError struct {
	Type       ErrorType
	Message    string
	StatusCode int
	Internal   error
	// Extra is merged into the error response body. Used for partial
	// successes where work was durably committed before the failure.
	Extra gin.H
}

// Error implements the error interface
func (e *CustomError) Error() string {
	return e.Message
}

func newError(errType ErrorType, message string, statusCode int, internal error) *CustomError {
	return &CustomError{
		Type:       errType,
		Message:    message,
		StatusCode: statusCode,
		Internal:   internal,
	}
}

// New400Error creates a new validation error with a localized message
func New400Error(message string) *CustomError {
	return newError(ErrorTypeBadRequest, message, http.StatusBadRequest, nil)
}

// New401Error creates a new unauthorized error
func New401Error() *CustomError {
	return newError(ErrorTypeUnauthorized, "Unauthorized access", http.StatusUnauthorized, nil)
}

// New403Error creates a new quota error (no sessions remaining, inactive
// subscription)
func New403Error(message string) *CustomError {
	return newError(ErrorTypeQuotaExceeded, message, http.StatusForbidden, nil)
}

// New404Error creates a new not found error. Ownership mismatches use the
// same constructor so existence is never confirmed to non-owners.
func New404Error(message string) *CustomError {
	return newError(ErrorTypeNotFound, message, http.StatusNotFound, nil)
}

// New500Error creates a new upstream/internal error. The internal cause is
// logged server-side only; message is what the client sees.
func New500Error(message string, internal error) *CustomError {
	return newError(ErrorTypeInternalServerError, message, http.StatusInternalServerError, internal)
}

// WithExtra attaches additional response fields to the error.
func (e *CustomError) WithExtra(extra gin.H) *CustomError {
	e.Extra = extra
	return e
}

// HandleError handles the custom error and sends an appropriate JSON response
func HandleError(c *gin.Context, err error) {
	customErr, ok := err.(*CustomError)
	if !ok {
		customErr = New500Error("حدث خطأ غير متوقع", err)
	}

	if customErr.Type == ErrorTypeInternalServerError {
		log.Error().
			Err(customErr.Internal).
			Str("url", c.Request.URL.String()).
			Msg("Internal Server Error")
	}

	body := gin.H{
		"error": gin.H{
			"type":    customErr.Type,
			"message": customErr.Message,
		},
	}
	for k, v := range customErr.Extra {
		body[k] = v
	}

	c.JSON(customErr.StatusCode, body)
}
