package response

import (
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"

	domainerrors "msc-team.backend/internal/domain/errors"
	"msc-team.backend/pkg/utils"
)

const MsgValidationFailed = "Validation failed"

// Body is the JSON envelope shared by every API response.
type Body struct {
	Success    bool                      `json:"success"`
	Message    string                    `json:"message,omitempty"`
	Data       interface{}               `json:"data,omitempty"`
	Pagination *utils.PaginationMeta     `json:"pagination,omitempty"`
	Errors     []domainerrors.FieldError `json:"errors,omitempty"`
	Code       string                    `json:"code,omitempty"`
	Error      string                    `json:"error,omitempty"`
}

var exposeErrors atomic.Bool

// ExposeErrors controls whether 500 responses carry the internal error text.
// It is enabled outside production.
func ExposeErrors(enabled bool) {
	exposeErrors.Store(enabled)
}

// Success sends a success response
func Success(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Body{Success: true, Message: message, Data: data})
}

// Paginated sends one page of a collection with its pagination meta
func Paginated(c *gin.Context, data interface{}, meta utils.PaginationMeta) {
	c.JSON(http.StatusOK, Body{Success: true, Data: data, Pagination: &meta})
}

// Error sends an error response. Validation and application errors carry
// their own status and message; anything else is a 500 with fallback as
// the message.
func Error(c *gin.Context, err error, fallback string) {
	var vErr *domainerrors.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, Body{
			Message: MsgValidationFailed,
			Errors:  vErr.Fields,
			Code:    domainerrors.CodeValidation,
		})
		return
	}

	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) && appErr.Status < http.StatusInternalServerError {
		c.JSON(appErr.Status, Body{Message: appErr.Message, Code: appErr.Code})
		return
	}

	body := Body{Message: fallback, Code: domainerrors.CodeInternalError}
	if exposeErrors.Load() {
		body.Error = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}

// ErrorWithError sends an error response with a specific status and message
func ErrorWithError(c *gin.Context, status int, code string, message string) {
	c.JSON(status, Body{Message: message, Code: code})
}

// Abort is ErrorWithError for middleware: it stops the handler chain.
func Abort(c *gin.Context, status int, code string, message string) {
	c.AbortWithStatusJSON(status, Body{Message: message, Code: code})
}
