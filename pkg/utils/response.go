package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "asset-tracker/pkg/errors"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func SuccessResponse(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, Response{
		Success: false,
		Message: message,
	})
}

// HandleError maps an application error onto an HTTP response. Unknown errors
// are reported as a generic internal failure so storage detail never leaks.
func HandleError(c *gin.Context, err error) {
	var appErr *appErrors.AppError
	if errors.As(err, &appErr) {
		ErrorResponse(c, statusForCode(appErr.Code), appErr.Message)
		return
	}

	ErrorResponse(c, http.StatusInternalServerError, "internal server error")
}

func statusForCode(code string) int {
	switch code {
	case appErrors.CodeNotFound:
		return http.StatusNotFound
	case appErrors.CodeConflict:
		return http.StatusConflict
	case appErrors.CodeValidation:
		return http.StatusBadRequest
	case appErrors.CodeForbidden:
		return http.StatusForbidden
	case appErrors.CodeGenerationExhausted:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
