package response

import (
	"adventura/internal/shared/apperrors"

	"github.com/gin-gonic/gin"
)

func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errors interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errors,
	})
}

// RespondError maps a service error onto the standard envelope. Unknown errors
// come back as 500 with a generic message so internals never leak.
func RespondError(c *gin.Context, err error) {
	appErr := apperrors.Resolve(err)
	c.JSON(appErr.Status, StandardApiResponse{
		Status:     "error",
		StatusCode: appErr.Status,
		Message:    appErr.Message,
		Code:       string(appErr.Code),
	})
}
