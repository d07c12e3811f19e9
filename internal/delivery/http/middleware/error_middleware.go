package middleware

import (
	"contact-mailer-backend/internal/delivery/http/response"
	"contact-mailer-backend/pkg/apperror"
	"contact-mailer-backend/pkg/email"
	"contact-mailer-backend/pkg/logger"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error pushed onto the gin context.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			response.Error(c, appErr.Code, appErr.Message, appErr.Detail)
			return
		}

		logger.Log.Error("Unhandled error", "error", err, "path", c.FullPath())
		response.Error(c, http.StatusInternalServerError, email.MsgSendFailed, err.Error())
	}
}
