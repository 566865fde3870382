package middleware

import (
	"errors"
	"net/http"

	"github.com/adamcc31/devconnect-api/internal/delivery/http/response"
	"github.com/adamcc31/devconnect-api/internal/domain"
	"github.com/adamcc31/devconnect-api/pkg/apperror"
	"github.com/adamcc31/devconnect-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			var fields interface{}
			if len(appErr.Fields) > 0 {
				fields = appErr.Fields
			}
			response.Error(c, appErr.Code, appErr.Message, fields)
			return
		}

		// An interrupted account deletion is partial, not atomic-or-nothing:
		// surface how far it got so operators know a retry resumes it.
		var partial *domain.PartialFailure
		if errors.As(err, &partial) {
			logger.Log.Error("partial account deletion", "step", partial.Step, "completed", partial.Completed, "error", partial.Err)
			response.Error(c, http.StatusInternalServerError,
				"Account deletion was interrupted. Retry the request to resume.",
				gin.H{"completed_steps": partial.Completed, "failed_step": partial.Step})
			return
		}

		// Never expose internal error details to clients. Log server-side
		// and send an opaque message.
		logger.Log.Error("unhandled request error", "error", err)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
