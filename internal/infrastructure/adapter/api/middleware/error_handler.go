package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aeastr/LogOutLoud/internal/domain/entity"
	domainerr "github.com/Aeastr/LogOutLoud/internal/domain/error"
	"github.com/Aeastr/LogOutLoud/internal/domain/port/usecase"
	"github.com/Aeastr/LogOutLoud/internal/infrastructure/adapter/api/dto"
)

// ErrorHandler middleware recovers from panics and returns appropriate error responses
func ErrorHandler(logger usecase.Emitter) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if recovered := recover(); recovered != nil {
				md := entity.Object(
					entity.F("error", domainerr.PanicError(recovered)),
					entity.F("path", c.Request.URL.Path),
					entity.F("method", c.Request.Method),
					entity.F("client_ip", c.ClientIP()),
					entity.F("request_id", c.GetHeader("X-Request-ID")),
				)
				logger.Log(entity.SeverityFault, "Panic recovered in API request", entity.Tags{entity.TagHTTP}, &md)

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Code:    domainerr.ErrorCode(domainerr.ErrInternal),
					Message: "Internal server error",
				})
			}
		}()

		c.Next()
	}
}
