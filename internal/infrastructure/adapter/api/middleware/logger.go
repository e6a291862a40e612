package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Aeastr/LogOutLoud/internal/domain/entity"
	coreport "github.com/Aeastr/LogOutLoud/internal/domain/port/core"
	"github.com/Aeastr/LogOutLoud/internal/domain/port/usecase"
)

// Logger middleware logs each request once it has been served. Server
// errors are logged at error severity, client errors at warning and the
// rest at info. Latency is measured with clock.
func Logger(logger usecase.Emitter, clock coreport.TimeProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := clock.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		statusCode := c.Writer.Status()
		severity := requestSeverity(statusCode)
		if !logger.Enabled(severity) {
			return
		}

		fields := []entity.Field{
			entity.F("method", method),
			entity.F("path", path),
			entity.F("status", statusCode),
			entity.F("latency_ms", clock.Since(start).Milliseconds()),
			entity.F("ip", c.ClientIP()),
			entity.F("status_text", statusText(statusCode)),
		}
		if id := c.GetHeader("X-Request-ID"); id != "" {
			fields = append(fields, entity.F("request_id", id))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, entity.F("errors", c.Errors.Errors()))
		}
		md := entity.Object(fields...)
		logger.Log(severity, "Request processed", entity.Tags{entity.TagHTTP}, &md)
	}
}

func requestSeverity(code int) entity.Severity {
	switch {
	case code >= 500:
		return entity.SeverityError
	case code >= 400:
		return entity.SeverityWarning
	default:
		return entity.SeverityInfo
	}
}

// statusText returns the text for the HTTP status code
func statusText(code int) string {
	switch {
	case code >= 100 && code < 200:
		return "Informational"
	case code >= 200 && code < 300:
		return "Success"
	case code >= 300 && code < 400:
		return "Redirect"
	case code >= 400 && code < 500:
		return "Client Error"
	default:
		return "Server Error"
	}
}
