package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aeastr/LogOutLoud/internal/domain/entity"
	domainerr "github.com/Aeastr/LogOutLoud/internal/domain/error"
	"github.com/Aeastr/LogOutLoud/internal/domain/port/usecase"
	"github.com/Aeastr/LogOutLoud/internal/infrastructure/adapter/api/dto"
)

// LogHandler lets remote callers emit through a named logger
type LogHandler struct {
	emitters usecase.EmitterProvider
	logger   usecase.Emitter
}

// NewLogHandler creates a new log handler instance
func NewLogHandler(emitters usecase.EmitterProvider, logger usecase.Emitter) *LogHandler {
	return &LogHandler{
		emitters: emitters,
		logger:   logger,
	}
}

// Emit handles POST /logs/:category
func (h *LogHandler) Emit(c *gin.Context) {
	category := c.Param("category")

	var req dto.EmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.reject(c, category, domainerr.ErrInvalidRequest, "Invalid request format: "+err.Error())
		return
	}

	severity, err := entity.ParseSeverity(req.Severity)
	if err != nil {
		h.reject(c, category, err, err.Error())
		return
	}

	var metadata *entity.Value
	if len(req.Metadata) > 0 {
		parsed, err := entity.ParseValue(req.Metadata)
		if err != nil {
			h.reject(c, category, err, err.Error())
			return
		}
		metadata = &parsed
	}

	tags := make(entity.Tags, 0, len(req.Tags))
	for _, t := range req.Tags {
		tags = append(tags, entity.Tag(t))
	}

	emitter := h.emitters.Emitter(category)
	accepted := emitter.Enabled(severity)
	emitter.Log(severity, req.Message, tags, metadata)

	c.JSON(http.StatusAccepted, dto.EmitResponse{
		Category: category,
		Severity: severity.String(),
		Accepted: accepted,
	})
}

func (h *LogHandler) reject(c *gin.Context, category string, err error, message string) {
	h.logger.Log(entity.SeverityNotice, "Rejected remote log call", entity.Tags{entity.TagHTTP},
		ptr(entity.Object(entity.F("category", category), entity.F("error", err))))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}
