package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aeastr/LogOutLoud/internal/domain/entity"
	domainerr "github.com/Aeastr/LogOutLoud/internal/domain/error"
	"github.com/Aeastr/LogOutLoud/internal/domain/port/usecase"
	"github.com/Aeastr/LogOutLoud/internal/infrastructure/adapter/api/dto"
)

// StreamBuffer is the per-client event buffer of GET /console/stream
const StreamBuffer = 256

// RegistryInfo exposes what the status endpoint reports about the registry
type RegistryInfo interface {
	Subsystem() string
	Keys() []string
}

// ConsoleHandler serves the console store to viewers
type ConsoleHandler struct {
	viewer   usecase.ConsoleViewer
	registry RegistryInfo
	logger   usecase.Emitter
}

// NewConsoleHandler creates a new console handler instance
func NewConsoleHandler(
	viewer usecase.ConsoleViewer,
	registry RegistryInfo,
	logger usecase.Emitter,
) *ConsoleHandler {
	return &ConsoleHandler{
		viewer:   viewer,
		registry: registry,
		logger:   logger,
	}
}

// Entries handles GET /console/entries?levels=error,fault&search=timeout
func (h *ConsoleHandler) Entries(c *gin.Context) {
	levels, ok := h.parseLevels(c)
	if !ok {
		return
	}

	entries := h.viewer.Filter(levels, c.Query("search"))
	c.JSON(http.StatusOK, dto.EntriesResponse{
		Entries: dto.FromEntries(entries),
		Count:   len(entries),
		Paused:  h.viewer.Paused(),
	})
}

// Export handles GET /console/export. Without filter parameters the whole
// visible view is exported.
func (h *ConsoleHandler) Export(c *gin.Context) {
	var selection []entity.LogEntry
	_, hasLevels := c.GetQuery("levels")
	_, hasSearch := c.GetQuery("search")
	if hasLevels || hasSearch {
		levels, ok := h.parseLevels(c)
		if !ok {
			return
		}
		selection = h.viewer.Filter(levels, c.Query("search"))
	}

	text := h.viewer.ExportText(selection)
	c.Header("Content-Disposition", `attachment; filename="console.log"`)
	c.String(http.StatusOK, text)
}

// Status handles GET /console/status
func (h *ConsoleHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.status())
}

// Pause handles POST /console/pause
func (h *ConsoleHandler) Pause(c *gin.Context) {
	h.viewer.Pause()
	c.JSON(http.StatusOK, h.status())
}

// Resume handles POST /console/resume
func (h *ConsoleHandler) Resume(c *gin.Context) {
	h.viewer.Resume()
	c.JSON(http.StatusOK, h.status())
}

// Clear handles DELETE /console/entries
func (h *ConsoleHandler) Clear(c *gin.Context) {
	h.viewer.Clear()
	c.Status(http.StatusNoContent)
}

// Stream handles GET /console/stream as server-sent events. The stream
// ends when the client goes away.
func (h *ConsoleHandler) Stream(c *gin.Context) {
	events, unsubscribe := h.viewer.Subscribe(StreamBuffer)
	defer unsubscribe()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			payload := dto.EventResponse{Kind: event.Kind.String()}
			if event.Entry != nil {
				entry := dto.FromEntry(*event.Entry)
				payload.Entry = &entry
			}
			c.SSEvent(payload.Kind, payload)
			c.Writer.Flush()
		}
	}
}

func (h *ConsoleHandler) status() dto.StatusResponse {
	return dto.StatusResponse{
		Paused:    h.viewer.Paused(),
		Len:       h.viewer.Len(),
		Capacity:  h.viewer.Capacity(),
		Subsystem: h.registry.Subsystem(),
		Loggers:   h.registry.Keys(),
	}
}

// parseLevels reads the levels query parameter; an absent or empty value
// means every severity
func (h *ConsoleHandler) parseLevels(c *gin.Context) ([]entity.Severity, bool) {
	levels, err := entity.ParseSeverities(c.Query("levels"))
	if err != nil {
		h.logger.Log(entity.SeverityNotice, "Rejected console filter", entity.Tags{entity.TagHTTP, entity.TagConsole},
			ptr(entity.Object(entity.F("levels", c.Query("levels")), entity.F("error", err))))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
		return nil, false
	}
	return levels, true
}

func ptr(v entity.Value) *entity.Value {
	return &v
}
