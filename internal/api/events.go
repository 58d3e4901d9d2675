package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sipwell/hydrokit-backend/internal/service"
	"github.com/sipwell/hydrokit-backend/internal/types"
)

// EventHandler records and lists intake events.
type EventHandler struct {
	eventService     service.IEventService
	hydrationService service.IHydrationService
}

func NewEventHandler(eventService service.IEventService, hydrationService service.IHydrationService) *EventHandler {
	return &EventHandler{
		eventService:     eventService,
		hydrationService: hydrationService,
	}
}

func (h *EventHandler) RegisterRoutes(router *gin.RouterGroup) {
	events := router.Group("/events")
	{
		events.POST("", h.LogEvent)
		events.GET("/today", h.ListToday)
	}
}

func (h *EventHandler) LogEvent(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	var req types.LogEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	event, err := h.eventService.LogEvent(c.Request.Context(), id, &req, time.Now())
	if err != nil {
		if errors.Is(err, service.ErrWeightPairIncomplete) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log event"})
		return
	}

	// the cached gap for that day is stale now
	h.hydrationService.InvalidateDay(c.Request.Context(), id, event.At)

	c.JSON(http.StatusCreated, event)
}

func (h *EventHandler) ListToday(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	events, err := h.eventService.ListDay(c.Request.Context(), id, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list events"})
		return
	}

	c.JSON(http.StatusOK, events)
}
