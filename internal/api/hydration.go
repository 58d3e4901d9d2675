package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sipwell/hydrokit-backend/internal/service"
	"github.com/sipwell/hydrokit-backend/internal/types"
)

// HydrationHandler exposes the gap breakdown and kit recommendations.
type HydrationHandler struct {
	hydrationService service.IHydrationService
	coachService     service.ICoachService
}

func NewHydrationHandler(hydrationService service.IHydrationService, coachService service.ICoachService) *HydrationHandler {
	return &HydrationHandler{
		hydrationService: hydrationService,
		coachService:     coachService,
	}
}

func (h *HydrationHandler) RegisterRoutes(router *gin.RouterGroup) {
	hyd := router.Group("/hydration")
	{
		hyd.GET("/gap", h.GetGap)
		hyd.GET("/recommendation", h.GetRecommendation)
		hyd.GET("/recommendation/best", h.GetBestKit)
	}
	router.POST("/coach/message", h.CoachMessage)
}

func (h *HydrationHandler) GetGap(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	gap, err := h.hydrationService.Gap(c.Request.Context(), id, time.Now())
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to calculate hydration gap"})
		return
	}

	c.JSON(http.StatusOK, gap)
}

func (h *HydrationHandler) GetRecommendation(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	var query types.RecommendationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	rec, err := h.hydrationService.Recommend(c.Request.Context(), id, time.Now(), query.Activity, query.Mood)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build recommendation"})
		return
	}

	c.JSON(http.StatusOK, rec)
}

func (h *HydrationHandler) GetBestKit(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	best, scores, err := h.hydrationService.BestKit(c.Request.Context(), id, time.Now())
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to score kits"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"best": best, "scores": scores})
}

func (h *HydrationHandler) CoachMessage(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	var req types.CoachMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	gap, err := h.hydrationService.Gap(c.Request.Context(), id, time.Now())
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to calculate hydration gap"})
		return
	}

	answer, err := h.coachService.CoachMessage(c.Request.Context(), req.Question, gap)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "coach unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": answer})
}
