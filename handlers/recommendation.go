package handlers

import (
	"net/http"
	"strconv"

	"wanderluxe/middleware"
	"wanderluxe/services/recommendation"
	"wanderluxe/utils"

	"github.com/gin-gonic/gin"
)

// RecommendationHandler serves personalized destination rankings.
type RecommendationHandler struct {
	Svc recommendation.RecommendationService
}

func NewRecommendationHandler(svc recommendation.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{Svc: svc}
}

func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
	current := middleware.CurrentUser(c)
	if current == nil {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required", "")
		return
	}

	limit := 10
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	results, err := h.Svc.Recommend(c.Request.Context(), current.ID, limit)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to build recommendations", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": results})
}
