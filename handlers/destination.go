package handlers

import (
	"net/http"

	destinationRepo "wanderluxe/database/repository/destination"
	"wanderluxe/utils"

	"github.com/gin-gonic/gin"
)

// DestinationHandler serves catalog reads.
type DestinationHandler struct {
	Repo destinationRepo.DestinationRepository
}

func NewDestinationHandler(repo destinationRepo.DestinationRepository) *DestinationHandler {
	return &DestinationHandler{Repo: repo}
}

func (h *DestinationHandler) ListDestinations(c *gin.Context) {
	if c.Query("featured") == "true" {
		destinations, err := h.Repo.ListFeatured(c.Request.Context())
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to list destinations", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"destinations": destinations})
		return
	}

	destinations, err := h.Repo.List(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list destinations", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"destinations": destinations})
}

func (h *DestinationHandler) GetDestination(c *gin.Context) {
	dest, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "destination not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, dest)
}
