package handlers

import (
	"net/http"

	commissionRepo "wanderluxe/database/repository/commission"
	"wanderluxe/middleware"
	"wanderluxe/models"
	"wanderluxe/utils"

	"github.com/gin-gonic/gin"
)

// CommissionHandler serves an agent's commission ledger.
type CommissionHandler struct {
	Repo commissionRepo.CommissionRepository
}

func NewCommissionHandler(repo commissionRepo.CommissionRepository) *CommissionHandler {
	return &CommissionHandler{Repo: repo}
}

// ListAgentCommissions returns the commissions for the agent in the path.
// Agents can only read their own ledger; admins can read any.
func (h *CommissionHandler) ListAgentCommissions(c *gin.Context) {
	current := middleware.CurrentUser(c)
	if current == nil {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required", "")
		return
	}

	agentID := c.Param("id")
	if current.ID != agentID && current.Role != models.RoleAdmin {
		utils.JSONError(c, http.StatusForbidden, "cannot read another agent's commissions", "")
		return
	}

	commissions, err := h.Repo.ListByAgent(c.Request.Context(), agentID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list commissions", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"commissions": commissions})
}
