package handlers

import (
	"net/http"
	"strconv"

	"wanderluxe/middleware"
	"wanderluxe/services/notification"
	"wanderluxe/utils"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the in-app notification feed.
type NotificationHandler struct {
	Svc notification.NotificationService
}

func NewNotificationHandler(svc notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{Svc: svc}
}

func (h *NotificationHandler) ListMyNotifications(c *gin.Context) {
	current := middleware.CurrentUser(c)
	if current == nil {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required", "")
		return
	}

	limit := int64(50)
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	notifications, err := h.Svc.ListForUser(c.Request.Context(), current.ID, limit)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list notifications", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

func (h *NotificationHandler) MarkNotificationRead(c *gin.Context) {
	if err := h.Svc.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "notification not found", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
