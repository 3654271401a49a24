package handlers

import (
	"net/http"

	"wanderluxe/middleware"
	"wanderluxe/models"
	"wanderluxe/services/booking"
	"wanderluxe/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking lifecycle over HTTP.
type BookingHandler struct {
	Svc    booking.BookingService
	Logger *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// CreateBooking routes, prices and persists a new booking for the
// authenticated user.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	current := middleware.CurrentUser(c)
	if current == nil {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required", "")
		return
	}

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Svc.Create(c.Request.Context(), current, &req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, ok := h.loadAuthorized(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	current := middleware.CurrentUser(c)
	if current == nil {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required", "")
		return
	}
	bookings, err := h.Svc.ListByUser(c.Request.Context(), current.ID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	b, ok := h.loadAuthorized(c)
	if !ok {
		return
	}

	var upd models.BookingUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Svc.Update(c.Request.Context(), b.ID, &upd)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ConfirmBooking is the confirmation entry point for agents and for the
// payment webhook. An optional payment reference marks the booking paid.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	var input struct {
		PaymentReference string `json:"paymentReference,omitempty"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
	}

	b, changed, err := h.Svc.Confirm(c.Request.Context(), c.Param("id"), input.PaymentReference)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b, "changed": changed})
}

func (h *BookingHandler) CancelBooking(c *gin.Context) {
	if _, ok := h.loadAuthorized(c); !ok {
		return
	}

	var input struct {
		Reason string `json:"reason,omitempty"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
	}

	b, changed, err := h.Svc.Cancel(c.Request.Context(), c.Param("id"), input.Reason)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b, "changed": changed})
}

func (h *BookingHandler) CompleteBooking(c *gin.Context) {
	b, changed, err := h.Svc.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b, "changed": changed})
}

func (h *BookingHandler) FinalizeBooking(c *gin.Context) {
	var input struct {
		Notes string `json:"notes,omitempty"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
	}

	b, changed, err := h.Svc.Finalize(c.Request.Context(), c.Param("id"), input.Notes)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b, "changed": changed})
}

// loadAuthorized fetches the booking from the path id and checks the caller
// may act on it: the owner, the assigned agent or an admin.
func (h *BookingHandler) loadAuthorized(c *gin.Context) (*models.Booking, bool) {
	current := middleware.CurrentUser(c)
	if current == nil {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required", "")
		return nil, false
	}

	b, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return nil, false
	}

	allowed := b.UserID == current.ID ||
		(b.AgentID != "" && b.AgentID == current.ID) ||
		current.Role == models.RoleAdmin
	if !allowed {
		utils.JSONError(c, http.StatusForbidden, "not allowed to access this booking", "")
		return nil, false
	}
	return b, true
}

func (h *BookingHandler) writeServiceError(c *gin.Context, err error) {
	switch {
	case booking.IsValidation(err):
		utils.JSONError(c, http.StatusBadRequest, "invalid booking request", err.Error())
	case booking.IsNotFound(err):
		utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
	default:
		h.Logger.Error("booking operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "booking operation failed", err.Error())
	}
}
