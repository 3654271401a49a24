package handlers

import (
	"net/http"

	"wanderluxe/middleware"
	"wanderluxe/models"
	"wanderluxe/services/user"
	"wanderluxe/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves account registration and login.
type AuthHandler struct {
	Users user.UserService
}

func NewAuthHandler(users user.UserService) *AuthHandler {
	return &AuthHandler{Users: users}
}

func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	u, err := h.Users.Register(c.Request.Context(), input.Name, input.Email, input.Password)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "registration failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	u, token, err := h.Users.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "authentication failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u, "token": token})
}

// UpdatePreferencesHandler stores the profile signals that feed
// recommendations.
func (h *AuthHandler) UpdatePreferencesHandler(c *gin.Context) {
	current := middleware.CurrentUser(c)
	if current == nil {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required", "")
		return
	}

	var prefs models.UserPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	u, err := h.Users.UpdatePreferences(c.Request.Context(), current.ID, prefs)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update preferences", err.Error())
		return
	}
	c.JSON(http.StatusOK, u)
}
