package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopbook/shopbook_backend/internal/core/ports"
	"github.com/shopbook/shopbook_backend/internal/dto"
	"github.com/shopbook/shopbook_backend/internal/middleware"
)

// adminHandler handles admin self-service and admin management routes.
type adminHandler struct {
	userService ports.UserService
}

func registerAdminRoutes(rg *gin.RouterGroup, userService ports.UserService) {
	h := &adminHandler{userService: userService}

	admin := rg.Group("/admin")
	{
		admin.GET("/me", h.getProfile)
		admin.PUT("/profile", h.updateProfile)
		admin.PUT("/password", h.changePassword)
		admin.GET("/admins", h.listAdmins)
		admin.POST("/admins", h.createAdmin)
		admin.DELETE("/admins/:id", h.deleteAdmin)
	}
}

// getProfile godoc
// @Summary Get the logged-in admin's profile
// @Tags admin
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/me [get]
func (h *adminHandler) getProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// updateProfile godoc
// @Summary Update the logged-in admin's profile
// @Tags admin
// @Accept json
// @Produce json
// @Param profile body dto.UpdateProfileRequest true "New username and full name"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Username taken"
// @Security BearerAuth
// @Router /admin/profile [put]
func (h *adminHandler) updateProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.userService.UpdateProfile(c.Request.Context(), userID, req); err != nil {
		respondServiceError(c, logger, err, "Failed to update profile")
		return
	}

	logger.Info("Profile updated", slog.String("user_id", userID))
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}

// changePassword godoc
// @Summary Change the logged-in admin's password
// @Description Verifies the current password before setting the new one.
// @Tags admin
// @Accept json
// @Produce json
// @Param passwords body dto.ChangePasswordRequest true "Current and new password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Current password wrong"
// @Security BearerAuth
// @Router /admin/password [put]
func (h *adminHandler) changePassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		respondServiceError(c, logger, err, "Failed to change password")
		return
	}

	logger.Info("Password changed", slog.String("user_id", userID))
	c.JSON(http.StatusOK, gin.H{"message": "Password changed"})
}

// listAdmins godoc
// @Summary List admin users
// @Tags admin
// @Produce json
// @Success 200 {array} dto.UserResponse
// @Security BearerAuth
// @Router /admin/admins [get]
func (h *adminHandler) listAdmins(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	admins, err := h.userService.ListAdmins(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list admins")
		return
	}
	c.JSON(http.StatusOK, dto.ToListUserResponse(admins))
}

// createAdmin godoc
// @Summary Add another admin user
// @Tags admin
// @Accept json
// @Produce json
// @Param admin body dto.CreateAdminRequest true "New admin credentials"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Username taken"
// @Security BearerAuth
// @Router /admin/admins [post]
func (h *adminHandler) createAdmin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	user, err := h.userService.CreateAdmin(c.Request.Context(), req, actorID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create admin")
		return
	}

	logger.Info("Admin created", slog.String("new_user_id", user.UserID))
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// deleteAdmin godoc
// @Summary Delete an admin user
// @Description An admin cannot delete their own account.
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse "Attempted self-deletion"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/admins/{id} [delete]
func (h *adminHandler) deleteAdmin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.userService.DeleteAdmin(c.Request.Context(), c.Param("id"), actorID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete admin")
		return
	}

	logger.Info("Admin deleted", slog.String("deleted_user_id", c.Param("id")))
	c.JSON(http.StatusOK, gin.H{"message": "Admin deleted"})
}
