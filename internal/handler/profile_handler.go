package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/telmart/console_api/internal/service"
	"github.com/telmart/console_api/internal/utils"
	"github.com/telmart/console_api/pkg/catalog"
)

// ProfileHandler serves the seller business profile endpoints.
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler constructs a ProfileHandler.
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// GetProfile handles GET /v1/seller/profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileService.Get(c.Request.Context(), backendToken(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Profile retrieved successfully", profile)
}

// UpdateProfile handles PUT /v1/seller/profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req catalog.SellerProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	profile, err := h.profileService.Update(c.Request.Context(), backendToken(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Profile updated successfully", profile)
}
