package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/telmart/console_api/internal/utils"
	"github.com/telmart/console_api/pkg/catalog"
)

// respondError maps service errors onto the response envelope. Backend
// errors pass through with their original status and message; local
// sentinel errors get stable codes the frontend can branch on.
func respondError(c *gin.Context, err error) {
	var apiErr *catalog.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.Code
		if code == "" {
			code = "UPSTREAM_ERROR"
		}
		utils.Error(c, apiErr.Status, code, apiErr.Message)
		return
	}

	switch {
	case errors.Is(err, utils.ErrInvalidCredentials):
		utils.Error(c, 401, "INVALID_CREDENTIALS", "Invalid email or password")
	case errors.Is(err, utils.ErrInvalidToken):
		utils.Error(c, 401, "INVALID_TOKEN", "Invalid or expired token")
	case errors.Is(err, utils.ErrSessionNotFound), errors.Is(err, utils.ErrSessionExpired):
		utils.Error(c, 401, "SESSION_EXPIRED", "Session expired, please log in again")
	case errors.Is(err, utils.ErrFormNotFound):
		utils.Error(c, 404, "FORM_NOT_FOUND", "Form session not found")
	case errors.Is(err, utils.ErrFormSubmitting):
		utils.Error(c, 409, "FORM_SUBMITTING", "Form is being submitted")
	case errors.Is(err, utils.ErrFormInvalid):
		utils.Error(c, 422, "FORM_INVALID", "Form has validation errors")
	case errors.Is(err, utils.ErrFieldLocked):
		utils.Error(c, 409, "FIELD_LOCKED", "Field is locked by the selected sub-variant")
	case errors.Is(err, utils.ErrUnknownField):
		utils.Error(c, 400, "UNKNOWN_FIELD", "Unknown form field")
	case errors.Is(err, utils.ErrUnknownOption):
		utils.Error(c, 400, "UNKNOWN_OPTION", "Unknown sub-variant option")
	case errors.Is(err, utils.ErrSpecificationReq):
		utils.Error(c, 422, "SPECIFICATION_REQUIRED", "A specification must be selected")
	case errors.Is(err, utils.ErrDraftNotFound):
		utils.Error(c, 404, "DRAFT_NOT_FOUND", "Draft not found")
	case errors.Is(err, utils.ErrMediaTooLarge):
		utils.Error(c, 413, "MEDIA_TOO_LARGE", "File exceeds the upload size limit")
	case errors.Is(err, utils.ErrMediaUnsupported):
		utils.Error(c, 415, "MEDIA_UNSUPPORTED", "Unsupported media type")
	case errors.Is(err, utils.ErrMediaRejected):
		utils.Error(c, 422, "MEDIA_REJECTED", "Image was rejected by content moderation")
	default:
		utils.Error(c, 500, "INTERNAL_ERROR", "Something went wrong")
	}
}

// sellerID returns the authenticated seller ID from context.
func sellerID(c *gin.Context) string {
	return c.GetString("seller_id")
}

// backendToken returns the cached backend access token from context.
func backendToken(c *gin.Context) string {
	return c.GetString("backend_token")
}
