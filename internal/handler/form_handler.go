package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/telmart/console_api/internal/models"
	"github.com/telmart/console_api/internal/service"
	"github.com/telmart/console_api/internal/utils"
	"github.com/telmart/console_api/pkg/catalog"
)

// FormHandler serves the product form session endpoints. Every route is
// scoped to the authenticated seller; a form opened by one seller is
// invisible to another.
type FormHandler struct {
	formService *service.FormService
}

// NewFormHandler constructs a FormHandler.
func NewFormHandler(formService *service.FormService) *FormHandler {
	return &FormHandler{formService: formService}
}

// OpenForm handles POST /v1/forms. An optional productId switches the
// session into edit mode, prefilled from the stored product.
func (h *FormHandler) OpenForm(c *gin.Context) {
	var req struct {
		ProductID string `json:"productId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	var (
		session *models.FormSession
		err     error
	)
	if req.ProductID != "" {
		session, err = h.formService.OpenEdit(c.Request.Context(), backendToken(c), sellerID(c), req.ProductID)
	} else {
		session, err = h.formService.OpenCreate(c.Request.Context(), sellerID(c))
	}
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 201, "Form opened", session)
}

// GetForm handles GET /v1/forms/:id
func (h *FormHandler) GetForm(c *gin.Context) {
	session, err := h.formService.Get(c.Request.Context(), c.Param("id"), sellerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Form retrieved successfully", session)
}

// CloseForm handles DELETE /v1/forms/:id
func (h *FormHandler) CloseForm(c *gin.Context) {
	if err := h.formService.Close(c.Request.Context(), c.Param("id"), sellerID(c)); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Form closed", nil)
}

// SelectSkuFamily handles PUT /v1/forms/:id/sku-family. A null selection
// clears the family.
func (h *FormHandler) SelectSkuFamily(c *gin.Context) {
	var req struct {
		Selection *struct {
			ID   string `json:"id" binding:"required"`
			Name string `json:"name" binding:"required"`
		} `json:"selection"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	var option *catalog.SkuFamily
	if req.Selection != nil {
		option = &catalog.SkuFamily{ID: req.Selection.ID, Name: req.Selection.Name}
	}

	session, err := h.formService.SelectSkuFamily(c.Request.Context(), backendToken(c), c.Param("id"), sellerID(c), option)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "SKU family selected", session)
}

// SelectSubSkuFamily handles PUT /v1/forms/:id/sub-sku-family. An empty
// optionId clears the selection while keeping adopted values.
func (h *FormHandler) SelectSubSkuFamily(c *gin.Context) {
	var req struct {
		OptionID string `json:"optionId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	session, err := h.formService.SelectSubSkuFamily(c.Request.Context(), c.Param("id"), sellerID(c), req.OptionID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Sub-SKU family selected", session)
}

// SetFields handles PATCH /v1/forms/:id/fields with a batch of field
// changes applied in order.
func (h *FormHandler) SetFields(c *gin.Context) {
	var req struct {
		Changes []service.FieldChange `json:"changes" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	session, err := h.formService.SetFields(c.Request.Context(), c.Param("id"), sellerID(c), req.Changes)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Fields updated", session)
}

// SetVariants handles PUT /v1/forms/:id/variants
func (h *FormHandler) SetVariants(c *gin.Context) {
	var req struct {
		Rows []models.VariantRow `json:"rows"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	session, err := h.formService.SetVariants(c.Request.Context(), c.Param("id"), sellerID(c), req.Rows)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Variant rows updated", session)
}

// AttachMedia handles POST /v1/forms/:id/media, linking a staged upload
// to the form.
func (h *FormHandler) AttachMedia(c *gin.Context) {
	var req struct {
		URL  string `json:"url" binding:"required"`
		Kind string `json:"kind"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	session, err := h.formService.AttachMedia(c.Request.Context(), c.Param("id"), sellerID(c), req.URL, req.Kind)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Media attached", session)
}

// SubmitForm handles POST /v1/forms/:id/submit
func (h *FormHandler) SubmitForm(c *gin.Context) {
	result, err := h.formService.Submit(c.Request.Context(), backendToken(c), c.Param("id"), sellerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Product submitted", result)
}

// SaveDraft handles POST /v1/forms/:id/draft
func (h *FormHandler) SaveDraft(c *gin.Context) {
	var req struct {
		Title string `json:"title"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	draft, err := h.formService.SaveDraft(c.Request.Context(), c.Param("id"), sellerID(c), req.Title)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 201, "Draft saved", draft)
}

// ListDrafts handles GET /v1/drafts
func (h *FormHandler) ListDrafts(c *gin.Context) {
	drafts, err := h.formService.ListDrafts(c.Request.Context(), sellerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Drafts retrieved successfully", gin.H{
		"drafts": drafts,
	})
}

// ResumeDraft handles POST /v1/drafts/:id/resume, opening a fresh form
// session from the stored payload.
func (h *FormHandler) ResumeDraft(c *gin.Context) {
	session, err := h.formService.ResumeDraft(c.Request.Context(), c.Param("id"), sellerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 201, "Draft resumed", session)
}

// DeleteDraft handles DELETE /v1/drafts/:id
func (h *FormHandler) DeleteDraft(c *gin.Context) {
	if err := h.formService.DeleteDraft(c.Request.Context(), c.Param("id"), sellerID(c)); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Draft deleted", nil)
}
