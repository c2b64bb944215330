package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/telmart/console_api/internal/service"
	"github.com/telmart/console_api/internal/sse"
	"github.com/telmart/console_api/internal/utils"
)

// ProductHandler handles product listing, detail and status endpoints.
type ProductHandler struct {
	productService *service.ProductService
	notifier       sse.ProductNotifier
}

// NewProductHandler constructs a ProductHandler.
func NewProductHandler(productService *service.ProductService, notifier sse.ProductNotifier) *ProductHandler {
	return &ProductHandler{productService: productService, notifier: notifier}
}

// GetProducts returns the product list with optional search and pagination.
func (h *ProductHandler) GetProducts(c *gin.Context) {
	search := c.Query("search")

	// pagination
	page := 1
	limit := 20
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	result, err := h.productService.List(c.Request.Context(), backendToken(c), page, limit, search)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessWithPagination(c, 200, "Products retrieved successfully", gin.H{
		"products": result.Docs,
	}, result.Page, result.Limit, result.TotalDocs)
}

// GetProduct returns a single product.
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.productService.Get(c.Request.Context(), backendToken(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Product retrieved successfully", product)
}

// VerifyProduct handles POST /v1/products/:id/verify
func (h *ProductHandler) VerifyProduct(c *gin.Context) {
	product, err := h.productService.Verify(c.Request.Context(), backendToken(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	h.notifier.NotifyProductVerified(sellerID(c), product.ID, product.SpecificationName, product.IsApproved)
	utils.Success(c, 200, "Product verified", product)
}

// ApproveProduct handles POST /v1/products/:id/approve
func (h *ProductHandler) ApproveProduct(c *gin.Context) {
	product, err := h.productService.Approve(c.Request.Context(), backendToken(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	h.notifier.NotifyProductApproved(sellerID(c), product.ID, product.SpecificationName)
	utils.Success(c, 200, "Product approved", product)
}

// GetProductHistory returns the stored versions of a product.
func (h *ProductHandler) GetProductHistory(c *gin.Context) {
	versions, err := h.productService.History(c.Request.Context(), backendToken(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Product history retrieved successfully", gin.H{
		"versions": versions,
	})
}

// RestoreProductVersion handles POST /v1/products/:id/restore
func (h *ProductHandler) RestoreProductVersion(c *gin.Context) {
	var req struct {
		Version int `json:"version" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	product, err := h.productService.Restore(c.Request.Context(), backendToken(c), c.Param("id"), req.Version)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Product restored", product)
}

// GetSkuFamilies returns the SKU family reference list.
func (h *ProductHandler) GetSkuFamilies(c *gin.Context) {
	families, err := h.productService.SkuFamilies(c.Request.Context(), backendToken(c), c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "SKU families retrieved successfully", gin.H{
		"skuFamilies": families,
	})
}

// GetSubSkuFamilies returns sub-SKU families for a SKU family.
func (h *ProductHandler) GetSubSkuFamilies(c *gin.Context) {
	families, err := h.productService.SubSkuFamilies(c.Request.Context(), backendToken(c), c.Query("search"), c.Query("skuFamilyId"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Sub-SKU families retrieved successfully", gin.H{
		"subSkuFamilies": families,
	})
}
