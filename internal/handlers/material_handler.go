package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/matlynx/matlynx-api/internal/httperr"
	"github.com/matlynx/matlynx-api/internal/httpresp"
	"github.com/matlynx/matlynx-api/internal/middleware"
	"github.com/matlynx/matlynx-api/internal/models"
	ucmaterial "github.com/matlynx/matlynx-api/internal/usecase/material"
)

// ======================================================
// HANDLER
// ======================================================

type MaterialHandler struct {
	createUC *ucmaterial.CreateMaterial
	updateUC *ucmaterial.UpdateMaterial
	deleteUC *ucmaterial.DeleteMaterial
	toggleUC *ucmaterial.ToggleMaterialActive
	listUC   *ucmaterial.ListDealerMaterials
}

func NewMaterialHandler(
	createUC *ucmaterial.CreateMaterial,
	updateUC *ucmaterial.UpdateMaterial,
	deleteUC *ucmaterial.DeleteMaterial,
	toggleUC *ucmaterial.ToggleMaterialActive,
	listUC *ucmaterial.ListDealerMaterials,
) *MaterialHandler {
	return &MaterialHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		toggleUC: toggleUC,
		listUC:   listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateMaterialRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Quantity    float64 `json:"quantity" binding:"required,gt=0"`
	Unit        string  `json:"unit" binding:"required"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`

	PriceValidUntil *time.Time `json:"price_valid_until"`
}

type UpdateMaterialRequest struct {
	Name        *string  `json:"name,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Quantity    *float64 `json:"quantity,omitempty"`
	Unit        *string  `json:"unit,omitempty"`
	Description *string  `json:"description,omitempty"`
	ImageURL    *string  `json:"image_url,omitempty"`

	PriceValidUntil *time.Time `json:"price_valid_until,omitempty"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *MaterialHandler) List(c *gin.Context) {
	dealer := c.MustGet(middleware.ContextUser).(*models.User)

	materials, err := h.listUC.Execute(c.Request.Context(), dealer.Email)
	if err != nil {
		httperr.Internal(c, "failed_to_list_materials", "Could not list the materials.")
		return
	}

	httpresp.List(c, materials)
}

func (h *MaterialHandler) Create(c *gin.Context) {
	dealer := c.MustGet(middleware.ContextUser).(*models.User)

	var req CreateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	m, err := h.createUC.Execute(c.Request.Context(), ucmaterial.CreateMaterialInput{
		DealerEmail: dealer.Email,
		DealerName:  dealer.Name,
		DealerPhone: dealer.Phone,

		Name:        req.Name,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		Description: req.Description,
		ImageURL:    req.ImageURL,

		PriceValidUntil: req.PriceValidUntil,
	})
	if err != nil {
		writeMaterialError(c, err)
		return
	}

	httpresp.Created(c, m)
}

func (h *MaterialHandler) Update(c *gin.Context) {
	dealer := c.MustGet(middleware.ContextUser).(*models.User)
	id := c.Param("id")

	var req UpdateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	m, err := h.updateUC.Execute(c.Request.Context(), ucmaterial.UpdateMaterialInput{
		ID:          id,
		DealerEmail: dealer.Email,

		Name:        req.Name,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		Description: req.Description,
		ImageURL:    req.ImageURL,

		PriceValidUntil: req.PriceValidUntil,
	})
	if err != nil {
		writeMaterialError(c, err)
		return
	}
	if m == nil {
		// Unknown id: the mutation quietly did nothing.
		httpresp.OK(c, gin.H{"status": "ok"})
		return
	}

	httpresp.OK(c, m)
}

func (h *MaterialHandler) Delete(c *gin.Context) {
	dealer := c.MustGet(middleware.ContextUser).(*models.User)
	id := c.Param("id")

	if err := h.deleteUC.Execute(c.Request.Context(), id, dealer.Email); err != nil {
		writeMaterialError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"status": "deleted"})
}

func (h *MaterialHandler) ToggleActive(c *gin.Context) {
	dealer := c.MustGet(middleware.ContextUser).(*models.User)
	id := c.Param("id")

	m, err := h.toggleUC.Execute(c.Request.Context(), id, dealer.Email)
	if err != nil {
		writeMaterialError(c, err)
		return
	}
	if m == nil {
		httpresp.OK(c, gin.H{"status": "ok"})
		return
	}

	httpresp.OK(c, m)
}

// ======================================================
// ERROR MAPPING
// ======================================================

func writeMaterialError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "material_not_found"):
		httperr.NotFound(c, "material_not_found", "Material not found.")
	case httperr.IsBusiness(err, "invalid_unit"):
		httperr.BadRequest(c, "invalid_unit", "Unknown material unit.")
	case httperr.IsBusiness(err, "invalid_price"):
		httperr.BadRequest(c, "invalid_price", "Price must be positive.")
	case httperr.IsBusiness(err, "invalid_quantity"):
		httperr.BadRequest(c, "invalid_quantity", "Quantity must be positive.")
	default:
		httperr.Internal(c, "material_error", "Could not process the material.")
	}
}
