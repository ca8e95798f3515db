package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/matlynx/matlynx-api/internal/dto"
	"github.com/matlynx/matlynx-api/internal/httperr"
	"github.com/matlynx/matlynx-api/internal/httpresp"
	ucmaterial "github.com/matlynx/matlynx-api/internal/usecase/material"
)

// BrowseHandler serves the contractor marketplace view.
type BrowseHandler struct {
	browseUC *ucmaterial.BrowseMaterials
}

func NewBrowseHandler(browseUC *ucmaterial.BrowseMaterials) *BrowseHandler {
	return &BrowseHandler{browseUC: browseUC}
}

func (h *BrowseHandler) List(c *gin.Context) {
	query := c.Query("query")

	materials, err := h.browseUC.Execute(c.Request.Context(), query)
	if err != nil {
		httperr.Internal(c, "failed_to_list_materials", "Could not list the materials.")
		return
	}

	listings := make([]dto.MaterialListingDTO, 0, len(materials))
	for _, m := range materials {
		listings = append(listings, dto.NewMaterialListingDTO(m))
	}

	httpresp.List(c, listings)
}
