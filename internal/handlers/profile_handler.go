package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/matlynx/matlynx-api/internal/audit"
	profiledomain "github.com/matlynx/matlynx-api/internal/domain/profile"
	"github.com/matlynx/matlynx-api/internal/httperr"
	"github.com/matlynx/matlynx-api/internal/middleware"
	"github.com/matlynx/matlynx-api/internal/models"
	"github.com/matlynx/matlynx-api/internal/validators"
)

type ProfileHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewProfileHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *ProfileHandler {
	return &ProfileHandler{db: db, audit: dispatcher}
}

// --------- Requests ---------

type AddressPayload struct {
	Street  string `json:"street"`
	Area    string `json:"area"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

// An incomplete profile may still be saved; completeness is derived, not
// enforced. Only format checks reject a save.
type SaveProfileRequest struct {
	FullName     string         `json:"full_name" binding:"required"`
	ShopName     string         `json:"shop_name"`
	CompanyName  string         `json:"company_name"`
	Phone        string         `json:"phone" binding:"required"`
	Whatsapp     string         `json:"whatsapp"`
	Address      AddressPayload `json:"address"`
	ProfilePhoto string         `json:"profile_photo"`
}

// --------- Handlers ---------

func (h *ProfileHandler) Get(c *gin.Context) {
	email := c.MustGet(middleware.ContextUserEmail).(string)

	var p models.Profile
	err := h.db.
		Where("LOWER(user_id) = ?", strings.ToLower(email)).
		First(&p).Error

	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusOK, gin.H{
			"profile":     nil,
			"is_complete": false,
		})
		return
	}
	if err != nil {
		httperr.Internal(c, "failed_to_get_profile", "Could not load the profile.")
		return
	}

	// Recomputed from the stored fields on every read.
	c.JSON(http.StatusOK, gin.H{
		"profile":     p,
		"is_complete": profiledomain.IsComplete(&p),
	})
}

func (h *ProfileHandler) Save(c *gin.Context) {
	userVal := c.MustGet(middleware.ContextUser)
	user := userVal.(*models.User)

	var req SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	// Format checks run before any write; a save fully succeeds or fails.
	if !validators.IsValidPhone(req.Phone) {
		httperr.BadRequest(c, "invalid_phone", "Phone must carry 10 to 12 digits.")
		return
	}
	if req.Whatsapp != "" && !validators.IsValidPhone(req.Whatsapp) {
		httperr.BadRequest(c, "invalid_whatsapp", "WhatsApp number must carry 10 to 12 digits.")
		return
	}
	if req.Address.Pincode != "" && !validators.IsValidPincode(req.Address.Pincode) {
		httperr.BadRequest(c, "invalid_pincode", "Pincode must be exactly 6 digits.")
		return
	}

	var existing models.Profile
	err := h.db.
		Where("LOWER(user_id) = ?", strings.ToLower(user.Email)).
		First(&existing).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		httperr.Internal(c, "failed_to_get_profile", "Could not load the profile.")
		return
	}
	found := err == nil

	whatsapp := strings.TrimSpace(req.Whatsapp)
	if whatsapp == "" {
		whatsapp = strings.TrimSpace(req.Phone)
	}

	now := time.Now().UTC()

	// Wholesale overwrite: the saved record is rebuilt from the request,
	// with identity and creation stamp carried over.
	p := models.Profile{
		UserID:   user.Email,
		FullName: strings.TrimSpace(req.FullName),
		Role:     user.Role,

		Phone:    strings.TrimSpace(req.Phone),
		Whatsapp: whatsapp,

		Address: models.Address{
			Street:  strings.TrimSpace(req.Address.Street),
			Area:    strings.TrimSpace(req.Address.Area),
			City:    strings.TrimSpace(req.Address.City),
			State:   strings.TrimSpace(req.Address.State),
			Pincode: strings.TrimSpace(req.Address.Pincode),
		},

		ProfilePhoto: req.ProfilePhoto,

		CreatedAt: now,
		UpdatedAt: now,
	}

	switch user.Role {
	case models.RoleDealer:
		p.ShopName = strings.TrimSpace(req.ShopName)
	case models.RoleContractor:
		p.CompanyName = strings.TrimSpace(req.CompanyName)
	}

	if found {
		p.ID = existing.ID
		p.CreatedAt = existing.CreatedAt
	}

	// Derived here, never taken from the caller.
	p.IsComplete = profiledomain.IsComplete(&p)

	if err := h.db.Save(&p).Error; err != nil {
		httperr.Internal(c, "failed_to_save_profile", "Could not save the profile.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserEmail: user.Email,
		Action:    "profile_saved",
		Entity:    "profile",
	})

	c.JSON(http.StatusOK, gin.H{
		"profile":     p,
		"is_complete": p.IsComplete,
	})
}
