package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	profiledomain "github.com/matlynx/matlynx-api/internal/domain/profile"
	"github.com/matlynx/matlynx-api/internal/domain/routegate"
	"github.com/matlynx/matlynx-api/internal/httperr"
	"github.com/matlynx/matlynx-api/internal/httpresp"
	"github.com/matlynx/matlynx-api/internal/middleware"
	"github.com/matlynx/matlynx-api/internal/models"
)

// GateHandler answers "may I navigate here?" for the SPA. Anonymous callers
// are expected; OptionalAuth fills the session context when a token holds.
type GateHandler struct {
	db *gorm.DB
}

func NewGateHandler(db *gorm.DB) *GateHandler {
	return &GateHandler{db: db}
}

func (h *GateHandler) Decide(c *gin.Context) {
	path := c.Query("path")
	if path == "" {
		httperr.BadRequest(c, "missing_path", "A path query parameter is required.")
		return
	}

	sess := routegate.Session{}

	if userVal, ok := c.Get(middleware.ContextUser); ok {
		user := userVal.(*models.User)
		sess.Authenticated = true
		sess.Role = user.Role

		var p models.Profile
		err := h.db.
			Where("LOWER(user_id) = ?", strings.ToLower(user.Email)).
			First(&p).Error
		switch {
		case err == nil:
			sess.ProfileComplete = profiledomain.IsComplete(&p)
		case errors.Is(err, gorm.ErrRecordNotFound):
			// No profile yet: incomplete.
		default:
			httperr.Internal(c, "failed_to_get_profile", "Could not load the profile.")
			return
		}
	}

	httpresp.OK(c, routegate.Decide(sess, path))
}
