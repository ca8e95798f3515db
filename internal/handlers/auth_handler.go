package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/matlynx/matlynx-api/internal/audit"
	"github.com/matlynx/matlynx-api/internal/config"
	"github.com/matlynx/matlynx-api/internal/httperr"
	"github.com/matlynx/matlynx-api/internal/middleware"
	"github.com/matlynx/matlynx-api/internal/models"
	"github.com/matlynx/matlynx-api/internal/session"
	"github.com/matlynx/matlynx-api/internal/validators"
)

type AuthHandler struct {
	db       *gorm.DB
	config   *config.Config
	sessions *session.Store
	audit    *audit.Dispatcher
}

func NewAuthHandler(
	db *gorm.DB,
	cfg *config.Config,
	sessions *session.Store,
	dispatcher *audit.Dispatcher,
) *AuthHandler {
	return &AuthHandler{
		db:       db,
		config:   cfg,
		sessions: sessions,
		audit:    dispatcher,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=dealer contractor"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if !validators.IsValidPhone(req.Phone) {
		httperr.BadRequest(c, "invalid_phone", "Phone must carry 10 to 12 digits.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Uniqueness lives here, at registration time only. The schema carries
	// no unique index on email.
	var count int64
	if err := h.db.Model(&models.User{}).
		Where("LOWER(email) = ?", email).
		Count(&count).Error; err != nil {
		httperr.Internal(c, "failed_to_check_email", "Could not verify the email.")
		return
	}
	if count > 0 {
		httperr.Conflict(c, "email_taken", "Email already registered.")
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    email,
		Password: req.Password,
		Phone:    req.Phone,
		Role:     req.Role,
	}

	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_create_user", "Could not create the account.")
		return
	}

	// Registration logs the new user straight in.
	token, err := h.openSession(c, &user)
	if err != nil {
		httperr.Internal(c, "failed_to_create_session", "Could not start a session.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserEmail: user.Email,
		Action:    "user_registered",
		Entity:    "user",
	})

	c.JSON(http.StatusCreated, gin.H{
		"user":  userPayload(&user),
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.
		Where("LOWER(email) = ?", email).
		First(&user).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, "user_not_found", "No account exists for this email.")
			return
		}
		httperr.Internal(c, "internal_error", "Could not look up the account.")
		return
	}

	// Clear-text comparison; see DESIGN.md before changing this. A failed
	// match must leave any existing session untouched.
	if user.Password != req.Password {
		httperr.Unauthorized(c, "wrong_password", "Incorrect password.")
		return
	}

	token, err := h.openSession(c, &user)
	if err != nil {
		httperr.Internal(c, "failed_to_create_session", "Could not start a session.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  userPayload(&user),
		"token": token,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	tokenID := c.MustGet(middleware.ContextTokenID).(string)

	if err := h.sessions.Delete(c.Request.Context(), tokenID); err != nil {
		httperr.Internal(c, "failed_to_logout", "Could not clear the session.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "logged_out"})
}

// Me returns the session snapshot exactly as stored at login; it does not
// re-read the users table.
func (h *AuthHandler) Me(c *gin.Context) {
	userVal, exists := c.Get(middleware.ContextUser)
	if !exists {
		httperr.Unauthorized(c, "user_not_in_context", "No session user found.")
		return
	}

	user := userVal.(*models.User)
	c.JSON(http.StatusOK, gin.H{"user": userPayload(user)})
}

// --------- JWT / session ---------

func (h *AuthHandler) openSession(c *gin.Context, user *models.User) (string, error) {
	tokenID := uuid.NewString()

	claims := jwt.MapClaims{
		"sub":  user.Email,
		"role": user.Role,
		"jti":  tokenID,
		"exp":  time.Now().Add(h.config.SessionTTL).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.config.JWTSecret))
	if err != nil {
		return "", err
	}

	if err := h.sessions.Save(c.Request.Context(), tokenID, user); err != nil {
		return "", err
	}

	return signed, nil
}

func userPayload(user *models.User) gin.H {
	return gin.H{
		"id":         user.ID,
		"name":       user.Name,
		"email":      user.Email,
		"phone":      user.Phone,
		"role":       user.Role,
		"created_at": user.CreatedAt,
	}
}
