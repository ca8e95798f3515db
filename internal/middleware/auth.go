package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/matlynx/matlynx-api/internal/config"
	"github.com/matlynx/matlynx-api/internal/models"
	"github.com/matlynx/matlynx-api/internal/session"
)

const (
	ContextUser      = "currentUser"
	ContextUserEmail = "userEmail"
	ContextUserRole  = "userRole"
	ContextTokenID   = "tokenID"
)

// AuthMiddleware validates the bearer token and loads the session snapshot
// stored at login. The snapshot is trusted as-is; the users table is never
// consulted here.
func AuthMiddleware(cfg *config.Config, sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenID, err := parseBearerToken(c, cfg)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		user, err := sessions.Get(c.Request.Context(), tokenID)
		if err != nil {
			if errors.Is(err, session.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session_expired"})
				return
			}
			if errors.Is(err, session.ErrCorrupt) {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "invalid_session"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session_store_error"})
			return
		}

		setSessionContext(c, tokenID, user)
		c.Next()
	}
}

// OptionalAuth loads the session when a valid token is present and stays
// anonymous otherwise. Used by the gate endpoint, which must answer for
// anonymous visitors too.
func OptionalAuth(cfg *config.Config, sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenID, err := parseBearerToken(c, cfg)
		if err != nil {
			c.Next()
			return
		}

		user, err := sessions.Get(c.Request.Context(), tokenID)
		if err != nil {
			c.Next()
			return
		}

		setSessionContext(c, tokenID, user)
		c.Next()
	}
}

func setSessionContext(c *gin.Context, tokenID string, user *models.User) {
	c.Set(ContextUser, user)
	c.Set(ContextUserEmail, user.Email)
	c.Set(ContextUserRole, user.Role)
	c.Set(ContextTokenID, tokenID)
}

func parseBearerToken(c *gin.Context, cfg *config.Config) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", errors.New("missing_authorization_header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid_authorization_header")
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid_token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid_token_claims")
	}

	tokenID, ok := claims["jti"].(string)
	if !ok || tokenID == "" {
		return "", errors.New("invalid_token_payload")
	}

	return tokenID, nil
}
