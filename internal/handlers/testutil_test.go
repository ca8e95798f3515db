package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/matlynx/matlynx-api/internal/config"
	dbpkg "github.com/matlynx/matlynx-api/internal/db"
	"github.com/matlynx/matlynx-api/internal/routes"
	"github.com/matlynx/matlynx-api/internal/session"
)

// newTestServer wires the full router against in-memory sqlite and a
// miniredis-backed session store.
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := dbpkg.Migrate(conn); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	sessions := session.NewStore(client, time.Hour)

	cfg := &config.Config{
		JWTSecret:  "test-secret",
		SessionTTL: time.Hour,
	}

	r := gin.New()
	routes.RegisterRoutes(r, conn, cfg, sessions)
	return r, conn
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

// registerUser signs up a user and returns the bearer token from the
// auto-login.
func registerUser(t *testing.T, r *gin.Engine, email, role string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Asha Kumar",
		"email":    email,
		"password": "secret1",
		"phone":    "9876543210",
		"role":     role,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: status %d body %s", email, w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	decodeBody(t, w, &resp)
	if resp.Token == "" {
		t.Fatal("register returned no token")
	}
	return resp.Token
}

// gateDecision asks the navigation gate where the holder of token may go.
func gateDecision(t *testing.T, r *gin.Engine, token, path string) (action, target string) {
	t.Helper()

	w := doJSON(t, r, http.MethodGet, "/api/gate?path="+path, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("gate %s: status %d body %s", path, w.Code, w.Body.String())
	}

	var resp struct {
		Action string `json:"action"`
		Target string `json:"target"`
	}
	decodeBody(t, w, &resp)
	return resp.Action, resp.Target
}
