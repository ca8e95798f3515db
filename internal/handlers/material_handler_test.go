package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/matlynx/matlynx-api/internal/models"
)

func createListing(t *testing.T, r *gin.Engine, token string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/me/materials", token, gin.H{
		"name":     "Cement",
		"price":    350,
		"quantity": 100,
		"unit":     "bags",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create listing: status %d body %s", w.Code, w.Body.String())
	}

	var resp struct {
		ID string `json:"id"`
	}
	decodeBody(t, w, &resp)
	if resp.ID == "" {
		t.Fatal("create returned no id")
	}
	return resp.ID
}

func TestMaterialRoutesEnforceRoles(t *testing.T) {
	r, _ := newTestServer(t)

	dealerToken := registerUser(t, r, "a@x.com", models.RoleDealer)
	contractorToken := registerUser(t, r, "c@x.com", models.RoleContractor)

	w := doJSON(t, r, http.MethodPost, "/api/me/materials", contractorToken, gin.H{
		"name":     "Cement",
		"price":    350,
		"quantity": 100,
		"unit":     "bags",
	})
	if w.Code != http.StatusForbidden {
		t.Fatalf("contractor creating a listing: status %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/materials", dealerToken, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("dealer browsing the marketplace: status %d", w.Code)
	}
}

func TestContractorSeesActiveListingsWithContactLinks(t *testing.T) {
	r, _ := newTestServer(t)

	dealerToken := registerUser(t, r, "a@x.com", models.RoleDealer)
	contractorToken := registerUser(t, r, "c@x.com", models.RoleContractor)

	id := createListing(t, r, dealerToken)

	w := doJSON(t, r, http.MethodGet, "/api/materials", contractorToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("browse: status %d body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data []struct {
			ID          string `json:"id"`
			DealerName  string `json:"dealer_name"`
			CallLink    string `json:"call_link"`
			WhatsappURL string `json:"whatsapp_url"`
		} `json:"data"`
		Total int `json:"total"`
	}
	decodeBody(t, w, &resp)
	if resp.Total != 1 || len(resp.Data) != 1 {
		t.Fatalf("expected one listing, got %d", resp.Total)
	}

	card := resp.Data[0]
	if card.ID != id {
		t.Fatalf("listing id mismatch: %s vs %s", card.ID, id)
	}
	if card.CallLink != "tel:9876543210" {
		t.Fatalf("bad call link: %q", card.CallLink)
	}
	if card.WhatsappURL != "https://wa.me/9876543210" {
		t.Fatalf("bad whatsapp url: %q", card.WhatsappURL)
	}

	// Deactivated listings drop out of the marketplace but stay in the
	// dealer's own list.
	w = doJSON(t, r, http.MethodPatch, "/api/me/materials/"+id+"/toggle", dealerToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("toggle: status %d body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/materials", contractorToken, nil)
	decodeBody(t, w, &resp)
	if resp.Total != 0 {
		t.Fatalf("inactive listing still visible, total %d", resp.Total)
	}

	w = doJSON(t, r, http.MethodGet, "/api/me/materials", dealerToken, nil)
	var mine struct {
		Total int `json:"total"`
	}
	decodeBody(t, w, &mine)
	if mine.Total != 1 {
		t.Fatalf("dealer list should keep inactive listings, total %d", mine.Total)
	}
}

func TestMutatingUnknownListingSucceedsQuietly(t *testing.T) {
	r, _ := newTestServer(t)

	token := registerUser(t, r, "a@x.com", models.RoleDealer)

	w := doJSON(t, r, http.MethodPatch, "/api/me/materials/no-such-id", token, gin.H{
		"price": 100,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update of unknown id: status %d body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodDelete, "/api/me/materials/no-such-id", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete of unknown id: status %d body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPatch, "/api/me/materials/no-such-id/toggle", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("toggle of unknown id: status %d body %s", w.Code, w.Body.String())
	}
}

func TestUpdateForeignListingReportsNotFound(t *testing.T) {
	r, _ := newTestServer(t)

	ownerToken := registerUser(t, r, "a@x.com", models.RoleDealer)
	otherToken := registerUser(t, r, "b@x.com", models.RoleDealer)

	id := createListing(t, r, ownerToken)

	w := doJSON(t, r, http.MethodPatch, "/api/me/materials/"+id, otherToken, gin.H{
		"price": 999,
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("foreign update: status %d body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Code string `json:"error_code"`
	}
	decodeBody(t, w, &resp)
	if resp.Code != "material_not_found" {
		t.Fatalf("expected material_not_found, got %q", resp.Code)
	}
}
