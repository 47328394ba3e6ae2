package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/adapters/repository/sqlite"
	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/core/domain"
	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/core/services"
)

func newTestAPI(t *testing.T, name string) (http.Handler, *services.CredentialService) {
	t.Helper()
	repo, err := sqlite.NewSQLiteRepository("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("Failed to init db: %v", err)
	}
	t.Cleanup(func() { repo.Close() })

	creds, err := services.NewCredentialService("admin@example.com", "Admin@123", "testsecret", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	return NewRouter(services.NewProductService(repo), creds), creds
}

func do(t *testing.T, h http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestLogin(t *testing.T) {
	h, _ := newTestAPI(t, "api_login")

	tests := []struct {
		name       string
		body       interface{}
		wantStatus int
		wantToken  bool
		wantMsg    string
	}{
		{name: "Valid", body: domain.LoginRequest{Email: "admin@example.com", Password: "Admin@123"}, wantStatus: http.StatusOK, wantToken: true},
		{name: "Wrong password", body: domain.LoginRequest{Email: "admin@example.com", Password: "x"}, wantStatus: http.StatusUnauthorized, wantMsg: "Invalid credentials"},
		{name: "Bad body", body: "not an object", wantStatus: http.StatusBadRequest, wantMsg: "Invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, h, http.MethodPost, "/api/auth/login", "", tt.body)
			if rr.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", rr.Code, tt.wantStatus, rr.Body.String())
			}
			var res domain.LoginResponse
			json.NewDecoder(rr.Body).Decode(&res)
			if (res.Token != "") != tt.wantToken {
				t.Errorf("token = %q", res.Token)
			}
			if res.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", res.Message, tt.wantMsg)
			}
		})
	}
}

func TestProtectedRoutesRequireBearer(t *testing.T) {
	h, _ := newTestAPI(t, "api_guard")

	routes := []struct{ method, path string }{
		{http.MethodGet, "/api/products/admin"},
		{http.MethodPost, "/api/products"},
		{http.MethodPut, "/api/products/x"},
		{http.MethodDelete, "/api/products/x"},
	}
	for _, r := range routes {
		for _, token := range []string{"", "invalid"} {
			rr := do(t, h, r.method, r.path, token, nil)
			if rr.Code != http.StatusUnauthorized {
				t.Errorf("%s %s token=%q: status %d, want 401", r.method, r.path, token, rr.Code)
			}
		}
	}
}

func TestProductLifecycle(t *testing.T) {
	h, creds := newTestAPI(t, "api_lifecycle")
	token, err := creds.Login(t.Context(), "admin@example.com", "Admin@123")
	if err != nil {
		t.Fatal(err)
	}

	// Create
	rr := do(t, h, http.MethodPost, "/api/products", token, domain.ProductInput{
		Title: "Mic", AffiliateURL: "https://shop/mic", Category: "Audio", Price: domain.Float64(49.99), IsActive: true,
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", rr.Code, rr.Body.String())
	}
	var created domain.Product
	json.NewDecoder(rr.Body).Decode(&created)
	if created.ID == "" || created.Clicks != 0 {
		t.Fatalf("created = %+v", created)
	}

	// Missing required field
	rr = do(t, h, http.MethodPost, "/api/products", token, domain.ProductInput{Title: "No link"})
	if rr.Code != http.StatusBadRequest {
		t.Errorf("invalid create status = %d", rr.Code)
	}

	// Redirect counts a click
	rr = do(t, h, http.MethodGet, "/api/products/"+created.ID+"/redirect", "", nil)
	if rr.Code != http.StatusFound || rr.Header().Get("Location") != "https://shop/mic" {
		t.Fatalf("redirect = %d %q", rr.Code, rr.Header().Get("Location"))
	}

	// Deactivate via full replacement
	rr = do(t, h, http.MethodPut, "/api/products/"+created.ID, token, domain.ProductInput{
		Title: "Mic", AffiliateURL: "https://shop/mic", Category: "Audio", IsActive: false,
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("update status = %d: %s", rr.Code, rr.Body.String())
	}

	// Public list hides inactive products
	rr = do(t, h, http.MethodGet, "/api/products", "", nil)
	var public []domain.Product
	json.NewDecoder(rr.Body).Decode(&public)
	if len(public) != 0 {
		t.Errorf("public list = %+v, want empty", public)
	}

	// Admin list shows it, with the click kept and price cleared
	rr = do(t, h, http.MethodGet, "/api/products/admin", token, nil)
	var admin []domain.Product
	json.NewDecoder(rr.Body).Decode(&admin)
	if len(admin) != 1 || admin[0].Clicks != 1 || admin[0].Price != nil || admin[0].IsActive {
		t.Errorf("admin list = %+v", admin)
	}

	// Delete, then 404
	rr = do(t, h, http.MethodDelete, "/api/products/"+created.ID, token, nil)
	if rr.Code != http.StatusOK {
		t.Errorf("delete status = %d", rr.Code)
	}
	rr = do(t, h, http.MethodDelete, "/api/products/"+created.ID, token, nil)
	if rr.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d", rr.Code)
	}
	rr = do(t, h, http.MethodGet, "/api/products/"+created.ID+"/redirect", "", nil)
	if rr.Code != http.StatusNotFound {
		t.Errorf("redirect after delete status = %d", rr.Code)
	}
}

func TestSubjectFromContext(t *testing.T) {
	_, creds := newTestAPI(t, "api_subject")
	token, _ := creds.Login(t.Context(), "admin@example.com", "Admin@123")

	var subject string
	mw := NewMiddleware(creds)
	handler := mw.BearerAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject = SubjectFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer "+token)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if subject != "admin@example.com" {
		t.Errorf("subject = %q", subject)
	}
}
