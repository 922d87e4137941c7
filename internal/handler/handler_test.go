package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"society-manager/internal/config"
	"society-manager/internal/middleware"
	"society-manager/internal/service"
	"society-manager/internal/store"

	"github.com/gin-gonic/gin"
)

const testJWTSecret = "test-secret"

// newTestRouter wires the API surface against a throwaway store, without the
// HTML template layer.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New(config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	if err := st.Open(); err != nil {
		t.Fatalf("open store: %v", err)
	}

	credential := service.NewCredential(st)
	if err := credential.EnsureDefaultAdmin(); err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	receipts := service.NewReceipts(st, "NSM-")
	expenses := service.NewExpenses(st)
	settings := service.NewSettings(st)

	r := gin.New()
	api := r.Group("/api")

	authHandler := NewAuthHandler(st, credential, testJWTSecret, 1)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(testJWTSecret, st))
	protected.POST("/auth/logout", authHandler.Logout)
	protected.GET("/me", GetMe)
	protected.POST("/profile/password", ChangePassword(credential))

	receiptHandler := NewReceiptHandler(receipts)
	protected.GET("/receipts", receiptHandler.ListReceipts)
	protected.POST("/receipts", receiptHandler.CreateReceipt)

	expenseHandler := NewExpenseHandler(expenses)
	protected.GET("/expenses", expenseHandler.ListExpenses)
	protected.POST("/expenses", expenseHandler.CreateExpense)
	protected.GET("/expenses/summary", expenseHandler.GetSummary)

	settingsHandler := NewSettingsHandler(settings)
	protected.GET("/settings", settingsHandler.GetSettings)
	protected.PUT("/settings", settingsHandler.SaveSettings)

	exportHandler := NewExportHandler(receipts, expenses, settings, "Test Society")
	protected.GET("/receipts/:id/pdf", exportHandler.ReceiptPDF)
	protected.GET("/export/receipts/xlsx", exportHandler.ReceiptsXLSX)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
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

func login(t *testing.T, r *gin.Engine, password string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "admin",
		"password": password,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login: status %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	return resp.Data.Token
}

func TestLoginAndMe(t *testing.T) {
	r := newTestRouter(t)

	// wrong password rejected without detail
	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "admin", "password": "nope",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong password: status %d", w.Code)
	}

	token := login(t, r, "admin123")

	w = doJSON(t, r, http.MethodGet, "/api/me", token, nil)
	if w.Code != http.StatusOK {
		t.Errorf("me: status %d", w.Code)
	}

	// no token
	w = doJSON(t, r, http.MethodGet, "/api/me", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated me: status %d", w.Code)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "admin123")

	if w := doJSON(t, r, http.MethodPost, "/api/auth/logout", token, nil); w.Code != http.StatusOK {
		t.Fatalf("logout: status %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodGet, "/api/me", token, nil); w.Code != http.StatusUnauthorized {
		t.Errorf("revoked token still accepted: status %d", w.Code)
	}
}

func TestReceiptLifecycle(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "admin123")

	w := doJSON(t, r, http.MethodPost, "/api/receipts", token, gin.H{
		"name":           "A",
		"block_number":   "12",
		"amount":         "500",
		"date":           "2024-01-01",
		"for_month":      "2024-01",
		"payment_method": "Cash",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create: status %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "NSM-0001") {
		t.Errorf("first receipt number missing: %s", w.Body.String())
	}

	// invalid payment method rejected before the store
	w = doJSON(t, r, http.MethodPost, "/api/receipts", token, gin.H{
		"name":           "A",
		"block_number":   "12",
		"amount":         "500",
		"date":           "2024-01-01",
		"for_month":      "2024-01",
		"payment_method": "Barter",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad method: status %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/receipts", token, nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "NSM-0001") {
		t.Errorf("list: status %d: %s", w.Code, w.Body.String())
	}

	// per-receipt download, named by receipt number
	w = doJSON(t, r, http.MethodGet, "/api/receipts/1/pdf", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("pdf: status %d", w.Code)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Error("download is not a PDF stream")
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "NSM-0001.pdf") {
		t.Errorf("content disposition = %q", cd)
	}

	// absent receipt is 404, not 500
	w = doJSON(t, r, http.MethodGet, "/api/receipts/99/pdf", token, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("absent receipt: status %d", w.Code)
	}
}

func TestExpenseSummaryEndpoint(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "admin123")

	for _, e := range []gin.H{
		{"date": "2024-02-01", "description": "donation", "amount": "1000", "direction": "income"},
		{"date": "2024-02-02", "description": "plumber", "amount": "300", "direction": "outlay"},
	} {
		if w := doJSON(t, r, http.MethodPost, "/api/expenses", token, e); w.Code != http.StatusOK {
			t.Fatalf("create expense: status %d: %s", w.Code, w.Body.String())
		}
	}

	w := doJSON(t, r, http.MethodGet, "/api/expenses/summary", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("summary: status %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `"net":"700.00"`) {
		t.Errorf("net balance missing: %s", body)
	}
}

func TestChangePasswordEndpoint(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "admin123")

	w := doJSON(t, r, http.MethodPost, "/api/profile/password", token, gin.H{
		"old_password": "wrong", "new_password": "NewSecret1",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("wrong current password: status %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/profile/password", token, gin.H{
		"old_password": "admin123", "new_password": "NewSecret1",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("change password: status %d: %s", w.Code, w.Body.String())
	}

	login(t, r, "NewSecret1")
}

func TestSettingsEndpoint(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "admin123")

	w := doJSON(t, r, http.MethodGet, "/api/settings", token, nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"admin_name":"Admin"`) {
		t.Errorf("default settings: status %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPut, "/api/settings", token, gin.H{
		"admin_name":     "Secretary",
		"block_number":   "B-2",
		"signature_type": "typed",
		"signature_text": "S. Secretary",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("save settings: status %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/settings", token, nil)
	if !strings.Contains(w.Body.String(), `"admin_name":"Secretary"`) {
		t.Errorf("settings not persisted: %s", w.Body.String())
	}
}

func TestXLSXExportEndpoint(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "admin123")

	w := doJSON(t, r, http.MethodGet, "/api/export/receipts/xlsx", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("xlsx: status %d", w.Code)
	}
	// xlsx is a zip container
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("PK")) {
		t.Error("download is not an xlsx stream")
	}
}
