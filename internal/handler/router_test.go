package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/boddenberg/money-bfa-go/internal/domain"
	"github.com/boddenberg/money-bfa-go/internal/handler"
	"github.com/boddenberg/money-bfa-go/internal/infra/cache"
	"github.com/boddenberg/money-bfa-go/internal/infra/observability"
	"github.com/boddenberg/money-bfa-go/internal/infra/static"
	"github.com/boddenberg/money-bfa-go/internal/service"
)

var fixedNow = time.Date(2026, 10, 16, 14, 30, 0, 0, time.UTC)

func newTestRouter(t *testing.T, secret string) (http.Handler, *static.Store) {
	t.Helper()
	clock := func() time.Time { return fixedNow }
	store := static.New(static.WithClock(clock))
	metrics := observability.NewMetrics()
	svc := service.NewMoneyService(store, cache.New[any](time.Minute), metrics, zap.NewNop(), service.WithClock(clock))
	router := handler.NewRouter(svc, service.NewTokenVerifier(secret), metrics, []string{"*"}, zap.NewNop())
	return router, store
}

func do(router http.Handler, method, path string, body any, header http.Header) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	router, _ := newTestRouter(t, "")

	rec := do(router, http.MethodGet, "/healthz", nil, nil)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var h domain.HealthStatus
	if err := json.NewDecoder(rec.Body).Decode(&h); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if h.Status != "healthy" || h.Backend != "static" {
		t.Errorf("unexpected health %+v", h)
	}
}

func TestReadyz(t *testing.T) {
	router, _ := newTestRouter(t, "")

	rec := do(router, http.MethodGet, "/readyz", nil, nil)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestMetrics(t *testing.T) {
	router, _ := newTestRouter(t, "")

	if rec := do(router, http.MethodGet, "/metrics", nil, nil); rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if rec := do(router, http.MethodGet, "/v1/metrics/money", nil, nil); rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestDashboard_ETag(t *testing.T) {
	router, _ := newTestRouter(t, "")
	path := "/v1/users/u1/money/dashboard"

	rec := do(router, http.MethodGet, path, nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	etag := rec.Header().Get("ETag")
	if etag == "" {
		t.Fatal("expected ETag header")
	}

	var d domain.Dashboard
	if err := json.NewDecoder(rec.Body).Decode(&d); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if d.UserID != "u1" || len(d.Alerts) == 0 {
		t.Errorf("unexpected dashboard: user=%q alerts=%d", d.UserID, len(d.Alerts))
	}

	rec = do(router, http.MethodGet, path, nil, http.Header{"If-None-Match": {etag}})
	if rec.Code != http.StatusNotModified {
		t.Errorf("expected 304, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("304 must not carry a body")
	}
}

func TestQueryValidation(t *testing.T) {
	router, _ := newTestRouter(t, "")

	tests := []struct {
		path string
		want int
	}{
		{"/v1/users/u1/money/purchases", http.StatusOK},
		{"/v1/users/u1/money/purchases?period=7d", http.StatusOK},
		{"/v1/users/u1/money/purchases?period=year", http.StatusBadRequest},
		{"/v1/users/u1/money/reports", http.StatusOK},
		{"/v1/users/u1/money/reports?months=12", http.StatusOK},
		{"/v1/users/u1/money/reports?months=abc", http.StatusBadRequest},
		{"/v1/users/u1/money/reports?months=30", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if rec := do(router, http.MethodGet, tt.path, nil, nil); rec.Code != tt.want {
				t.Errorf("expected %d, got %d: %s", tt.want, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestScreens(t *testing.T) {
	router, _ := newTestRouter(t, "")

	for _, screen := range []string{"accounts", "budgets", "cards", "subscriptions", "debts", "investments", "patrimony", "goals", "alerts"} {
		t.Run(screen, func(t *testing.T) {
			rec := do(router, http.MethodGet, "/v1/users/u1/money/"+screen, nil, nil)
			if rec.Code != http.StatusOK {
				t.Errorf("expected 200, got %d: %s", rec.Code, rec.Body.String())
			}
			if rec.Header().Get("ETag") == "" {
				t.Error("expected ETag header")
			}
		})
	}
}

func TestSubmitPurchase(t *testing.T) {
	router, _ := newTestRouter(t, "")
	path := "/v1/users/u1/money/purchases"

	rec := do(router, http.MethodPost, path, map[string]any{
		"description":   "Padaria",
		"amount":        18.5,
		"date":          "2026-10-16",
		"category":      "Alimentação",
		"paymentMethod": "pix",
	}, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var p domain.Purchase
	if err := json.NewDecoder(rec.Body).Decode(&p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.ID == "" || p.Amount != 18.5 {
		t.Errorf("unexpected purchase %+v", p)
	}

	bad := []any{
		map[string]any{"description": "x", "amount": 10, "date": "16/10/2026", "paymentMethod": "pix"},
		map[string]any{"description": "", "amount": 10, "date": "2026-10-16", "paymentMethod": "pix"},
		map[string]any{"description": "x", "amount": -1, "date": "2026-10-16", "paymentMethod": "pix"},
		map[string]any{"description": "x", "amount": 10, "paymentMethod": "pix"},
	}
	for i, body := range bad {
		if rec := do(router, http.MethodPost, path, body, nil); rec.Code != http.StatusBadRequest {
			t.Errorf("case %d: expected 400, got %d", i, rec.Code)
		}
	}

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader("{not json"))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("malformed body: expected 400, got %d", rec.Code)
	}
}

func TestSubmitGoal(t *testing.T) {
	router, _ := newTestRouter(t, "")

	rec := do(router, http.MethodPost, "/v1/users/u1/money/goals", map[string]any{
		"name":          "Viagem",
		"targetAmount":  7000,
		"currentAmount": 1000,
		"deadline":      "2027-03-20",
	}, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var g domain.FinancialGoal
	if err := json.NewDecoder(rec.Body).Decode(&g); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if g.RequiredMonthlyContribution != 1000 {
		t.Errorf("expected required contribution 1000, got %v", g.RequiredMonthlyContribution)
	}
}

func TestSubmitAccount(t *testing.T) {
	router, _ := newTestRouter(t, "")

	rec := do(router, http.MethodPost, "/v1/users/u1/money/accounts", map[string]any{
		"name":           "Conta nova",
		"institution":    "Inter",
		"type":           "checking",
		"initialBalance": 250,
	}, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestSubmission_ProviderFailure(t *testing.T) {
	router, store := newTestRouter(t, "")
	store.FailWrites(errors.New("connection reset"))

	rec := do(router, http.MethodPost, "/v1/users/u1/money/goals", map[string]any{
		"name":         "Reserva",
		"targetAmount": 1000,
	}, nil)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
	var body map[string]string
	json.NewDecoder(rec.Body).Decode(&body)
	if body["error"] != domain.SubmissionRetryMessage {
		t.Errorf("expected generic retry message, got %q", body["error"])
	}
}

func TestDeleteSubscription(t *testing.T) {
	router, _ := newTestRouter(t, "")

	if rec := do(router, http.MethodDelete, "/v1/users/u1/money/subscriptions/sub-1", nil, nil); rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if rec := do(router, http.MethodDelete, "/v1/users/u1/money/subscriptions/sub-1", nil, nil); rec.Code != http.StatusNotFound {
		t.Errorf("second delete: expected 404, got %d", rec.Code)
	}
}

func TestDismissAlert(t *testing.T) {
	router, _ := newTestRouter(t, "")
	alertID := domain.AlertID(domain.AlertBudget, "bud-3")

	if rec := do(router, http.MethodPost, "/v1/users/u1/money/alerts/"+alertID+"/dismiss", nil, nil); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec := do(router, http.MethodGet, "/v1/users/u1/money/alerts", nil, nil)
	var alerts []domain.Alert
	if err := json.NewDecoder(rec.Body).Decode(&alerts); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, a := range alerts {
		if a.ID == alertID {
			t.Errorf("dismissed alert %s still listed", alertID)
		}
	}
}

func TestUserAuth(t *testing.T) {
	const secret = "test-secret"
	router, _ := newTestRouter(t, secret)
	path := "/v1/users/u1/money/budgets"

	token := func(sub string) string {
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}).SignedString([]byte(secret))
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		return "Bearer " + s
	}

	tests := []struct {
		name   string
		header http.Header
		want   int
	}{
		{"missing token", nil, http.StatusUnauthorized},
		{"garbage token", http.Header{"Authorization": {"Bearer nope"}}, http.StatusUnauthorized},
		{"other user", http.Header{"Authorization": {token("u2")}}, http.StatusForbidden},
		{"owner", http.Header{"Authorization": {token("u1")}}, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rec := do(router, http.MethodGet, path, nil, tt.header); rec.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, rec.Code)
			}
		})
	}

	// operational routes stay open
	if rec := do(router, http.MethodGet, "/healthz", nil, nil); rec.Code != http.StatusOK {
		t.Errorf("healthz: expected 200, got %d", rec.Code)
	}
}

func TestUserAuth_ContextCarriesUser(t *testing.T) {
	r := chi.NewRouter()
	r.With(handler.UserAuthMiddleware(service.NewTokenVerifier(""), zap.NewNop())).
		Get("/users/{userId}", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(handler.UserIDFromContext(r.Context())))
		})

	rec := do(r, http.MethodGet, "/users/u42", nil, nil)
	if rec.Code != http.StatusOK || rec.Body.String() != "u42" {
		t.Errorf("expected u42 in context, got %d %q", rec.Code, rec.Body.String())
	}
}
