package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/boddenberg/money-bfa-go/internal/infra/observability"
	"github.com/boddenberg/money-bfa-go/internal/service"
)

var tracer = otel.Tracer("handler")

// NewRouter creates the HTTP router with all routes and middleware.
func NewRouter(svc *service.MoneyService, verifier *service.TokenVerifier, metrics *observability.Metrics, allowedOrigins []string, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// --- Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.ZapLoggerMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "If-None-Match"},
		ExposedHeaders:   []string{"ETag", "X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           int((10 * time.Minute).Seconds()),
	}))

	// --- Operational endpoints ---
	r.Get("/healthz", healthzHandler(svc))
	r.Get("/readyz", readyzHandler(svc))
	r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	// --- API v1 ---
	r.Route("/v1", func(r chi.Router) {
		r.Get("/metrics/money", moneyMetricsHandler(metrics))

		r.Route("/users/{userId}/money", func(r chi.Router) {
			r.Use(UserAuthMiddleware(verifier, logger))

			r.Get("/dashboard", dashboardHandler(svc, logger))

			r.Get("/accounts", accountsHandler(svc, logger))
			r.Post("/accounts", submitAccountHandler(svc, logger))

			r.Get("/budgets", budgetsHandler(svc, logger))
			r.Get("/cards", cardsHandler(svc, logger))

			r.Get("/purchases", purchasesHandler(svc, logger))
			r.Post("/purchases", submitPurchaseHandler(svc, logger))

			r.Get("/subscriptions", subscriptionsHandler(svc, logger))
			r.Delete("/subscriptions/{subscriptionId}", deleteSubscriptionHandler(svc, logger))

			r.Get("/debts", debtsHandler(svc, logger))
			r.Get("/investments", investmentsHandler(svc, logger))
			r.Get("/patrimony", patrimonyHandler(svc, logger))

			r.Get("/goals", goalsHandler(svc, logger))
			r.Post("/goals", submitGoalHandler(svc, logger))

			r.Get("/reports", reportHandler(svc, logger))

			r.Get("/alerts", alertsHandler(svc, logger))
			r.Post("/alerts/{alertId}/dismiss", dismissAlertHandler(svc, logger))
		})
	})

	return r
}

// ============================================================
// Operational
// ============================================================

func healthzHandler(svc *service.MoneyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Health(r.Context()))
	}
}

// readyzHandler fails while the data provider is unreachable so the
// instance is taken out of rotation.
func readyzHandler(svc *service.MoneyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := svc.Health(r.Context())
		if h.Status != "healthy" {
			writeJSON(w, http.StatusServiceUnavailable, h)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready", "backend": h.Backend})
	}
}

func moneyMetricsHandler(metrics *observability.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, metrics.Snapshot())
	}
}
