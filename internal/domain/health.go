package domain

// ============================================================
// Health & Metrics API Responses
// ============================================================

// HealthStatus is returned by GET /healthz.
type HealthStatus struct {
	Status   string          `json:"status"` // healthy, degraded, unhealthy
	Backend  string          `json:"backend"`
	Services []ServiceHealth `json:"services"`
}

// ServiceHealth represents the health of an individual dependency.
type ServiceHealth struct {
	Name        string `json:"name"`
	Status      string `json:"status"`
	LatencyMs   int64  `json:"latencyMs"`
	LastChecked string `json:"lastChecked"`
}

// ModuleMetrics is returned by GET /v1/metrics/money.
type ModuleMetrics struct {
	SummariesComputed     int64   `json:"summariesComputed"`
	CacheHitRate          float64 `json:"cacheHitRate"`
	Submissions           int64   `json:"submissions"`
	SubmissionFailureRate float64 `json:"submissionFailureRate"`
	ExternalErrors        int64   `json:"externalErrors"`
	AlertsDismissed       int64   `json:"alertsDismissed"`
	Period                string  `json:"period"`
}

// SuccessResponse wraps a successful mutation response.
type SuccessResponse struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}
