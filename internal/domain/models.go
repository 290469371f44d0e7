package domain

// Target is one downstream service polled by the deep health check.
type Target struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// CheckResult is the outcome of probing a single target.
type CheckResult struct {
	Service   string `json:"service"`
	Status    string `json:"status"`
	LatencyMS int64  `json:"latency_ms"`
}

// Report is the payload served by /health/deep.
// Checks are listed in target order, never completion order.
type Report struct {
	OverallStatus string        `json:"overall_status"`
	Checks        []CheckResult `json:"checks"`
	Timestamp     string        `json:"timestamp"`
}
