package domain

// Per-check statuses. Anything that is not exactly StatusHealthy counts
// against the overall verdict.
const (
	StatusHealthy = "healthy"
	StatusTimeout = "timeout"
)

const (
	OverallHealthy   = "healthy"
	OverallDegraded  = "degraded"
	OverallUnhealthy = "unhealthy"
)

// Unhealthy formats the status of a target that answered outside 2xx.
// httpStatus is taken verbatim from the response, e.g. "503 Service Unavailable".
func Unhealthy(httpStatus string) string {
	return "unhealthy: " + httpStatus
}

// Errored formats the status of a target whose request failed before the deadline.
func Errored(err error) string {
	return "error: " + err.Error()
}

// IsHealthy reports whether the check passed.
func (c CheckResult) IsHealthy() bool {
	return c.Status == StatusHealthy
}

// Overall folds per-check statuses into one verdict: healthy when every
// check is healthy, degraded when at least one is, unhealthy otherwise.
func Overall(checks []CheckResult) string {
	healthy := 0
	for _, c := range checks {
		if c.IsHealthy() {
			healthy++
		}
	}
	switch {
	case healthy == len(checks):
		return OverallHealthy
	case healthy > 0:
		return OverallDegraded
	default:
		return OverallUnhealthy
	}
}
