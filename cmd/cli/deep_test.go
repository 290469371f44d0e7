package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamed0406/deephealth/internal/domain"
)

const degradedBody = `{"overall_status":"degraded","checks":[` +
	`{"service":"analytics-engine","status":"healthy","latency_ms":4},` +
	`{"service":"resource-monitor","status":"timeout","latency_ms":5001}],` +
	`"timestamp":"2025-08-18T12:00:00Z"}`

func serve(t *testing.T, body string) *httptest.Server {
	t.Helper()
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health/deep", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(s.Close)
	return s
}

func run(args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDeep_DegradedFailsByDefault(t *testing.T) {
	s := serve(t, degradedBody)

	out, err := run("deep", "--api", s.URL+"/")

	require.Error(t, err)
	assert.Contains(t, out, "resource-monitor")
	assert.Contains(t, out, "5001ms")
}

func TestDeep_AllowDegraded(t *testing.T) {
	s := serve(t, degradedBody)

	_, err := run("deep", "--api", s.URL, "--allow-degraded", "--json")

	assert.NoError(t, err)
}

func TestVerdict(t *testing.T) {
	assert.NoError(t, verdict(domain.Report{OverallStatus: domain.OverallHealthy}, false))
	assert.Error(t, verdict(domain.Report{OverallStatus: domain.OverallDegraded}, false))
	assert.NoError(t, verdict(domain.Report{OverallStatus: domain.OverallDegraded}, true))
	assert.Error(t, verdict(domain.Report{OverallStatus: domain.OverallUnhealthy}, true))
}
