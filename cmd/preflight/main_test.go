package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hamed0406/deephealth/internal/config"
	"github.com/hamed0406/deephealth/internal/probe"
)

func TestRun(t *testing.T) {
	cases := []struct {
		name     string
		cfg      config.Config
		wantCode int
		wantErr  []string
		wantOut  []string
	}{
		{
			name: "ip literal targets pass",
			cfg: config.Config{
				Addr:         ":8081",
				AnalyticsURL: "http://127.0.0.1:8000/health",
				MonitorURL:   "http://127.0.0.1:8080/health",
				APIURL:       "http://[::1]:3000/health",
			},
			wantCode: 0,
			wantOut:  []string{"✔ analytics-engine -> 127.0.0.1 (IP_LITERAL)", "✔ orchestrator-api -> ::1", "✔ preflight passed"},
		},
		{
			name: "invalid analytics url fails",
			cfg: config.Config{
				Addr:         ":8081",
				AnalyticsURL: "ftp://10.0.0.1/health",
				MonitorURL:   "http://127.0.0.1:8080/health",
				APIURL:       "http://127.0.0.1:3000/health",
			},
			wantCode: 1,
			wantErr:  []string{"✖ analytics-engine: invalid http(s) url"},
		},
		{
			name: "empty addr fails",
			cfg: config.Config{
				AnalyticsURL: "http://127.0.0.1:8000/health",
				MonitorURL:   "http://127.0.0.1:8080/health",
				APIURL:       "http://127.0.0.1:3000/health",
			},
			wantCode: 1,
			wantErr:  []string{"✖ ADDR is empty"},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(&stdout, &stderr, c.cfg)

			assert.Equal(t, c.wantCode, code)
			for _, s := range c.wantErr {
				assert.Contains(t, stderr.String(), s)
			}
			for _, s := range c.wantOut {
				assert.Contains(t, stdout.String(), s)
			}
			if c.wantCode != 0 {
				assert.NotContains(t, stdout.String(), "preflight passed")
			}
		})
	}
}

func TestRun_WarnsOnDefaultURL(t *testing.T) {
	cfg := config.Config{
		Addr:         ":8081",
		AnalyticsURL: "http://127.0.0.1:8000/health",
		MonitorURL:   "http://127.0.0.1:8080/health",
		APIURL:       config.DefaultAPIURL,
	}
	var stdout, stderr bytes.Buffer
	run(&stdout, &stderr, cfg)

	assert.Contains(t, stderr.String(), "⚠ API_URL is unset")
	assert.NotContains(t, stderr.String(), "ANALYTICS_URL")
}

func TestDNSDetail(t *testing.T) {
	assert.Equal(t, "", dnsDetail(probe.DNSStatus{Class: probe.DNSResolves}))
	assert.Equal(t,
		" cname=lb.internal ns=ns1.internal,ns2.internal err=no such host",
		dnsDetail(probe.DNSStatus{
			CNAME:         "lb.internal",
			Nameservers:   []string{"ns1.internal", "ns2.internal"},
			ResolverError: "no such host",
		}))
}
