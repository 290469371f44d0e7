// cmd/preflight/main.go
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/multierr"

	"github.com/hamed0406/deephealth/internal/config"
	"github.com/hamed0406/deephealth/internal/probe"
)

func main() {
	os.Exit(run(os.Stdout, os.Stderr, config.FromEnv()))
}

// run prints one ✔/⚠/✖ line per finding and returns the exit code:
// 1 on config errors, 0 otherwise. DNS failures only warn.
func run(stdout, stderr io.Writer, cfg config.Config) int {
	fail := func(msg string) { fmt.Fprintln(stderr, "✖", msg) }
	warn := func(msg string) { fmt.Fprintln(stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Fprintln(stdout, "✔", msg) }

	errs := multierr.Errors(cfg.Validate())
	for _, e := range errs {
		fail(e.Error())
	}

	defaults := map[string]string{
		"ANALYTICS_URL": config.DefaultAnalyticsURL,
		"MONITOR_URL":   config.DefaultMonitorURL,
		"API_URL":       config.DefaultAPIURL,
	}
	current := map[string]string{
		"ANALYTICS_URL": cfg.AnalyticsURL,
		"MONITOR_URL":   cfg.MonitorURL,
		"API_URL":       cfg.APIURL,
	}
	for _, key := range []string{"ANALYTICS_URL", "MONITOR_URL", "API_URL"} {
		if current[key] == defaults[key] {
			warn(key + " is unset; using the built-in internal default.")
		}
	}

	ctx := context.Background()
	for _, t := range cfg.Targets() {
		dns := probe.CheckDNS(ctx, probe.HostOf(t.URL))
		switch dns.Class {
		case probe.DNSResolves, probe.DNSLiteralIPAddr:
			ok(fmt.Sprintf("%s -> %s (%s)%s", t.Name, dns.Host, dns.Class, dnsDetail(dns)))
		default:
			// Not fatal: the host may only resolve inside the deployment network.
			warn(fmt.Sprintf("%s -> %s does not resolve here (%s)%s", t.Name, dns.Host, dns.Class, dnsDetail(dns)))
		}
	}

	if len(errs) > 0 {
		return 1
	}
	ok("preflight passed")
	return 0
}

// dnsDetail renders the alias, nameservers and resolver error when present.
func dnsDetail(s probe.DNSStatus) string {
	var parts []string
	if s.CNAME != "" {
		parts = append(parts, "cname="+s.CNAME)
	}
	if len(s.Nameservers) > 0 {
		parts = append(parts, "ns="+strings.Join(s.Nameservers, ","))
	}
	if s.ResolverError != "" {
		parts = append(parts, "err="+s.ResolverError)
	}
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, " ")
}
