package probe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHostOf(t *testing.T) {
	cases := []struct{ in, want string }{
		{"https://analytics:8000/health", "analytics"},
		{"http://10.0.0.5/health", "10.0.0.5"},
		{"monitor", "monitor"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, HostOf(c.in), c.in)
	}
}

func TestCheckDNS_NoNetworkCases(t *testing.T) {
	assert.Equal(t, DNSInvalidName, CheckDNS(context.Background(), "").Class)
	assert.Equal(t, DNSInvalidName, CheckDNS(context.Background(), "https://x").Class)

	s := CheckDNS(context.Background(), "127.0.0.1")
	assert.Equal(t, DNSLiteralIPAddr, s.Class)
	assert.Len(t, s.IPs, 1)
}

func TestCheckDNS_InvalidTLDDoesNotResolve(t *testing.T) {
	if testing.Short() {
		t.Skip("uses the system resolver")
	}
	// .invalid is reserved and never resolves; without a reachable
	// resolver the lookup classifies as SERVFAIL_or_TIMEOUT instead.
	s := CheckDNS(context.Background(), "deephealth-check.invalid")

	assert.Contains(t, []string{DNSNXDomain, DNSServFail}, s.Class)
	assert.Empty(t, s.IPs)
	assert.NotEmpty(t, s.ResolverError)
}
