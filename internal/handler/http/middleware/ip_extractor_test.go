package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/netip"
	"testing"
)

func requestFrom(remoteAddr string, headers map[string]string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = remoteAddr
	for k, v := range headers {
		r.Header.Set(k, v)
	}
	return r
}

/* ───────────────────────── RemoteAddrExtractor ───────────────────────── */

func TestRemoteAddrExtractor(t *testing.T) {
	cases := []struct {
		name       string
		remoteAddr string
		want       string
		wantErr    bool
	}{
		{"ipv4 with port", "192.168.1.1:54321", "192.168.1.1", false},
		{"ipv6 with port", "[2001:db8::1]:8080", "2001:db8::1", false},
		{"ipv4 without port", "127.0.0.1", "127.0.0.1", false},
		{"garbage", "not-an-address", "", true},
	}

	e := &RemoteAddrExtractor{}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := e.ExtractIP(requestFrom(tc.remoteAddr, nil))
			if tc.wantErr != (err != nil) {
				t.Fatalf("err=%v, wantErr=%v", err, tc.wantErr)
			}
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRemoteAddrExtractor_IgnoresHeaders(t *testing.T) {
	e := &RemoteAddrExtractor{}
	r := requestFrom("10.0.0.5:1234", map[string]string{
		"X-Forwarded-For": "1.2.3.4",
		"X-Real-IP":       "5.6.7.8",
	})

	got, err := e.ExtractIP(r)
	if err != nil || got != "10.0.0.5" {
		t.Fatalf("got %q err=%v, headers must be ignored", got, err)
	}
}

/* ───────────────────────── TrustedProxyConfig ───────────────────────── */

func TestLoadTrustedProxyConfig(t *testing.T) {
	cases := []struct {
		name      string
		trust     string
		proxies   string
		wantErr   bool
		wantCIDRs int
	}{
		{"disabled", "", "", false, 0},
		{"disabled ignores list", "false", "10.0.0.0/8", false, 0},
		{"enabled with cidrs", "true", "10.0.0.0/8,172.16.0.0/12", false, 2},
		{"enabled with single ip", "true", "192.168.1.1", false, 1},
		{"enabled with ipv6", "true", "2001:db8::/32", false, 1},
		{"enabled empty list", "true", "", true, 0},
		{"enabled invalid entry", "true", "not-an-ip", true, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("RATE_LIMIT_TRUST_PROXY", tc.trust)
			t.Setenv("RATE_LIMIT_TRUSTED_PROXIES", tc.proxies)

			cfg, err := LoadTrustedProxyConfig()
			if tc.wantErr {
				if err == nil {
					t.Fatal("want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("err=%v", err)
			}
			if len(cfg.AllowedCIDRs) != tc.wantCIDRs {
				t.Fatalf("cidrs=%d, want %d", len(cfg.AllowedCIDRs), tc.wantCIDRs)
			}
		})
	}
}

func TestLoadTrustedProxyConfig_SingleIPBecomesHostPrefix(t *testing.T) {
	t.Setenv("RATE_LIMIT_TRUST_PROXY", "true")
	t.Setenv("RATE_LIMIT_TRUSTED_PROXIES", "192.168.1.1")

	cfg, err := LoadTrustedProxyConfig()
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if got := cfg.AllowedCIDRs[0].String(); got != "192.168.1.1/32" {
		t.Fatalf("prefix=%s, want /32", got)
	}
}

func TestTrustedProxyConfig_IsTrusted(t *testing.T) {
	cfg := TrustedProxyConfig{
		Enabled:      true,
		AllowedCIDRs: []netip.Prefix{netip.MustParsePrefix("10.0.0.0/8")},
	}

	if !cfg.IsTrusted("10.1.2.3:443") {
		t.Fatal("10.1.2.3 should be trusted")
	}
	if cfg.IsTrusted("192.168.1.1:443") {
		t.Fatal("192.168.1.1 should not be trusted")
	}
	if cfg.IsTrusted("garbage") {
		t.Fatal("unparseable address should not be trusted")
	}
}

/* ───────────────────────── TrustedProxyExtractor ───────────────────────── */

func trustedExtractor(cidrs ...string) *TrustedProxyExtractor {
	cfg := TrustedProxyConfig{Enabled: true}
	for _, c := range cidrs {
		cfg.AllowedCIDRs = append(cfg.AllowedCIDRs, netip.MustParsePrefix(c))
	}
	return NewTrustedProxyExtractor(cfg)
}

func TestTrustedProxyExtractor_TrustedPeerUsesXFF(t *testing.T) {
	e := trustedExtractor("10.0.0.0/8")
	r := requestFrom("10.0.0.1:443", map[string]string{
		"X-Forwarded-For": "203.0.113.7, 10.0.0.1",
	})

	got, err := e.ExtractIP(r)
	if err != nil || got != "203.0.113.7" {
		t.Fatalf("got %q err=%v, want first XFF hop", got, err)
	}
}

func TestTrustedProxyExtractor_TrustedPeerFallsBackToRealIP(t *testing.T) {
	e := trustedExtractor("10.0.0.0/8")
	r := requestFrom("10.0.0.1:443", map[string]string{
		"X-Real-IP": "203.0.113.9",
	})

	got, err := e.ExtractIP(r)
	if err != nil || got != "203.0.113.9" {
		t.Fatalf("got %q err=%v", got, err)
	}
}

func TestTrustedProxyExtractor_UntrustedPeerHeadersIgnored(t *testing.T) {
	e := trustedExtractor("10.0.0.0/8")
	r := requestFrom("198.51.100.4:443", map[string]string{
		"X-Forwarded-For": "203.0.113.7",
	})

	got, err := e.ExtractIP(r)
	if err != nil || got != "198.51.100.4" {
		t.Fatalf("got %q err=%v, spoofed header must be ignored", got, err)
	}
}

func TestTrustedProxyExtractor_InvalidXFFFallsThrough(t *testing.T) {
	e := trustedExtractor("10.0.0.0/8")
	r := requestFrom("10.0.0.1:443", map[string]string{
		"X-Forwarded-For": "not-an-ip, 10.0.0.1",
	})

	got, err := e.ExtractIP(r)
	if err != nil || got != "10.0.0.1" {
		t.Fatalf("got %q err=%v, want RemoteAddr fallback", got, err)
	}
}

func TestTrustedProxyExtractor_DisabledUsesRemoteAddr(t *testing.T) {
	e := NewTrustedProxyExtractor(TrustedProxyConfig{Enabled: false})
	r := requestFrom("198.51.100.4:443", map[string]string{
		"X-Forwarded-For": "203.0.113.7",
	})

	got, err := e.ExtractIP(r)
	if err != nil || got != "198.51.100.4" {
		t.Fatalf("got %q err=%v", got, err)
	}
}
