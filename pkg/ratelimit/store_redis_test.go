package ratelimit

import (
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestWindowMemberUniquePerRequest(t *testing.T) {
	// 同一マイクロ秒の2リクエストが同じメンバーに潰れてはいけない
	now := time.UnixMicro(1700000000000000)

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		m := windowMember(now)
		if _, dup := seen[m]; dup {
			t.Fatalf("duplicate member %q", m)
		}
		seen[m] = struct{}{}
	}
}

func TestWindowMemberCarriesTimestamp(t *testing.T) {
	now := time.UnixMicro(1700000000000000)

	m := windowMember(now)
	prefix, _, ok := strings.Cut(m, "-")
	if !ok {
		t.Fatalf("member %q has no nonce separator", m)
	}
	micros, err := strconv.ParseInt(prefix, 10, 64)
	if err != nil {
		t.Fatalf("member prefix %q is not a timestamp: %v", prefix, err)
	}
	if micros != now.UnixMicro() {
		t.Errorf("member timestamp = %d, want %d", micros, now.UnixMicro())
	}
}
