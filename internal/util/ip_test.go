package util

import (
	"net/http"
	"testing"
)

func TestClientIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		headers  map[string]string
		expected string
	}{
		{name: "first forwarded entry", headers: map[string]string{"X-Forwarded-For": " 203.0.113.7 , 10.0.0.1"}, expected: "203.0.113.7"},
		{name: "forwarded wins over real ip", headers: map[string]string{"X-Forwarded-For": "203.0.113.7", "X-Real-IP": "198.51.100.1"}, expected: "203.0.113.7"},
		{name: "real ip", headers: map[string]string{"X-Real-IP": "198.51.100.1", "CF-Connecting-IP": "192.0.2.9"}, expected: "198.51.100.1"},
		{name: "cloudflare", headers: map[string]string{"CF-Connecting-IP": "192.0.2.9"}, expected: "192.0.2.9"},
		{name: "blank forwarded falls through", headers: map[string]string{"X-Forwarded-For": " , 10.0.0.1", "X-Real-IP": "198.51.100.1"}, expected: "198.51.100.1"},
		{name: "no headers", headers: nil, expected: UnknownClientIP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			header := http.Header{}
			for k, v := range tt.headers {
				header.Set(k, v)
			}

			if got := ClientIP(header); got != tt.expected {
				t.Fatalf("ClientIP() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestHashIdentifier(t *testing.T) {
	t.Parallel()

	// sha256("127.0.0.1") = 12ca17b49af2289436f303e0166030a21e525d266e209267433801a8fd4071a0
	if got := HashIdentifier("127.0.0.1"); got != "12ca17b49af22894" {
		t.Fatalf("HashIdentifier() = %q", got)
	}

	if HashIdentifier("a") == HashIdentifier("b") {
		t.Fatal("different inputs must not collide")
	}

	if got := len(HashIdentifier(UnknownClientIP)); got != 16 {
		t.Fatalf("len = %d, want 16", got)
	}
}
