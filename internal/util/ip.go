// Package util holds small helpers shared by the delivery and usecase layers.
package util

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
)

// UnknownClientIP is used when no proxy header names the client.
const UnknownClientIP = "unknown"

// ClientIP returns the client address as reported by the fronting proxy:
// the first X-Forwarded-For entry, then X-Real-IP, then CF-Connecting-IP.
// All requests without any of them share the UnknownClientIP bucket.
func ClientIP(header http.Header) string {
	if forwarded := header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	if ip := strings.TrimSpace(header.Get("X-Real-IP")); ip != "" {
		return ip
	}

	if ip := strings.TrimSpace(header.Get("CF-Connecting-IP")); ip != "" {
		return ip
	}

	return UnknownClientIP
}

// HashIdentifier returns the first 16 hex characters of sha256(value). It
// keys rate limits and is the only form of the client IP that is stored.
func HashIdentifier(value string) string {
	sum := sha256.Sum256([]byte(value))

	return hex.EncodeToString(sum[:])[:16]
}
