// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"crypto/sha256"
	"encoding/hex"
)

// Credentials is the single admin identity. Exactly one record is active at a time.
type Credentials struct {
	Username     string `json:"username"`     // Login name, compared case-sensitively.
	PasswordHash string `json:"passwordHash"` // bcrypt hash of the admin password.
}

// IsConfigured reports whether both fields are present.
func (c Credentials) IsConfigured() bool {
	return c.Username != "" && c.PasswordHash != ""
}

// Fingerprint identifies this credential pair without exposing it. Sessions
// carry the fingerprint of the credentials they were issued for, so changing
// either the username or the password invalidates them.
func (c Credentials) Fingerprint() string {
	sum := sha256.Sum256([]byte(c.Username + "\x00" + c.PasswordHash))

	return hex.EncodeToString(sum[:16])
}
