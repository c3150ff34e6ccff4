package entity

import "time"

// Principal is the authenticated identity handed to the admin area.
type Principal struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AdminPrincipal returns the fixed identity of the site owner.
func AdminPrincipal() Principal {
	return Principal{
		ID:    "1",
		Name:  "Admin",
		Email: "admin@example.com",
	}
}

// Session binds a principal to the credentials it was issued for.
type Session struct {
	Principal   Principal // Who is logged in.
	Fingerprint string    // Credentials.Fingerprint at issue time.
	IssuedAt    time.Time // When the login succeeded.
	ExpiresAt   time.Time // Hard expiry, independent of the cookie lifetime.
}

// Expired reports whether the session is past its expiry at now.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
