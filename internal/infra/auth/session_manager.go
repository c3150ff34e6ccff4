package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"net/http"
	"time"

	"portfolio/config"
	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/service"
	"portfolio/internal/errors"

	"github.com/gorilla/sessions"
	"go.uber.org/fx"
)

// SessionManagerParams defines the dependencies of the session transport.
type SessionManagerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewSessionManager picks the cookie format configured in session.driver.
func NewSessionManager(params SessionManagerParams) (service.SessionManager, error) {
	cfg := params.Config.Session

	secret := cfg.Secret
	if secret == "" {
		generated, err := randomHex(32)
		if err != nil {
			return nil, err
		}
		secret = generated
		params.Logger.Warn("session secret not configured, sessions will not survive a restart")
	}

	switch cfg.Driver {
	case config.SessionDriverJWT, "":
		tokens, err := NewJWTService(secret, cfg.MaxAge)
		if err != nil {
			return nil, err
		}

		return NewJWTCookieSessionManager(tokens, cfg), nil
	case config.SessionDriverCookie:
		return NewGorillaSessionManager(secret, cfg), nil
	default:
		return nil, errors.Errorf("unsupported session driver %q", cfg.Driver)
	}
}

func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	return hex.EncodeToString(buf), nil
}

// jwtCookieSessionManager keeps a signed JWT in an HTTP-only cookie.
type jwtCookieSessionManager struct {
	tokens     service.TokenService
	cookieName string
	maxAge     time.Duration
	secure     bool
}

// NewJWTCookieSessionManager is the constructor for the default session transport.
func NewJWTCookieSessionManager(tokens service.TokenService, cfg *config.SessionConfig) service.SessionManager {
	return &jwtCookieSessionManager{
		tokens:     tokens,
		cookieName: cfg.CookieName,
		maxAge:     cfg.MaxAge,
		secure:     cfg.Secure,
	}
}

func (m *jwtCookieSessionManager) Issue(w http.ResponseWriter, _ *http.Request, session *entity.Session) error {
	token, err := m.tokens.GenerateSessionToken(session)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.maxAge / time.Second),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

func (m *jwtCookieSessionManager) Load(r *http.Request) (*entity.Session, error) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return nil, service.ErrNoSession
	}

	session, err := m.tokens.ValidateSessionToken(cookie.Value)
	if err != nil {
		return nil, errors.Join(service.ErrNoSession, err)
	}

	return session, nil
}

func (m *jwtCookieSessionManager) Revoke(w http.ResponseWriter, _ *http.Request) error {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// Keys of the gorilla session values.
const (
	sessionKeyID          = "id"
	sessionKeyName        = "name"
	sessionKeyEmail       = "email"
	sessionKeyFingerprint = "fp"
	sessionKeyIssuedAt    = "iat"
	sessionKeyExpiresAt   = "exp"
)

// gorillaSessionManager stores the session in a signed and encrypted
// securecookie through gorilla/sessions.
type gorillaSessionManager struct {
	store  *sessions.CookieStore
	name   string
	maxAge time.Duration
}

// NewGorillaSessionManager derives the hash and block keys from secret.
func NewGorillaSessionManager(secret string, cfg *config.SessionConfig) service.SessionManager {
	hashKey := sha256.Sum256([]byte("session-hash:" + secret))
	blockKey := sha256.Sum256([]byte("session-block:" + secret))

	store := sessions.NewCookieStore(hashKey[:], blockKey[:])
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.MaxAge / time.Second),
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	store.MaxAge(store.Options.MaxAge)

	return &gorillaSessionManager{store: store, name: cfg.CookieName, maxAge: cfg.MaxAge}
}

func (m *gorillaSessionManager) Issue(w http.ResponseWriter, r *http.Request, session *entity.Session) error {
	// A decode error only means the old cookie is unusable; Get still
	// returns a fresh session to fill.
	sess, _ := m.store.Get(r, m.name)

	issuedAt := session.IssuedAt
	if issuedAt.IsZero() {
		issuedAt = time.Now()
	}
	expiresAt := session.ExpiresAt
	if expiresAt.IsZero() {
		expiresAt = issuedAt.Add(m.maxAge)
	}

	sess.Values[sessionKeyID] = session.Principal.ID
	sess.Values[sessionKeyName] = session.Principal.Name
	sess.Values[sessionKeyEmail] = session.Principal.Email
	sess.Values[sessionKeyFingerprint] = session.Fingerprint
	sess.Values[sessionKeyIssuedAt] = issuedAt.Unix()
	sess.Values[sessionKeyExpiresAt] = expiresAt.Unix()

	if err := sess.Save(r, w); err != nil {
		return errors.Wrap(err, "failed to save session cookie")
	}

	return nil
}

func (m *gorillaSessionManager) Load(r *http.Request) (*entity.Session, error) {
	sess, err := m.store.Get(r, m.name)
	if err != nil || sess.IsNew {
		return nil, service.ErrNoSession
	}

	id, _ := sess.Values[sessionKeyID].(string)
	if id == "" {
		return nil, service.ErrNoSession
	}
	name, _ := sess.Values[sessionKeyName].(string)
	email, _ := sess.Values[sessionKeyEmail].(string)
	fingerprint, _ := sess.Values[sessionKeyFingerprint].(string)
	issuedAt, _ := sess.Values[sessionKeyIssuedAt].(int64)
	expiresAt, _ := sess.Values[sessionKeyExpiresAt].(int64)

	session := &entity.Session{
		Principal:   entity.Principal{ID: id, Name: name, Email: email},
		Fingerprint: fingerprint,
		IssuedAt:    time.Unix(issuedAt, 0),
		ExpiresAt:   time.Unix(expiresAt, 0),
	}
	if session.Expired(time.Now()) {
		return nil, service.ErrNoSession
	}

	return session, nil
}

func (m *gorillaSessionManager) Revoke(w http.ResponseWriter, r *http.Request) error {
	sess, _ := m.store.Get(r, m.name)
	sess.Values = map[any]any{}
	sess.Options.MaxAge = -1

	if err := sess.Save(r, w); err != nil {
		return errors.Wrap(err, "failed to clear session cookie")
	}

	return nil
}
