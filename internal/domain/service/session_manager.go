package service

import (
	"net/http"

	"portfolio/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrNoSession is returned when the request carries no usable session.
var ErrNoSession = errors.New("no session")

// SessionManager carries sessions between requests, usually in a cookie.
type SessionManager interface {
	// Issue attaches session to the response.
	Issue(w http.ResponseWriter, r *http.Request, session *entity.Session) error

	// Load returns the session of the request or ErrNoSession.
	Load(r *http.Request) (*entity.Session, error)

	// Revoke clears the session on the client.
	Revoke(w http.ResponseWriter, r *http.Request) error
}
