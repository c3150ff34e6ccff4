package context

import (
	"portfolio/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeySession is the key for storing the loaded admin session in echo.Context.
const KeySession ContextKey = "session"

// SetSession stores the session that authorized the request.
func SetSession(c echo.Context, session *entity.Session) {
	c.Set(string(KeySession), session)
}

// GetSession returns the session stored by the guard middleware.
func GetSession(c echo.Context) (*entity.Session, bool) {
	session, ok := c.Get(string(KeySession)).(*entity.Session)

	return session, ok && session != nil
}
