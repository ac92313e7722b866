package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/jaybhuva31/Paaksathi-AI/pkg/session"
)

const identityKey = "identity"

// Identity is the per-request view of both session scopes. Either may be nil.
type Identity struct {
	User  *session.UserIdentity
	Admin *session.AdminIdentity
}

// UserID returns the user id or nil for anonymous requests.
func (i *Identity) UserID() *uint {
	if i == nil || i.User == nil {
		return nil
	}
	id := i.User.ID
	return &id
}

// Sessions decodes the user and admin cookies into an Identity on the
// context. Invalid or expired cookies are treated as absent.
func Sessions(m *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := &Identity{}
			if ck, err := c.Cookie(session.UserCookie); err == nil && ck.Value != "" {
				if u, err := m.ParseUser(ck.Value); err == nil {
					id.User = u
				}
			}
			if ck, err := c.Cookie(session.AdminCookie); err == nil && ck.Value != "" {
				if a, err := m.ParseAdmin(ck.Value); err == nil {
					id.Admin = a
				}
			}
			c.Set(identityKey, id)
			return next(c)
		}
	}
}

// IdentityOf never returns nil.
func IdentityOf(c echo.Context) *Identity {
	if id, ok := c.Get(identityKey).(*Identity); ok && id != nil {
		return id
	}
	return &Identity{}
}
