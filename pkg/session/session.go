// Package session implements the two independent cookie-backed identity
// scopes (end user, admin). Each scope is an HS256-signed JWT in its own
// cookie, so clearing one never touches the other.
package session

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Scope string

const (
	ScopeUser  Scope = "user"
	ScopeAdmin Scope = "admin"
)

const (
	UserCookie  = "paaksathi_user"
	AdminCookie = "paaksathi_admin"
)

// LoginTimeLayout matches the login_time string kept in the original session.
const LoginTimeLayout = "2006-01-02 15:04:05"

type UserIdentity struct {
	ID        uint   `json:"uid"`
	Name      string `json:"name"`
	Mobile    string `json:"mobile"`
	Email     string `json:"email,omitempty"`
	LoginTime string `json:"login_time"`
}

type AdminIdentity struct {
	ID        uint   `json:"aid"`
	Username  string `json:"username"`
	LoginTime string `json:"login_time"`
}

type userClaims struct {
	UserIdentity
	jwt.RegisteredClaims
}

type adminClaims struct {
	AdminIdentity
	jwt.RegisteredClaims
}

var ErrNoSession = errors.New("session: no valid session")

type Manager struct {
	secret []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

func NewManager(secret string, ttl time.Duration, secure bool) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl, secure: secure, now: time.Now}
}

func (m *Manager) registered(scope Scope, subject uint) jwt.RegisteredClaims {
	now := m.now()
	return jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   strconv.FormatUint(uint64(subject), 10),
		Audience:  jwt.ClaimStrings{string(scope)},
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
}

func (m *Manager) sign(claims jwt.Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *Manager) parse(raw string, scope Scope, claims jwt.Claims) error {
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(string(scope)),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNoSession, err)
	}
	return nil
}

func (m *Manager) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// IssueUser stamps the login time and returns the cookie for the user scope.
func (m *Manager) IssueUser(id UserIdentity) (*http.Cookie, UserIdentity, error) {
	id.LoginTime = m.now().Format(LoginTimeLayout)
	tok, err := m.sign(userClaims{UserIdentity: id, RegisteredClaims: m.registered(ScopeUser, id.ID)})
	if err != nil {
		return nil, id, fmt.Errorf("sign user session: %w", err)
	}
	return m.cookie(UserCookie, tok, int(m.ttl.Seconds())), id, nil
}

func (m *Manager) IssueAdmin(id AdminIdentity) (*http.Cookie, AdminIdentity, error) {
	id.LoginTime = m.now().Format(LoginTimeLayout)
	tok, err := m.sign(adminClaims{AdminIdentity: id, RegisteredClaims: m.registered(ScopeAdmin, id.ID)})
	if err != nil {
		return nil, id, fmt.Errorf("sign admin session: %w", err)
	}
	return m.cookie(AdminCookie, tok, int(m.ttl.Seconds())), id, nil
}

func (m *Manager) ParseUser(raw string) (*UserIdentity, error) {
	var c userClaims
	if err := m.parse(raw, ScopeUser, &c); err != nil {
		return nil, err
	}
	return &c.UserIdentity, nil
}

func (m *Manager) ParseAdmin(raw string) (*AdminIdentity, error) {
	var c adminClaims
	if err := m.parse(raw, ScopeAdmin, &c); err != nil {
		return nil, err
	}
	return &c.AdminIdentity, nil
}

// Clear returns an expiring cookie for the given scope.
func (m *Manager) Clear(scope Scope) *http.Cookie {
	name := UserCookie
	if scope == ScopeAdmin {
		name = AdminCookie
	}
	return m.cookie(name, "", -1)
}
