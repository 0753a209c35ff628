// Package session keeps the authenticated user's bearer token and role
// across page loads. The backend owns the account; the portal only holds the
// credential the backend issued, packed into a signed cookie so a reload (or
// a new browser tab) still finds it.
package session

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type Session struct {
	Token  string
	Role   string
	UserID string
	Name   string
	Email  string
}

// IsAuthenticated is true iff a backend token is present.
func (s Session) IsAuthenticated() bool {
	return s.Token != ""
}

// Store is injected into handlers and middleware, so tests can substitute a
// double without a real cookie round trip.
type Store interface {
	Login(c *gin.Context, s Session) error
	Logout(c *gin.Context)
	Current(c *gin.Context) (Session, bool)
}

type cookieClaims struct {
	Token  string `json:"token"`
	Role   string `json:"role"`
	UserID string `json:"user_id,omitempty"`
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// CookieStore signs the session into an HS256 JWT cookie. The upstream token
// inside stays opaque; its expiry is discovered reactively when the backend
// answers 401, not here.
type CookieStore struct {
	secret     []byte
	cookieName string
	secure     bool
	ttl        time.Duration
}

func NewCookieStore(secret, cookieName string, secure bool) *CookieStore {
	return &CookieStore{
		secret:     []byte(secret),
		cookieName: cookieName,
		secure:     secure,
		ttl:        24 * time.Hour,
	}
}

func (cs *CookieStore) Login(c *gin.Context, s Session) error {
	claims := cookieClaims{
		Token:  s.Token,
		Role:   s.Role,
		UserID: s.UserID,
		Name:   s.Name,
		Email:  s.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(cs.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(cs.secret)
	if err != nil {
		return err
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cs.cookieName, signed, int(cs.ttl.Seconds()), "/", "", cs.secure, true)
	return nil
}

// Logout overwrites the cookie with an expired one. Calling it twice is fine.
func (cs *CookieStore) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cs.cookieName, "", -1, "/", "", cs.secure, true)
}

func (cs *CookieStore) Current(c *gin.Context) (Session, bool) {
	raw, err := c.Cookie(cs.cookieName)
	if err != nil || raw == "" {
		return Session{}, false
	}

	claims := &cookieClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return cs.secret, nil
	})
	if err != nil || !token.Valid || claims.Token == "" {
		return Session{}, false
	}

	return Session{
		Token:  claims.Token,
		Role:   claims.Role,
		UserID: claims.UserID,
		Name:   claims.Name,
		Email:  claims.Email,
	}, true
}
