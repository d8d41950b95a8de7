package service

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/spicekitchen/backend/internal/hash"
)

var ErrInvalidPassword = errors.New("invalid password")

// Credentials is the single staff gate. It is an interface so the comparison
// backend can be swapped without touching the login call sites.
type Credentials interface {
	Check(password string) bool
}

// BcryptCredentials compares against an externally configured bcrypt hash.
type BcryptCredentials struct {
	Hash string
}

func (b BcryptCredentials) Check(password string) bool {
	return hash.CheckPassword(b.Hash, password)
}

type TokenService struct {
	Credentials Credentials
	JWTSecret   []byte
	TTL         time.Duration
}

// Login checks the shared staff password and issues a short-lived access
// token on success.
func (t *TokenService) Login(password string) (string, error) {
	if t.Credentials == nil || !t.Credentials.Check(password) {
		return "", ErrInvalidPassword
	}
	return t.signStaffToken()
}

func (t *TokenService) signStaffToken() (string, error) {
	ttl := t.TTL
	if ttl == 0 {
		ttl = 12 * time.Hour
	}
	claims := jwt.MapClaims{
		"role": "staff",
		"exp":  time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.JWTSecret)
}

// RequireStaff guards the mutating catalog routes. It expects a bearer token
// issued by Login.
func (t *TokenService) RequireStaff(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := bearerToken(c)
		if raw == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "staff token missing")
		}

		token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signature method: %v", token.Header["alg"])
			}
			return t.JWTSecret, nil
		})
		if err != nil || !token.Valid {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid staff token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || claims["role"] != "staff" {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid staff token")
		}

		c.Set("role", "staff")
		return next(c)
	}
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
