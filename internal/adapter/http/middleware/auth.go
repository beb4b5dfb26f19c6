package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/kaosom/zipquote/pkg"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

const (
	userIDKey     = "user_id"
	defaultSecret = "zipquote-dev-secret"
)

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrMissingJWTSecret = errors.New("JWT_SECRET is not set")
)

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid bearer token", http.StatusUnauthorized)

// Claims identifies the caller; the subject is the account id.
type Claims struct {
	jwt.StandardClaims
}

// JWTAuth signs and validates HS256 bearer tokens.
type JWTAuth struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTAuthFromEnv reads JWT_SECRET and TOKEN_HOUR_LIFESPAN (default 24h).
// A missing secret is an error unless JWT_ALLOW_DEV_SECRET=true, which signs
// with a fixed development secret.
func NewJWTAuthFromEnv() (*JWTAuth, error) {
	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		allowDev, _ := strconv.ParseBool(strings.TrimSpace(os.Getenv("JWT_ALLOW_DEV_SECRET")))
		if !allowDev {
			return nil, ErrMissingJWTSecret
		}
		secret = defaultSecret
	}
	ttl := 24 * time.Hour
	if v := strings.TrimSpace(os.Getenv("TOKEN_HOUR_LIFESPAN")); v != "" {
		if d, err := time.ParseDuration(v + "h"); err == nil && d > 0 {
			ttl = d
		}
	}
	return NewJWTAuth(secret, ttl), nil
}

func NewJWTAuth(secret string, ttl time.Duration) *JWTAuth {
	return &JWTAuth{secret: []byte(secret), ttl: ttl}
}

func (a *JWTAuth) Generate(userID string) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		StandardClaims: jwt.StandardClaims{
			Subject:   userID,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(a.ttl).Unix(),
		},
	})
	return t.SignedString(a.secret)
}

// Validate returns the account id carried by a signed token.
func (a *JWTAuth) Validate(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || strings.TrimSpace(claims.Subject) == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// Middleware rejects requests without a valid bearer token and stores the
// account id in the gin context.
func (a *JWTAuth) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		userID, err := a.Validate(strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated account id, or "" outside the middleware.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

// SetUserID is used by tests and internal callers that authenticate elsewhere.
func SetUserID(c *gin.Context, userID string) {
	c.Set(userIDKey, userID)
}
