// Package auth implements JWT-based session tokens for the admin panel and
// judge scoring panel. Tokens travel in an HttpOnly cookie with an
// Authorization bearer header fallback for non-browser clients.
package auth

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/mcasfest/fest-api/internal/domain/entity"
	apperrors "github.com/mcasfest/fest-api/internal/pkg/errors"
)

// AccessTokenCookie is the cookie carrying the signed JWT.
const AccessTokenCookie = "access_token"

// Claims are the JWT claims issued at login.
type Claims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService signs and verifies session tokens.
type JWTService struct {
	secret     []byte
	expiry     time.Duration
	production bool
}

// NewJWTService creates a new JWT service. expirationHrs bounds the session
// lifetime; production controls the Secure cookie attribute.
func NewJWTService(secret string, expirationHrs int, production bool) (*JWTService, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	if expirationHrs <= 0 {
		expirationHrs = 24
	}
	return &JWTService{
		secret:     []byte(secret),
		expiry:     time.Duration(expirationHrs) * time.Hour,
		production: production,
	}, nil
}

// GenerateToken issues a signed token for a user.
func (s *JWTService) GenerateToken(user *entity.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies a token string and returns its claims.
func (s *JWTService) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUnauthorized, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrUnauthorized
	}
	return claims, nil
}

// TokenFromRequest extracts the token from the access cookie, falling back
// to the Authorization header (Bearer {token}).
func (s *JWTService) TokenFromRequest(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(AccessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", apperrors.ErrUnauthorized
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", fmt.Errorf("%w: authorization header format must be Bearer {token}", apperrors.ErrUnauthorized)
	}
	return parts[1], nil
}

// SetAuthCookie writes the access token cookie. SameSite=Lax works for the
// admin panel served from the same site; production additionally sets
// Secure.
func (s *JWTService) SetAuthCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     AccessTokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.expiry.Seconds()),
		HttpOnly: true,
		Secure:   s.production,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearAuthCookie expires the access token cookie.
func (s *JWTService) ClearAuthCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     AccessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.production,
		SameSite: http.SameSiteLaxMode,
	})
}
