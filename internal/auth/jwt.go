package auth

import (
	"strings"

	"github.com/golang-jwt/jwt/v4"

	"github.com/primaaawdn/LinkedOn-GC01/internal/models"
)

// Identity is the authenticated caller decoded from a bearer token
type Identity struct {
	UserID   string
	Username string
}

// Claims are custom claims extending standard jwt.RegisteredClaims
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies bearer tokens. Tokens carry the
// user's id and username and, matching the rest of the system, no
// expiry claim.
type TokenManager struct {
	secret []byte
}

// NewTokenManager creates a TokenManager signing with secret
func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret)}
}

// Sign issues a signed token for the given user
func (m *TokenManager) Sign(user *models.User) (string, error) {
	claims := Claims{
		UserID:   user.ID.Hex(),
		Username: user.Username,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse verifies a token string and decodes the caller's identity.
// Any verification failure maps to ErrInvalidCredential.
func (m *TokenManager) Parse(tokenString string) (Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, models.ErrInvalidCredential
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, models.ErrInvalidCredential
	}
	return Identity{UserID: claims.UserID, Username: claims.Username}, nil
}

// Authenticate extracts and verifies the bearer credential from an
// authorization header value. An absent header is Unauthorized; a
// malformed or unverifiable token is InvalidCredential.
func (m *TokenManager) Authenticate(authHeader string) (Identity, error) {
	if authHeader == "" {
		return Identity{}, models.ErrUnauthorized
	}

	// Expecting "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return Identity{}, models.ErrInvalidCredential
	}
	return m.Parse(parts[1])
}
