package services

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// TokenService mints and verifies the bearer tokens carried on every
// authenticated request. Stateless; the secret is process-wide configuration.
type TokenService struct {
	Secret    []byte
	Issuer    string
	AccessTTL time.Duration
}

func (t TokenService) HashPassword(raw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcryptCost)
	return string(hash), err
}

func (t TokenService) VerifyPassword(raw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(raw)) == nil
}

func (t TokenService) CreateAccessToken(userID int64, username string) (string, int64, error) {
	now := time.Now().UTC()
	exp := now.Add(t.AccessTTL)
	claims := jwt.MapClaims{
		"iss":      t.Issuer,
		"typ":      "access",
		"userId":   userID,
		"username": username,
		"iat":      now.Unix(),
		"exp":      exp.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.Secret)
	return signed, exp.Unix(), err
}

func (t TokenService) ParseToken(tokenStr string) (*jwt.Token, jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return t.Secret, nil
	}, jwt.WithIssuer(t.Issuer), jwt.WithValidMethods([]string{"HS256"}))
	return token, claims, err
}

// Authenticate verifies a raw bearer token and returns the identity it
// carries. A missing token is a 401, anything unverifiable a 403; both
// surface as ServiceError so transports share one mapping.
func (t TokenService) Authenticate(tokenStr string) (Identity, error) {
	if strings.TrimSpace(tokenStr) == "" {
		return Identity{}, ErrUnauthorized("Access token required")
	}
	token, claims, err := t.ParseToken(tokenStr)
	if err != nil || !token.Valid || claims["typ"] != "access" {
		return Identity{}, ErrForbidden("Invalid token")
	}
	identity, ok := IdentityFromClaims(claims)
	if !ok {
		return Identity{}, ErrForbidden("Invalid token")
	}
	return identity, nil
}

// Identity is the claim set attached to authenticated requests.
type Identity struct {
	UserID   int64
	Username string
}

// IdentityFromClaims decodes the identity claims from a verified token.
func IdentityFromClaims(claims jwt.MapClaims) (Identity, bool) {
	rawID, ok := claims["userId"].(float64)
	if !ok || rawID <= 0 {
		return Identity{}, false
	}
	username, _ := claims["username"].(string)
	return Identity{UserID: int64(rawID), Username: username}, true
}
