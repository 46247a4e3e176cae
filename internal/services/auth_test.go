package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokens() TokenService {
	return TokenService{
		Secret:    []byte("test-secret"),
		Issuer:    "geoconnect",
		AccessTTL: time.Hour,
	}
}

func TestPasswordHashing(t *testing.T) {
	tokens := testTokens()
	hash, err := tokens.HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)
	assert.True(t, tokens.VerifyPassword("correct horse", hash))
	assert.False(t, tokens.VerifyPassword("wrong horse", hash))
}

func TestCreateAndParseAccessToken(t *testing.T) {
	tokens := testTokens()
	signed, exp, err := tokens.CreateAccessToken(42, "mariner")
	require.NoError(t, err)
	assert.Greater(t, exp, time.Now().Unix())

	token, claims, err := tokens.ParseToken(signed)
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, "access", claims["typ"])

	identity, ok := IdentityFromClaims(claims)
	require.True(t, ok)
	assert.Equal(t, int64(42), identity.UserID)
	assert.Equal(t, "mariner", identity.Username)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	signed, _, err := testTokens().CreateAccessToken(1, "a")
	require.NoError(t, err)

	other := testTokens()
	other.Secret = []byte("different-secret")
	_, _, err = other.ParseToken(signed)
	assert.Error(t, err)
}

func TestParseTokenRejectsWrongIssuer(t *testing.T) {
	minting := testTokens()
	minting.Issuer = "someone-else"
	signed, _, err := minting.CreateAccessToken(1, "a")
	require.NoError(t, err)

	_, _, err = testTokens().ParseToken(signed)
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	tokens := testTokens()
	tokens.AccessTTL = -time.Minute
	signed, _, err := tokens.CreateAccessToken(1, "a")
	require.NoError(t, err)

	_, _, err = tokens.ParseToken(signed)
	assert.Error(t, err)
}

func TestParseTokenRejectsUnsignedAlgorithm(t *testing.T) {
	tokens := testTokens()
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"iss":    tokens.Issuer,
		"typ":    "access",
		"userId": 1,
	})
	signed, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, _, err = tokens.ParseToken(signed)
	assert.Error(t, err)
}

func TestAuthenticate(t *testing.T) {
	tokens := testTokens()
	signed, _, err := tokens.CreateAccessToken(42, "mariner")
	require.NoError(t, err)

	identity, err := tokens.Authenticate(signed)
	require.NoError(t, err)
	assert.Equal(t, Identity{UserID: 42, Username: "mariner"}, identity)

	_, err = tokens.Authenticate("")
	var serr ServiceError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, 401, serr.Status)
	assert.Equal(t, "Access token required", serr.Message)

	_, err = tokens.Authenticate("not-a-token")
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, 403, serr.Status)
	assert.Equal(t, "Invalid token", serr.Message)

	// right signature, wrong token type
	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss":    tokens.Issuer,
		"typ":    "refresh",
		"userId": float64(42),
	})
	signedRefresh, err := refresh.SignedString(tokens.Secret)
	require.NoError(t, err)
	_, err = tokens.Authenticate(signedRefresh)
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, 403, serr.Status)
}

func TestIdentityFromClaims(t *testing.T) {
	_, ok := IdentityFromClaims(jwt.MapClaims{})
	assert.False(t, ok)

	_, ok = IdentityFromClaims(jwt.MapClaims{"userId": float64(0)})
	assert.False(t, ok)

	identity, ok := IdentityFromClaims(jwt.MapClaims{"userId": float64(7), "username": "u"})
	require.True(t, ok)
	assert.Equal(t, Identity{UserID: 7, Username: "u"}, identity)
}
