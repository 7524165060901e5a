package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoronova/imagevault/internal/common"
)

var testSecret = []byte("test-secret")

func TestGenerateToken_RoundTrip(t *testing.T) {
	token, err := GenerateToken("chunkylover23", testSecret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	username, err := GetUsernameFromToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "chunkylover23", username)
}

func TestGetUsernameFromToken_Expired(t *testing.T) {
	token, err := GenerateToken("chunkylover23", testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = GetUsernameFromToken(token, testSecret)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestGetUsernameFromToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("chunkylover23", testSecret, time.Hour)
	require.NoError(t, err)

	_, err = GetUsernameFromToken(token, []byte("other-secret"))
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestGetUsernameFromToken_TamperedSignature(t *testing.T) {
	token, err := GenerateToken("chunkylover23", testSecret, time.Hour)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = GetUsernameFromToken(tampered, testSecret)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestGetUsernameFromToken_RejectsNonHMAC(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Username: "mallory"})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = GetUsernameFromToken(tokenString, testSecret)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestGetUsernameFromToken_Garbage(t *testing.T) {
	_, err := GetUsernameFromToken("not.a.token", testSecret)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}
