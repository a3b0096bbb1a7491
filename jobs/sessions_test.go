package jobs

import (
	"testing"
	"time"

	"privacyguard/controllers/auth"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, secret []byte, exp time.Time) string {

	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":    "operator",
		"exp":        exp.Unix(),
		"authorized": true,
	})

	signed, err := token.SignedString(secret)

	require.NoError(t, err)

	return signed
}

func TestSessionExpired(t *testing.T) {

	valid := signedToken(t, []byte(auth.SECRET), time.Now().Add(time.Hour))
	expired := signedToken(t, []byte(auth.SECRET), time.Now().Add(-time.Hour))
	foreign := signedToken(t, []byte("some-other-secret"), time.Now().Add(time.Hour))

	assert.False(t, sessionExpired(valid))
	assert.True(t, sessionExpired(expired))
	assert.True(t, sessionExpired(foreign))
	assert.True(t, sessionExpired("not-a-token"))
}
