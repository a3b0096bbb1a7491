package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {

	hashed, err := Hash("changeme")

	require.NoError(t, err)
	require.NotEmpty(t, hashed)

	assert.NoError(t, VerifyPassword(string(hashed), "changeme"))
	assert.Error(t, VerifyPassword(string(hashed), "wrong-password"))
}

func TestHashIsSalted(t *testing.T) {

	first, err := Hash("changeme")
	require.NoError(t, err)

	second, err := Hash("changeme")
	require.NoError(t, err)

	assert.NotEqual(t, string(first), string(second))
}
