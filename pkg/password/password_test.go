package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "atende/pkg/domain-errors"
)

func TestHashAndVerify(t *testing.T) {
	digest, err := Hash("secret")
	require.NoError(t, err)
	require.NotEmpty(t, digest)
	assert.NotContains(t, digest, "secret", "digest must not embed the plaintext")

	assert.True(t, Verify("secret", digest))
	assert.False(t, Verify("wrong", digest))
}

func TestHashIsSalted(t *testing.T) {
	first, err := Hash("secret")
	require.NoError(t, err)
	second, err := Hash("secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "per-call salt must differ")
	assert.True(t, Verify("secret", first))
	assert.True(t, Verify("secret", second))
}

func TestHashEmptyPassword(t *testing.T) {
	_, err := Hash("")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}

func TestVerifyMalformedDigest(t *testing.T) {
	// A malformed digest yields false, never a panic or error.
	assert.False(t, Verify("secret", ""))
	assert.False(t, Verify("secret", "not-a-bcrypt-digest"))
	assert.False(t, Verify("secret", "$2a$zz$garbage"))
}
