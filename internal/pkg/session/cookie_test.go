package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCookieMintVerify(t *testing.T) {
	codec := NewCookieCodec("test-secret")

	token, err := codec.Mint("01ABC", time.Now().Add(time.Hour))
	require.NoError(t, err)

	id, err := codec.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "01ABC", id)
}

func TestCookieVerifyWrongSecret(t *testing.T) {
	token, err := NewCookieCodec("secret-one").Mint("01ABC", time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = NewCookieCodec("secret-two").Verify(token)
	assert.Error(t, err)
}

func TestCookieVerifyExpired(t *testing.T) {
	codec := NewCookieCodec("test-secret")

	token, err := codec.Mint("01ABC", time.Now().Add(-time.Minute))
	require.NoError(t, err)

	_, err = codec.Verify(token)
	assert.Error(t, err)
}

func TestCookieVerifyGarbage(t *testing.T) {
	codec := NewCookieCodec("test-secret")

	_, err := codec.Verify("not-a-jwt")
	assert.Error(t, err)
}
