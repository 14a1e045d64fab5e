package middleware_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajdwivedi/aeonaxy-server/middleware"
)

func TestGenerateAndParseToken(t *testing.T) {
	token, err := middleware.GenerateToken("user-uid", middleware.AccessTokenTTL, "secret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	uid, err := middleware.ParseUID(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "user-uid", uid)
}

func TestParseUID_WrongSecret(t *testing.T) {
	token, err := middleware.GenerateToken("user-uid", middleware.AccessTokenTTL, "secret")
	require.NoError(t, err)

	_, err = middleware.ParseUID(token, "other-secret")
	assert.Error(t, err)
}

func TestParseUID_Expired(t *testing.T) {
	token, err := middleware.GenerateToken("user-uid", -time.Minute, "secret")
	require.NoError(t, err)

	_, err = middleware.ParseUID(token, "secret")
	assert.Error(t, err)
}

func TestParseUID_Garbage(t *testing.T) {
	_, err := middleware.ParseUID("not.a.token", "secret")
	assert.Error(t, err)
}
