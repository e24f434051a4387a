package security_test

import (
	"strings"
	"testing"
	"time"

	"github.com/diillson/warehouse-api/pkg/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const testSecret = "test-secret-key-with-32-characters!!"

func TestNewKeyManager(t *testing.T) {
	logger := zaptest.NewLogger(t)

	t.Run("rejects short secret", func(t *testing.T) {
		_, err := security.NewKeyManager("curta", logger)
		assert.Error(t, err)
	})

	t.Run("accepts valid secret", func(t *testing.T) {
		km, err := security.NewKeyManager(testSecret, logger)
		require.NoError(t, err)
		assert.NotNil(t, km)
	})
}

func TestKeyManager_TokenRoundTrip(t *testing.T) {
	logger := zaptest.NewLogger(t)
	km, err := security.NewKeyManager(testSecret, logger)
	require.NoError(t, err)

	token, err := km.GenerateToken(42, "Manager", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := km.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "Manager", claims.Role)
}

func TestKeyManager_VerifyToken(t *testing.T) {
	logger := zaptest.NewLogger(t)
	km, err := security.NewKeyManager(testSecret, logger)
	require.NoError(t, err)

	t.Run("expired token", func(t *testing.T) {
		token, err := km.GenerateToken(1, "Admin", -time.Hour)
		require.NoError(t, err)

		_, err = km.VerifyToken(token)
		assert.Error(t, err)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := km.VerifyToken("not-a-token")
		assert.Error(t, err)
	})

	t.Run("token signed with another key", func(t *testing.T) {
		other, err := security.NewKeyManager(strings.Repeat("k", 32), logger)
		require.NoError(t, err)

		token, err := other.GenerateToken(1, "Admin", time.Hour)
		require.NoError(t, err)

		_, err = km.VerifyToken(token)
		assert.Error(t, err)
	})
}
