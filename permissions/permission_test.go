package permissions_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ehotel/permissions"
)

func TestGet(t *testing.T) {
	data := permissions.Get()

	require.NotNil(t, data)
	assert.NotEmpty(t, data.Endpoints)
	assert.False(t, data.Skip)
}

func TestFindPermissions(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	t.Run("skip endpoint", func(t *testing.T) {
		permission := data.FindPermissions("/v1/auth/login", http.MethodPost)

		assert.True(t, permission.Skip)
	})

	t.Run("role gated endpoint", func(t *testing.T) {
		permission := data.FindPermissions("/v1/bookings/{id}/check-in", http.MethodPost)

		assert.False(t, permission.Skip)
		assert.Equal(t, []string{"employee"}, permission.Permissions)
	})

	t.Run("group root pattern carries trailing slash", func(t *testing.T) {
		permission := data.FindPermissions("/v1/bookings/", http.MethodPost)

		assert.Equal(t, []string{"customer"}, permission.Permissions)
	})

	t.Run("unknown endpoint", func(t *testing.T) {
		permission := data.FindPermissions("/v1/unknown", http.MethodGet)

		assert.False(t, permission.Skip)
		assert.Empty(t, permission.Permissions)
	})

	t.Run("method mismatch", func(t *testing.T) {
		permission := data.FindPermissions("/v1/rooms/search", http.MethodPost)

		assert.Empty(t, permission.Permissions)
		assert.False(t, permission.Skip)
	})
}
