package session

import (
	"testing"
	"time"

	"github.com/gofiber/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	return New(memory.New(), time.Minute)
}

func TestNew_NilStorage(t *testing.T) {
	assert.Panics(t, func() {
		New(nil, time.Minute)
	})
}

func TestCreateAndRead(t *testing.T) {
	store := newTestStore(t)

	token, err := store.Create(7, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	data, err := store.Read(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), data.UserID)
	assert.Equal(t, "admin", data.Username)
}

func TestRead_MissingSession(t *testing.T) {
	store := newTestStore(t)

	testCases := []struct {
		name  string
		token string
	}{
		{name: "empty token", token: ""},
		{name: "unknown token", token: "deadbeef"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := store.Read(tc.token)
			require.ErrorIs(t, err, ErrNotFound)
			assert.Nil(t, data)
		})
	}
}

func TestDestroy(t *testing.T) {
	store := newTestStore(t)

	token, err := store.Create(7, "admin")
	require.NoError(t, err)

	require.NoError(t, store.Destroy(token))

	_, err = store.Read(token)
	require.ErrorIs(t, err, ErrNotFound)

	// destroying again (or destroying nothing) is fine
	require.NoError(t, store.Destroy(token))
	require.NoError(t, store.Destroy(""))
}

func TestGenerateSessionID(t *testing.T) {
	a, err := GenerateSessionID()
	require.NoError(t, err)

	b, err := GenerateSessionID()
	require.NoError(t, err)

	assert.Len(t, a, 64, "expected 32 random bytes hex encoded")
	assert.NotEqual(t, a, b)
}

func TestExpiry(t *testing.T) {
	store := New(memory.New(), 42*time.Second)
	assert.Equal(t, 42*time.Second, store.Expiry())
}
