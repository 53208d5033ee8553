package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStoreCreateAndGet(t *testing.T) {
	store := NewSessionStore(time.Hour)

	session := store.Create()
	require.NotEmpty(t, session.ID)
	require.NotNil(t, session.Cart)

	got, ok := store.Get(session.ID)
	require.True(t, ok)
	assert.Same(t, session, got)
}

func TestSessionStoreUnknownID(t *testing.T) {
	store := NewSessionStore(time.Hour)

	_, ok := store.Get("nope")
	assert.False(t, ok)
}

func TestSessionStoreExpiry(t *testing.T) {
	store := NewSessionStore(10 * time.Millisecond)
	session := store.Create()

	time.Sleep(30 * time.Millisecond)

	_, ok := store.Get(session.ID)
	assert.False(t, ok, "expired session must be gone, cart included")
}

func TestSessionStoreDelete(t *testing.T) {
	store := NewSessionStore(time.Hour)
	session := store.Create()

	store.Delete(session.ID)

	_, ok := store.Get(session.ID)
	assert.False(t, ok)
}

func TestSessionTokenLifecycle(t *testing.T) {
	store := NewSessionStore(time.Hour)
	session := store.Create()

	assert.Empty(t, session.Token())

	session.SetToken("jwt-token")
	assert.Equal(t, "jwt-token", session.Token())

	session.ClearToken()
	assert.Empty(t, session.Token())
}

func TestSessionCartsAreIsolated(t *testing.T) {
	store := NewSessionStore(time.Hour)
	first := store.Create()
	second := store.Create()

	first.Cart.Add(chairItem())

	assert.Equal(t, 1, first.Cart.Len())
	assert.Equal(t, 0, second.Cart.Len())
}
