package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/portfolio/internal/client/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, handler http.HandlerFunc) *api.HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return api.NewHTTPClient(srv.URL, 5*time.Second)
}

func newStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "token.json"))
}

func TestRestoreWithoutStoredToken(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected without a stored token")
	})
	s := NewSession(client, newStore(t))

	require.NoError(t, s.Restore(context.Background()))
	assert.False(t, s.IsAuthenticated())
	assert.False(t, s.IsAdmin())
}

func TestRestoreValidToken(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/me", r.URL.Path)
		assert.Equal(t, "Bearer stored-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"user":{"_id":"u1","username":"admin","email":"a@b.c","role":"admin"}}`))
	})
	store := newStore(t)
	require.NoError(t, store.Save("stored-token"))

	s := NewSession(client, store)
	require.NoError(t, s.Restore(context.Background()))

	assert.True(t, s.IsAuthenticated())
	assert.True(t, s.IsAdmin())
	assert.Equal(t, "stored-token", s.Token())
	assert.Equal(t, "admin", s.User().Username)
}

func TestRestoreClearsRejectedToken(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"message":"Invalid or expired token"}`))
	})
	store := newStore(t)
	require.NoError(t, store.Save("stale-token"))

	s := NewSession(client, store)
	require.NoError(t, s.Restore(context.Background()))

	assert.False(t, s.IsAuthenticated())
	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token, "a rejected token must be removed")
}

func TestRestoreClearsTokenOfDeletedUser(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"message":"User not found"}`))
	})
	store := newStore(t)
	require.NoError(t, store.Save("orphan-token"))

	s := NewSession(client, store)
	require.NoError(t, s.Restore(context.Background()))

	assert.False(t, s.IsAuthenticated())
	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestRestoreKeepsTokenOnCancellation(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	store := newStore(t)
	require.NoError(t, store.Save("kept-token"))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	s := NewSession(client, store)
	err := s.Restore(ctx)
	require.Error(t, err)

	token, loadErr := store.Load()
	require.NoError(t, loadErr)
	assert.Equal(t, "kept-token", token, "cancellation must not discard the token")
}

func TestLoginPersistsToken(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"token":"fresh-token","user":{"_id":"u1","username":"admin","role":"admin"}}`))
	})
	store := newStore(t)

	s := NewSession(client, store)
	user, err := s.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)

	token, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", token)
}

func TestLogoutClearsStateEvenWhenServerFails(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	store := newStore(t)
	require.NoError(t, store.Save("some-token"))

	s := NewSession(client, store)
	s.token = "some-token"
	s.user = &api.User{ID: "u1"}

	require.NoError(t, s.Logout(context.Background()))
	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.Token())

	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}
