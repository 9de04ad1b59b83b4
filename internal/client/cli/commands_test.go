package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/portfolio/internal/client/api"
	"github.com/dmitrijs2005/portfolio/internal/client/config"
	"github.com/dmitrijs2005/portfolio/internal/client/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, handler http.HandlerFunc) (*App, *bytes.Buffer, *session.FileStore) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := api.NewHTTPClient(srv.URL, 5*time.Second)
	store := session.NewFileStore(filepath.Join(t.TempDir(), "token.json"))

	out := &bytes.Buffer{}
	app := &App{
		config:  &config.Config{ServerEndpointAddr: srv.URL},
		client:  client,
		session: session.NewSession(client, store),
		reader:  bufio.NewReader(strings.NewReader("")),
		out:     out,
	}
	return app, out, store
}

func stubInput(t *testing.T, text string, password []byte) {
	t.Helper()
	origText, origPw := getSimpleText, getPassword
	getSimpleText = func(r *bufio.Reader, prompt string, w io.Writer) (string, error) { return text, nil }
	getPassword = func(w io.Writer) ([]byte, error) { return password, nil }
	t.Cleanup(func() { getSimpleText, getPassword = origText, origPw })
}

func TestLoginCommandPersistsSession(t *testing.T) {
	app, out, store := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"token":"t1","user":{"_id":"u1","username":"admin","role":"admin"}}`))
	})
	stubInput(t, "admin@example.com", []byte("Admin@123"))

	require.NoError(t, app.Login(context.Background()))
	assert.Contains(t, out.String(), "Logged in as admin (admin)")
	assert.True(t, app.isLoggedIn())

	token, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "t1", token)
}

func TestLoginCommandReportsFailure(t *testing.T) {
	app, out, _ := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"message":"Invalid credentials"}`))
	})
	stubInput(t, "admin@example.com", []byte("wrong"))

	require.Error(t, app.Login(context.Background()))
	assert.Contains(t, out.String(), "Login unsuccessful")
	assert.False(t, app.isLoggedIn())
}

func TestWhoamiLoggedOut(t *testing.T) {
	app, out, _ := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {})

	require.NoError(t, app.Whoami(context.Background()))
	assert.Contains(t, out.String(), "Not logged in")
}

func TestProjectsCommand(t *testing.T) {
	app, out, _ := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"count":1,"projects":[{"_id":"p1","title":"Portfolio","technologies":["go","react"],"featured":true}]}`))
	})

	require.NoError(t, app.Projects(context.Background()))
	assert.Contains(t, out.String(), "Portfolio")
	assert.Contains(t, out.String(), "[featured]")
	assert.Contains(t, out.String(), "go, react")
}

func TestInboxCommand(t *testing.T) {
	app, out, _ := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/contact":
			w.Write([]byte(`{"success":true,"count":2,"contacts":[{"_id":"m1","name":"Alice","email":"a@b.c","message":"Hi","isRead":false},{"_id":"m2","name":"Bob","email":"b@b.c","message":"Yo","isRead":true}]}`))
		case "/api/contact/unread-count":
			w.Write([]byte(`{"success":true,"count":1}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	require.NoError(t, app.Inbox(context.Background()))
	assert.Contains(t, out.String(), "2 message(s), 1 unread")
	assert.Contains(t, out.String(), "* m1")
}

func TestInboxCommandForbidden(t *testing.T) {
	app, out, _ := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"success":false,"message":"Admin access required"}`))
	})

	require.Error(t, app.Inbox(context.Background()))
	assert.Contains(t, out.String(), "Admin access required")
}
