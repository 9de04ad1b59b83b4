// Package session restores and maintains the CLI's authenticated state
// against the backend, persisting the token across runs.
package session

import (
	"context"

	"github.com/dmitrijs2005/portfolio/internal/client/api"
)

// Session holds the current token and account. A zero user means the
// session is anonymous.
type Session struct {
	client api.Client
	store  TokenStore

	token string
	user  *api.User
}

func NewSession(client api.Client, store TokenStore) *Session {
	return &Session{client: client, store: store}
}

// Restore bootstraps the session from the stored token. Any verification
// failure silently degrades to an anonymous session and drops the stale
// token, with one exception: when the context was cancelled the token's
// validity is unknown, so it is left in place for the next run.
func (s *Session) Restore(ctx context.Context) error {
	token, err := s.store.Load()
	if err != nil || token == "" {
		return nil
	}

	user, err := s.client.CurrentUser(ctx, token)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		_ = s.store.Clear()
		return nil
	}

	s.token = token
	s.user = user
	return nil
}

func (s *Session) Login(ctx context.Context, email, password string) (*api.User, error) {
	user, token, err := s.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if err := s.store.Save(token); err != nil {
		return nil, err
	}

	s.token = token
	s.user = user
	return user, nil
}

// Logout tells the server to drop its cookie and always clears local state,
// even when the server call fails.
func (s *Session) Logout(ctx context.Context) error {
	if s.token != "" {
		_ = s.client.Logout(ctx, s.token)
	}

	err := s.store.Clear()
	s.token = ""
	s.user = nil
	return err
}

func (s *Session) User() *api.User { return s.user }

func (s *Session) Token() string { return s.token }

func (s *Session) IsAuthenticated() bool { return s.user != nil }

func (s *Session) IsAdmin() bool { return s.user.IsAdmin() }
