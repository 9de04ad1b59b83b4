// Package cli implements the interactive admin console for the portfolio
// backend. It restores the stored session on startup and exposes the admin
// operations as REPL commands.
package cli

import (
	"bufio"
	"io"
	"os"

	"github.com/dmitrijs2005/portfolio/internal/client/api"
	"github.com/dmitrijs2005/portfolio/internal/client/config"
	"github.com/dmitrijs2005/portfolio/internal/client/session"
)

type App struct {
	config  *config.Config
	client  api.Client
	session *session.Session
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(c *config.Config) *App {
	client := api.NewHTTPClient(c.ServerEndpointAddr, c.RequestTimeout)
	store := session.NewFileStore(c.TokenFile)

	return &App{
		config:  c,
		client:  client,
		session: session.NewSession(client, store),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}
