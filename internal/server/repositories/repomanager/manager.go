// Package repomanager wires repositories to a database handle. Services ask
// the manager for a repository bound to either the pool or an open
// transaction (any dbx.DBTX).
package repomanager

import (
	"github.com/dmitrijs2005/portfolio/internal/dbx"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/contacts"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/projects"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/resumes"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Projects(db dbx.DBTX) projects.Repository
	Resumes(db dbx.DBTX) resumes.Repository
	Contacts(db dbx.DBTX) contacts.Repository
}
