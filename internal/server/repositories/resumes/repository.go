// Package resumes persists uploaded resume records. At most one record is
// active; activation is coordinated by the service inside a transaction.
package resumes

import (
	"context"

	"github.com/dmitrijs2005/portfolio/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, r *models.Resume) (*models.Resume, error)
	GetByID(ctx context.Context, id string) (*models.Resume, error)
	GetActive(ctx context.Context) (*models.Resume, error)
	// List returns all resumes, newest first.
	List(ctx context.Context) ([]*models.Resume, error)
	DeactivateAll(ctx context.Context) error
	Activate(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
