package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/portfolio/internal/dbx"
	"github.com/dmitrijs2005/portfolio/internal/server/models"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/portfolio/internal/server/storage"
)

// ResumeService manages resume uploads and the single-active invariant.
type ResumeService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	store       storage.BlobStore
}

func NewResumeService(db *sql.DB, m repomanager.RepositoryManager, store storage.BlobStore) *ResumeService {
	return &ResumeService{db: db, repomanager: m, store: store}
}

// resolveURL rewrites the stored key into a servable URL. Records keep the
// storage key in the database; responses carry the resolved URL.
func (s *ResumeService) resolveURL(ctx context.Context, r *models.Resume) *models.Resume {
	if url, err := s.store.URL(ctx, r.Path); err == nil {
		r.Path = url
	}
	return r
}

// Upload stores the PDF, deactivates the current active resume and creates
// the new record as active, the last two inside one transaction.
func (s *ResumeService) Upload(ctx context.Context, file *Upload) (*models.Resume, error) {
	key, _, err := s.store.Save(ctx, storage.KindResume, file.Name, file.ContentType, file.Size, file.Reader)
	if err != nil {
		return nil, err
	}

	resume := &models.Resume{
		Filename: file.Name,
		Path:     key,
		IsActive: true,
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Resumes(tx)
		if err := repo.DeactivateAll(ctx); err != nil {
			return err
		}
		created, err := repo.Create(ctx, resume)
		if err != nil {
			return err
		}
		resume = created
		return nil
	})
	if err != nil {
		// the record never existed, drop the orphaned blob
		_ = s.store.Delete(ctx, key)
		return nil, err
	}

	return s.resolveURL(ctx, resume), nil
}

func (s *ResumeService) GetActive(ctx context.Context) (*models.Resume, error) {
	resume, err := s.repomanager.Resumes(s.db).GetActive(ctx)
	if err != nil {
		return nil, err
	}
	return s.resolveURL(ctx, resume), nil
}

func (s *ResumeService) List(ctx context.Context) ([]*models.Resume, error) {
	list, err := s.repomanager.Resumes(s.db).List(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range list {
		s.resolveURL(ctx, r)
	}
	return list, nil
}

// Activate makes the given resume the active one. Deactivation and
// activation run in a single transaction so the single-active invariant
// holds even under concurrent calls.
func (s *ResumeService) Activate(ctx context.Context, id string) (*models.Resume, error) {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Resumes(tx)
		if err := repo.DeactivateAll(ctx); err != nil {
			return err
		}
		return repo.Activate(ctx, id)
	})
	if err != nil {
		return nil, err
	}

	resume, err := s.repomanager.Resumes(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.resolveURL(ctx, resume), nil
}

// Delete removes the record and then the blob. Blob removal is best-effort:
// a dangling file is preferable to a record pointing at nothing.
func (s *ResumeService) Delete(ctx context.Context, id string) error {
	repo := s.repomanager.Resumes(s.db)

	resume, err := repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := repo.Delete(ctx, id); err != nil {
		return err
	}

	_ = s.store.Delete(ctx, resume.Path)
	return nil
}
