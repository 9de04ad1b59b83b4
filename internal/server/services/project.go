package services

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/portfolio/internal/common"
	"github.com/dmitrijs2005/portfolio/internal/server/models"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/portfolio/internal/server/storage"
)

// Upload carries an incoming multipart file into the service layer.
type Upload struct {
	Name        string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// ProjectParams carries create/update input. Nil pointers mean "leave
// unchanged" on update and "use the default" on create.
type ProjectParams struct {
	Title        *string
	Description  *string
	LiveLink     *string
	RepoLink     *string
	Technologies []string
	Featured     *bool
	SortOrder    *int
}

// ProjectService manages showcase entries and their images.
type ProjectService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	store       storage.BlobStore
}

func NewProjectService(db *sql.DB, m repomanager.RepositoryManager, store storage.BlobStore) *ProjectService {
	return &ProjectService{db: db, repomanager: m, store: store}
}

// placeholderImageURL stands in when a project is created without an image,
// matching what the public site expects for image-less entries.
func placeholderImageURL() string {
	return fmt.Sprintf("https://picsum.photos/seed/%d/800/600", time.Now().UnixMilli())
}

func (s *ProjectService) List(ctx context.Context) ([]*models.Project, error) {
	return s.repomanager.Projects(s.db).List(ctx)
}

func (s *ProjectService) Get(ctx context.Context, id string) (*models.Project, error) {
	return s.repomanager.Projects(s.db).GetByID(ctx, id)
}

// Create stores the optional image and inserts the project. Title and
// description are required.
func (s *ProjectService) Create(ctx context.Context, params ProjectParams, image *Upload) (*models.Project, error) {
	if params.Title == nil || *params.Title == "" || params.Description == nil || *params.Description == "" {
		return nil, fmt.Errorf("%w: title and description are required", common.ErrorValidation)
	}

	p := &models.Project{
		Title:        *params.Title,
		Description:  *params.Description,
		Technologies: params.Technologies,
	}
	if params.LiveLink != nil {
		p.LiveLink = *params.LiveLink
	}
	if params.RepoLink != nil {
		p.RepoLink = *params.RepoLink
	}
	if params.Featured != nil {
		p.Featured = *params.Featured
	}
	if params.SortOrder != nil {
		p.SortOrder = *params.SortOrder
	}

	if image != nil {
		_, url, err := s.store.Save(ctx, storage.KindProjectImage, image.Name, image.ContentType, image.Size, image.Reader)
		if err != nil {
			return nil, err
		}
		p.ImageURL = url
	} else {
		p.ImageURL = placeholderImageURL()
	}

	return s.repomanager.Projects(s.db).Create(ctx, p)
}

// Update applies the set fields of params to an existing project. A new
// image replaces the stored URL.
func (s *ProjectService) Update(ctx context.Context, id string, params ProjectParams, image *Upload) (*models.Project, error) {
	repo := s.repomanager.Projects(s.db)

	p, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Title != nil {
		p.Title = *params.Title
	}
	if params.Description != nil {
		p.Description = *params.Description
	}
	if params.LiveLink != nil {
		p.LiveLink = *params.LiveLink
	}
	if params.RepoLink != nil {
		p.RepoLink = *params.RepoLink
	}
	if params.Technologies != nil {
		p.Technologies = params.Technologies
	}
	if params.Featured != nil {
		p.Featured = *params.Featured
	}
	if params.SortOrder != nil {
		p.SortOrder = *params.SortOrder
	}

	if image != nil {
		_, url, err := s.store.Save(ctx, storage.KindProjectImage, image.Name, image.ContentType, image.Size, image.Reader)
		if err != nil {
			return nil, err
		}
		p.ImageURL = url
	}

	return repo.Update(ctx, p)
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	return s.repomanager.Projects(s.db).Delete(ctx, id)
}
