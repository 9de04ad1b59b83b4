package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/portfolio/internal/common"
	"github.com/dmitrijs2005/portfolio/internal/server/models"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/repomanager"
)

// ContactService manages the contact-message inbox.
type ContactService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewContactService(db *sql.DB, m repomanager.RepositoryManager) *ContactService {
	return &ContactService{db: db, repomanager: m}
}

// Submit records a public contact-form submission. All fields are required.
func (s *ContactService) Submit(ctx context.Context, name, email, message string) (*models.ContactMessage, error) {
	if name == "" || email == "" || message == "" {
		return nil, fmt.Errorf("%w: name, email and message are required", common.ErrorValidation)
	}

	return s.repomanager.Contacts(s.db).Create(ctx, &models.ContactMessage{
		Name:    name,
		Email:   email,
		Message: message,
	})
}

func (s *ContactService) List(ctx context.Context) ([]*models.ContactMessage, error) {
	return s.repomanager.Contacts(s.db).List(ctx)
}

// Get returns a single message and marks it read as a side effect, so
// opening a message in the admin UI clears it from the unread count.
func (s *ContactService) Get(ctx context.Context, id string) (*models.ContactMessage, error) {
	repo := s.repomanager.Contacts(s.db)

	m, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !m.IsRead {
		if err := repo.MarkRead(ctx, id); err != nil {
			return nil, err
		}
		m.IsRead = true
	}

	return m, nil
}

func (s *ContactService) MarkRead(ctx context.Context, id string) (*models.ContactMessage, error) {
	repo := s.repomanager.Contacts(s.db)

	if err := repo.MarkRead(ctx, id); err != nil {
		return nil, err
	}

	return repo.GetByID(ctx, id)
}

func (s *ContactService) Delete(ctx context.Context, id string) error {
	return s.repomanager.Contacts(s.db).Delete(ctx, id)
}

func (s *ContactService) UnreadCount(ctx context.Context) (int64, error) {
	return s.repomanager.Contacts(s.db).CountUnread(ctx)
}
