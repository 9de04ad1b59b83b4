package services

import (
	"context"
	"database/sql"
	"io"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/portfolio/internal/dbx"
	"github.com/dmitrijs2005/portfolio/internal/server/models"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/contacts"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/projects"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/resumes"
	"github.com/dmitrijs2005/portfolio/internal/server/repositories/users"
	"github.com/dmitrijs2005/portfolio/internal/server/storage"
)

// --- shared helpers and fakes ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

type fakeRepoManager struct {
	users    users.Repository
	projects projects.Repository
	resumes  resumes.Repository
	contacts contacts.Repository
}

func (f *fakeRepoManager) Users(dbx.DBTX) users.Repository       { return f.users }
func (f *fakeRepoManager) Projects(dbx.DBTX) projects.Repository { return f.projects }
func (f *fakeRepoManager) Resumes(dbx.DBTX) resumes.Repository   { return f.resumes }
func (f *fakeRepoManager) Contacts(dbx.DBTX) contacts.Repository { return f.contacts }

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	byEmailOut *models.User
	byEmailErr error

	byIDOut *models.User
	byIDErr error

	adminExists    bool
	adminExistsErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	u.ID = "created-id"
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.byEmailErr != nil {
		return nil, f.byEmailErr
	}
	return f.byEmailOut, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

func (f *fakeUsersRepo) AdminExists(ctx context.Context) (bool, error) {
	return f.adminExists, f.adminExistsErr
}

type fakeProjectsRepo struct {
	createErr error

	byIDOut *models.Project
	byIDErr error

	listOut []*models.Project
	listErr error

	updateErr error
	deleteErr error

	created *models.Project
	updated *models.Project
}

func (f *fakeProjectsRepo) Create(ctx context.Context, p *models.Project) (*models.Project, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	p.ID = "created-id"
	f.created = p
	return p, nil
}

func (f *fakeProjectsRepo) GetByID(ctx context.Context, id string) (*models.Project, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

func (f *fakeProjectsRepo) List(ctx context.Context) ([]*models.Project, error) {
	return f.listOut, f.listErr
}

func (f *fakeProjectsRepo) Update(ctx context.Context, p *models.Project) (*models.Project, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.updated = p
	return p, nil
}

func (f *fakeProjectsRepo) Delete(ctx context.Context, id string) error {
	return f.deleteErr
}

type fakeResumesRepo struct {
	createOut *models.Resume
	createErr error

	byIDOut *models.Resume
	byIDErr error

	activeOut *models.Resume
	activeErr error

	listOut []*models.Resume
	listErr error

	deactivateErr error
	activateErr   error
	deleteErr     error

	deactivated bool
	activatedID string
	deletedID   string
}

func (f *fakeResumesRepo) Create(ctx context.Context, r *models.Resume) (*models.Resume, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	r.ID = "created-id"
	return r, nil
}

func (f *fakeResumesRepo) GetByID(ctx context.Context, id string) (*models.Resume, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

func (f *fakeResumesRepo) GetActive(ctx context.Context) (*models.Resume, error) {
	if f.activeErr != nil {
		return nil, f.activeErr
	}
	return f.activeOut, nil
}

func (f *fakeResumesRepo) List(ctx context.Context) ([]*models.Resume, error) {
	return f.listOut, f.listErr
}

func (f *fakeResumesRepo) DeactivateAll(ctx context.Context) error {
	f.deactivated = true
	return f.deactivateErr
}

func (f *fakeResumesRepo) Activate(ctx context.Context, id string) error {
	f.activatedID = id
	return f.activateErr
}

func (f *fakeResumesRepo) Delete(ctx context.Context, id string) error {
	f.deletedID = id
	return f.deleteErr
}

type fakeContactsRepo struct {
	createErr error

	byIDOut *models.ContactMessage
	byIDErr error

	listOut []*models.ContactMessage
	listErr error

	markReadErr error
	deleteErr   error
	unread      int64
	unreadErr   error

	markedReadID string
}

func (f *fakeContactsRepo) Create(ctx context.Context, m *models.ContactMessage) (*models.ContactMessage, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	m.ID = "created-id"
	return m, nil
}

func (f *fakeContactsRepo) GetByID(ctx context.Context, id string) (*models.ContactMessage, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

func (f *fakeContactsRepo) List(ctx context.Context) ([]*models.ContactMessage, error) {
	return f.listOut, f.listErr
}

func (f *fakeContactsRepo) MarkRead(ctx context.Context, id string) error {
	f.markedReadID = id
	return f.markReadErr
}

func (f *fakeContactsRepo) Delete(ctx context.Context, id string) error {
	return f.deleteErr
}

func (f *fakeContactsRepo) CountUnread(ctx context.Context) (int64, error) {
	return f.unread, f.unreadErr
}

// fakeBlobStore records calls and answers with deterministic keys.
type fakeBlobStore struct {
	saveErr     error
	savedKind   string
	savedName   string
	deletedKeys []string
}

func (f *fakeBlobStore) Save(ctx context.Context, kind storage.Kind, originalName, contentType string, size int64, r io.Reader) (string, string, error) {
	if f.saveErr != nil {
		return "", "", f.saveErr
	}
	f.savedKind = kind.Name
	f.savedName = originalName
	key := kind.Name + "/stored-key"
	return key, "/uploads/" + key, nil
}

func (f *fakeBlobStore) URL(ctx context.Context, key string) (string, error) {
	return "/uploads/" + key, nil
}

func (f *fakeBlobStore) Delete(ctx context.Context, key string) error {
	f.deletedKeys = append(f.deletedKeys, key)
	return nil
}
