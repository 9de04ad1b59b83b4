package services

import (
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/portfolio/internal/common"
	"github.com/dmitrijs2005/portfolio/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pdfUpload(content string) *Upload {
	return &Upload{
		Name:        "cv.pdf",
		ContentType: "application/pdf",
		Size:        int64(len(content)),
		Reader:      strings.NewReader(content),
	}
}

func TestResumeUploadDeactivatesPrevious(t *testing.T) {
	db, mock := newSQLMockDB(t)
	repo := &fakeResumesRepo{}
	store := &fakeBlobStore{}
	svc := NewResumeService(db, &fakeRepoManager{resumes: repo}, store)

	mock.ExpectBegin()
	mock.ExpectCommit()

	resume, err := svc.Upload(context.Background(), pdfUpload("%PDF-1.4"))
	require.NoError(t, err)

	assert.True(t, repo.deactivated)
	assert.True(t, resume.IsActive)
	assert.Equal(t, "cv.pdf", resume.Filename)
	assert.Equal(t, "/uploads/resume/stored-key", resume.Path)
	assert.Equal(t, "resume", store.savedKind)
	assert.Empty(t, store.deletedKeys)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResumeUploadRollsBackBlobOnDBFailure(t *testing.T) {
	db, mock := newSQLMockDB(t)
	repo := &fakeResumesRepo{createErr: common.ErrorInternal}
	store := &fakeBlobStore{}
	svc := NewResumeService(db, &fakeRepoManager{resumes: repo}, store)

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := svc.Upload(context.Background(), pdfUpload("%PDF-1.4"))
	require.Error(t, err)

	// the orphaned blob must be cleaned up
	assert.Equal(t, []string{"resume/stored-key"}, store.deletedKeys)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResumeActivateRunsInTransaction(t *testing.T) {
	db, mock := newSQLMockDB(t)
	repo := &fakeResumesRepo{byIDOut: &models.Resume{ID: "r2", Path: "resume/key2", IsActive: true}}
	svc := NewResumeService(db, &fakeRepoManager{resumes: repo}, &fakeBlobStore{})

	mock.ExpectBegin()
	mock.ExpectCommit()

	resume, err := svc.Activate(context.Background(), "r2")
	require.NoError(t, err)

	assert.True(t, repo.deactivated)
	assert.Equal(t, "r2", repo.activatedID)
	assert.Equal(t, "/uploads/resume/key2", resume.Path)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResumeActivateNotFound(t *testing.T) {
	db, mock := newSQLMockDB(t)
	repo := &fakeResumesRepo{activateErr: common.ErrorNotFound}
	svc := NewResumeService(db, &fakeRepoManager{resumes: repo}, &fakeBlobStore{})

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := svc.Activate(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestResumeDeleteRemovesBlob(t *testing.T) {
	db, _ := newSQLMockDB(t)
	repo := &fakeResumesRepo{byIDOut: &models.Resume{ID: "r1", Path: "resume/key1"}}
	store := &fakeBlobStore{}
	svc := NewResumeService(db, &fakeRepoManager{resumes: repo}, store)

	require.NoError(t, svc.Delete(context.Background(), "r1"))
	assert.Equal(t, "r1", repo.deletedID)
	assert.Equal(t, []string{"resume/key1"}, store.deletedKeys)
}

func TestResumeGetActiveResolvesURL(t *testing.T) {
	db, _ := newSQLMockDB(t)
	repo := &fakeResumesRepo{activeOut: &models.Resume{ID: "r1", Path: "resume/key1", IsActive: true}}
	svc := NewResumeService(db, &fakeRepoManager{resumes: repo}, &fakeBlobStore{})

	resume, err := svc.GetActive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/uploads/resume/key1", resume.Path)
}

func TestResumeGetActiveNotFound(t *testing.T) {
	db, _ := newSQLMockDB(t)
	repo := &fakeResumesRepo{activeErr: common.ErrorNotFound}
	svc := NewResumeService(db, &fakeRepoManager{resumes: repo}, &fakeBlobStore{})

	_, err := svc.GetActive(context.Background())
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
