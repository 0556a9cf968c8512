package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"textilerp/internal/audit"
	apperrors "textilerp/internal/errors"
)

func newTestFileService(t *testing.T) (FileService, string) {
	t.Helper()
	dir := t.TempDir()
	auditRepo := new(MockAuditRepository)
	auditRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	svc, err := NewFileService(dir, audit.NewRecorder(auditRepo))
	require.NoError(t, err)
	return svc, dir
}

func TestFileService_UploadDownloadDelete(t *testing.T) {
	svc, dir := newTestFileService(t)
	ctx := context.Background()

	name, url, err := svc.Upload(ctx, testActor(), "pattern.pdf", "samples", strings.NewReader("pdf-bytes"))
	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".pdf"), "keeps the original extension")
	assert.NotEqual(t, "pattern.pdf", name, "original name never reaches disk")
	assert.Equal(t, "/api/files/"+name, url)

	data, err := os.ReadFile(filepath.Join(dir, name))
	assert.NoError(t, err)
	assert.Equal(t, "pdf-bytes", string(data))

	path, err := svc.Download(ctx, testActor(), name)
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, name), path)

	assert.NoError(t, svc.Delete(ctx, testActor(), name))
	_, err = os.Stat(filepath.Join(dir, name))
	assert.True(t, os.IsNotExist(err))
}

func TestFileService_RejectsPathEscapes(t *testing.T) {
	svc, _ := newTestFileService(t)
	ctx := context.Background()

	for _, bad := range []string{"", "../secret", "a/b.pdf", `a\b.pdf`, ".."} {
		_, err := svc.Download(ctx, testActor(), bad)
		assert.ErrorIs(t, err, apperrors.ErrNotFound, "name %q", bad)

		err = svc.Delete(ctx, testActor(), bad)
		assert.ErrorIs(t, err, apperrors.ErrNotFound, "name %q", bad)
	}
}

func TestFileService_DownloadMissing(t *testing.T) {
	svc, _ := newTestFileService(t)

	_, err := svc.Download(context.Background(), testActor(), "nope.pdf")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
