package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"textilerp/internal/audit"
	apperrors "textilerp/internal/errors"
	"textilerp/internal/model"
)

// FileService stores uploaded files on local disk under a single directory.
// Stored names are generated, so the original filename never reaches the
// filesystem. Every action is mirrored into the audit trail.
type FileService interface {
	Upload(ctx context.Context, actor audit.Actor, originalName, relatedCategory string, src io.Reader) (storedName, url string, err error)
	// Download resolves the on-disk path for streaming and audits the access.
	Download(ctx context.Context, actor audit.Actor, name string) (string, error)
	Delete(ctx context.Context, actor audit.Actor, name string) error
}

type fileService struct {
	dir      string
	recorder *audit.Recorder
}

// NewFileService creates a file service rooted at dir, creating it if needed.
func NewFileService(dir string, recorder *audit.Recorder) (FileService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &fileService{dir: dir, recorder: recorder}, nil
}

// safeName rejects anything that could escape the upload directory.
func (s *fileService) safeName(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return "", apperrors.ErrNotFound
	}
	return filepath.Join(s.dir, name), nil
}

func (s *fileService) Upload(ctx context.Context, actor audit.Actor, originalName, relatedCategory string, src io.Reader) (string, string, error) {
	ext := filepath.Ext(originalName)
	storedName := uuid.New().String() + ext
	path := filepath.Join(s.dir, storedName)

	dst, err := os.Create(path)
	if err != nil {
		return "", "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", "", fmt.Errorf("write file: %w", err)
	}

	s.recorder.FileAction(ctx, actor, model.ActionUploadFile, storedName, relatedCategory, nil)

	return storedName, "/api/files/" + storedName, nil
}

func (s *fileService) Download(ctx context.Context, actor audit.Actor, name string) (string, error) {
	path, err := s.safeName(name)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err != nil {
		return "", apperrors.ErrNotFound
	}
	s.recorder.FileAction(ctx, actor, model.ActionDownloadFile, name, "", nil)
	return path, nil
}

func (s *fileService) Delete(ctx context.Context, actor audit.Actor, name string) error {
	path, err := s.safeName(name)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		return apperrors.ErrNotFound
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("remove file: %w", err)
	}
	s.recorder.FileAction(ctx, actor, model.ActionDeleteFile, name, "", nil)
	return nil
}
