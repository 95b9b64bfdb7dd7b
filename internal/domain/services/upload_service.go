package services

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Djiento/ActionnaireInscrit/internal/domain/models"
	"github.com/Djiento/ActionnaireInscrit/internal/infrastructure/config"
	"github.com/Djiento/ActionnaireInscrit/utils"
)

// ErrExtensionNotAllowed rejects a file before any byte is written.
var ErrExtensionNotAllowed = errors.New("file extension not allowed")

// ErrInvalidStoredName rejects lookups that escape the upload directory.
var ErrInvalidStoredName = errors.New("invalid stored filename")

// InterfaceUploadService defines the identity-document intake store.
type InterfaceUploadService interface {
	Save(file io.Reader, clientFilename string) (string, error)
	Path(storedFilename string) (string, error)
	Remove(storedFilename string) error
}

// UploadService writes intake files under the configured upload directory as
// `<intake-token>_<sanitized-original-name>`.
type UploadService struct {
	Dir string
}

// NewUploadService creates the intake store and its directory.
func NewUploadService(cfg *config.Config) (InterfaceUploadService, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &UploadService{Dir: cfg.UploadDir}, nil
}

// Save validates the extension, assigns a collision-free stored name and
// writes the bytes. On any failure nothing is persisted under the returned
// name; callers must not create a record in that case.
func (s *UploadService) Save(file io.Reader, clientFilename string) (string, error) {
	if !models.AllowedDocumentExtensions[utils.FileExtension(clientFilename)] {
		return "", ErrExtensionNotAllowed
	}

	storedName := utils.NewIntakeToken() + "_" + utils.SanitizeFilename(clientFilename)
	dstPath := filepath.Join(s.Dir, storedName)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(dstPath)
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return storedName, nil
}

// Path resolves a stored filename to its on-disk path, refusing anything
// that would leave the upload directory.
func (s *UploadService) Path(storedFilename string) (string, error) {
	if storedFilename == "" ||
		storedFilename != filepath.Base(storedFilename) ||
		strings.HasPrefix(storedFilename, ".") {
		return "", ErrInvalidStoredName
	}
	return filepath.Join(s.Dir, storedFilename), nil
}

// Remove deletes a stored file, used to clean up when the following record
// insert fails. Missing files are not an error.
func (s *UploadService) Remove(storedFilename string) error {
	path, err := s.Path(storedFilename)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
