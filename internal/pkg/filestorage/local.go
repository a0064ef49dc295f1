package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/campushub/campushub/internal/pkg/logger"
)

// LocalStorage handles saving files to the local filesystem.
type LocalStorage struct {
	basePath string // The root directory where files will be stored
	baseURL  string // The base URL to access the stored files
}

// NewLocalStorage creates a new LocalStorage instance rooted at basePath.
// baseURL is optional; if provided, it is prepended when building file URLs.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	return &LocalStorage{
		basePath: basePath,
		baseURL:  baseURL,
	}, nil
}

// SaveFile stages an uploaded file under subPath, renaming it to a
// uuid-prefixed name to avoid collisions, and returns the stored relative path.
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	fullDirPath := ls.basePath
	if subPath != "" {
		fullDirPath = filepath.Join(ls.basePath, subPath)
		if err := os.MkdirAll(fullDirPath, os.ModePerm); err != nil {
			logger.Error().Err(err).Str("path", fullDirPath).Msg("Failed to create subdirectory")
			return "", fmt.Errorf("failed to create subdirectory: %w", err)
		}
	}

	ext := filepath.Ext(fileHeader.Filename)
	storedName := uuid.New().String() + ext
	fullPath := filepath.Join(fullDirPath, storedName)

	dst, err := os.Create(fullPath)
	if err != nil {
		logger.Error().Err(err).Str("path", fullPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", fullPath).Msg("Failed to write uploaded file")
		return "", fmt.Errorf("failed to write uploaded file: %w", err)
	}

	return filepath.ToSlash(filepath.Join(subPath, storedName)), nil
}

// DeleteFile removes a staged file from storage. Deleting a missing file is
// not an error; the row it belonged to was never committed.
func (ls *LocalStorage) DeleteFile(filePath string) error {
	if filePath == "" {
		return nil
	}

	fullPath := filepath.Join(ls.basePath, filepath.FromSlash(filePath))
	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		logger.Error().Err(err).Str("path", fullPath).Msg("Failed to delete staged file")
		return fmt.Errorf("failed to delete file %s: %w", filePath, err)
	}

	return nil
}

// FileURL returns the public URL for a stored file path.
func (ls *LocalStorage) FileURL(filePath string) string {
	if filePath == "" {
		return ""
	}
	if ls.baseURL == "" {
		return "/" + strings.TrimPrefix(filePath, "/")
	}
	return strings.TrimSuffix(ls.baseURL, "/") + "/" + strings.TrimPrefix(filePath, "/")
}
