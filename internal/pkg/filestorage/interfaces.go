package filestorage

import "mime/multipart"

// FileStorage defines the interface for staged file storage operations.
// Complaint attachments are written here by the transport layer before the
// creation transaction begins, and must be removed again when validation or
// the transaction fails.
type FileStorage interface {
	// SaveFile stages an uploaded file under the given subdirectory and
	// returns the stored relative path.
	SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error)

	// DeleteFile removes a staged file from storage.
	DeleteFile(filePath string) error

	// FileURL returns the public URL for a stored file path.
	FileURL(filePath string) string
}
