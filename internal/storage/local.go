package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

// LocalUploader writes uploads to a directory served as static files and
// returns root-relative URLs like "/uploads/<name>".
type LocalUploader struct {
	dir     string
	urlBase string
}

// NewLocalUploader creates an uploader rooted at dir. Files become
// reachable under urlBase (typically "/uploads").
func NewLocalUploader(dir, urlBase string) (*LocalUploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &LocalUploader{dir: dir, urlBase: urlBase}, nil
}

// Save stores the uploaded file on disk under a unique name.
func (u *LocalUploader) Save(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	name := uniqueName(file.Filename)
	dst, err := os.Create(filepath.Join(u.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}
	return u.urlBase + "/" + name, nil
}
