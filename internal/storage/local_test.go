package storage_test

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"etalase/internal/storage"
)

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", name)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	reader := multipart.NewReader(&buf, w.Boundary())
	form, err := reader.ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("failed to read multipart form: %v", err)
	}
	return form.File["file"][0]
}

func TestLocalUploader_Save(t *testing.T) {
	dir := t.TempDir()
	uploader, err := storage.NewLocalUploader(dir, "/uploads")
	assert.NoError(t, err)

	url, err := uploader.Save(fileHeader(t, "halwa photo.png", []byte("image-bytes")))
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/"), "got %q", url)
	// Unsafe characters are stripped from the stored name.
	assert.NotContains(t, url, " ")
	assert.True(t, strings.HasSuffix(url, ".png"))

	content, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(url, "/uploads/")))
	assert.NoError(t, err)
	assert.Equal(t, []byte("image-bytes"), content)
}

func TestLocalUploader_UniqueNames(t *testing.T) {
	dir := t.TempDir()
	uploader, err := storage.NewLocalUploader(dir, "/uploads")
	assert.NoError(t, err)

	first, err := uploader.Save(fileHeader(t, "same.png", []byte("one")))
	assert.NoError(t, err)
	second, err := uploader.Save(fileHeader(t, "same.png", []byte("two")))
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}
