// Package storage turns uploaded image files into publicly reachable
// URLs. The rest of the system only ever stores and displays the returned
// URL string; no image processing happens here.
package storage

import (
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Uploader saves an uploaded file and returns its public URL.
type Uploader interface {
	Save(file *multipart.FileHeader) (string, error)
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.]`)

// uniqueName prefixes the sanitized original filename with a UUID so two
// uploads of the same file never collide.
func uniqueName(original string) string {
	base := unsafeChars.ReplaceAllString(filepath.Base(original), "")
	if base == "" || strings.HasPrefix(base, ".") {
		base = "upload" + base
	}
	return uuid.New().String() + "-" + base
}
