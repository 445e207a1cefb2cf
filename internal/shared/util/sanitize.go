package util

import (
	"errors"
	"strings"
)

// ErrBadFileName is returned for upload names that cannot be made safe.
var ErrBadFileName = errors.New("invalid file name")

// SanitizeFileName makes an uploaded file name safe to use as part of an
// object-store key. Traversal sequences are rejected outright, path
// separators become underscores, and a name that is empty after trimming
// is rejected.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", ErrBadFileName
	}
	safe := strings.TrimSpace(name)
	safe = strings.ReplaceAll(safe, "/", "_")
	safe = strings.ReplaceAll(safe, "\\", "_")
	if safe == "" {
		return "", ErrBadFileName
	}
	return safe, nil
}
