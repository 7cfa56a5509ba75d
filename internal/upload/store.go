package upload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"rentaid/internal/common"
)

// DefaultMaxFileBytes caps each uploaded license image at 5 MiB.
const DefaultMaxFileBytes = 5 << 20

var extPattern = regexp.MustCompile(`^\.[a-z0-9]{1,8}$`)

// Store keeps uploaded files in a flat directory under generated names.
type Store struct {
	dir      string
	maxBytes int64
}

func NewStore(dir string, maxBytes int64) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("upload directory is required")
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxFileBytes
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &Store{dir: filepath.Clean(dir), maxBytes: maxBytes}, nil
}

// Save streams one upload to disk under a collision-resistant name and
// returns the stored filename. Files over the size cap are rejected before
// any record is written.
func (s *Store) Save(clientName string, r io.Reader) (string, error) {
	stored := uuid.NewString() + sanitizeExt(clientName)
	path := filepath.Join(s.dir, stored)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", common.NewError(common.CodeInternal, "failed to store upload", err)
	}
	written, err := io.Copy(f, io.LimitReader(r, s.maxBytes+1))
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return "", common.NewError(common.CodeInternal, "failed to store upload", err)
	}
	if written > s.maxBytes {
		_ = os.Remove(path)
		return "", common.NewValidationError("uploaded file exceeds the size limit", map[string]string{"file": fmt.Sprintf("must be at most %d bytes", s.maxBytes)})
	}
	return stored, nil
}

// Remove is best-effort cleanup for files whose record was never written.
func (s *Store) Remove(name string) {
	if name == "" {
		return
	}
	_ = os.Remove(filepath.Join(s.dir, filepath.Base(name)))
}

// Path resolves a stored filename for serving. Anything that is not a bare
// filename inside the store is treated as not found.
func (s *Store) Path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", common.NewError(common.CodeNotFound, "file not found", nil)
	}
	path := filepath.Join(s.dir, name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", common.NewError(common.CodeNotFound, "file not found", err)
	}
	return path, nil
}

// sanitizeExt keeps the client extension only when it looks like one.
func sanitizeExt(clientName string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(clientName)))
	if !extPattern.MatchString(ext) {
		return ""
	}
	return ext
}
