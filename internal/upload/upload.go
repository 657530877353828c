package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Store persists uploaded files under a fixed directory and hands back the
// path to reference from a product. Files are never validated, deduplicated
// or deleted.
type Store struct {
	Dir string
}

// Save writes the uploaded file under a collision-resistant name built from
// the current time, a short random suffix and the original extension.
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("%d_%s%s",
		time.Now().UnixNano(),
		uuid.NewString()[:8],
		filepath.Ext(fh.Filename),
	)
	path := filepath.Join(s.Dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return path, nil
}
