package donation

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ImageStore persists uploaded donation images on local disk and hands back
// the stored filenames.
type ImageStore struct {
	dir string
}

func NewImageStore(dir string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &ImageStore{dir: dir}, nil
}

func (s *ImageStore) Dir() string {
	return s.dir
}

// Save writes each uploaded file under a unique name. Only the base of the
// client-supplied filename is used, so path traversal is not possible.
func (s *ImageStore) Save(files []*multipart.FileHeader) ([]string, error) {
	names := make([]string, 0, len(files))

	for _, fh := range files {
		src, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open upload: %w", err)
		}

		name := uuid.New().String() + "-" + filepath.Base(fh.Filename)
		dst, err := os.Create(filepath.Join(s.dir, name))
		if err != nil {
			src.Close()
			return nil, fmt.Errorf("failed to create upload file: %w", err)
		}

		_, err = io.Copy(dst, src)
		src.Close()
		dst.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to write upload file: %w", err)
		}

		names = append(names, name)
	}

	return names, nil
}
