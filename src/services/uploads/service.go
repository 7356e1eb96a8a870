package uploads

import (
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/Jafre0912/ReactNativeFORM/src/services"

	"github.com/google/uuid"
)

// PublicPrefix is the URL prefix the upload directory is served under.
const PublicPrefix = "/uploads"

// ImageStore writes uploaded images to a local directory. Stored names are
// "<uuid>-<original name>", so equal client filenames never collide.
type ImageStore struct {
	dir string
}

func NewImageStore(dir string) *ImageStore {
	return &ImageStore{dir: dir}
}

func (s *ImageStore) Dir() string {
	return s.dir
}

// Store persists data and returns the public path of the stored file.
// The directory is created on first use.
func (s *ImageStore) Store(data []byte, originalName string) (string, error) {
	if len(data) == 0 {
		return "", services.ErrNoFileProvided
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	fileName := uuid.NewString() + "-" + cleanName(originalName)
	filePath := filepath.Join(s.dir, fileName)
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	slog.Info("image stored", slog.String("file", fileName), slog.Int("bytes", len(data)))
	return PublicPath(fileName), nil
}

// PublicPath maps a stored filename to the URL it is served from.
func PublicPath(fileName string) string {
	return path.Join(PublicPrefix, fileName)
}

// cleanName keeps only the base name of a client supplied filename.
func cleanName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Base(name)
	if name == "." || name == "/" || name == ".." {
		return "image"
	}
	return name
}
