package upload

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/reignite/reignite/internal/domain"
)

// localStore implements domain.FileStore on the local filesystem. Files land
// under dir/<category>/<name> and are served back at baseURL.
type localStore struct {
	dir     string
	baseURL string
}

// NewLocalStore creates a FileStore rooted at dir, publishing URLs under
// baseURL (e.g. "/uploads").
func NewLocalStore(dir, baseURL string) domain.FileStore {
	return &localStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}
}

func (s *localStore) Save(ctx context.Context, category, name string, contentType string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// Path traversal guard: category and name must stay inside the store.
	category = filepath.Base(filepath.Clean(category))
	name = filepath.Base(filepath.Clean(name))
	if category == "." || category == ".." || name == "." || name == ".." {
		return "", domain.NewAppError(domain.CodeValidation, "invalid upload path", nil)
	}

	targetDir := filepath.Join(s.dir, category)
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	f, err := os.Create(filepath.Join(targetDir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return s.baseURL + "/" + category + "/" + name, nil
}
