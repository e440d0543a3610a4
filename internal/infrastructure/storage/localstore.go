// Package storage keeps invoice documents on the local filesystem. The
// record store only receives the resulting public URL; the file itself
// is served as a static asset.
package storage

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const reportsSubdir = "reports"

type LocalStore struct {
	uploadDir  string
	publicPath string
}

func NewLocalStore(uploadDir, publicPath string) *LocalStore {
	return &LocalStore{
		uploadDir:  uploadDir,
		publicPath: publicPath,
	}
}

// SaveInvoice writes the PDF under the reports directory and returns
// the public URL path it will be served from. Filenames carry the
// ticket ID, a timestamp and a random suffix so uploads never collide.
func (s *LocalStore) SaveInvoice(ticketID string, data []byte) (string, error) {
	dir := filepath.Join(s.uploadDir, reportsSubdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create reports directory: %w", err)
	}

	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		return "", fmt.Errorf("failed to generate filename suffix: %w", err)
	}

	filename := fmt.Sprintf("ticket_%s_%d_%s.pdf", ticketID, time.Now().UnixMilli(), hex.EncodeToString(suffix))

	if err := os.WriteFile(filepath.Join(dir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write invoice file: %w", err)
	}

	return s.publicPath + "/" + reportsSubdir + "/" + filename, nil
}

// Dir returns the root directory served under the public path.
func (s *LocalStore) Dir() string {
	return s.uploadDir
}
