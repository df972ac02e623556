// Package images stores meeting photos as individual files named
// "{meetingId}.jpg" in the shared storage directory.
package images

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/kakai/internal/common"
	"github.com/dmitrijs2005/kakai/internal/filex"
)

// Extension is appended to meeting ids to form image filenames.
const Extension = ".jpg"

// Store reads and writes image blobs in a single directory.
type Store struct {
	dir string
}

// NewStore creates dir if needed.
func NewStore(dir string) (*Store, error) {
	abs, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, fmt.Errorf("error creating images dir: %w", err)
	}
	return &Store{dir: abs}, nil
}

// FileName is the image filename for a meeting id.
func FileName(meetingID string) string {
	return meetingID + Extension
}

// Dir returns the absolute images directory.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(filename string) (string, error) {
	if filename == "" || filepath.Base(filename) != filename || filename == "." || filename == ".." {
		return "", fmt.Errorf("%w: %q", common.ErrInvalidImage, filename)
	}
	return filepath.Join(s.dir, filename), nil
}

// Save writes data as the image of meetingID and returns its filename.
// An existing image for the same meeting is replaced.
func (s *Store) Save(ctx context.Context, data []byte, meetingID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", common.ErrEmptyImage
	}

	name := FileName(meetingID)
	p, err := s.path(name)
	if err != nil {
		return "", err
	}
	if err := filex.WriteFileAtomic(p, data, 0o600); err != nil {
		return "", fmt.Errorf("error writing image: %w", err)
	}
	return name, nil
}

// Load returns the bytes of filename.
func (s *Store) Load(ctx context.Context, filename string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := s.path(filename)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("error reading image: %w", err)
	}
	return b, nil
}

// Delete removes filename; a missing file is not an error.
func (s *Store) Delete(ctx context.Context, filename string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := s.path(filename)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error removing image: %w", err)
	}
	return nil
}
