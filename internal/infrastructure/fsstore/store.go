package fsstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"listings-media-api/internal/domain/media"
)

// classDirs mirrors the public uploads layout the site serves from.
var classDirs = map[media.AssetClass]string{
	media.ClassAvatar:        "profiles",
	media.ClassPropertyPhoto: "properties",
	media.ClassPropertyVideo: filepath.Join("properties", "videos"),
}

// Store writes canonical and derivative files under a single uploads root.
// Filenames are decided by the caller through the media naming scheme; the
// store only places bytes and deletes the file sets derived from basenames.
type Store struct {
	root     string
	policies media.Policies
	logger   *zap.Logger
}

func New(root string, policies media.Policies, logger *zap.Logger) (*Store, error) {
	for _, dir := range classDirs {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			return nil, media.NewError(media.KindIO, "create upload directory", err)
		}
	}
	return &Store{root: root, policies: policies, logger: logger}, nil
}

func (s *Store) Path(class media.AssetClass, filename string) string {
	return filepath.Join(s.root, classDirs[class], filename)
}

func (s *Store) Write(class media.AssetClass, filename string, data []byte) (string, error) {
	path := s.Path(class, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", media.NewError(media.KindIO, fmt.Sprintf("write %s", filename), err)
	}
	return path, nil
}

// Remove is the failure-path rollback for files written during one attempt.
// Best-effort: a file that cannot be removed is logged, not returned.
func (s *Store) Remove(class media.AssetClass, filenames ...string) {
	for _, f := range filenames {
		if err := os.Remove(s.Path(class, f)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("rollback remove failed",
				zap.String("file", f), zap.Error(err))
		}
	}
}

// Sweep deletes every file implied by basename under the class policy's
// variant set. Missing files are fine: a repeated sweep of the same orphaned
// basename succeeds.
func (s *Store) Sweep(class media.AssetClass, basename string) error {
	if basename == "" || basename == media.DefaultAvatar {
		return nil
	}
	var firstErr error
	for _, f := range media.FileSet(basename, s.policies[class].Variants) {
		err := os.Remove(s.Path(class, f))
		if err == nil || errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if firstErr == nil {
			firstErr = media.NewError(media.KindIO, fmt.Sprintf("sweep %s", f), err)
		}
		s.logger.Warn("sweep remove failed", zap.String("file", f), zap.Error(err))
	}
	return firstErr
}

func (s *Store) Exists(class media.AssetClass, filename string) bool {
	_, err := os.Stat(s.Path(class, filename))
	return err == nil
}
