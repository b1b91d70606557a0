package artifact

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Batch stages artifacts in temporary files next to their targets and
// renames them into place on Commit. Nothing is visible at a target path
// until every staged write has succeeded.
type Batch struct {
	overwrite bool
	staged    []stagedFile
}

type stagedFile struct {
	tmp  string
	path string
}

// NewBatch creates an empty batch. Without overwrite, staging a path that
// already exists fails with ErrArtifactExists.
func NewBatch(overwrite bool) *Batch {
	return &Batch{overwrite: overwrite}
}

// Stage runs write against a temporary file for path.
func (b *Batch) Stage(path string, write func(io.Writer) error) error {
	if !b.overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrArtifactExists, path)
		}
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("artifact: create dir %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("artifact: stage %s: %w", path, err)
	}
	tmpName := tmp.Name()

	if err := write(tmp); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("artifact: write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("artifact: close %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("artifact: chmod %s: %w", path, err)
	}
	b.staged = append(b.staged, stagedFile{tmp: tmpName, path: path})
	return nil
}

// Commit renames every staged file onto its target and returns the targets
// in staging order. Existing targets are moved aside first; a failed rename
// removes the targets already placed and restores the moved files.
func (b *Batch) Commit() ([]string, error) {
	var committed []committedFile
	for i, s := range b.staged {
		backup, err := moveAside(s.path)
		if err == nil {
			committed = append(committed, committedFile{path: s.path, backup: backup})
			err = os.Rename(s.tmp, s.path)
		}
		if err != nil {
			rollback(committed)
			for _, rest := range b.staged[i:] {
				_ = os.Remove(rest.tmp)
			}
			b.staged = nil
			return nil, fmt.Errorf("artifact: commit %s: %w", s.path, err)
		}
		log.Debug().Str("path", s.path).Msg("artifact: committed")
	}
	b.staged = nil

	placed := make([]string, 0, len(committed))
	for _, c := range committed {
		if c.backup != "" {
			if err := os.Remove(c.backup); err != nil {
				log.Warn().Err(err).Str("path", c.backup).Msg("artifact: backup not removed")
			}
		}
		placed = append(placed, c.path)
	}
	return placed, nil
}

type committedFile struct {
	path   string
	backup string
}

// moveAside renames an existing file at path to a sibling backup and returns
// the backup name, or "" when nothing exists at path.
func moveAside(path string) (string, error) {
	if _, err := os.Lstat(path); errors.Is(err, os.ErrNotExist) {
		return "", nil
	} else if err != nil {
		return "", err
	}
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".bak-*")
	if err != nil {
		return "", err
	}
	backup := f.Name()
	_ = f.Close()
	if err := os.Rename(path, backup); err != nil {
		_ = os.Remove(backup)
		return "", err
	}
	return backup, nil
}

func rollback(committed []committedFile) {
	for i := len(committed) - 1; i >= 0; i-- {
		c := committed[i]
		_ = os.Remove(c.path)
		if c.backup == "" {
			continue
		}
		if err := os.Rename(c.backup, c.path); err != nil {
			log.Error().Err(err).Str("path", c.path).Str("backup", c.backup).Msg("artifact: restore failed")
		}
	}
}

// Abort discards every staged file.
func (b *Batch) Abort() {
	var errs []error
	for _, s := range b.staged {
		if err := os.Remove(s.tmp); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	b.staged = nil
	if err := errors.Join(errs...); err != nil {
		log.Warn().Err(err).Msg("artifact: abort left temporary files")
	}
}

// WriteFileAtomic stages and commits a single file.
func WriteFileAtomic(path string, overwrite bool, write func(io.Writer) error) error {
	b := NewBatch(overwrite)
	if err := b.Stage(path, write); err != nil {
		return err
	}
	_, err := b.Commit()
	return err
}
