// Package localstore persists the session user to a single well-known record
// on disk, mirroring the browser local-storage contract of the original web
// client: written on every session change, removed on logout, read once at
// startup, malformed content silently discarded.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/farmquest-india/farmquest/farmquest/config"
	"github.com/farmquest-india/farmquest/farmquest/models"
)

type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) sessionPath() string {
	return filepath.Join(s.dir, config.SessionKey+".json")
}

// SaveSession mirrors the session user record. The write goes through a temp
// file and rename so a crash never leaves a half-written record behind.
func (s *Store) SaveSession(user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal session user: %w", err)
	}

	tmp := s.sessionPath() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write session record: %w", err)
	}
	if err := os.Rename(tmp, s.sessionPath()); err != nil {
		return fmt.Errorf("failed to commit session record: %w", err)
	}
	return nil
}

// LoadSession returns the persisted session user, or nil when there is none.
// A corrupt record is discarded (logged, not surfaced) and treated as absent.
func (s *Store) LoadSession() (*models.User, error) {
	data, err := os.ReadFile(s.sessionPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session record: %w", err)
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		slog.Warn("Discarding malformed session record",
			slog.String("path", s.sessionPath()),
			slog.Any("error", err))
		return nil, nil
	}
	if user.ID == "" {
		slog.Warn("Discarding session record without user id",
			slog.String("path", s.sessionPath()))
		return nil, nil
	}
	return &user, nil
}

// ClearSession removes the persisted record. Missing files are fine.
func (s *Store) ClearSession() error {
	if err := os.Remove(s.sessionPath()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove session record: %w", err)
	}
	return nil
}
