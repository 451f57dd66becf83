package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"lelongwatch/internal/model"
)

// File names within the data directory.
const (
	PropertiesFile = "properties.json"
	ChangesFile    = "changes.json"
	StatsFile      = "daily_stats.json"
	ProgressFile   = "scraping_progress.json"
)

// Store reads and writes the monitor's persisted state.
type Store struct {
	dir    string
	logger *slog.Logger
}

// New creates a store rooted at dir, creating the directory if needed.
func New(dir string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir, logger: logger}, nil
}

// Dir returns the data directory path.
func (s *Store) Dir() string {
	return s.dir
}

// LoadProperties loads the property database. A missing file yields an
// empty database (baseline run).
func (s *Store) LoadProperties() (map[string]model.StoredListing, error) {
	db := make(map[string]model.StoredListing)
	if err := s.readJSON(PropertiesFile, &db); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return db, nil
		}
		return nil, err
	}
	return db, nil
}

// SaveProperties writes the property database.
func (s *Store) SaveProperties(db map[string]model.StoredListing) error {
	if err := s.writeJSON(PropertiesFile, db); err != nil {
		return err
	}
	s.logger.Info("properties database saved", "properties", len(db))
	return nil
}

// LoadChanges loads the change-history log. A missing file yields an
// empty log.
func (s *Store) LoadChanges() ([]model.ChangeEvent, error) {
	var events []model.ChangeEvent
	if err := s.readJSON(ChangesFile, &events); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return events, nil
}

// AppendChanges appends events to the change-history log. The log is
// append-only: existing events are never rewritten or dropped.
func (s *Store) AppendChanges(events []model.ChangeEvent) error {
	if len(events) == 0 {
		return nil
	}
	existing, err := s.LoadChanges()
	if err != nil {
		return err
	}
	if err := s.writeJSON(ChangesFile, append(existing, events...)); err != nil {
		return err
	}
	s.logger.Info("change events appended", "appended", len(events), "total", len(existing)+len(events))
	return nil
}

// LoadStats loads the latest scan statistics, or nil if none recorded.
func (s *Store) LoadStats() (*model.ScanStats, error) {
	var stats model.ScanStats
	if err := s.readJSON(StatsFile, &stats); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return &stats, nil
}

// SaveStats writes the latest scan statistics.
func (s *Store) SaveStats(stats model.ScanStats) error {
	return s.writeJSON(StatsFile, stats)
}

// LoadProgress loads the latest fetch progress, or nil if none recorded.
func (s *Store) LoadProgress() (*model.ScanProgress, error) {
	var progress model.ScanProgress
	if err := s.readJSON(ProgressFile, &progress); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return &progress, nil
}

// SaveProgress writes the latest fetch progress.
func (s *Store) SaveProgress(progress model.ScanProgress) error {
	return s.writeJSON(ProgressFile, progress)
}

func (s *Store) readJSON(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

func (s *Store) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	// Write to a temp file in the same directory, then rename over the
	// target so readers never observe a partial document.
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", name, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close %s: %w", name, err)
	}

	if err := os.Rename(tmpPath, filepath.Join(s.dir, name)); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}
