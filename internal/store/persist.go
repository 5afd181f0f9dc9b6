package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/keepsake/memoir/internal/model"
)

// On-disk file names inside the data directory. Both collections are
// persisted as JSON arrays in insertion order, because JSON object keys do
// not round-trip their order through encoding/json.
const (
	memoriesFile = "memories.json"
	profilesFile = "profiles.json"
)

func (s *Store) load() {
	var mems []*model.Memory
	if s.loadFile(memoriesFile, &mems) {
		for _, m := range mems {
			if m == nil || m.ID == "" {
				continue
			}
			m.Category = model.ParseCategory(string(m.Category))
			if _, dup := s.memories[m.ID]; dup {
				continue
			}
			s.memories[m.ID] = m
			s.memOrder = append(s.memOrder, m.ID)
		}
	}

	var profs []*model.Profile
	if s.loadFile(profilesFile, &profs) {
		for _, p := range profs {
			if p == nil || p.Name == "" {
				continue
			}
			if _, dup := s.profiles[p.Name]; dup {
				continue
			}
			s.profiles[p.Name] = p
			s.profOrder = append(s.profOrder, p.Name)
		}
	}
}

// loadFile reads one collection file. A missing file is normal on first
// run; a read or parse failure leaves the collection empty and records a
// warning.
func (s *Store) loadFile(name string, v any) bool {
	path := filepath.Join(s.dataDir, name)
	b, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.warnings = append(s.warnings, fmt.Sprintf("read %s: %v (starting empty)", name, err))
		}
		return false
	}
	if err := json.Unmarshal(b, v); err != nil {
		s.warnings = append(s.warnings, fmt.Sprintf("parse %s: %v (starting empty)", name, err))
		return false
	}
	return true
}

// Save serializes both mappings wholesale, in insertion order. A write
// failure is returned once and not retried.
func (s *Store) Save() error {
	if err := s.saveFile(memoriesFile, s.Memories()); err != nil {
		return err
	}
	return s.saveFile(profilesFile, s.Profiles())
}

func (s *Store) saveFile(name string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	path := filepath.Join(s.dataDir, name)
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
