// Package store holds the in-memory record store and its JSON persistence.
package store

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/keepsake/memoir/internal/model"
)

// DefaultDataDir is used when Open is given an empty directory.
const DefaultDataDir = "memoir_data"

// Store owns the two record mappings for the lifetime of one run. Both are
// fully materialized in memory, mutated in place, and serialized wholesale
// on save. Iteration follows insertion order.
type Store struct {
	dataDir string
	entropy *rand.Rand

	memories map[string]*model.Memory
	memOrder []string

	profiles  map[string]*model.Profile
	profOrder []string

	mood model.Mood

	warnings []string
}

// Open creates the data directory if needed and loads both collections.
// A missing or malformed file is never fatal: that collection starts empty
// and the problem is surfaced through Warnings.
func Open(dataDir string) (*Store, error) {
	if dataDir == "" {
		dataDir = DefaultDataDir
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	s := &Store{
		dataDir:  dataDir,
		entropy:  rand.New(rand.NewSource(time.Now().UnixNano())),
		memories: make(map[string]*model.Memory),
		profiles: make(map[string]*model.Profile),
	}
	s.load()
	return s, nil
}

// DataDir returns the directory backing this store.
func (s *Store) DataDir() string { return s.dataDir }

// Warnings reports non-fatal problems encountered while loading.
func (s *Store) Warnings() []string { return s.warnings }

func (s *Store) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

// Mood returns the current emotional state for this run.
func (s *Store) Mood() model.Mood { return s.mood }

// SetMood records the current emotional state. Per-run state only, never
// persisted.
func (s *Store) SetMood(m model.Mood) { s.mood = m }

// AddMemoryParams holds input for recording a memory.
type AddMemoryParams struct {
	Title        string
	Body         string
	Category     model.Category
	OriginalDate string
	People       []string
	Places       []string
	Objects      []string
	Sentiments   []string
	Tags         []string
	Importance   int
	Privacy      int
}

// AddMemory records a new memory. Importance and privacy are clamped to
// their ranges here, at entry time only. When no sentiments are given and a
// mood is set, the mood becomes the first sentiment.
func (s *Store) AddMemory(p AddMemoryParams) (*model.Memory, error) {
	if strings.TrimSpace(p.Title) == "" {
		return nil, fmt.Errorf("memory title is required")
	}
	cat := p.Category
	if !model.ValidCategories[cat] {
		cat = model.CategoryThought
	}
	sentiments := p.Sentiments
	if len(sentiments) == 0 && s.mood != "" {
		sentiments = []string{string(s.mood)}
	}

	m := &model.Memory{
		ID:           s.newID(),
		Title:        strings.TrimSpace(p.Title),
		Body:         p.Body,
		Category:     cat,
		OriginalDate: p.OriginalDate,
		CreatedAt:    time.Now(),
		People:       p.People,
		Places:       p.Places,
		Objects:      p.Objects,
		Sentiments:   sentiments,
		Tags:         p.Tags,
		Importance:   model.Clamp(p.Importance, model.MinImportance, model.MaxImportance),
		Privacy:      model.Clamp(p.Privacy, model.MinPrivacy, model.MaxPrivacy),
	}
	s.memories[m.ID] = m
	s.memOrder = append(s.memOrder, m.ID)
	return m, nil
}

// EditMemoryParams holds optional replacements for a memory's editable
// fields. Nil keeps the existing value.
type EditMemoryParams struct {
	Title      *string
	Body       *string
	Importance *int
	Tags       []string
}

// EditMemory mutates an existing memory in place.
func (s *Store) EditMemory(id string, p EditMemoryParams) (*model.Memory, error) {
	m, ok := s.memories[id]
	if !ok {
		return nil, fmt.Errorf("memory not found: %s", id)
	}
	if p.Title != nil && strings.TrimSpace(*p.Title) != "" {
		m.Title = strings.TrimSpace(*p.Title)
	}
	if p.Body != nil {
		m.Body = *p.Body
	}
	if p.Importance != nil {
		m.Importance = model.Clamp(*p.Importance, model.MinImportance, model.MaxImportance)
	}
	if p.Tags != nil {
		m.Tags = p.Tags
	}
	return m, nil
}

// Memory returns one memory by id.
func (s *Store) Memory(id string) (*model.Memory, bool) {
	m, ok := s.memories[id]
	return m, ok
}

// Memories returns every memory in insertion order.
func (s *Store) Memories() []*model.Memory {
	out := make([]*model.Memory, 0, len(s.memOrder))
	for _, id := range s.memOrder {
		out = append(out, s.memories[id])
	}
	return out
}

// AddProfileParams holds input for creating a profile.
type AddProfileParams struct {
	Name         string
	Nickname     string
	Relationship string
	BirthDate    string
	DeathDate    string
	Traits       []string
}

// AddProfile creates a profile. The name is the mapping key and must be
// unique.
func (s *Store) AddProfile(p AddProfileParams) (*model.Profile, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, fmt.Errorf("profile name is required")
	}
	if _, exists := s.profiles[name]; exists {
		return nil, fmt.Errorf("profile already exists: %s", name)
	}
	prof := &model.Profile{
		Name:         name,
		Nickname:     p.Nickname,
		Relationship: p.Relationship,
		BirthDate:    p.BirthDate,
		DeathDate:    p.DeathDate,
		Traits:       p.Traits,
	}
	s.profiles[name] = prof
	s.profOrder = append(s.profOrder, name)
	return prof, nil
}

// EditProfileParams holds optional replacements for a profile's editable
// fields. Nil keeps the existing value.
type EditProfileParams struct {
	Nickname     *string
	Relationship *string
}

// EditProfile mutates an existing profile in place.
func (s *Store) EditProfile(name string, p EditProfileParams) (*model.Profile, error) {
	prof, ok := s.profiles[name]
	if !ok {
		return nil, fmt.Errorf("profile not found: %s", name)
	}
	if p.Nickname != nil {
		prof.Nickname = *p.Nickname
	}
	if p.Relationship != nil {
		prof.Relationship = *p.Relationship
	}
	return prof, nil
}

// AddTrait appends one trait to a profile's trait list.
func (s *Store) AddTrait(name, trait string) error {
	prof, ok := s.profiles[name]
	if !ok {
		return fmt.Errorf("profile not found: %s", name)
	}
	trait = strings.TrimSpace(trait)
	if trait == "" {
		return fmt.Errorf("trait is empty")
	}
	prof.Traits = append(prof.Traits, trait)
	return nil
}

// RemoveTrait removes the trait at the given zero-based index. An
// out-of-range index returns an error and leaves the list unchanged.
func (s *Store) RemoveTrait(name string, index int) (string, error) {
	prof, ok := s.profiles[name]
	if !ok {
		return "", fmt.Errorf("profile not found: %s", name)
	}
	if index < 0 || index >= len(prof.Traits) {
		return "", fmt.Errorf("trait index %d out of range (have %d)", index, len(prof.Traits))
	}
	removed := prof.Traits[index]
	prof.Traits = append(prof.Traits[:index], prof.Traits[index+1:]...)
	return removed, nil
}

// Profile returns one profile by name.
func (s *Store) Profile(name string) (*model.Profile, bool) {
	p, ok := s.profiles[name]
	return p, ok
}

// Profiles returns every profile in insertion order.
func (s *Store) Profiles() []*model.Profile {
	out := make([]*model.Profile, 0, len(s.profOrder))
	for _, name := range s.profOrder {
		out = append(out, s.profiles[name])
	}
	return out
}

// MemoriesMentioning returns up to limit memories whose people list contains
// the given name. Computed on demand, not cached.
func (s *Store) MemoriesMentioning(name string, limit int) []*model.Memory {
	var out []*model.Memory
	for _, id := range s.memOrder {
		m := s.memories[id]
		for _, p := range m.People {
			if strings.EqualFold(p, name) {
				out = append(out, m)
				break
			}
		}
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

// ImportMemory installs a memory from an export, keeping its identifier and
// timestamp. Returns false when the id is already present.
func (s *Store) ImportMemory(m *model.Memory) bool {
	if _, exists := s.memories[m.ID]; exists {
		return false
	}
	cp := *m
	cp.Category = model.ParseCategory(string(m.Category))
	s.memories[cp.ID] = &cp
	s.memOrder = append(s.memOrder, cp.ID)
	return true
}

// ImportProfile installs a profile from an export. Returns false when the
// name is already present.
func (s *Store) ImportProfile(p *model.Profile) bool {
	if _, exists := s.profiles[p.Name]; exists {
		return false
	}
	cp := *p
	s.profiles[cp.Name] = &cp
	s.profOrder = append(s.profOrder, cp.Name)
	return true
}
