package store

import (
	"sort"
	"strings"

	"github.com/keepsake/memoir/internal/model"
)

// Mode selects which filter a query applies.
type Mode string

// The supported query modes.
const (
	ModeAll        Mode = "all"
	ModeKeyword    Mode = "keyword"
	ModePerson     Mode = "person"
	ModeSentiment  Mode = "sentiment"
	ModeCategory   Mode = "category"
	ModeImportance Mode = "importance"
)

// Query holds parameters for one linear scan over the memory mapping.
// Term is the match text for keyword/person/sentiment/category modes;
// MinImportance applies only to ModeImportance.
type Query struct {
	Mode          Mode
	Term          string
	MinImportance int
}

// Find scans every memory and returns the matches, newest first. Keyword,
// person, and sentiment matching is case-insensitive substring containment;
// category is exact; importance is a ≥ threshold.
func (s *Store) Find(q Query) []*model.Memory {
	term := strings.ToLower(strings.TrimSpace(q.Term))

	var out []*model.Memory
	for _, id := range s.memOrder {
		m := s.memories[id]
		if matches(m, q, term) {
			out = append(out, m)
		}
	}
	// Stable keeps insertion order for equal timestamps.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func matches(m *model.Memory, q Query, term string) bool {
	switch q.Mode {
	case ModeKeyword:
		if strings.Contains(strings.ToLower(m.Title), term) ||
			strings.Contains(strings.ToLower(m.Body), term) {
			return true
		}
		return containsFold(m.Tags, term)
	case ModePerson:
		return containsFold(m.People, term)
	case ModeSentiment:
		return containsFold(m.Sentiments, term)
	case ModeCategory:
		return m.Category == model.Category(term)
	case ModeImportance:
		return m.Importance >= q.MinImportance
	default:
		return true
	}
}

// containsFold reports whether any list entry contains the lowercased term.
func containsFold(list []string, term string) bool {
	for _, v := range list {
		if strings.Contains(strings.ToLower(v), term) {
			return true
		}
	}
	return false
}
