// Package report aggregates the memory collection and renders the text
// report and the HTML time capsule.
package report

import (
	"errors"
	"sort"
	"time"

	"github.com/keepsake/memoir/internal/model"
)

// ErrNoMemories is returned when a renderer is asked to write with nothing
// to report. No file is created in that case.
var ErrNoMemories = errors.New("no memories to report")

// ErrNoHighlights is returned when no memory reaches the time-capsule
// importance threshold.
var ErrNoHighlights = errors.New("no higher-importance memories")

// CapsuleThreshold is the minimum importance for time-capsule inclusion.
const CapsuleThreshold = 4

// PersonCount pairs a person name with how often they are mentioned.
type PersonCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Summary is the aggregate computed over the whole memory collection.
type Summary struct {
	Total        int                    `json:"total"`
	ByCategory   map[model.Category]int `json:"by_category"`
	ByImportance map[int]int            `json:"by_importance"`
	Earliest     time.Time              `json:"earliest,omitzero"`
	TopPeople    []PersonCount          `json:"top_people,omitempty"`
}

// Summarize computes counts by category and importance level, the earliest
// creation timestamp, and the five most-mentioned people. Ties between
// people are broken by first-encountered order.
func Summarize(mems []*model.Memory) *Summary {
	sum := &Summary{
		Total:        len(mems),
		ByCategory:   make(map[model.Category]int),
		ByImportance: make(map[int]int),
	}

	counts := make(map[string]int)
	var order []string

	for _, m := range mems {
		sum.ByCategory[m.Category]++
		sum.ByImportance[m.Importance]++
		if sum.Earliest.IsZero() || m.CreatedAt.Before(sum.Earliest) {
			sum.Earliest = m.CreatedAt
		}
		for _, p := range m.People {
			if counts[p] == 0 {
				order = append(order, p)
			}
			counts[p]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > 5 {
		order = order[:5]
	}
	for _, name := range order {
		sum.TopPeople = append(sum.TopPeople, PersonCount{Name: name, Count: counts[name]})
	}

	return sum
}

// Percent renders n out of total as a percentage; zero total yields zero.
func Percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) * 100 / float64(total)
}

// newestFirst returns a copy of mems sorted by creation time, descending.
func newestFirst(mems []*model.Memory) []*model.Memory {
	out := make([]*model.Memory, len(mems))
	copy(out, mems)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
