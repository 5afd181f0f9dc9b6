// Package model defines the memoir record types.
package model

import (
	"strconv"
	"time"
)

// Category classifies what a memory is about.
type Category string

// The closed set of memory categories.
const (
	CategoryPerson       Category = "person"
	CategoryEvent        Category = "event"
	CategoryObject       Category = "object"
	CategoryPlace        Category = "place"
	CategoryThought      Category = "thought"
	CategoryConversation Category = "conversation"
)

// Categories lists every valid category in menu order.
var Categories = []Category{
	CategoryPerson,
	CategoryEvent,
	CategoryObject,
	CategoryPlace,
	CategoryThought,
	CategoryConversation,
}

// ValidCategories are the allowed category strings.
var ValidCategories = map[Category]bool{
	CategoryPerson:       true,
	CategoryEvent:        true,
	CategoryObject:       true,
	CategoryPlace:        true,
	CategoryThought:      true,
	CategoryConversation: true,
}

// ParseCategory translates a stored category string into the closed set.
// Unknown strings fall back to CategoryThought so loading never fails.
func ParseCategory(s string) Category {
	c := Category(s)
	if ValidCategories[c] {
		return c
	}
	return CategoryThought
}

// Mood is the user's current emotional state for a run. It is never
// persisted; when set it pre-fills the sentiments of new memories.
type Mood string

// The closed set of moods.
const (
	MoodJoyful     Mood = "joyful"
	MoodContent    Mood = "content"
	MoodNostalgic  Mood = "nostalgic"
	MoodMelancholy Mood = "melancholy"
	MoodReflective Mood = "reflective"
	MoodNeutral    Mood = "neutral"
)

// Moods lists every valid mood in menu order.
var Moods = []Mood{
	MoodJoyful,
	MoodContent,
	MoodNostalgic,
	MoodMelancholy,
	MoodReflective,
	MoodNeutral,
}

// Importance and privacy bounds. Both are clamped at entry time only and
// never re-validated on load.
const (
	MinImportance = 1
	MaxImportance = 5
	MinPrivacy    = 1
	MaxPrivacy    = 3
)

// Memory represents a single recorded autobiographical note.
type Memory struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	Category     Category  `json:"category"`
	OriginalDate string    `json:"original_date,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	People       []string  `json:"people,omitempty"`
	Places       []string  `json:"places,omitempty"`
	Objects      []string  `json:"objects,omitempty"`
	Sentiments   []string  `json:"sentiments,omitempty"`
	Tags         []string  `json:"tags,omitempty"`
	Importance   int       `json:"importance"`
	Privacy      int       `json:"privacy"`
}

// Profile describes a remembered person, independent of any memory.
type Profile struct {
	Name         string   `json:"name"`
	Nickname     string   `json:"nickname,omitempty"`
	Relationship string   `json:"relationship,omitempty"`
	BirthDate    string   `json:"birth_date,omitempty"`
	DeathDate    string   `json:"death_date,omitempty"`
	Traits       []string `json:"traits,omitempty"`
}

// DateLayout is the day/month/year form profile dates are written in.
const DateLayout = "02/01/2006"

// Age derives the person's age in whole years. With a death date it is the
// age at death; otherwise it is the age as of now. The second return is
// false when either date fails to parse.
func (p *Profile) Age(now time.Time) (int, bool) {
	birth, err := time.Parse(DateLayout, p.BirthDate)
	if err != nil {
		return 0, false
	}
	end := now
	if p.DeathDate != "" {
		end, err = time.Parse(DateLayout, p.DeathDate)
		if err != nil {
			return 0, false
		}
	}
	if end.Before(birth) {
		return 0, false
	}
	years := end.Year() - birth.Year()
	if end.Month() < birth.Month() ||
		(end.Month() == birth.Month() && end.Day() < birth.Day()) {
		years--
	}
	return years, true
}

// AgeLabel renders the derived age, or "unknown" when it cannot be computed.
func (p *Profile) AgeLabel(now time.Time) string {
	age, ok := p.Age(now)
	if !ok {
		return "unknown"
	}
	return strconv.Itoa(age)
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
