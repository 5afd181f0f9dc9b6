package store

import (
	"testing"
	"time"

	"github.com/keepsake/memoir/internal/model"
)

// queryStore builds a store with a fixed set of memories whose creation
// times are staggered a day apart, oldest first.
func queryStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	base := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	fixtures := []AddMemoryParams{
		{Title: "Morning at the Harbor", Body: "Gulls everywhere.", Category: model.CategoryPlace,
			People: []string{"Sam Rivera"}, Sentiments: []string{"joyful"}, Tags: []string{"sea"}, Importance: 2, Privacy: 1},
		{Title: "The argument", Body: "We talked about the harbor for hours.", Category: model.CategoryConversation,
			People: []string{"Ana Petrova"}, Sentiments: []string{"melancholy"}, Importance: 4, Privacy: 3},
		{Title: "Old ticket stub", Body: "Found it in a coat pocket.", Category: model.CategoryObject,
			Sentiments: []string{"nostalgic"}, Tags: []string{"harbor", "keepsake"}, Importance: 3, Privacy: 1},
		{Title: "Quiet thought", Body: "Nothing matches here.", Category: model.CategoryThought,
			Importance: 5, Privacy: 1},
	}
	for i, p := range fixtures {
		m, err := s.AddMemory(p)
		if err != nil {
			t.Fatal(err)
		}
		m.CreatedAt = base.AddDate(0, 0, i)
	}
	return s
}

func TestFind_KeywordIff(t *testing.T) {
	s := queryStore(t)

	// A record is returned iff the keyword occurs, case-insensitively, in
	// its title, body, or any tag.
	got := s.Find(Query{Mode: ModeKeyword, Term: "HARBOR"})
	want := map[string]bool{"Morning at the Harbor": true, "The argument": true, "Old ticket stub": true}
	if len(got) != len(want) {
		t.Fatalf("expected %d matches, got %d", len(want), len(got))
	}
	for _, m := range got {
		if !want[m.Title] {
			t.Fatalf("unexpected match: %s", m.Title)
		}
	}

	if got := s.Find(Query{Mode: ModeKeyword, Term: "lighthouse"}); len(got) != 0 {
		t.Fatalf("expected no matches, got %d", len(got))
	}
}

func TestFind_ImportanceThreshold(t *testing.T) {
	s := queryStore(t)
	all := s.Memories()

	for threshold := 1; threshold <= 5; threshold++ {
		got := s.Find(Query{Mode: ModeImportance, MinImportance: threshold})

		returned := make(map[string]bool, len(got))
		for _, m := range got {
			if m.Importance < threshold {
				t.Fatalf("threshold %d returned importance %d", threshold, m.Importance)
			}
			returned[m.ID] = true
		}
		for _, m := range all {
			if m.Importance >= threshold && !returned[m.ID] {
				t.Fatalf("threshold %d omitted %s (importance %d)", threshold, m.Title, m.Importance)
			}
		}
	}
}

func TestFind_PersonSentimentCategory(t *testing.T) {
	s := queryStore(t)

	if got := s.Find(Query{Mode: ModePerson, Term: "rivera"}); len(got) != 1 || got[0].Title != "Morning at the Harbor" {
		t.Fatalf("person filter: %v", titles(got))
	}
	if got := s.Find(Query{Mode: ModeSentiment, Term: "Melanch"}); len(got) != 1 || got[0].Title != "The argument" {
		t.Fatalf("sentiment filter: %v", titles(got))
	}
	if got := s.Find(Query{Mode: ModeCategory, Term: "object"}); len(got) != 1 || got[0].Title != "Old ticket stub" {
		t.Fatalf("category filter: %v", titles(got))
	}
	// Category is exact, not substring.
	if got := s.Find(Query{Mode: ModeCategory, Term: "obj"}); len(got) != 0 {
		t.Fatalf("category must match exactly: %v", titles(got))
	}
}

func TestFind_NewestFirstEverywhere(t *testing.T) {
	s := queryStore(t)

	for _, q := range []Query{
		{Mode: ModeAll},
		{Mode: ModeKeyword, Term: "harbor"},
		{Mode: ModeImportance, MinImportance: 1},
	} {
		got := s.Find(q)
		for i := 1; i < len(got); i++ {
			if got[i].CreatedAt.After(got[i-1].CreatedAt) {
				t.Fatalf("mode %s not newest-first: %v", q.Mode, titles(got))
			}
		}
	}

	all := s.Find(Query{Mode: ModeAll})
	if all[0].Title != "Quiet thought" {
		t.Fatalf("expected the newest memory first, got %s", all[0].Title)
	}
}

func titles(mems []*model.Memory) []string {
	out := make([]string, len(mems))
	for i, m := range mems {
		out[i] = m.Title
	}
	return out
}
