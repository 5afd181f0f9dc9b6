package store

import "github.com/keepsake/memoir/internal/model"

// SeedIfEmpty installs the demonstration records when both collections are
// empty, then persists them. It is an explicit hook called by the CLI
// before the menu is shown, never by Open, so tests can skip it. Returns
// true when seeding happened.
func (s *Store) SeedIfEmpty() (bool, error) {
	if len(s.memories) > 0 || len(s.profiles) > 0 {
		return false, nil
	}

	s.AddProfile(AddProfileParams{
		Name:         "Sam Rivera",
		Nickname:     "Sammy",
		Relationship: "childhood friend",
		BirthDate:    "14/03/1991",
		Traits:       []string{"loyal", "funny", "always late"},
	})

	s.AddMemory(AddMemoryParams{
		Title:      "First day at the lake house",
		Body:       "We arrived just before sunset and Sam insisted on swimming even though the water was freezing. The whole week felt like it lasted a month.",
		Category:   model.CategoryEvent,
		People:     []string{"Sam Rivera"},
		Places:     []string{"lake house"},
		Sentiments: []string{"joyful", "nostalgic"},
		Tags:       []string{"summer", "travel"},
		Importance: 5,
		Privacy:    1,
	})
	s.AddMemory(AddMemoryParams{
		Title:      "Grandmother's kitchen radio",
		Body:       "A small green radio that only picked up two stations. She kept it on the windowsill above the sink and never let anyone retune it.",
		Category:   model.CategoryObject,
		Objects:    []string{"green radio"},
		Places:     []string{"grandmother's kitchen"},
		Sentiments: []string{"nostalgic"},
		Tags:       []string{"family", "childhood"},
		Importance: 4,
		Privacy:    2,
	})
	s.AddMemory(AddMemoryParams{
		Title:      "Why I keep notebooks",
		Body:       "Realized today that I write things down not to remember them later but to notice them now.",
		Category:   model.CategoryThought,
		Sentiments: []string{"reflective"},
		Tags:       []string{"writing"},
		Importance: 3,
		Privacy:    1,
	})

	if err := s.Save(); err != nil {
		return true, err
	}
	return true, nil
}
