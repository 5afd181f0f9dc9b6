package shell

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keepsake/memoir/internal/store"
)

// run scripts a whole session: each element is one line of user input.
func run(t *testing.T, st *store.Store, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	sh := New(st, strings.NewReader(strings.Join(lines, "\n")+"\n"), &out)
	require.NoError(t, sh.Run())
	return out.String()
}

func newStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(t.TempDir())
	require.NoError(t, err)
	return st
}

func TestShell_RecordMemoryAndQuit(t *testing.T) {
	st := newStore(t)

	out := run(t, st,
		"1",
		"Trip to the coast",      // title
		"We drove out at dawn.",  // body
		"2",                      // category: event
		"last summer",            // original date
		"Sam Rivera, Ana",        // people
		"the coast",              // places
		"",                       // objects
		"excited",                // feelings
		"travel, sea",            // tags
		"5",                      // importance
		"2",                      // privacy
		"8",
	)

	assert.Contains(t, out, "Memory recorded: Trip to the coast")

	mems := st.Memories()
	require.Len(t, mems, 1)
	m := mems[0]
	assert.Equal(t, "Trip to the coast", m.Title)
	assert.Equal(t, "event", string(m.Category))
	assert.Equal(t, []string{"Sam Rivera", "Ana"}, m.People)
	assert.Equal(t, []string{"travel", "sea"}, m.Tags)
	assert.Equal(t, 5, m.Importance)
	assert.Equal(t, 2, m.Privacy)

	// The mutation was persisted: a fresh store sees it.
	st2, err := store.Open(st.DataDir())
	require.NoError(t, err)
	assert.Len(t, st2.Memories(), 1)
}

func TestShell_InvalidMenuChoiceReprompts(t *testing.T) {
	st := newStore(t)
	out := run(t, st, "banana", "8")
	assert.Contains(t, out, "please choose 1-8")
	assert.Contains(t, out, "Saving... goodbye.")
}

func TestShell_MoodPrefillsSentiment(t *testing.T) {
	st := newStore(t)

	run(t, st,
		"7", "3", // set mood: nostalgic
		"1",
		"Quiet evening", // title
		"",              // body
		"",              // category (defaults to thought)
		"",              // original date
		"",              // people
		"",              // places
		"",              // objects
		"",              // feelings -> mood fills in
		"",              // tags
		"",              // importance (default 3)
		"",              // privacy (default 1)
		"8",
	)

	mems := st.Memories()
	require.Len(t, mems, 1)
	assert.Equal(t, []string{"nostalgic"}, mems[0].Sentiments)
	assert.Equal(t, "thought", string(mems[0].Category))
	assert.Equal(t, 3, mems[0].Importance)
}

func TestShell_RemoveTraitOutOfRange(t *testing.T) {
	st := newStore(t)
	_, err := st.AddProfile(store.AddProfileParams{
		Name:   "Sam Rivera",
		Traits: []string{"loyal", "funny"},
	})
	require.NoError(t, err)

	out := run(t, st,
		"4", "Sam Rivera", // view profile
		"4", "9", // remove trait 9: out of range
		"5", // back to menu
		"8",
	)

	assert.Contains(t, out, "out of range")
	prof, ok := st.Profile("Sam Rivera")
	require.True(t, ok)
	assert.Equal(t, []string{"loyal", "funny"}, prof.Traits, "out-of-range removal must not mutate")
}

func TestShell_ProfileEditBlankKeeps(t *testing.T) {
	st := newStore(t)
	_, err := st.AddProfile(store.AddProfileParams{Name: "Ana", Nickname: "Annie"})
	require.NoError(t, err)

	run(t, st,
		"4", "Ana",
		"1", "", // change nickname, blank input: keep
		"2", "neighbor", // change relationship
		"5",
		"8",
	)

	prof, _ := st.Profile("Ana")
	assert.Equal(t, "Annie", prof.Nickname)
	assert.Equal(t, "neighbor", prof.Relationship)
}

func TestShell_SearchNoMatches(t *testing.T) {
	st := newStore(t)
	out := run(t, st,
		"2", "2", "lighthouse", // browse, by keyword
		"8",
	)
	assert.Contains(t, out, "No matching memories.")
}

func TestShell_CapsuleWithoutHighlights(t *testing.T) {
	st := newStore(t)
	_, err := st.AddMemory(store.AddMemoryParams{Title: "minor", Importance: 2, Privacy: 1})
	require.NoError(t, err)

	out := run(t, st, "6", "8")
	assert.Contains(t, out, "no higher-importance memories")
}

func TestShell_ReportWithoutMemories(t *testing.T) {
	st := newStore(t)
	out := run(t, st, "5", "8")
	assert.Contains(t, out, "no memories to report")
}
