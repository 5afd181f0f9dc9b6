package report

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keepsake/memoir/internal/model"
)

var day = time.Date(2024, time.May, 10, 9, 0, 0, 0, time.UTC)

func mem(title string, cat model.Category, importance int, created time.Time, people ...string) *model.Memory {
	return &model.Memory{
		ID:         "id-" + title,
		Title:      title,
		Body:       "body of " + title,
		Category:   cat,
		CreatedAt:  created,
		People:     people,
		Importance: importance,
		Privacy:    1,
	}
}

func TestSummarize(t *testing.T) {
	mems := []*model.Memory{
		mem("a", model.CategoryEvent, 5, day.AddDate(0, 0, 2)),
		mem("b", model.CategoryEvent, 3, day),
		mem("c", model.CategoryThought, 3, day.AddDate(0, 0, 1)),
		mem("d", model.CategoryPlace, 1, day.AddDate(0, 0, 3)),
	}

	sum := Summarize(mems)
	assert.Equal(t, 4, sum.Total)
	assert.Equal(t, 2, sum.ByCategory[model.CategoryEvent])
	assert.Equal(t, 1, sum.ByCategory[model.CategoryThought])
	assert.Equal(t, 2, sum.ByImportance[3])
	assert.Equal(t, 1, sum.ByImportance[5])
	assert.True(t, sum.Earliest.Equal(day), "earliest should be the oldest creation time")
	assert.InDelta(t, 50.0, Percent(sum.ByCategory[model.CategoryEvent], sum.Total), 0.001)
}

func TestSummarize_TopPeopleStableTies(t *testing.T) {
	mems := []*model.Memory{
		mem("a", model.CategoryEvent, 3, day, "Ana", "Ben"),
		mem("b", model.CategoryEvent, 3, day, "Ben", "Ana", "Carl"),
		mem("c", model.CategoryEvent, 3, day, "Dora", "Eli", "Fay", "Gus"),
	}

	sum := Summarize(mems)
	require.Len(t, sum.TopPeople, 5, "top list is capped at five")
	// Ana and Ben are tied at 2; Ana was encountered first.
	assert.Equal(t, PersonCount{Name: "Ana", Count: 2}, sum.TopPeople[0])
	assert.Equal(t, PersonCount{Name: "Ben", Count: 2}, sum.TopPeople[1])
	// The remaining singles keep first-encountered order.
	assert.Equal(t, "Carl", sum.TopPeople[2].Name)
	assert.Equal(t, "Dora", sum.TopPeople[3].Name)
	assert.Equal(t, "Eli", sum.TopPeople[4].Name)
}

func TestWriteText_NewestFirstAndTruncated(t *testing.T) {
	long := strings.Repeat("x", 195) + "MARKER" + strings.Repeat("y", 100)
	old := mem("older", model.CategoryEvent, 3, day)
	recent := mem("newer", model.CategoryThought, 4, day.AddDate(0, 1, 0))
	recent.Body = long

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, []*model.Memory{old, recent}, day.AddDate(0, 2, 0)))
	out := buf.String()

	assert.Less(t, strings.Index(out, "newer"), strings.Index(out, "older"), "listing must be newest first")
	assert.Contains(t, out, "...", "long bodies are truncated")
	assert.NotContains(t, out, "yyyy", "truncated tail must not appear")
	assert.Contains(t, out, "Total memories: 2")
}

func TestWriteTextFile_NoMemories(t *testing.T) {
	dir := t.TempDir()
	_, err := WriteTextFile(dir, nil, day)
	assert.ErrorIs(t, err, ErrNoMemories)

	entries, _ := os.ReadDir(dir)
	assert.Empty(t, entries, "no file may be written without data")
}

func TestWriteCapsule_ThresholdAndEscaping(t *testing.T) {
	keep := mem("The <Wedding>", model.CategoryEvent, 5, day, "Ana")
	keep.Sentiments = []string{"joyful"}
	drop := mem("errand", model.CategoryThought, 3, day)

	var buf bytes.Buffer
	require.NoError(t, WriteCapsule(&buf, []*model.Memory{keep, drop}, day))
	out := buf.String()

	assert.Contains(t, out, "The &lt;Wedding&gt;", "titles are HTML-escaped")
	assert.NotContains(t, out, "errand", "below-threshold memories stay out")
	assert.Contains(t, out, "★★★★★")
	assert.Contains(t, out, "With: Ana")
	assert.Contains(t, out, "Feeling: joyful")
}

func TestWriteCapsuleFile_NoHighlights(t *testing.T) {
	dir := t.TempDir()
	mems := []*model.Memory{
		mem("a", model.CategoryEvent, 3, day),
		mem("b", model.CategoryThought, 2, day),
	}

	_, err := WriteCapsuleFile(dir, mems, day)
	assert.ErrorIs(t, err, ErrNoHighlights)

	entries, _ := os.ReadDir(dir)
	assert.Empty(t, entries, "no file may be written without highlights")
}

func TestWriteCapsuleFile_NamesByDate(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteCapsuleFile(dir, []*model.Memory{mem("a", model.CategoryEvent, 4, day)}, day)
	require.NoError(t, err)
	assert.Contains(t, path, "capsule_2024-05-10.html")

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "TIME CAPSULE")
}
