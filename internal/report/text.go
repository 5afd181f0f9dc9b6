package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/keepsake/memoir/internal/model"
)

const bodyPreviewRunes = 200

// WriteText renders the plain-text report: the summary followed by a full
// listing of every memory, newest first, with bodies truncated.
func WriteText(w io.Writer, mems []*model.Memory, now time.Time) error {
	sum := Summarize(mems)

	fmt.Fprintf(w, "MEMOIR REPORT — generated %s\n", now.Format("2 Jan 2006 15:04"))
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintf(w, "Total memories: %d\n", sum.Total)
	if !sum.Earliest.IsZero() {
		fmt.Fprintf(w, "Earliest memory recorded: %s\n", sum.Earliest.Format("2 Jan 2006"))
	}

	fmt.Fprintln(w, "\nBy category:")
	for _, c := range model.Categories {
		n := sum.ByCategory[c]
		if n == 0 {
			continue
		}
		fmt.Fprintf(w, "  %-14s %3d  (%.1f%%)\n", c, n, Percent(n, sum.Total))
	}

	fmt.Fprintln(w, "\nBy importance:")
	for lvl := model.MaxImportance; lvl >= model.MinImportance; lvl-- {
		n := sum.ByImportance[lvl]
		fmt.Fprintf(w, "  %s  %3d  (%.1f%%)\n", stars(lvl), n, Percent(n, sum.Total))
	}

	if len(sum.TopPeople) > 0 {
		fmt.Fprintln(w, "\nMost mentioned people:")
		for i, pc := range sum.TopPeople {
			fmt.Fprintf(w, "  %d. %s (%d)\n", i+1, pc.Name, pc.Count)
		}
	}

	fmt.Fprintf(w, "\n%s\nALL MEMORIES (newest first)\n%s\n", strings.Repeat("=", 60), strings.Repeat("=", 60))
	for _, m := range newestFirst(mems) {
		fmt.Fprintf(w, "\n[%s] %s %s\n", m.CreatedAt.Format("2006-01-02"), m.Title, stars(m.Importance))
		fmt.Fprintf(w, "Category: %s", m.Category)
		if m.OriginalDate != "" {
			fmt.Fprintf(w, "  |  When: %s", m.OriginalDate)
		}
		fmt.Fprintln(w)
		if len(m.People) > 0 {
			fmt.Fprintf(w, "People: %s\n", strings.Join(m.People, ", "))
		}
		if len(m.Tags) > 0 {
			fmt.Fprintf(w, "Tags: %s\n", strings.Join(m.Tags, ", "))
		}
		fmt.Fprintln(w, truncate(m.Body, bodyPreviewRunes))
	}

	return nil
}

// WriteTextFile writes the report into dir, named by generation timestamp,
// and returns the file path. With no memories it returns ErrNoMemories and
// writes nothing.
func WriteTextFile(dir string, mems []*model.Memory, now time.Time) (string, error) {
	if len(mems) == 0 {
		return "", ErrNoMemories
	}
	path := filepath.Join(dir, fmt.Sprintf("report_%s.txt", now.Format("20060102_150405")))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report: %w", err)
	}
	defer f.Close()
	if err := WriteText(f, mems, now); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

// stars renders an importance level as filled and empty stars.
func stars(n int) string {
	n = model.Clamp(n, 0, model.MaxImportance)
	return strings.Repeat("★", n) + strings.Repeat("☆", model.MaxImportance-n)
}
