package report

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/keepsake/memoir/internal/model"
)

// The time capsule bundles only the highest-importance memories into a
// standalone HTML page.

var capsuleTmpl = template.Must(template.New("capsule").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Time Capsule — {{.Date}}</title>
<style>
  body { font-family: Georgia, serif; background: #f6f2ea; color: #2b2b2b;
         max-width: 720px; margin: 2rem auto; padding: 0 1rem; }
  h1 { text-align: center; letter-spacing: 0.08em; }
  .sub { text-align: center; color: #7a6f5d; margin-bottom: 2rem; }
  .memory { background: #fffdf7; border: 1px solid #e0d8c8; border-radius: 8px;
            padding: 1.2rem 1.5rem; margin-bottom: 1.5rem;
            box-shadow: 0 1px 3px rgba(0,0,0,0.06); }
  .memory h2 { margin: 0 0 0.2rem; }
  .stars { color: #c9a227; }
  .meta { font-size: 0.85rem; color: #7a6f5d; margin-bottom: 0.8rem; }
  .body { white-space: pre-wrap; line-height: 1.5; }
  .line { font-size: 0.85rem; color: #55503f; margin-top: 0.6rem; }
</style>
</head>
<body>
<h1>TIME CAPSULE</h1>
<p class="sub">{{.Date}} — {{len .Memories}} cherished {{if eq (len .Memories) 1}}memory{{else}}memories{{end}}</p>
{{range .Memories}}
<div class="memory">
  <h2>{{.Title}} <span class="stars">{{.Stars}}</span></h2>
  <div class="meta">{{.Category}}{{if .When}} · {{.When}}{{end}} · recorded {{.Recorded}}</div>
  <div class="body">{{.Body}}</div>
  {{if .People}}<div class="line">With: {{.People}}</div>{{end}}
  {{if .Sentiments}}<div class="line">Feeling: {{.Sentiments}}</div>{{end}}
</div>
{{end}}
</body>
</html>
`))

type capsuleEntry struct {
	Title      string
	Stars      string
	Category   model.Category
	When       string
	Recorded   string
	Body       string
	People     string
	Sentiments string
}

type capsuleData struct {
	Date     string
	Memories []capsuleEntry
}

// Highlights filters for the memories a capsule contains, newest first.
func Highlights(mems []*model.Memory) []*model.Memory {
	var out []*model.Memory
	for _, m := range newestFirst(mems) {
		if m.Importance >= CapsuleThreshold {
			out = append(out, m)
		}
	}
	return out
}

// WriteCapsule renders the HTML time capsule for the given memories. It
// returns ErrNoHighlights when none reach the threshold.
func WriteCapsule(w io.Writer, mems []*model.Memory, now time.Time) error {
	hl := Highlights(mems)
	if len(hl) == 0 {
		return ErrNoHighlights
	}

	data := capsuleData{Date: now.Format("2 January 2006")}
	for _, m := range hl {
		data.Memories = append(data.Memories, capsuleEntry{
			Title:      m.Title,
			Stars:      stars(m.Importance),
			Category:   m.Category,
			When:       m.OriginalDate,
			Recorded:   m.CreatedAt.Format("2 Jan 2006"),
			Body:       m.Body,
			People:     strings.Join(m.People, ", "),
			Sentiments: strings.Join(m.Sentiments, ", "),
		})
	}
	return capsuleTmpl.Execute(w, data)
}

// WriteCapsuleFile writes the capsule into dir, named by generation date,
// and returns the file path. With no qualifying memory it returns
// ErrNoHighlights and writes nothing.
func WriteCapsuleFile(dir string, mems []*model.Memory, now time.Time) (string, error) {
	if len(Highlights(mems)) == 0 {
		return "", ErrNoHighlights
	}
	path := filepath.Join(dir, fmt.Sprintf("capsule_%s.html", now.Format("2006-01-02")))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create capsule: %w", err)
	}
	defer f.Close()
	if err := WriteCapsule(f, mems, now); err != nil {
		return "", fmt.Errorf("write capsule: %w", err)
	}
	return path, nil
}
