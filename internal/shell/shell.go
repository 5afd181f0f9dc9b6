// Package shell implements the interactive menu loop. Input and output are
// injected so tests can script whole sessions.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/keepsake/memoir/internal/model"
	"github.com/keepsake/memoir/internal/report"
	"github.com/keepsake/memoir/internal/store"
)

// Shell runs the numbered menu over one store. Every operation is a single
// synchronous call chain; no failure is fatal, each one prints and returns
// to the menu.
type Shell struct {
	store *store.Store
	in    *bufio.Scanner
	out   io.Writer
}

// New builds a shell over the given store and streams.
func New(st *store.Store, in io.Reader, out io.Writer) *Shell {
	return &Shell{store: st, in: bufio.NewScanner(in), out: out}
}

// Run shows the menu until the user quits or input ends. The store is saved
// on the way out.
func (sh *Shell) Run() error {
	fmt.Fprintln(sh.out, titleStyle.Render("MEMOIR — a personal memory journal"))
	for _, w := range sh.store.Warnings() {
		sh.errorf("warning: %s", w)
	}

	for {
		sh.printMenu()
		choice, ok := sh.readLine("> ")
		if !ok {
			return sh.saveAndReport()
		}
		switch strings.TrimSpace(choice) {
		case "1":
			sh.recordMemory()
		case "2":
			sh.browse()
		case "3":
			sh.addProfile()
		case "4":
			sh.viewProfile()
		case "5":
			sh.writeReport()
		case "6":
			sh.writeCapsule()
		case "7":
			sh.setMood()
		case "8":
			fmt.Fprintln(sh.out, okStyle.Render("Saving... goodbye."))
			return sh.saveAndReport()
		default:
			sh.errorf("please choose 1-8")
		}
	}
}

func (sh *Shell) printMenu() {
	fmt.Fprintln(sh.out)
	if mood := sh.store.Mood(); mood != "" {
		fmt.Fprintln(sh.out, faintStyle.Render("current mood: "+string(mood)))
	}
	items := []string{
		"Record a memory",
		"Browse & search memories",
		"Add a person profile",
		"View / edit a profile",
		"Generate report",
		"Export time capsule",
		"Set current mood",
		"Save & quit",
	}
	for i, item := range items {
		fmt.Fprintf(sh.out, "%s %s\n", numberStyle.Render(fmt.Sprintf("%d.", i+1)), item)
	}
}

func (sh *Shell) saveAndReport() error {
	if err := sh.store.Save(); err != nil {
		sh.errorf("save failed: %v", err)
	}
	return nil
}

// save persists after a mutation; failures print and the session continues.
func (sh *Shell) save() {
	if err := sh.store.Save(); err != nil {
		sh.errorf("save failed: %v", err)
	}
}

func (sh *Shell) errorf(format string, args ...any) {
	fmt.Fprintln(sh.out, errorStyle.Render(fmt.Sprintf(format, args...)))
}

// readLine prompts and reads one line. ok is false once input is exhausted.
func (sh *Shell) readLine(prompt string) (string, bool) {
	fmt.Fprint(sh.out, prompt)
	if !sh.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(sh.in.Text()), true
}

// readInt prompts for a number, falling back to def on blank or malformed
// input.
func (sh *Shell) readInt(prompt string, def int) int {
	line, ok := sh.readLine(prompt)
	if !ok || line == "" {
		return def
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		sh.errorf("not a number, using %d", def)
		return def
	}
	return n
}

// readList prompts for a comma-separated list.
func (sh *Shell) readList(prompt string) []string {
	line, _ := sh.readLine(prompt)
	return splitList(line)
}

func splitList(line string) []string {
	if strings.TrimSpace(line) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(line, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (sh *Shell) recordMemory() {
	fmt.Fprintln(sh.out, headerStyle.Render("\nRecord a memory"))
	title, ok := sh.readLine("Title: ")
	if !ok || title == "" {
		sh.errorf("a title is required")
		return
	}
	body, _ := sh.readLine("What happened? ")

	fmt.Fprintln(sh.out, "Category:")
	for i, c := range model.Categories {
		fmt.Fprintf(sh.out, "  %d. %s\n", i+1, c)
	}
	cat := model.CategoryThought
	if n := sh.readInt("Choice: ", 5); n >= 1 && n <= len(model.Categories) {
		cat = model.Categories[n-1]
	}

	date, _ := sh.readLine("When did it happen? (free text, blank to skip): ")
	people := sh.readList("People involved (comma-separated): ")
	places := sh.readList("Places (comma-separated): ")
	objects := sh.readList("Objects (comma-separated): ")
	sentiments := sh.readList("Feelings (comma-separated, blank = current mood): ")
	tags := sh.readList("Tags (comma-separated): ")
	importance := sh.readInt("Importance 1-5 (default 3): ", 3)
	privacy := sh.readInt("Privacy 1-3 (default 1): ", 1)

	m, err := sh.store.AddMemory(store.AddMemoryParams{
		Title:        title,
		Body:         body,
		Category:     cat,
		OriginalDate: date,
		People:       people,
		Places:       places,
		Objects:      objects,
		Sentiments:   sentiments,
		Tags:         tags,
		Importance:   importance,
		Privacy:      privacy,
	})
	if err != nil {
		sh.errorf("%v", err)
		return
	}
	sh.save()
	fmt.Fprintln(sh.out, okStyle.Render("Memory recorded: "+m.Title))
}

func (sh *Shell) browse() {
	fmt.Fprintln(sh.out, headerStyle.Render("\nBrowse & search"))
	fmt.Fprintln(sh.out, "  1. All memories")
	fmt.Fprintln(sh.out, "  2. By keyword")
	fmt.Fprintln(sh.out, "  3. By person")
	fmt.Fprintln(sh.out, "  4. By feeling")
	fmt.Fprintln(sh.out, "  5. By category")
	fmt.Fprintln(sh.out, "  6. By minimum importance")

	q := store.Query{Mode: store.ModeAll}
	switch sh.readInt("Choice: ", 1) {
	case 2:
		q.Mode = store.ModeKeyword
		q.Term, _ = sh.readLine("Keyword: ")
	case 3:
		q.Mode = store.ModePerson
		q.Term, _ = sh.readLine("Person: ")
	case 4:
		q.Mode = store.ModeSentiment
		q.Term, _ = sh.readLine("Feeling: ")
	case 5:
		q.Mode = store.ModeCategory
		q.Term, _ = sh.readLine("Category: ")
	case 6:
		q.Mode = store.ModeImportance
		q.MinImportance = sh.readInt("Minimum importance 1-5: ", 1)
	}

	results := sh.store.Find(q)
	if len(results) == 0 {
		fmt.Fprintln(sh.out, faintStyle.Render("No matching memories."))
		return
	}
	for i, m := range results {
		sh.printMemory(i+1, m)
	}

	line, _ := sh.readLine("Edit one? (number, blank to skip): ")
	if line == "" {
		return
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 1 || n > len(results) {
		sh.errorf("no such memory")
		return
	}
	sh.editMemory(results[n-1])
}

func (sh *Shell) printMemory(n int, m *model.Memory) {
	fmt.Fprintf(sh.out, "\n%s %s %s\n",
		numberStyle.Render(fmt.Sprintf("%d.", n)),
		headerStyle.Render(m.Title),
		starStyle.Render(strings.Repeat("★", m.Importance)))
	meta := fmt.Sprintf("%s · recorded %s", m.Category, m.CreatedAt.Format("2 Jan 2006"))
	if m.OriginalDate != "" {
		meta += " · " + m.OriginalDate
	}
	fmt.Fprintln(sh.out, faintStyle.Render(meta))
	fmt.Fprintln(sh.out, preview(m.Body, 120))
	if len(m.People) > 0 {
		fmt.Fprintln(sh.out, faintStyle.Render("people: "+strings.Join(m.People, ", ")))
	}
	if len(m.Tags) > 0 {
		fmt.Fprintln(sh.out, faintStyle.Render("tags: "+strings.Join(m.Tags, ", ")))
	}
}

func (sh *Shell) editMemory(m *model.Memory) {
	fmt.Fprintln(sh.out, faintStyle.Render("blank keeps the current value"))
	var p store.EditMemoryParams
	if title, _ := sh.readLine(fmt.Sprintf("Title [%s]: ", m.Title)); title != "" {
		p.Title = &title
	}
	if body, _ := sh.readLine("Body: "); body != "" {
		p.Body = &body
	}
	if line, _ := sh.readLine(fmt.Sprintf("Importance 1-5 [%d]: ", m.Importance)); line != "" {
		if n, err := strconv.Atoi(line); err == nil {
			p.Importance = &n
		} else {
			sh.errorf("not a number, keeping %d", m.Importance)
		}
	}
	if line, _ := sh.readLine(fmt.Sprintf("Tags [%s]: ", strings.Join(m.Tags, ", "))); line != "" {
		p.Tags = splitList(line)
	}
	if _, err := sh.store.EditMemory(m.ID, p); err != nil {
		sh.errorf("%v", err)
		return
	}
	sh.save()
	fmt.Fprintln(sh.out, okStyle.Render("Memory updated."))
}

func (sh *Shell) addProfile() {
	fmt.Fprintln(sh.out, headerStyle.Render("\nAdd a person profile"))
	name, ok := sh.readLine("Name: ")
	if !ok || name == "" {
		sh.errorf("a name is required")
		return
	}
	nickname, _ := sh.readLine("Nickname (blank to skip): ")
	relationship, _ := sh.readLine("Relationship: ")
	birth, _ := sh.readLine("Birth date dd/mm/yyyy (blank to skip): ")
	death, _ := sh.readLine("Death date dd/mm/yyyy (blank to skip): ")
	traits := sh.readList("Traits (comma-separated): ")

	if _, err := sh.store.AddProfile(store.AddProfileParams{
		Name:         name,
		Nickname:     nickname,
		Relationship: relationship,
		BirthDate:    birth,
		DeathDate:    death,
		Traits:       traits,
	}); err != nil {
		sh.errorf("%v", err)
		return
	}
	sh.save()
	fmt.Fprintln(sh.out, okStyle.Render("Profile added: "+name))
}

func (sh *Shell) viewProfile() {
	name, ok := sh.readLine("\nWhose profile? ")
	if !ok || name == "" {
		return
	}
	prof, found := sh.store.Profile(name)
	if !found {
		sh.errorf("profile not found: %s", name)
		return
	}
	sh.printProfile(prof)

	for {
		fmt.Fprintln(sh.out, "\n  1. Change nickname   2. Change relationship")
		fmt.Fprintln(sh.out, "  3. Add trait         4. Remove trait")
		fmt.Fprintln(sh.out, "  5. Back to menu")
		switch sh.readInt("Choice: ", 5) {
		case 1:
			// blank input keeps the existing value
			if nick, _ := sh.readLine(fmt.Sprintf("Nickname [%s]: ", prof.Nickname)); nick != "" {
				sh.store.EditProfile(prof.Name, store.EditProfileParams{Nickname: &nick})
				sh.save()
			}
		case 2:
			if rel, _ := sh.readLine(fmt.Sprintf("Relationship [%s]: ", prof.Relationship)); rel != "" {
				sh.store.EditProfile(prof.Name, store.EditProfileParams{Relationship: &rel})
				sh.save()
			}
		case 3:
			trait, _ := sh.readLine("New trait: ")
			if err := sh.store.AddTrait(prof.Name, trait); err != nil {
				sh.errorf("%v", err)
			} else {
				sh.save()
			}
		case 4:
			idx := sh.readInt("Trait number to remove: ", 0)
			removed, err := sh.store.RemoveTrait(prof.Name, idx-1)
			if err != nil {
				sh.errorf("%v", err)
			} else {
				sh.save()
				fmt.Fprintln(sh.out, okStyle.Render("Removed trait: "+removed))
			}
		default:
			return
		}
	}
}

func (sh *Shell) printProfile(prof *model.Profile) {
	fmt.Fprintln(sh.out, headerStyle.Render("\n"+prof.Name))
	if prof.Nickname != "" {
		fmt.Fprintf(sh.out, "Nickname: %s\n", prof.Nickname)
	}
	if prof.Relationship != "" {
		fmt.Fprintf(sh.out, "Relationship: %s\n", prof.Relationship)
	}
	if prof.BirthDate != "" {
		line := "Born: " + prof.BirthDate
		if prof.DeathDate != "" {
			line += "  Died: " + prof.DeathDate
		}
		fmt.Fprintf(sh.out, "%s  (age %s)\n", line, prof.AgeLabel(time.Now()))
	}
	if len(prof.Traits) > 0 {
		fmt.Fprintln(sh.out, "Traits:")
		for i, t := range prof.Traits {
			fmt.Fprintf(sh.out, "  %d. %s\n", i+1, t)
		}
	}

	mentions := sh.store.MemoriesMentioning(prof.Name, 5)
	if len(mentions) > 0 {
		fmt.Fprintln(sh.out, faintStyle.Render("Appears in:"))
		for _, m := range mentions {
			fmt.Fprintf(sh.out, "  - %s (%s)\n", m.Title, m.CreatedAt.Format("2 Jan 2006"))
		}
	}
}

func (sh *Shell) writeReport() {
	path, err := report.WriteTextFile(sh.store.DataDir(), sh.store.Memories(), time.Now())
	if err != nil {
		sh.errorf("%v", err)
		return
	}
	fmt.Fprintln(sh.out, okStyle.Render("Report written to "+path))
}

func (sh *Shell) writeCapsule() {
	path, err := report.WriteCapsuleFile(sh.store.DataDir(), sh.store.Memories(), time.Now())
	if err != nil {
		sh.errorf("%v", err)
		return
	}
	fmt.Fprintln(sh.out, okStyle.Render("Time capsule written to "+path))
}

func (sh *Shell) setMood() {
	fmt.Fprintln(sh.out, headerStyle.Render("\nHow are you feeling?"))
	for i, m := range model.Moods {
		fmt.Fprintf(sh.out, "  %d. %s\n", i+1, m)
	}
	n := sh.readInt("Choice: ", 0)
	if n < 1 || n > len(model.Moods) {
		sh.errorf("keeping current mood")
		return
	}
	sh.store.SetMood(model.Moods[n-1])
	fmt.Fprintln(sh.out, okStyle.Render("Mood set to "+string(model.Moods[n-1])))
}

// preview shortens s to at most n runes for list display.
func preview(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
