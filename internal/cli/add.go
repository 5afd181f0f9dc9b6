package cli

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/keepsake/memoir/internal/model"
	"github.com/keepsake/memoir/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "add [body]",
		Short: "Record a memory",
		Long:  "Record a memory. The body can be a positional arg or piped via stdin.",
		Run:   runAdd,
	}

	cmd.Flags().StringP("title", "t", "", "Memory title (required)")
	cmd.Flags().StringP("category", "c", string(model.CategoryThought), "Category: person, event, object, place, thought, conversation")
	cmd.Flags().String("date", "", "When it happened (free text)")
	cmd.Flags().String("people", "", "Comma-separated people")
	cmd.Flags().String("places", "", "Comma-separated places")
	cmd.Flags().String("objects", "", "Comma-separated objects")
	cmd.Flags().String("feelings", "", "Comma-separated sentiments")
	cmd.Flags().String("tags", "", "Comma-separated tags")
	cmd.Flags().IntP("importance", "i", 3, "Importance 1-5")
	cmd.Flags().IntP("privacy", "p", 1, "Privacy 1-3")

	cmd.MarkFlagRequired("title")

	RootCmd.AddCommand(cmd)
}

func runAdd(cmd *cobra.Command, args []string) {
	title, _ := cmd.Flags().GetString("title")
	category, _ := cmd.Flags().GetString("category")
	date, _ := cmd.Flags().GetString("date")
	people, _ := cmd.Flags().GetString("people")
	places, _ := cmd.Flags().GetString("places")
	objects, _ := cmd.Flags().GetString("objects")
	feelings, _ := cmd.Flags().GetString("feelings")
	tags, _ := cmd.Flags().GetString("tags")
	importance, _ := cmd.Flags().GetInt("importance")
	privacy, _ := cmd.Flags().GetInt("privacy")

	// Body: positional arg first, then check stdin
	var body string
	if len(args) > 0 {
		body = strings.Join(args, " ")
	} else {
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) == 0 {
			b, err := io.ReadAll(os.Stdin)
			if err != nil {
				exitErr("read stdin", err)
			}
			body = string(b)
		}
	}

	st, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}

	m, err := st.AddMemory(store.AddMemoryParams{
		Title:        title,
		Body:         strings.TrimSpace(body),
		Category:     model.ParseCategory(category),
		OriginalDate: date,
		People:       splitCSV(people),
		Places:       splitCSV(places),
		Objects:      splitCSV(objects),
		Sentiments:   splitCSV(feelings),
		Tags:         splitCSV(tags),
		Importance:   importance,
		Privacy:      privacy,
	})
	if err != nil {
		exitErr("add", err)
	}
	if err := st.Save(); err != nil {
		exitErr("save", err)
	}

	printJSON(m)
}
