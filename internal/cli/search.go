package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/keepsake/memoir/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search memories",
		Long:  "Search memories by one filter: keyword, person, feeling, category, or minimum importance. With no filter, every memory is returned.",
		Run:   runSearch,
	}

	cmd.Flags().StringP("keyword", "k", "", "Match title, body, or tags (case-insensitive)")
	cmd.Flags().String("person", "", "Match the people list")
	cmd.Flags().String("feeling", "", "Match the sentiment list")
	cmd.Flags().StringP("category", "c", "", "Exact category match")
	cmd.Flags().IntP("min-importance", "i", 0, "Minimum importance 1-5")

	RootCmd.AddCommand(cmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	keyword, _ := cmd.Flags().GetString("keyword")
	person, _ := cmd.Flags().GetString("person")
	feeling, _ := cmd.Flags().GetString("feeling")
	category, _ := cmd.Flags().GetString("category")
	minImp, _ := cmd.Flags().GetInt("min-importance")

	q := store.Query{Mode: store.ModeAll}
	set := 0
	if keyword != "" {
		q = store.Query{Mode: store.ModeKeyword, Term: keyword}
		set++
	}
	if person != "" {
		q = store.Query{Mode: store.ModePerson, Term: person}
		set++
	}
	if feeling != "" {
		q = store.Query{Mode: store.ModeSentiment, Term: feeling}
		set++
	}
	if category != "" {
		q = store.Query{Mode: store.ModeCategory, Term: category}
		set++
	}
	if minImp > 0 {
		q = store.Query{Mode: store.ModeImportance, MinImportance: minImp}
		set++
	}
	if set > 1 {
		exitErr("search", fmt.Errorf("choose exactly one filter"))
	}

	st, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}

	results := st.Find(q)
	if formatFlag == "text" {
		for _, m := range results {
			fmt.Printf("[%s] %-12s %s", m.CreatedAt.Format("2006-01-02"), m.Category, m.Title)
			if len(m.Tags) > 0 {
				fmt.Printf("  (%s)", strings.Join(m.Tags, ", "))
			}
			fmt.Println()
		}
		return
	}
	if len(results) == 0 {
		fmt.Println("[]")
		return
	}
	printJSON(results)
}
