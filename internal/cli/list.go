package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keepsake/memoir/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List memories, newest first",
		Run:   runList,
	}

	cmd.Flags().IntP("limit", "l", 0, "Max results (0 = all)")
	cmd.Flags().Bool("titles-only", false, "Only output dates and titles")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")
	titlesOnly, _ := cmd.Flags().GetBool("titles-only")

	st, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}

	memories := st.Find(store.Query{Mode: store.ModeAll})
	if limit > 0 && len(memories) > limit {
		memories = memories[:limit]
	}

	if titlesOnly {
		for _, m := range memories {
			fmt.Printf("%s  %s\n", m.CreatedAt.Format("2006-01-02"), m.Title)
		}
		return
	}
	if len(memories) == 0 {
		fmt.Println("[]")
		return
	}
	printJSON(memories)
}
