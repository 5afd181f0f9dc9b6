package cli

import (
	"github.com/spf13/cobra"

	"github.com/keepsake/memoir/internal/report"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show collection statistics",
		Run:   runStats,
	}

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	st, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}

	printJSON(report.Summarize(st.Memories()))
}
