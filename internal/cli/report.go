package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/keepsake/memoir/internal/report"
)

func init() {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Write a plain-text report of every memory",
		Run:   runReport,
	}
	reportCmd.Flags().StringP("out", "o", "", "Output directory (default: the data directory)")

	capsuleCmd := &cobra.Command{
		Use:   "capsule",
		Short: "Write the HTML time capsule of the highest-importance memories",
		Run:   runCapsule,
	}
	capsuleCmd.Flags().StringP("out", "o", "", "Output directory (default: the data directory)")

	RootCmd.AddCommand(reportCmd, capsuleCmd)
}

func outDir(cmd *cobra.Command, fallback string) string {
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		return out
	}
	return fallback
}

func runReport(cmd *cobra.Command, args []string) {
	st, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}

	path, err := report.WriteTextFile(outDir(cmd, st.DataDir()), st.Memories(), time.Now())
	if err != nil {
		exitErr("report", err)
	}
	fmt.Println(path)
}

func runCapsule(cmd *cobra.Command, args []string) {
	st, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}

	path, err := report.WriteCapsuleFile(outDir(cmd, st.DataDir()), st.Memories(), time.Now())
	if err != nil {
		exitErr("capsule", err)
	}
	fmt.Println(path)
}
