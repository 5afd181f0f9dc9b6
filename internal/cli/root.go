// Package cli implements the memoir CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/keepsake/memoir/internal/shell"
	"github.com/keepsake/memoir/internal/store"
)

var (
	dataDir    string
	formatFlag string
)

// RootCmd is the top-level command. Run bare, it opens the interactive
// shell; subcommands cover one-shot use.
var RootCmd = &cobra.Command{
	Use:   "memoir",
	Short: "A personal memory journal",
	Long:  "Record, tag, search, and export short autobiographical memories and profiles of the people in them. JSON on disk, single binary.",
	RunE:  runShell,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dataDir, "data", "d", "", "Data directory (default: $MEMOIR_DATA or ~/.memoir)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or text")
}

func runShell(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	if seeded, err := st.SeedIfEmpty(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not persist sample data: %v\n", err)
	} else if seeded {
		fmt.Println("First run: added a sample profile and three sample memories.")
	}
	return shell.New(st, os.Stdin, os.Stdout).Run()
}

func getDataDir() string {
	if dataDir != "" {
		return dataDir
	}
	if env := os.Getenv("MEMOIR_DATA"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".memoir")
}

func openStore() (*store.Store, error) {
	st, err := store.Open(getDataDir())
	if err != nil {
		return nil, err
	}
	for _, w := range st.Warnings() {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	return st, nil
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}

func printJSON(v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
