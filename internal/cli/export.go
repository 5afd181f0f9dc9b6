package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/keepsake/memoir/internal/model"
)

// exportDoc is the whole-store dump format used by export and import.
type exportDoc struct {
	Memories []*model.Memory  `json:"memories"`
	Profiles []*model.Profile `json:"profiles"`
}

func init() {
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Dump the whole store as JSON",
		Run:   runExport,
	}

	importCmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Merge an exported dump into the store",
		Long:  "Merge memories and profiles from an export. Records whose id or name already exists are skipped. Reads the file argument, or stdin.",
		Run:   runImport,
	}

	RootCmd.AddCommand(exportCmd, importCmd)
}

func runExport(cmd *cobra.Command, args []string) {
	st, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}

	printJSON(exportDoc{Memories: st.Memories(), Profiles: st.Profiles()})
}

func runImport(cmd *cobra.Command, args []string) {
	var b []byte
	var err error
	if len(args) > 0 {
		b, err = os.ReadFile(args[0])
	} else {
		b, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		exitErr("read dump", err)
	}

	var doc exportDoc
	if err := json.Unmarshal(b, &doc); err != nil {
		exitErr("parse dump", err)
	}

	st, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}

	imported := 0
	for _, m := range doc.Memories {
		if st.ImportMemory(m) {
			imported++
		}
	}
	for _, p := range doc.Profiles {
		if st.ImportProfile(p) {
			imported++
		}
	}
	if err := st.Save(); err != nil {
		exitErr("save", err)
	}

	fmt.Printf("imported %d records\n", imported)
}
