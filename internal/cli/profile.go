package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/keepsake/memoir/internal/model"
	"github.com/keepsake/memoir/internal/store"
)

func init() {
	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage person profiles",
	}

	addCmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Create a profile",
		Args:  cobra.MinimumNArgs(1),
		Run:   runProfileAdd,
	}
	addCmd.Flags().String("nickname", "", "Nickname")
	addCmd.Flags().StringP("relationship", "r", "", "Relationship to you")
	addCmd.Flags().String("born", "", "Birth date dd/mm/yyyy")
	addCmd.Flags().String("died", "", "Death date dd/mm/yyyy")
	addCmd.Flags().String("traits", "", "Comma-separated traits")

	showCmd := &cobra.Command{
		Use:   "show [name]",
		Short: "Show a profile and the memories that mention them",
		Args:  cobra.MinimumNArgs(1),
		Run:   runProfileShow,
	}

	lsCmd := &cobra.Command{
		Use:   "ls",
		Short: "List profile names",
		Run:   runProfileLs,
	}

	profileCmd.AddCommand(addCmd, showCmd, lsCmd)
	RootCmd.AddCommand(profileCmd)
}

func runProfileAdd(cmd *cobra.Command, args []string) {
	name := args[0]
	nickname, _ := cmd.Flags().GetString("nickname")
	relationship, _ := cmd.Flags().GetString("relationship")
	born, _ := cmd.Flags().GetString("born")
	died, _ := cmd.Flags().GetString("died")
	traits, _ := cmd.Flags().GetString("traits")

	st, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}

	prof, err := st.AddProfile(store.AddProfileParams{
		Name:         name,
		Nickname:     nickname,
		Relationship: relationship,
		BirthDate:    born,
		DeathDate:    died,
		Traits:       splitCSV(traits),
	})
	if err != nil {
		exitErr("profile add", err)
	}
	if err := st.Save(); err != nil {
		exitErr("save", err)
	}

	printJSON(prof)
}

// profileView is the show command's output shape: the record plus its
// derived age and reverse-reference lookups.
type profileView struct {
	*model.Profile
	Age      string          `json:"age"`
	Mentions []*model.Memory `json:"mentions,omitempty"`
}

func runProfileShow(cmd *cobra.Command, args []string) {
	st, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}

	name := args[0]
	prof, ok := st.Profile(name)
	if !ok {
		exitErr("profile show", fmt.Errorf("profile not found: %s", name))
	}

	printJSON(profileView{
		Profile:  prof,
		Age:      prof.AgeLabel(time.Now()),
		Mentions: st.MemoriesMentioning(prof.Name, 5),
	})
}

func runProfileLs(cmd *cobra.Command, args []string) {
	st, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	for _, p := range st.Profiles() {
		if p.Nickname != "" {
			fmt.Printf("%s (%s)\n", p.Name, p.Nickname)
			continue
		}
		fmt.Println(p.Name)
	}
}
