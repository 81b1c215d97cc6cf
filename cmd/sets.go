package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harini/sciquiz/internal/allocate"
	"github.com/harini/sciquiz/internal/question"
)

var setsCmd = &cobra.Command{
	Use:   "sets",
	Short: "Show set availability for a grade and subject",
	RunE: func(cmd *cobra.Command, args []string) error {
		grade, _ := cmd.Flags().GetString("grade")
		subject, _ := cmd.Flags().GetString("subject")
		scope := question.Scope{Grade: grade, Subject: subject}
		if !scope.Valid() {
			return fmt.Errorf("--grade and --subject are required")
		}

		d, closeDeps, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer closeDeps()

		st, err := d.tracker.ScopeStatus(cmd.Context(), scope, allocate.DefaultTotalSets)
		if err != nil {
			return err
		}

		fmt.Printf("%s\n", scope)
		fmt.Printf("  completed:      %s\n", formatSets(st.Completed))
		fmt.Printf("  in use (other): %s\n", formatSets(st.UsedByOthers))
		fmt.Printf("  available:      %s\n", formatSets(st.Available))
		return nil
	},
}

func init() {
	setsCmd.Flags().String("grade", "", `Grade, e.g. "Grade 9"`)
	setsCmd.Flags().String("subject", "", `Subject, e.g. "physics"`)
}

func formatSets(sets []int) string {
	if len(sets) == 0 {
		return "none"
	}
	out := ""
	for i, n := range sets {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%d", n)
	}
	return out
}
