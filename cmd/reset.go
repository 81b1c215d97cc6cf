package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harini/sciquiz/internal/allocate"
	"github.com/harini/sciquiz/internal/question"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear quiz progress records",
	Long:  "Clear completion records and live claims for a grade/subject, or the answer streak.",
	RunE: func(cmd *cobra.Command, args []string) error {
		grade, _ := cmd.Flags().GetString("grade")
		subject, _ := cmd.Flags().GetString("subject")
		streak, _ := cmd.Flags().GetBool("streak")

		scope := question.Scope{Grade: grade, Subject: subject}
		if !scope.Valid() && !streak {
			return fmt.Errorf("nothing to reset: give --grade and --subject, or --streak")
		}

		d, closeDeps, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer closeDeps()
		ctx := cmd.Context()

		if scope.Valid() {
			removed, err := allocate.WipeScope(ctx, d.shared, d.shared, scope)
			if err != nil {
				return err
			}
			fmt.Printf("%s: cleared %d completion record(s) and the active registry\n", scope, removed)
		}
		if streak {
			if err := d.shared.Delete(ctx, "streak"); err != nil {
				return err
			}
			fmt.Println("streak reset")
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().String("grade", "", `Grade, e.g. "Grade 9"`)
	resetCmd.Flags().String("subject", "", `Subject, e.g. "physics"`)
	resetCmd.Flags().Bool("streak", false, "Also reset the answer streak")
}
