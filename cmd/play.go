package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harini/sciquiz/internal/question"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a quiz, optionally jumping straight into a grade and subject",
	RunE: func(cmd *cobra.Command, args []string) error {
		grade, _ := cmd.Flags().GetString("grade")
		subject, _ := cmd.Flags().GetString("subject")
		diffStr, _ := cmd.Flags().GetString("difficulty")
		lang, _ := cmd.Flags().GetString("lang")

		diff, err := parseDifficulty(diffStr)
		if err != nil {
			return err
		}

		scope := question.Scope{Grade: grade, Subject: subject}
		if (grade == "") != (subject == "") {
			return fmt.Errorf("--grade and --subject must be given together")
		}

		return runApp(cmd, launchParams{
			Scope:      scope,
			Difficulty: diff,
			Language:   lang,
		})
	},
}

func init() {
	playCmd.Flags().String("grade", "", `Grade to play, e.g. "Grade 9"`)
	playCmd.Flags().String("subject", "", `Subject to play, e.g. "physics"`)
	playCmd.Flags().String("difficulty", "intermediate", "Difficulty: beginner, intermediate, or advanced")
	playCmd.Flags().String("lang", "", `Question language, e.g. "en" or "ta"`)
}

func parseDifficulty(s string) (question.Difficulty, error) {
	switch question.Difficulty(s) {
	case question.Beginner, question.Intermediate, question.Advanced:
		return question.Difficulty(s), nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want beginner, intermediate, or advanced)", s)
}
