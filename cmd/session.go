package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/lingoflow/internal/exercise"
	"github.com/abhisek/lingoflow/internal/session"
)

var startCmd = &cobra.Command{
	Use:   "start <language> <category>",
	Short: "Start a practice session and print its questions as JSON",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		count, _ := cmd.Flags().GetInt("count")
		res, err := e.svc.Start(cmd.Context(), session.StartRequest{
			LearnerID: e.learner,
			Language:  args[0],
			Category:  args[1],
			Count:     count,
		})
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), res)
	},
}

var completeCmd = &cobra.Command{
	Use:   "complete <session-id>",
	Short: "Submit attempts for a session and print the result",
	Long: `Submit attempts for a session. Attempts are read as a JSON array from
--attempts (a file path, or - for stdin), for example:

  [{"questionId": "sp-tr-1", "selectedOption": "¿Dónde está la estación?"}]`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, _ := cmd.Flags().GetString("attempts")
		attempts, err := readAttempts(cmd, src)
		if err != nil {
			return err
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		language, _ := cmd.Flags().GetString("language")
		category, _ := cmd.Flags().GetString("category")
		hints, _ := cmd.Flags().GetInt("hints")
		reveals, _ := cmd.Flags().GetInt("reveals")

		res, err := e.svc.Complete(cmd.Context(), session.CompleteRequest{
			LearnerID:       e.learner,
			SessionID:       args[0],
			Language:        language,
			Category:        category,
			Attempts:        attempts,
			HintsUsed:       hints,
			RevealedAnswers: reveals,
		})
		if err != nil {
			return err
		}
		if e.json {
			return writeJSON(cmd.OutOrStdout(), res)
		}
		return renderComplete(cmd.OutOrStdout(), res)
	},
}

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete the learner's completed and expired sessions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		n, err := e.svc.Prune(cmd.Context(), e.learner)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Pruned %d session(s).\n", n)
		return nil
	},
}

func init() {
	startCmd.Flags().Int("count", 0, "Number of questions (6-15, default 10)")

	completeCmd.Flags().String("language", "", "Language of the session")
	completeCmd.Flags().String("category", "", "Category of the session")
	completeCmd.Flags().String("attempts", "-", "JSON attempts file, or - for stdin")
	completeCmd.Flags().Int("hints", 0, "Hints used during the session")
	completeCmd.Flags().Int("reveals", 0, "Answers revealed during the session")
	_ = completeCmd.MarkFlagRequired("language")
	_ = completeCmd.MarkFlagRequired("category")
}

func readAttempts(cmd *cobra.Command, src string) ([]exercise.Attempt, error) {
	var r io.Reader = cmd.InOrStdin()
	if src != "-" {
		f, err := os.Open(src)
		if err != nil {
			return nil, fmt.Errorf("open attempts: %w", err)
		}
		defer f.Close()
		r = f
	}
	var attempts []exercise.Attempt
	if err := json.NewDecoder(r).Decode(&attempts); err != nil {
		return nil, fmt.Errorf("decode attempts: %w", err)
	}
	return attempts, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
