package cmd

import (
	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress [language]",
	Short: "Show XP, streak, hearts and category mastery",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		var language string
		if len(args) == 1 {
			language = args[0]
		}
		p, err := e.svc.Progress(cmd.Context(), e.learner, language)
		if err != nil {
			return err
		}
		if e.json {
			return writeJSON(cmd.OutOrStdout(), p)
		}
		return renderProgress(cmd.OutOrStdout(), language, p)
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats <language>",
	Short: "Show learning statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		st, err := e.svc.Stats(cmd.Context(), e.learner, args[0])
		if err != nil {
			return err
		}
		if e.json {
			return writeJSON(cmd.OutOrStdout(), st)
		}
		return renderStats(cmd.OutOrStdout(), args[0], st)
	},
}

var courseCmd = &cobra.Command{
	Use:   "course <language>",
	Short: "Show the course path with unlock state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		steps, err := e.svc.Course(cmd.Context(), e.learner, args[0])
		if err != nil {
			return err
		}
		if e.json {
			return writeJSON(cmd.OutOrStdout(), steps)
		}
		return renderCourse(cmd.OutOrStdout(), args[0], steps)
	},
}
