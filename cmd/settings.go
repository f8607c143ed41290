package cmd

import (
	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change learner preferences",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		st, err := e.svc.Settings(cmd.Context(), e.learner)
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), st)
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update learner preferences; unset flags keep their value",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		st, err := e.svc.Settings(cmd.Context(), e.learner)
		if err != nil {
			return err
		}

		f := cmd.Flags()
		if f.Changed("native") {
			st.NativeLanguage, _ = f.GetString("native")
		}
		if f.Changed("target") {
			st.TargetLanguage, _ = f.GetString("target")
		}
		if f.Changed("daily-goal") {
			st.DailyGoal, _ = f.GetInt("daily-goal")
		}
		if f.Changed("daily-minutes") {
			st.DailyMinutes, _ = f.GetInt("daily-minutes")
		}
		if f.Changed("weekly-sessions") {
			st.WeeklyGoalSessions, _ = f.GetInt("weekly-sessions")
		}
		if f.Changed("level") {
			st.SelfRatedLevel, _ = f.GetString("level")
		}
		if f.Changed("name") {
			st.LearnerName, _ = f.GetString("name")
		}
		if f.Changed("bio") {
			st.LearnerBio, _ = f.GetString("bio")
		}
		if f.Changed("focus") {
			st.FocusArea, _ = f.GetString("focus")
		}

		saved, err := e.svc.SaveSettings(cmd.Context(), e.learner, st)
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), saved)
	},
}

func init() {
	f := settingsSetCmd.Flags()
	f.String("native", "", "Native language")
	f.String("target", "", "Target language")
	f.Int("daily-goal", 0, "Daily XP goal")
	f.Int("daily-minutes", 0, "Daily practice minutes (5-240)")
	f.Int("weekly-sessions", 0, "Weekly session goal (1-21)")
	f.String("level", "", "Self-rated level: a1, a2, b1 or b2")
	f.String("name", "", "Display name")
	f.String("bio", "", "Short bio")
	f.String("focus", "", "Focus area")

	settingsCmd.AddCommand(settingsSetCmd)
}
