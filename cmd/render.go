package cmd

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingoflow/internal/session"
	"github.com/abhisek/lingoflow/internal/ui/components"
	"github.com/abhisek/lingoflow/internal/ui/theme"
)

const barWidth = 48

func row(label string, value any) string {
	return theme.Label.Render(label) + theme.Body.Render(fmt.Sprint(value))
}

func renderComplete(w io.Writer, r *session.CompleteResult) error {
	accuracy := theme.Good
	if r.Evaluated.AccuracyPercent < 50 {
		accuracy = theme.Bad
	}
	lines := []string{
		theme.Title.Render("Session complete"),
		"",
		row("Score", fmt.Sprintf("%d / %d", r.Evaluated.Score, r.Evaluated.MaxScore)),
		theme.Label.Render("Accuracy") + accuracy.Render(fmt.Sprintf("%.1f%%", r.Evaluated.AccuracyPercent)),
		row("Mistakes", r.Evaluated.Mistakes),
		theme.Label.Render("XP") + theme.Highlight.Render(fmt.Sprintf("+%d", r.XPGained)) +
			theme.Hint.Render("  "+r.Challenge.DisplayName()),
		row("Total XP", r.TotalXP),
		row("Today", r.TodayXP),
		row("Streak", fmt.Sprintf("%d day(s)", r.StreakDays)),
		row("Hearts", r.Hearts),
		row("Level", r.LearnerLevel),
		"",
		components.NewProgressBar("Mastery", r.Mastery, true, barWidth).View(),
		row("Unlocked", strings.ToUpper(string(r.LevelUnlocked))),
	}
	_, err := lipgloss.Fprintln(w, theme.Card.Render(strings.Join(lines, "\n")))
	return err
}

func renderProgress(w io.Writer, language string, p *session.Progress) error {
	lines := []string{
		theme.Title.Render("Progress"),
		"",
		row("Total XP", p.TotalXP),
		row("Level", p.LearnerLevel),
		row("Streak", fmt.Sprintf("%d day(s)", p.StreakDays)),
		row("Hearts", p.Hearts),
	}
	if p.LastCompleted != nil {
		lines = append(lines, row("Last session", p.LastCompleted.Format("2006-01-02")))
	}
	if language != "" {
		lines = append(lines, row("Today", fmt.Sprintf("%d XP in %s", p.TodayXP, language)), "")
		if len(p.Categories) == 0 {
			lines = append(lines, theme.Hint.Render("No sessions completed yet."))
		}
		for _, c := range p.Categories {
			lines = append(lines,
				components.NewProgressBar(c.Category, c.Mastery, true, barWidth).View()+
					theme.Hint.Render(fmt.Sprintf("  %s  %.1f%% acc", strings.ToUpper(string(c.LevelUnlocked)), c.Accuracy)))
		}
	}
	_, err := lipgloss.Fprintln(w, theme.Card.Render(strings.Join(lines, "\n")))
	return err
}

func renderStats(w io.Writer, language string, st *session.Stats) error {
	lines := []string{
		theme.Title.Render("Stats · " + language),
		"",
		row("Sessions", st.SessionsCompleted),
		row("Last 7 days", st.SessionsLast7Days),
		row("Avg accuracy", fmt.Sprintf("%.1f%%", st.AvgSessionAccuracy)),
		row("Session XP", st.TotalXPFromSessions),
		row("Streak", fmt.Sprintf("%d day(s)", st.StreakDays)),
		row("Mastered", fmt.Sprintf("%d of %d", st.MasteredCount, st.CategoryCount)),
		"",
		components.NewProgressBar("Completion", float64(st.CompletionPercent), true, barWidth).View(),
		components.NewProgressBar("Accuracy", float64(st.AccuracyPercent), true, barWidth).View(),
		components.NewProgressBar("Weekly goal", float64(st.WeeklyGoalProgress), true, barWidth).View() +
			theme.Hint.Render(fmt.Sprintf("  %d/%d", st.SessionsLast7Days, st.WeeklyGoalSessions)),
	}

	if len(st.WeakestCategories) > 0 {
		lines = append(lines, "", row("Focus next", strings.Join(st.WeakestCategories, ", ")))
	}
	if len(st.CategoryStats) > 0 {
		lines = append(lines, "", theme.Title.Render("Categories"))
		for _, c := range st.CategoryStats {
			lines = append(lines, row(c.Category, fmt.Sprintf("%d session(s), %.1f%%", c.Sessions, c.Accuracy)))
		}
	}
	if len(st.ErrorTypeTrend) > 0 {
		lines = append(lines, "", theme.Title.Render("Recent mistakes"))
		for _, e := range st.ErrorTypeTrend {
			lines = append(lines, row(e.ErrorType, e.Count))
		}
	}
	if len(st.ObjectiveStats) > 0 {
		lines = append(lines, "", theme.Title.Render("Objectives"))
		for _, o := range st.ObjectiveStats {
			lines = append(lines, theme.Body.Render(fmt.Sprintf("%-32s %3d  %5.1f%%", o.Objective, o.Attempts, o.Accuracy)))
		}
	}
	_, err := lipgloss.Fprintln(w, theme.Card.Render(strings.Join(lines, "\n")))
	return err
}

func renderCourse(w io.Writer, language string, steps []session.CourseStep) error {
	lines := []string{theme.Title.Render("Course · " + language), ""}
	for i, s := range steps {
		head := fmt.Sprintf("%d. %s", i+1, s.Label)
		if !s.Unlocked {
			lines = append(lines,
				theme.Locked.Render(head),
				theme.Hint.Render("   "+s.LockReason))
			continue
		}
		lines = append(lines,
			theme.Good.Render(head)+theme.Hint.Render(fmt.Sprintf("  %d phrases, %s", s.TotalPhrases, strings.ToUpper(string(s.LevelUnlocked)))),
			"   "+components.NewProgressBar("", s.Mastery, true, barWidth-3).View())
	}
	_, err := lipgloss.Fprintln(w, theme.Card.Render(strings.Join(lines, "\n")))
	return err
}
