package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
)

type wireQuestion struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Answer      string `json:"answer"`
	ClozeAnswer string `json:"clozeAnswer"`
}

type cli struct {
	t  *testing.T
	db string
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	for _, k := range []string{"LINGOFLOW_DB", "LINGOFLOW_LOG", "LINGOFLOW_CORPUS", "LINGOFLOW_SESSION_TTL", "LINGOFLOW_DEFAULT_COUNT", "LINGOFLOW_MAX_ATTEMPTS"} {
		t.Setenv(k, "")
	}
	return &cli{t: t, db: filepath.Join(t.TempDir(), "lingoflow.db")}
}

// run executes the root command. Global flags are passed on every call
// since cobra keeps flag values between executions.
func (c *cli) run(stdin string, args ...string) (string, error) {
	c.t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append(args, "--db", c.db, "--log", "quiet", "--learner", "cli-learner"))
	err := rootCmd.Execute()
	return out.String(), err
}

func (c *cli) mustRun(stdin string, args ...string) string {
	c.t.Helper()
	out, err := c.run(stdin, args...)
	if err != nil {
		c.t.Fatalf("%v: %v\n%s", args, err, out)
	}
	return out
}

func correctAttempts(t *testing.T, qs []wireQuestion) string {
	t.Helper()
	var attempts []map[string]string
	for _, q := range qs {
		a := map[string]string{"questionId": q.ID}
		switch q.Type {
		case "build_sentence", "dictation_sentence":
			a["builtSentence"] = q.Answer
		case "cloze_sentence":
			a["selectedOption"] = q.ClozeAnswer
		default:
			a["selectedOption"] = q.Answer
		}
		attempts = append(attempts, a)
	}
	b, err := json.Marshal(attempts)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestSessionRoundTrip(t *testing.T) {
	c := newCLI(t)

	var started struct {
		SessionID string         `json:"sessionId"`
		Category  string         `json:"category"`
		Questions []wireQuestion `json:"questions"`
	}
	out := c.mustRun("", "start", "spanish", "travel", "--count", "6")
	if err := json.Unmarshal([]byte(out), &started); err != nil {
		t.Fatalf("decode start output: %v\n%s", err, out)
	}
	if started.SessionID == "" || len(started.Questions) != 6 {
		t.Fatalf("start = %+v, want a session with 6 questions", started)
	}

	attempts := correctAttempts(t, started.Questions)
	out = c.mustRun(attempts, "complete", started.SessionID, "--language", "spanish", "--category", "travel", "--json=true")
	var done struct {
		Evaluated struct {
			Score    int `json:"score"`
			MaxScore int `json:"maxScore"`
		} `json:"evaluated"`
		XPGained int `json:"xpGained"`
		Streak   int `json:"streak"`
	}
	if err := json.Unmarshal([]byte(out), &done); err != nil {
		t.Fatalf("decode complete output: %v\n%s", err, out)
	}
	if done.Evaluated.Score != 6 || done.Evaluated.MaxScore != 6 || done.Streak != 1 {
		t.Errorf("complete = %+v, want 6/6 and streak 1", done)
	}
	if done.XPGained <= 0 {
		t.Errorf("XPGained = %d, want > 0", done.XPGained)
	}

	out, err := c.run(attempts, "complete", started.SessionID, "--language", "spanish", "--category", "travel", "--json=true")
	if err == nil || !strings.Contains(err.Error(), "already completed") {
		t.Errorf("second complete error = %v, want already completed\n%s", err, out)
	}

	out = c.mustRun("", "progress", "spanish", "--json=true")
	var p struct {
		TotalXP    int `json:"totalXp"`
		Categories []struct {
			Category string `json:"category"`
		} `json:"categories"`
	}
	if err := json.Unmarshal([]byte(out), &p); err != nil {
		t.Fatalf("decode progress output: %v\n%s", err, out)
	}
	if p.TotalXP != done.XPGained || len(p.Categories) != 1 || p.Categories[0].Category != "travel" {
		t.Errorf("progress = %+v", p)
	}

	out = c.mustRun("", "course", "spanish", "--json=false")
	if !strings.Contains(out, "Essentials") || !strings.Contains(out, "a bit more to unlock") {
		t.Errorf("course output missing steps:\n%s", out)
	}

	out = c.mustRun("", "stats", "spanish", "--json=false")
	if !strings.Contains(out, "Sessions") {
		t.Errorf("stats output:\n%s", out)
	}
}

func TestComplete_BadAttemptsInput(t *testing.T) {
	c := newCLI(t)
	_, err := c.run("not json", "complete", "s-1", "--language", "spanish", "--category", "travel", "--json=true")
	if err == nil || !strings.Contains(err.Error(), "decode attempts") {
		t.Errorf("error = %v, want decode attempts", err)
	}
}

func TestSettingsSet(t *testing.T) {
	c := newCLI(t)
	out := c.mustRun("", "settings", "set", "--weekly-sessions", "40", "--level", "b1", "--name", "  Robin ")

	var st struct {
		WeeklyGoalSessions int    `json:"weeklyGoalSessions"`
		SelfRatedLevel     string `json:"selfRatedLevel"`
		LearnerName        string `json:"learnerName"`
	}
	if err := json.Unmarshal([]byte(out), &st); err != nil {
		t.Fatalf("decode settings output: %v\n%s", err, out)
	}
	if st.WeeklyGoalSessions != 21 || st.SelfRatedLevel != "b1" || st.LearnerName != "Robin" {
		t.Errorf("settings = %+v", st)
	}
}

func TestCorpusExportImport(t *testing.T) {
	c := newCLI(t)
	dir := t.TempDir()
	xlsx := filepath.Join(dir, "catalog.xlsx")
	yamlOut := filepath.Join(dir, "merged.yaml")

	c.mustRun("", "corpus", "export", xlsx)
	out := c.mustRun("", "corpus", "import", xlsx, "--out", yamlOut)
	if !strings.Contains(out, "Skipped: 0") {
		t.Errorf("import output:\n%s", out)
	}

	out = c.mustRun("", "corpus", "list", "spanish", "--corpus", yamlOut)
	if !strings.Contains(out, "travel") {
		t.Errorf("list output:\n%s", out)
	}
	// Reset the persistent flag for later tests.
	c.mustRun("", "version", "--corpus", "")

	if _, err := c.run("", "corpus", "export", filepath.Join(dir, "catalog.csv")); err == nil {
		t.Error("export to .csv: expected error")
	}
}

func TestVersion(t *testing.T) {
	c := newCLI(t)
	out := c.mustRun("", "version")
	if !strings.HasPrefix(out, "lingoflow ") {
		t.Errorf("version = %q", out)
	}
}
