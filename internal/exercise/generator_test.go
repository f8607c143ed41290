package exercise

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/abhisek/lingoflow/internal/corpus"
)

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}

func floatPtr(v float64) *float64 { return &v }

// mixedItems returns n items spread evenly across all four levels.
func mixedItems(n int) []corpus.Item {
	items := make([]corpus.Item, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, corpus.Item{
			ID:       fmt.Sprintf("it-%02d", i),
			Level:    corpus.Levels[i%len(corpus.Levels)],
			Prompt:   fmt.Sprintf("Say sentence %d", i),
			Target:   fmt.Sprintf("Palabra%d larga oración número %d.", i, i),
			Category: "travel",
			Language: "spanish",
		})
	}
	return items
}

func TestResolveLevel(t *testing.T) {
	tests := []struct {
		name      string
		mastery   float64
		recent    *float64
		selfRated corpus.Level
		want      corpus.Level
	}{
		{"new learner", 0, nil, corpus.LevelA1, corpus.LevelA1},
		{"band a2", 20, nil, corpus.LevelA1, corpus.LevelA2},
		{"band b1", 45, nil, corpus.LevelA1, corpus.LevelB1},
		{"band b2", 70, nil, corpus.LevelA1, corpus.LevelB2},
		{"raise on high accuracy", 30, floatPtr(0.88), corpus.LevelA1, corpus.LevelB1},
		{"lower on low accuracy", 30, floatPtr(0.55), corpus.LevelA1, corpus.LevelA1},
		{"neutral accuracy", 30, floatPtr(0.7), corpus.LevelA1, corpus.LevelA2},
		{"clamp above b2", 90, floatPtr(1), corpus.LevelA1, corpus.LevelB2},
		{"clamp below a1", 0, floatPtr(0), corpus.LevelA1, corpus.LevelA1},
		{"self-rated floor", 0, floatPtr(0.1), corpus.LevelB2, corpus.LevelB1},
		{"self-rated does not raise beyond floor", 0, nil, corpus.LevelB1, corpus.LevelA2},
		{"unknown self-rated ignored", 0, nil, corpus.Level(""), corpus.LevelA1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveLevel(tt.mastery, tt.recent, tt.selfRated)
			if got != tt.want {
				t.Errorf("ResolveLevel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCandidatePool(t *testing.T) {
	items := mixedItems(16) // 4 per level

	pool := CandidatePool(items, corpus.LevelA1, 6)
	for _, it := range pool {
		if it.Level.Rank() > 1 {
			t.Errorf("pool for a1 contains %s at %s", it.ID, it.Level)
		}
	}
	if len(pool) != 8 {
		t.Errorf("pool size = %d, want 8", len(pool))
	}

	// Too few in band: fall back to the whole category.
	if got := CandidatePool(items, corpus.LevelA1, 10); len(got) != 16 {
		t.Errorf("fallback pool size = %d, want 16", len(got))
	}
}

func TestGenerate_AllKindsForTen(t *testing.T) {
	g := NewGenerator(seeded(7))
	out, err := g.Generate(GenerateInput{
		Items:    mixedItems(12),
		Category: "travel",
		Count:    10,
	})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if len(out.Questions) != 10 {
		t.Fatalf("questions = %d, want 10", len(out.Questions))
	}

	kinds := make(map[Kind]int)
	ids := make(map[string]bool)
	for i, q := range out.Questions {
		kinds[q.Kind()]++
		if q.Kind() != Rotation[i%len(Rotation)] {
			t.Errorf("question %d kind = %s, want %s", i, q.Kind(), Rotation[i%len(Rotation)])
		}
		if ids[q.Common().ID] {
			t.Errorf("item %s used twice", q.Common().ID)
		}
		ids[q.Common().ID] = true
	}
	for _, k := range Rotation {
		if kinds[k] == 0 {
			t.Errorf("kind %s missing from session", k)
		}
	}
}

func TestGenerate_CountCappedByPool(t *testing.T) {
	g := NewGenerator(seeded(1))
	out, err := g.Generate(GenerateInput{Items: mixedItems(4), Category: "travel", Count: 10})
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Questions) != 4 {
		t.Errorf("questions = %d, want 4", len(out.Questions))
	}
}

func TestGenerate_EmptyCorpus(t *testing.T) {
	_, err := NewGenerator(seeded(1)).Generate(GenerateInput{Category: "travel", Count: 10})
	if !errors.Is(err, ErrEmptyCorpus) {
		t.Errorf("error = %v, want ErrEmptyCorpus", err)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	in := GenerateInput{Items: mixedItems(12), Category: "travel", Count: 10}
	a, _ := NewGenerator(seeded(42)).Generate(in)
	b, _ := NewGenerator(seeded(42)).Generate(in)

	encA, err := EncodeSet(a.Questions)
	if err != nil {
		t.Fatal(err)
	}
	encB, err := EncodeSet(b.Questions)
	if err != nil {
		t.Fatal(err)
	}
	if string(encA) != string(encB) {
		t.Error("same seed produced different sessions")
	}
}

func TestSelect_FrontLoadsDueAndWeak(t *testing.T) {
	pool := mixedItems(10)
	due := []string{"it-03", "it-07", "it-01", "it-05", "it-09", "it-00", "it-02"}
	weak := []string{"it-04", "it-06", "it-08"}

	g := NewGenerator(seeded(3))
	got := g.Select(pool, 10, due, weak)
	if len(got) != 10 {
		t.Fatalf("selected = %d, want 10", len(got))
	}

	dueSet := toSet(due)
	weakSet := toSet(weak)
	// 60% of 10 = 6 due items first, then round(2.5) = 3 weak items.
	for i := 0; i < 6; i++ {
		if !dueSet[got[i].ID] {
			t.Errorf("slot %d = %s, want a due item", i, got[i].ID)
		}
	}
	for i := 6; i < 9; i++ {
		if !weakSet[got[i].ID] {
			t.Errorf("slot %d = %s, want a weak item", i, got[i].ID)
		}
	}
}

func TestSelect_WeakExcludesChosenDue(t *testing.T) {
	pool := mixedItems(8)
	both := []string{"it-00", "it-01", "it-02", "it-03", "it-04", "it-05", "it-06", "it-07"}

	got := NewGenerator(seeded(9)).Select(pool, 6, both, both)
	seen := make(map[string]bool)
	for _, it := range got {
		if seen[it.ID] {
			t.Errorf("item %s selected twice", it.ID)
		}
		seen[it.ID] = true
	}
	if len(got) != 6 {
		t.Errorf("selected = %d, want 6", len(got))
	}
}

func TestSynthesize_MultipleChoice(t *testing.T) {
	pool := mixedItems(8)
	item := pool[0]
	q := NewGenerator(seeded(5)).Synthesize(KindMultipleChoice, item, pool, "travel").(*MultipleChoice)

	if len(q.Options) != 1+DistractorCount {
		t.Fatalf("options = %v, want %d", q.Options, 1+DistractorCount)
	}
	seen := make(map[string]bool)
	found := false
	for _, o := range q.Options {
		if seen[o] {
			t.Errorf("duplicate option %q", o)
		}
		seen[o] = true
		if o == item.Target {
			found = true
		}
	}
	if !found {
		t.Error("options do not contain the answer")
	}
	if q.Objective != "travel-a1-communication" {
		t.Errorf("objective = %q", q.Objective)
	}
	if len(q.AcceptedAnswers) != 1 || strings.HasSuffix(q.AcceptedAnswers[0], ".") {
		t.Errorf("accepted answers = %v", q.AcceptedAnswers)
	}
}

func TestDistractors_PreferNearLevels(t *testing.T) {
	item := corpus.Item{ID: "x", Level: corpus.LevelA1, Target: "answer"}
	pool := []corpus.Item{
		item,
		{ID: "n1", Level: corpus.LevelA1, Target: "near one"},
		{ID: "n2", Level: corpus.LevelA2, Target: "near two"},
		{ID: "n3", Level: corpus.LevelA2, Target: "near three"},
		{ID: "f1", Level: corpus.LevelB2, Target: "far one"},
	}
	got := NewGenerator(seeded(2)).Distractors(item, pool, 3)
	for _, d := range got {
		if !strings.HasPrefix(d, "near") {
			t.Errorf("distractor %q outside the level band", d)
		}
	}

	// Not enough near items: draw from everything except the answer.
	got = NewGenerator(seeded(2)).Distractors(item, pool[:3], 3)
	if len(got) != 2 {
		t.Errorf("fallback distractors = %v, want 2", got)
	}
}

func TestSynthesize_Cloze(t *testing.T) {
	item := corpus.Item{ID: "c", Level: corpus.LevelA1, Target: "Yo soy de Madrid."}
	pool := []corpus.Item{item, {ID: "o", Level: corpus.LevelA1, Target: "Tengo un perro grande"}}

	q := NewGenerator(seeded(11)).Synthesize(KindCloze, item, pool, "essentials").(*Cloze)
	if q.ClozeAnswer != "Madrid." {
		t.Errorf("cloze answer = %q, want %q", q.ClozeAnswer, "Madrid.")
	}
	if q.ClozeText != "Yo soy de ____" {
		t.Errorf("cloze text = %q", q.ClozeText)
	}
	if len(q.ClozeOptions) > MaxClozeOptions {
		t.Errorf("options = %v, more than %d", q.ClozeOptions, MaxClozeOptions)
	}
	seen := make(map[string]bool)
	hasAnswer := false
	for _, o := range q.ClozeOptions {
		if seen[o] {
			t.Errorf("duplicate cloze option %q", o)
		}
		seen[o] = true
		if o == q.ClozeAnswer {
			hasAnswer = true
		} else if len([]rune(o)) < MinDistractorLen {
			t.Errorf("short distractor %q", o)
		}
	}
	if !hasAnswer {
		t.Error("cloze options missing the answer")
	}
}

func TestSynthesize_ClozeShortTokens(t *testing.T) {
	item := corpus.Item{ID: "c", Level: corpus.LevelA1, Target: "Yo soy"}
	q := NewGenerator(seeded(1)).Synthesize(KindCloze, item, []corpus.Item{item}, "x").(*Cloze)
	if q.ClozeAnswer != "Yo" || q.ClozeText != "____ soy" {
		t.Errorf("cloze = %q / %q, want token 0 masked", q.ClozeAnswer, q.ClozeText)
	}
}

func TestSynthesize_BuildAndDictation(t *testing.T) {
	item := corpus.Item{ID: "b", Level: corpus.LevelA2, Prompt: "Say it", Target: "Hola amigo mío"}
	pool := []corpus.Item{item, {ID: "o", Level: corpus.LevelA2, Target: "Tengo un perro grande"}}
	g := NewGenerator(seeded(4))

	build := g.Synthesize(KindSentenceBuild, item, pool, "conversation").(*SentenceBuild)
	if len(build.Tokens) != 3+NoiseTokenCount {
		t.Errorf("build tokens = %v, want %d", build.Tokens, 3+NoiseTokenCount)
	}
	for _, tok := range []string{"Hola", "amigo", "mío"} {
		if !contains(build.Tokens, tok) {
			t.Errorf("build tokens %v missing %q", build.Tokens, tok)
		}
	}
	for _, tok := range build.Tokens {
		if tok == "un" {
			t.Error("short noise token included")
		}
	}

	dict := g.Synthesize(KindDictation, item, pool, "conversation").(*Dictation)
	if dict.AudioText != item.Target {
		t.Errorf("audio text = %q", dict.AudioText)
	}
	if dict.Prompt != DictationPrefix+item.Prompt {
		t.Errorf("dictation prompt = %q", dict.Prompt)
	}

	dlg := g.Synthesize(KindDialogue, item, pool, "conversation").(*Dialogue)
	if dlg.Prompt != DialoguePrefix+item.Prompt {
		t.Errorf("dialogue prompt = %q", dlg.Prompt)
	}
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
