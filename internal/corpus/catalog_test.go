package corpus

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultCatalogLoads(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}

	if got := len(c.Languages()); got != 3 {
		t.Errorf("languages = %d, want 3", got)
	}
	if got := len(c.Categories()); got != 6 {
		t.Errorf("categories = %d, want 6", got)
	}

	for _, lang := range c.Languages() {
		for _, cat := range c.Categories() {
			items := c.Items(lang.ID, cat.ID)
			if len(items) < 8 {
				t.Errorf("%s/%s has %d items, want at least 8", lang.ID, cat.ID, len(items))
			}
			for _, it := range items {
				if it.Language != lang.ID || it.Category != cat.ID {
					t.Errorf("item %s tagged %s/%s, want %s/%s", it.ID, it.Language, it.Category, lang.ID, cat.ID)
				}
			}
		}
	}
}

func TestCategoriesKeepFileOrder(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"essentials", "conversation", "travel", "work", "health", "grammar"}
	for i, cat := range c.Categories() {
		if cat.ID != want[i] {
			t.Errorf("category[%d] = %q, want %q", i, cat.ID, want[i])
		}
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"wrong version", "version: 2\n"},
		{"bad level", `version: 1
items:
  spanish:
    travel:
      - {id: x1, level: c1, prompt: p, target: t}
`},
		{"duplicate id", `version: 1
items:
  spanish:
    travel:
      - {id: x1, level: a1, prompt: p, target: t}
    work:
      - {id: x1, level: a1, prompt: p, target: t}
`},
		{"empty target", `version: 1
items:
  spanish:
    travel:
      - {id: x1, level: a1, prompt: p, target: " "}
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.yaml)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseAddsUnknownCategory(t *testing.T) {
	c, err := Load(strings.NewReader(`version: 1
items:
  spanish:
    cooking:
      - {id: c1, level: a2, prompt: p, target: Cocino pasta}
`))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(c.Categories()) != 1 || c.Categories()[0].Label != "Cooking" {
		t.Errorf("categories = %+v, want one Cooking category", c.Categories())
	}
	if !c.HasLanguage("spanish") {
		t.Error("HasLanguage(spanish) = false")
	}
	if c.HasLanguage("french") {
		t.Error("HasLanguage(french) = true")
	}
}

func TestNewOrdersUnknownCategories(t *testing.T) {
	item := func(id string) []Item {
		return []Item{{ID: id, Level: LevelA1, Prompt: "p", Target: "Hola."}}
	}
	items := map[string]map[string][]Item{
		"spanish": {"zeta": item("z1"), "travel": item("t1"), "mid": item("m1")},
		"french":  {"alpha": item("a1"), "zeta": item("z2")},
	}
	want := []string{"travel", "alpha", "mid", "zeta"}
	for i := 0; i < 20; i++ {
		c, err := New(nil, []Category{{ID: "travel", Label: "Travel"}}, items)
		if err != nil {
			t.Fatalf("New() error: %v", err)
		}
		var got []string
		for _, cat := range c.Categories() {
			got = append(got, cat.ID)
		}
		if strings.Join(got, ",") != strings.Join(want, ",") {
			t.Fatalf("categories = %v, want %v", got, want)
		}
	}
}

func TestOverview(t *testing.T) {
	c, err := New(nil, []Category{{ID: "travel", Label: "Travel"}, {ID: "work", Label: "Work"}},
		map[string]map[string][]Item{
			"spanish": {
				"travel": {
					{ID: "t1", Level: LevelB1, Target: "a"},
					{ID: "t2", Level: LevelA1, Target: "b"},
					{ID: "t3", Level: LevelB1, Target: "c"},
				},
			},
		})
	if err != nil {
		t.Fatal(err)
	}

	ov := c.Overview("spanish")
	if len(ov) != 2 {
		t.Fatalf("overview len = %d, want 2", len(ov))
	}
	if ov[0].TotalPhrases != 3 {
		t.Errorf("travel phrases = %d, want 3", ov[0].TotalPhrases)
	}
	if len(ov[0].Levels) != 2 || ov[0].Levels[0] != LevelA1 || ov[0].Levels[1] != LevelB1 {
		t.Errorf("travel levels = %v, want [a1 b1]", ov[0].Levels)
	}
	if ov[1].TotalPhrases != 0 {
		t.Errorf("work phrases = %d, want 0", ov[1].TotalPhrases)
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := c.WriteYAML(&buf); err != nil {
		t.Fatalf("WriteYAML() error: %v", err)
	}
	c2, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got, want := len(c2.Items("russian", "health")), len(c.Items("russian", "health")); got != want {
		t.Errorf("russian/health items = %d, want %d", got, want)
	}
}

func TestXLSXImport(t *testing.T) {
	base, err := New([]Language{{ID: "spanish", Label: "Spanish"}}, []Category{{ID: "travel", Label: "Travel"}},
		map[string]map[string][]Item{
			"spanish": {"travel": {{ID: "t1", Level: LevelA1, Prompt: "p", Target: "Hola"}}},
		})
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "items.xlsx")
	if err := WriteXLSXTemplate(path, base); err != nil {
		t.Fatalf("WriteXLSXTemplate() error: %v", err)
	}

	c, res, err := LoadXLSX(path, nil)
	if err != nil {
		t.Fatalf("LoadXLSX() error: %v", err)
	}
	if res.Imported != 1 || res.Skipped != 0 {
		t.Errorf("result = %+v, want 1 imported, 0 skipped", res)
	}
	items := c.Items("spanish", "travel")
	if len(items) != 1 || items[0].Target != "Hola" || items[0].Level != LevelA1 {
		t.Errorf("items = %+v", items)
	}
}

func TestLevelRank(t *testing.T) {
	tests := []struct {
		rank int
		want Level
	}{
		{-3, LevelA1},
		{0, LevelA1},
		{1, LevelA2},
		{2, LevelB1},
		{3, LevelB2},
		{9, LevelB2},
	}
	for _, tt := range tests {
		if got := LevelFromRank(tt.rank); got != tt.want {
			t.Errorf("LevelFromRank(%d) = %q, want %q", tt.rank, got, tt.want)
		}
	}
	if _, err := ParseLevel("c2"); err == nil {
		t.Error("ParseLevel(c2) expected error")
	}
	if l, err := ParseLevel("b2"); err != nil || l != LevelB2 {
		t.Errorf("ParseLevel(b2) = %q, %v", l, err)
	}
}
