package corpus

import (
	_ "embed"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// CatalogVersion is the schema version of the YAML catalog format.
const CatalogVersion = 1

// Item is a single exercise sentence from the catalog.
type Item struct {
	ID       string `yaml:"id" json:"id"`
	Level    Level  `yaml:"level" json:"level"`
	Prompt   string `yaml:"prompt" json:"prompt"`
	Target   string `yaml:"target" json:"target"`
	Category string `yaml:"-" json:"category"`
	Language string `yaml:"-" json:"language"`
}

// Language describes a learnable language.
type Language struct {
	ID    string `yaml:"id" json:"id"`
	Label string `yaml:"label" json:"label"`
	Flag  string `yaml:"flag" json:"flag"`
}

// Category describes a practice category.
type Category struct {
	ID          string `yaml:"id" json:"id"`
	Label       string `yaml:"label" json:"label"`
	Description string `yaml:"description" json:"description"`
}

// Provider is the read-only source of exercise items.
type Provider interface {
	// Items returns the items for a language and category. The returned
	// slice must not be modified by the caller.
	Items(language, category string) []Item
}

// Catalog is an in-memory, immutable sentence catalog.
type Catalog struct {
	languages  []Language
	categories []Category
	items      map[string]map[string][]Item
}

// catalogFile is the on-disk YAML representation.
type catalogFile struct {
	Version    int                          `yaml:"version"`
	Languages  []Language                   `yaml:"languages"`
	Categories []Category                   `yaml:"categories"`
	Items      map[string]map[string][]Item `yaml:"items"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Parse(defaultCatalogYAML)
	})
	return defaultCatalog, defaultErr
}

// Load reads a YAML catalog from r.
func Load(r io.Reader) (*Catalog, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(b)
}

// Parse decodes a YAML catalog and validates every item.
func Parse(b []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if f.Version != CatalogVersion {
		return nil, fmt.Errorf("unsupported catalog version %d", f.Version)
	}
	return New(f.Languages, f.Categories, f.Items)
}

// New builds a catalog from its parts. Item Language and Category fields
// are filled from the map keys.
func New(languages []Language, categories []Category, items map[string]map[string][]Item) (*Catalog, error) {
	c := &Catalog{
		languages:  append([]Language(nil), languages...),
		categories: append([]Category(nil), categories...),
		items:      make(map[string]map[string][]Item, len(items)),
	}

	knownCategory := make(map[string]bool, len(categories))
	for _, cat := range categories {
		knownCategory[cat.ID] = true
	}

	var extra []string
	seen := make(map[string]bool)
	for lang, byCat := range items {
		c.items[lang] = make(map[string][]Item, len(byCat))
		for cat, list := range byCat {
			if !knownCategory[cat] {
				extra = append(extra, cat)
				knownCategory[cat] = true
			}
			out := make([]Item, 0, len(list))
			for _, it := range list {
				if it.ID == "" {
					return nil, fmt.Errorf("item in %s/%s has empty id", lang, cat)
				}
				if seen[lang+"/"+it.ID] {
					return nil, fmt.Errorf("duplicate item id %q in %s", it.ID, lang)
				}
				seen[lang+"/"+it.ID] = true
				if !it.Level.Valid() {
					return nil, fmt.Errorf("item %s: unknown level %q", it.ID, it.Level)
				}
				if strings.TrimSpace(it.Target) == "" {
					return nil, fmt.Errorf("item %s: empty target", it.ID)
				}
				it.Language = lang
				it.Category = cat
				out = append(out, it)
			}
			c.items[lang][cat] = out
		}
	}
	// Categories missing from the list follow it in id order.
	sort.Strings(extra)
	for _, cat := range extra {
		c.categories = append(c.categories, Category{ID: cat, Label: titleCase(cat)})
	}
	return c, nil
}

// Items implements Provider.
func (c *Catalog) Items(language, category string) []Item {
	return c.items[language][category]
}

// Languages returns the configured languages.
func (c *Catalog) Languages() []Language {
	return c.languages
}

// Categories returns the categories in course order.
func (c *Catalog) Categories() []Category {
	return c.categories
}

// HasLanguage reports whether the catalog knows the language.
func (c *Catalog) HasLanguage(language string) bool {
	if _, ok := c.items[language]; ok {
		return true
	}
	for _, l := range c.languages {
		if l.ID == language {
			return true
		}
	}
	return false
}

// CategoryOverview summarizes one category for a language.
type CategoryOverview struct {
	Category
	TotalPhrases int     `json:"totalPhrases"`
	Levels       []Level `json:"levels"`
}

// Overview lists every category with its phrase count and the levels it
// covers, in course order.
func (c *Catalog) Overview(language string) []CategoryOverview {
	out := make([]CategoryOverview, 0, len(c.categories))
	for _, cat := range c.categories {
		items := c.Items(language, cat.ID)
		present := make(map[Level]bool)
		for _, it := range items {
			present[it.Level] = true
		}
		var levels []Level
		for l := range present {
			levels = append(levels, l)
		}
		sort.Slice(levels, func(i, j int) bool { return levels[i].Rank() < levels[j].Rank() })
		out = append(out, CategoryOverview{
			Category:     cat,
			TotalPhrases: len(items),
			Levels:       levels,
		})
	}
	return out
}

// WriteYAML encodes the catalog in the on-disk format.
func (c *Catalog) WriteYAML(w io.Writer) error {
	f := catalogFile{
		Version:    CatalogVersion,
		Languages:  c.languages,
		Categories: c.categories,
		Items:      c.items,
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return enc.Close()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
