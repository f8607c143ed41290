package exercise

import (
	"errors"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/abhisek/lingoflow/internal/corpus"
)

// ErrEmptyCorpus is returned when a category has no items.
var ErrEmptyCorpus = errors.New("no exercises for category")

// Selection mix and synthesis constants.
const (
	DueShare         = 0.6
	WeakShare        = 0.25
	DistractorCount  = 3
	MaxClozeOptions  = 4
	NoiseTokenCount  = 2
	ClozeMinMaskLen  = 4 // first token at least this long is masked
	MinDistractorLen = 3 // tokens shorter than this never become options or noise
	ClozeBlank       = "____"
	DialoguePrefix   = "Choose the best response. "
	DictationPrefix  = "Listen and build sentence. "
)

// Rand is the randomness used for selection and shuffling.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	Shuffle(n int, swap func(i, j int))
}

type globalRand struct{}

func (globalRand) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// DefaultRand draws from the runtime's concurrency-safe global source.
var DefaultRand Rand = globalRand{}

// GenerateInput describes one session to generate.
type GenerateInput struct {
	Items          []corpus.Item
	Category       string
	Count          int
	Mastery        float64
	RecentAccuracy *float64
	SelfRated      corpus.Level
	DueIDs         []string
	WeakIDs        []string
}

// Generated is a frozen question set and the level it was built for.
type Generated struct {
	RecommendedLevel corpus.Level
	Questions        []Question
}

// Generator builds question sets from corpus items.
type Generator struct {
	rnd Rand
}

// NewGenerator returns a Generator drawing from r. A nil r uses DefaultRand.
func NewGenerator(r Rand) *Generator {
	if r == nil {
		r = DefaultRand
	}
	return &Generator{rnd: r}
}

// Generate resolves the session level, selects items and synthesizes one
// question per selected item following Rotation.
func (g *Generator) Generate(in GenerateInput) (*Generated, error) {
	if len(in.Items) == 0 {
		return nil, ErrEmptyCorpus
	}

	level := ResolveLevel(in.Mastery, in.RecentAccuracy, in.SelfRated)
	pool := CandidatePool(in.Items, level, in.Count)
	selected := g.Select(pool, in.Count, in.DueIDs, in.WeakIDs)

	qs := make([]Question, 0, len(selected))
	for i, it := range selected {
		qs = append(qs, g.Synthesize(Rotation[i%len(Rotation)], it, pool, in.Category))
	}
	return &Generated{RecommendedLevel: level, Questions: qs}, nil
}

// CandidatePool keeps items at most one band above level. When that leaves
// fewer than count items the full list is used.
func CandidatePool(items []corpus.Item, level corpus.Level, count int) []corpus.Item {
	maxRank := corpus.ClampRank(level.Rank() + 1)
	var pool []corpus.Item
	for _, it := range items {
		if it.Level.Rank() <= maxRank {
			pool = append(pool, it)
		}
	}
	if len(pool) < count {
		return items
	}
	return pool
}

// Select draws min(count, len(pool)) distinct items: a due share first, then
// weak items not already chosen, then a random fill.
func (g *Generator) Select(pool []corpus.Item, count int, dueIDs, weakIDs []string) []corpus.Item {
	target := min(count, len(pool))
	if target <= 0 {
		return nil
	}
	dueTarget := min(target, roundShare(target, DueShare))
	weakTarget := min(target-dueTarget, roundShare(target, WeakShare))

	dueSet := toSet(dueIDs)
	weakSet := toSet(weakIDs)
	chosen := make(map[string]bool, target)

	pick := func(want int, match func(corpus.Item) bool) []corpus.Item {
		var cands []corpus.Item
		for _, it := range pool {
			if !chosen[it.ID] && match(it) {
				cands = append(cands, it)
			}
		}
		cands = shuffled(g.rnd, cands)
		if len(cands) > want {
			cands = cands[:want]
		}
		for _, it := range cands {
			chosen[it.ID] = true
		}
		return cands
	}

	due := pick(dueTarget, func(it corpus.Item) bool { return dueSet[it.ID] })
	weak := pick(weakTarget, func(it corpus.Item) bool { return weakSet[it.ID] })
	rest := pick(len(pool), func(corpus.Item) bool { return true })

	out := make([]corpus.Item, 0, target)
	out = append(out, due...)
	out = append(out, weak...)
	out = append(out, rest...)
	return out[:target]
}

// Synthesize builds one question of the given kind for item.
func (g *Generator) Synthesize(kind Kind, item corpus.Item, pool []corpus.Item, category string) Question {
	base := Base{
		ID:              item.ID,
		Level:           item.Level,
		Prompt:          item.Prompt,
		Answer:          item.Target,
		AcceptedAnswers: AcceptedAnswers(item.Target),
		Objective:       Objective(category, item.Level),
	}

	switch kind {
	case KindDialogue:
		base.Prompt = DialoguePrefix + item.Prompt
		return &Dialogue{Base: base, Options: g.options(item, pool)}
	case KindCloze:
		return g.cloze(base, item, pool)
	case KindSentenceBuild:
		return &SentenceBuild{Base: base, Tokens: g.buildTokens(item, pool)}
	case KindDictation:
		base.Prompt = DictationPrefix + item.Prompt
		return &Dictation{Base: base, Tokens: g.buildTokens(item, pool), AudioText: item.Target}
	default:
		return &MultipleChoice{Base: base, Options: g.options(item, pool)}
	}
}

// Distractors returns up to count other targets, preferring items within
// one level band of item.
func (g *Generator) Distractors(item corpus.Item, pool []corpus.Item, count int) []string {
	rank := item.Level.Rank()
	var near, all []string
	seenNear := map[string]bool{item.Target: true}
	seenAny := map[string]bool{item.Target: true}
	for _, c := range pool {
		if !seenAny[c.Target] {
			seenAny[c.Target] = true
			all = append(all, c.Target)
		}
		if d := c.Level.Rank() - rank; d >= -1 && d <= 1 && !seenNear[c.Target] {
			seenNear[c.Target] = true
			near = append(near, c.Target)
		}
	}
	src := all
	if len(near) >= count {
		src = near
	}
	src = shuffled(g.rnd, src)
	if len(src) > count {
		src = src[:count]
	}
	return src
}

func (g *Generator) options(item corpus.Item, pool []corpus.Item) []string {
	opts := append([]string{item.Target}, g.Distractors(item, pool, DistractorCount)...)
	return shuffled(g.rnd, opts)
}

func (g *Generator) cloze(base Base, item corpus.Item, pool []corpus.Item) *Cloze {
	tokens := strings.Fields(item.Target)
	mask := 0
	for i, tok := range tokens {
		if runeLen(tok) >= ClozeMinMaskLen {
			mask = i
			break
		}
	}
	var answer string
	if len(tokens) > 0 {
		answer = tokens[mask]
	}

	var cands []string
	seen := map[string]bool{answer: true}
	for _, tok := range poolTokens(pool) {
		if runeLen(tok) >= MinDistractorLen && !seen[tok] {
			seen[tok] = true
			cands = append(cands, tok)
		}
	}
	cands = shuffled(g.rnd, cands)
	if len(cands) > MaxClozeOptions-1 {
		cands = cands[:MaxClozeOptions-1]
	}
	opts := shuffled(g.rnd, append([]string{answer}, cands...))

	masked := append([]string(nil), tokens...)
	if len(masked) > 0 {
		masked[mask] = ClozeBlank
	}
	return &Cloze{
		Base:         base,
		ClozeText:    strings.Join(masked, " "),
		ClozeAnswer:  answer,
		ClozeOptions: opts,
	}
}

func (g *Generator) buildTokens(item corpus.Item, pool []corpus.Item) []string {
	tokens := strings.Fields(item.Target)
	present := toSet(tokens)

	var noise []string
	for _, tok := range poolTokens(pool) {
		if runeLen(tok) >= MinDistractorLen && !present[tok] {
			present[tok] = true
			noise = append(noise, tok)
		}
	}
	noise = shuffled(g.rnd, noise)
	if len(noise) > NoiseTokenCount {
		noise = noise[:NoiseTokenCount]
	}
	return shuffled(g.rnd, append(tokens, noise...))
}

func poolTokens(pool []corpus.Item) []string {
	var out []string
	for _, it := range pool {
		out = append(out, strings.Fields(it.Target)...)
	}
	return out
}

func roundShare(n int, share float64) int {
	return int(math.Round(float64(n) * share))
}

func toSet(ids []string) map[string]bool {
	s := make(map[string]bool, len(ids))
	for _, id := range ids {
		s[id] = true
	}
	return s
}

// shuffled returns a shuffled copy of in.
func shuffled[T any](r Rand, in []T) []T {
	out := append([]T(nil), in...)
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
