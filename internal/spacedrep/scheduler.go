package spacedrep

import (
	"sort"
	"time"

	"github.com/abhisek/lingoflow/internal/store"
)

// MaxHintItems caps each ranked list returned by Hints.
const MaxHintItems = 20

// SelectionHints biases session selection towards items the learner needs.
type SelectionHints struct {
	Due  []string
	Weak []string
}

// Hints ranks a learner's item states for one category.
//
// Due holds items that were never scheduled or whose next due day is on or
// before today, earliest due first, then most errors first. Weak holds all
// items ordered by accuracy ascending, then most errors first. Ties fall
// back to the item id so the result is stable.
func Hints(rows []store.ItemProgress, today time.Time) SelectionHints {
	var due []store.ItemProgress
	for _, p := range rows {
		if IsDue(p, today) {
			due = append(due, p)
		}
	}
	sort.SliceStable(due, func(i, j int) bool {
		a, b := due[i], due[j]
		if (a.NextDue == nil) != (b.NextDue == nil) {
			return a.NextDue == nil
		}
		if a.NextDue != nil && !a.NextDue.Equal(*b.NextDue) {
			return a.NextDue.Before(*b.NextDue)
		}
		if a.ErrorCount != b.ErrorCount {
			return a.ErrorCount > b.ErrorCount
		}
		return a.ItemID < b.ItemID
	})

	weak := append([]store.ItemProgress(nil), rows...)
	sort.SliceStable(weak, func(i, j int) bool {
		a, b := weak[i], weak[j]
		accA, accB := Accuracy(a), Accuracy(b)
		if accA != accB {
			return accA < accB
		}
		if a.ErrorCount != b.ErrorCount {
			return a.ErrorCount > b.ErrorCount
		}
		return a.ItemID < b.ItemID
	})

	return SelectionHints{
		Due:  itemIDs(due, MaxHintItems),
		Weak: itemIDs(weak, MaxHintItems),
	}
}

func itemIDs(rows []store.ItemProgress, limit int) []string {
	if len(rows) > limit {
		rows = rows[:limit]
	}
	ids := make([]string, 0, len(rows))
	for _, p := range rows {
		ids = append(ids, p.ItemID)
	}
	return ids
}
