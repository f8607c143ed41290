package spacedrep

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/abhisek/lingoflow/internal/store"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestHints_DueOrdering(t *testing.T) {
	today := day(2025, 5, 10)
	rows := []store.ItemProgress{
		{ItemID: "future", NextDue: timePtr(day(2025, 5, 11))},
		{ItemID: "old", NextDue: timePtr(day(2025, 5, 1)), ErrorCount: 0},
		{ItemID: "today-few", NextDue: timePtr(today), ErrorCount: 1},
		{ItemID: "today-many", NextDue: timePtr(today), ErrorCount: 4},
		{ItemID: "never", NextDue: nil},
	}

	got := Hints(rows, today)
	want := []string{"never", "old", "today-many", "today-few"}
	if !reflect.DeepEqual(got.Due, want) {
		t.Errorf("Due = %v, want %v", got.Due, want)
	}
}

func TestHints_WeakOrdering(t *testing.T) {
	today := day(2025, 5, 10)
	rows := []store.ItemProgress{
		{ItemID: "perfect", Attempts: 4, Correct: 4},
		{ItemID: "half", Attempts: 4, Correct: 2, ErrorCount: 2},
		{ItemID: "zero-a", Attempts: 3, Correct: 0, ErrorCount: 3},
		{ItemID: "zero-b", Attempts: 0, Correct: 0, ErrorCount: 5},
	}

	got := Hints(rows, today)
	want := []string{"zero-b", "zero-a", "half", "perfect"}
	if !reflect.DeepEqual(got.Weak, want) {
		t.Errorf("Weak = %v, want %v", got.Weak, want)
	}
}

func TestHints_Capped(t *testing.T) {
	var rows []store.ItemProgress
	for i := 0; i < 30; i++ {
		rows = append(rows, store.ItemProgress{ItemID: fmt.Sprintf("i%02d", i)})
	}
	got := Hints(rows, day(2025, 1, 1))
	if len(got.Due) != MaxHintItems {
		t.Errorf("len(Due) = %d, want %d", len(got.Due), MaxHintItems)
	}
	if len(got.Weak) != MaxHintItems {
		t.Errorf("len(Weak) = %d, want %d", len(got.Weak), MaxHintItems)
	}
}

func TestHints_Empty(t *testing.T) {
	got := Hints(nil, day(2025, 1, 1))
	if len(got.Due) != 0 || len(got.Weak) != 0 {
		t.Errorf("Hints(nil) = %+v, want empty", got)
	}
}

func TestIsDue(t *testing.T) {
	today := day(2025, 1, 2)
	tests := []struct {
		name string
		next *time.Time
		want bool
	}{
		{"never scheduled", nil, true},
		{"yesterday", timePtr(day(2025, 1, 1)), true},
		{"today", timePtr(today), true},
		{"tomorrow", timePtr(day(2025, 1, 3)), false},
	}
	for _, tt := range tests {
		got := IsDue(store.ItemProgress{NextDue: tt.next}, today.Add(10*time.Hour))
		if got != tt.want {
			t.Errorf("%s: IsDue() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
