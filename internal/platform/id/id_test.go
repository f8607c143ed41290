package id

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUID_Unique(t *testing.T) {
	var g Generator = UUID{}
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		v := g.New()
		if _, err := uuid.Parse(v); err != nil {
			t.Fatalf("New() = %q, not a uuid: %v", v, err)
		}
		if seen[v] {
			t.Fatalf("duplicate id %q", v)
		}
		seen[v] = true
	}
}

func TestSequence(t *testing.T) {
	s := &Sequence{Prefix: "s"}
	if got := s.New(); got != "s-1" {
		t.Errorf("first = %q, want s-1", got)
	}
	if got := s.New(); got != "s-2" {
		t.Errorf("second = %q, want s-2", got)
	}
}
