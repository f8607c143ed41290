package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestWith_CarriesFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}

	l.With("learner", "ana").Info("session started", "category", "travel")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["learner"] != "ana" || ctx["category"] != "travel" {
		t.Errorf("context = %v", ctx)
	}
	if entries[0].Message != "session started" {
		t.Errorf("message = %q", entries[0].Message)
	}
}

func TestNew_Modes(t *testing.T) {
	for _, mode := range []string{"dev", "prod", "quiet", ""} {
		l, err := New(mode)
		if err != nil {
			t.Fatalf("New(%q) error: %v", mode, err)
		}
		l.Debug("probe")
	}
	Nop().Error("discarded")
}
