package log

import (
	"strings"
	"testing"
)

func TestMemoryLoggerSequencesEvents(t *testing.T) {
	l := NewMemoryLogger()
	l.Log(NewDrawEvent(1, "Scout", 2, 3))
	l.Log(NewDrawEvent(2, "Champion", 8, 10))
	l.Log(NewStrangerAppearsEvent(3, 5, 6, 0))

	events := l.Events()
	if len(events) != 3 {
		t.Fatalf("logged %d events, want 3", len(events))
	}
	for i, e := range events {
		if e.Seq != i+1 {
			t.Errorf("event %d has Seq %d", i, e.Seq)
		}
	}

	draws := l.EventsOfType(EventDraw)
	if len(draws) != 2 || draws[1].Card != "Champion" {
		t.Fatalf("draw events = %+v", draws)
	}

	if e := l.LastEvent(); e.Type != EventStrangerAppears {
		t.Fatalf("last event = %+v", e)
	}
}

func TestLastEventOnEmptyLogger(t *testing.T) {
	if e := NewMemoryLogger().LastEvent(); e.Type != EventDraw || e.Seq != 0 {
		t.Fatalf("zero event = %+v", e)
	}
}

func TestTextLoggerWritesLines(t *testing.T) {
	var sb strings.Builder
	l := NewTextLogger(&sb)
	l.Log(NewDrawEvent(1, "Scout", 2, 3))
	l.Log(NewCardPlayedEvent(2, "Scout", 4))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("wrote %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "Scout (ATK 2/HP 3) joins the deck") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "C2") {
		t.Errorf("line 1 = %q, want a C2 command prefix", lines[1])
	}

	// The embedded memory log still captures everything.
	if len(l.Events()) != 2 {
		t.Fatalf("memory log has %d events", len(l.Events()))
	}
}

func TestEventTypeStrings(t *testing.T) {
	cases := map[EventType]string{
		EventDraw:        "Draw",
		EventCardStolen:  "CardStolen",
		EventScoreChange: "ScoreChange",
		EventType(99):    "Unknown",
	}
	for typ, want := range cases {
		if got := typ.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", typ, got, want)
		}
	}
}
