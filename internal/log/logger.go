package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for logging game events.
type EventLogger interface {
	Log(event GameEvent)
	Events() []GameEvent
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []GameEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event GameEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []GameEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []GameEvent {
	var result []GameEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() GameEvent {
	if len(l.events) == 0 {
		return GameEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event GameEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- Formatting ---

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e GameEvent) string {
	kind := e.Type.String()
	for len(kind) < 16 {
		kind += " "
	}
	return fmt.Sprintf("C%-3d %s| %s", e.Command, kind, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []GameEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewDrawEvent(command int, name string, att, hp int) GameEvent {
	return GameEvent{
		Command: command,
		Type:    EventDraw,
		Card:    name,
		Details: fmt.Sprintf("%s (ATK %d/HP %d) joins the deck", name, att, hp),
	}
}

func NewStrangerAppearsEvent(command int, att, hp, heal int) GameEvent {
	return GameEvent{
		Command: command,
		Type:    EventStrangerAppears,
		Details: fmt.Sprintf("A Stranger appears (ATK %d/HP %d, heal %d)", att, hp, heal),
	}
}

func NewCardPlayedEvent(command int, name string, priority int) GameEvent {
	return GameEvent{
		Command: command,
		Type:    EventCardPlayed,
		Card:    name,
		Details: fmt.Sprintf("Survivor plays %s (priority %d)", name, priority),
	}
}

func NewBattleResultEvent(command int, name string, cardHP, strangerHP int) GameEvent {
	return GameEvent{
		Command: command,
		Type:    EventBattleResult,
		Card:    name,
		Details: fmt.Sprintf("%s ends at HP %d, the Stranger at HP %d", name, cardHP, strangerHP),
	}
}

func NewCardDefeatedEvent(command int, name string) GameEvent {
	return GameEvent{
		Command: command,
		Type:    EventCardDefeated,
		Card:    name,
		Details: fmt.Sprintf("%s is defeated and discarded", name),
	}
}

func NewCardReturnedEvent(command int, name string, att, hp int) GameEvent {
	return GameEvent{
		Command: command,
		Type:    EventCardReturned,
		Card:    name,
		Details: fmt.Sprintf("%s returns to the deck (ATK %d/HP %d)", name, att, hp),
	}
}

func NewNoCardToPlayEvent(command int) GameEvent {
	return GameEvent{
		Command: command,
		Type:    EventNoCardToPlay,
		Details: "No card to play, the Stranger scores 2",
	}
}

func NewStealAttemptEvent(command int, att, hp int) GameEvent {
	return GameEvent{
		Command: command,
		Type:    EventStealAttempt,
		Details: fmt.Sprintf("The Stranger tries to steal (ATK > %d, HP > %d)", att, hp),
	}
}

func NewCardStolenEvent(command int, name string) GameEvent {
	return GameEvent{
		Command: command,
		Type:    EventCardStolen,
		Card:    name,
		Details: fmt.Sprintf("The Stranger stole %s", name),
	}
}

func NewNoCardToStealEvent(command int) GameEvent {
	return GameEvent{
		Command: command,
		Type:    EventNoCardToSteal,
		Details: "No card to steal",
	}
}

func NewFullReviveEvent(command int, name string, att int) GameEvent {
	return GameEvent{
		Command: command,
		Type:    EventFullRevive,
		Card:    name,
		Details: fmt.Sprintf("%s is fully revived (ATK %d)", name, att),
	}
}

func NewPartialReviveEvent(command int, name string, missing int) GameEvent {
	return GameEvent{
		Command: command,
		Type:    EventPartialRevive,
		Card:    name,
		Details: fmt.Sprintf("%s is partially healed (%d HP still missing)", name, missing),
	}
}

func NewScoreChangeEvent(command int, survivor, stranger int) GameEvent {
	return GameEvent{
		Command: command,
		Type:    EventScoreChange,
		Details: fmt.Sprintf("Score: Survivor %d, Stranger %d", survivor, stranger),
	}
}

func NewWinnerEvent(command int, winner string, score int) GameEvent {
	return GameEvent{
		Command: command,
		Type:    EventWinner,
		Details: fmt.Sprintf("%s leads with score %d", winner, score),
	}
}
