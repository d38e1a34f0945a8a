package log

// EventType enumerates all observable game events.
type EventType int

const (
	EventDraw EventType = iota
	EventStrangerAppears
	EventCardPlayed
	EventBattleResult
	EventCardDefeated
	EventCardReturned
	EventNoCardToPlay
	EventStealAttempt
	EventCardStolen
	EventNoCardToSteal
	EventFullRevive
	EventPartialRevive
	EventScoreChange
	EventWinner
)

func (e EventType) String() string {
	switch e {
	case EventDraw:
		return "Draw"
	case EventStrangerAppears:
		return "StrangerAppears"
	case EventCardPlayed:
		return "CardPlayed"
	case EventBattleResult:
		return "BattleResult"
	case EventCardDefeated:
		return "CardDefeated"
	case EventCardReturned:
		return "CardReturned"
	case EventNoCardToPlay:
		return "NoCardToPlay"
	case EventStealAttempt:
		return "StealAttempt"
	case EventCardStolen:
		return "CardStolen"
	case EventNoCardToSteal:
		return "NoCardToSteal"
	case EventFullRevive:
		return "FullRevive"
	case EventPartialRevive:
		return "PartialRevive"
	case EventScoreChange:
		return "ScoreChange"
	case EventWinner:
		return "Winner"
	default:
		return "Unknown"
	}
}

// GameEvent represents a single observable event in a game.
type GameEvent struct {
	Seq     int       // monotonic sequence number
	Command int       // which input command produced this event (1-based)
	Type    EventType // event type
	Card    string    // card name (if applicable)
	Details string    // human-readable detail string
}
