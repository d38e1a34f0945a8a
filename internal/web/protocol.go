package web

// Message types for the JSON protocol over the /ws socket. Each connected
// client plays its own game session.

// --- Client → Server messages ---

// ClientMessage is the envelope for all client-to-server messages.
type ClientMessage struct {
	Type string `json:"type"`

	// For "command": a game command line, e.g. "battle 5 10 3".
	Line string `json:"line,omitempty"`

	// For "load_deck": name of a starting deck from the server's deck file.
	Deck string `json:"deck,omitempty"`
}

// --- Server → Client messages ---

// ServerMessage is the envelope for all server-to-client messages.
type ServerMessage struct {
	Type string `json:"type"`

	// For "hello"
	Session string `json:"session,omitempty"`

	// For "result"
	Line   string      `json:"line,omitempty"`
	Events []EventView `json:"events,omitempty"`
	State  *StateView  `json:"state,omitempty"`

	// For "error"
	Error string `json:"error,omitempty"`
}

// EventView is a simplified game event for the client.
type EventView struct {
	Seq     int    `json:"seq"`
	Command int    `json:"command"`
	Type    string `json:"type"`
	Card    string `json:"card,omitempty"`
	Details string `json:"details"`
}

// StateView is a summary of the game after a command.
type StateView struct {
	SurvivorScore int `json:"survivor_score"`
	StrangerScore int `json:"stranger_score"`
	DeckCount     int `json:"deck_count"`
	DiscardCount  int `json:"discard_count"`
}
