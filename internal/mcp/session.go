// Package mcp exposes the game as MCP tools over stdio, one tool per input
// command, so an AI client can drive a full session.
package mcp

import (
	"encoding/json"

	"github.com/AlperenUlu/nightpass-a-survival-card-game/internal/game"
	"github.com/AlperenUlu/nightpass-a-survival-card-game/internal/log"
)

// EventView is a game event as presented in tool response JSON.
type EventView struct {
	Seq     int    `json:"seq"`
	Command int    `json:"command"`
	Type    string `json:"type"`
	Card    string `json:"card,omitempty"`
	Details string `json:"details"`
}

// StateView summarizes the game after a command.
type StateView struct {
	SurvivorScore int `json:"survivor_score"`
	StrangerScore int `json:"stranger_score"`
	DeckCount     int `json:"deck_count"`
	DiscardCount  int `json:"discard_count"`
}

// ToolResponse is the JSON envelope returned by all game tools.
type ToolResponse struct {
	Output string      `json:"output"`
	Events []EventView `json:"events"`
	State  StateView   `json:"state"`
}

// GameSession holds the state of a single MCP game session.
type GameSession struct {
	mgr    *game.Manager
	logger *log.MemoryLogger
	sent   int // events already delivered to the client
}

// NewGameSession creates a fresh game, optionally preloading a starting deck
// from the given deck file.
func NewGameSession(decksFile, deckName string) (*GameSession, error) {
	logger := log.NewMemoryLogger()
	sess := &GameSession{
		mgr:    game.NewManager(logger),
		logger: logger,
	}

	if deckName != "" {
		cards, err := game.DeckByName(decksFile, deckName)
		if err != nil {
			return nil, err
		}
		for _, c := range cards {
			sess.mgr.DrawCard(c.Name, c.BaseAttack, c.BaseHealth)
		}
	}
	return sess, nil
}

// drainEvents returns the events logged since the previous drain.
func (s *GameSession) drainEvents() []EventView {
	events := s.logger.Events()
	out := []EventView{}
	for _, e := range events[s.sent:] {
		out = append(out, EventView{
			Seq:     e.Seq,
			Command: e.Command,
			Type:    e.Type.String(),
			Card:    e.Card,
			Details: e.Details,
		})
	}
	s.sent = len(events)
	return out
}

// respond wraps a command's output line together with the new events and the
// state summary.
func (s *GameSession) respond(output string) string {
	survivor, stranger := s.mgr.Scores()
	resp := ToolResponse{
		Output: output,
		Events: s.drainEvents(),
		State: StateView{
			SurvivorScore: survivor,
			StrangerScore: stranger,
			DeckCount:     s.mgr.DeckSize(),
			DiscardCount:  s.mgr.DiscardSize(),
		},
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return `{"output":"internal error"}`
	}
	return string(data)
}
