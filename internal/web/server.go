// Package web serves a live game session over HTTP and WebSocket. Each
// /ws connection gets its own session identified by a UUID; command lines
// sent by the client run against that session's game and the resulting
// output line, new events, and state summary are sent back.
package web

import (
	"context"
	"encoding/json"
	stdlog "log"
	"net/http"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/AlperenUlu/nightpass-a-survival-card-game/internal/game"
	"github.com/AlperenUlu/nightpass-a-survival-card-game/internal/log"
	"github.com/AlperenUlu/nightpass-a-survival-card-game/internal/script"
)

// Server is the nightpass web server.
type Server struct {
	decksFile string
	mux       *http.ServeMux
}

// NewServer creates a web server. decksFile may be empty; the load_deck
// message then reports an error instead of preloading cards.
func NewServer(decksFile string) *Server {
	s := &Server{
		decksFile: decksFile,
		mux:       http.NewServeMux(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.mux.HandleFunc("GET /api/decks", s.handleDecks)
	s.mux.HandleFunc("GET /ws", s.handleWebSocket)
}

// handleDecks lists the starting decks available in the deck file.
func (s *Server) handleDecks(w http.ResponseWriter, r *http.Request) {
	decks, err := game.ParseDeckFile(s.decksFile)
	if err != nil {
		http.Error(w, "could not read decks file", http.StatusInternalServerError)
		return
	}

	type deckInfo struct {
		Name  string `json:"name"`
		Cards int    `json:"cards"`
	}
	var out []deckInfo
	for name, cards := range decks {
		out = append(out, deckInfo{Name: name, Cards: len(cards)})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

// session is the per-connection game state.
type session struct {
	id     string
	logger *log.MemoryLogger
	runner *script.Runner
	mgr    *game.Manager
	sent   int // events already delivered to the client
}

func newSession() *session {
	logger := log.NewMemoryLogger()
	mgr := game.NewManager(logger)
	return &session{
		id:     uuid.NewString(),
		logger: logger,
		runner: script.NewRunner(mgr),
		mgr:    mgr,
	}
}

// pendingEvents returns events logged since the last delivery.
func (sess *session) pendingEvents() []EventView {
	events := sess.logger.Events()
	var out []EventView
	for _, e := range events[sess.sent:] {
		out = append(out, EventView{
			Seq:     e.Seq,
			Command: e.Command,
			Type:    e.Type.String(),
			Card:    e.Card,
			Details: e.Details,
		})
	}
	sess.sent = len(events)
	return out
}

func (sess *session) stateView() *StateView {
	survivor, stranger := sess.mgr.Scores()
	return &StateView{
		SurvivorScore: survivor,
		StrangerScore: stranger,
		DeckCount:     sess.mgr.DeckSize(),
		DiscardCount:  sess.mgr.DiscardSize(),
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	wsConn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // Allow connections from any origin
	})
	if err != nil {
		stdlog.Printf("WebSocket accept error: %v", err)
		return
	}
	defer wsConn.CloseNow()

	ctx := r.Context()
	sess := newSession()

	if err := writeMessage(ctx, wsConn, ServerMessage{Type: "hello", Session: sess.id}); err != nil {
		return
	}

	for {
		_, data, err := wsConn.Read(ctx)
		if err != nil {
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			_ = writeMessage(ctx, wsConn, ServerMessage{Type: "error", Error: "bad message"})
			continue
		}

		switch msg.Type {
		case "command":
			line, err := sess.runner.Execute(msg.Line)
			if err != nil {
				_ = writeMessage(ctx, wsConn, ServerMessage{Type: "error", Error: err.Error()})
				continue
			}
			reply := ServerMessage{
				Type:   "result",
				Line:   line,
				Events: sess.pendingEvents(),
				State:  sess.stateView(),
			}
			if err := writeMessage(ctx, wsConn, reply); err != nil {
				return
			}

		case "load_deck":
			cards, err := game.DeckByName(s.decksFile, msg.Deck)
			if err != nil {
				_ = writeMessage(ctx, wsConn, ServerMessage{Type: "error", Error: err.Error()})
				continue
			}
			var last string
			for _, c := range cards {
				last = sess.mgr.DrawCard(c.Name, c.BaseAttack, c.BaseHealth)
			}
			reply := ServerMessage{
				Type:   "result",
				Line:   last,
				Events: sess.pendingEvents(),
				State:  sess.stateView(),
			}
			if err := writeMessage(ctx, wsConn, reply); err != nil {
				return
			}

		default:
			_ = writeMessage(ctx, wsConn, ServerMessage{Type: "error", Error: "unknown message type"})
		}
	}
}

func writeMessage(ctx context.Context, conn *websocket.Conn, msg ServerMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return conn.Write(ctx, websocket.MessageText, data)
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.mux)
}
