package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/AlperenUlu/nightpass-a-survival-card-game/internal/log"
)

// activeSession is the singleton game session (one per stdio process).
var activeSession *GameSession

// decksFile is the path to the decks YAML file, set by main.
var decksFile string

// SetDecksFile sets the path to the decks YAML file.
func SetDecksFile(path string) {
	decksFile = path
}

// RegisterTools adds all game tools to the MCP server.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(startGameTool(), handleStartGame)
	s.AddTool(drawCardTool(), handleDrawCard)
	s.AddTool(battleTool(), handleBattle)
	s.AddTool(stealCardTool(), handleStealCard)
	s.AddTool(findWinningTool(), handleFindWinning)
	s.AddTool(deckCountTool(), handleDeckCount)
	s.AddTool(discardPileCountTool(), handleDiscardPileCount)
	s.AddTool(eventLogTool(), handleEventLog)
}

// --- Tool definitions ---

func startGameTool() mcp.Tool {
	return mcp.NewTool("start_game",
		mcp.WithDescription("Start a new survival card game. Optionally preloads a named starting deck from the server's decks YAML file."),
		mcp.WithString("deck", mcp.Description("Name of a starting deck to preload (empty for none)")),
	)
}

func drawCardTool() mcp.Tool {
	return mcp.NewTool("draw_card",
		mcp.WithDescription("Add a card with the given name, attack and health to the active deck."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Card name")),
		mcp.WithNumber("attack", mcp.Required(), mcp.Description("Base attack value")),
		mcp.WithNumber("health", mcp.Required(), mcp.Description("Base health value")),
	)
}

func battleTool() mcp.Tool {
	return mcp.NewTool("battle",
		mcp.WithDescription("Fight a Stranger with the given attack and health. The best card is chosen by the four survival/kill priority classes; after the fight the heal budget is spent reviving discarded cards."),
		mcp.WithNumber("attack", mcp.Required(), mcp.Description("The Stranger's attack")),
		mcp.WithNumber("health", mcp.Required(), mcp.Description("The Stranger's health")),
		mcp.WithNumber("heal", mcp.Required(), mcp.Description("Healing points available for revival after the battle")),
	)
}

func stealCardTool() mcp.Tool {
	return mcp.NewTool("steal_card",
		mcp.WithDescription("The Stranger steals the best card whose attack AND health strictly exceed the thresholds, if any."),
		mcp.WithNumber("attack", mcp.Required(), mcp.Description("Attack threshold (strict)")),
		mcp.WithNumber("health", mcp.Required(), mcp.Description("Health threshold (strict)")),
	)
}

func findWinningTool() mcp.Tool {
	return mcp.NewTool("find_winning",
		mcp.WithDescription("Report the side currently in the lead. The Survivor wins ties."),
	)
}

func deckCountTool() mcp.Tool {
	return mcp.NewTool("deck_count",
		mcp.WithDescription("Count the cards in the active deck."),
	)
}

func discardPileCountTool() mcp.Tool {
	return mcp.NewTool("discard_pile_count",
		mcp.WithDescription("Count the cards waiting in the discard pile."),
	)
}

func eventLogTool() mcp.Tool {
	return mcp.NewTool("get_event_log",
		mcp.WithDescription("Return the full event log of the current game as formatted lines, including events already delivered with earlier tool results."),
	)
}

// --- Tool handlers ---

func handleStartGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	deck := request.GetString("deck", "")

	sess, err := NewGameSession(decksFile, deck)
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to start game: %v", err), nil
	}
	activeSession = sess

	return mcp.NewToolResultText(sess.respond("Game started")), nil
}

func handleDrawCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}

	name := request.GetString("name", "")
	if name == "" {
		return mcp.NewToolResultError("name must not be empty"), nil
	}
	att := request.GetInt("attack", 0)
	hp := request.GetInt("health", 0)

	out := sess.mgr.DrawCard(name, att, hp)
	return mcp.NewToolResultText(sess.respond(out)), nil
}

func handleBattle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}

	att := request.GetInt("attack", 0)
	hp := request.GetInt("health", 0)
	heal := request.GetInt("heal", 0)

	out := sess.mgr.Battle(att, hp, heal)
	return mcp.NewToolResultText(sess.respond(out)), nil
}

func handleStealCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}

	att := request.GetInt("attack", 0)
	hp := request.GetInt("health", 0)

	out := sess.mgr.StealCard(att, hp)
	return mcp.NewToolResultText(sess.respond(out)), nil
}

func handleFindWinning(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}
	return mcp.NewToolResultText(sess.respond(sess.mgr.Winner())), nil
}

func handleDeckCount(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}
	return mcp.NewToolResultText(sess.respond(sess.mgr.DeckCount())), nil
}

func handleDiscardPileCount(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}
	return mcp.NewToolResultText(sess.respond(sess.mgr.DiscardCount())), nil
}

func handleEventLog(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}
	return mcp.NewToolResultText(log.FormatAll(sess.logger.Events())), nil
}
