package game

import (
	"fmt"

	"github.com/AlperenUlu/nightpass-a-survival-card-game/internal/index"
	"github.com/AlperenUlu/nightpass-a-survival-card-game/internal/log"
)

// Manager orchestrates a whole game: the active deck, the revival pile, the
// scoreboard and the event log. Each public method handles one input command
// and returns the line to be written to the output file.
type Manager struct {
	deck    *ActiveDeck
	revival *index.RevivalIndex[Card]
	score   Scoreboard
	logger  log.EventLogger
	command int
}

// NewManager creates a manager with empty decks. A nil logger falls back to
// an in-memory one.
func NewManager(logger log.EventLogger) *Manager {
	if logger == nil {
		logger = log.NewMemoryLogger()
	}
	return &Manager{
		deck:    NewActiveDeck(),
		revival: index.NewRevivalIndex[Card](),
		logger:  logger,
	}
}

// DrawCard creates a card and adds it to the active deck.
func (m *Manager) DrawCard(name string, att, hp int) string {
	m.command++
	m.deck.Add(NewCard(name, att, hp))
	m.logger.Log(log.NewDrawEvent(m.command, name, att, hp))
	return "Added " + name + " to the deck"
}

// Battle plays the best card against a Stranger with attack att and health
// hp, then spends the heal budget reviving discarded cards.
//
// With no card to play the fight is skipped entirely: the Stranger takes its
// 2 points for the missing defender and the revival pass still runs.
func (m *Manager) Battle(att, hp, heal int) string {
	m.command++
	m.logger.Log(log.NewStrangerAppearsEvent(m.command, att, hp, heal))

	if m.deck.Empty() {
		m.score.AwardStranger(2)
		m.logger.Log(log.NewNoCardToPlayEvent(m.command))
		revived := m.runRevival(heal)
		m.logger.Log(log.NewScoreChangeEvent(m.command, m.score.Survivor(), m.score.Stranger()))
		return fmt.Sprintf("No card to play, %d cards revived", revived)
	}

	best, _ := BestCard(m.deck, att, hp)
	priority := PriorityOf(best, att, hp)

	// The card actually removed is the oldest arrival among full-stat ties.
	played, ok := m.deck.Remove(best)
	if !ok {
		// BestCard only returns cards present in the deck.
		panic(fmt.Sprintf("game: selected card %v not in deck", best))
	}
	m.logger.Log(log.NewCardPlayedEvent(m.command, played.Name, priority))

	result := ResolveBattle(played, att, hp, &m.score)
	m.logger.Log(log.NewBattleResultEvent(m.command, played.Name, result.Card.CurrentHealth, result.StrangerHealth))

	if result.Defeated {
		m.logger.Log(log.NewCardDefeatedEvent(m.command, played.Name))
		dead := discarded(result.Card)
		m.revival.Insert(dead.MissingHealth, dead)
	} else {
		m.deck.Add(result.Card)
		m.logger.Log(log.NewCardReturnedEvent(m.command, played.Name, result.Card.CurrentAttack, result.Card.CurrentHealth))
	}

	revived := m.runRevival(heal)
	m.logger.Log(log.NewScoreChangeEvent(m.command, m.score.Survivor(), m.score.Stranger()))

	if priority <= 2 {
		return fmt.Sprintf("Found with priority %d, Survivor plays %s, the played card returned to deck, %d cards revived",
			priority, played.Name, revived)
	}
	return fmt.Sprintf("Found with priority %d, Survivor plays %s, the played card is discarded, %d cards revived",
		priority, played.Name, revived)
}

// StealCard lets the Stranger take a card whose attack and health both
// strictly exceed the given thresholds.
func (m *Manager) StealCard(att, hp int) string {
	m.command++
	m.logger.Log(log.NewStealAttemptEvent(m.command, att, hp))

	target, ok := StealTarget(m.deck, att, hp)
	if !ok {
		m.logger.Log(log.NewNoCardToStealEvent(m.command))
		return "No card to steal"
	}

	stolen, ok := m.deck.Remove(target)
	if !ok {
		panic(fmt.Sprintf("game: steal target %v not in deck", target))
	}
	m.logger.Log(log.NewCardStolenEvent(m.command, stolen.Name))
	return "The Stranger stole the card: " + stolen.Name
}

// Winner reports the leading side. The Survivor wins ties.
func (m *Manager) Winner() string {
	m.command++
	if m.score.Survivor() >= m.score.Stranger() {
		m.logger.Log(log.NewWinnerEvent(m.command, "The Survivor", m.score.Survivor()))
		return fmt.Sprintf("The Survivor, Score: %d", m.score.Survivor())
	}
	m.logger.Log(log.NewWinnerEvent(m.command, "The Stranger", m.score.Stranger()))
	return fmt.Sprintf("The Stranger, Score: %d", m.score.Stranger())
}

// DeckCount reports the number of active cards.
func (m *Manager) DeckCount() string {
	m.command++
	return fmt.Sprintf("Number of cards in the deck: %d", m.deck.Size())
}

// DiscardCount reports the number of cards waiting in the discard pile.
func (m *Manager) DiscardCount() string {
	m.command++
	return fmt.Sprintf("Number of cards in the discard pile: %d", m.revival.Len())
}

// runRevival spends the heal budget one card at a time until it runs out or
// the discard pile empties. Fully revived cards rejoin the active deck at
// full health; partially healed cards go back into the revival index with
// their reduced gap. Returns the number of full revivals.
func (m *Manager) runRevival(heal int) int {
	revived := 0
	for heal > 0 && !m.revival.Empty() {
		card, _, ok := m.revival.PopBestFor(heal)
		if !ok {
			break
		}
		healed, spent, full := applyHeal(card, heal)
		heal -= spent
		if full {
			m.deck.Add(healed)
			revived++
			m.logger.Log(log.NewFullReviveEvent(m.command, healed.Name, healed.CurrentAttack))
		} else {
			m.revival.Insert(healed.MissingHealth, healed)
			m.logger.Log(log.NewPartialReviveEvent(m.command, healed.Name, healed.MissingHealth))
		}
	}
	return revived
}

// --- Read accessors for the web and MCP surfaces ---

// Scores returns the current (survivor, stranger) scores.
func (m *Manager) Scores() (int, int) {
	return m.score.Survivor(), m.score.Stranger()
}

// DeckSize returns the number of active cards.
func (m *Manager) DeckSize() int {
	return m.deck.Size()
}

// DiscardSize returns the number of cards in the discard pile.
func (m *Manager) DiscardSize() int {
	return m.revival.Len()
}
