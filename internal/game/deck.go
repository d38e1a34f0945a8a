package game

import (
	"github.com/AlperenUlu/nightpass-a-survival-card-game/internal/index"
)

// ActiveDeck is the set of cards available to the Survivor. It keeps two
// views of the same multiset in lockstep: the attack-ordered battle index
// used to pick a card, and the health-ordered survivability index used for
// existence checks. Only paired Add/Remove operations are exposed, so the
// two indexes cannot drift apart.
type ActiveDeck struct {
	battle        *index.BattleIndex[Card]
	survivability *index.SurvivabilityIndex
}

// NewActiveDeck returns an empty deck.
func NewActiveDeck() *ActiveDeck {
	return &ActiveDeck{
		battle:        index.NewBattleIndex[Card](),
		survivability: index.NewSurvivabilityIndex(),
	}
}

// Add files a card into both indexes under its current stats.
func (d *ActiveDeck) Add(c Card) {
	d.battle.Insert(c.CurrentAttack, c.CurrentHealth, c)
	d.survivability.Insert(c.CurrentHealth)
}

// Remove takes out one card with the given card's current attack and health:
// the oldest arrival among cards with identical stats. The returned card is
// the one actually removed, which may differ from the argument in name only.
func (d *ActiveDeck) Remove(c Card) (Card, bool) {
	removed, ok := d.battle.Remove(c.CurrentAttack, c.CurrentHealth)
	if !ok {
		return Card{}, false
	}
	d.survivability.Remove(removed.CurrentHealth)
	return removed, true
}

// Empty reports whether the deck has no cards.
func (d *ActiveDeck) Empty() bool {
	return d.battle.Empty()
}

// Size returns the number of cards in the deck.
func (d *ActiveDeck) Size() int {
	return d.battle.Len()
}

// BattleIndex exposes the attack-ordered index for the selection walks.
func (d *ActiveDeck) BattleIndex() *index.BattleIndex[Card] {
	return d.battle
}

// CanSurvive reports whether any card would outlive a hit of att damage.
func (d *ActiveDeck) CanSurvive(att int) bool {
	return d.survivability.AnyAbove(att)
}

// CanKill reports whether any card's attack reaches hp.
func (d *ActiveDeck) CanKill(hp int) bool {
	max, ok := d.battle.MaxPrimary()
	return ok && max >= hp
}

// AnyAttackAbove reports whether any card's attack strictly exceeds att.
func (d *ActiveDeck) AnyAttackAbove(att int) bool {
	max, ok := d.battle.MaxPrimary()
	return ok && max > att
}

// AnyHealthAbove reports whether any card's health strictly exceeds hp.
func (d *ActiveDeck) AnyHealthAbove(hp int) bool {
	return d.survivability.AnyAbove(hp)
}
