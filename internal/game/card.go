// Package game holds the rules of the duel: the card record, the scoreboard,
// the selection priorities, battle and revival arithmetic, and the Manager
// that orchestrates them over the indexes in internal/index.
package game

import "fmt"

// Card is the stat record for a single card. Cards move through the indexes
// by value; no two indexes ever share a card through a pointer, so a mutation
// in one place can never corrupt another index's ordering.
type Card struct {
	Name          string
	BaseAttack    int
	CurrentAttack int
	BaseHealth    int
	CurrentHealth int

	// MissingHealth is the health still required for a full revival. It is
	// only meaningful while the card sits in the revival index.
	MissingHealth int
}

// NewCard creates a card with current stats equal to its base stats.
func NewCard(name string, attack, health int) Card {
	return Card{
		Name:          name,
		BaseAttack:    attack,
		CurrentAttack: attack,
		BaseHealth:    health,
		CurrentHealth: health,
	}
}

func (c Card) String() string {
	return fmt.Sprintf("%s (ATK %d/HP %d)", c.Name, c.CurrentAttack, c.CurrentHealth)
}
