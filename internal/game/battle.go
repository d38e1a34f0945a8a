package game

// BattleResult is the outcome of one clash between a played card and a
// Stranger.
type BattleResult struct {
	Card             Card // the played card with post-battle stats
	StrangerHealth   int  // the Stranger's health after the clash (may be negative)
	Defeated         bool // the card ended at 0 health
	StrangerDefeated bool
}

// ResolveBattle pits a card against a Stranger with attack att and health
// hp. Both sides lose health simultaneously; the card's health floors at 0
// and its attack degrades in proportion to the health it has left:
// max(1, trunc(baseAttack * currentHealth / baseHealth)).
//
// Scoring: a defeated side awards 2 points to its opponent, and a side that
// took damage but survived scores 1 point for itself.
func ResolveBattle(c Card, att, hp int, score *Scoreboard) BattleResult {
	cardHealth := c.CurrentHealth - att
	strangerHealth := hp - c.CurrentAttack
	if cardHealth < 0 {
		cardHealth = 0
	}

	// Truncation toward zero is deliberate: it drives the long-run stat
	// drift of cards that keep fighting.
	postAttack := int(float64(c.BaseAttack) * float64(cardHealth) / float64(c.BaseHealth))
	if postAttack < 1 {
		postAttack = 1
	}

	if cardHealth <= 0 {
		score.AwardStranger(2)
	}
	if strangerHealth <= 0 {
		score.AwardSurvivor(2)
	}
	if 0 < cardHealth && cardHealth <= c.BaseHealth {
		score.AwardSurvivor(1)
	}
	if 0 < strangerHealth && strangerHealth <= hp {
		score.AwardStranger(1)
	}

	updated := NewCard(c.Name, c.BaseAttack, c.BaseHealth)
	updated.CurrentAttack = postAttack
	updated.CurrentHealth = cardHealth

	return BattleResult{
		Card:             updated,
		StrangerHealth:   strangerHealth,
		Defeated:         cardHealth == 0,
		StrangerDefeated: strangerHealth <= 0,
	}
}
