package game

// Attack decay applied when a card comes back from the discard pile. Integer
// truncation of the product is load-bearing: repeated partial revivals grind
// a card's base attack down faster than the ratios alone suggest.
const (
	fullReviveDecay    = 0.90
	partialReviveDecay = 0.95
)

// discarded converts a just-defeated card into its revival-index form:
// current health 0, missing health equal to its full base health, current
// attack kept as it was at the moment of defeat.
func discarded(c Card) Card {
	c.CurrentHealth = 0
	c.MissingHealth = c.BaseHealth
	return c
}

// applyHeal spends heal points on one card pulled from the revival index.
// A full revival zeroes the missing health and costs a permanent 10% of base
// attack; a partial revival spends everything that is left, shrinks the gap
// and costs 5%. Either way the current attack tracks the decayed base. The
// spent amount is returned so the caller can drain its budget.
func applyHeal(c Card, heal int) (updated Card, spent int, full bool) {
	if heal >= c.MissingHealth {
		spent = c.MissingHealth
		c.MissingHealth = 0
		c.BaseAttack = int(float64(c.BaseAttack) * fullReviveDecay)
		c.CurrentAttack = c.BaseAttack
		c.CurrentHealth = c.BaseHealth
		return c, spent, true
	}

	c.MissingHealth -= heal
	c.BaseAttack = int(float64(c.BaseAttack) * partialReviveDecay)
	c.CurrentAttack = c.BaseAttack
	return c, heal, false
}
