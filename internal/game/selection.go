package game

import (
	"github.com/AlperenUlu/nightpass-a-survival-card-game/internal/index"
)

// Selection walks. Each search descends the attack-ordered battle index to
// the extremal qualifying attack, then searches that node's health subtree;
// when the subtree has no qualifying card, the search advances along the
// in-order chain of attack values and retries.

// BestCard picks the card to play against a Stranger with attack att and
// health hp, by four priority classes:
//
//  1. can survive and can kill: lowest attack >= hp, lowest health > att
//  2. can survive, cannot kill: highest attack < hp, lowest health > att
//  3. cannot survive, can kill: lowest attack >= hp, lowest health
//  4. cannot survive nor kill:  highest attack < hp, lowest health
//
// Within class 1, if no attack value >= hp carries a surviving card, the
// search falls back to class 2 entirely. The second result is false only on
// an empty deck.
func BestCard(deck *ActiveDeck, att, hp int) (Card, bool) {
	bi := deck.BattleIndex()
	if bi.Empty() {
		return Card{}, false
	}

	if deck.CanSurvive(att) {
		if deck.CanKill(hp) {
			if c, ok := lowestKillingSurvivor(bi, att, hp); ok {
				return c, true
			}
			// No single card both kills and survives: class 2.
		}
		return strongestSurvivor(bi, att, hp)
	}

	if deck.CanKill(hp) {
		return weakestOfLowestKiller(bi, hp)
	}
	return weakestOfStrongestNonKiller(bi, hp)
}

// lowestKillingSurvivor: class 1. Ascend the attack chain from the lowest
// attack >= hp, looking for the lowest health that outlives att.
func lowestKillingSurvivor(bi *index.BattleIndex[Card], att, hp int) (Card, bool) {
	cur, ok := bi.LowestPrimaryGE(hp)
	for ok {
		if c, found := cur.MinSecondaryGT(att); found {
			return c, true
		}
		cur, ok = cur.Next()
	}
	return Card{}, false
}

// strongestSurvivor: class 2. Descend the attack chain from the highest
// attack < hp, looking for the lowest health that outlives att.
func strongestSurvivor(bi *index.BattleIndex[Card], att, hp int) (Card, bool) {
	cur, ok := bi.HighestPrimaryLT(hp)
	for ok {
		if c, found := cur.MinSecondaryGT(att); found {
			return c, true
		}
		cur, ok = cur.Prev()
	}
	return Card{}, false
}

// weakestOfLowestKiller: class 3. No card survives anyway, so take the
// absolute minimum health among the cards tied on the lowest killing attack.
func weakestOfLowestKiller(bi *index.BattleIndex[Card], hp int) (Card, bool) {
	cur, ok := bi.LowestPrimaryGE(hp)
	if !ok {
		return Card{}, false
	}
	return cur.MinSecondary()
}

// weakestOfStrongestNonKiller: class 4. Highest attack < hp, absolute
// minimum health.
func weakestOfStrongestNonKiller(bi *index.BattleIndex[Card], hp int) (Card, bool) {
	cur, ok := bi.HighestPrimaryLT(hp)
	if !ok {
		return Card{}, false
	}
	return cur.MinSecondary()
}

// PriorityOf classifies a chosen card against the Stranger's stats, for
// reporting. The classes match BestCard's search order.
func PriorityOf(c Card, att, hp int) int {
	switch {
	case c.CurrentAttack >= hp && c.CurrentHealth > att:
		return 1
	case c.CurrentAttack < hp && c.CurrentHealth > att:
		return 2
	case c.CurrentAttack >= hp:
		return 3
	default:
		return 4
	}
}

// StealTarget finds the card the Stranger steals: the lowest attack strictly
// above att, and among its ties the lowest health strictly above hp,
// advancing along the attack successor chain when a subtree has no
// qualifying card. Both thresholds are strict; no qualifying card means the
// steal fails.
func StealTarget(deck *ActiveDeck, att, hp int) (Card, bool) {
	bi := deck.BattleIndex()
	if bi.Empty() || !deck.AnyAttackAbove(att) || !deck.AnyHealthAbove(hp) {
		return Card{}, false
	}

	cur, ok := bi.LowestPrimaryGT(att)
	for ok {
		if c, found := cur.MinSecondaryGT(hp); found {
			return c, true
		}
		cur, ok = cur.Next()
	}
	return Card{}, false
}
