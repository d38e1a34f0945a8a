package game

import "testing"

func deckOf(cards ...Card) *ActiveDeck {
	d := NewActiveDeck()
	for _, c := range cards {
		d.Add(c)
	}
	return d
}

func TestBestCardEmptyDeck(t *testing.T) {
	if _, ok := BestCard(NewActiveDeck(), 3, 3); ok {
		t.Fatal("empty deck reported a best card")
	}
}

func TestBestCardKillingSurvivor(t *testing.T) {
	deck := deckOf(
		NewCard("overkill", 9, 8),
		NewCard("exact", 6, 8),   // lowest attack that still kills
		NewCard("fragile", 6, 4), // kills but dies to the hit
		NewCard("weak", 3, 9),
	)

	// Stranger: attack 5, health 6. "exact" kills with the least attack and
	// outlives the hit with the least health.
	c, ok := BestCard(deck, 5, 6)
	if !ok || c.Name != "exact" {
		t.Fatalf("BestCard = %v ok=%v, want exact", c, ok)
	}
	if p := PriorityOf(c, 5, 6); p != 1 {
		t.Errorf("priority = %d, want 1", p)
	}
}

func TestBestCardKillerTiesPreferLowestSurvivingHealth(t *testing.T) {
	deck := deckOf(
		NewCard("tank", 6, 20),
		NewCard("lean", 6, 7),
	)

	// Both kill at attack 6 and both survive a hit of 5; the leaner one wins.
	c, ok := BestCard(deck, 5, 6)
	if !ok || c.Name != "lean" {
		t.Fatalf("BestCard = %v ok=%v, want lean", c, ok)
	}
}

func TestBestCardFallsBackToSurvivorClass(t *testing.T) {
	deck := deckOf(
		NewCard("glass", 9, 2), // can kill, dies to the hit
		NewCard("wall", 2, 15), // survives, cannot kill
	)

	// Attack 4, health 8: the deck can kill and can survive, but no single
	// card does both, so the search drops to the strongest survivor.
	c, ok := BestCard(deck, 4, 8)
	if !ok || c.Name != "wall" {
		t.Fatalf("BestCard = %v ok=%v, want wall", c, ok)
	}
	if p := PriorityOf(c, 4, 8); p != 2 {
		t.Errorf("priority = %d, want 2", p)
	}
}

func TestBestCardStrongestSurvivor(t *testing.T) {
	deck := deckOf(
		NewCard("alpha", 5, 10),
		NewCard("beta", 8, 3),
	)

	// Attack 6, health 9: nobody kills. beta's subtree has no health above 6,
	// so the walk steps down to alpha.
	c, ok := BestCard(deck, 6, 9)
	if !ok || c.Name != "alpha" {
		t.Fatalf("BestCard = %v ok=%v, want alpha", c, ok)
	}
	if p := PriorityOf(c, 6, 9); p != 2 {
		t.Errorf("priority = %d, want 2", p)
	}
}

func TestBestCardSacrificialKiller(t *testing.T) {
	deck := deckOf(
		NewCard("bomb", 10, 2),
		NewCard("bigbomb", 12, 1),
		NewCard("dud", 4, 3),
	)

	// Attack 20, health 9: nothing survives, but the deck can kill. Lowest
	// killing attack is 10; its weakest card goes.
	c, ok := BestCard(deck, 20, 9)
	if !ok || c.Name != "bomb" {
		t.Fatalf("BestCard = %v ok=%v, want bomb", c, ok)
	}
	if p := PriorityOf(c, 20, 9); p != 3 {
		t.Errorf("priority = %d, want 3", p)
	}
}

func TestBestCardHopelessThrowaway(t *testing.T) {
	deck := deckOf(
		NewCard("last", 3, 2),
		NewCard("stand", 3, 6),
		NewCard("feeble", 1, 9),
	)

	// Attack 20, health 9: nothing survives and nothing kills. Highest attack
	// below 9 is 3; its weakest card is sacrificed.
	c, ok := BestCard(deck, 20, 9)
	if !ok || c.Name != "last" {
		t.Fatalf("BestCard = %v ok=%v, want last", c, ok)
	}
	if p := PriorityOf(c, 20, 9); p != 4 {
		t.Errorf("priority = %d, want 4", p)
	}
}

func TestStealTarget(t *testing.T) {
	deck := deckOf(
		NewCard("small", 4, 4),
		NewCard("prize", 6, 2),
	)

	// Thresholds strictly below both of prize's stats.
	c, ok := StealTarget(deck, 5, 1)
	if !ok || c.Name != "prize" {
		t.Fatalf("StealTarget = %v ok=%v, want prize", c, ok)
	}
}

func TestStealTargetAdvancesPastPoorSubtrees(t *testing.T) {
	deck := deckOf(
		NewCard("decoy", 5, 2), // attack qualifies, health does not
		NewCard("real", 7, 6),
	)

	c, ok := StealTarget(deck, 4, 3)
	if !ok || c.Name != "real" {
		t.Fatalf("StealTarget = %v ok=%v, want real", c, ok)
	}
}

func TestStealTargetStrictThresholds(t *testing.T) {
	deck := deckOf(NewCard("edge", 5, 5))

	// Equal is not enough on either axis.
	if _, ok := StealTarget(deck, 5, 1); ok {
		t.Error("steal matched a card with attack equal to the threshold")
	}
	if _, ok := StealTarget(deck, 1, 5); ok {
		t.Error("steal matched a card with health equal to the threshold")
	}
	if c, ok := StealTarget(deck, 4, 4); !ok || c.Name != "edge" {
		t.Errorf("StealTarget(4,4) = %v ok=%v, want edge", c, ok)
	}
}

func TestStealTargetNoJointQualifier(t *testing.T) {
	// One card clears the attack bar, another the health bar, none both.
	deck := deckOf(
		NewCard("sharp", 9, 2),
		NewCard("tough", 2, 9),
	)
	if _, ok := StealTarget(deck, 5, 5); ok {
		t.Fatal("steal should fail when no single card clears both thresholds")
	}
}
