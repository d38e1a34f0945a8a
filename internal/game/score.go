package game

// Scoreboard tracks the two sides' scores. Both counters only ever grow.
type Scoreboard struct {
	survivor int
	stranger int
}

// AwardSurvivor adds points to the Survivor's score.
func (s *Scoreboard) AwardSurvivor(points int) {
	s.survivor += points
}

// AwardStranger adds points to the Stranger's score.
func (s *Scoreboard) AwardStranger(points int) {
	s.stranger += points
}

// Survivor returns the Survivor's score.
func (s *Scoreboard) Survivor() int {
	return s.survivor
}

// Stranger returns the Stranger's score.
func (s *Scoreboard) Stranger() int {
	return s.stranger
}
