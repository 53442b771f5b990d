package tarot

// Prime values.
const (
	PetitAuBoutBonus = 10 // × contract multiplier

	ChelemAnnounced    = 400
	ChelemNotAnnounced = 200
	ChelemFailed       = -200
	ChelemDefense      = 200 // credited to each defender via the deal score
)

// ThresholdForBouts is the minimum point count the taker must reach,
// by the number of bouts in the taker's piles.
func ThresholdForBouts(bouts int) int {
	switch bouts {
	case 0:
		return 56
	case 1:
		return 51
	case 2:
		return 41
	case 3:
		return 36
	}
	panic("bout count out of range")
}

// resolveHalfPoints turns a half-point tally into the whole-point total
// used against the threshold. The half point goes to the winning side:
// a taker at or above the threshold rounds up, a taker short of it
// rounds down. With 4 players tallies are always whole and this is
// exact division.
func resolveHalfPoints(halves, threshold int) (points int, success bool) {
	if halves >= 2*threshold {
		return (halves + 1) / 2, true
	}
	return halves / 2, false
}

// baseScore is the deal's undecorated value: (points − threshold + 25)
// × multiplier, negated when the taker falls short. Meeting the
// threshold exactly is a win worth 25 × multiplier.
func baseScore(points, threshold int, contract Contract, success bool) int {
	mult := contract.Multiplier()
	if success {
		return (points - threshold + 25) * mult
	}
	return -((threshold - points) + 25) * mult
}

// DealScore is the signed per-defender value of a completed deal,
// assembled from the base score and the primes.
type DealScore struct {
	TakerHalfPoints int
	TakerPoints     int
	Bouts           int
	Threshold       int
	Success         bool
	Base            int
	PetitAuBout     Side
	Poignee         Poignee
	PoigneeSeat     int
	ChelemPoints    int
	Value           int // base plus primes; positive = taker side won
}

// scoreDeal tallies a finished deal's piles and applies the primes.
func (s *DealState) scoreDeal() DealScore {
	s.finishExcuse()

	attack := s.attackPile.Copy()
	defense := s.defensePile.Copy()
	// The écart counts with the taker; a face-down chien counts with
	// the taker for garde-sans and with the defense for garde-contre.
	attack = append(attack, s.discard...)
	if s.contract == GardeContre {
		defense = append(defense, s.chien...)
	} else {
		attack = append(attack, s.chien...)
	}

	halves := attack.HalfPoints()
	bouts := attack.CountBouts()
	threshold := ThresholdForBouts(bouts)
	points, success := resolveHalfPoints(halves, threshold)
	base := baseScore(points, threshold, s.contract, success)

	score := DealScore{
		TakerHalfPoints: halves,
		TakerPoints:     points,
		Bouts:           bouts,
		Threshold:       threshold,
		Success:         success,
		Base:            base,
		PetitAuBout:     s.petitAuBout,
		Poignee:         s.poignee,
		PoigneeSeat:     s.poigneeSeat,
		Value:           base,
	}

	mult := s.contract.Multiplier()
	switch s.petitAuBout {
	case Attack:
		score.Value += PetitAuBoutBonus * mult
	case Defense:
		score.Value -= PetitAuBoutBonus * mult
	}

	// The poignée bonus goes to whichever side wins the deal, whoever
	// announced it.
	if s.poigneeSeat >= 0 {
		if success {
			score.Value += s.poignee.Points
		} else {
			score.Value -= s.poignee.Points
		}
	}

	total := TricksPerDeal(s.numPlayers)
	switch {
	case s.attackTricks == total:
		if s.chelemAnnouncer >= 0 && s.side(s.chelemAnnouncer) == Attack {
			score.ChelemPoints = ChelemAnnounced
		} else {
			score.ChelemPoints = ChelemNotAnnounced
		}
	case s.defenseTricks == total:
		score.ChelemPoints = -ChelemDefense
	case s.chelemAnnouncer >= 0 && s.side(s.chelemAnnouncer) == Attack:
		score.ChelemPoints = ChelemFailed
	}
	score.Value += score.ChelemPoints

	return score
}

// marks turns the deal value into signed per-seat marks summing to
// zero: each defender scores −value; the attacking share is 2× (3p),
// 3× (4p), 4× (5p alone) for the taker, or split 2:1 between taker and
// partner (5p with a partner).
func (s *DealState) marks(value int) []int {
	ms := make([]int, s.numPlayers)
	for seat := range ms {
		ms[seat] = -value
	}
	switch {
	case s.numPlayers == 3:
		ms[s.taker] = 2 * value
	case s.numPlayers == 4:
		ms[s.taker] = 3 * value
	case s.partner >= 0:
		ms[s.taker] = 2 * value
		ms[s.partner] = value
	default:
		ms[s.taker] = 4 * value
	}
	return ms
}
