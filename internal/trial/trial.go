// Package trial runs batches of matches to compare player strategies.
package trial

import (
	"math/rand"

	"github.com/mlefevre/tarot/pkg/game/tarot"
)

// Result accumulates outcomes over a batch of matches.
type Result struct {
	Matches int
	Wins    []int // matches in which the seat held the top score
	Marks   []int // cumulative marks per seat over all matches
}

// Run plays numMatches matches of numDeals deals each, with the seats
// built fresh per match by makePlayers from the trial's random source.
func Run(numMatches, numDeals int, seed int64, makePlayers func(rng *rand.Rand) []tarot.Player) (Result, error) {
	rng := rand.New(rand.NewSource(seed))
	var result Result
	for i := 0; i < numMatches; i++ {
		players := makePlayers(rng)
		if result.Wins == nil {
			result.Wins = make([]int, len(players))
			result.Marks = make([]int, len(players))
		}
		match, err := tarot.NewMatch(players, numDeals, rng)
		if err != nil {
			return Result{}, err
		}
		standings, err := match.Run()
		if err != nil {
			return Result{}, err
		}
		for seat, marks := range standings {
			result.Marks[seat] += marks
		}
		for _, seat := range match.Winners() {
			result.Wins[seat]++
		}
		result.Matches++
	}
	return result, nil
}
