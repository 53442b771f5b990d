// Plays a full tarot match between automated players and prints the
// per-deal results and final standings.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/mlefevre/tarot/pkg/game/tarot"
	"github.com/mlefevre/tarot/pkg/game/tarot/player"
)

var (
	numPlayers = flag.Int("players", 4, "Number of players (3, 4, or 5)")
	numDeals   = flag.Int("deals", 12, "Number of counted deals in the match")
	seed       = flag.Int64("seed", 0, "Shuffle seed, 0 for time-based")
	verbose    = flag.Bool("verbose", false, "Print every deal result")
	playerType = "basic"
)

func init() {
	player.AddPlayerFlag(&playerType, "type")
}

func main() {
	flag.Parse()
	if err := runMatch(); err != nil {
		log.Fatal(err)
	}
}

func runMatch() error {
	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(s))

	players := make([]tarot.Player, *numPlayers)
	for i := range players {
		p, err := player.NewPlayerFromFlag(playerType, rng)
		if err != nil {
			return fmt.Errorf("couldn't create player: %v", err)
		}
		players[i] = p
	}

	match, err := tarot.NewMatch(players, *numDeals, rng)
	if err != nil {
		return err
	}
	for !match.Done() {
		record, err := match.PlayNextDeal()
		if err != nil {
			return err
		}
		if *verbose {
			fmt.Println(record)
		}
	}
	fmt.Printf("match %s over %d deals (seed %d)\n", match.Id, *numDeals, s)
	for seat, marks := range match.Standings() {
		fmt.Printf("seat %d: %d\n", seat, marks)
	}
	fmt.Printf("winners: %v\n", match.Winners())
	return nil
}
