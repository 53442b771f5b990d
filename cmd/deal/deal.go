// Deals one tarot hand and prints the seats and the chien.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/mlefevre/tarot/pkg/game/tarot"
)

var (
	numPlayers = flag.Int("players", 4, "Number of players (3, 4, or 5)")
	dealer     = flag.Int("dealer", 0, "Dealer seat")
	seed       = flag.Int64("seed", 0, "Shuffle seed, 0 for time-based")
)

func main() {
	flag.Parse()
	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(s))
	deal, err := tarot.DealCards(rng, *numPlayers, *dealer)
	if err != nil {
		log.Fatal(err)
	}
	for seat, h := range deal.Hands {
		h.Sort()
		marker := " "
		if seat == deal.Dealer {
			marker = "*"
		}
		fmt.Printf("%sseat %d: %s\n", marker, seat, h.HandString())
	}
	deal.Chien.Sort()
	fmt.Printf(" chien : %s\n", deal.Chien.HandString())
	if seat, void := deal.PetitSecSeat(); void {
		fmt.Printf("petit sec at seat %d: deal is void\n", seat)
	}
}
