package tarot

import (
	"fmt"
	"math/rand"

	"github.com/mlefevre/tarot/pkg/cards"
)

// Fixed distribution parameters per player count.
// 3 players: hands of 24 dealt 4 by 4, chien of 6.
// 4 players: hands of 18 dealt 3 by 3, chien of 6.
// 5 players: hands of 15 dealt 3 by 3, chien of 3.
func HandSize(numPlayers int) int {
	switch numPlayers {
	case 3:
		return 24
	case 4:
		return 18
	case 5:
		return 15
	}
	return 0
}

func ChienSize(numPlayers int) int {
	if numPlayers == 5 {
		return 3
	}
	return 6
}

func batchSize(numPlayers int) int {
	if numPlayers == 3 {
		return 4
	}
	return 3
}

// TricksPerDeal is the number of tricks in a complete deal.
func TricksPerDeal(numPlayers int) int {
	return (78 - ChienSize(numPlayers)) / numPlayers
}

// Pack positions that go to the chien, spread between player batches.
// All positions sit strictly inside the pack: the first and last card
// of the shuffled pack may never go to the chien.
var chienSlots = map[int][]int{
	3: {10, 22, 34, 46, 58, 70},
	4: {11, 23, 35, 47, 59, 71},
	5: {13, 39, 65},
}

// Deal is the outcome of one distribution: a hand per seat plus the
// chien. Seats are numbered 0..numPlayers-1 in play order.
type Deal struct {
	NumPlayers int
	Dealer     int
	Hands      []cards.Cards
	Chien      cards.Cards
}

// DealCards shuffles a fresh pack with the caller's seeded source and
// distributes it: fixed-size batches to each seat in turn, starting at
// the seat to the dealer's right, with the chien drawn from its fixed
// interior slots.
func DealCards(rng *rand.Rand, numPlayers, dealer int) (*Deal, error) {
	if numPlayers < 3 || numPlayers > 5 {
		return nil, fmt.Errorf("unsupported player count %d", numPlayers)
	}
	if dealer < 0 || dealer >= numPlayers {
		return nil, fmt.Errorf("dealer seat %d out of range", dealer)
	}
	pack := cards.MakeDeck()
	pack.Shuffle(rng)
	return dealPack(pack, numPlayers, dealer)
}

func dealPack(pack cards.Cards, numPlayers, dealer int) (*Deal, error) {
	if len(pack) != 78 {
		return nil, fmt.Errorf("pack has %d cards, want 78", len(pack))
	}
	chienSet := make(map[int]bool)
	for _, i := range chienSlots[numPlayers] {
		chienSet[i] = true
	}
	batch := batchSize(numPlayers)

	d := &Deal{
		NumPlayers: numPlayers,
		Dealer:     dealer,
		Hands:      make([]cards.Cards, numPlayers),
		Chien:      make(cards.Cards, 0, ChienSize(numPlayers)),
	}
	dealt := 0
	for i, c := range pack {
		if chienSet[i] {
			d.Chien = append(d.Chien, c)
			continue
		}
		// First batch goes to the seat at the dealer's right.
		seat := (dealer + 1 + dealt/batch) % numPlayers
		d.Hands[seat] = append(d.Hands[seat], c)
		dealt++
	}
	for seat, h := range d.Hands {
		if len(h) != HandSize(numPlayers) {
			return nil, fmt.Errorf("seat %d has %d cards, want %d", seat, len(h), HandSize(numPlayers))
		}
	}
	return d, nil
}

// PetitSec reports whether a hand holds the Petit as its only trump,
// with no Excuse. Such a hand voids the deal.
func PetitSec(hand cards.Cards) bool {
	if hand.ContainsCard(cards.Excuse) {
		return false
	}
	trumps := hand.FilterTrumps()
	return len(trumps) == 1 && trumps[0].IsPetit()
}

// PetitSecSeat finds a seat voiding the deal with a Petit sec, if any.
func (d *Deal) PetitSecSeat() (int, bool) {
	for seat, h := range d.Hands {
		if PetitSec(h) {
			return seat, true
		}
	}
	return 0, false
}

// FirstToBid is the seat to the dealer's right, who speaks first and
// also leads the first trick.
func FirstToBid(numPlayers, dealer int) int {
	return (dealer + 1) % numPlayers
}

// NextDealer rotates the dealer by one seat in play order.
func NextDealer(numPlayers, dealer int) int {
	return (dealer + 1) % numPlayers
}
