package tarot

import (
	"fmt"

	"github.com/mlefevre/tarot/pkg/cards"
)

// Poignée bonus values.
const (
	PoigneeSimple = 20
	PoigneeDouble = 30
	PoigneeTriple = 40
)

// Poignee is a pre-play announcement of a qualifying trump count.
type Poignee struct {
	Count  int
	Points int
}

// Trump-count thresholds per player count, lowest first.
var poigneeTable = map[int][]Poignee{
	3: {{13, PoigneeSimple}, {15, PoigneeDouble}, {18, PoigneeTriple}},
	4: {{10, PoigneeSimple}, {13, PoigneeDouble}, {15, PoigneeTriple}},
	5: {{8, PoigneeSimple}, {10, PoigneeDouble}, {13, PoigneeTriple}},
}

// PoigneeLevels lists the valid (count, points) pairs for a player
// count, for decision sources checking their hand.
func PoigneeLevels(numPlayers int) []Poignee {
	return poigneeTable[numPlayers]
}

// poigneeTrumps is the trump count used for poignée qualification: the
// Excuse may stand in for a trump when shown.
func poigneeTrumps(hand cards.Cards) int {
	n := hand.CountTrumps()
	if hand.ContainsCard(cards.Excuse) {
		n++
	}
	return n
}

// DeclarePoignee validates and records a poignée announcement before
// the first card is played. The (count, points) pair must be one of
// the fixed combinations for the player count and the hand must
// actually show that many trumps.
func (s *DealState) DeclarePoignee(seat int, p Poignee) error {
	if s.playStarted {
		return &InvalidAnnouncementError{Seat: seat,
			Reason: "poignée must be announced before the first card"}
	}
	if s.poigneeSeat >= 0 {
		return &InvalidAnnouncementError{Seat: seat,
			Reason: "a poignée was already announced this deal"}
	}
	valid := false
	for _, level := range poigneeTable[s.numPlayers] {
		if p == level {
			valid = true
		}
	}
	if !valid {
		return &InvalidAnnouncementError{Seat: seat,
			Reason: fmt.Sprintf("no poignée of %d trumps for %d points with %d players",
				p.Count, p.Points, s.numPlayers)}
	}
	if held := poigneeTrumps(s.hands[seat]); held < p.Count {
		return &InvalidAnnouncementError{Seat: seat,
			Reason: fmt.Sprintf("poignée of %d trumps announced with only %d held", p.Count, held)}
	}
	s.poignee = p
	s.poigneeSeat = seat
	return nil
}

// DeclareChelem records a chelem declaration before play; the
// declaring seat leads the first trick.
func (s *DealState) DeclareChelem(seat int) error {
	if s.playStarted {
		return &InvalidAnnouncementError{Seat: seat,
			Reason: "chelem must be declared before the first card"}
	}
	if seat < 0 || seat >= s.numPlayers {
		return &InvalidAnnouncementError{Seat: seat, Reason: "no such seat"}
	}
	s.chelemAnnouncer = seat
	s.leader = seat
	return nil
}
