package tarot

import (
	"fmt"

	"github.com/mlefevre/tarot/pkg/cards"
)

// takeChien merges the chien into the taker's hand for prise/garde.
// For garde-sans and garde-contre the chien stays face down and is
// credited to a side at scoring time.
func (s *DealState) takeChien() {
	if !s.contract.TakesChien() {
		return
	}
	s.hands[s.taker] = append(s.hands[s.taker], s.chien...)
	s.chien = nil
}

// SetDiscard sets the taker's écart from the enlarged hand. It may be
// called again to revise the écart until the first card of the deal is
// played. Rules: exactly chien-size cards, no King, no bout, and a
// trump only when too few plain cards remain — such trumps are shown
// to the defense.
func (s *DealState) SetDiscard(discard cards.Cards) error {
	if !s.contract.TakesChien() {
		return &InvalidDiscardError{Seat: s.taker, Discard: discard,
			Reason: fmt.Sprintf("no écart under %s", s.contract)}
	}
	if s.playStarted {
		return &InvalidDiscardError{Seat: s.taker, Discard: discard,
			Reason: "écart is locked once play has started"}
	}

	// Restore any previous écart before validating the new one.
	hand := append(s.hands[s.taker].Copy(), s.discard...)

	want := ChienSize(s.numPlayers)
	if len(discard) != want {
		return &InvalidDiscardError{Seat: s.taker, Discard: discard,
			Reason: fmt.Sprintf("écart must hold %d cards, got %d", want, len(discard))}
	}
	remaining := hand.Copy()
	for _, c := range discard {
		if !remaining.ContainsCard(c) {
			return &InvalidDiscardError{Seat: s.taker, Discard: discard,
				Reason: fmt.Sprintf("card %s is not in hand", c)}
		}
		remaining = remaining.Remove(c)
	}

	var trumps cards.Cards
	for _, c := range discard {
		if c.IsKing() {
			return &InvalidDiscardError{Seat: s.taker, Discard: discard,
				Reason: fmt.Sprintf("a King may not be discarded (%s)", c)}
		}
		if c.IsBout() {
			return &InvalidDiscardError{Seat: s.taker, Discard: discard,
				Reason: fmt.Sprintf("a bout may not be discarded (%s)", c)}
		}
		if c.IsTrump() {
			trumps = append(trumps, c)
		}
	}
	if len(trumps) > 0 {
		plain := hand.Count(func(c cards.Card) bool {
			return !c.IsTrump() && !c.IsKing() && !c.IsBout()
		})
		if plain >= want {
			return &InvalidDiscardError{Seat: s.taker, Discard: discard,
				Reason: "trumps may only be discarded when plain cards run out"}
		}
		if len(trumps) > want-plain {
			return &InvalidDiscardError{Seat: s.taker, Discard: discard,
				Reason: "more trumps discarded than the shortfall requires"}
		}
	}

	s.hands[s.taker] = remaining
	s.discard = discard.Copy()
	// Trumps in the écart are shown before being set aside.
	s.shownTrumps = trumps
	return nil
}

// ShownTrumps lists écart trumps the defense is entitled to see.
func (s *DealState) ShownTrumps() cards.Cards {
	return s.shownTrumps
}
