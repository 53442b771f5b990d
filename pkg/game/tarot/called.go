package tarot

import (
	"fmt"

	"github.com/mlefevre/tarot/pkg/cards"
)

// requiredCallRank is the rank the 5-player taker must call: a King,
// or a Queen when the taker holds all four Kings, and so on down.
func requiredCallRank(hand cards.Cards) cards.Rank {
	for r := cards.King; r > cards.Ace; r-- {
		rank := r
		held := hand.Count(func(c cards.Card) bool { return c.IsSuited() && c.Rank == rank })
		if held < 4 {
			return r
		}
	}
	return cards.Ace
}

// setCalledCard validates the taker's call and resolves the partner
// seat internally. Calling a card from the taker's own hand, or a card
// lying in the chien, leaves the taker alone against four. The partner
// is not exposed to decision sources until the called card is played.
func (s *DealState) setCalledCard(card cards.Card) error {
	if s.numPlayers != 5 {
		return &InvalidAnnouncementError{Seat: s.taker,
			Reason: "calling a card is a 5-player mechanism"}
	}
	want := requiredCallRank(s.hands[s.taker])
	if !card.IsSuited() || card.Rank != want {
		return &InvalidAnnouncementError{Seat: s.taker,
			Reason: fmt.Sprintf("must call a card of rank %s, got %s", want, card)}
	}
	s.calledCard = card

	for seat, h := range s.hands {
		if seat == s.taker {
			continue
		}
		if h.ContainsCard(card) {
			s.partner = seat
			return nil
		}
	}
	// Own hand or chien: the taker plays alone, and everyone may know.
	s.partner = -1
	s.partnerKnown = true
	return nil
}

// CalledCard returns the called card of a 5-player deal, or the zero
// Card otherwise.
func (s *DealState) CalledCard() cards.Card {
	return s.calledCard
}
