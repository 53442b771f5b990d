package tarot

import (
	"fmt"

	"github.com/mlefevre/tarot/pkg/cards"
)

// Fatal deal errors are caller-contract violations: a decision source
// returned something outside the engine-computed legal set. The engine
// never substitutes a legal default and never retries; the deal is
// aborted and the error carries enough context to diagnose the source.

// IllegalBidError reports a bid that is neither a pass nor strictly
// above the current high bid.
type IllegalBidError struct {
	Seat    int
	Bid     Contract
	HighBid Contract
}

func (e *IllegalBidError) Error() string {
	if e.HighBid == Pass {
		return fmt.Sprintf("seat %d bid %s: not a valid contract", e.Seat, e.Bid)
	}
	return fmt.Sprintf("seat %d bid %s: must exceed %s or pass", e.Seat, e.Bid, e.HighBid)
}

// IllegalMoveError reports a played card that is not in the seat's hand
// or not in the legal-move set.
type IllegalMoveError struct {
	Seat  int
	Card  cards.Card
	Legal cards.Cards
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("seat %d played %s: legal plays are %s", e.Seat, e.Card, e.Legal)
}

// InvalidDiscardError reports an écart that breaks the discard rules.
type InvalidDiscardError struct {
	Seat    int
	Discard cards.Cards
	Reason  string
}

func (e *InvalidDiscardError) Error() string {
	return fmt.Sprintf("seat %d discarded %s: %s", e.Seat, e.Discard, e.Reason)
}

// InvalidAnnouncementError reports a poignée, chelem, or called-card
// announcement outside the valid combinations.
type InvalidAnnouncementError struct {
	Seat   int
	Reason string
}

func (e *InvalidAnnouncementError) Error() string {
	return fmt.Sprintf("seat %d: invalid announcement: %s", e.Seat, e.Reason)
}
