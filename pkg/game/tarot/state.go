package tarot

import (
	"github.com/mlefevre/tarot/pkg/cards"
)

// Side of a deal: the taker (plus partner in 5-player) or the defense.
type Side int8

const (
	NoSide Side = iota
	Attack
	Defense
)

func (s Side) String() string {
	switch s {
	case NoSide:
		return "none"
	case Attack:
		return "attack"
	case Defense:
		return "defense"
	}
	panic("Unknown Side")
}

// CompletedTrick records one resolved trick.
type CompletedTrick struct {
	Plays  []Play
	Winner int
}

// DealState is the mutable state of one deal between the end of
// bidding and scoring. Distinct deals share nothing mutable, so any
// number of deals may run in parallel, one goroutine each.
type DealState struct {
	numPlayers int
	dealer     int
	taker      int
	contract   Contract

	// 5-player call. partner is -1 when the taker plays alone or for
	// 3/4 players. partnerKnown flips when the called card hits the
	// table (immediately for a self-call or a chien call).
	calledCard   cards.Card
	partner      int
	partnerKnown bool

	hands []cards.Cards
	chien cards.Cards // face-down chien (garde-sans/garde-contre)

	// Écart: freely revisable until the first card is played.
	discard     cards.Cards
	shownTrumps cards.Cards // trumps in the écart, shown to the defense
	playStarted bool

	leader     int
	trick      []Play
	trickCount int
	history    []CompletedTrick

	attackPile    cards.Cards
	defensePile   cards.Cards
	attackTricks  int
	defenseTricks int

	// Excuse custody: the Excuse stays with its owner's side. If that
	// side has no trick yet it is held pending; once banked, a non-bout
	// card is owed to the other side, settled at the first opportunity.
	excusePending Side // side holding the Excuse visibly pending
	excuseOwed    Side // side owing a compensation card

	petitAuBout Side // side that won the Petit in the last trick

	poignee     Poignee
	poigneeSeat int // -1 when no poignée was announced

	chelemAnnouncer int // -1 when no chelem was declared
}

func newDealState(deal *Deal, bidding *BidResult) *DealState {
	hands := make([]cards.Cards, deal.NumPlayers)
	for i, h := range deal.Hands {
		hands[i] = h.Copy()
	}
	return &DealState{
		numPlayers:      deal.NumPlayers,
		dealer:          deal.Dealer,
		taker:           bidding.Taker,
		contract:        bidding.Contract,
		partner:         -1,
		hands:           hands,
		chien:           deal.Chien.Copy(),
		leader:          FirstToBid(deal.NumPlayers, deal.Dealer),
		poigneeSeat:     -1,
		chelemAnnouncer: -1,
	}
}

func (s *DealState) NumPlayers() int           { return s.numPlayers }
func (s *DealState) Dealer() int               { return s.dealer }
func (s *DealState) Taker() int                { return s.taker }
func (s *DealState) Contract() Contract        { return s.contract }
func (s *DealState) TrickCount() int           { return s.trickCount }
func (s *DealState) CurrentTrick() []Play      { return s.trick }
func (s *DealState) Hand(seat int) cards.Cards { return s.hands[seat] }

// Partner returns the taker's partner seat once the called card has
// been seen on the table, else -1.
func (s *DealState) Partner() int {
	if s.partnerKnown {
		return s.partner
	}
	return -1
}

// CurrentSeat is the seat to act in the current trick.
func (s *DealState) CurrentSeat() int {
	return (s.leader + len(s.trick)) % s.numPlayers
}

// side is the seat's camp. The engine resolves the 5-player partner
// internally at call time; partnerKnown only gates what views expose.
func (s *DealState) side(seat int) Side {
	if seat == s.taker || (s.partner >= 0 && seat == s.partner) {
		return Attack
	}
	return Defense
}

func (s *DealState) pile(side Side) *cards.Cards {
	if side == Attack {
		return &s.attackPile
	}
	return &s.defensePile
}

func (s *DealState) tricksWon(side Side) int {
	if side == Attack {
		return s.attackTricks
	}
	return s.defenseTricks
}

// LegalPlays is the legal-move set for the seat given the trick so far.
func (s *DealState) LegalPlays(seat int) cards.Cards {
	return LegalPlays(s.hands[seat], s.trick)
}

// PlayCard plays a card for the seat to act. A card outside the hand
// or the legal set aborts the deal with an IllegalMoveError.
func (s *DealState) PlayCard(seat int, card cards.Card) error {
	legal := s.LegalPlays(seat)
	if seat != s.CurrentSeat() || !s.hands[seat].ContainsCard(card) || !legal.ContainsCard(card) {
		return &IllegalMoveError{Seat: seat, Card: card, Legal: legal}
	}
	s.playStarted = true
	if card == s.calledCard {
		s.partnerKnown = true
	}
	s.hands[seat] = s.hands[seat].Remove(card)
	s.trick = append(s.trick, Play{Seat: seat, Card: card})
	if len(s.trick) == s.numPlayers {
		s.resolveTrick()
	}
	return nil
}

func (s *DealState) resolveTrick() {
	trick := s.trick
	winner := trick[trickWinner(trick)].Seat

	// Chelem exception: the Excuse led by the sweeping side in the
	// final trick wins it. Everywhere else the Excuse never wins.
	if excuser, ok := s.excusePlayer(trick); ok && s.isChelemFinalTrickExcuse(excuser) {
		winner = excuser
	}

	winSide := s.side(winner)

	s.trickCount++
	if winSide == Attack {
		s.attackTricks++
	} else {
		s.defenseTricks++
	}

	// The trick's cards go to the winner's side, except the Excuse,
	// which stays with its owner's side.
	for _, p := range trick {
		if p.Card.IsExcuse() {
			continue
		}
		*s.pile(winSide) = append(*s.pile(winSide), p.Card)
	}

	if excuser, ok := s.excusePlayer(trick); ok {
		if side := s.side(excuser); side == winSide {
			// The Excuse's own side took the trick: it lands in the
			// pile it would anyway, with nothing owed.
			*s.pile(side) = append(*s.pile(side), cards.Excuse)
		} else {
			s.bankExcuse(side)
		}
	} else if s.excusePending != NoSide && winSide == s.excusePending {
		pend := s.excusePending
		s.excusePending = NoSide
		s.bankExcuse(pend)
	}
	s.settleOwedCompensation()

	// Petit au Bout: the Petit won in the literal last trick.
	if s.trickCount == TricksPerDeal(s.numPlayers) {
		for _, p := range trick {
			if p.Card.IsPetit() {
				s.petitAuBout = winSide
			}
		}
	}

	s.history = append(s.history, CompletedTrick{Plays: trick, Winner: winner})
	s.trick = nil
	s.leader = winner
}

func (s *DealState) excusePlayer(trick []Play) (int, bool) {
	for _, p := range trick {
		if p.Card.IsExcuse() {
			return p.Seat, true
		}
	}
	return 0, false
}

// isChelemFinalTrickExcuse checks the one case where the Excuse wins:
// its side declared a chelem, has taken every trick so far, and this is
// the deal's final trick with the Excuse led.
func (s *DealState) isChelemFinalTrickExcuse(excuser int) bool {
	if s.chelemAnnouncer < 0 {
		return false
	}
	side := s.side(excuser)
	if s.side(s.chelemAnnouncer) != side {
		return false
	}
	if s.trickCount != TricksPerDeal(s.numPlayers)-1 {
		return false
	}
	if s.tricksWon(side) != s.trickCount {
		return false
	}
	return len(s.trick) > 0 && s.trick[0].Card.IsExcuse() && s.trick[0].Seat == excuser
}

// bankExcuse places the Excuse in its side's pile if that side already
// won a trick, scheduling the compensation card; otherwise the Excuse
// stays visibly pending.
func (s *DealState) bankExcuse(side Side) {
	if s.tricksWon(side) == 0 {
		s.excusePending = side
		return
	}
	*s.pile(side) = append(*s.pile(side), cards.Excuse)
	s.excuseOwed = side
}

// settleOwedCompensation transfers a non-bout card from the side that
// banked the Excuse to the other side, as soon as one is available.
func (s *DealState) settleOwedCompensation() {
	if s.excuseOwed == NoSide {
		return
	}
	from := s.pile(s.excuseOwed)
	low := from.Filter(func(c cards.Card) bool { return !c.IsBout() })
	if len(low) == 0 {
		return
	}
	comp := low.LowestCounting()
	*from = from.Remove(comp)
	other := Attack
	if s.excuseOwed == Attack {
		other = Defense
	}
	*s.pile(other) = append(*s.pile(other), comp)
	s.excuseOwed = NoSide
}

// finishExcuse resolves a still-pending Excuse at the end of play: the
// side never won a trick, so it keeps the Excuse without compensation.
func (s *DealState) finishExcuse() {
	if s.excusePending == NoSide {
		return
	}
	*s.pile(s.excusePending) = append(*s.pile(s.excusePending), cards.Excuse)
	s.excusePending = NoSide
}
