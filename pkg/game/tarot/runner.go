package tarot

import (
	"math/rand"

	"github.com/mlefevre/tarot/pkg/cards"
)

// MatchContext is the cross-deal information a decision source may use.
type MatchContext struct {
	Standings      []int // cumulative marks per seat
	DealsRemaining int
}

// BidView is what a seat sees when asked to bid.
type BidView struct {
	Seat       int
	NumPlayers int
	Dealer     int
	Hand       cards.Cards
	History    []Bid
	HighBid    Contract
	Match      *MatchContext
}

// DealView is what a seat sees between bidding and trick play.
type DealView struct {
	Seat        int
	NumPlayers  int
	Dealer      int
	Taker       int
	Contract    Contract
	Hand        cards.Cards
	CalledCard  cards.Card
	ShownTrumps cards.Cards
	Match       *MatchContext
}

func (v DealView) IsTaker() bool { return v.Seat == v.Taker }

// PlayView is what a seat sees when asked for a card. Legal is the
// engine-computed legal set; anything outside it aborts the deal.
type PlayView struct {
	DealView
	Partner    int // -1 until the called card has been seen
	Trick      []Play
	Legal      cards.Cards
	TrickCount int
	History    []CompletedTrick
}

// Player supplies one seat's decisions through the phases of a deal.
// The engine validates every answer and aborts the deal on a violation
// rather than substituting a legal default.
type Player interface {
	// Bid returns a contract strictly above HighBid, or Pass.
	Bid(view BidView) Contract

	// CallCard picks the 5-player taker's called card of the given
	// rank. Only invoked for the taker of a 5-player deal.
	CallCard(view DealView, rank cards.Rank) cards.Card

	// Discard picks the taker's écart from the enlarged hand. Only
	// invoked for prise and garde.
	Discard(view DealView) cards.Cards

	// Poignee offers a poignée announcement; ok=false declines.
	Poignee(view DealView) (p Poignee, ok bool)

	// Chelem reports whether the taker declares a chelem.
	Chelem(view DealView) bool

	// Play returns a card from view.Legal.
	Play(view PlayView) cards.Card
}

func (s *DealState) dealView(seat int, mc *MatchContext) DealView {
	v := DealView{
		Seat:        seat,
		NumPlayers:  s.numPlayers,
		Dealer:      s.dealer,
		Taker:       s.taker,
		Contract:    s.contract,
		Hand:        s.hands[seat].Copy(),
		ShownTrumps: s.shownTrumps.Copy(),
		Match:       mc,
	}
	if s.numPlayers == 5 {
		v.CalledCard = s.calledCard
	}
	return v
}

func (s *DealState) playView(seat int, mc *MatchContext) PlayView {
	return PlayView{
		DealView:   s.dealView(seat, mc),
		Partner:    s.Partner(),
		Trick:      append([]Play(nil), s.trick...),
		Legal:      s.LegalPlays(seat),
		TrickCount: s.trickCount,
		History:    s.history,
	}
}

// PlayDeal runs one complete deal: distribution, Petit sec check,
// bidding, the 5-player call, chien and écart, announcements, the
// trick loop, and scoring. A Petit sec or an all-pass round yields a
// zero-mark record, not an error; errors are decision-source contract
// violations that abort the deal.
func PlayDeal(rng *rand.Rand, numPlayers, dealer int, players []Player, mc *MatchContext) (ScoreRecord, error) {
	deal, err := DealCards(rng, numPlayers, dealer)
	if err != nil {
		return ScoreRecord{}, err
	}
	return playDealt(deal, players, mc)
}

func playDealt(deal *Deal, players []Player, mc *MatchContext) (ScoreRecord, error) {
	numPlayers, dealer := deal.NumPlayers, deal.Dealer

	if _, void := deal.PetitSecSeat(); void {
		return newScoreRecord(numPlayers, dealer, Misdeal), nil
	}

	bidding, err := RunBidding(numPlayers, dealer, func(seat int, history []Bid, high Contract) Contract {
		return players[seat].Bid(BidView{
			Seat:       seat,
			NumPlayers: numPlayers,
			Dealer:     dealer,
			Hand:       deal.Hands[seat].Copy(),
			History:    append([]Bid(nil), history...),
			HighBid:    high,
			Match:      mc,
		})
	})
	if err != nil {
		return ScoreRecord{}, err
	}
	if bidding == nil {
		return newScoreRecord(numPlayers, dealer, AllPassed), nil
	}

	s := newDealState(deal, bidding)

	if numPlayers == 5 {
		rank := requiredCallRank(s.hands[s.taker])
		card := players[s.taker].CallCard(s.dealView(s.taker, mc), rank)
		if err := s.setCalledCard(card); err != nil {
			return ScoreRecord{}, err
		}
	}

	if s.contract.TakesChien() {
		s.takeChien()
		discard := players[s.taker].Discard(s.dealView(s.taker, mc))
		if err := s.SetDiscard(discard); err != nil {
			return ScoreRecord{}, err
		}
	}

	// Announcements, taker first then play order from the taker's
	// left; the first poignée spoken ends the solicitation.
	for i := 0; i < numPlayers; i++ {
		seat := (s.taker + i) % numPlayers
		if p, ok := players[seat].Poignee(s.dealView(seat, mc)); ok {
			if err := s.DeclarePoignee(seat, p); err != nil {
				return ScoreRecord{}, err
			}
			break
		}
	}
	for i := 0; i < numPlayers; i++ {
		seat := (s.taker + i) % numPlayers
		if players[seat].Chelem(s.dealView(seat, mc)) {
			if err := s.DeclareChelem(seat); err != nil {
				return ScoreRecord{}, err
			}
			break
		}
	}

	for s.trickCount < TricksPerDeal(numPlayers) {
		seat := s.CurrentSeat()
		card := players[seat].Play(s.playView(seat, mc))
		if err := s.PlayCard(seat, card); err != nil {
			return ScoreRecord{}, err
		}
	}

	score := s.scoreDeal()
	r := newScoreRecord(numPlayers, dealer, Scored)
	r.Taker = s.taker
	r.Partner = s.partner
	r.Contract = s.contract
	r.Score = score
	r.Marks = s.marks(score.Value)
	return r, nil
}
