package tarot

import (
	"math/rand"
	"testing"

	"github.com/mlefevre/tarot/pkg/cards"
)

// scriptedPlayer makes deterministic legal choices, with the bid
// configurable per test.
type scriptedPlayer struct {
	bid Contract
}

func (p *scriptedPlayer) Bid(view BidView) Contract {
	if p.bid > view.HighBid {
		return p.bid
	}
	return Pass
}

func (p *scriptedPlayer) CallCard(view DealView, rank cards.Rank) cards.Card {
	for _, s := range []cards.Suit{cards.Spades, cards.Hearts, cards.Diamonds, cards.Clubs} {
		c := cards.Card{Suit: s, Rank: rank}
		if !view.Hand.ContainsCard(c) {
			return c
		}
	}
	return cards.Card{Suit: cards.Spades, Rank: rank}
}

func (p *scriptedPlayer) Discard(view DealView) cards.Cards {
	want := ChienSize(view.NumPlayers)
	discard := view.Hand.Filter(func(c cards.Card) bool {
		return c.IsSuited() && !c.IsKing()
	})
	if len(discard) >= want {
		return discard[:want]
	}
	trumps := view.Hand.FilterTrumps().Filter(func(c cards.Card) bool { return !c.IsBout() })
	return append(discard.Copy(), trumps[:want-len(discard)]...)
}

func (p *scriptedPlayer) Poignee(view DealView) (Poignee, bool) { return Poignee{}, false }
func (p *scriptedPlayer) Chelem(view DealView) bool             { return false }

func (p *scriptedPlayer) Play(view PlayView) cards.Card {
	return view.Legal[0]
}

func seats(numPlayers int, bids ...Contract) []Player {
	players := make([]Player, numPlayers)
	for i := range players {
		players[i] = &scriptedPlayer{}
	}
	for i, b := range bids {
		players[i].(*scriptedPlayer).bid = b
	}
	return players
}

func TestPlayDealScored(t *testing.T) {
	for numPlayers := 3; numPlayers <= 5; numPlayers++ {
		rng := rand.New(rand.NewSource(11))
		players := seats(numPlayers, Prise)
		record, err := PlayDeal(rng, numPlayers, 0, players, nil)
		if err != nil {
			t.Fatalf("%d players: PlayDeal=error(%s)", numPlayers, err)
		}
		if record.Outcome != Scored {
			t.Fatalf("%d players: outcome=%s, want scored", numPlayers, record.Outcome)
		}
		if record.Taker != 0 || record.Contract != Prise {
			t.Errorf("%d players: taker %d %s, want seat 0 prise",
				numPlayers, record.Taker, record.Contract)
		}
		sum := 0
		for _, m := range record.Marks {
			sum += m
		}
		if sum != 0 {
			t.Errorf("%d players: marks %v sum to %d, want 0", numPlayers, record.Marks, sum)
		}
		if record.Score.Threshold != ThresholdForBouts(record.Score.Bouts) {
			t.Errorf("%d players: threshold %d does not match %d bouts",
				numPlayers, record.Score.Threshold, record.Score.Bouts)
		}
		takerWon := record.Marks[record.Taker] > 0
		if takerWon != record.Score.Success {
			t.Errorf("%d players: taker marks %d disagree with success=%v",
				numPlayers, record.Marks[record.Taker], record.Score.Success)
		}
	}
}

// Every card ends up counted: both sides' points cover the full deck.
func TestPlayDealConservesPoints(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	deal, err := DealCards(rng, 4, 0)
	if err != nil {
		t.Fatalf("DealCards=error(%s)", err)
	}
	players := seats(4, Garde)
	bidding, err := RunBidding(4, 0, func(seat int, history []Bid, high Contract) Contract {
		return players[seat].Bid(BidView{Seat: seat, NumPlayers: 4, Hand: deal.Hands[seat], HighBid: high})
	})
	if err != nil || bidding == nil {
		t.Fatalf("RunBidding=(%v, %v), want a taker", bidding, err)
	}
	s := newDealState(deal, bidding)
	s.takeChien()
	if err := s.SetDiscard(players[s.taker].(*scriptedPlayer).Discard(s.dealView(s.taker, nil))); err != nil {
		t.Fatalf("SetDiscard=error(%s)", err)
	}
	for s.trickCount < TricksPerDeal(4) {
		seat := s.CurrentSeat()
		if err := s.PlayCard(seat, s.LegalPlays(seat)[0]); err != nil {
			t.Fatalf("PlayCard=error(%s)", err)
		}
	}
	score := s.scoreDeal()
	attackHalves := s.attackPile.HalfPoints() + s.discard.HalfPoints()
	defenseHalves := s.defensePile.HalfPoints()
	if attackHalves+defenseHalves != 182 {
		t.Errorf("piles hold %d half-points, want 182", attackHalves+defenseHalves)
	}
	if score.TakerHalfPoints != attackHalves {
		t.Errorf("TakerHalfPoints=%d, want %d", score.TakerHalfPoints, attackHalves)
	}
}

func TestPlayDealAllPass(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	record, err := PlayDeal(rng, 4, 1, seats(4), nil)
	if err != nil {
		t.Fatalf("PlayDeal=error(%s)", err)
	}
	if record.Outcome != AllPassed {
		t.Errorf("outcome=%s, want all passed", record.Outcome)
	}
	for seat, m := range record.Marks {
		if m != 0 {
			t.Errorf("marks[%d]=%d after all passed, want 0", seat, m)
		}
	}
}

func TestPlayDealPetitSec(t *testing.T) {
	deck := cards.MakeDeck()
	hand := cards.Cards{cards.T1}
	rest := deck.Remove(cards.T1).Remove(cards.Excuse)
	plain := rest.Filter(func(c cards.Card) bool { return c.IsSuited() })
	hand = append(hand, plain[:17]...)
	deal := &Deal{
		NumPlayers: 4,
		Dealer:     2,
		Hands:      []cards.Cards{hand, {cards.Excuse}, {cards.T2}, {cards.T3}},
	}
	record, err := playDealt(deal, seats(4, Prise), nil)
	if err != nil {
		t.Fatalf("playDealt=error(%s)", err)
	}
	if record.Outcome != Misdeal {
		t.Errorf("outcome=%s, want misdeal", record.Outcome)
	}
	if record.Dealer != 2 {
		t.Errorf("record dealer=%d, want 2", record.Dealer)
	}
}
