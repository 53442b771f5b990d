package player

import (
	"math/rand"
	"testing"

	"github.com/mlefevre/tarot/pkg/cards"
	"github.com/mlefevre/tarot/pkg/game/tarot"
)

func strongHand() cards.Cards {
	hand := cards.Cards{cards.T21, cards.T1, cards.Excuse,
		cards.Ckh, cards.Ckd, cards.Cqh}
	for r := cards.Rank(10); r <= 19; r++ {
		hand = append(hand, cards.Card{Suit: cards.Trumps, Rank: r})
	}
	hand = append(hand, cards.C2h, cards.C3h)
	return hand
}

func TestBasicBid(t *testing.T) {
	weak := cards.Cards{cards.C2h, cards.C3h, cards.C4h, cards.C5d, cards.C6d,
		cards.C7c, cards.C8c, cards.C9c, cards.Ctc, cards.Cjs, cards.Cns,
		cards.C2d, cards.C3d, cards.C4d, cards.C5c, cards.C6c, cards.C7s, cards.C8s}
	p := NewBasicPlayer()
	if got := p.Bid(tarot.BidView{Hand: weak}); got != tarot.Pass {
		t.Errorf("Bid(weak hand)=%s, want pass", got)
	}
	if got := p.Bid(tarot.BidView{Hand: strongHand()}); got == tarot.Pass {
		t.Errorf("Bid(strong hand)=pass, want a contract")
	}
	// Never undercuts the standing high bid.
	if got := p.Bid(tarot.BidView{Hand: strongHand(), HighBid: tarot.GardeContre}); got != tarot.Pass {
		t.Errorf("Bid(outbid)=%s, want pass", got)
	}
}

func TestBasicCallCard(t *testing.T) {
	p := NewBasicPlayer()
	hand := cards.Cards{cards.Ckh, cards.C2d, cards.C3d, cards.C4d, cards.T5}
	got := p.CallCard(tarot.DealView{Hand: hand}, cards.King)
	if got.Rank != cards.King {
		t.Fatalf("CallCard=%s, want a king", got)
	}
	if got == cards.Ckh {
		t.Errorf("CallCard=%s, want a king outside the hand", got)
	}
	if got != cards.Ckd {
		t.Errorf("CallCard=%s, want kd (longest suit without its king)", got)
	}
}

func TestBasicDiscard(t *testing.T) {
	hand := cards.Cards{cards.Ckh, cards.Cqh, cards.C2h, cards.C3h, cards.C4h,
		cards.C2d, cards.C3d, cards.C2c, cards.C3c, cards.C4c, cards.C5c,
		cards.T1, cards.T21, cards.Excuse, cards.T5, cards.T8, cards.T10,
		cards.C2s, cards.C3s, cards.C4s, cards.C5s, cards.C6s, cards.C7s, cards.C8s}
	p := NewBasicPlayer()
	got := p.Discard(tarot.DealView{NumPlayers: 3, Hand: hand})
	if len(got) != tarot.ChienSize(3) {
		t.Fatalf("Discard has %d cards, want %d", len(got), tarot.ChienSize(3))
	}
	for _, c := range got {
		if c.IsKing() || c.IsBout() || c.IsTrump() {
			t.Errorf("Discard contains %s, want plain non-king cards only", c)
		}
		if !hand.ContainsCard(c) {
			t.Errorf("Discard contains %s, not in hand", c)
		}
	}
}

func TestBasicPoignee(t *testing.T) {
	p := NewBasicPlayer()
	if _, ok := p.Poignee(tarot.DealView{NumPlayers: 4, Hand: cards.Cards{cards.T5, cards.C2h}}); ok {
		t.Errorf("Poignee(two trumps) announced, want declined")
	}
	got, ok := p.Poignee(tarot.DealView{NumPlayers: 4, Hand: strongHand()})
	if !ok {
		t.Fatalf("Poignee(13 trumps) declined, want announced")
	}
	want := tarot.Poignee{Count: 13, Points: tarot.PoigneeDouble}
	if got != want {
		t.Errorf("Poignee=%v, want %v", got, want)
	}
}

func TestPlayersStayLegal(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	views := []tarot.PlayView{
		{
			DealView: tarot.DealView{NumPlayers: 4, Taker: 1, Seat: 0},
			Partner:  -1,
			Trick:    []tarot.Play{{Seat: 3, Card: cards.C7h}},
			Legal:    cards.Cards{cards.C2h, cards.Cqh},
		},
		{
			DealView: tarot.DealView{NumPlayers: 4, Taker: 0, Seat: 0},
			Partner:  -1,
			Legal:    cards.Cards{cards.T5, cards.T10, cards.C2c},
		},
	}
	for _, p := range []tarot.Player{NewBasicPlayer(), NewRandomPlayer(rng)} {
		for i, view := range views {
			got := p.Play(view)
			if !view.Legal.ContainsCard(got) {
				t.Errorf("view %d: Play=%s outside legal set %s", i, got, view.Legal)
			}
		}
	}
}
