package player

import (
	"math/rand"

	"github.com/mlefevre/tarot/pkg/cards"
	"github.com/mlefevre/tarot/pkg/game/tarot"
)

// Makes every choice at random from the legal options.

func NewRandomPlayer(rng *rand.Rand) tarot.Player {
	return &randomPlayer{rng: rng}
}

type randomPlayer struct {
	rng *rand.Rand
}

func (p *randomPlayer) Bid(view tarot.BidView) tarot.Contract {
	// Mostly pass; otherwise the cheapest contract still available.
	if p.rng.Intn(6) > 0 {
		return tarot.Pass
	}
	for _, c := range tarot.Contracts {
		if c > view.HighBid {
			return c
		}
	}
	return tarot.Pass
}

func (p *randomPlayer) CallCard(view tarot.DealView, rank cards.Rank) cards.Card {
	suits := []cards.Suit{cards.Spades, cards.Hearts, cards.Diamonds, cards.Clubs}
	return cards.Card{Suit: suits[p.rng.Intn(len(suits))], Rank: rank}
}

func (p *randomPlayer) Discard(view tarot.DealView) cards.Cards {
	want := tarot.ChienSize(view.NumPlayers)
	plain := view.Hand.Filter(func(c cards.Card) bool {
		return c.IsSuited() && !c.IsKing()
	})
	plain.Shuffle(p.rng)
	if len(plain) >= want {
		return plain[:want]
	}
	// Not enough plain cards: pad with random non-bout trumps.
	discard := plain.Copy()
	trumps := view.Hand.FilterTrumps().Filter(func(c cards.Card) bool { return !c.IsBout() })
	trumps.Shuffle(p.rng)
	return append(discard, trumps[:want-len(discard)]...)
}

func (p *randomPlayer) Poignee(view tarot.DealView) (tarot.Poignee, bool) {
	return tarot.Poignee{}, false
}

func (p *randomPlayer) Chelem(view tarot.DealView) bool {
	return false
}

func (p *randomPlayer) Play(view tarot.PlayView) cards.Card {
	legal := view.Legal
	return legal[p.rng.Intn(len(legal))]
}
