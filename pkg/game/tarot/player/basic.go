package player

import (
	"github.com/mlefevre/tarot/pkg/cards"
	"github.com/mlefevre/tarot/pkg/game/tarot"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// BasicPlayer implements simple basic strategy.

func NewBasicPlayer() tarot.Player {
	return &basicPlayer{}
}

type basicPlayer struct{}

// handStrength rates a hand for bidding: bouts weigh most, then
// trumps, then kings.
func handStrength(hand cards.Cards) int {
	return 10*hand.CountBouts() + 2*hand.CountTrumps() +
		3*hand.Count(func(c cards.Card) bool { return c.IsKing() })
}

func (p *basicPlayer) Bid(view tarot.BidView) tarot.Contract {
	strength := handStrength(view.Hand)
	var want tarot.Contract
	switch {
	case strength >= 60:
		want = tarot.GardeSans
	case strength >= 45:
		want = tarot.Garde
	case strength >= 35:
		want = tarot.Prise
	default:
		return tarot.Pass
	}
	if want > view.HighBid {
		return want
	}
	return tarot.Pass
}

// CallCard calls the required rank in our longest suit where we don't
// hold that card, keeping the partner's card behind our length.
func (p *basicPlayer) CallCard(view tarot.DealView, rank cards.Rank) cards.Card {
	suits := []cards.Suit{cards.Spades, cards.Hearts, cards.Diamonds, cards.Clubs}
	best := suits[0]
	bestLen := -1
	for _, s := range suits {
		c := cards.Card{Suit: s, Rank: rank}
		if view.Hand.ContainsCard(c) {
			continue
		}
		if n := view.Hand.CountSuit(s); n > bestLen {
			best, bestLen = s, n
		}
	}
	if bestLen < 0 {
		// We hold all four of the rank; self-call leaves us alone.
		return cards.Card{Suit: suits[0], Rank: rank}
	}
	return cards.Card{Suit: best, Rank: rank}
}

// Discard empties short plain suits first, chasing voids.
func (p *basicPlayer) Discard(view tarot.DealView) cards.Cards {
	want := tarot.ChienSize(view.NumPlayers)
	discard := make(cards.Cards, 0, want)

	bySuit := maps.Values(view.Hand.Filter(func(c cards.Card) bool {
		return c.IsSuited() && !c.IsKing()
	}).SplitBySuit())
	slices.SortFunc(bySuit, func(a, b cards.Cards) bool { return len(a) < len(b) })
	for _, suit := range bySuit {
		suit.Sort()
		for _, c := range suit {
			if len(discard) == want {
				return discard
			}
			discard = append(discard, c)
		}
	}
	// Too few plain cards: fill with our lowest non-bout trumps.
	trumps := view.Hand.FilterTrumps().Filter(func(c cards.Card) bool { return !c.IsBout() })
	trumps.Sort()
	return append(discard, trumps[:want-len(discard)]...)
}

// Poignee announces the highest level the hand actually shows.
func (p *basicPlayer) Poignee(view tarot.DealView) (tarot.Poignee, bool) {
	trumps := view.Hand.CountTrumps()
	if view.Hand.ContainsCard(cards.Excuse) {
		trumps++
	}
	levels := tarot.PoigneeLevels(view.NumPlayers)
	for i := len(levels) - 1; i >= 0; i-- {
		if trumps >= levels[i].Count {
			return levels[i], true
		}
	}
	return tarot.Poignee{}, false
}

func (p *basicPlayer) Chelem(view tarot.DealView) bool {
	return false
}

func (p *basicPlayer) Play(view tarot.PlayView) cards.Card {
	legal := view.Legal
	if len(legal) == 1 {
		return legal[0]
	}
	if len(view.Trick) == 0 {
		return chooseLeadCard(view)
	}
	return chooseFollowCard(view)
}

func chooseLeadCard(view tarot.PlayView) cards.Card {
	legal := view.Legal
	onAttack := view.Seat == view.Taker || (view.Partner >= 0 && view.Seat == view.Partner)

	// The attack leads trumps to flush the defense; the defense leads
	// plain suits to make the taker spend trumps.
	trumps := legal.FilterTrumps()
	plain := legal.Filter(func(c cards.Card) bool { return c.IsSuited() })
	if onAttack && len(trumps) > 0 {
		// Don't lead the Petit into the opposition.
		safe := trumps.Filter(func(c cards.Card) bool { return !c.IsPetit() })
		if len(safe) > 0 {
			return safe.Highest()
		}
	}
	if len(plain) > 0 {
		return plain.Lowest()
	}
	if len(trumps) > 0 {
		return trumps.Lowest()
	}
	return legal.Lowest()
}

func chooseFollowCard(view tarot.PlayView) cards.Card {
	legal := view.Legal
	best := winningPlay(view.Trick)
	last := len(view.Trick) == view.NumPlayers-1

	// If we can beat the current best, do so as cheaply as possible
	// when closing the trick, otherwise only with a card that is
	// likely to hold.
	winners := legal.Filter(func(c cards.Card) bool { return takes(c, best, view.Trick) })
	if len(winners) > 0 {
		if last {
			return winners.Lowest()
		}
		return winners.Highest()
	}
	// Can't win: throw the cheapest counting card we hold.
	return legal.LowestCounting()
}

// winningPlay is the card currently taking the trick, ignoring the
// Excuse.
func winningPlay(trick []tarot.Play) cards.Card {
	var best cards.Card
	found := false
	led := cards.NoSuit
	for _, p := range trick {
		c := p.Card
		if c.IsExcuse() {
			continue
		}
		if led == cards.NoSuit && c.IsSuited() {
			led = c.Suit
		}
		if !found {
			best, found = c, true
			continue
		}
		if higher(c, best, led) {
			best = c
		}
	}
	return best
}

// takes reports whether playing c would beat the current best card.
func takes(c, best cards.Card, trick []tarot.Play) bool {
	if c.IsExcuse() {
		return false
	}
	led := cards.NoSuit
	for _, p := range trick {
		if p.Card.IsSuited() {
			led = p.Card.Suit
			break
		}
	}
	return higher(c, best, led)
}

func higher(a, b cards.Card, led cards.Suit) bool {
	if a.IsTrump() {
		return !b.IsTrump() || a.Rank > b.Rank
	}
	if b.IsTrump() {
		return false
	}
	if led != cards.NoSuit && a.Suit != led {
		return false
	}
	return a.Suit == b.Suit && a.Rank > b.Rank
}
