package tarot

import (
	"github.com/mlefevre/tarot/pkg/cards"
)

// Play is one card placed into a trick by a seat.
type Play struct {
	Seat int
	Card cards.Card
}

// What a trick demands of the next player: nothing yet (only the
// Excuse so far, or an empty trick), a plain suit, or trumps.
type ledMode int8

const (
	ledNothing ledMode = iota
	ledSuit
	ledTrump
)

// trickRequirement finds the established mode of a trick. The Excuse
// never establishes anything: if it is led, the next card sets the
// suit. Also reports the led suit and the highest trump played so far.
func trickRequirement(trick []Play) (ledMode, cards.Suit, cards.Rank) {
	mode := ledNothing
	led := cards.Spades
	highTrump := cards.Rank(0)
	for _, p := range trick {
		c := p.Card
		if c.IsExcuse() {
			continue
		}
		if c.IsTrump() {
			if mode == ledNothing {
				mode = ledTrump
			}
			if c.Rank > highTrump {
				highTrump = c.Rank
			}
			continue
		}
		if mode == ledNothing {
			mode = ledSuit
			led = c.Suit
		}
	}
	return mode, led, highTrump
}

// withExcuse appends the Excuse to a restricted legal set when held:
// the Excuse is exempt from suit and trump obligations.
func withExcuse(legal, hand cards.Cards) cards.Cards {
	if hand.ContainsCard(cards.Excuse) && !legal.ContainsCard(cards.Excuse) {
		legal = append(legal, cards.Excuse)
	}
	return legal
}

// LegalPlays computes the set of cards the hand may legally put into
// the trick. The set is never empty for a non-empty hand.
func LegalPlays(hand cards.Cards, trick []Play) cards.Cards {
	mode, led, highTrump := trickRequirement(trick)
	if mode == ledNothing {
		return hand.Copy()
	}

	if mode == ledSuit {
		if suited := hand.FilterBySuit(led); len(suited) > 0 {
			return withExcuse(suited, hand)
		}
		// Void in the led suit: must trump if able.
		return mustTrump(hand, highTrump)
	}

	// Trumps led.
	return mustTrump(hand, highTrump)
}

// mustTrump applies the trump obligation: play a trump exceeding the
// current best when possible, otherwise any trump ("pisser"), otherwise
// anything (défausse).
func mustTrump(hand cards.Cards, highTrump cards.Rank) cards.Cards {
	trumps := hand.FilterTrumps()
	if len(trumps) == 0 {
		return hand.Copy()
	}
	if highTrump > 0 {
		if over := hand.FilterTrumpsOver(highTrump); len(over) > 0 {
			return withExcuse(over, hand)
		}
	}
	return withExcuse(trumps, hand)
}

// trickWinner picks the winning play index: highest trump, else highest
// card of the established suit. The Excuse never wins here; the chelem
// final-trick exception is handled by the deal state.
func trickWinner(trick []Play) int {
	mode, led, _ := trickRequirement(trick)
	if mode == ledNothing {
		// Degenerate: nothing but the Excuse was played.
		return 0
	}
	best := -1
	for i, p := range trick {
		c := p.Card
		if c.IsExcuse() {
			continue
		}
		if best < 0 {
			best = i
			continue
		}
		if beats(c, trick[best].Card, led) {
			best = i
		}
	}
	return best
}

// beats reports whether a takes the trick over b given the led suit.
// Neither card is the Excuse.
func beats(a, b cards.Card, led cards.Suit) bool {
	if a.IsTrump() {
		return !b.IsTrump() || a.Rank > b.Rank
	}
	if b.IsTrump() {
		return false
	}
	if a.Suit != led {
		return false
	}
	return b.Suit != led || a.Rank > b.Rank
}
