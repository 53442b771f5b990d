package cards

import (
	"log"
	"math/rand"
	"sort"
	"strings"

	"golang.org/x/exp/slices"
)

type Cards []Card

// MakeDeck builds the full 78-card deck: 4 suits of 14, trumps 1..21,
// and the Excuse.
func MakeDeck() Cards {
	d := make([]Card, 0, 78)
	for _, s := range Suits {
		for _, r := range Ranks {
			d = append(d, Card{s, r})
		}
	}
	for n := 1; n <= 21; n++ {
		d = append(d, Card{Trumps, Rank(n)})
	}
	d = append(d, Excuse)
	return d
}

func (cs Cards) Copy() Cards {
	cardsCopy := make([]Card, len(cs))
	copy(cardsCopy, cs)
	return cardsCopy
}

func (cs Cards) Equals(other Cards) bool {
	sorted := cs.Copy()
	sorted.Sort()
	otherSorted := other.Copy()
	otherSorted.Sort()
	return slices.Equal(sorted, otherSorted)
}

func (cs Cards) Contains(match func(Card) bool) bool {
	for _, c := range cs {
		if match(c) {
			return true
		}
	}
	return false
}

func (cs Cards) ContainsCard(c Card) bool {
	return cs.Contains(func(oc Card) bool { return oc == c })
}

func (cs Cards) ContainsSuit(s Suit) bool {
	return cs.Contains(func(c Card) bool { return c.Suit == s })
}

func (cs Cards) ContainsAny(other ...Card) bool {
	for _, c := range other {
		if cs.ContainsCard(c) {
			return true
		}
	}
	return false
}

func (cs Cards) Count(match func(Card) bool) int {
	count := 0
	for _, c := range cs {
		if match(c) {
			count++
		}
	}
	return count
}

func (cs Cards) CountSuit(s Suit) int {
	return cs.Count(func(c Card) bool { return c.Suit == s })
}

// CountTrumps counts trump cards; the Excuse is not a trump here.
func (cs Cards) CountTrumps() int {
	return cs.Count(Card.IsTrump)
}

// CountBouts counts oudlers (Excuse, Petit, 21).
func (cs Cards) CountBouts() int {
	return cs.Count(Card.IsBout)
}

// HalfPoints is the counting total of the cards in half-point units.
// A full deal's piles always total 182 (91 points).
func (cs Cards) HalfPoints() int {
	total := 0
	for _, c := range cs {
		total += c.HalfPoints()
	}
	return total
}

func (cs Cards) Remove(c Card) Cards {
	for i, f := range cs {
		if f == c {
			copy(cs[i:], cs[i+1:])
			return cs[:len(cs)-1]
		}
	}
	return cs
}

func (cs Cards) Sort() {
	sort.Slice(cs, func(i, j int) bool {
		return cs[i].LessThan(cs[j])
	})
}

// Shuffle permutes the cards using the caller's seeded source.
// The global source is never used; distinct deals get distinct rngs.
func (cs Cards) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(cs), func(i, j int) { cs[i], cs[j] = cs[j], cs[i] })
}

// Returns a card that is better than all other cards according to the better func (is c1 better than c2).
// If no cards are present, fatal error.
func (cs Cards) GetExtreme(better func(c1, c2 Card) bool) Card {
	if len(cs) == 0 {
		log.Fatal("Can't get extreme for empty list of cards")
	}
	best := cs[0]
	for _, c := range cs {
		if better(c, best) {
			best = c
		}
	}
	return best
}

func (cs Cards) Lowest() Card {
	return cs.GetExtreme(func(c1, c2 Card) bool { return c1.LessThan(c2) })
}

func (cs Cards) Highest() Card {
	return cs.GetExtreme(func(c1, c2 Card) bool { return c2.LessThan(c1) })
}

// LowestCounting picks the card worth the fewest half-points,
// breaking ties toward the lower card. Used for écart suggestions and
// the Excuse compensation card.
func (cs Cards) LowestCounting() Card {
	return cs.GetExtreme(func(c1, c2 Card) bool {
		if c1.HalfPoints() != c2.HalfPoints() {
			return c1.HalfPoints() < c2.HalfPoints()
		}
		return c1.LessThan(c2)
	})
}

func GetExtremeCards(hands []Cards, better func(c1, c2 Cards) bool) Cards {
	if len(hands) == 0 {
		log.Fatal("Can't get extreme for empty list of hands")
	}
	best := hands[0]
	for _, c := range hands {
		if better(c, best) {
			best = c
		}
	}
	return best
}

func (cs Cards) Filter(match func(c Card) bool) Cards {
	var filtered Cards
	for _, c := range cs {
		if match(c) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

func (cs Cards) FilterBySuit(suits ...Suit) Cards {
	return cs.Filter(func(c Card) bool {
		for _, s := range suits {
			if c.Suit == s {
				return true
			}
		}
		return false
	})
}

// Trump cards only, excluding the Excuse.
func (cs Cards) FilterTrumps() Cards {
	return cs.Filter(Card.IsTrump)
}

// Trumps strictly higher than the given trump number.
func (cs Cards) FilterTrumpsOver(n Rank) Cards {
	return cs.Filter(func(c Card) bool { return c.IsTrump() && c.Rank > n })
}

func Combine(cardss ...Cards) Cards {
	var cs Cards
	for _, cards := range cardss {
		for _, c := range cards {
			cs = append(cs, c)
		}
	}
	return cs
}

func (cs Cards) SplitBySuit() map[Suit]Cards {
	cbs := make(map[Suit]Cards)
	for _, c := range cs {
		cbs[c.Suit] = append(cbs[c.Suit], c)
	}
	return cbs
}

func (cs Cards) Strings() []string {
	cardStrings := []string{}
	for _, c := range cs {
		cardStrings = append(cardStrings, c.String())
	}
	return cardStrings
}

func (cs Cards) String() string {
	cardStrings := cs.Strings()
	return strings.Join(cardStrings, " ")
}

// HandString groups a hand by suit, then trumps, then the Excuse.
func (cs Cards) HandString() string {
	cbs := cs.SplitBySuit()
	groupStrings := []string{}
	for _, s := range []Suit{Spades, Hearts, Diamonds, Clubs, Trumps, NoSuit} {
		scs := cbs[s]
		if len(scs) > 0 {
			scs.Sort()
			groupStrings = append(groupStrings, scs.String())
		}
	}
	return strings.Join(groupStrings, "   ")
}

func ParseCards(cs []string) (Cards, error) {
	var cards Cards
	for _, c := range cs {
		card, err := ParseCard(c)
		if err != nil {
			return Cards{}, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}
