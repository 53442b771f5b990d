package cards

import (
	"fmt"
	"strconv"
	"strings"
)

// A card's suit. Trumps and the Excuse are modeled as pseudo-suits so
// every one of the 78 cards fits the same Card shape.
type Suit int8

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
	Trumps // the 21 atouts
	NoSuit // the Excuse only
)

// The four plain suits, in display order.
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

func (s Suit) String() string {
	switch s {
	case Spades:
		return "s"
	case Hearts:
		return "h"
	case Diamonds:
		return "d"
	case Clubs:
		return "c"
	case Trumps:
		return "t"
	case NoSuit:
		return ""
	}
	panic("Unknown Suit")
}

func parseSuit(s string) (Suit, error) {
	switch strings.ToLower(s) {
	case "s":
		return Spades, nil
	case "h":
		return Hearts, nil
	case "d":
		return Diamonds, nil
	case "c":
		return Clubs, nil
	}
	return Spades, fmt.Errorf("no such suit '%s'", s)
}

// A suited card's rank: A,2-10,J,N(knight),Q,K.
// Trump cards reuse the same field as 1..21.
type Rank int8

const (
	Ace    Rank = 1
	Two    Rank = 2
	Three  Rank = 3
	Four   Rank = 4
	Five   Rank = 5
	Six    Rank = 6
	Seven  Rank = 7
	Eight  Rank = 8
	Nine   Rank = 9
	Ten    Rank = 10
	Jack   Rank = 11
	Knight Rank = 12
	Queen  Rank = 13
	King   Rank = 14
)

var Ranks = []Rank{
	Ace,
	Two,
	Three,
	Four,
	Five,
	Six,
	Seven,
	Eight,
	Nine,
	Ten,
	Jack,
	Knight,
	Queen,
	King,
}

// Lowest and highest trump numbers; both are bouts.
const (
	PetitTrump Rank = 1
	HighTrump  Rank = 21
)

func (r Rank) String() string {
	switch r {
	case Ace:
		return "a"
	case Ten:
		return "t"
	case Jack:
		return "j"
	case Knight:
		return "n"
	case Queen:
		return "q"
	case King:
		return "k"
	}
	return strconv.Itoa(int(r))
}

func parseRank(r string) (Rank, error) {
	switch strings.ToLower(r) {
	case "a":
		return Ace, nil
	case "2":
		return Two, nil
	case "3":
		return Three, nil
	case "4":
		return Four, nil
	case "5":
		return Five, nil
	case "6":
		return Six, nil
	case "7":
		return Seven, nil
	case "8":
		return Eight, nil
	case "9":
		return Nine, nil
	case "t":
		return Ten, nil
	case "j":
		return Jack, nil
	case "n":
		return Knight, nil
	case "q":
		return Queen, nil
	case "k":
		return King, nil
	}
	return Ace, fmt.Errorf("no such rank '%s'", r)
}

// One of the 78 tarot cards: a suited card (suit + rank 1..14), a trump
// (Trumps + 1..21), or the Excuse (NoSuit, rank 0).
type Card struct {
	Suit Suit
	Rank Rank
}

func (c Card) IsSuited() bool {
	return c.Suit != Trumps && c.Suit != NoSuit
}

func (c Card) IsTrump() bool {
	return c.Suit == Trumps
}

func (c Card) IsExcuse() bool {
	return c.Suit == NoSuit
}

// IsBout reports whether the card is one of the three oudlers:
// the Excuse, the Petit (trump 1), or trump 21.
func (c Card) IsBout() bool {
	if c.IsExcuse() {
		return true
	}
	return c.IsTrump() && (c.Rank == PetitTrump || c.Rank == HighTrump)
}

func (c Card) IsPetit() bool {
	return c.IsTrump() && c.Rank == PetitTrump
}

func (c Card) IsKing() bool {
	return c.IsSuited() && c.Rank == King
}

// HalfPoints is the card's counting value in half-point units, so point
// sums stay in integer arithmetic: oudlers and Kings are 9 (4.5 points),
// Queens 7, Knights 5, Jacks 3, everything else 1.
// The full deck totals 182 half-points, i.e. 91 points.
func (c Card) HalfPoints() int {
	if c.IsBout() {
		return 9
	}
	if c.IsTrump() {
		return 1
	}
	switch c.Rank {
	case King:
		return 9
	case Queen:
		return 7
	case Knight:
		return 5
	case Jack:
		return 3
	}
	return 1
}

func (c Card) String() string {
	if c.IsExcuse() {
		return "ex"
	}
	if c.IsTrump() {
		return strconv.Itoa(int(c.Rank)) + "t"
	}
	return c.Rank.String() + c.Suit.String()
}

// ParseCard parses the text form of a card: "qh" (queen of hearts),
// "nh" (knight of hearts), "5t" or "21t" (trumps), "ex" (the Excuse).
func ParseCard(c string) (Card, error) {
	c = strings.ToLower(c)
	if c == "ex" {
		return Excuse, nil
	}
	if len(c) >= 2 && c[len(c)-1] == 't' {
		if n, err := strconv.Atoi(c[:len(c)-1]); err == nil {
			if n < 1 || n > 21 {
				return Card{}, fmt.Errorf("no such trump '%s'", c)
			}
			return Card{Trumps, Rank(n)}, nil
		}
	}
	if len(c) != 2 {
		return Card{}, fmt.Errorf("can't parse card '%s'", c)
	}
	r, rerr := parseRank(c[0:1])
	s, serr := parseSuit(c[1:2])
	if rerr != nil || serr != nil {
		return Card{}, fmt.Errorf("can't parse card '%s'", c)
	}
	return Card{s, r}, nil
}

// Sort order: plain suits by rank, then trumps 1..21, then the Excuse.
func (c1 Card) LessThan(c2 Card) bool {
	if c1.Suit == c2.Suit {
		return c1.Rank < c2.Rank
	}
	return c1.Suit < c2.Suit
}
