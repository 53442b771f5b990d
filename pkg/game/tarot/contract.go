package tarot

import (
	"fmt"
	"strings"
)

// Contract is a bid level. Levels are strictly ordered; a bid must
// exceed the current high bid or be a Pass.
type Contract int8

const (
	Pass Contract = iota
	Prise
	Garde
	GardeSans
	GardeContre
)

var Contracts = []Contract{Prise, Garde, GardeSans, GardeContre}

func (c Contract) String() string {
	switch c {
	case Pass:
		return "pass"
	case Prise:
		return "prise"
	case Garde:
		return "garde"
	case GardeSans:
		return "garde-sans"
	case GardeContre:
		return "garde-contre"
	}
	panic("Unknown Contract")
}

// Multiplier is the scoring coefficient of the contract.
func (c Contract) Multiplier() int {
	switch c {
	case Prise:
		return 1
	case Garde:
		return 2
	case GardeSans:
		return 4
	case GardeContre:
		return 6
	}
	return 0
}

// TakesChien reports whether the taker picks up the chien and discards.
// Garde-sans and garde-contre leave the chien face down until scoring.
func (c Contract) TakesChien() bool {
	return c == Prise || c == Garde
}

// IsBid reports whether c is an actual contract rather than a pass.
func (c Contract) IsBid() bool {
	return c >= Prise && c <= GardeContre
}

func ParseContract(s string) (Contract, error) {
	switch strings.ToLower(s) {
	case "pass":
		return Pass, nil
	case "prise":
		return Prise, nil
	case "garde":
		return Garde, nil
	case "garde-sans":
		return GardeSans, nil
	case "garde-contre":
		return GardeContre, nil
	}
	return Pass, fmt.Errorf("no such contract '%s'", s)
}
