package player

import (
	"flag"
	"fmt"
	"math/rand"

	"github.com/mlefevre/tarot/pkg/game/tarot"
)

// Creates a flag for specifying the player type to use.
func AddPlayerFlag(target *string, name string) {
	enumFlag(target, name, []string{"basic", "random"}, "Type of player logic to use")
}

// Constructs a player from a player flag value.
func NewPlayerFromFlag(playerType string, rng *rand.Rand) (tarot.Player, error) {
	switch playerType {
	case "", "basic":
		return NewBasicPlayer(), nil
	case "random":
		return NewRandomPlayer(rng), nil
	default:
		return nil, fmt.Errorf("invalid player type %s", playerType)
	}
}

func enumFlag(target *string, name string, safelist []string, usage string) {
	usageWithValues := fmt.Sprintf("%s, must be one of %v", usage, safelist)
	flag.Func(name, usageWithValues, func(flagValue string) error {
		for _, allowedValue := range safelist {
			if flagValue == allowedValue {
				*target = flagValue
				return nil
			}
		}
		return fmt.Errorf("must be one of %v", safelist)
	})
}
