package tarot

import (
	"testing"

	"github.com/mlefevre/tarot/pkg/cards"
)

func plays(cs ...cards.Card) []Play {
	trick := make([]Play, len(cs))
	for i, c := range cs {
		trick[i] = Play{Seat: i, Card: c}
	}
	return trick
}

func TestLegalPlays(t *testing.T) {
	tests := []struct {
		name  string
		hand  cards.Cards
		trick []Play
		want  cards.Cards
	}{
		{
			"empty trick allows anything",
			cards.Cards{cards.Cks, cards.T3, cards.Excuse},
			plays(),
			cards.Cards{cards.Cks, cards.T3, cards.Excuse},
		},
		{
			"must follow led suit",
			cards.Cards{cards.C2h, cards.Cqh, cards.Ckd, cards.T5},
			plays(cards.C7h),
			cards.Cards{cards.C2h, cards.Cqh},
		},
		{
			"excuse joins a restricted set",
			cards.Cards{cards.C2h, cards.Excuse, cards.Ckd},
			plays(cards.C7h),
			cards.Cards{cards.C2h, cards.Excuse},
		},
		{
			"void must trump",
			cards.Cards{cards.Ckd, cards.T5, cards.T9},
			plays(cards.C7h),
			cards.Cards{cards.T5, cards.T9},
		},
		{
			"void trumped trick must overtrump",
			cards.Cards{cards.Ckd, cards.T5, cards.T9},
			plays(cards.C7h, cards.T7),
			cards.Cards{cards.T9},
		},
		{
			"cannot overtrump must still trump",
			cards.Cards{cards.Ckd, cards.T5, cards.T9},
			plays(cards.C7h, cards.T12),
			cards.Cards{cards.T5, cards.T9},
		},
		{
			"no trumps discards anything",
			cards.Cards{cards.Ckd, cards.C2c},
			plays(cards.C7h, cards.T12),
			cards.Cards{cards.Ckd, cards.C2c},
		},
		{
			"trump lead must overtrump",
			cards.Cards{cards.T2, cards.T15, cards.C4c},
			plays(cards.T10),
			cards.Cards{cards.T15},
		},
		{
			"excuse led establishes nothing",
			cards.Cards{cards.Ckd, cards.T5},
			plays(cards.Excuse),
			cards.Cards{cards.Ckd, cards.T5},
		},
		{
			"suit after excuse lead binds",
			cards.Cards{cards.Ckd, cards.C2h, cards.T5},
			plays(cards.Excuse, cards.C7h),
			cards.Cards{cards.C2h},
		},
	}
	for _, tc := range tests {
		got := LegalPlays(tc.hand, tc.trick)
		got.Sort()
		want := tc.want.Copy()
		want.Sort()
		if !got.Equals(want) {
			t.Errorf("%s: LegalPlays=%s, want %s", tc.name, got, want)
		}
	}
}

func TestLegalPlaysNeverEmpty(t *testing.T) {
	hand := cards.Cards{cards.Excuse}
	got := LegalPlays(hand, plays(cards.T10, cards.T12))
	if len(got) == 0 {
		t.Errorf("LegalPlays(excuse only)=empty, want the excuse")
	}
}

func TestTrickWinner(t *testing.T) {
	tests := []struct {
		name  string
		trick []Play
		want  int
	}{
		{"highest of led suit", plays(cards.C7h, cards.Cqh, cards.C2h, cards.Ckd), 1},
		{"king tops led suit", plays(cards.C7h, cards.Ckh, cards.Cqh, cards.C2h), 1},
		{"any trump beats suit", plays(cards.Ckh, cards.T1, cards.Cqh, cards.C2h), 1},
		{"highest trump wins", plays(cards.C7h, cards.T3, cards.T17, cards.T5), 2},
		{"off-suit never wins", plays(cards.C2h, cards.Ckd, cards.C3h, cards.C4h), 3},
		{"excuse never wins", plays(cards.Excuse, cards.C2h, cards.C5h, cards.C3h), 2},
		{"excuse led then suit set", plays(cards.Excuse, cards.C7d, cards.Ckd, cards.C2d), 2},
	}
	for _, tc := range tests {
		if got := trickWinner(tc.trick); got != tc.want {
			t.Errorf("%s: trickWinner=%d, want %d", tc.name, got, tc.want)
		}
	}
}
