package tarot

import (
	"testing"

	"github.com/mlefevre/tarot/pkg/cards"
)

func handOfTrumps(n int) cards.Cards {
	hand := make(cards.Cards, 0, n)
	for r := cards.Rank(1); int(r) <= n; r++ {
		hand = append(hand, cards.Card{Suit: cards.Trumps, Rank: r})
	}
	return hand
}

func TestPoigneeLevels(t *testing.T) {
	tests := []struct {
		numPlayers int
		want       []Poignee
	}{
		{3, []Poignee{{13, 20}, {15, 30}, {18, 40}}},
		{4, []Poignee{{10, 20}, {13, 30}, {15, 40}}},
		{5, []Poignee{{8, 20}, {10, 30}, {13, 40}}},
	}
	for _, tc := range tests {
		got := PoigneeLevels(tc.numPlayers)
		if len(got) != len(tc.want) {
			t.Errorf("PoigneeLevels(%d)=%v, want %v", tc.numPlayers, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("PoigneeLevels(%d)[%d]=%v, want %v", tc.numPlayers, i, got[i], tc.want[i])
			}
		}
	}
}

func TestDeclarePoignee(t *testing.T) {
	tests := []struct {
		name   string
		hand   cards.Cards
		p      Poignee
		wantOk bool
	}{
		{"simple with exactly enough", handOfTrumps(10), Poignee{10, PoigneeSimple}, true},
		{"double", handOfTrumps(13), Poignee{13, PoigneeDouble}, true},
		{"triple", handOfTrumps(15), Poignee{15, PoigneeTriple}, true},
		{"excuse completes the count", append(handOfTrumps(9), cards.Excuse), Poignee{10, PoigneeSimple}, true},
		{"too few trumps", handOfTrumps(9), Poignee{10, PoigneeSimple}, false},
		{"mismatched pair", handOfTrumps(13), Poignee{13, PoigneeSimple}, false},
		{"count off the table", handOfTrumps(12), Poignee{12, PoigneeSimple}, false},
	}
	for _, tc := range tests {
		s := testState(0, []cards.Cards{tc.hand, {cards.C2c}, {cards.C3c}, {cards.C4c}})
		err := s.DeclarePoignee(0, tc.p)
		if tc.wantOk && err != nil {
			t.Errorf("%s: DeclarePoignee=error(%s), want ok", tc.name, err)
		}
		if !tc.wantOk && err == nil {
			t.Errorf("%s: DeclarePoignee succeeded, want InvalidAnnouncementError", tc.name)
		}
	}
}

func TestOnePoigneePerDeal(t *testing.T) {
	s := testState(0, []cards.Cards{handOfTrumps(10), handOfTrumps(10), {cards.C3c}, {cards.C4c}})
	if err := s.DeclarePoignee(0, Poignee{10, PoigneeSimple}); err != nil {
		t.Fatalf("DeclarePoignee(first)=error(%s)", err)
	}
	if err := s.DeclarePoignee(1, Poignee{10, PoigneeSimple}); err == nil {
		t.Errorf("second poignée in one deal succeeded, want InvalidAnnouncementError")
	}
}

func TestPoigneeLockedAfterPlay(t *testing.T) {
	s := testState(0, []cards.Cards{handOfTrumps(12), {cards.C2c}, {cards.C3c}, {cards.C4c}})
	mustPlay(t, s, 0, cards.T1)
	if err := s.DeclarePoignee(0, Poignee{10, PoigneeSimple}); err == nil {
		t.Errorf("DeclarePoignee after the first card succeeded, want InvalidAnnouncementError")
	}
}

func TestDeclareChelem(t *testing.T) {
	s := testState(1, []cards.Cards{{cards.C2c}, handOfTrumps(3), {cards.C3c}, {cards.C4c}})
	if err := s.DeclareChelem(1); err != nil {
		t.Fatalf("DeclareChelem=error(%s)", err)
	}
	if s.leader != 1 {
		t.Errorf("leader=%d after chelem declaration, want the announcer 1", s.leader)
	}
	mustPlay(t, s, 1, cards.T1)
	if err := s.DeclareChelem(1); err == nil {
		t.Errorf("DeclareChelem after the first card succeeded, want InvalidAnnouncementError")
	}
}
