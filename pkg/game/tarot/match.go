package tarot

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// Match runs a fixed number of deals with a rotating dealer and
// accumulates the signed marks per seat.
type Match struct {
	Id       string
	Players  []Player
	NumDeals int

	rng       *rand.Rand
	dealer    int
	played    int // counted deals (all-passed included, misdeals not)
	standings []int
	History   []ScoreRecord
}

// NewMatch sets up a match over the given seats. The dealer of the
// first deal is seat 0; randomness flows only from rng.
func NewMatch(players []Player, numDeals int, rng *rand.Rand) (*Match, error) {
	if len(players) < 3 || len(players) > 5 {
		return nil, fmt.Errorf("unsupported player count %d", len(players))
	}
	if numDeals < 1 {
		return nil, fmt.Errorf("match needs at least one deal, got %d", numDeals)
	}
	return &Match{
		Id:        uuid.NewString(),
		Players:   players,
		NumDeals:  numDeals,
		rng:       rng,
		standings: make([]int, len(players)),
	}, nil
}

// Standings is a copy of the cumulative marks per seat.
func (m *Match) Standings() []int {
	return append([]int(nil), m.standings...)
}

// DealsPlayed is the number of counted deals so far.
func (m *Match) DealsPlayed() int { return m.played }

// Done reports whether the match has run its full length.
func (m *Match) Done() bool { return m.played >= m.NumDeals }

// PlayNextDeal runs one deal and folds its marks into the standings.
// A Petit sec voids the deal: the record lands in the history and the
// dealer rotates, but the deal does not count toward the match length.
// An all-pass round counts, with zero marks all around.
func (m *Match) PlayNextDeal() (ScoreRecord, error) {
	if m.Done() {
		return ScoreRecord{}, fmt.Errorf("match is over after %d deals", m.played)
	}
	mc := &MatchContext{
		Standings:      m.Standings(),
		DealsRemaining: m.NumDeals - m.played,
	}
	r, err := PlayDeal(m.rng, len(m.Players), m.dealer, m.Players, mc)
	if err != nil {
		return ScoreRecord{}, err
	}
	m.History = append(m.History, r)
	m.dealer = NextDealer(len(m.Players), m.dealer)
	if r.Outcome != Misdeal {
		m.played++
		for seat, marks := range r.Marks {
			m.standings[seat] += marks
		}
	}
	return r, nil
}

// Run plays the match to completion and returns the final standings.
func (m *Match) Run() ([]int, error) {
	for !m.Done() {
		if _, err := m.PlayNextDeal(); err != nil {
			return nil, err
		}
	}
	return m.Standings(), nil
}

// Snapshot is a read-only view of a match in progress.
type Snapshot struct {
	Id             string
	NumPlayers     int
	Dealer         int
	DealsPlayed    int
	DealsRemaining int
	Standings      []int
	History        []ScoreRecord
}

// Snapshot copies the match's current standing for league or UI
// consumers.
func (m *Match) Snapshot() Snapshot {
	return Snapshot{
		Id:             m.Id,
		NumPlayers:     len(m.Players),
		Dealer:         m.dealer,
		DealsPlayed:    m.played,
		DealsRemaining: m.NumDeals - m.played,
		Standings:      m.Standings(),
		History:        append([]ScoreRecord(nil), m.History...),
	}
}

// Winners lists the seats holding the top cumulative mark.
func (m *Match) Winners() []int {
	best := m.standings[0]
	for _, s := range m.standings[1:] {
		if s > best {
			best = s
		}
	}
	var winners []int
	for seat, s := range m.standings {
		if s == best {
			winners = append(winners, seat)
		}
	}
	return winners
}
