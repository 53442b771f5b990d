package tarot

import (
	"fmt"

	"github.com/google/uuid"
)

// Outcome classifies how a deal ended.
type Outcome int8

const (
	Scored Outcome = iota
	AllPassed
	Misdeal
)

func (o Outcome) String() string {
	switch o {
	case Scored:
		return "scored"
	case AllPassed:
		return "all passed"
	case Misdeal:
		return "misdeal"
	}
	return "unknown outcome"
}

// ScoreRecord is the durable result of one deal.
type ScoreRecord struct {
	Id         string
	NumPlayers int
	Dealer     int
	Outcome    Outcome
	Taker      int // -1 unless Scored
	Partner    int // -1 unless a 5-player partner was found
	Contract   Contract
	Score      DealScore
	Marks      []int // signed per-seat marks, sum zero
}

// newScoreRecord builds the zero-mark skeleton shared by every outcome.
func newScoreRecord(numPlayers, dealer int, outcome Outcome) ScoreRecord {
	return ScoreRecord{
		Id:         uuid.NewString(),
		NumPlayers: numPlayers,
		Dealer:     dealer,
		Outcome:    outcome,
		Taker:      -1,
		Partner:    -1,
		Marks:      make([]int, numPlayers),
	}
}

func (r ScoreRecord) String() string {
	switch r.Outcome {
	case AllPassed:
		return fmt.Sprintf("dealer %d: all passed", r.Dealer)
	case Misdeal:
		return fmt.Sprintf("dealer %d: misdeal (petit sec)", r.Dealer)
	}
	verdict := "made"
	if !r.Score.Success {
		verdict = "failed"
	}
	return fmt.Sprintf("dealer %d: seat %d %s %s with %d points against %d (%d bouts), marks %v",
		r.Dealer, r.Taker, verdict, r.Contract, r.Score.TakerPoints,
		r.Score.Threshold, r.Score.Bouts, r.Marks)
}
