package tarot

// One spoken bid. Contract == Pass records a pass.
type Bid struct {
	Seat     int
	Contract Contract
}

// BidResult is the outcome of a bidding round with a taker.
type BidResult struct {
	Taker    int
	Contract Contract
	History  []Bid
}

// BidFunc supplies one seat's bid given the bids spoken so far.
type BidFunc func(seat int, history []Bid, highBid Contract) Contract

// RunBidding walks the seats once each, starting at the dealer's right.
// Every bid must strictly exceed the current high bid or be a pass.
// If everyone passes, the result is nil: a recognized zero-score
// outcome, not an error.
func RunBidding(numPlayers, dealer int, bid BidFunc) (*BidResult, error) {
	first := FirstToBid(numPlayers, dealer)
	history := make([]Bid, 0, numPlayers)
	high := Pass
	taker := -1

	for i := 0; i < numPlayers; i++ {
		seat := (first + i) % numPlayers
		b := bid(seat, history, high)
		if b != Pass {
			if !b.IsBid() || b <= high {
				return nil, &IllegalBidError{Seat: seat, Bid: b, HighBid: high}
			}
			high = b
			taker = seat
		}
		history = append(history, Bid{Seat: seat, Contract: b})
	}

	if taker < 0 {
		return nil, nil
	}
	return &BidResult{Taker: taker, Contract: high, History: history}, nil
}
