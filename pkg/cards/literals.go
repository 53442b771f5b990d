package cards

// Card literals
var (
	Cas = Card{Suit: Spades, Rank: Ace}
	C2s = Card{Suit: Spades, Rank: Two}
	C3s = Card{Suit: Spades, Rank: Three}
	C4s = Card{Suit: Spades, Rank: Four}
	C5s = Card{Suit: Spades, Rank: Five}
	C6s = Card{Suit: Spades, Rank: Six}
	C7s = Card{Suit: Spades, Rank: Seven}
	C8s = Card{Suit: Spades, Rank: Eight}
	C9s = Card{Suit: Spades, Rank: Nine}
	Cts = Card{Suit: Spades, Rank: Ten}
	Cjs = Card{Suit: Spades, Rank: Jack}
	Cns = Card{Suit: Spades, Rank: Knight}
	Cqs = Card{Suit: Spades, Rank: Queen}
	Cks = Card{Suit: Spades, Rank: King}
	Cah = Card{Suit: Hearts, Rank: Ace}
	C2h = Card{Suit: Hearts, Rank: Two}
	C3h = Card{Suit: Hearts, Rank: Three}
	C4h = Card{Suit: Hearts, Rank: Four}
	C5h = Card{Suit: Hearts, Rank: Five}
	C6h = Card{Suit: Hearts, Rank: Six}
	C7h = Card{Suit: Hearts, Rank: Seven}
	C8h = Card{Suit: Hearts, Rank: Eight}
	C9h = Card{Suit: Hearts, Rank: Nine}
	Cth = Card{Suit: Hearts, Rank: Ten}
	Cjh = Card{Suit: Hearts, Rank: Jack}
	Cnh = Card{Suit: Hearts, Rank: Knight}
	Cqh = Card{Suit: Hearts, Rank: Queen}
	Ckh = Card{Suit: Hearts, Rank: King}
	Cad = Card{Suit: Diamonds, Rank: Ace}
	C2d = Card{Suit: Diamonds, Rank: Two}
	C3d = Card{Suit: Diamonds, Rank: Three}
	C4d = Card{Suit: Diamonds, Rank: Four}
	C5d = Card{Suit: Diamonds, Rank: Five}
	C6d = Card{Suit: Diamonds, Rank: Six}
	C7d = Card{Suit: Diamonds, Rank: Seven}
	C8d = Card{Suit: Diamonds, Rank: Eight}
	C9d = Card{Suit: Diamonds, Rank: Nine}
	Ctd = Card{Suit: Diamonds, Rank: Ten}
	Cjd = Card{Suit: Diamonds, Rank: Jack}
	Cnd = Card{Suit: Diamonds, Rank: Knight}
	Cqd = Card{Suit: Diamonds, Rank: Queen}
	Ckd = Card{Suit: Diamonds, Rank: King}
	Cac = Card{Suit: Clubs, Rank: Ace}
	C2c = Card{Suit: Clubs, Rank: Two}
	C3c = Card{Suit: Clubs, Rank: Three}
	C4c = Card{Suit: Clubs, Rank: Four}
	C5c = Card{Suit: Clubs, Rank: Five}
	C6c = Card{Suit: Clubs, Rank: Six}
	C7c = Card{Suit: Clubs, Rank: Seven}
	C8c = Card{Suit: Clubs, Rank: Eight}
	C9c = Card{Suit: Clubs, Rank: Nine}
	Ctc = Card{Suit: Clubs, Rank: Ten}
	Cjc = Card{Suit: Clubs, Rank: Jack}
	Cnc = Card{Suit: Clubs, Rank: Knight}
	Cqc = Card{Suit: Clubs, Rank: Queen}
	Ckc = Card{Suit: Clubs, Rank: King}

	T1  = Card{Suit: Trumps, Rank: 1}
	T2  = Card{Suit: Trumps, Rank: 2}
	T3  = Card{Suit: Trumps, Rank: 3}
	T4  = Card{Suit: Trumps, Rank: 4}
	T5  = Card{Suit: Trumps, Rank: 5}
	T6  = Card{Suit: Trumps, Rank: 6}
	T7  = Card{Suit: Trumps, Rank: 7}
	T8  = Card{Suit: Trumps, Rank: 8}
	T9  = Card{Suit: Trumps, Rank: 9}
	T10 = Card{Suit: Trumps, Rank: 10}
	T11 = Card{Suit: Trumps, Rank: 11}
	T12 = Card{Suit: Trumps, Rank: 12}
	T13 = Card{Suit: Trumps, Rank: 13}
	T14 = Card{Suit: Trumps, Rank: 14}
	T15 = Card{Suit: Trumps, Rank: 15}
	T16 = Card{Suit: Trumps, Rank: 16}
	T17 = Card{Suit: Trumps, Rank: 17}
	T18 = Card{Suit: Trumps, Rank: 18}
	T19 = Card{Suit: Trumps, Rank: 19}
	T20 = Card{Suit: Trumps, Rank: 20}
	T21 = Card{Suit: Trumps, Rank: 21}

	Excuse = Card{Suit: NoSuit, Rank: 0}
)
