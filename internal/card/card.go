package card

import "strconv"

// Suit is cosmetic; it never affects odds.
type Suit int

// Rank is the face value, 2 through 14 with the Ace high.
type Rank int

// CardColor is the print colour of a suit.
type CardColor int

const (
	Black CardColor = iota
	Red
)

// Card is a single playing card.
type Card struct {
	Suit Suit
	Rank Rank
}

const (
	Spade Suit = iota
	Heart
	Club
	Diamond
)

var suitSymbols = map[Suit]string{
	Spade:   "♠",
	Heart:   "♥",
	Club:    "♣",
	Diamond: "♦",
}

func (s Suit) String() string {
	if symbol, ok := suitSymbols[s]; ok {
		return symbol
	}
	return ""
}

// Color returns Red for hearts and diamonds.
func (s Suit) Color() CardColor {
	if s == Heart || s == Diamond {
		return Red
	}
	return Black
}

const (
	Rank2 Rank = iota + 2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJ // Jack
	RankQ // Queen
	RankK // King
	RankA // Ace
)

const (
	MinRank = Rank2
	MaxRank = RankA

	// SuitsPerRank is how many cards of each rank a full deck holds.
	SuitsPerRank = 4
	// DeckSize is the number of cards in a full deck.
	DeckSize = 52
)

var rankNames = map[Rank]string{
	RankJ: "J",
	RankQ: "Q",
	RankK: "K",
	RankA: "A",
}

var rankLongNames = map[Rank]string{
	RankJ: "Jack",
	RankQ: "Queen",
	RankK: "King",
	RankA: "Ace",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return strconv.Itoa(int(r))
}

// Name returns the spelled out face name, or the number for pip cards.
func (r Rank) Name() string {
	if name, ok := rankLongNames[r]; ok {
		return name
	}
	return strconv.Itoa(int(r))
}

// Valid reports whether r is a rank of a standard deck.
func (r Rank) Valid() bool {
	return r >= MinRank && r <= MaxRank
}

// Ranks returns every rank from 2 to Ace in ascending order.
func Ranks() []Rank {
	ranks := make([]Rank, 0, MaxRank-MinRank+1)
	for r := MinRank; r <= MaxRank; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// NewDeck returns the 52 cards in canonical, unshuffled order.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for s := Spade; s <= Diamond; s++ {
		for r := MinRank; r <= MaxRank; r++ {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}
