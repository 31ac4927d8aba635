package card

import (
	"fmt"
	"maps"

	"github.com/palemoky/high-low/internal/apperrors"
)

// Counter tracks how many cards of each rank have not been seen yet.
type Counter struct {
	remaining map[Rank]int
	total     int
}

// NewCounter creates a counter holding a full deck.
func NewCounter() *Counter {
	cc := &Counter{
		remaining: make(map[Rank]int),
	}
	cc.Reset()
	return cc
}

// Reset refills the counter to a full 52-card deck.
func (cc *Counter) Reset() {
	for rank := MinRank; rank <= MaxRank; rank++ {
		cc.remaining[rank] = SuitsPerRank
	}
	cc.total = DeckSize
}

// Remove takes one card of rank out of the counter. It fails without
// changing anything when rank is invalid or already exhausted.
func (cc *Counter) Remove(rank Rank) error {
	if !rank.Valid() {
		return &apperrors.RankError{Text: rank.String()}
	}
	if cc.remaining[rank] == 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrCardUnavailable, rank.Name())
	}
	cc.remaining[rank]--
	cc.total--
	return nil
}

// Count returns the remaining cards of rank.
func (cc *Counter) Count(rank Rank) int {
	return cc.remaining[rank]
}

// Total returns the number of cards left.
func (cc *Counter) Total() int {
	return cc.total
}

// Remaining returns a copy of the per-rank counts.
func (cc *Counter) Remaining() map[Rank]int {
	return maps.Clone(cc.remaining)
}

// Odds computes the chance that the next card is strictly higher or lower
// than current. Cards sharing current's rank count toward neither side, so
// PHigher+PLower is below 1 whenever any remain.
func (cc *Counter) Odds(current Rank) Odds {
	odds := Odds{Current: current, Total: cc.total}
	for rank, count := range cc.remaining {
		switch {
		case rank > current:
			odds.Higher += count
		case rank < current:
			odds.Lower += count
		default:
			odds.Equal += count
		}
	}

	if odds.Total == 0 {
		odds.Suggestion = SuggestNone
		return odds
	}

	odds.PHigher = float64(odds.Higher) / float64(odds.Total)
	odds.PLower = float64(odds.Lower) / float64(odds.Total)
	odds.Suggestion = suggest(odds.PHigher, odds.PLower)
	return odds
}
