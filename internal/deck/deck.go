// Package deck holds the cards that have not been seen yet.
package deck

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/palemoky/high-low/internal/apperrors"
	"github.com/palemoky/high-low/internal/card"
)

// Deck is a single 52-card deck. The shuffled card list decides draw order;
// the rank counter, kept in step with it, decides the odds.
type Deck struct {
	rng     *rand.Rand
	cards   []card.Card
	counter *card.Counter
	played  []card.Card
}

// New creates a full deck shuffled with rng. A nil rng is seeded from the clock.
func New(rng *rand.Rand) *Deck {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	d := &Deck{
		rng:     rng,
		counter: card.NewCounter(),
	}
	d.refill()
	return d
}

// NewSeeded creates a deck whose draw order depends only on seed.
func NewSeeded(seed uint64) *Deck {
	return New(rand.New(rand.NewPCG(seed, seed)))
}

func (d *Deck) refill() {
	d.cards = card.NewDeck()
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
	d.counter.Reset()
	d.played = nil
}

// Remove takes the next card of rank, in draw order, out of the deck.
func (d *Deck) Remove(rank card.Rank) (card.Card, error) {
	if err := d.counter.Remove(rank); err != nil {
		return card.Card{}, err
	}
	idx := slices.IndexFunc(d.cards, func(c card.Card) bool { return c.Rank == rank })
	c := d.cards[idx]
	d.cards = slices.Delete(d.cards, idx, idx+1)
	d.played = append(d.played, c)
	return c, nil
}

// Draw removes and returns the top card.
func (d *Deck) Draw() (card.Card, error) {
	if len(d.cards) == 0 {
		return card.Card{}, apperrors.ErrDeckEmpty
	}
	c := d.cards[0]
	if err := d.counter.Remove(c.Rank); err != nil {
		return card.Card{}, fmt.Errorf("deck out of sync at %s: %w", c, err)
	}
	d.cards = d.cards[1:]
	d.played = append(d.played, c)
	return c, nil
}

// Odds is the higher/lower split of the remaining cards around current.
// It never changes the deck.
func (d *Deck) Odds(current card.Rank) card.Odds {
	return d.counter.Odds(current)
}

// ResetReport lists what a Reset managed to exclude.
type ResetReport struct {
	Excluded    []card.Card
	Unavailable []card.Rank
}

// Err returns a CardUnavailable error naming the ranks that could not be
// excluded, or nil. Best-effort callers may ignore it.
func (r ResetReport) Err() error {
	if len(r.Unavailable) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %v", apperrors.ErrCardUnavailable, r.Unavailable)
}

// Reset refills and reshuffles the deck, then removes one card for every
// rank in exclude. A rank listed more often than it can be removed ends up in
// ResetReport.Unavailable. An out-of-range rank fails the whole call and
// leaves the deck as it was.
func (d *Deck) Reset(exclude ...card.Rank) (ResetReport, error) {
	for _, rank := range exclude {
		if !rank.Valid() {
			return ResetReport{}, &apperrors.RankError{Text: rank.String()}
		}
	}

	d.refill()

	var report ResetReport
	for _, rank := range exclude {
		c, err := d.Remove(rank)
		if err != nil {
			report.Unavailable = append(report.Unavailable, rank)
			continue
		}
		report.Excluded = append(report.Excluded, c)
	}
	return report, nil
}

// Remaining returns the number of cards left.
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Count returns how many cards of rank are left.
func (d *Deck) Count(rank card.Rank) int {
	return d.counter.Count(rank)
}

// Counts returns a copy of the per-rank counts.
func (d *Deck) Counts() map[card.Rank]int {
	return d.counter.Remaining()
}

// Played returns a copy of the cards removed since the last reset.
func (d *Deck) Played() []card.Card {
	return slices.Clone(d.played)
}

// Exhausted reports whether no cards remain.
func (d *Deck) Exhausted() bool {
	return len(d.cards) == 0
}
