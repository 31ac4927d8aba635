package deck

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/high-low/internal/apperrors"
	"github.com/palemoky/high-low/internal/card"
)

// assertConsistent checks that the card list and the counter agree.
func assertConsistent(t *testing.T, d *Deck) {
	t.Helper()
	perRank := make(map[card.Rank]int)
	for _, c := range d.cards {
		perRank[c.Rank]++
	}
	for _, r := range card.Ranks() {
		assert.Equal(t, perRank[r], d.Count(r), "rank %s out of sync", r)
		assert.LessOrEqual(t, d.Count(r), 4)
		assert.GreaterOrEqual(t, d.Count(r), 0)
	}
	assert.Equal(t, len(d.cards), d.counter.Total())
}

func TestNew(t *testing.T) {
	t.Parallel()

	d := NewSeeded(1)
	assert.Equal(t, 52, d.Remaining())
	assert.False(t, d.Exhausted())
	assert.Empty(t, d.Played())
	for _, r := range card.Ranks() {
		assert.Equal(t, 4, d.Count(r))
	}
	assertConsistent(t, d)
}

func TestNew_NilRand(t *testing.T) {
	t.Parallel()

	d := New(nil)
	assert.Equal(t, 52, d.Remaining())
	assertConsistent(t, d)
}

func TestNewSeeded_Deterministic(t *testing.T) {
	t.Parallel()

	a := NewSeeded(42)
	b := NewSeeded(42)
	for range 52 {
		ca, errA := a.Draw()
		cb, errB := b.Draw()
		require.NoError(t, errA)
		require.NoError(t, errB)
		assert.Equal(t, ca, cb)
	}
	assert.NotEqual(t, card.NewDeck(), NewSeeded(42).cards, "deck should be shuffled")
}

func TestDraw(t *testing.T) {
	t.Parallel()

	d := NewSeeded(7)
	seen := make(map[card.Card]bool)
	for i := range 52 {
		c, err := d.Draw()
		require.NoError(t, err)
		assert.False(t, seen[c], "card %s drawn twice", c)
		seen[c] = true
		assert.Equal(t, 52-i-1, d.Remaining())
	}
	assert.True(t, d.Exhausted())
	assert.Len(t, d.Played(), 52)
	assertConsistent(t, d)

	_, err := d.Draw()
	assert.True(t, errors.Is(err, apperrors.ErrDeckEmpty))
	assert.Equal(t, 0, d.Remaining())
}

func TestRemove(t *testing.T) {
	t.Parallel()

	d := NewSeeded(3)
	c, err := d.Remove(card.RankQ)
	require.NoError(t, err)
	assert.Equal(t, card.RankQ, c.Rank)
	assert.Equal(t, 51, d.Remaining())
	assert.Equal(t, 3, d.Count(card.RankQ))
	assert.Equal(t, []card.Card{c}, d.Played())
	assertConsistent(t, d)
}

func TestRemove_Unavailable(t *testing.T) {
	t.Parallel()

	d := NewSeeded(3)
	for range 4 {
		_, err := d.Remove(card.Rank4)
		require.NoError(t, err)
	}
	before := d.Counts()
	played := d.Played()

	_, err := d.Remove(card.Rank4)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrCardUnavailable))
	assert.Equal(t, before, d.Counts())
	assert.Equal(t, played, d.Played())
	assert.Equal(t, 48, d.Remaining())
	assertConsistent(t, d)
}

func TestRemove_InvalidRank(t *testing.T) {
	t.Parallel()

	d := NewSeeded(3)
	_, err := d.Remove(card.Rank(1))
	assert.True(t, errors.Is(err, apperrors.ErrInvalidRank))
	assert.Equal(t, 52, d.Remaining())
}

func TestRemove_ThenDrawSkipsRemovedCard(t *testing.T) {
	t.Parallel()

	d := NewSeeded(11)
	removed, err := d.Remove(card.Rank9)
	require.NoError(t, err)

	for !d.Exhausted() {
		c, err := d.Draw()
		require.NoError(t, err)
		assert.NotEqual(t, removed, c)
	}
}

func TestOdds_DoesNotMutate(t *testing.T) {
	t.Parallel()

	d := NewSeeded(5)
	_, err := d.Draw()
	require.NoError(t, err)
	before := d.Counts()

	first := d.Odds(card.Rank7)
	second := d.Odds(card.Rank7)
	assert.Equal(t, first, second)
	assert.Equal(t, before, d.Counts())
	assert.Equal(t, 51, d.Remaining())
	assert.Equal(t, d.Remaining(), first.Higher+first.Lower+first.Equal)
}

func TestOdds_Exhausted(t *testing.T) {
	t.Parallel()

	d := NewSeeded(5)
	for !d.Exhausted() {
		_, err := d.Draw()
		require.NoError(t, err)
	}

	odds := d.Odds(card.Rank10)
	assert.Equal(t, 0.0, odds.PHigher)
	assert.Equal(t, 0.0, odds.PLower)
	assert.Equal(t, card.SuggestNone, odds.Suggestion)
}

func TestReset(t *testing.T) {
	t.Parallel()

	d := NewSeeded(9)
	for range 30 {
		_, err := d.Draw()
		require.NoError(t, err)
	}

	report, err := d.Reset(card.RankK, card.Rank5)
	require.NoError(t, err)
	require.NoError(t, report.Err())
	assert.Len(t, report.Excluded, 2)
	assert.Empty(t, report.Unavailable)
	assert.Equal(t, 50, d.Remaining())
	assert.Equal(t, 3, d.Count(card.RankK))
	assert.Equal(t, 3, d.Count(card.Rank5))
	assert.Equal(t, report.Excluded, d.Played())
	assertConsistent(t, d)
}

func TestReset_NoExclusions(t *testing.T) {
	t.Parallel()

	d := NewSeeded(9)
	for !d.Exhausted() {
		_, err := d.Draw()
		require.NoError(t, err)
	}

	report, err := d.Reset()
	require.NoError(t, err)
	assert.Empty(t, report.Excluded)
	assert.Equal(t, 52, d.Remaining())
	assert.False(t, d.Exhausted())
	assert.Empty(t, d.Played())
}

func TestReset_RepeatedRank(t *testing.T) {
	t.Parallel()

	d := NewSeeded(9)
	exclude := []card.Rank{card.RankA, card.RankA, card.RankA, card.RankA, card.RankA, card.Rank2}

	report, err := d.Reset(exclude...)
	require.NoError(t, err, "running out of a rank is reported, not returned")
	assert.Equal(t, []card.Rank{card.RankA}, report.Unavailable)
	assert.Len(t, report.Excluded, 5)
	assert.True(t, errors.Is(report.Err(), apperrors.ErrCardUnavailable))

	assert.Equal(t, 0, d.Count(card.RankA))
	assert.Equal(t, 3, d.Count(card.Rank2))
	assert.Equal(t, 47, d.Remaining())
	assertConsistent(t, d)
}

func TestReset_InvalidRankLeavesDeck(t *testing.T) {
	t.Parallel()

	d := NewSeeded(9)
	_, err := d.Draw()
	require.NoError(t, err)
	before := d.Counts()

	_, err = d.Reset(card.Rank3, card.Rank(20))
	assert.True(t, errors.Is(err, apperrors.ErrInvalidRank))
	assert.Equal(t, 51, d.Remaining())
	assert.Equal(t, before, d.Counts())
}
