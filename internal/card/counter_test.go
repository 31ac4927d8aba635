package card

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/high-low/internal/apperrors"
)

func TestNewCounter(t *testing.T) {
	t.Parallel()

	cc := NewCounter()
	require.NotNil(t, cc)

	for _, rank := range Ranks() {
		assert.Equal(t, 4, cc.Count(rank), "rank %s should have 4 cards", rank)
	}
	assert.Equal(t, 52, cc.Total())
	assert.Len(t, cc.Remaining(), 13)
}

func TestCounter_Remove(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		remove        []Rank
		expectedRank3 int
		expectedRankA int
	}{
		{"single card", []Rank{Rank3}, 3, 4},
		{"multiple same rank", []Rank{Rank3, Rank3, Rank3}, 1, 4},
		{"all of one rank", []Rank{Rank3, Rank3, Rank3, Rank3}, 0, 4},
		{"mixed ranks", []Rank{Rank3, RankA, Rank3}, 2, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cc := NewCounter()
			for i, r := range tt.remove {
				require.NoError(t, cc.Remove(r))
				assert.Equal(t, 52-i-1, cc.Total())
			}
			assert.Equal(t, tt.expectedRank3, cc.Count(Rank3))
			assert.Equal(t, tt.expectedRankA, cc.Count(RankA))
		})
	}
}

func TestCounter_Remove_Exhausted(t *testing.T) {
	t.Parallel()

	cc := NewCounter()
	for range 4 {
		require.NoError(t, cc.Remove(Rank7))
	}
	before := cc.Remaining()

	err := cc.Remove(Rank7)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrCardUnavailable))
	assert.Equal(t, before, cc.Remaining(), "failed remove must not change counts")
	assert.Equal(t, 48, cc.Total())
}

func TestCounter_Remove_InvalidRank(t *testing.T) {
	t.Parallel()

	cc := NewCounter()
	for _, r := range []Rank{0, 1, 15} {
		err := cc.Remove(r)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidRank))
	}
	assert.Equal(t, 52, cc.Total())
}

func TestCounter_Reset(t *testing.T) {
	t.Parallel()

	cc := NewCounter()
	require.NoError(t, cc.Remove(Rank3))
	require.NoError(t, cc.Remove(RankA))

	cc.Reset()
	assert.Equal(t, 4, cc.Count(Rank3))
	assert.Equal(t, 4, cc.Count(RankA))
	assert.Equal(t, 52, cc.Total())
}

func TestCounter_Remaining_IsCopy(t *testing.T) {
	t.Parallel()

	cc := NewCounter()
	rem := cc.Remaining()
	rem[RankK] = 99

	assert.Equal(t, 4, cc.Count(RankK), "Remaining should return a copy")
}

// --- odds ---

func TestCounter_Odds_FreshDeck(t *testing.T) {
	t.Parallel()

	cc := NewCounter()

	ace := cc.Odds(RankA)
	assert.Equal(t, 0, ace.Higher)
	assert.Equal(t, 48, ace.Lower)
	assert.Equal(t, 4, ace.Equal)
	assert.Equal(t, 52, ace.Total)
	assert.Equal(t, 0.0, ace.PHigher)
	assert.InDelta(t, 0.923, ace.PLower, 0.001)
	assert.Equal(t, SuggestLow, ace.Suggestion)

	two := cc.Odds(Rank2)
	assert.Equal(t, 48, two.Higher)
	assert.Equal(t, 0, two.Lower)
	assert.Equal(t, SuggestHigh, two.Suggestion)

	eight := cc.Odds(Rank8)
	assert.Equal(t, 24, eight.Higher)
	assert.Equal(t, 24, eight.Lower)
	assert.Equal(t, SuggestEither, eight.Suggestion)
	assert.InDelta(t, 4.0/52, eight.PEqual(), 1e-9)
}

func TestCounter_Odds_NoRenormalisation(t *testing.T) {
	t.Parallel()

	cc := NewCounter()
	odds := cc.Odds(Rank9)
	assert.Less(t, odds.PHigher+odds.PLower, 1.0)
	assert.InDelta(t, 1.0, odds.PHigher+odds.PLower+odds.PEqual(), 1e-9)
}

func TestCounter_Odds_AcesGone(t *testing.T) {
	t.Parallel()

	cc := NewCounter()
	for range 4 {
		require.NoError(t, cc.Remove(RankA))
	}
	require.NoError(t, cc.Remove(RankK))

	odds := cc.Odds(RankK)
	assert.Equal(t, 0, odds.Higher, "no higher ranks remain once the Aces are gone")
	assert.Equal(t, 44, odds.Lower)
	assert.Equal(t, 3, odds.Equal)
	assert.Equal(t, 47, odds.Total)
	assert.Equal(t, SuggestLow, odds.Suggestion)
}

func TestCounter_Odds_Empty(t *testing.T) {
	t.Parallel()

	cc := NewCounter()
	for _, r := range Ranks() {
		for range 4 {
			require.NoError(t, cc.Remove(r))
		}
	}

	for _, r := range Ranks() {
		odds := cc.Odds(r)
		assert.Equal(t, 0.0, odds.PHigher)
		assert.Equal(t, 0.0, odds.PLower)
		assert.Equal(t, SuggestNone, odds.Suggestion)
		assert.Equal(t, 0.0, odds.PEqual())
	}
}

func TestCounter_Odds_OnlyTiesLeft(t *testing.T) {
	t.Parallel()

	cc := NewCounter()
	for _, r := range Ranks() {
		if r == Rank5 {
			continue
		}
		for range 4 {
			require.NoError(t, cc.Remove(r))
		}
	}

	odds := cc.Odds(Rank5)
	assert.Equal(t, 4, odds.Total)
	assert.Equal(t, 0.0, odds.PHigher)
	assert.Equal(t, 0.0, odds.PLower)
	assert.Equal(t, SuggestEither, odds.Suggestion, "both zero is a tie, not none")
}

func TestCounter_Odds_Invariants(t *testing.T) {
	t.Parallel()

	cc := NewCounter()
	for _, r := range []Rank{Rank2, Rank2, Rank9, RankQ, RankA, Rank5} {
		require.NoError(t, cc.Remove(r))
	}
	before := cc.Remaining()

	for _, current := range Ranks() {
		first := cc.Odds(current)
		second := cc.Odds(current)
		assert.Equal(t, first, second, "odds must be idempotent")
		assert.Equal(t, cc.Total(), first.Higher+first.Lower+first.Equal)
	}
	assert.Equal(t, before, cc.Remaining(), "odds must not mutate the counter")
}

func TestSuggest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pHigher float64
		pLower  float64
		want    Suggestion
	}{
		{"higher wins", 0.6, 0.3, SuggestHigh},
		{"lower wins", 0.2, 0.7, SuggestLow},
		{"exact tie", 0.45, 0.45, SuggestEither},
		{"both zero", 0, 0, SuggestEither},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, suggest(tt.pHigher, tt.pLower))
		})
	}
}
