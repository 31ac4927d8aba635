package card

// Suggestion is the recommended guess for the next card.
type Suggestion string

const (
	SuggestHigh   Suggestion = "high"
	SuggestLow    Suggestion = "low"
	SuggestEither Suggestion = "either"
	SuggestNone   Suggestion = "none"
)

// Odds is the split of the remaining cards around a reference rank.
type Odds struct {
	Current Rank

	Higher int
	Lower  int
	Equal  int
	Total  int

	PHigher float64
	PLower  float64

	Suggestion Suggestion
}

// PEqual is the chance that the next card ties the reference rank.
func (o Odds) PEqual() float64 {
	if o.Total == 0 {
		return 0
	}
	return float64(o.Equal) / float64(o.Total)
}

func suggest(pHigher, pLower float64) Suggestion {
	switch {
	case pHigher > pLower:
		return SuggestHigh
	case pLower > pHigher:
		return SuggestLow
	default:
		return SuggestEither
	}
}
