package game

import "github.com/palemoky/high-low/internal/card"

// Outcome is how a new card compares to the reference card.
type Outcome int

const (
	OutcomeHigher Outcome = iota
	OutcomeLower
	OutcomeTie
)

func (o Outcome) String() string {
	switch o {
	case OutcomeHigher:
		return "higher"
	case OutcomeLower:
		return "lower"
	default:
		return "tie"
	}
}

// Verdict says whether the suggested guess held up.
type Verdict int

const (
	VerdictNone    Verdict = iota // first card, nothing to judge
	VerdictCorrect                // suggestion matched
	VerdictWrong                  // suggestion missed
	VerdictPush                   // tie with the reference card
	VerdictNoCall                 // suggestion was "either"
)

var verdictNames = map[Verdict]string{
	VerdictNone:    "none",
	VerdictCorrect: "correct",
	VerdictWrong:   "wrong",
	VerdictPush:    "push",
	VerdictNoCall:  "no call",
}

func (v Verdict) String() string {
	return verdictNames[v]
}

// Turn describes one revealed card.
type Turn struct {
	// First is set for the opening card of a game; no odds or verdict then.
	First bool

	From    card.Rank
	Odds    card.Odds
	Card    card.Card
	Outcome Outcome
	Verdict Verdict
}

func outcomeOf(from, to card.Rank) Outcome {
	switch {
	case to > from:
		return OutcomeHigher
	case to < from:
		return OutcomeLower
	default:
		return OutcomeTie
	}
}

func judge(s card.Suggestion, o Outcome) Verdict {
	switch {
	case o == OutcomeTie:
		return VerdictPush
	case s == card.SuggestEither || s == card.SuggestNone:
		return VerdictNoCall
	case s == card.SuggestHigh && o == OutcomeHigher,
		s == card.SuggestLow && o == OutcomeLower:
		return VerdictCorrect
	default:
		return VerdictWrong
	}
}

// Tally counts verdicts over a session.
type Tally struct {
	Correct int
	Wrong   int
	Push    int
	NoCall  int
}

func (t *Tally) record(v Verdict) {
	switch v {
	case VerdictCorrect:
		t.Correct++
	case VerdictWrong:
		t.Wrong++
	case VerdictPush:
		t.Push++
	case VerdictNoCall:
		t.NoCall++
	}
}

// Called returns how many suggestions were decided either way.
func (t Tally) Called() int {
	return t.Correct + t.Wrong
}

// Accuracy is the share of decided suggestions that were correct.
func (t Tally) Accuracy() float64 {
	if t.Called() == 0 {
		return 0
	}
	return float64(t.Correct) / float64(t.Called())
}
