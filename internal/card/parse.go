package card

import (
	"strings"

	"github.com/palemoky/high-low/internal/apperrors"
)

var rankTokens = map[string]Rank{
	"2":     Rank2,
	"3":     Rank3,
	"4":     Rank4,
	"5":     Rank5,
	"6":     Rank6,
	"7":     Rank7,
	"8":     Rank8,
	"9":     Rank9,
	"10":    Rank10,
	"J":     RankJ,
	"JACK":  RankJ,
	"Q":     RankQ,
	"QUEEN": RankQ,
	"K":     RankK,
	"KING":  RankK,
	"A":     RankA,
	"ACE":   RankA,
}

// ParseRank parses "2".."10", "J", "Q", "K", "A" or the spelled out face
// names, case-insensitively. Numbers are taken only in their plain spelling:
// "11", "+7" or "07" are rejected, and faces must be given by letter or name.
func ParseRank(text string) (Rank, error) {
	rank, ok := rankTokens[strings.ToUpper(strings.TrimSpace(text))]
	if !ok {
		return 0, &apperrors.RankError{Text: text}
	}
	return rank, nil
}
