// Package common provides shared styles for the UI.
package common

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/high-low/internal/card"
)

// Lipgloss Styles
var (
	DocStyle     = lipgloss.NewStyle().Margin(1, 2)
	RedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#CD0000")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	BlackStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	GrayStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	TitleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	BoxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	PromptStyle  = lipgloss.NewStyle().MarginTop(1)
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	NoticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	HighStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	LowStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	EitherStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	DisplayOrder = []card.Rank{card.RankA, card.RankK, card.RankQ, card.RankJ, card.Rank10, card.Rank9, card.Rank8, card.Rank7, card.Rank6, card.Rank5, card.Rank4, card.Rank3, card.Rank2}
)

// CardStyle returns the face style for a suit's colour.
func CardStyle(s card.Suit) lipgloss.Style {
	if s.Color() == card.Red {
		return RedStyle
	}
	return BlackStyle
}

// SuggestionStyle returns the style used to print a suggestion.
func SuggestionStyle(s card.Suggestion) lipgloss.Style {
	switch s {
	case card.SuggestHigh:
		return HighStyle
	case card.SuggestLow:
		return LowStyle
	case card.SuggestEither:
		return EitherStyle
	default:
		return GrayStyle
	}
}
