package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/high-low/internal/card"
	"github.com/palemoky/high-low/internal/game"
	"github.com/palemoky/high-low/internal/ui/common"
)

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	mode := "manual"
	if m.auto {
		mode = "automatic"
	}

	sections := []string{
		common.TitleStyle("🃏 High-Low") + common.GrayStyle.Render("  "+mode+" mode"),
		lipgloss.JoinHorizontal(lipgloss.Top, m.renderCurrent(), "  ", renderCounter(m.game.Counts())),
		m.renderOdds(),
		renderTurn(m.lastTurn, m.auto),
		renderTally(m.game.Tally()),
	}
	if line := m.renderStatus(); line != "" {
		sections = append(sections, line)
	}
	sections = append(sections, m.renderPrompt())

	return common.DocStyle.Render(strings.Join(sections, "\n"))
}

func (m *Model) renderCurrent() string {
	current, ok := m.game.Current()
	if !ok {
		return common.BoxStyle.Render("Card\n\n(none)")
	}

	face := fmt.Sprintf(" %-2s ", current.Rank.String())
	if m.auto {
		face = common.CardStyle(current.Suit).Render(fmt.Sprintf(" %-2s%s ", current.Rank.String(), current.Suit.String()))
	}
	return common.BoxStyle.Render(lipgloss.JoinVertical(lipgloss.Center, "Card", "", face, current.Rank.Name()))
}

// renderCounter shows how many cards of each rank are still in the deck.
func renderCounter(remaining map[card.Rank]int) string {
	var names, counts []string
	for _, rank := range common.DisplayOrder {
		names = append(names, fmt.Sprintf("%-2s", rank.String()))
		counts = append(counts, fmt.Sprintf("%-2d", remaining[rank]))
	}

	var sb strings.Builder
	sb.WriteString(strings.Join(names, "│") + "\n")
	sb.WriteString(strings.Repeat("─", len(common.DisplayOrder)*3-1) + "\n")
	sb.WriteString(strings.Join(counts, "│"))
	return common.BoxStyle.Render(sb.String())
}

func (m *Model) renderOdds() string {
	odds, ok := m.game.Odds()
	if !ok {
		return common.GrayStyle.Render(fmt.Sprintf("Cards left: %d, waiting for the first card", m.game.Remaining()))
	}

	lines := []string{
		fmt.Sprintf("Cards left: %d", odds.Total),
		fmt.Sprintf("Higher %8s %s", common.Percent(odds.PHigher), m.higherBar.ViewAs(odds.PHigher)),
		fmt.Sprintf("Lower  %8s %s", common.Percent(odds.PLower), m.lowerBar.ViewAs(odds.PLower)),
		fmt.Sprintf("Tie    %8s", common.Percent(odds.PEqual())),
		"Suggested guess: " + common.SuggestionStyle(odds.Suggestion).Render(strings.ToUpper(string(odds.Suggestion))),
	}
	return strings.Join(lines, "\n")
}

func renderTurn(turn *game.Turn, withSuit bool) string {
	if turn == nil {
		return ""
	}
	shown := turn.Card.Rank.Name()
	if withSuit {
		shown = turn.Card.String()
	}
	if turn.First {
		return "First card: " + shown
	}
	return fmt.Sprintf("Last card: %s (%s than %s), %s", shown, turn.Outcome, turn.From.Name(), turn.Verdict)
}

func renderTally(t game.Tally) string {
	return common.GrayStyle.Render(fmt.Sprintf("Correct %d  Wrong %d  Push %d  No call %d  Accuracy %.1f%%",
		t.Correct, t.Wrong, t.Push, t.NoCall, t.Accuracy()*100))
}

func (m *Model) renderStatus() string {
	switch {
	case m.err != nil:
		return common.ErrorStyle.Render("⚠️ " + m.err.Error())
	case m.game.Over():
		return common.NoticeStyle.Render("No cards left in the deck.")
	case m.notice != "":
		return common.NoticeStyle.Render(m.notice)
	}
	return ""
}

func (m *Model) renderPrompt() string {
	if m.auto {
		help := "space: next card  a: auto-deal  s: shuffle  r: new game  q/esc: quit"
		if m.autoDealing {
			help = "auto-dealing...  a: pause  esc: quit"
		}
		return common.PromptStyle.Render(help)
	}
	return common.PromptStyle.Render(m.input.View() + "\n" + common.GrayStyle.Render("enter: submit  ctrl+r: new game  esc: quit"))
}
