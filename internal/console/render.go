package console

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/palemoky/high-low/internal/card"
	"github.com/palemoky/high-low/internal/game"
	"github.com/palemoky/high-low/internal/logger"
	"github.com/palemoky/high-low/internal/sound"
)

var suggestionColors = map[card.Suggestion]pterm.Color{
	card.SuggestHigh:   pterm.FgLightGreen,
	card.SuggestLow:    pterm.FgLightCyan,
	card.SuggestEither: pterm.FgYellow,
	card.SuggestNone:   pterm.FgGray,
}

var verdictColors = map[game.Verdict]pterm.Color{
	game.VerdictCorrect: pterm.FgGreen,
	game.VerdictWrong:   pterm.FgRed,
	game.VerdictPush:    pterm.FgYellow,
	game.VerdictNoCall:  pterm.FgGray,
}

func (c *Console) banner(mode string) {
	pterm.Fprintln(c.out, pterm.DefaultHeader.Sprint("Interactive High-Low probability tool"))
	pterm.Fprintln(c.out, pterm.Info.Sprintf("Mode: %s", mode))
}

func (c *Console) printOdds() {
	odds, ok := c.game.Odds()
	if !ok {
		return
	}
	pterm.Fprintln(c.out, fmt.Sprintf("Cards left: %d", odds.Total))
	pterm.Fprintln(c.out, fmt.Sprintf("Probability next card is higher: %.2f%%", odds.PHigher*100))
	pterm.Fprintln(c.out, fmt.Sprintf("Probability next card is lower: %.2f%%", odds.PLower*100))
	suggestion := suggestionColors[odds.Suggestion].Sprint(string(odds.Suggestion))
	pterm.Fprintln(c.out, "Suggested guess: "+suggestion)
}

func (c *Console) printTurn(turn game.Turn, withSuit bool) {
	shown := turn.Card.Rank.Name()
	verb := "Revealed"
	if withSuit {
		shown = turn.Card.String()
		verb = "Drew"
	}

	if turn.First {
		c.sound.Play(sound.CueDraw)
		pterm.Fprintln(c.out, pterm.Info.Sprintf("%s %s", verb, shown))
		return
	}

	c.sound.Play(sound.For(turn.Verdict == game.VerdictCorrect, turn.Verdict == game.VerdictWrong))
	verdict := verdictColors[turn.Verdict].Sprint(turn.Verdict.String())
	pterm.Fprintln(c.out, pterm.Info.Sprintf("%s %s (%s than %s)", verb, shown, turn.Outcome, turn.From.Name())+": "+verdict)
}

func (c *Console) printTally() {
	tally := c.game.Tally()
	if tally.Called()+tally.Push+tally.NoCall == 0 {
		return
	}
	data := pterm.TableData{
		{"Correct", "Wrong", "Push", "No call", "Accuracy"},
		{
			fmt.Sprint(tally.Correct),
			fmt.Sprint(tally.Wrong),
			fmt.Sprint(tally.Push),
			fmt.Sprint(tally.NoCall),
			fmt.Sprintf("%.1f%%", tally.Accuracy()*100),
		},
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		logger.LogError("render tally: %v", err)
		return
	}
	pterm.Fprintln(c.out, table)
}
