// Package game runs High-Low turns on top of a deck: it keeps the reference
// card, judges each suggested guess against the card that follows and keeps
// the session tally.
package game

import (
	"fmt"

	"github.com/palemoky/high-low/internal/card"
	"github.com/palemoky/high-low/internal/deck"
	"github.com/palemoky/high-low/internal/logger"
)

// Game is one High-Low session over a single deck.
type Game struct {
	deck       *deck.Deck
	current    card.Card
	hasCurrent bool
	tally      Tally
}

// New creates a game over d.
func New(d *deck.Deck) *Game {
	return &Game{deck: d}
}

// Deal draws the next card from the deck. The first card of a game only
// becomes the reference; later cards are judged against it.
func (g *Game) Deal() (Turn, error) {
	odds, ok := g.Odds()
	c, err := g.deck.Draw()
	if err != nil {
		return Turn{}, err
	}
	return g.advance(c, odds, ok), nil
}

// Reveal records a card the operator saw, by rank.
func (g *Game) Reveal(rank card.Rank) (Turn, error) {
	odds, ok := g.Odds()
	c, err := g.deck.Remove(rank)
	if err != nil {
		return Turn{}, err
	}
	return g.advance(c, odds, ok), nil
}

func (g *Game) advance(c card.Card, odds card.Odds, judged bool) Turn {
	turn := Turn{First: !judged, Card: c}
	if judged {
		turn.From = g.current.Rank
		turn.Odds = odds
		turn.Outcome = outcomeOf(g.current.Rank, c.Rank)
		turn.Verdict = judge(odds.Suggestion, turn.Outcome)
		g.tally.record(turn.Verdict)
	}
	g.current = c
	g.hasCurrent = true

	logger.LogInfo("card %s revealed, %d left, verdict %s", c, g.deck.Remaining(), turn.Verdict)
	return turn
}

// Odds returns the odds against the current reference card. ok is false
// before the first card of a game.
func (g *Game) Odds() (odds card.Odds, ok bool) {
	if !g.hasCurrent {
		return card.Odds{}, false
	}
	return g.deck.Odds(g.current.Rank), true
}

// Shuffle reshuffles the deck keeping the reference card out of it. Ranks
// that could not be excluded are only logged.
func (g *Game) Shuffle() (deck.ResetReport, error) {
	var exclude []card.Rank
	if g.hasCurrent {
		exclude = append(exclude, g.current.Rank)
	}

	report, err := g.deck.Reset(exclude...)
	if err != nil {
		return report, fmt.Errorf("shuffle: %w", err)
	}
	if err := report.Err(); err != nil {
		logger.LogInfo("shuffle: %v", err)
	}

	logger.LogInfo("deck reshuffled, %d cards, excluded %v", g.deck.Remaining(), report.Excluded)
	return report, nil
}

// Restart starts a new game on a full deck. The tally carries over.
func (g *Game) Restart() {
	if _, err := g.deck.Reset(); err != nil {
		logger.LogError("restart: %v", err)
	}
	g.current = card.Card{}
	g.hasCurrent = false
	logger.LogInfo("new game started")
}

// Current returns the reference card, if any.
func (g *Game) Current() (card.Card, bool) {
	return g.current, g.hasCurrent
}

// Remaining returns the cards left in the deck.
func (g *Game) Remaining() int {
	return g.deck.Remaining()
}

// Counts returns a copy of the remaining count per rank.
func (g *Game) Counts() map[card.Rank]int {
	return g.deck.Counts()
}

// Over reports whether the deck is exhausted.
func (g *Game) Over() bool {
	return g.deck.Exhausted()
}

// Tally returns the verdicts recorded this session.
func (g *Game) Tally() Tally {
	return g.tally
}
