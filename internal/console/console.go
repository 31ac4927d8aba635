// Package console drives a game over plain line-oriented text, as used on a
// terminal or through a pipe.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/pterm/pterm"

	"github.com/palemoky/high-low/internal/apperrors"
	"github.com/palemoky/high-low/internal/game"
	"github.com/palemoky/high-low/internal/logger"
	"github.com/palemoky/high-low/internal/sound"
)

const (
	firstPrompt = "Enter the first card rank (2-10, J, Q, K, A): "
	nextPrompt  = "Enter the next card revealed ('s' to shuffle, 'quit' to stop): "
)

// Console reads operator input line by line and prints odds after every card.
type Console struct {
	game  *game.Game
	in    *bufio.Scanner
	out   io.Writer
	lines chan string
	once  sync.Once
	sound sound.Player
	delay time.Duration
}

// Option configures a Console.
type Option func(*Console)

// WithSound plays cues through p.
func WithSound(p sound.Player) Option {
	return func(c *Console) { c.sound = p }
}

// WithDelay pauses between automatic deals.
func WithDelay(d time.Duration) Option {
	return func(c *Console) { c.delay = d }
}

// New creates a console for g reading from in and writing to out.
func New(g *game.Game, in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		game:  g,
		in:    bufio.NewScanner(in),
		out:   out,
		sound: sound.Silent{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RunManual lets the operator type every revealed rank. It returns nil when
// the operator quits, input ends or the deck runs out, and ctx.Err() as soon
// as ctx is cancelled, even while waiting for input.
func (c *Console) RunManual(ctx context.Context) error {
	c.banner("manual")

	showOdds := false
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		prompt := firstPrompt
		if _, ok := c.game.Current(); ok {
			if showOdds {
				c.printOdds()
				showOdds = false
			}
			if c.game.Over() {
				c.finish()
				return nil
			}
			prompt = nextPrompt
		}

		pterm.Fprint(c.out, prompt)
		line, ok, err := c.readLine(ctx)
		if err != nil {
			pterm.Fprintln(c.out)
			c.printTally()
			return err
		}
		if !ok {
			pterm.Fprintln(c.out)
			c.printTally()
			return nil
		}

		cmd, err := game.ParseCommand(line)
		if err != nil {
			c.printError(err)
			continue
		}

		switch cmd.Kind {
		case game.CommandQuit:
			c.printTally()
			return nil
		case game.CommandShuffle:
			c.shuffle()
			showOdds = true
		case game.CommandReveal:
			turn, err := c.game.Reveal(cmd.Rank)
			if err != nil {
				c.printError(err)
				continue
			}
			c.printTurn(turn, false)
			showOdds = true
		}
	}
}

// RunAuto deals the whole deck by itself, printing the odds before every
// card. Cancelling ctx stops it between cards.
func (c *Console) RunAuto(ctx context.Context) error {
	c.banner("automatic")

	for !c.game.Over() {
		if _, ok := c.game.Current(); ok {
			c.printOdds()
			if err := c.wait(ctx); err != nil {
				c.printTally()
				return err
			}
		}

		turn, err := c.game.Deal()
		if err != nil {
			return fmt.Errorf("deal: %w", err)
		}
		c.printTurn(turn, true)
	}

	c.printOdds()
	c.finish()
	return nil
}

func (c *Console) wait(ctx context.Context) error {
	if c.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(c.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// readLine waits for the next input line. ok is false once input ends.
func (c *Console) readLine(ctx context.Context) (line string, ok bool, err error) {
	c.once.Do(c.startReader)
	select {
	case <-ctx.Done():
		return "", false, ctx.Err()
	case line, ok = <-c.lines:
		return line, ok, nil
	}
}

// startReader scans input on its own goroutine so a blocked read never holds
// up cancellation. The goroutine exits when input ends.
func (c *Console) startReader() {
	c.lines = make(chan string)
	go func() {
		defer close(c.lines)
		for c.in.Scan() {
			c.lines <- c.in.Text()
		}
		if err := c.in.Err(); err != nil {
			logger.LogError("read input: %v", err)
		}
	}()
}

func (c *Console) shuffle() {
	report, err := c.game.Shuffle()
	if err != nil {
		c.printError(err)
		return
	}
	c.sound.Play(sound.CueShuffle)
	msg := fmt.Sprintf("Deck reshuffled, %d cards", c.game.Remaining())
	if len(report.Excluded) > 0 {
		msg += fmt.Sprintf(", kept out: %v", report.Excluded)
	}
	pterm.Fprintln(c.out, pterm.Success.Sprint(msg))
}

func (c *Console) finish() {
	c.sound.Play(sound.CueEmpty)
	pterm.Fprintln(c.out, pterm.Warning.Sprint("No cards left in the deck."))
	c.printTally()
}

func (c *Console) printError(err error) {
	logger.LogError("input rejected (code %d): %v", apperrors.Code(err), err)
	pterm.Fprintln(c.out, pterm.Error.Sprint(err.Error()))
}
