package game

import (
	"strings"

	"github.com/palemoky/high-low/internal/card"
)

// CommandKind is what a line of operator input asks for.
type CommandKind int

const (
	CommandReveal CommandKind = iota
	CommandShuffle
	CommandQuit
)

// Command is one parsed line of operator input.
type Command struct {
	Kind CommandKind
	Rank card.Rank // set for CommandReveal
}

// ParseCommand reads an input line. An empty line, "quit" or "exit" ends the
// session, "s" or "shuffle" reshuffles, anything else must be a rank.
// A lone "q" is the Queen, not quit.
func ParseCommand(line string) (Command, error) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "", "quit", "exit":
		return Command{Kind: CommandQuit}, nil
	case "s", "shuffle":
		return Command{Kind: CommandShuffle}, nil
	}

	rank, err := card.ParseRank(line)
	if err != nil {
		return Command{}, err
	}
	return Command{Kind: CommandReveal, Rank: rank}, nil
}
