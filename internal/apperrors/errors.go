package apperrors

import (
	"errors"
	"fmt"
)

// Error codes
const (
	CodeInvalidRank     = 1
	CodeCardUnavailable = 2
	CodeDeckEmpty       = 3
)

// GameError is a recoverable game error. Drivers print it and re-prompt.
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// Predefined errors
var (
	ErrInvalidRank     = &GameError{Code: CodeInvalidRank, Message: "invalid rank"}
	ErrCardUnavailable = &GameError{Code: CodeCardUnavailable, Message: "card not available in deck"}
	ErrDeckEmpty       = &GameError{Code: CodeDeckEmpty, Message: "deck is empty"}
)

// RankError carries the text that failed to parse as a rank.
type RankError struct {
	Text string
}

func (e *RankError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidRank.Message, e.Text)
}

// Is lets errors.Is(err, ErrInvalidRank) match.
func (e *RankError) Is(target error) bool {
	return target == ErrInvalidRank
}

// Code returns the GameError code carried by err, or 0.
func Code(err error) int {
	var rankErr *RankError
	if errors.As(err, &rankErr) {
		return CodeInvalidRank
	}
	var gameErr *GameError
	if errors.As(err, &gameErr) {
		return gameErr.Code
	}
	return 0
}
