package searcher

import (
	"errors"

	"connect4/game"
)

// Scores are from the perspective of the player to move at a node.
const (
	Won     = 1000
	Lost    = -Won
	Neutral = 0
)

// MaxDepth is the default search horizon in plies. Everything beyond it is
// scored Neutral.
const MaxDepth = 8

// ErrNoMove is returned when the root position has no legal move.
var ErrNoMove = errors.New("no legal move")

// Oracle reports whether the player currently has four in a row.
type Oracle func(b *game.Board, p game.Player) bool
