package communication

import (
	"context"

	"connect4/game"
)

// Communicator abstracts where the search runs, in process or behind HTTP.
type Communicator interface {
	ChooseMove(ctx context.Context, board *game.Board, player game.Player) (game.Move, error)
	Winner(ctx context.Context, board *game.Board) (game.Status, game.Player, error)
}

// Boards travel as game.EncodeString text, players as "A" or "B".

type MoveRequest struct {
	Board  string `json:"board"`
	Player string `json:"player"`
}

type MoveResponse struct {
	Move   int `json:"move"`
	Column int `json:"column"`
	Score  int `json:"score"`
	Nodes  int `json:"nodes"`
}

type WinnerRequest struct {
	Board string `json:"board"`
}

type WinnerResponse struct {
	Winner string `json:"winner"` // Empty unless someone has four in a row
	Draw   bool   `json:"draw"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

const (
	MovePath   = "/move"
	WinnerPath = "/winner"
)
