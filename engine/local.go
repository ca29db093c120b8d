package engine

import (
	"fmt"
	"slices"
	"time"

	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher/agent"

	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

// WithBoard starts the game from a position instead of the empty board.
func WithBoard(board game.Board) Option {
	return func(e *Engine) {
		e.Board = board
	}
}

// WithStarter chooses who moves first, PlayerA by default.
func WithStarter(p game.Player) Option {
	return func(e *Engine) {
		e.Current = p
	}
}

type Engine struct {
	Board   game.Board
	Current game.Player
	Agents  [2]agent.Agent // Index 0 plays PlayerA
	starter game.Player
	status  game.Status
	winner  game.Player
}

// LocalEngine sets up a game between two in-process agents.
func LocalEngine(a, b agent.Agent, options ...Option) *Engine {
	if a == nil || b == nil {
		panic("need two agents")
	}

	e := &Engine{
		Current: game.PlayerA,
		Agents:  [2]agent.Agent{a, b},
	}
	for _, option := range options {
		option(e)
	}
	if e.Current != game.PlayerA && e.Current != game.PlayerB {
		panic(fmt.Sprintf("invalid starting player %d", e.Current))
	}
	e.starter = e.Current
	e.status, e.winner = game.Result(&e.Board)
	return e
}

// Status returns the state of the game and its winner, if any.
func (e *Engine) Status() (game.Status, game.Player) {
	return e.status, e.winner
}

// Play applies a move for the current player after checking it is legal.
func (e *Engine) Play(move game.Move) error {
	if e.status != game.InProgress {
		return ErrGameOver
	}

	legalMoves := e.Board.LegalMoves()
	if !slices.Contains(legalMoves, move) {
		return fmt.Errorf("%w: %d for player %s", ErrIllegalMove, move, e.Current)
	}

	e.Board.Place(move, e.Current)
	e.status, e.winner = game.Result(&e.Board)
	if e.status == game.InProgress {
		e.Current = e.Current.Opponent()
	}
	return nil
}

// Run asks the agents for moves in turn until the game is won or drawn.
func (e *Engine) Run() (Result, error) {
	start := time.Now()
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("player %s is starting", e.Current)

	for step := 1; e.status == game.InProgress && step <= MaxMoves; step++ {
		player := e.Current
		current := e.Agents[player-game.PlayerA]

		move, metric, err := current.FindMove(e.Board, player)
		if err != nil {
			return Result{}, fmt.Errorf("player %s failed to find a move: %w", player, err)
		}
		if err := e.Play(move); err != nil {
			return Result{}, err
		}
		log.Debug().Msgf("step %d: player %s played column %d", step, player, move.Column())

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			Move:         move,
			SearchMetric: metric,
		})
	}

	end := time.Now()
	result := Result{
		Status: e.status,
		Winner: e.winner,
		Game: metrics.GameMetric{
			Starter:    e.starter,
			Winner:     e.winner,
			StartTime:  start,
			EndTime:    end,
			Duration:   end.Sub(start),
			TotalMoves: len(moveMetrics),
		},
		Moves: moveMetrics,
	}

	if e.status == game.Won {
		log.Info().Msgf("game over after %d moves, winner: %s", len(moveMetrics), e.winner)
	} else {
		log.Info().Msgf("game over after %d moves, draw", len(moveMetrics))
	}
	return result, nil
}
