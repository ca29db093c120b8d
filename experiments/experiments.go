package experiments

import (
	"fmt"

	"connect4/engine"
	"connect4/experiments/metrics"
	"connect4/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type MatchupSummary struct {
	Agent1 int
	Agent2 int
	Games  int
	Wins1  int
	Wins2  int
	Draws  int
}

type Summary struct {
	Dir      string // Where the CSV files went, empty if none were written
	Matchups []MatchupSummary
	Games    []metrics.GameRecord
	Moves    []metrics.MoveRecord
}

// WinRatio is the share of games won, 0 when no game was played.
func WinRatio(wins, games int) float64 {
	if games == 0 {
		return 0
	}
	return float64(wins) / float64(games)
}

// Run plays every matchup of the setup. The agents swap colours every game
// and the side to move after the random opening starts.
func Run(setup *Setup) (*Summary, error) {
	if err := setup.Validate(); err != nil {
		return nil, err
	}

	summary := &Summary{}
	openings := rand.New(rand.NewSource(setup.Seed))
	count := 0

	log.Info().Msgf("starting %s experiment...", setup.Name)

	for mi, matchup := range setup.Matchups {
		config1 := setup.agentConfig(matchup[0])
		config2 := setup.agentConfig(matchup[1])
		result := MatchupSummary{Agent1: config1.ID, Agent2: config2.ID}

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(setup.Matchups), config1, config2)

		for i := 0; i < setup.NumGames; i++ {
			first, second := config1, config2
			if i%2 == 1 {
				first, second = config2, config1
			}

			board := randomOpening(openings, setup.Openings)
			outcome, err := runGame(first, second, board)
			if err != nil {
				return nil, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			count++
			summary.Games = append(summary.Games, metrics.GameRecord{
				ID:         count,
				Agent1:     first.ID,
				Agent2:     second.ID,
				GameMetric: outcome.Game,
			})
			for _, mm := range outcome.Moves {
				summary.Moves = append(summary.Moves, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			result.Games++
			switch {
			case outcome.Status != game.Won:
				result.Draws++
			case (outcome.Winner == game.PlayerA) == (first.ID == config1.ID):
				result.Wins1++
			default:
				result.Wins2++
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(setup.Matchups), i+1, winnerName(outcome))
		}

		summary.Matchups = append(summary.Matchups, result)
		log.Info().Msgf("completed matchup %d of %d: %+v", mi+1, len(setup.Matchups), result)
	}

	log.Info().Msgf("completed %s experiment", setup.Name)

	if setup.Output == "" {
		return summary, nil
	}
	dir, err := store(setup, summary)
	if err != nil {
		return nil, err
	}
	summary.Dir = dir
	return summary, nil
}

func store(setup *Setup, summary *Summary) (string, error) {
	writer, err := metrics.NewWriter(setup.Output, setup.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(setup.Agents); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(summary.Games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(summary.Moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// runGame plays a single game, first plays PlayerA
func runGame(first, second metrics.AgentConfig, board game.Board) (engine.Result, error) {
	a, err := NewAgent(first)
	if err != nil {
		return engine.Result{}, err
	}
	b, err := NewAgent(second)
	if err != nil {
		return engine.Result{}, err
	}

	e := engine.LocalEngine(a, b, engine.WithBoard(board), engine.WithStarter(board.Turn()))
	return e.Run()
}

// randomOpening plays up to plies random moves, stopping before any move that would end the game.
func randomOpening(r *rand.Rand, plies int) game.Board {
	var board game.Board
	player := game.PlayerA
	for i := 0; i < plies; i++ {
		moves := board.LegalMoves()
		move := moves[r.Intn(len(moves))]
		board.Place(move, player)
		if status, _ := game.Result(&board); status != game.InProgress {
			board.Undo(move)
			break
		}
		player = player.Opponent()
	}
	return board
}

func winnerName(result engine.Result) string {
	if result.Status != game.Won {
		return "none"
	}
	return result.Winner.String()
}
