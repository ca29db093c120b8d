package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"connect4/communication/client"
	"connect4/communication/server"
	"connect4/engine"
	"connect4/experiments"
	"connect4/game"
	"connect4/meta"
	"connect4/searcher"
	"connect4/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "play", "One of play, experiment or serve")
	depth := flag.Int("depth", meta.DEPTH, "Search depth of the negamax agent")
	human := flag.String("human", "A", "Side played from the terminal: A, B or none")
	remote := flag.String("remote", "", "URL of an agent server to play against instead of the local search")
	setupPath := flag.String("setup", "", "YAML experiment setup")
	output := flag.String("output", meta.OUTPUT_DIR, "Root directory of experiment results when the setup has none")
	addr := flag.String("addr", meta.ADDR, "Listen address of the agent server")
	level := flag.String("log-level", "info", "zerolog level")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	logLevel, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(logLevel)

	switch *mode {
	case "play":
		err = play(*depth, *human, *remote)
	case "experiment":
		err = runExperiment(*setupPath, *output)
	case "serve":
		err = server.New(searcher.New(searcher.WithMaxDepth(*depth))).Start(*addr)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", *mode)
	}
}

func play(depth int, human, remote string) error {
	var opponent agent.Agent
	if remote != "" {
		opponent = client.NewRemoteAgent(context.Background(), client.NewClient(remote, nil))
	} else {
		opponent = agent.NewSearchAgent(searcher.New(searcher.WithMaxDepth(depth)))
	}

	agents := [2]agent.Agent{opponent, opponent}
	if human != "none" {
		side, err := game.ParsePlayer(human)
		if err != nil {
			return fmt.Errorf("invalid human side %q: %w", human, err)
		}
		agents[side-game.PlayerA] = agent.NewHumanAgent(os.Stdin, os.Stdout)
	}

	e := engine.LocalEngine(agents[0], agents[1])
	result, err := e.Run()
	if err != nil {
		return err
	}

	if err := game.Render(os.Stdout, &e.Board); err != nil {
		return err
	}
	if result.Status == game.Won {
		fmt.Printf("%s won after %d moves\n", result.Winner, result.Game.TotalMoves)
	} else {
		fmt.Printf("draw after %d moves\n", result.Game.TotalMoves)
	}
	return nil
}

func runExperiment(path, output string) error {
	if path == "" {
		return fmt.Errorf("experiment mode needs -setup")
	}
	setup, err := experiments.LoadSetup(path)
	if err != nil {
		return err
	}
	if setup.Output == "" {
		setup.Output = output
	}

	summary, err := experiments.Run(setup)
	if err != nil {
		return err
	}
	for _, m := range summary.Matchups {
		fmt.Printf("agent %d vs agent %d: %d games, %.2f / %.2f, %d draws\n",
			m.Agent1, m.Agent2, m.Games,
			experiments.WinRatio(m.Wins1, m.Games), experiments.WinRatio(m.Wins2, m.Games), m.Draws)
	}
	if summary.Dir != "" {
		fmt.Printf("results written to %s\n", summary.Dir)
	}
	return nil
}
