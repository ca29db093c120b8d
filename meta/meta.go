// meta/meta.go
package meta

// DEPTH is the default search horizon of the negamax agent.
const DEPTH = 8

// ADDR is where the agent server listens by default.
const ADDR = ":8080"

// NUM_GAMES is the number of games per matchup when a setup omits it.
const NUM_GAMES = 10

// OPENING_PLIES is the default number of random moves before an experiment game.
const OPENING_PLIES = 2

const OUTPUT_DIR = "results"
