package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"connect4/communication"
	"connect4/game"
	"connect4/searcher"

	"github.com/rs/zerolog/log"
)

// maxBodyBytes bounds a request body. A board is 42 characters.
const maxBodyBytes = 1 << 10

// Server exposes the search engine and the win oracle over HTTP.
type Server struct {
	searcher *searcher.Searcher
	mux      *http.ServeMux
}

func New(s *searcher.Searcher) *Server {
	srv := &Server{
		searcher: s,
		mux:      http.NewServeMux(),
	}
	srv.mux.HandleFunc("POST "+communication.MovePath, srv.handleMove)
	srv.mux.HandleFunc("POST "+communication.WinnerPath, srv.handleWinner)
	return srv
}

func (srv *Server) Handler() http.Handler {
	return srv.mux
}

// Start serves on addr until the listener fails.
func (srv *Server) Start(addr string) error {
	log.Info().Msgf("starting agent server on %s ...", addr)
	hs := &http.Server{
		Addr:              addr,
		Handler:           srv.mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return hs.ListenAndServe()
}

func (srv *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var payload communication.MoveRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "bad request: "+err.Error())
		return
	}
	board, err := decodeBoard(payload.Board)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	player, err := game.ParsePlayer(payload.Player)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	move, metric, err := srv.searcher.Search(board, player)
	if errors.Is(err, searcher.ErrNoMove) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	log.Debug().Msgf("chose move %d for player %s in %s", move, player, metric.Duration)
	writeJSON(w, http.StatusOK, communication.MoveResponse{
		Move:   int(move),
		Column: move.Column(),
		Score:  metric.Score,
		Nodes:  metric.Nodes,
	})
}

func (srv *Server) handleWinner(w http.ResponseWriter, r *http.Request) {
	var payload communication.WinnerRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "bad request: "+err.Error())
		return
	}
	board, err := decodeBoard(payload.Board)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var response communication.WinnerResponse
	switch status, winner := game.Result(board); status {
	case game.Won:
		response.Winner = winner.String()
	case game.Draw:
		response.Draw = true
	}
	writeJSON(w, http.StatusOK, response)
}

func decodeBoard(encoded string) (*game.Board, error) {
	board, err := game.DecodeString(encoded)
	if err != nil {
		return nil, err
	}
	if err := board.Validate(); err != nil {
		return nil, err
	}
	return board, nil
}

func writeError(w http.ResponseWriter, status int, message string) {
	log.Warn().Int("status", status).Msg(message)
	writeJSON(w, status, communication.ErrorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Warn().Err(err).Msg("failed to encode response")
	}
}
