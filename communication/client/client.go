package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"connect4/communication"
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"
	"connect4/searcher/agent"
)

// Client talks to a server.Server.
type Client struct {
	serverURL string
	http      *http.Client
}

// NewClient returns a client for the server at serverURL. A nil httpClient
// means http.DefaultClient.
func NewClient(serverURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		serverURL: serverURL,
		http:      httpClient,
	}
}

var _ communication.Communicator = (*Client)(nil)

func (c *Client) ChooseMove(ctx context.Context, board *game.Board, player game.Player) (game.Move, error) {
	request := communication.MoveRequest{
		Board:  game.EncodeString(board),
		Player: player.String(),
	}
	var response communication.MoveResponse
	err := c.post(ctx, communication.MovePath, request, &response)
	var failure *StatusError
	if errors.As(err, &failure) && failure.Status == http.StatusNotFound && failure.Message == searcher.ErrNoMove.Error() {
		return game.NoMove, searcher.ErrNoMove
	}
	if err != nil {
		return game.NoMove, err
	}
	return game.Move(response.Move), nil
}

func (c *Client) Winner(ctx context.Context, board *game.Board) (game.Status, game.Player, error) {
	request := communication.WinnerRequest{Board: game.EncodeString(board)}
	var response communication.WinnerResponse
	if err := c.post(ctx, communication.WinnerPath, request, &response); err != nil {
		return game.InProgress, 0, err
	}

	switch {
	case response.Winner != "":
		winner, err := game.ParsePlayer(response.Winner)
		if err != nil {
			return game.InProgress, 0, err
		}
		return game.Won, winner, nil
	case response.Draw:
		return game.Draw, 0, nil
	}
	return game.InProgress, 0, nil
}

// StatusError is a non-200 answer from the server.
type StatusError struct {
	Path    string
	Status  int
	Message string // ErrorResponse.Error, empty if the body was not one
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned %d: %s", e.Path, e.Status, e.Message)
}

// post sends the request as JSON and decodes a 200 response into out. Any
// other status is a *StatusError.
func (c *Client) post(ctx context.Context, path string, in, out any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.serverURL+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var failure communication.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&failure)
		return &StatusError{Path: path, Status: resp.StatusCode, Message: failure.Error}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

type remoteAgent struct {
	client *Client
	ctx    context.Context
}

// NewRemoteAgent plays the moves chosen by the server.
func NewRemoteAgent(ctx context.Context, c *Client) agent.Agent {
	return remoteAgent{client: c, ctx: ctx}
}

func (a remoteAgent) FindMove(board game.Board, player game.Player) (game.Move, metrics.SearchMetric, error) {
	move, err := a.client.ChooseMove(a.ctx, &board, player)
	return move, metrics.SearchMetric{}, err
}
