package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"connect4/communication/server"
	"connect4/game"
	"connect4/searcher"

	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	ts := httptest.NewServer(server.New(searcher.New(searcher.WithMaxDepth(4))).Handler())
	t.Cleanup(ts.Close)
	return NewClient(ts.URL, ts.Client())
}

func TestChooseMove(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	t.Run("blocks the opponent", func(t *testing.T) {
		b := game.MustParse(`
			.......
			.......
			.......
			.......
			B......
			BAAA...`)
		move, err := c.ChooseMove(ctx, b, game.PlayerB)
		require.NoError(t, err)
		require.Equal(t, game.Move(4), move)
	})

	t.Run("full board", func(t *testing.T) {
		b := game.MustParse(`
			ABABABA
			ABABABA
			BABABAB
			BABABAB
			ABABABA
			ABABABA`)
		move, err := c.ChooseMove(ctx, b, game.PlayerA)
		require.ErrorIs(t, err, searcher.ErrNoMove)
		require.Equal(t, game.NoMove, move)
	})

	t.Run("invalid board", func(t *testing.T) {
		b := game.NewBoard()
		b[game.Index(3, 4)] = game.StoneA
		_, err := c.ChooseMove(ctx, b, game.PlayerA)
		require.Error(t, err)
		require.Contains(t, err.Error(), "400")
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := c.ChooseMove(cancelled, game.NewBoard(), game.PlayerA)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestWinner(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	status, _, err := c.Winner(ctx, game.NewBoard())
	require.NoError(t, err)
	require.Equal(t, game.InProgress, status)

	status, winner, err := c.Winner(ctx, game.MustParse(`
		.......
		.......
		A......
		A......
		A......
		ABBB...`))
	require.NoError(t, err)
	require.Equal(t, game.Won, status)
	require.Equal(t, game.PlayerA, winner)
}

func TestRemoteAgent(t *testing.T) {
	a := NewRemoteAgent(context.Background(), newTestClient(t))
	b := game.MustParse(`
		.......
		.......
		.......
		.......
		.......
		BAAA.B.`)
	move, _, err := a.FindMove(*b, game.PlayerA)
	require.NoError(t, err)
	require.Equal(t, game.Move(4), move)
}

func TestMissingRoutes(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(ts.Close)
	c := NewClient(ts.URL, ts.Client())
	ctx := context.Background()

	move, err := c.ChooseMove(ctx, game.NewBoard(), game.PlayerA)
	require.Error(t, err)
	require.NotErrorIs(t, err, searcher.ErrNoMove, "expected a plain 404 not to mean the board is full")
	require.Equal(t, game.NoMove, move)

	var failure *StatusError
	require.ErrorAs(t, err, &failure)
	require.Equal(t, http.StatusNotFound, failure.Status)

	status, _, err := c.Winner(ctx, game.NewBoard())
	require.ErrorAs(t, err, &failure, "expected the winner lookup to fail instead of answering in progress")
	require.Equal(t, http.StatusNotFound, failure.Status)
	require.Equal(t, game.InProgress, status)
}

func TestUnreachableServer(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	_, err := NewClient(url, nil).ChooseMove(context.Background(), game.NewBoard(), game.PlayerA)
	require.Error(t, err)
}
