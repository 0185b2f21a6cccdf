package tictactoe

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// drawMoves fills the board without ever completing a line:
//
//	X | O | X
//	X | O | X
//	O | X | O
var drawMoves = []string{"0 0", "0 1", "0 2", "1 1", "1 0", "2 0", "1 2", "2 2", "2 1"}

type scriptedInput struct {
	lines []string
	reads int
}

func (that *scriptedInput) ReadMoveLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if that.reads >= len(that.lines) {
		return "", io.EOF
	}

	line := that.lines[that.reads]
	that.reads++

	return line, nil
}

type capturingOutput struct {
	renders  []string
	messages []string
}

func (that *capturingOutput) Render(board *entity.Board) {
	that.renders = append(that.renders, board.String())
}

func (that *capturingOutput) Message(text string) {
	that.messages = append(that.messages, text)
}

func (that *capturingOutput) count(text string) int {
	n := 0
	for _, msg := range that.messages {
		if msg == text {
			n++
		}
	}

	return n
}

type recordingPublisher struct {
	events []entity.PlyEvent
	err    error
}

func (that *recordingPublisher) PublishPly(_ context.Context, event *entity.PlyEvent) error {
	that.events = append(that.events, *event)
	return that.err
}

func newTestController(lines []string, publisher PlyPublisher) (*GameController, *capturingOutput) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	output := &capturingOutput{}

	players := [2]*entity.Player{
		entity.NewPlayer("Player 1", entity.MarkX),
		entity.NewPlayer("Player 2", entity.MarkO),
	}

	return NewGameController(logger, players, &scriptedInput{lines: lines}, output, publisher), output
}

func TestNewGameController(t *testing.T) {
	// When: a controller is created
	controller, _ := newTestController(nil, nil)

	// Then: the first player is to move on an empty board
	assert.Equal(t, 0, controller.CurrentTurn())
	assert.Equal(t, 0, controller.Plies())
	assert.Equal(t, *entity.NewBoard(), controller.Board())
	assert.NotEmpty(t, controller.GameID())
}

func TestGameController_Run(t *testing.T) {
	t.Run("First player wins with a row", func(t *testing.T) {
		// Given: X plays the top row while O plays the middle row
		controller, output := newTestController([]string{"0 0", "1 0", "0 1", "1 1", "0 2"}, nil)

		// When: the game runs
		outcome, err := controller.Run(context.Background())

		// Then: player 1 wins after five plies
		require.NoError(t, err)
		require.NotNil(t, outcome.Winner)
		assert.Equal(t, "Player 1", outcome.Winner.Name)
		assert.False(t, outcome.Draw)
		assert.Equal(t, 5, outcome.Plies)

		// Then: the final board is rendered and the winner announced last
		board := controller.Board()
		assert.Equal(t, board.String(), output.renders[len(output.renders)-1])
		assert.Equal(t, "Player 1 (X) wins!", output.messages[len(output.messages)-1])
	})

	t.Run("Second player wins with the anti-diagonal", func(t *testing.T) {
		controller, output := newTestController([]string{"0 0", "1 1", "0 1", "0 2", "1 0", "2 0"}, nil)

		outcome, err := controller.Run(context.Background())

		require.NoError(t, err)
		require.NotNil(t, outcome.Winner)
		assert.Equal(t, entity.MarkO, outcome.Winner.Mark)
		assert.Equal(t, 6, outcome.Plies)
		assert.Equal(t, "Player 2 (O) wins!", output.messages[len(output.messages)-1])
	})

	t.Run("Full board ends in a draw", func(t *testing.T) {
		// Given: nine moves that never complete a line
		controller, output := newTestController(drawMoves, nil)

		// When: the game runs
		outcome, err := controller.Run(context.Background())

		// Then: the game stops on its own with a draw
		require.NoError(t, err)
		assert.True(t, outcome.Draw)
		assert.Nil(t, outcome.Winner)
		assert.Equal(t, 9, outcome.Plies)

		board := controller.Board()
		assert.True(t, board.IsFull())
		assert.Equal(t, msgDraw, output.messages[len(output.messages)-1])
	})

	t.Run("Rejected input keeps the same turn", func(t *testing.T) {
		// Given: an occupied cell, garbage, an off-board pair, then a valid move
		controller, output := newTestController([]string{"0 0", "0 0", "x y", "1", "5 5", "1 1"}, nil)

		// When: the game runs until the input is exhausted
		outcome, err := controller.Run(context.Background())

		// Then: only the two valid moves were applied
		require.ErrorIs(t, err, apperror.ErrInputUnavailable)
		require.ErrorIs(t, err, io.EOF)
		assert.Equal(t, 2, outcome.Plies)
		assert.Equal(t, 0, controller.CurrentTurn())

		board := controller.Board()
		assert.Equal(t, entity.MarkX, board.Cell(0, 0))
		assert.Equal(t, entity.MarkO, board.Cell(1, 1))

		// Then: each rejection was reported
		assert.Equal(t, 1, output.count(msgInvalidMove))
		assert.Equal(t, 2, output.count(msgInvalidInput))
		assert.Equal(t, 1, output.count(msgOutOfRange))
		assert.Equal(t, 1, output.count("Player entered row: 5, col: 5"))

		// Then: O was asked again after its rejected moves
		assert.Equal(t, 2, output.count("Player 2's turn (O):"))
	})

	t.Run("Turn index follows accepted plies", func(t *testing.T) {
		for n := range len(drawMoves) {
			// Given: n accepted moves followed by end of input
			controller, _ := newTestController(drawMoves[:n], nil)

			// When: the game runs out of input
			_, err := controller.Run(context.Background())

			// Then: the turn index is n mod 2
			require.ErrorIs(t, err, apperror.ErrInputUnavailable)
			assert.Equal(t, n, controller.Plies())
			assert.Equal(t, n%2, controller.CurrentTurn(), "after %d plies", n)
		}
	})

	t.Run("Canceled context stops before the first move", func(t *testing.T) {
		controller, output := newTestController([]string{"0 0"}, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		outcome, err := controller.Run(ctx)

		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 0, outcome.Plies)
		assert.Empty(t, output.renders)
	})
}

func TestGameController_Publish(t *testing.T) {
	t.Run("Publishes every accepted ply", func(t *testing.T) {
		// Given: a recording publisher and a game that X wins on ply 5
		publisher := &recordingPublisher{}
		controller, _ := newTestController([]string{"0 0", "1 0", "1 0", "0 1", "1 1", "0 2"}, publisher)

		// When: the game runs
		_, err := controller.Run(context.Background())
		require.NoError(t, err)

		// Then: one event per accepted ply, the rejected move is not published
		require.Len(t, publisher.events, 5)

		for i, event := range publisher.events {
			assert.Equal(t, controller.GameID(), event.GameID)
			assert.Equal(t, i+1, event.Ply)
		}

		first := publisher.events[0]
		assert.Equal(t, entity.StatusOngoing, first.Status)
		assert.Equal(t, entity.MarkX, first.Mark)
		assert.Equal(t, "Player 1", first.Player)
		assert.Equal(t, entity.MarkX, first.Board[0])
		assert.Empty(t, first.Winner)

		last := publisher.events[4]
		assert.True(t, last.IsFinished())
		assert.Equal(t, entity.MarkX, last.Winner)
		assert.Equal(t, 0, last.Row)
		assert.Equal(t, 2, last.Col)

		board := controller.Board()
		assert.Equal(t, board.Cells(), last.Board)
	})

	t.Run("Draw is published with the tie mark", func(t *testing.T) {
		publisher := &recordingPublisher{}
		controller, _ := newTestController(drawMoves, publisher)

		_, err := controller.Run(context.Background())
		require.NoError(t, err)

		require.Len(t, publisher.events, 9)
		assert.True(t, publisher.events[8].IsFinished())
		assert.Equal(t, entity.MarkTie, publisher.events[8].Winner)
	})

	t.Run("Publish failures do not stop the game", func(t *testing.T) {
		publisher := &recordingPublisher{err: errors.New("redis is down")}
		controller, _ := newTestController(drawMoves, publisher)

		outcome, err := controller.Run(context.Background())

		require.NoError(t, err)
		assert.True(t, outcome.Draw)
		assert.Len(t, publisher.events, 9)
	})
}

func TestGameController_RenderBeforeEachTurn(t *testing.T) {
	// Given: two moves and then end of input
	controller, output := newTestController([]string{"0 0", "2 2"}, nil)

	// When: the game runs
	_, err := controller.Run(context.Background())
	require.ErrorIs(t, err, apperror.ErrInputUnavailable)

	// Then: the board was rendered before each of the three turns
	require.Len(t, output.renders, 3)
	assert.Equal(t, entity.NewBoard().String(), output.renders[0])
	assert.True(t, strings.HasPrefix(output.renders[2], " X |"))
	assert.True(t, strings.HasSuffix(output.renders[2], "| O \n"))
}
