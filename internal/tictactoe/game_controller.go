package tictactoe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	msgPrompt       = "Enter row and column. Enter two numbers with a space in between: "
	msgInvalidInput = "Invalid input. Try again!"
	msgOutOfRange   = "Row and column must be between 0 and 2. Try again!"
	msgInvalidMove  = "Invalid move. Try again!"
	msgDraw         = "It's a draw!"
)

// InputSource supplies one line of text per move request. ReadMoveLine blocks
// until a line is available, the stream ends or ctx is done.
type InputSource interface {
	ReadMoveLine(ctx context.Context) (string, error)
}

// OutputSink receives board renders and status messages.
type OutputSink interface {
	Render(board *entity.Board)
	Message(text string)
}

type PlyPublisher interface {
	PublishPly(ctx context.Context, event *entity.PlyEvent) error
}

// Outcome is the terminal result of a game. Winner is nil for a draw.
type Outcome struct {
	Winner *entity.Player
	Draw   bool
	Plies  int
}

// GameController drives the turn loop for one board and two players.
type GameController struct {
	logger *slog.Logger
	gameID string

	board       *entity.Board
	players     [2]*entity.Player
	currentTurn int
	plies       int

	input     InputSource
	output    OutputSink
	publisher PlyPublisher
}

// NewGameController - creates a game with an empty board where players[0] moves first.
// publisher may be nil.
func NewGameController(
	logger *slog.Logger,
	players [2]*entity.Player,
	input InputSource,
	output OutputSink,
	publisher PlyPublisher,
) *GameController {
	gameID := uuid.NewString()

	return &GameController{
		logger: logger.With("component", "game", "game_id", gameID),
		gameID: gameID,

		board:   entity.NewBoard(),
		players: players,

		input:     input,
		output:    output,
		publisher: publisher,
	}
}

func (that *GameController) GameID() string {
	return that.gameID
}

// CurrentTurn - index into players of whoever moves next.
func (that *GameController) CurrentTurn() int {
	return that.currentTurn
}

func (that *GameController) Plies() int {
	return that.plies
}

// Board - returns a snapshot of the current grid.
func (that *GameController) Board() entity.Board {
	return *that.board
}

// Run - plays until a win or a draw. Bad input and occupied cells are reported
// through the output sink and the same player is asked again. A failing input
// source ends the game with apperror.ErrInputUnavailable.
func (that *GameController) Run(ctx context.Context) (Outcome, error) {
	log := that.logger.With("method", "Run")

	log.Info("game started", "first", that.players[0].String(), "second", that.players[1].String())

	for {
		if err := ctx.Err(); err != nil {
			return Outcome{Plies: that.plies}, fmt.Errorf("game interrupted: %w", err)
		}

		that.output.Render(that.board)

		player := that.players[that.currentTurn]
		that.output.Message(fmt.Sprintf("%s's turn (%s):", player.Name, player.Mark))

		row, col, err := that.requestMove(ctx)
		if err != nil {
			log.Info("game aborted", "plies", that.plies, "error", err)
			return Outcome{Plies: that.plies}, err
		}

		if err = that.applyMove(row, col, player.Mark); err != nil {
			log.Info("move rejected", "player", player.Name, "error", err)
			that.output.Message(msgInvalidMove)
			continue
		}

		that.plies++
		log.Debug("move accepted", "player", player.Name, "row", row, "col", col, "ply", that.plies)

		if winner, won := that.board.CheckWinner(); won {
			that.publish(ctx, row, col, player, entity.StatusFinished, winner)

			that.output.Render(that.board)
			that.output.Message(fmt.Sprintf("%s (%s) wins!", player.Name, winner))
			log.Info("game won", "winner", player.String(), "plies", that.plies)

			return Outcome{Winner: player, Plies: that.plies}, nil
		}

		// the game will continue until all the squares are full
		if that.board.IsFull() {
			that.publish(ctx, row, col, player, entity.StatusFinished, entity.MarkTie)

			that.output.Render(that.board)
			that.output.Message(msgDraw)
			log.Info("game drawn", "plies", that.plies)

			return Outcome{Draw: true, Plies: that.plies}, nil
		}

		that.publish(ctx, row, col, player, entity.StatusOngoing, entity.EmptyCell)
		that.currentTurn = 1 - that.currentTurn
	}
}

// requestMove - asks until the input yields on-board coordinates.
func (that *GameController) requestMove(ctx context.Context) (int, int, error) {
	log := that.logger.With("method", "requestMove")

	for {
		that.output.Message(msgPrompt)

		line, err := that.input.ReadMoveLine(ctx)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %w", apperror.ErrInputUnavailable, err)
		}

		row, col, err := ParseMove(line)
		if err != nil {
			log.Info("input rejected", "input", line, "error", err)

			if errors.Is(err, apperror.ErrOutOfRangeMove) {
				that.output.Message(msgOutOfRange)
			} else {
				that.output.Message(msgInvalidInput)
			}

			continue
		}

		that.output.Message(fmt.Sprintf("Player entered row: %d, col: %d", row, col))

		if err = validateMove(row, col); err != nil {
			log.Info("input rejected", "input", line, "error", err)
			that.output.Message(msgOutOfRange)

			continue
		}

		return row, col, nil
	}
}

func (that *GameController) applyMove(row, col int, mark entity.Mark) error {
	if !that.board.MakeMove(row, col, mark) {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrCellOccupied, row, col)
	}

	return nil
}

// publish - failures are only logged.
func (that *GameController) publish(ctx context.Context, row, col int, player *entity.Player, status string, winner entity.Mark) {
	if that.publisher == nil {
		return
	}

	event := &entity.PlyEvent{
		GameID: that.gameID,
		Ply:    that.plies,
		Row:    row,
		Col:    col,
		Mark:   player.Mark,
		Player: player.Name,
		Board:  that.board.Cells(),
		Status: status,
		Winner: winner,
	}

	if err := that.publisher.PublishPly(ctx, event); err != nil {
		that.logger.Error("failed to publish ply", "ply", that.plies, "error", err)
	}
}
