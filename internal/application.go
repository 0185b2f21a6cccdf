package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
)

var ErrEmptyPlayerName = errors.New("player name is empty")

// RunApp - plays one game on the given streams.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	players, err := newPlayers(conf.Players)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	var publisher tictactoe.PlyPublisher
	if conf.Publisher.Enabled {
		redisClient, err := storage.New(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisClient.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		plyPublisher, err := repository.NewPlyPublisher(redisClient, conf.Publisher.Channel)
		if err != nil {
			return fmt.Errorf("could not create ply publisher: %w", err)
		}

		publisher = plyPublisher
		log.Info("Publishing plies", "channel", conf.Publisher.Channel)
	}

	input := console.NewInput(in)
	defer input.Close()

	output := console.NewOutput(out)
	controller := tictactoe.NewGameController(logger, players, input, output, publisher)

	outcome, err := controller.Run(ctx)

	switch {
	case errors.Is(err, context.Canceled):
		log.Info("Game interrupted", "plies", outcome.Plies)
		return nil
	case errors.Is(err, apperror.ErrInputUnavailable) && errors.Is(err, io.EOF):
		log.Info("Input closed, leaving the game", "plies", outcome.Plies)
		return nil
	case err != nil:
		return fmt.Errorf("game failed: %w", err)
	}

	if err = output.Err(); err != nil {
		return err
	}

	if outcome.Draw {
		log.Info("Game over", "result", "draw", "plies", outcome.Plies)
	} else {
		log.Info("Game over", "winner", outcome.Winner.String(), "plies", outcome.Plies)
	}

	return nil
}

// newPlayers - first player is X, second is O.
func newPlayers(conf config.Players) ([2]*entity.Player, error) {
	first := strings.TrimSpace(conf.FirstName)
	second := strings.TrimSpace(conf.SecondName)

	if first == "" || second == "" {
		return [2]*entity.Player{}, ErrEmptyPlayerName
	}

	return [2]*entity.Player{
		entity.NewPlayer(first, entity.MarkX),
		entity.NewPlayer(second, entity.MarkO),
	}, nil
}
