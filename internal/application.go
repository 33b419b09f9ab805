package application

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/reversi-backend/internal/bot"
	"github.com/rocketscienceinc/reversi-backend/internal/config"
	"github.com/rocketscienceinc/reversi-backend/internal/repository"
	"github.com/rocketscienceinc/reversi-backend/internal/repository/storage"
	"github.com/rocketscienceinc/reversi-backend/internal/service"
	"github.com/rocketscienceinc/reversi-backend/internal/usecase"
	"github.com/rocketscienceinc/reversi-backend/transport/rest"
	"github.com/rocketscienceinc/reversi-backend/transport/websocket"
)

const disconnectTimeout = 5 * time.Second

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	boards, closeBoards, err := openBoards(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeBoards()

	strategy, err := bot.NewStrategy(bot.Difficulty(conf.Session.BotDifficulty), rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	if err != nil {
		return fmt.Errorf("could not build scripted opponent: %w", err)
	}

	gameService := service.NewGameService(logger, boards)
	sessions := usecase.NewManager(logger, gameService, strategy, usecase.Config{
		PollInterval: conf.Session.PollInterval,
		ThinkDelay:   conf.Session.BotThinkDelay,
		AutoRefresh:  !conf.Session.ManualRefresh,
	})
	defer sessions.CloseAll()

	router := rest.NewRouter(logger, rest.NewSessionHandlers(logger, sessions))
	websocket.NewStreamHandler(logger, sessions, conf.AllowedOrigins).Routes(router)

	log.Info("Starting HTTP server", "port", conf.HTTPPort, "storage", conf.Storage.Kind)
	if err = rest.Start(ctx, conf.HTTPPort, router); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

// openBoards connects the configured board storage and returns its closer.
func openBoards(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.BoardRepository, func(), error) {
	switch conf.Storage.Kind {
	case config.StorageRedis:
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewRedisBoardRepository(redisStorage.Connection), func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}, nil

	case config.StorageMongo:
		mongoStorage, err := storage.NewMongoStorage(ctx, conf.Mongo.URI, conf.Mongo.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to mongo storage: %w", err)
		}

		return repository.NewMongoBoardRepository(mongoStorage.Database.Collection(conf.Mongo.Collection)), func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
			defer cancel()

			if err = mongoStorage.Close(disconnectCtx); err != nil {
				log.Error("could not close mongo storage", "error", err)
			}
		}, nil

	case config.StorageFile:
		boards, err := repository.NewFileBoardRepository(conf.File.Dir)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open file storage: %w", err)
		}

		return boards, func() {}, nil
	}

	return nil, nil, fmt.Errorf("unknown storage kind %q", conf.Storage.Kind)
}
