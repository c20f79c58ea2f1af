package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/startup-journey/internal/catalog"
	"github.com/rocketscienceinc/startup-journey/internal/config"
	"github.com/rocketscienceinc/startup-journey/internal/journey"
	"github.com/rocketscienceinc/startup-journey/internal/repository"
	"github.com/rocketscienceinc/startup-journey/internal/repository/storage"
	"github.com/rocketscienceinc/startup-journey/internal/usecase"
	"github.com/rocketscienceinc/startup-journey/transport/rest"
	"github.com/rocketscienceinc/startup-journey/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

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

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	engine := NewEngine(conf.Rules)
	sessionRepo := repository.NewSessionRepository(redisStorage, conf.Session.TTL)
	gameManager := usecase.NewGameManager(logger, engine, sessionRepo)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.Start(ctx, logger, ":"+conf.HTTPPort, rest.NewHandler(logger, gameManager)); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, gameManager, websocket.Limits{
			MessagesPerSecond: conf.Socket.MessagesPerSecond,
			Burst:             conf.Socket.Burst,
		})
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// NewEngine builds the rule engine from config; a zero seed draws from the clock.
func NewEngine(rules config.Rules) *journey.Engine {
	seed := rules.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return journey.New(catalog.New(), rand.New(rand.NewSource(seed)), journey.Rules{
		StartingCash:     rules.StartingCash,
		StartingEnergy:   rules.StartingEnergy,
		StartingBurnRate: rules.StartingBurnRate,
		ApplyTileEffects: rules.ApplyTileEffects,
	})
}
