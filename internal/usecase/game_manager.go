package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/startup-journey/internal/catalog"
	"github.com/rocketscienceinc/startup-journey/internal/entity"
	"github.com/rocketscienceinc/startup-journey/internal/journey"
	"github.com/rocketscienceinc/startup-journey/internal/pkg"
	"github.com/rocketscienceinc/startup-journey/internal/session"
)

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager runs many isolated sessions. Operations on one session are serialized;
// different sessions proceed in parallel.
type GameManager struct {
	logger      *slog.Logger
	engine      *journey.Engine
	sessionRepo sessionRepo

	locksMutex sync.Mutex
	// locks holds an entry only while some operation on the session runs or waits.
	locks map[string]*sessionLock
}

type sessionLock struct {
	sync.Mutex
	refs int
}

func NewGameManager(logger *slog.Logger, engine *journey.Engine, sessionRepo sessionRepo) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),
		engine: engine,

		sessionRepo: sessionRepo,
		locks:       make(map[string]*sessionLock),
	}
}

// Catalog returns the archetypes, cards and board the engine plays with.
func (that *GameManager) Catalog() catalog.View {
	return that.engine.Catalog().View()
}

func (that *GameManager) CreateSession(ctx context.Context) (*entity.Game, error) {
	log := that.logger.With("method", "CreateSession")

	store := session.New(that.logger, that.engine, pkg.GenerateSessionID())
	game := store.Snapshot()

	if err := that.sessionRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	log.Info("session created", "session_id", game.ID)

	return game, nil
}

func (that *GameManager) GetSession(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return game, nil
}

func (that *GameManager) DeleteSession(ctx context.Context, id string) error {
	unlock := that.lock(id)
	defer unlock()

	if err := that.sessionRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	that.logger.Info("session deleted", "method", "DeleteSession", "session_id", id)

	return nil
}

func (that *GameManager) CreatePlayer(ctx context.Context, id, name string, archetype entity.Archetype) (*entity.Game, *entity.Player, error) {
	var player *entity.Player

	game, err := that.withSession(ctx, id, func(store *session.Store) error {
		var err error
		player, err = store.CreatePlayer(name, archetype)

		return err
	})
	if err != nil {
		return nil, nil, err
	}

	return game, player, nil
}

func (that *GameManager) StartGame(ctx context.Context, id string) (*entity.Game, error) {
	return that.withSession(ctx, id, (*session.Store).StartGame)
}

func (that *GameManager) PerformAction(ctx context.Context, id, action string) (*entity.Game, journey.Outcome, error) {
	parsed, err := journey.ParseAction(action)
	if err != nil {
		return nil, journey.Outcome{}, err
	}

	var outcome journey.Outcome

	game, err := that.withSession(ctx, id, func(store *session.Store) error {
		var err error
		outcome, err = store.PerformAction(parsed)

		return err
	})

	return game, outcome, err
}

func (that *GameManager) PlayCard(ctx context.Context, id, cardID string) (*entity.Game, journey.Outcome, error) {
	var outcome journey.Outcome

	game, err := that.withSession(ctx, id, func(store *session.Store) error {
		var err error
		outcome, err = store.PlayCard(cardID)

		return err
	})

	return game, outcome, err
}

func (that *GameManager) SelectCard(ctx context.Context, id, cardID string) (*entity.Game, error) {
	return that.withSession(ctx, id, func(store *session.Store) error {
		return store.SelectCard(cardID)
	})
}

func (that *GameManager) DismissCard(ctx context.Context, id string) (*entity.Game, error) {
	return that.withSession(ctx, id, (*session.Store).DismissCard)
}

func (that *GameManager) NextTurn(ctx context.Context, id string) (*entity.Game, error) {
	return that.withSession(ctx, id, (*session.Store).NextTurn)
}

func (that *GameManager) MovePlayer(ctx context.Context, id, playerID string, position int) (*entity.Game, error) {
	return that.withSession(ctx, id, func(store *session.Store) error {
		return store.MovePlayer(playerID, position)
	})
}

func (that *GameManager) UpdatePlayerStats(ctx context.Context, id, playerID string, patch journey.StatsPatch) (*entity.Game, error) {
	return that.withSession(ctx, id, func(store *session.Store) error {
		return store.UpdatePlayerStats(playerID, patch)
	})
}

func (that *GameManager) ResetGame(ctx context.Context, id string) (*entity.Game, error) {
	return that.withSession(ctx, id, func(store *session.Store) error {
		store.ResetGame()

		return nil
	})
}

// withSession loads the session, runs fn under the session lock and saves the result.
// Nothing is written when fn fails.
func (that *GameManager) withSession(ctx context.Context, id string, fn func(store *session.Store) error) (*entity.Game, error) {
	unlock := that.lock(id)
	defer unlock()

	saved, err := that.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	store := session.Restore(that.logger, that.engine, saved)
	if err = fn(store); err != nil {
		return nil, err
	}

	game := store.Snapshot()
	if err = that.sessionRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	return game, nil
}

// lock serializes operations on one session and returns the release func.
func (that *GameManager) lock(id string) func() {
	that.locksMutex.Lock()
	entry, ok := that.locks[id]
	if !ok {
		entry = &sessionLock{}
		that.locks[id] = entry
	}
	entry.refs++
	that.locksMutex.Unlock()

	entry.Lock()

	return func() {
		entry.Unlock()

		that.locksMutex.Lock()
		defer that.locksMutex.Unlock()

		entry.refs--
		if entry.refs == 0 {
			delete(that.locks, id)
		}
	}
}
