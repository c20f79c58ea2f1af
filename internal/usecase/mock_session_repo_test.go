package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/startup-journey/internal/apperror"
	"github.com/rocketscienceinc/startup-journey/internal/entity"
)

type mockSessionRepo struct {
	mock.Mock
}

func (that *mockSessionRepo) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	args := that.Called(ctx, game)

	return args.Error(0)
}

func (that *mockSessionRepo) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	args := that.Called(ctx, id)

	game, _ := args.Get(0).(*entity.Game)

	return game, args.Error(1)
}

func (that *mockSessionRepo) DeleteByID(ctx context.Context, id string) error {
	args := that.Called(ctx, id)

	return args.Error(0)
}

// memorySessionRepo keeps JSON snapshots in memory, like the redis repository does.
type memorySessionRepo struct {
	mu       sync.Mutex
	sessions map[string][]byte
}

func newMemorySessionRepo() *memorySessionRepo {
	return &memorySessionRepo{sessions: make(map[string][]byte)}
}

func (that *memorySessionRepo) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	raw, err := json.Marshal(game)
	if err != nil {
		return err
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.sessions[game.ID] = raw

	return nil
}

func (that *memorySessionRepo) GetByID(_ context.Context, id string) (*entity.Game, error) {
	that.mu.Lock()
	raw, ok := that.sessions[id]
	that.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrSessionNotFound, id)
	}

	var game entity.Game
	if err := json.Unmarshal(raw, &game); err != nil {
		return nil, err
	}

	return &game, nil
}

func (that *memorySessionRepo) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", apperror.ErrSessionNotFound, id)
	}

	delete(that.sessions, id)

	return nil
}
