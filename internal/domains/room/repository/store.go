package repository

//go:generate go run go.uber.org/mock/mockgen -source=./store.go -destination=./mocks/store_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Lynxxxc/RESERVASI/config"
	"github.com/Lynxxxc/RESERVASI/infras/otel"
	"github.com/Lynxxxc/RESERVASI/internal/domains/room/model"
	"github.com/Lynxxxc/RESERVASI/shared/cache"
	"github.com/Lynxxxc/RESERVASI/shared/constant"
	"github.com/Lynxxxc/RESERVASI/shared/failure"
)

// SnapshotStore persists the whole registry as one blob under a well-known
// key. Every mutation overwrites the full snapshot; there is no incremental
// diffing.
type SnapshotStore interface {
	Save(ctx context.Context, rooms []*model.Room) error
	Load(ctx context.Context) (records []model.Room, found bool, err error)
}

type snapshotStore struct {
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func NewSnapshotStore(cfg *config.Config, cache cache.RedisCache, otl otel.Otel) SnapshotStore {
	return &snapshotStore{
		cfg:   cfg,
		cache: cache,
		otel:  otl,
	}
}

// Save implements SnapshotStore. Rooms marshal to the canonical layout
// [{number, capacity, reservations: [...]}]; the blob is written without
// expiry.
func (store *snapshotStore) Save(ctx context.Context, rooms []*model.Room) (err error) {
	ctx, scope := store.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Save")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelStorageKeyAttribute, store.cfg.Storage.Key)

	if err := store.cache.Save(ctx, store.cfg.Storage.Key, rooms, 0); err != nil {
		log.Error().Err(err).Str("key", store.cfg.Storage.Key).Msg("failed to write registry snapshot")

		return failure.PersistenceUnavailable(err) // nolint:wrapcheck
	}

	return nil
}

// Load implements SnapshotStore. A missing blob is not an error; found
// reports whether a snapshot existed.
func (store *snapshotStore) Load(ctx context.Context) (records []model.Room, found bool, err error) {
	ctx, scope := store.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Load")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelStorageKeyAttribute, store.cfg.Storage.Key)

	err = store.cache.Get(ctx, store.cfg.Storage.Key, &records)
	if errors.Is(err, cache.Nil) {
		return nil, false, nil
	}

	if err != nil {
		log.Error().Err(err).Str("key", store.cfg.Storage.Key).Msg("failed to read registry snapshot")

		return nil, false, failure.PersistenceUnavailable(fmt.Errorf("reading registry snapshot: %w", err)) // nolint:wrapcheck
	}

	return records, true, nil
}
