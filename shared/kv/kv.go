// Package kv is the namespaced key-value blob store backing the club
// collections. Each key holds one whole JSON blob; writes replace the blob as
// a unit and SetMulti replaces several blobs in a single atomic operation.
package kv

//go:generate go run go.uber.org/mock/mockgen -source=./kv.go -destination=./mocks/kv_mock.go -package=mocks

import (
	"club/config"
	"club/shared/constant"
	"context"
	"errors"
	"fmt"

	"club/infras/otel"
	"club/infras/postgres"
	"club/infras/redis"

	"github.com/rs/zerolog/log"
)

// ErrKeyNotFound is the absence sentinel for missing keys. Callers treat it
// as "empty collection", never as a failure.
var ErrKeyNotFound = errors.New("key not found")

type KV interface {
	// Get returns the blob stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set replaces the blob stored under key.
	Set(ctx context.Context, key string, value []byte) error
	// SetMulti replaces every given key in one atomic write. Either all
	// entries become visible or none do.
	SetMulti(ctx context.Context, entries map[string][]byte) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// New selects the store backend from configuration. Only the configured
// backend's connection is established.
func New(cfg *config.Config, otl otel.Otel) KV {
	switch cfg.Store.Driver {
	case constant.StoreDriverMemory:
		log.Warn().Msg("Using in-memory store, data will not survive a restart")

		return NewMemory()
	case constant.StoreDriverPostgres:
		return NewPostgres(postgres.New(cfg), cfg.Store.Namespace, otl)
	case constant.StoreDriverRedis:
		return NewRedis(redis.New(cfg), cfg.Store.Namespace, otl)
	default:
		log.Warn().Str("driver", cfg.Store.Driver).Msg("Unknown store driver, falling back to Redis")

		return NewRedis(redis.New(cfg), cfg.Store.Namespace, otl)
	}
}

func namespacedKey(namespace, key string) string {
	if namespace == "" {
		return key
	}

	return fmt.Sprintf("%s:%s", namespace, key)
}
