package kv

import (
	"club/infras/otel"
	"club/shared/constant"
	"context"
	"errors"
	"fmt"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// redisKV stores each collection blob under a plain Redis string key. This is
// the server-side analog of the original browser local storage: one key, one
// JSON blob, replaced wholesale on every write.
type redisKV struct {
	client    *goRedis.Client
	namespace string
	otel      otel.Otel
}

func NewRedis(client *goRedis.Client, namespace string, otl otel.Otel) KV {
	return &redisKV{
		client:    client,
		namespace: namespace,
		otel:      otl,
	}
}

func (r *redisKV) Get(ctx context.Context, key string) (blob []byte, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Get")
	defer scope.End()

	scope.SetAttribute(constant.OtelStoreKeyAttributeKey, key)

	blob, err = r.client.Get(ctx, namespacedKey(r.namespace, key)).Bytes()
	if errors.Is(err, goRedis.Nil) {
		return nil, ErrKeyNotFound
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("key", key).Msg("failed to read blob from redis")

		return nil, fmt.Errorf("failed to read blob: %w", err)
	}

	return blob, nil
}

func (r *redisKV) Set(ctx context.Context, key string, value []byte) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Set")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelStoreKeyAttributeKey, key)

	if err = r.client.Set(ctx, namespacedKey(r.namespace, key), value, 0).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to write blob to redis")

		return fmt.Errorf("failed to write blob: %w", err)
	}

	return nil
}

// SetMulti writes every entry inside one MULTI/EXEC transaction so a booking
// and its event count can never be persisted half-applied.
func (r *redisKV) SetMulti(ctx context.Context, entries map[string][]byte) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".SetMulti")
	defer scope.End()
	defer scope.TraceIfError(err)

	_, err = r.client.TxPipelined(ctx, func(pipe goRedis.Pipeliner) error {
		for key, value := range entries {
			pipe.Set(ctx, namespacedKey(r.namespace, key), value, 0)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Int("keys", len(entries)).Msg("failed to write blobs to redis")

		return fmt.Errorf("failed to write blobs: %w", err)
	}

	return nil
}

func (r *redisKV) Delete(ctx context.Context, key string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelStoreKeyAttributeKey, key)

	if err = r.client.Del(ctx, namespacedKey(r.namespace, key)).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to delete blob from redis")

		return fmt.Errorf("failed to delete blob: %w", err)
	}

	return nil
}
