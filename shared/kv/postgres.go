package kv

import (
	"club/infras/otel"
	"club/infras/postgres"
	"club/shared/constant"
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

const (
	queryGetBlob = `SELECT value FROM club_collections WHERE key = $1`
	queryPutBlob = `INSERT INTO club_collections (key, value, modified_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, modified_at = NOW()`
	queryDeleteBlob = `DELETE FROM club_collections WHERE key = $1`
)

// postgresKV keeps every collection blob as one JSONB row. The table gives
// the store durability without giving callers any query capability beyond
// whole-blob read and replace.
type postgresKV struct {
	conn      *postgres.Connection
	namespace string
	otel      otel.Otel
}

func NewPostgres(conn *postgres.Connection, namespace string, otl otel.Otel) KV {
	return &postgresKV{
		conn:      conn,
		namespace: namespace,
		otel:      otl,
	}
}

func (p *postgresKV) Get(ctx context.Context, key string) (blob []byte, err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Get")
	defer scope.End()

	scope.SetAttribute(constant.OtelStoreKeyAttributeKey, key)

	err = p.conn.DB.GetContext(ctx, &blob, queryGetBlob, namespacedKey(p.namespace, key))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKeyNotFound
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("key", key).Msg("failed to read blob from postgres")

		return nil, fmt.Errorf("failed to read blob: %w", err)
	}

	return blob, nil
}

func (p *postgresKV) Set(ctx context.Context, key string, value []byte) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Set")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelStoreKeyAttributeKey, key)

	if _, err = p.conn.DB.ExecContext(ctx, queryPutBlob, namespacedKey(p.namespace, key), value); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to write blob to postgres")

		return fmt.Errorf("failed to write blob: %w", err)
	}

	return nil
}

// SetMulti upserts every entry inside a single transaction.
func (p *postgresKV) SetMulti(ctx context.Context, entries map[string][]byte) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".SetMulti")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := p.conn.DB.BeginTxx(ctx, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin store transaction")

		return fmt.Errorf("failed to begin store transaction: %w", err)
	}

	for key, value := range entries {
		if _, err = tx.ExecContext(ctx, queryPutBlob, namespacedKey(p.namespace, key), value); err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to write blob to postgres")

			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				log.Error().Err(rollbackErr).Msg("failed to roll back store transaction")
			}

			return fmt.Errorf("failed to write blob: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit store transaction")

		return fmt.Errorf("failed to commit store transaction: %w", err)
	}

	return nil
}

func (p *postgresKV) Delete(ctx context.Context, key string) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelStoreKeyAttributeKey, key)

	if _, err = p.conn.DB.ExecContext(ctx, queryDeleteBlob, namespacedKey(p.namespace, key)); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to delete blob from postgres")

		return fmt.Errorf("failed to delete blob: %w", err)
	}

	return nil
}
