// Package store layers typed collections over the raw key-value blob store.
// A Collection is a named JSON array read and replaced as a whole unit; a
// Document is a named singleton record. There is no partial update and no
// query capability below this layer.
package store

import (
	"club/infras/otel"
	"club/shared/constant"
	"club/shared/kv"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Collection[T any] struct {
	store  kv.KV
	key    string
	entity string
	otel   otel.Otel
}

func NewCollection[T any](entity, key string, store kv.KV, otl otel.Otel) Collection[T] {
	return Collection[T]{
		store:  store,
		key:    key,
		entity: entity,
		otel:   otl,
	}
}

// Key returns the store key the collection lives under.
func (c *Collection[T]) Key() string {
	return c.key
}

// All returns every record in the collection. A missing key or a malformed
// blob degrades to an empty collection: the condition is logged but never
// surfaced to callers as an error.
func (c *Collection[T]) All(ctx context.Context) []T {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.All", constant.OtelRepositoryScopeName, c.entity))
	defer scope.End()

	scope.SetAttribute(constant.OtelStoreKeyAttributeKey, c.key)

	blob, err := c.store.Get(ctx, c.key)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return []T{}
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("key", c.key).Msg("failed to read collection, treating as empty")

		return []T{}
	}

	var records []T
	if err := json.Unmarshal(blob, &records); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("key", c.key).Msg("malformed collection blob, treating as empty")

		return []T{}
	}

	return records
}

// Replace persists the given records as the collection's new contents.
func (c *Collection[T]) Replace(ctx context.Context, records []T) error {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Replace", constant.OtelRepositoryScopeName, c.entity))
	defer scope.End()

	scope.SetAttribute(constant.OtelStoreKeyAttributeKey, c.key)

	blob, err := c.Encode(records)
	if err != nil {
		scope.TraceError(err)

		return err
	}

	if err := c.store.Set(ctx, c.key, blob); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("key", c.key).Msg("failed to write collection")

		return fmt.Errorf("failed to write collection (%s): %w", c.entity, err)
	}

	return nil
}

// Encode marshals records into the blob form Replace would write. It exists
// so multi-collection writes can be handed to kv.SetMulti as one atomic unit.
func (c *Collection[T]) Encode(records []T) ([]byte, error) {
	if records == nil {
		records = []T{}
	}

	blob, err := json.Marshal(records)
	if err != nil {
		log.Error().Err(err).Str("key", c.key).Msg("failed to marshal collection")

		return nil, fmt.Errorf("failed to marshal collection (%s): %w", c.entity, err)
	}

	return blob, nil
}

// Exists reports whether the collection key is present at all, regardless of
// its contents. Seeding uses this to run only on first start.
func (c *Collection[T]) Exists(ctx context.Context) bool {
	_, err := c.store.Get(ctx, c.key)

	return err == nil
}

type Document[T any] struct {
	store  kv.KV
	key    string
	entity string
	otel   otel.Otel
}

func NewDocument[T any](entity, key string, store kv.KV, otl otel.Otel) Document[T] {
	return Document[T]{
		store:  store,
		key:    key,
		entity: entity,
		otel:   otl,
	}
}

// Get returns the document and whether it was present and well formed.
func (d *Document[T]) Get(ctx context.Context) (T, bool) {
	ctx, scope := d.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Get", constant.OtelRepositoryScopeName, d.entity))
	defer scope.End()

	scope.SetAttribute(constant.OtelStoreKeyAttributeKey, d.key)

	var record T

	blob, err := d.store.Get(ctx, d.key)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return record, false
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("key", d.key).Msg("failed to read document, treating as absent")

		return record, false
	}

	if err := json.Unmarshal(blob, &record); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("key", d.key).Msg("malformed document blob, treating as absent")

		return record, false
	}

	return record, true
}

// Put persists the document, replacing any previous value.
func (d *Document[T]) Put(ctx context.Context, record T) error {
	ctx, scope := d.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Put", constant.OtelRepositoryScopeName, d.entity))
	defer scope.End()

	scope.SetAttribute(constant.OtelStoreKeyAttributeKey, d.key)

	blob, err := json.Marshal(record)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("key", d.key).Msg("failed to marshal document")

		return fmt.Errorf("failed to marshal document (%s): %w", d.entity, err)
	}

	if err := d.store.Set(ctx, d.key, blob); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("key", d.key).Msg("failed to write document")

		return fmt.Errorf("failed to write document (%s): %w", d.entity, err)
	}

	return nil
}

// Delete removes the document.
func (d *Document[T]) Delete(ctx context.Context) error {
	ctx, scope := d.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Delete", constant.OtelRepositoryScopeName, d.entity))
	defer scope.End()

	if err := d.store.Delete(ctx, d.key); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("key", d.key).Msg("failed to delete document")

		return fmt.Errorf("failed to delete document (%s): %w", d.entity, err)
	}

	return nil
}
