package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/redis/go-redis/v9"

	"github.com/Balogunolalere/campainProj/internal/domain"
)

// Store is a redis-backed document store. Each collection is a hash keyed
// "collection:<name>"; hash fields are record keys, values are JSON documents.
type Store struct {
	rdb *redis.Client
}

// New returns a Store backed by the given redis client.
func New(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func collectionKey(collection string) string {
	return "collection:" + collection
}

func (s *Store) Get(ctx context.Context, collection, key string) (domain.Record, error) {
	raw, err := s.rdb.HGet(ctx, collectionKey(collection), key).Result()
	if err == redis.Nil {
		return nil, domain.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s/%s: %w", collection, key, err)
	}
	return decodeRecord(key, []byte(raw))
}

func (s *Store) Fetch(ctx context.Context, collection string, filter domain.Filter) ([]domain.Record, error) {
	all, err := s.rdb.HGetAll(ctx, collectionKey(collection)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", collection, err)
	}
	recs := make([]domain.Record, 0, len(all))
	for key, raw := range all {
		rec, err := decodeRecord(key, []byte(raw))
		if err != nil {
			return nil, err
		}
		if matches(rec, filter) {
			recs = append(recs, rec)
		}
	}
	return recs, nil
}

func (s *Store) Put(ctx context.Context, collection, key string, rec domain.Record) (domain.Record, error) {
	raw, err := encodeRecord(key, rec)
	if err != nil {
		return nil, err
	}
	if err := s.rdb.HSet(ctx, collectionKey(collection), key, raw).Err(); err != nil {
		return nil, fmt.Errorf("failed to put %s/%s: %w", collection, key, err)
	}
	return decodeRecord(key, raw)
}

// PutMany writes the whole batch with a single HSET.
func (s *Store) PutMany(ctx context.Context, collection string, recs []domain.Record) error {
	if len(recs) == 0 {
		return nil
	}
	pairs := make([]any, 0, len(recs)*2)
	for _, rec := range recs {
		key, ok := rec["key"].(string)
		if !ok || key == "" {
			return fmt.Errorf("record in %s batch is missing a key", collection)
		}
		raw, err := encodeRecord(key, rec)
		if err != nil {
			return err
		}
		pairs = append(pairs, key, raw)
	}
	if err := s.rdb.HSet(ctx, collectionKey(collection), pairs...).Err(); err != nil {
		return fmt.Errorf("failed to put batch into %s: %w", collection, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, collection, key string) error {
	if err := s.rdb.HDel(ctx, collectionKey(collection), key).Err(); err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", collection, key, err)
	}
	return nil
}

func encodeRecord(key string, rec domain.Record) ([]byte, error) {
	cp := make(domain.Record, len(rec)+1)
	for k, v := range rec {
		cp[k] = v
	}
	cp["key"] = key
	b, err := json.Marshal(cp)
	if err != nil {
		return nil, fmt.Errorf("failed to encode record %s: %w", key, err)
	}
	return b, nil
}

func decodeRecord(key string, raw []byte) (domain.Record, error) {
	var rec domain.Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode record %s: %w", key, err)
	}
	rec["key"] = key
	return rec, nil
}

// matches reports whether every filter entry equals the corresponding record
// field. Values are compared through their JSON representation, so a string
// filter matches a string field regardless of how the caller built it.
func matches(rec domain.Record, filter domain.Filter) bool {
	for field, want := range filter {
		got, ok := rec[field]
		if !ok {
			return false
		}
		if !reflect.DeepEqual(normalize(got), normalize(want)) {
			return false
		}
	}
	return true
}

func normalize(v any) any {
	b, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return v
	}
	return out
}
