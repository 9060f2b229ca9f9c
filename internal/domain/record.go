package domain

import (
	"context"
	"encoding/json"
	"errors"
)

// Collection names in the record store.
const (
	CollectionSubscribers = "subscribers"
	CollectionCampaigns   = "campaigns"
	CollectionEmailLists  = "email_lists"
)

// ErrRecordNotFound is returned by Store implementations when a key is absent.
var ErrRecordNotFound = errors.New("record not found")

// Record is a flat document as stored in a collection. Records read back from
// the store carry their store key under the "key" field.
type Record map[string]any

// Filter is an equality filter over record fields for Store.Fetch.
type Filter map[string]any

// Store is the key-value document store holding the subscriber, campaign, and
// email list collections. Implementations provide atomic single-key put/get
// but no transactions and no multi-key atomicity; Fetch results carry no
// ordering guarantee.
type Store interface {
	// Get returns the record stored under key, or ErrRecordNotFound.
	Get(ctx context.Context, collection, key string) (Record, error)
	// Fetch returns all records whose fields equal every entry in filter.
	// A nil or empty filter returns the full collection.
	Fetch(ctx context.Context, collection string, filter Filter) ([]Record, error)
	// Put upserts the record under key and returns it as stored.
	Put(ctx context.Context, collection, key string, rec Record) (Record, error)
	// PutMany upserts a batch of records in a single store operation. Each
	// record must carry its key under the "key" field.
	PutMany(ctx context.Context, collection string, recs []Record) error
	// Delete removes the record under key. Deleting an absent key is not an
	// error; callers that need not-found semantics look the record up first.
	Delete(ctx context.Context, collection, key string) error
}

// ToRecord converts an entity to its stored document form via its JSON tags.
func ToRecord(v any) (Record, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var rec Record
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// FromRecord decodes a stored document into dest via its JSON tags.
func FromRecord(rec Record, dest any) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dest)
}
