package domain

import (
	"context"
	"errors"
	"io"
)

// Sentinel errors for subscriber operations.
var (
	ErrSubscriberNotFound = errors.New("subscriber not found")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidEmail       = errors.New("invalid email address")
)

// Subscriber represents a mailing list subscriber. Email is unique across the
// collection; Key is the store key assigned at creation. Timestamps are stored
// as ISO 8601 strings, matching the flat document layout of the store.
// swagger:model Subscriber
type Subscriber struct {
	Key        string `json:"key,omitempty"`
	Email      string `json:"email"`
	Subscribed bool   `json:"subscribed"`
	CreatedAt  string `json:"created_at,omitempty"`
	UpdatedAt  string `json:"updated_at,omitempty"`
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	Source     string `json:"source,omitempty"`
}

// SubscriberUpdate is a partial update. Only non-nil fields are applied.
type SubscriberUpdate struct {
	Email      *string `json:"email,omitempty"`
	Subscribed *bool   `json:"subscribed,omitempty"`
	FirstName  *string `json:"first_name,omitempty"`
	LastName   *string `json:"last_name,omitempty"`
	Source     *string `json:"source,omitempty"`
}

// IngestResult summarizes a bulk email upload.
type IngestResult struct {
	Accepted      int `json:"accepted"`
	Skipped       int `json:"skipped"`
	Batches       int `json:"batches"`
	FailedBatches int `json:"failed_batches"`
}

// SubscriberService defines the business logic for subscriber management.
type SubscriberService interface {
	Create(ctx context.Context, sub *Subscriber) (*Subscriber, error)
	GetAll(ctx context.Context) ([]*Subscriber, error)
	GetByEmail(ctx context.Context, email string) (*Subscriber, error)
	Update(ctx context.Context, email string, update *SubscriberUpdate) (*Subscriber, error)
	Delete(ctx context.Context, email string) error
	// BulkIngest reads newline-delimited addresses, validates each line, and
	// writes accepted subscribers to the store in fixed-size batches. Invalid
	// lines are skipped, failed batches do not stop later batches.
	BulkIngest(ctx context.Context, r io.Reader) (*IngestResult, error)
}
