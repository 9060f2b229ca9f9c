package domain

import (
	"context"
	"errors"
)

// ErrEmailListNotFound is returned when no list exists under the given name.
var ErrEmailListNotFound = errors.New("email list not found")

// EmailList represents a named mailing list. Name doubles as the store key,
// so it is effectively unique; creating a list with an existing name
// overwrites it.
// swagger:model EmailList
type EmailList struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// EmailListUpdate is a partial update. Only non-nil fields are applied.
type EmailListUpdate struct {
	Description *string `json:"description,omitempty"`
}

// EmailListService defines the business logic for email list management.
type EmailListService interface {
	Create(ctx context.Context, list *EmailList) (*EmailList, error)
	GetAll(ctx context.Context) ([]*EmailList, error)
	GetByName(ctx context.Context, name string) (*EmailList, error)
	Update(ctx context.Context, name string, update *EmailListUpdate) (*EmailList, error)
	Delete(ctx context.Context, name string) error
}
