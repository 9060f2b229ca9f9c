package domain

import (
	"context"
	"errors"
)

// Sentinel errors for campaign operations.
var (
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrDuplicateSubject = errors.New("campaign with this subject already exists")
	ErrInvalidStatus    = errors.New("invalid campaign status")
)

// Campaign statuses. Transitions are not enforced; updates may set any value.
const (
	StatusDraft     = "draft"
	StatusScheduled = "scheduled"
	StatusSent      = "sent"
)

// ValidStatus reports whether s is one of the enumerated campaign statuses.
func ValidStatus(s string) bool {
	return s == StatusDraft || s == StatusScheduled || s == StatusSent
}

// Campaign represents an email campaign. Subject is unique across the
// collection. ListIDs are free-text references with no referential check
// against the email list collection. ScheduledAt and SentAt are stored but
// not acted upon by the system.
// swagger:model Campaign
type Campaign struct {
	Key         string   `json:"key,omitempty"`
	Subject     string   `json:"subject"`
	Content     string   `json:"content"`
	ListIDs     []string `json:"list_ids"`
	Status      string   `json:"status"`
	CreatedAt   string   `json:"created_at,omitempty"`
	UpdatedAt   string   `json:"updated_at,omitempty"`
	ScheduledAt string   `json:"scheduled_at,omitempty"`
	SentAt      string   `json:"sent_at,omitempty"`
	SenderID    string   `json:"sender_id,omitempty"`
}

// CampaignUpdate is a partial update. Only non-nil fields are applied.
type CampaignUpdate struct {
	Subject     *string   `json:"subject,omitempty"`
	Content     *string   `json:"content,omitempty"`
	ListIDs     *[]string `json:"list_ids,omitempty"`
	Status      *string   `json:"status,omitempty"`
	ScheduledAt *string   `json:"scheduled_at,omitempty"`
	SentAt      *string   `json:"sent_at,omitempty"`
	SenderID    *string   `json:"sender_id,omitempty"`
}

// DispatchResult summarizes a campaign send. Failed counts recipients whose
// send attempt errored; the dispatch as a whole still succeeds.
type DispatchResult struct {
	Attempted int `json:"attempted"`
	Failed    int `json:"failed"`
}

// CampaignService defines the business logic for campaign management and
// dispatch.
type CampaignService interface {
	Create(ctx context.Context, c *Campaign) (*Campaign, error)
	GetAll(ctx context.Context) ([]*Campaign, error)
	GetByKey(ctx context.Context, key string) (*Campaign, error)
	Update(ctx context.Context, key string, update *CampaignUpdate) (*Campaign, error)
	Delete(ctx context.Context, key string) error
	// Dispatch sends the campaign to every subscriber in the store. A failure
	// for one recipient is recorded and does not abort the remaining sends.
	Dispatch(ctx context.Context, key string) (*DispatchResult, error)
}
