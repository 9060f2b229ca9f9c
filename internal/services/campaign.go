package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Balogunolalere/campainProj/internal/domain"
	"github.com/Balogunolalere/campainProj/internal/metrics"
)

type campaignService struct {
	store  domain.Store
	mailer domain.Mailer
	logger *slog.Logger
}

// NewCampaignService creates a CampaignService backed by the given store and
// mail transport.
func NewCampaignService(store domain.Store, mailer domain.Mailer, logger *slog.Logger) domain.CampaignService {
	if logger == nil {
		logger = slog.Default()
	}
	return &campaignService{store: store, mailer: mailer, logger: logger}
}

func (s *campaignService) Create(ctx context.Context, c *domain.Campaign) (*domain.Campaign, error) {
	if c.Status == "" {
		c.Status = domain.StatusDraft
	}
	if !domain.ValidStatus(c.Status) {
		return nil, domain.ErrInvalidStatus
	}
	existing, err := s.store.Fetch(ctx, domain.CollectionCampaigns, domain.Filter{"subject": c.Subject})
	if err != nil {
		return nil, fmt.Errorf("failed to check existing campaign: %w", err)
	}
	if len(existing) > 0 {
		return nil, domain.ErrDuplicateSubject
	}

	c.Key = uuid.NewString()
	c.CreatedAt = time.Now().Format(time.RFC3339)
	c.UpdatedAt = ""
	if c.ListIDs == nil {
		c.ListIDs = []string{}
	}

	rec, err := domain.ToRecord(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode campaign: %w", err)
	}
	stored, err := s.store.Put(ctx, domain.CollectionCampaigns, c.Key, rec)
	if err != nil {
		return nil, fmt.Errorf("failed to store campaign: %w", err)
	}
	return decodeCampaign(stored)
}

func (s *campaignService) GetAll(ctx context.Context) ([]*domain.Campaign, error) {
	recs, err := s.store.Fetch(ctx, domain.CollectionCampaigns, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch campaigns: %w", err)
	}
	campaigns := make([]*domain.Campaign, 0, len(recs))
	for _, rec := range recs {
		c, err := decodeCampaign(rec)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, nil
}

func (s *campaignService) GetByKey(ctx context.Context, key string) (*domain.Campaign, error) {
	rec, err := s.getRecord(ctx, key)
	if err != nil {
		return nil, err
	}
	return decodeCampaign(rec)
}

func (s *campaignService) Update(ctx context.Context, key string, update *domain.CampaignUpdate) (*domain.Campaign, error) {
	rec, err := s.getRecord(ctx, key)
	if err != nil {
		return nil, err
	}

	// Merge only the fields present in the update payload. Status values are
	// checked against the enum but transitions are not enforced.
	if update.Subject != nil {
		rec["subject"] = *update.Subject
	}
	if update.Content != nil {
		rec["content"] = *update.Content
	}
	if update.ListIDs != nil {
		rec["list_ids"] = *update.ListIDs
	}
	if update.Status != nil {
		if !domain.ValidStatus(*update.Status) {
			return nil, domain.ErrInvalidStatus
		}
		rec["status"] = *update.Status
	}
	if update.ScheduledAt != nil {
		rec["scheduled_at"] = *update.ScheduledAt
	}
	if update.SentAt != nil {
		rec["sent_at"] = *update.SentAt
	}
	if update.SenderID != nil {
		rec["sender_id"] = *update.SenderID
	}
	rec["updated_at"] = time.Now().Format(time.RFC3339)

	stored, err := s.store.Put(ctx, domain.CollectionCampaigns, key, rec)
	if err != nil {
		return nil, fmt.Errorf("failed to update campaign: %w", err)
	}
	return decodeCampaign(stored)
}

func (s *campaignService) Delete(ctx context.Context, key string) error {
	if _, err := s.getRecord(ctx, key); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, domain.CollectionCampaigns, key); err != nil {
		return fmt.Errorf("failed to delete campaign: %w", err)
	}
	return nil
}

// Dispatch sends the campaign to the entire subscriber collection, one
// transactional email per subscriber. A failed send is logged and counted but
// does not abort the remaining recipients.
func (s *campaignService) Dispatch(ctx context.Context, key string) (*domain.DispatchResult, error) {
	campaign, err := s.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	recs, err := s.store.Fetch(ctx, domain.CollectionSubscribers, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch subscribers: %w", err)
	}

	result := &domain.DispatchResult{}
	for _, rec := range recs {
		email, _ := rec["email"].(string)
		result.Attempted++
		if err := s.mailer.Send(email, campaign.Subject, campaign.Content, ""); err != nil {
			s.logger.Error("failed to send campaign email", "campaign", key, "to", email, "err", err)
			metrics.EmailsFailedTotal.Inc()
			result.Failed++
			continue
		}
		metrics.EmailsSentTotal.Inc()
	}

	s.logger.Info("campaign dispatched", "campaign", key, "attempted", result.Attempted, "failed", result.Failed)
	return result, nil
}

func (s *campaignService) getRecord(ctx context.Context, key string) (domain.Record, error) {
	rec, err := s.store.Get(ctx, domain.CollectionCampaigns, key)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.ErrCampaignNotFound
		}
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}
	return rec, nil
}

func decodeCampaign(rec domain.Record) (*domain.Campaign, error) {
	c := &domain.Campaign{}
	if err := domain.FromRecord(rec, c); err != nil {
		return nil, fmt.Errorf("failed to decode campaign: %w", err)
	}
	return c, nil
}
