package services

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Balogunolalere/campainProj/internal/domain"
	"github.com/Balogunolalere/campainProj/internal/metrics"
)

// ingestBatchSize is the number of records written per PutMany call during
// bulk ingestion.
const ingestBatchSize = 25

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type subscriberService struct {
	store  domain.Store
	logger *slog.Logger
}

// NewSubscriberService creates a SubscriberService backed by the given store.
func NewSubscriberService(store domain.Store, logger *slog.Logger) domain.SubscriberService {
	if logger == nil {
		logger = slog.Default()
	}
	return &subscriberService{store: store, logger: logger}
}

func (s *subscriberService) Create(ctx context.Context, sub *domain.Subscriber) (*domain.Subscriber, error) {
	email := strings.TrimSpace(strings.ToLower(sub.Email))
	if !emailRegexp.MatchString(email) {
		return nil, domain.ErrInvalidEmail
	}
	existing, err := s.store.Fetch(ctx, domain.CollectionSubscribers, domain.Filter{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to check existing subscriber: %w", err)
	}
	if len(existing) > 0 {
		return nil, domain.ErrDuplicateEmail
	}

	sub.Key = uuid.NewString()
	sub.Email = email
	sub.Subscribed = true
	sub.CreatedAt = time.Now().Format(time.RFC3339)
	sub.UpdatedAt = ""

	rec, err := domain.ToRecord(sub)
	if err != nil {
		return nil, fmt.Errorf("failed to encode subscriber: %w", err)
	}
	stored, err := s.store.Put(ctx, domain.CollectionSubscribers, sub.Key, rec)
	if err != nil {
		return nil, fmt.Errorf("failed to store subscriber: %w", err)
	}
	return decodeSubscriber(stored)
}

func (s *subscriberService) GetAll(ctx context.Context) ([]*domain.Subscriber, error) {
	recs, err := s.store.Fetch(ctx, domain.CollectionSubscribers, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch subscribers: %w", err)
	}
	subs := make([]*domain.Subscriber, 0, len(recs))
	for _, rec := range recs {
		sub, err := decodeSubscriber(rec)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

func (s *subscriberService) GetByEmail(ctx context.Context, email string) (*domain.Subscriber, error) {
	rec, err := s.fetchByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return decodeSubscriber(rec)
}

func (s *subscriberService) Update(ctx context.Context, email string, update *domain.SubscriberUpdate) (*domain.Subscriber, error) {
	rec, err := s.fetchByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	// Merge only the fields present in the update payload.
	if update.Email != nil {
		rec["email"] = strings.TrimSpace(strings.ToLower(*update.Email))
	}
	if update.Subscribed != nil {
		rec["subscribed"] = *update.Subscribed
	}
	if update.FirstName != nil {
		rec["first_name"] = *update.FirstName
	}
	if update.LastName != nil {
		rec["last_name"] = *update.LastName
	}
	if update.Source != nil {
		rec["source"] = *update.Source
	}
	rec["updated_at"] = time.Now().Format(time.RFC3339)

	key, _ := rec["key"].(string)
	stored, err := s.store.Put(ctx, domain.CollectionSubscribers, key, rec)
	if err != nil {
		return nil, fmt.Errorf("failed to update subscriber: %w", err)
	}
	return decodeSubscriber(stored)
}

func (s *subscriberService) Delete(ctx context.Context, email string) error {
	rec, err := s.fetchByEmail(ctx, email)
	if err != nil {
		return err
	}
	key, _ := rec["key"].(string)
	if err := s.store.Delete(ctx, domain.CollectionSubscribers, key); err != nil {
		return fmt.Errorf("failed to delete subscriber: %w", err)
	}
	return nil
}

// BulkIngest parses a newline-delimited address blob. Valid lines become
// subscribers with a fresh key and a date-precision created_at stamp; invalid
// lines are logged and skipped. Accepted records are written in batches of
// ingestBatchSize, and a failed batch does not stop later batches.
func (s *subscriberService) BulkIngest(ctx context.Context, r io.Reader) (*domain.IngestResult, error) {
	result := &domain.IngestResult{}
	var batch []domain.Record

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		email := strings.ToLower(line)
		if !emailRegexp.MatchString(email) {
			s.logger.Warn("skipping invalid email", "email", line)
			result.Skipped++
			continue
		}
		batch = append(batch, domain.Record{
			"key":        uuid.NewString(),
			"email":      email,
			"subscribed": true,
			"created_at": time.Now().Format("2006-01-02"),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	result.Accepted = len(batch)
	if result.Accepted == 0 {
		return result, nil
	}

	for start := 0; start < len(batch); start += ingestBatchSize {
		end := start + ingestBatchSize
		if end > len(batch) {
			end = len(batch)
		}
		if err := s.store.PutMany(ctx, domain.CollectionSubscribers, batch[start:end]); err != nil {
			s.logger.Error("failed to write upload batch", "start", start, "size", end-start, "err", err)
			result.FailedBatches++
			metrics.IngestBatchesTotal.WithLabelValues("failed").Inc()
			continue
		}
		result.Batches++
		metrics.IngestBatchesTotal.WithLabelValues("ok").Inc()
	}

	metrics.SubscribersIngestedTotal.Add(float64(result.Accepted))
	return result, nil
}

func (s *subscriberService) fetchByEmail(ctx context.Context, email string) (domain.Record, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	recs, err := s.store.Fetch(ctx, domain.CollectionSubscribers, domain.Filter{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch subscriber: %w", err)
	}
	if len(recs) == 0 {
		return nil, domain.ErrSubscriberNotFound
	}
	return recs[0], nil
}

func decodeSubscriber(rec domain.Record) (*domain.Subscriber, error) {
	sub := &domain.Subscriber{}
	if err := domain.FromRecord(rec, sub); err != nil {
		return nil, fmt.Errorf("failed to decode subscriber: %w", err)
	}
	return sub, nil
}
