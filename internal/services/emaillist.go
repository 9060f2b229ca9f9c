package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Balogunolalere/campainProj/internal/domain"
)

type emailListService struct {
	store domain.Store
}

// NewEmailListService creates an EmailListService backed by the given store.
func NewEmailListService(store domain.Store) domain.EmailListService {
	return &emailListService{store: store}
}

// Create stores the list under its name. Creating a list with an existing
// name overwrites it; the store key is the name itself.
func (s *emailListService) Create(ctx context.Context, list *domain.EmailList) (*domain.EmailList, error) {
	list.CreatedAt = time.Now().Format(time.RFC3339)
	list.UpdatedAt = ""

	rec, err := domain.ToRecord(list)
	if err != nil {
		return nil, fmt.Errorf("failed to encode email list: %w", err)
	}
	stored, err := s.store.Put(ctx, domain.CollectionEmailLists, list.Name, rec)
	if err != nil {
		return nil, fmt.Errorf("failed to store email list: %w", err)
	}
	return decodeEmailList(stored)
}

func (s *emailListService) GetAll(ctx context.Context) ([]*domain.EmailList, error) {
	recs, err := s.store.Fetch(ctx, domain.CollectionEmailLists, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch email lists: %w", err)
	}
	lists := make([]*domain.EmailList, 0, len(recs))
	for _, rec := range recs {
		list, err := decodeEmailList(rec)
		if err != nil {
			return nil, err
		}
		lists = append(lists, list)
	}
	return lists, nil
}

func (s *emailListService) GetByName(ctx context.Context, name string) (*domain.EmailList, error) {
	rec, err := s.getRecord(ctx, name)
	if err != nil {
		return nil, err
	}
	return decodeEmailList(rec)
}

func (s *emailListService) Update(ctx context.Context, name string, update *domain.EmailListUpdate) (*domain.EmailList, error) {
	rec, err := s.getRecord(ctx, name)
	if err != nil {
		return nil, err
	}
	if update.Description != nil {
		rec["description"] = *update.Description
	}
	rec["updated_at"] = time.Now().Format(time.RFC3339)

	stored, err := s.store.Put(ctx, domain.CollectionEmailLists, name, rec)
	if err != nil {
		return nil, fmt.Errorf("failed to update email list: %w", err)
	}
	return decodeEmailList(stored)
}

func (s *emailListService) Delete(ctx context.Context, name string) error {
	if _, err := s.getRecord(ctx, name); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, domain.CollectionEmailLists, name); err != nil {
		return fmt.Errorf("failed to delete email list: %w", err)
	}
	return nil
}

func (s *emailListService) getRecord(ctx context.Context, name string) (domain.Record, error) {
	rec, err := s.store.Get(ctx, domain.CollectionEmailLists, name)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.ErrEmailListNotFound
		}
		return nil, fmt.Errorf("failed to get email list: %w", err)
	}
	return rec, nil
}

func decodeEmailList(rec domain.Record) (*domain.EmailList, error) {
	list := &domain.EmailList{}
	if err := domain.FromRecord(rec, list); err != nil {
		return nil, fmt.Errorf("failed to decode email list: %w", err)
	}
	return list, nil
}
