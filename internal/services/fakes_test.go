package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/Balogunolalere/campainProj/internal/domain"
)

// fakeStore implements domain.Store for service tests. It keeps collections
// in memory and records every PutMany call so batching behavior can be
// asserted.
type fakeStore struct {
	mu          sync.Mutex
	collections map[string]map[string]domain.Record

	putManyCalls [][]domain.Record
	putManyErrs  map[int]error // call index -> error to return
	fetchErr     error
	putErr       error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		collections: make(map[string]map[string]domain.Record),
		putManyErrs: make(map[int]error),
	}
}

func (f *fakeStore) collection(name string) map[string]domain.Record {
	if f.collections[name] == nil {
		f.collections[name] = make(map[string]domain.Record)
	}
	return f.collections[name]
}

func copyRecord(rec domain.Record) domain.Record {
	cp := make(domain.Record, len(rec))
	for k, v := range rec {
		cp[k] = v
	}
	return cp
}

func (f *fakeStore) Get(ctx context.Context, collection, key string) (domain.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.collection(collection)[key]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return copyRecord(rec), nil
}

func (f *fakeStore) Fetch(ctx context.Context, collection string, filter domain.Filter) ([]domain.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	var recs []domain.Record
	for _, rec := range f.collection(collection) {
		matched := true
		for field, want := range filter {
			if rec[field] != want {
				matched = false
				break
			}
		}
		if matched {
			recs = append(recs, copyRecord(rec))
		}
	}
	return recs, nil
}

func (f *fakeStore) Put(ctx context.Context, collection, key string, rec domain.Record) (domain.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.putErr != nil {
		return nil, f.putErr
	}
	cp := copyRecord(rec)
	cp["key"] = key
	f.collection(collection)[key] = cp
	return copyRecord(cp), nil
}

func (f *fakeStore) PutMany(ctx context.Context, collection string, recs []domain.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	call := len(f.putManyCalls)
	f.putManyCalls = append(f.putManyCalls, recs)
	if err, ok := f.putManyErrs[call]; ok {
		return err
	}
	for _, rec := range recs {
		key, ok := rec["key"].(string)
		if !ok || key == "" {
			return fmt.Errorf("record missing key")
		}
		f.collection(collection)[key] = copyRecord(rec)
	}
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, collection, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.collection(collection), key)
	return nil
}

func (f *fakeStore) size(collection string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.collection(collection))
}

// fakeMailer implements domain.Mailer for dispatch tests.
type fakeMailer struct {
	mu      sync.Mutex
	sent    []sentEmail
	failFor map[string]error // recipient -> error
}

type sentEmail struct {
	to      string
	subject string
	html    string
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{failFor: make(map[string]error)}
}

func (f *fakeMailer) Send(to, subject, html, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.failFor[to]; ok {
		return err
	}
	f.sent = append(f.sent, sentEmail{to: to, subject: subject, html: html})
	return nil
}
