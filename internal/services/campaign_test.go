package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Balogunolalere/campainProj/internal/domain"
)

func TestCampaignService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success defaults status to draft", func(t *testing.T) {
		store := newFakeStore()
		svc := NewCampaignService(store, newFakeMailer(), testLogger())

		c, err := svc.Create(ctx, &domain.Campaign{Subject: "Spring Sale", Content: "<p>Hi</p>"})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusDraft, c.Status)
		assert.NotNil(t, c.ListIDs)
		_, err = uuid.Parse(c.Key)
		assert.NoError(t, err)
		_, err = time.Parse(time.RFC3339, c.CreatedAt)
		assert.NoError(t, err)
	})

	t.Run("duplicate subject conflicts", func(t *testing.T) {
		store := newFakeStore()
		svc := NewCampaignService(store, newFakeMailer(), testLogger())

		_, err := svc.Create(ctx, &domain.Campaign{Subject: "Spring Sale", Content: "a"})
		require.NoError(t, err)

		_, err = svc.Create(ctx, &domain.Campaign{Subject: "Spring Sale", Content: "b"})
		assert.ErrorIs(t, err, domain.ErrDuplicateSubject)
		assert.Equal(t, 1, store.size(domain.CollectionCampaigns))
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		store := newFakeStore()
		svc := NewCampaignService(store, newFakeMailer(), testLogger())

		_, err := svc.Create(ctx, &domain.Campaign{Subject: "x", Content: "y", Status: "archived"})
		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
		assert.Equal(t, 0, store.size(domain.CollectionCampaigns))
	})
}

func TestCampaignService_GetByKey(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := NewCampaignService(store, newFakeMailer(), testLogger())

	_, err := svc.GetByKey(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrCampaignNotFound)

	created, err := svc.Create(ctx, &domain.Campaign{Subject: "Hello", Content: "World"})
	require.NoError(t, err)

	got, err := svc.GetByKey(ctx, created.Key)
	require.NoError(t, err)
	assert.Equal(t, "Hello", got.Subject)
}

func TestCampaignService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update touches only supplied fields", func(t *testing.T) {
		store := newFakeStore()
		svc := NewCampaignService(store, newFakeMailer(), testLogger())

		created, err := svc.Create(ctx, &domain.Campaign{
			Subject: "Spring Sale",
			Content: "old content",
			ListIDs: []string{"list-1"},
		})
		require.NoError(t, err)

		content := "new content"
		updated, err := svc.Update(ctx, created.Key, &domain.CampaignUpdate{Content: &content})
		require.NoError(t, err)

		assert.Equal(t, "new content", updated.Content)
		assert.Equal(t, "Spring Sale", updated.Subject)
		assert.Equal(t, []string{"list-1"}, updated.ListIDs)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)
		require.NotEmpty(t, updated.UpdatedAt)
		_, err = time.Parse(time.RFC3339, updated.UpdatedAt)
		assert.NoError(t, err)
	})

	t.Run("status may overwrite any other status", func(t *testing.T) {
		store := newFakeStore()
		svc := NewCampaignService(store, newFakeMailer(), testLogger())

		created, err := svc.Create(ctx, &domain.Campaign{Subject: "x", Content: "y", Status: domain.StatusSent})
		require.NoError(t, err)

		status := domain.StatusDraft
		updated, err := svc.Update(ctx, created.Key, &domain.CampaignUpdate{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusDraft, updated.Status)
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		store := newFakeStore()
		svc := NewCampaignService(store, newFakeMailer(), testLogger())

		created, err := svc.Create(ctx, &domain.Campaign{Subject: "x", Content: "y"})
		require.NoError(t, err)

		status := "paused"
		_, err = svc.Update(ctx, created.Key, &domain.CampaignUpdate{Status: &status})
		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	})

	t.Run("not found", func(t *testing.T) {
		store := newFakeStore()
		svc := NewCampaignService(store, newFakeMailer(), testLogger())

		subject := "x"
		_, err := svc.Update(ctx, "missing", &domain.CampaignUpdate{Subject: &subject})
		assert.ErrorIs(t, err, domain.ErrCampaignNotFound)
	})
}

func TestCampaignService_Delete(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := NewCampaignService(store, newFakeMailer(), testLogger())

	err := svc.Delete(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrCampaignNotFound)

	created, err := svc.Create(ctx, &domain.Campaign{Subject: "x", Content: "y"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.Key))
	assert.Equal(t, 0, store.size(domain.CollectionCampaigns))
}

func TestCampaignService_Dispatch(t *testing.T) {
	ctx := context.Background()

	seedSubscribers := func(t *testing.T, store *fakeStore, emails ...string) {
		t.Helper()
		subSvc := NewSubscriberService(store, testLogger())
		for _, email := range emails {
			_, err := subSvc.Create(ctx, &domain.Subscriber{Email: email})
			require.NoError(t, err)
		}
	}

	t.Run("unknown campaign sends zero messages", func(t *testing.T) {
		store := newFakeStore()
		mailer := newFakeMailer()
		svc := NewCampaignService(store, mailer, testLogger())
		seedSubscribers(t, store, "alice@example.com")

		_, err := svc.Dispatch(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrCampaignNotFound)
		assert.Empty(t, mailer.sent)
	})

	t.Run("sends one message per subscriber", func(t *testing.T) {
		store := newFakeStore()
		mailer := newFakeMailer()
		svc := NewCampaignService(store, mailer, testLogger())
		seedSubscribers(t, store, "alice@example.com", "bob@example.com", "carol@example.com")

		campaign, err := svc.Create(ctx, &domain.Campaign{Subject: "Spring Sale", Content: "<p>Hi</p>"})
		require.NoError(t, err)

		result, err := svc.Dispatch(ctx, campaign.Key)
		require.NoError(t, err)
		assert.Equal(t, 3, result.Attempted)
		assert.Equal(t, 0, result.Failed)
		require.Len(t, mailer.sent, 3)
		for _, msg := range mailer.sent {
			assert.Equal(t, "Spring Sale", msg.subject)
			assert.Equal(t, "<p>Hi</p>", msg.html)
		}
	})

	t.Run("one failing recipient does not abort the rest", func(t *testing.T) {
		store := newFakeStore()
		mailer := newFakeMailer()
		mailer.failFor["bob@example.com"] = assert.AnError
		svc := NewCampaignService(store, mailer, testLogger())
		seedSubscribers(t, store, "alice@example.com", "bob@example.com", "carol@example.com")

		campaign, err := svc.Create(ctx, &domain.Campaign{Subject: "x", Content: "y"})
		require.NoError(t, err)

		result, err := svc.Dispatch(ctx, campaign.Key)
		require.NoError(t, err)
		assert.Equal(t, 3, result.Attempted)
		assert.Equal(t, 1, result.Failed)
		assert.Len(t, mailer.sent, 2)
	})

	t.Run("empty subscriber collection", func(t *testing.T) {
		store := newFakeStore()
		mailer := newFakeMailer()
		svc := NewCampaignService(store, mailer, testLogger())

		campaign, err := svc.Create(ctx, &domain.Campaign{Subject: "x", Content: "y"})
		require.NoError(t, err)

		result, err := svc.Dispatch(ctx, campaign.Key)
		require.NoError(t, err)
		assert.Equal(t, 0, result.Attempted)
		assert.Empty(t, mailer.sent)
	})
}
