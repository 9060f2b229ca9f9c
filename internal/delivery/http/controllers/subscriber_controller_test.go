package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Balogunolalere/campainProj/internal/delivery/http/helpers"
	"github.com/Balogunolalere/campainProj/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// fakeSubscriberService implements domain.SubscriberService for handler tests.
type fakeSubscriberService struct {
	createSub    *domain.Subscriber
	createErr    error
	getAllSubs   []*domain.Subscriber
	getAllErr    error
	getSub       *domain.Subscriber
	getErr       error
	updateSub    *domain.Subscriber
	updateErr    error
	deleteErr    error
	ingestResult *domain.IngestResult
	ingestErr    error
	ingestedBlob string
}

func (f *fakeSubscriberService) Create(ctx context.Context, sub *domain.Subscriber) (*domain.Subscriber, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createSub, nil
}

func (f *fakeSubscriberService) GetAll(ctx context.Context) ([]*domain.Subscriber, error) {
	if f.getAllErr != nil {
		return nil, f.getAllErr
	}
	return f.getAllSubs, nil
}

func (f *fakeSubscriberService) GetByEmail(ctx context.Context, email string) (*domain.Subscriber, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getSub, nil
}

func (f *fakeSubscriberService) Update(ctx context.Context, email string, update *domain.SubscriberUpdate) (*domain.Subscriber, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateSub, nil
}

func (f *fakeSubscriberService) Delete(ctx context.Context, email string) error {
	return f.deleteErr
}

func (f *fakeSubscriberService) BulkIngest(ctx context.Context, r io.Reader) (*domain.IngestResult, error) {
	b, _ := io.ReadAll(r)
	f.ingestedBlob = string(b)
	if f.ingestErr != nil {
		return nil, f.ingestErr
	}
	return f.ingestResult, nil
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) helpers.APIResponse {
	t.Helper()
	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	return envelope
}

func TestSubscriberController_Create(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		fakeSub      *domain.Subscriber
		fakeErr      error
		wantStatus   int
		wantBodyCode string
	}{
		{
			name:       "success",
			body:       `{"email":"alice@example.com","subscribed":true}`,
			fakeSub:    &domain.Subscriber{Key: "sub-1", Email: "alice@example.com", Subscribed: true},
			wantStatus: http.StatusOK,
		},
		{
			name:         "missing email",
			body:         `{"subscribed":true}`,
			wantStatus:   http.StatusBadRequest,
			wantBodyCode: helpers.ErrCodeBadRequest,
		},
		{
			name:         "invalid email format",
			body:         `{"email":"not-an-email"}`,
			wantStatus:   http.StatusBadRequest,
			wantBodyCode: helpers.ErrCodeBadRequest,
		},
		{
			name:         "unknown field rejected",
			body:         `{"email":"alice@example.com","admin":true}`,
			wantStatus:   http.StatusBadRequest,
			wantBodyCode: helpers.ErrCodeBadRequest,
		},
		{
			name:         "duplicate email",
			body:         `{"email":"alice@example.com"}`,
			fakeErr:      domain.ErrDuplicateEmail,
			wantStatus:   http.StatusBadRequest,
			wantBodyCode: helpers.ErrCodeConflict,
		},
		{
			name:         "service error",
			body:         `{"email":"alice@example.com"}`,
			fakeErr:      assert.AnError,
			wantStatus:   http.StatusInternalServerError,
			wantBodyCode: helpers.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeSubscriberService{createSub: tt.fakeSub, createErr: tt.fakeErr}
			ctrl := NewSubscriberController(testLogger(), fake)

			req := httptest.NewRequest(http.MethodPost, "http://test/subscriber/", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			ctrl.Create(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			envelope := decodeEnvelope(t, rr)
			if tt.wantStatus == http.StatusOK {
				require.Nil(t, envelope.Error)
				dataBytes, err := json.Marshal(envelope.Data)
				require.NoError(t, err)
				var sub domain.Subscriber
				require.NoError(t, json.Unmarshal(dataBytes, &sub))
				assert.Equal(t, "alice@example.com", sub.Email)
			} else {
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantBodyCode, envelope.Error.Code)
			}
		})
	}
}

func TestSubscriberController_Get(t *testing.T) {
	tests := []struct {
		name         string
		fakeSub      *domain.Subscriber
		fakeErr      error
		wantStatus   int
		wantBodyCode string
	}{
		{
			name:       "success",
			fakeSub:    &domain.Subscriber{Key: "sub-1", Email: "alice@example.com"},
			wantStatus: http.StatusOK,
		},
		{
			name:         "not found",
			fakeErr:      domain.ErrSubscriberNotFound,
			wantStatus:   http.StatusNotFound,
			wantBodyCode: helpers.ErrCodeNotFound,
		},
		{
			name:         "service error",
			fakeErr:      assert.AnError,
			wantStatus:   http.StatusInternalServerError,
			wantBodyCode: helpers.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeSubscriberService{getSub: tt.fakeSub, getErr: tt.fakeErr}
			ctrl := NewSubscriberController(testLogger(), fake)

			req := httptest.NewRequest(http.MethodGet, "http://test/subscriber/alice@example.com", nil)
			req.SetPathValue("email", "alice@example.com")
			rr := httptest.NewRecorder()

			ctrl.Get(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			envelope := decodeEnvelope(t, rr)
			if tt.wantBodyCode != "" {
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantBodyCode, envelope.Error.Code)
			}
		})
	}
}

func TestSubscriberController_Update(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		fakeSub      *domain.Subscriber
		fakeErr      error
		wantStatus   int
		wantBodyCode string
	}{
		{
			name:       "success",
			body:       `{"subscribed":false}`,
			fakeSub:    &domain.Subscriber{Key: "sub-1", Email: "alice@example.com", Subscribed: false},
			wantStatus: http.StatusOK,
		},
		{
			name:         "invalid email in payload",
			body:         `{"email":"nope"}`,
			wantStatus:   http.StatusBadRequest,
			wantBodyCode: helpers.ErrCodeBadRequest,
		},
		{
			name:         "not found",
			body:         `{"subscribed":false}`,
			fakeErr:      domain.ErrSubscriberNotFound,
			wantStatus:   http.StatusNotFound,
			wantBodyCode: helpers.ErrCodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeSubscriberService{updateSub: tt.fakeSub, updateErr: tt.fakeErr}
			ctrl := NewSubscriberController(testLogger(), fake)

			req := httptest.NewRequest(http.MethodPatch, "http://test/subscriber/alice@example.com", strings.NewReader(tt.body))
			req.SetPathValue("email", "alice@example.com")
			rr := httptest.NewRecorder()

			ctrl.Update(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestSubscriberController_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := NewSubscriberController(testLogger(), &fakeSubscriberService{})

		req := httptest.NewRequest(http.MethodDelete, "http://test/subscriber/alice@example.com", nil)
		req.SetPathValue("email", "alice@example.com")
		rr := httptest.NewRecorder()

		ctrl.Delete(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := NewSubscriberController(testLogger(), &fakeSubscriberService{deleteErr: domain.ErrSubscriberNotFound})

		req := httptest.NewRequest(http.MethodDelete, "http://test/subscriber/alice@example.com", nil)
		req.SetPathValue("email", "alice@example.com")
		rr := httptest.NewRecorder()

		ctrl.Delete(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func multipartUpload(t *testing.T, field, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, "emails.txt")
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestSubscriberController_UploadEmails(t *testing.T) {
	t.Run("success returns 201 with summary", func(t *testing.T) {
		fake := &fakeSubscriberService{
			ingestResult: &domain.IngestResult{Accepted: 2, Skipped: 1, Batches: 1},
		}
		ctrl := NewSubscriberController(testLogger(), fake)

		body, contentType := multipartUpload(t, "file", "alice@example.com\nbad\nbob@example.com\n")
		req := httptest.NewRequest(http.MethodPost, "http://test/subscriber/upload_emails", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()

		ctrl.UploadEmails(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "alice@example.com\nbad\nbob@example.com\n", fake.ingestedBlob)

		envelope := decodeEnvelope(t, rr)
		dataBytes, err := json.Marshal(envelope.Data)
		require.NoError(t, err)
		var resp UploadEmailsResponse
		require.NoError(t, json.Unmarshal(dataBytes, &resp))
		assert.Equal(t, "Emails uploaded successfully", resp.Message)
		assert.Equal(t, 2, resp.Accepted)
	})

	t.Run("no valid emails reported distinctly", func(t *testing.T) {
		fake := &fakeSubscriberService{ingestResult: &domain.IngestResult{Skipped: 3}}
		ctrl := NewSubscriberController(testLogger(), fake)

		body, contentType := multipartUpload(t, "file", "bad\nworse\nworst\n")
		req := httptest.NewRequest(http.MethodPost, "http://test/subscriber/upload_emails", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()

		ctrl.UploadEmails(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		envelope := decodeEnvelope(t, rr)
		dataBytes, err := json.Marshal(envelope.Data)
		require.NoError(t, err)
		var resp UploadEmailsResponse
		require.NoError(t, json.Unmarshal(dataBytes, &resp))
		assert.Equal(t, "No valid emails found in the file", resp.Message)
		assert.Equal(t, 0, resp.Accepted)
	})

	t.Run("missing file field", func(t *testing.T) {
		ctrl := NewSubscriberController(testLogger(), &fakeSubscriberService{})

		req := httptest.NewRequest(http.MethodPost, "http://test/subscriber/upload_emails", strings.NewReader("plain body"))
		rr := httptest.NewRecorder()

		ctrl.UploadEmails(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
