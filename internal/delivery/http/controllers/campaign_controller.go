package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Balogunolalere/campainProj/internal/delivery/http/helpers"
	"github.com/Balogunolalere/campainProj/internal/domain"
)

// CreateCampaignRequest is the request body for POST /campaign/
type CreateCampaignRequest struct {
	Subject     string   `json:"subject"`
	Content     string   `json:"content"`
	ListIDs     []string `json:"list_ids"`
	Status      string   `json:"status"`
	ScheduledAt string   `json:"scheduled_at"`
	SenderID    string   `json:"sender_id"`
}

// Validate implements Validator.
func (c CreateCampaignRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Subject) == "" {
		errs = append(errs, "subject is required")
	}
	if strings.TrimSpace(c.Content) == "" {
		errs = append(errs, "content is required")
	}
	if c.Status != "" && !domain.ValidStatus(c.Status) {
		errs = append(errs, "status must be one of \"draft\", \"scheduled\", \"sent\"")
	}
	return errs
}

// UpdateCampaignRequest is the request body for PATCH /campaign/{key}.
// All fields are optional; only fields present in the payload are applied.
type UpdateCampaignRequest struct {
	Subject     *string   `json:"subject"`
	Content     *string   `json:"content"`
	ListIDs     *[]string `json:"list_ids"`
	Status      *string   `json:"status"`
	ScheduledAt *string   `json:"scheduled_at"`
	SentAt      *string   `json:"sent_at"`
	SenderID    *string   `json:"sender_id"`
}

// Validate implements Validator.
func (u UpdateCampaignRequest) Validate() []string {
	var errs []string
	if u.Status != nil && !domain.ValidStatus(*u.Status) {
		errs = append(errs, "status must be one of \"draft\", \"scheduled\", \"sent\"")
	}
	return errs
}

// CampaignController handles campaign CRUD and dispatch endpoints.
type CampaignController struct {
	Logger  *slog.Logger
	Service domain.CampaignService
}

// NewCampaignController creates a CampaignController with the given logger and service.
func NewCampaignController(logger *slog.Logger, svc domain.CampaignService) *CampaignController {
	return &CampaignController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Create a new campaign
// @Description Create a campaign with a unique subject. Status defaults to draft.
// @Tags campaigns
// @Accept json
// @Produce json
// @Param body body CreateCampaignRequest true "Campaign data"
// @Success 200 {object} helpers.APIResponse "data contains the created campaign"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /campaign/ [post]
func (c *CampaignController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCampaignRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	campaign, err := c.Service.Create(r.Context(), &domain.Campaign{
		Subject:     req.Subject,
		Content:     req.Content,
		ListIDs:     req.ListIDs,
		Status:      req.Status,
		ScheduledAt: req.ScheduledAt,
		SenderID:    req.SenderID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateSubject) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeConflict, err.Error())
			return
		}
		if errors.Is(err, domain.ErrInvalidStatus) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, campaign)
}

// List godoc
// @Summary List all campaigns
// @Tags campaigns
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the full campaign collection"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /campaign/ [get]
func (c *CampaignController) List(w http.ResponseWriter, r *http.Request) {
	campaigns, err := c.Service.GetAll(r.Context())
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, campaigns)
}

// Get godoc
// @Summary Get a campaign by key
// @Tags campaigns
// @Produce json
// @Param key path string true "Campaign key"
// @Success 200 {object} helpers.APIResponse "data contains the campaign"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /campaign/{key} [get]
func (c *CampaignController) Get(w http.ResponseWriter, r *http.Request) {
	campaign, err := c.Service.GetByKey(r.Context(), r.PathValue("key"))
	if err != nil {
		if errors.Is(err, domain.ErrCampaignNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, err.Error())
			return
		}
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, campaign)
}

// Update godoc
// @Summary Partially update a campaign
// @Description Only fields present in the payload are applied; updated_at is always refreshed. Status transitions are not enforced.
// @Tags campaigns
// @Accept json
// @Produce json
// @Param key path string true "Campaign key"
// @Param body body UpdateCampaignRequest true "Fields to update"
// @Success 200 {object} helpers.APIResponse "data contains the updated campaign"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /campaign/{key} [patch]
func (c *CampaignController) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateCampaignRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	campaign, err := c.Service.Update(r.Context(), r.PathValue("key"), &domain.CampaignUpdate{
		Subject:     req.Subject,
		Content:     req.Content,
		ListIDs:     req.ListIDs,
		Status:      req.Status,
		ScheduledAt: req.ScheduledAt,
		SentAt:      req.SentAt,
		SenderID:    req.SenderID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrCampaignNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, err.Error())
			return
		}
		if errors.Is(err, domain.ErrInvalidStatus) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, campaign)
}

// Delete godoc
// @Summary Delete a campaign by key
// @Tags campaigns
// @Produce json
// @Param key path string true "Campaign key"
// @Success 200 {object} helpers.APIResponse "data contains a confirmation message"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /campaign/{key} [delete]
func (c *CampaignController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Delete(r.Context(), r.PathValue("key")); err != nil {
		if errors.Is(err, domain.ErrCampaignNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, err.Error())
			return
		}
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, helpers.MessageResponse{Message: "Campaign deleted"})
}

// Send godoc
// @Summary Send a campaign to all subscribers
// @Description Attempts one transactional email per subscriber. Individual send failures are logged and do not fail the request.
// @Tags campaigns
// @Produce json
// @Param campaign_id query string true "Campaign key"
// @Success 200 {object} helpers.APIResponse "data contains a confirmation message"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /send_email [post]
func (c *CampaignController) Send(w http.ResponseWriter, r *http.Request) {
	campaignID := r.URL.Query().Get("campaign_id")
	if campaignID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "campaign_id is required")
		return
	}
	if _, err := c.Service.Dispatch(r.Context(), campaignID); err != nil {
		if errors.Is(err, domain.ErrCampaignNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, err.Error())
			return
		}
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, helpers.MessageResponse{Message: "Emails sent successfully"})
}

func (c *CampaignController) fail(w http.ResponseWriter, r *http.Request, err error) {
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
}
