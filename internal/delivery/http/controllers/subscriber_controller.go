package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"github.com/Balogunolalere/campainProj/internal/delivery/http/helpers"
	"github.com/Balogunolalere/campainProj/internal/domain"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// CreateSubscriberRequest is the request body for POST /subscriber/
type CreateSubscriberRequest struct {
	Email      string `json:"email"`
	Subscribed bool   `json:"subscribed"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Source     string `json:"source"`
}

// Validate implements Validator.
func (c CreateSubscriberRequest) Validate() []string {
	var errs []string
	email := strings.TrimSpace(strings.ToLower(c.Email))
	if email == "" {
		errs = append(errs, "email is required")
	} else if !emailRegexp.MatchString(email) {
		errs = append(errs, "invalid email format")
	}
	return errs
}

// UpdateSubscriberRequest is the request body for PATCH /subscriber/{email}.
// All fields are optional; only fields present in the payload are applied.
type UpdateSubscriberRequest struct {
	Email      *string `json:"email"`
	Subscribed *bool   `json:"subscribed"`
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	Source     *string `json:"source"`
}

// Validate implements Validator.
func (u UpdateSubscriberRequest) Validate() []string {
	var errs []string
	if u.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*u.Email))
		if email == "" {
			errs = append(errs, "email cannot be empty")
		} else if !emailRegexp.MatchString(email) {
			errs = append(errs, "invalid email format")
		}
	}
	return errs
}

// UploadEmailsResponse is the data payload for POST /subscriber/upload_emails.
type UploadEmailsResponse struct {
	Message       string `json:"message"`
	Accepted      int    `json:"accepted"`
	Skipped       int    `json:"skipped"`
	Batches       int    `json:"batches"`
	FailedBatches int    `json:"failed_batches"`
}

// SubscriberController handles subscriber CRUD and bulk upload endpoints.
type SubscriberController struct {
	Logger  *slog.Logger
	Service domain.SubscriberService
}

// NewSubscriberController creates a SubscriberController with the given logger and service.
func NewSubscriberController(logger *slog.Logger, svc domain.SubscriberService) *SubscriberController {
	return &SubscriberController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Create a new subscriber
// @Description Create a subscriber with a unique email address. The subscriber is always created with subscribed=true.
// @Tags subscribers
// @Accept json
// @Produce json
// @Param body body CreateSubscriberRequest true "Subscriber data"
// @Success 200 {object} helpers.APIResponse "data contains the created subscriber"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /subscriber/ [post]
func (c *SubscriberController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSubscriberRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	sub, err := c.Service.Create(r.Context(), &domain.Subscriber{
		Email:      req.Email,
		Subscribed: req.Subscribed,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Source:     req.Source,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeConflict, err.Error())
			return
		}
		if errors.Is(err, domain.ErrInvalidEmail) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sub)
}

// List godoc
// @Summary List all subscribers
// @Tags subscribers
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the full subscriber collection"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /subscriber/ [get]
func (c *SubscriberController) List(w http.ResponseWriter, r *http.Request) {
	subs, err := c.Service.GetAll(r.Context())
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, subs)
}

// Get godoc
// @Summary Get a subscriber by email
// @Tags subscribers
// @Produce json
// @Param email path string true "Subscriber email"
// @Success 200 {object} helpers.APIResponse "data contains the subscriber"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /subscriber/{email} [get]
func (c *SubscriberController) Get(w http.ResponseWriter, r *http.Request) {
	sub, err := c.Service.GetByEmail(r.Context(), r.PathValue("email"))
	if err != nil {
		if errors.Is(err, domain.ErrSubscriberNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, err.Error())
			return
		}
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sub)
}

// Update godoc
// @Summary Partially update a subscriber
// @Description Only fields present in the payload are applied; updated_at is always refreshed.
// @Tags subscribers
// @Accept json
// @Produce json
// @Param email path string true "Subscriber email"
// @Param body body UpdateSubscriberRequest true "Fields to update"
// @Success 200 {object} helpers.APIResponse "data contains the updated subscriber"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /subscriber/{email} [patch]
func (c *SubscriberController) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateSubscriberRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	sub, err := c.Service.Update(r.Context(), r.PathValue("email"), &domain.SubscriberUpdate{
		Email:      req.Email,
		Subscribed: req.Subscribed,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Source:     req.Source,
	})
	if err != nil {
		if errors.Is(err, domain.ErrSubscriberNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, err.Error())
			return
		}
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sub)
}

// Delete godoc
// @Summary Delete a subscriber by email
// @Tags subscribers
// @Produce json
// @Param email path string true "Subscriber email"
// @Success 200 {object} helpers.APIResponse "data contains a confirmation message"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /subscriber/{email} [delete]
func (c *SubscriberController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Delete(r.Context(), r.PathValue("email")); err != nil {
		if errors.Is(err, domain.ErrSubscriberNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, err.Error())
			return
		}
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, helpers.MessageResponse{Message: "Subscriber deleted successfully"})
}

// UploadEmails godoc
// @Summary Bulk upload subscriber emails
// @Description Reads a newline-delimited TXT file of addresses and stores valid ones in batches of 25. Invalid lines are skipped.
// @Tags subscribers
// @Accept mpfd
// @Produce json
// @Param file formData file true "TXT file, one email per line"
// @Success 201 {object} helpers.APIResponse "data contains the upload summary"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /subscriber/upload_emails [post]
func (c *SubscriberController) UploadEmails(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "file field is required")
		return
	}
	defer file.Close()

	result, err := c.Service.BulkIngest(r.Context(), file)
	if err != nil {
		c.fail(w, r, err)
		return
	}

	message := "Emails uploaded successfully"
	if result.Accepted == 0 {
		message = "No valid emails found in the file"
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, UploadEmailsResponse{
		Message:       message,
		Accepted:      result.Accepted,
		Skipped:       result.Skipped,
		Batches:       result.Batches,
		FailedBatches: result.FailedBatches,
	})
}

func (c *SubscriberController) fail(w http.ResponseWriter, r *http.Request, err error) {
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
}
