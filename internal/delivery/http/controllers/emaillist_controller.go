package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Balogunolalere/campainProj/internal/delivery/http/helpers"
	"github.com/Balogunolalere/campainProj/internal/domain"
)

// CreateEmailListRequest is the request body for POST /emaillist/
type CreateEmailListRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Validate implements Validator.
func (c CreateEmailListRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

// UpdateEmailListRequest is the request body for PATCH /emaillist/{name}.
type UpdateEmailListRequest struct {
	Description *string `json:"description"`
}

// EmailListController handles email list CRUD endpoints.
type EmailListController struct {
	Logger  *slog.Logger
	Service domain.EmailListService
}

// NewEmailListController creates an EmailListController with the given logger and service.
func NewEmailListController(logger *slog.Logger, svc domain.EmailListService) *EmailListController {
	return &EmailListController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Create a new email list
// @Description The list name doubles as its store key; creating a list under an existing name overwrites it.
// @Tags emaillists
// @Accept json
// @Produce json
// @Param body body CreateEmailListRequest true "Email list data"
// @Success 200 {object} helpers.APIResponse "data contains the created list"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /emaillist/ [post]
func (c *EmailListController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateEmailListRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	list, err := c.Service.Create(r.Context(), &domain.EmailList{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, list)
}

// List godoc
// @Summary List all email lists
// @Tags emaillists
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the full email list collection"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /emaillist/ [get]
func (c *EmailListController) List(w http.ResponseWriter, r *http.Request) {
	lists, err := c.Service.GetAll(r.Context())
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, lists)
}

// Get godoc
// @Summary Get an email list by name
// @Tags emaillists
// @Produce json
// @Param name path string true "List name"
// @Success 200 {object} helpers.APIResponse "data contains the email list"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /emaillist/{name} [get]
func (c *EmailListController) Get(w http.ResponseWriter, r *http.Request) {
	list, err := c.Service.GetByName(r.Context(), r.PathValue("name"))
	if err != nil {
		if errors.Is(err, domain.ErrEmailListNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, err.Error())
			return
		}
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, list)
}

// Update godoc
// @Summary Partially update an email list
// @Tags emaillists
// @Accept json
// @Produce json
// @Param name path string true "List name"
// @Param body body UpdateEmailListRequest true "Fields to update"
// @Success 200 {object} helpers.APIResponse "data contains the updated list"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /emaillist/{name} [patch]
func (c *EmailListController) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateEmailListRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	list, err := c.Service.Update(r.Context(), r.PathValue("name"), &domain.EmailListUpdate{
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailListNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, err.Error())
			return
		}
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, list)
}

// Delete godoc
// @Summary Delete an email list by name
// @Tags emaillists
// @Produce json
// @Param name path string true "List name"
// @Success 200 {object} helpers.APIResponse "data contains a confirmation message"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /emaillist/{name} [delete]
func (c *EmailListController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Delete(r.Context(), r.PathValue("name")); err != nil {
		if errors.Is(err, domain.ErrEmailListNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, err.Error())
			return
		}
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, helpers.MessageResponse{Message: "Email list deleted successfully"})
}

func (c *EmailListController) fail(w http.ResponseWriter, r *http.Request, err error) {
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
}
