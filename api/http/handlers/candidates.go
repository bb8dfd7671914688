package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/conchobar/candidates/api/http/presenter"
	"github.com/conchobar/candidates/pkg/profile"
)

type CandidatesHandler struct {
	uc profile.UseCase
}

func NewCandidatesHandler(uc profile.UseCase) *CandidatesHandler {
	return &CandidatesHandler{uc: uc}
}

// List returns all CV profiles, optionally narrowed by a lexical filter.
// @Summary List CV profiles
// @Description Returns profiles newest first. The search parameter is a case-insensitive substring filter over the stored skills, experience and education text; for semantic search use POST /candidates/search.
// @Tags        candidates
// @Produce     json
// @Param       search query string false "Substring filter"
// @Success     200 {array} profile.Record
// @Failure     500 {object} presenter.ErrorResponse
// @Router      /candidates [get]
func (h *CandidatesHandler) List(c *fiber.Ctx) error {
	recs, err := h.uc.List(c.Context(), c.Query("search"))
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to fetch CV profiles")
	}
	if recs == nil {
		recs = []profile.Record{}
	}
	return presenter.JSON(c, http.StatusOK, recs)
}

// Create inserts a new CV profile.
// @Summary Create a CV profile
// @Tags    candidates
// @Accept  json
// @Produce json
// @Param   input body profile.CreateInput true "Profile fields; skills, experience, education and file_url are required"
// @Success 201 {object} profile.Record
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /candidates [post]
func (h *CandidatesHandler) Create(c *fiber.Ctx) error {
	var in profile.CreateInput
	if err := c.BodyParser(&in); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON body")
	}
	rec, err := h.uc.Create(c.Context(), in)
	if err != nil {
		var ve profile.ErrValidation
		if errors.As(err, &ve) {
			return presenter.Error(c, http.StatusBadRequest, ve.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to create CV profile")
	}
	return presenter.JSON(c, http.StatusCreated, rec)
}

// Get returns one CV profile by id.
// @Summary Get a CV profile
// @Tags    candidates
// @Produce json
// @Param   id path string true "Profile ID (UUID)"
// @Success 200 {object} profile.Record
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /candidates/{id} [get]
func (h *CandidatesHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	rec, err := h.uc.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "CV profile not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to fetch CV profile")
	}
	return presenter.JSON(c, http.StatusOK, rec)
}

type updateRequest struct {
	Skills     json.RawMessage `json:"skills"`
	Experience json.RawMessage `json:"experience"`
	Education  json.RawMessage `json:"education"`
	FileURL    *string         `json:"file_url"`
}

// Update applies a partial update; updated_at is set server-side.
// @Summary Update a CV profile
// @Tags    candidates
// @Accept  json
// @Produce json
// @Param   id path string true "Profile ID (UUID)"
// @Param   input body updateRequest true "Fields to change; omitted fields are kept"
// @Success 200 {object} profile.Record
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /candidates/{id} [put]
func (h *CandidatesHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	var req updateRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON body")
	}
	rec, err := h.uc.Update(c.Context(), id, profile.UpdateFields{
		Skills:     req.Skills,
		Experience: req.Experience,
		Education:  req.Education,
		FileURL:    req.FileURL,
	})
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "CV profile not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to update CV profile")
	}
	return presenter.JSON(c, http.StatusOK, rec)
}

// Delete removes a profile, best-effort removing its stored file first.
// @Summary Delete a CV profile
// @Tags    candidates
// @Produce json
// @Param   id path string true "Profile ID (UUID)"
// @Success 200 {object} map[string]string
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /candidates/{id} [delete]
func (h *CandidatesHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "CV profile not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to delete CV profile")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"message": "CV profile and file deleted successfully",
	})
}
