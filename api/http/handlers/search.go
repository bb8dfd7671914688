package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/conchobar/candidates/api/http/presenter"
	"github.com/conchobar/candidates/pkg/profile"
	"github.com/conchobar/candidates/pkg/search"
)

type SearchHandler struct {
	engine   *search.Engine
	profiles profile.UseCase
}

func NewSearchHandler(engine *search.Engine, profiles profile.UseCase) *SearchHandler {
	return &SearchHandler{engine: engine, profiles: profiles}
}

type searchRequest struct {
	Query string `json:"query"`
}

type searchResponse struct {
	Results  any    `json:"results"`
	Fallback bool   `json:"fallback"`
	Message  string `json:"message,omitempty"`
}

// Search ranks the current profiles with the external semantic provider.
// Provider failures fail open: the full unranked set is returned with
// fallback=true and a diagnostic message naming the failure class.
// @Summary Semantic candidate search
// @Tags    candidates
// @Accept  json
// @Produce json
// @Param   input body searchRequest true "Free-text query"
// @Success 200 {object} searchResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /candidates/search [post]
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	var req searchRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON body")
	}

	recs, err := h.profiles.List(c.Context(), "")
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to fetch CV profiles")
	}
	if recs == nil {
		recs = []profile.Record{}
	}

	ranked, err := h.engine.Rank(c.Context(), req.Query, recs)
	switch {
	case err == nil:
		return presenter.JSON(c, http.StatusOK, searchResponse{Results: ranked})
	case errors.Is(err, search.ErrBlankQuery):
		return presenter.JSON(c, http.StatusOK, searchResponse{Results: recs})
	case errors.Is(err, search.ErrSuperseded):
		// A newer query took over while this one was in flight; this
		// response must not be applied to displayed state.
		return presenter.JSON(c, http.StatusOK, searchResponse{
			Results:  recs,
			Fallback: true,
			Message:  "Superseded by a newer search.",
		})
	default:
		var ue *search.UnavailableError
		msg := "Search is temporarily unavailable."
		if errors.As(err, &ue) {
			msg = ue.Diagnostic()
		}
		return presenter.JSON(c, http.StatusOK, searchResponse{
			Results:  recs,
			Fallback: true,
			Message:  msg,
		})
	}
}
