package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/conchobar/candidates/pkg/profile"
	"github.com/conchobar/candidates/pkg/search"
)

type fakeProfiles struct {
	recs      []profile.Record
	createErr error
	getErr    error
	deleteErr error
	deleted   []uuid.UUID
}

func (f *fakeProfiles) List(context.Context, string) ([]profile.Record, error) {
	return f.recs, nil
}

func (f *fakeProfiles) Get(_ context.Context, id uuid.UUID) (profile.Record, error) {
	if f.getErr != nil {
		return profile.Record{}, f.getErr
	}
	for _, r := range f.recs {
		if r.ID == id {
			return r, nil
		}
	}
	return profile.Record{}, profile.ErrNotFound
}

func (f *fakeProfiles) Create(_ context.Context, in profile.CreateInput) (profile.Record, error) {
	if f.createErr != nil {
		return profile.Record{}, f.createErr
	}
	return profile.Record{ID: uuid.New(), FileURL: in.FileURL}, nil
}

func (f *fakeProfiles) Update(_ context.Context, id uuid.UUID, _ profile.UpdateFields) (profile.Record, error) {
	return f.Get(context.Background(), id)
}

func (f *fakeProfiles) Delete(_ context.Context, id uuid.UUID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type stubProvider struct {
	results []search.Result
	err     error
}

func (p *stubProvider) Query(context.Context, string) ([]search.Result, error) {
	return p.results, p.err
}

func candidatesApp(uc profile.UseCase) *fiber.App {
	app := fiber.New()
	h := NewCandidatesHandler(uc)
	app.Get("/candidates", h.List)
	app.Post("/candidates", h.Create)
	app.Get("/candidates/:id", h.Get)
	app.Delete("/candidates/:id", h.Delete)
	return app
}

func TestListReturnsJSONArray(t *testing.T) {
	uc := &fakeProfiles{recs: []profile.Record{{ID: uuid.New(), Skills: []string{"Go"}}}}
	app := candidatesApp(uc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/candidates", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var recs []profile.Record
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&recs))
	require.Len(t, recs, 1)
	require.Equal(t, []string{"Go"}, recs[0].Skills)
}

func TestListEmptySetIsEmptyArrayNotNull(t *testing.T) {
	app := candidatesApp(&fakeProfiles{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/candidates", nil))
	require.NoError(t, err)

	body, _ := io.ReadAll(resp.Body)
	require.JSONEq(t, `[]`, string(body))
}

func TestCreateValidationMapsTo400(t *testing.T) {
	uc := &fakeProfiles{createErr: profile.ErrValidation("skills, experience, education and file_url are required")}
	app := candidatesApp(uc)

	req := httptest.NewRequest(http.MethodPost, "/candidates", bytes.NewBufferString(`{"skills":["Go"]}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateStoreFailureMapsTo500(t *testing.T) {
	uc := &fakeProfiles{createErr: &profile.StoreError{Op: "insert", Err: errors.New("boom")}}
	app := candidatesApp(uc)

	req := httptest.NewRequest(http.MethodPost, "/candidates", bytes.NewBufferString(`{"skills":[],"experience":[],"education":[],"file_url":"https://x/CVs/a.pdf"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestGetUnknownIDIs404(t *testing.T) {
	app := candidatesApp(&fakeProfiles{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/candidates/"+uuid.NewString(), nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteConfirms(t *testing.T) {
	uc := &fakeProfiles{}
	app := candidatesApp(uc)
	id := uuid.New()

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/candidates/"+id.String(), nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Contains(t, body["message"], "deleted")
	require.Equal(t, []uuid.UUID{id}, uc.deleted)
}

func searchApp(provider search.Provider, uc profile.UseCase) *fiber.App {
	app := fiber.New()
	h := NewSearchHandler(search.NewEngine(provider, zap.NewNop()), uc)
	app.Post("/candidates/search", h.Search)
	return app
}

func doSearch(t *testing.T, app *fiber.App, query string) searchResponse {
	t.Helper()
	payload, err := json.Marshal(searchRequest{Query: query})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/candidates/search", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out searchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestSearchRanksAndFilters(t *testing.T) {
	recs := []profile.Record{{ID: uuid.New()}, {ID: uuid.New()}, {ID: uuid.New()}}
	provider := &stubProvider{results: []search.Result{
		{RecordID: recs[0].ID.String(), Score: 0.9},
		{RecordID: recs[1].ID.String(), Score: 0.4},
	}}
	out := doSearch(t, searchApp(provider, &fakeProfiles{recs: recs}), "golang")

	require.False(t, out.Fallback)
	results := out.Results.([]any)
	require.Len(t, results, 2, "records without a search entry are dropped")
	first := results[0].(map[string]any)
	require.Equal(t, recs[0].ID.String(), first["id"])
	require.InDelta(t, 0.9, first["score"].(float64), 1e-9)
}

func TestSearchFailsOpenOnProviderError(t *testing.T) {
	recs := []profile.Record{{ID: uuid.New()}, {ID: uuid.New()}}
	provider := &stubProvider{err: &search.UnavailableError{
		Class:  search.FailStatus,
		Status: http.StatusInternalServerError,
		Err:    errors.New("Internal Server Error"),
	}}
	out := doSearch(t, searchApp(provider, &fakeProfiles{recs: recs}), "golang")

	require.True(t, out.Fallback, "the full unranked set is shown, never a blank screen")
	require.Len(t, out.Results.([]any), 2)
	require.Contains(t, out.Message, "500", "diagnostic names the status class, not a parse problem")
	require.NotContains(t, out.Message, "malformed")
}

func TestSearchBlankQueryKeepsUnrankedSet(t *testing.T) {
	recs := []profile.Record{{ID: uuid.New()}}
	provider := &stubProvider{err: errors.New("must not be called")}
	out := doSearch(t, searchApp(provider, &fakeProfiles{recs: recs}), "   ")

	require.False(t, out.Fallback)
	require.Len(t, out.Results.([]any), 1)
	require.Empty(t, out.Message)
}
