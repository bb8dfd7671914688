package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/conchobar/candidates/pkg/search"
)

func TestQuerySendsMessageBody(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Query(context.Background(), "golang engineer")

	require.NoError(t, err)
	require.Equal(t, map[string]string{"message": "golang engineer"}, got)
}

func TestQueryResolvesPrimaryAndFallbackIDs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[
			{"document":{"metadata":{"supabase_record_id":"r1"}},"score":0.9},
			{"document":{"metadata":{"supabase_id":"r2"}},"score":0.4},
			{"document":{"metadata":{}},"score":0.1}
		]`))
	}))
	defer srv.Close()

	results, err := New(srv.URL).Query(context.Background(), "query")

	require.NoError(t, err)
	require.Equal(t, []search.Result{
		{RecordID: "r1", Score: 0.9},
		{RecordID: "r2", Score: 0.4},
		{RecordID: "", Score: 0.1},
	}, results)
}

func TestQueryNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := New(srv.URL).Query(context.Background(), "query")

	var ue *search.UnavailableError
	require.ErrorAs(t, err, &ue)
	require.Equal(t, search.FailStatus, ue.Class)
	require.Equal(t, http.StatusInternalServerError, ue.Status)
}

func TestQueryEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("  \n"))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Query(context.Background(), "query")

	var ue *search.UnavailableError
	require.ErrorAs(t, err, &ue)
	require.Equal(t, search.FailEmpty, ue.Class)
}

func TestQueryMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>workflow error</html>`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Query(context.Background(), "query")

	var ue *search.UnavailableError
	require.ErrorAs(t, err, &ue)
	require.Equal(t, search.FailMalformed, ue.Class)
}

func TestQueryTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := New(srv.URL).Query(context.Background(), "query")

	var ue *search.UnavailableError
	require.ErrorAs(t, err, &ue)
	require.Equal(t, search.FailTransport, ue.Class)
}
