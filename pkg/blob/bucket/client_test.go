package bucket

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRemoveAddressesObjectByName(t *testing.T) {
	var gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		gotPath = r.URL.EscapedPath()
		gotAuth = r.Header.Get("Authorization")
	}))
	defer srv.Close()

	c := New(srv.URL, "secret-key", "CVs")
	err := c.Remove(context.Background(), "1700000000000_Jane Doe Res.pdf")

	require.NoError(t, err)
	require.Equal(t, "/storage/v1/object/CVs/1700000000000_Jane%20Doe%20Res.pdf", gotPath)
	require.Equal(t, "Bearer secret-key", gotAuth)
}

func TestRemoveTreatsMissingObjectAsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	require.NoError(t, New(srv.URL, "k", "CVs").Remove(context.Background(), "gone.pdf"))
}

func TestRemoveReportsBackendFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"boom"}`))
	}))
	defer srv.Close()

	err := New(srv.URL, "k", "CVs").Remove(context.Background(), "a.pdf")

	require.Error(t, err)
	require.Contains(t, err.Error(), "500")
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/storage/v1/bucket/CVs" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	require.NoError(t, New(srv.URL, "k", "CVs").Ping(context.Background()))
	require.Error(t, New(srv.URL, "k", "other").Ping(context.Background()))
}
