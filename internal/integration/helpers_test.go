package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/metinatakli/movie-service/internal/domain"
	"github.com/stretchr/testify/require"
)

func prepareRequest(method, path string, body io.Reader, headers map[string]string) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

// compareResponse compares a JSON body against the expected document, ignoring
// the non-deterministic timestamp and requestId keys at any depth.
func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	t.Helper()

	var actual any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	var expected any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		return k == "timestamp" || k == "requestId"
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}

func insertTestMovie(t testing.TB, app *TestApp, title, genre string) *domain.Movie {
	t.Helper()

	movie, err := app.Repo.Create(context.Background(), title, genre)
	require.NoError(t, err)

	return movie
}

func decodeBody[T any](t testing.TB, res *http.Response) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(res.Body).Decode(&v))

	return v
}
