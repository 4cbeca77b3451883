package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/metinatakli/movie-service/api"
	"github.com/metinatakli/movie-service/internal/mocks"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func newTestApplication(t *testing.T, opts ...func(*Application)) *Application {
	t.Helper()

	cfg := Config{Env: "test", RPCTimeout: time.Second}

	app, err := NewApplication(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), &mocks.MockMovieServiceClient{}, nil)
	if err != nil {
		t.Fatalf("NewApplication() error = %v", err)
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func withMovieClient(client *mocks.MockMovieServiceClient) func(*Application) {
	return func(app *Application) {
		app.movies = client
	}
}

// executeRequest serves one request through the full router. A string body is
// sent verbatim; anything else is JSON encoded.
func executeRequest(t *testing.T, app *Application, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	if reader != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()

	app.Routes().ServeHTTP(w, r)

	return w
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantErrMessage string) {
	t.Helper()

	if w.Code != wantStatus {
		t.Fatalf("status = %d, want %d (body: %s)", w.Code, wantStatus, w.Body.String())
	}

	var errorResp api.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}

	if wantErrMessage != "" && errorResp.Error != wantErrMessage {
		t.Errorf("Error message = %v, want %v", errorResp.Error, wantErrMessage)
	}

	if errorResp.RequestId == "" {
		t.Error("error response has no request id")
	}
}

func decodeValidationErrors(t *testing.T, w *httptest.ResponseRecorder) []api.ValidationError {
	t.Helper()

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d (body: %s)", w.Code, http.StatusBadRequest, w.Body.String())
	}

	var validationResp api.ValidationErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
		t.Fatalf("Failed to decode validation error response: %v", err)
	}

	return validationResp.ValidationErrors
}

func compareJSON[T any](t *testing.T, w *httptest.ResponseRecorder, want T) {
	t.Helper()

	var got T
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

type fakeHealthClient struct {
	healthpb.HealthClient
	resp *healthpb.HealthCheckResponse
	err  error
}

func (f *fakeHealthClient) Check(ctx context.Context, in *healthpb.HealthCheckRequest, _ ...grpc.CallOption) (*healthpb.HealthCheckResponse, error) {
	return f.resp, f.err
}
