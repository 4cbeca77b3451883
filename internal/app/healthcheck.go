package app

import (
	"net/http"

	"github.com/metinatakli/movie-service/api"
	"github.com/metinatakli/movie-service/api/moviepb"
	"github.com/metinatakli/movie-service/internal/vcs"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

const (
	StatusUp       = "UP"
	StatusDegraded = "DEGRADED"
)

func (app *Application) GetHealth(w http.ResponseWriter, r *http.Request) {
	rpcStatus := app.rpcHealth(r)

	resp := api.HealthcheckResponse{
		Status:    StatusUp,
		RpcStatus: rpcStatus,
		SystemInfo: api.SystemInfo{
			Version:     vcs.Version(),
			Environment: app.config.Env,
		},
	}

	httpStatus := http.StatusOK
	if rpcStatus != healthpb.HealthCheckResponse_SERVING.String() {
		resp.Status = StatusDegraded
		httpStatus = http.StatusServiceUnavailable
	}

	err := app.writeJSON(w, httpStatus, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// rpcHealth asks the remote movie service for its health. The in-process
// service is always serving.
func (app *Application) rpcHealth(r *http.Request) string {
	if app.health == nil {
		return healthpb.HealthCheckResponse_SERVING.String()
	}

	ctx, cancel := app.rpcContext(r)
	defer cancel()

	resp, err := app.health.Check(ctx, &healthpb.HealthCheckRequest{Service: moviepb.ServiceName})
	if err != nil {
		app.contextGetLogger(r).Warn("movie service health check failed", "error", err)
		return status.Code(err).String()
	}

	return resp.GetStatus().String()
}
