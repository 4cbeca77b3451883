package integration_test

import (
	"context"
	"io"
	"log/slog"
	"net"
	"time"

	"github.com/metinatakli/movie-service/api/moviepb"
	"github.com/metinatakli/movie-service/internal/app"
	"github.com/metinatakli/movie-service/internal/repository"
	"github.com/metinatakli/movie-service/internal/rpc"
	appvalidator "github.com/metinatakli/movie-service/internal/validator"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
)

type TestApp struct {
	App  *app.Application
	Repo *repository.MemoryMovieRepository

	close func()
}

// newTestApp wires the gateway to a fresh movie service. When remote is set the
// gateway reaches the service through a real gRPC server over bufconn.
func newTestApp(cfg app.Config, remote bool) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	repo := repository.NewMemoryMovieRepository()

	svc, err := rpc.NewMovieService(repo, appvalidator.NewValidator(), logger)
	if err != nil {
		return nil, err
	}

	if !remote {
		application, err := app.NewApplication(cfg, logger, rpc.NewLocalClient(svc), nil)
		if err != nil {
			return nil, err
		}

		return &TestApp{App: application, Repo: repo, close: func() {}}, nil
	}

	lis := bufconn.Listen(1 << 20)
	srv := rpc.NewServer(svc, logger)

	go func() {
		_ = srv.Serve(lis)
	}()

	conn, err := rpc.Dial("passthrough:///bufnet", grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	}))
	if err != nil {
		srv.Stop()
		return nil, err
	}

	application, err := app.NewApplication(cfg, logger, moviepb.NewMovieServiceClient(conn), healthpb.NewHealthClient(conn))
	if err != nil {
		conn.Close()
		srv.Stop()
		return nil, err
	}

	return &TestApp{
		App:  application,
		Repo: repo,
		close: func() {
			conn.Close()
			srv.GracefulStop()
		},
	}, nil
}

func testConfig() app.Config {
	return app.Config{
		Port:       3000,
		Env:        "test",
		RPCTimeout: 5 * time.Second,
	}
}
