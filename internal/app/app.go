package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/movie-service/api"
	"github.com/metinatakli/movie-service/api/moviepb"
	"github.com/metinatakli/movie-service/internal/repository"
	"github.com/metinatakli/movie-service/internal/rpc"
	appvalidator "github.com/metinatakli/movie-service/internal/validator"
	"github.com/metinatakli/movie-service/internal/vcs"
	"github.com/riandyrn/otelchi"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

var (
	version = vcs.Version()
)

// Application is the HTTP gateway. It owns no movie state; every operation is
// forwarded to the movie service through movies.
type Application struct {
	config    Config
	logger    *slog.Logger
	validator *validator.Validate

	movies moviepb.MovieServiceClient
	// health is nil when the service runs in-process.
	health healthpb.HealthClient

	openapiRouter routers.Router
}

type Config struct {
	Port             int
	GRPCPort         int
	RPCAddr          string
	RPCTimeout       time.Duration
	Env              string
	OtelCollectorUrl string
}

func NewApplication(cfg Config, logger *slog.Logger, movies moviepb.MovieServiceClient, health healthpb.HealthClient) (*Application, error) {
	swagger, err := api.GetSwagger()
	if err != nil {
		return nil, err
	}

	openapiRouter, err := gorillamux.NewRouter(swagger)
	if err != nil {
		return nil, fmt.Errorf("error building openapi router: %w", err)
	}

	return &Application{
		config:        cfg,
		logger:        logger,
		validator:     appvalidator.NewValidator(),
		movies:        movies,
		health:        health,
		openapiRouter: openapiRouter,
	}, nil
}

func Run() error {
	var cfg Config

	flag.IntVar(&cfg.Port, "port", 3000, "HTTP gateway port")
	flag.IntVar(&cfg.GRPCPort, "grpc-port", 50051, "gRPC server port (0 disables the gRPC server)")
	flag.StringVar(&cfg.RPCAddr, "rpc-addr", "", "Address of a remote movie service; empty serves the gateway in-process")
	flag.DurationVar(&cfg.RPCTimeout, "rpc-timeout", 5*time.Second, "Timeout for each movie service call made by the gateway")
	flag.StringVar(&cfg.Env, "env", "dev", "Environment (dev|staging|prod)")
	flag.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", "", "OpenTelemetry collector gRPC endpoint")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	if cfg.RPCTimeout <= 0 {
		return errors.New("rpc-timeout must be positive")
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	app := &Application{config: cfg, logger: logger}

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	logger = app.logger

	svc, err := rpc.NewMovieService(repository.NewMemoryMovieRepository(), appvalidator.NewValidator(), logger)
	if err != nil {
		return err
	}

	var grpcServer *grpc.Server
	if cfg.GRPCPort != 0 {
		grpcServer = rpc.NewServer(svc, logger)
	}

	var (
		movies moviepb.MovieServiceClient = rpc.NewLocalClient(svc)
		health healthpb.HealthClient
	)

	if cfg.RPCAddr != "" {
		conn, err := rpc.Dial(cfg.RPCAddr)
		if err != nil {
			return fmt.Errorf("error connecting to movie service: %w", err)
		}
		defer conn.Close()

		movies = moviepb.NewMovieServiceClient(conn)
		health = healthpb.NewHealthClient(conn)
	}

	app, err = NewApplication(cfg, logger, movies, health)
	if err != nil {
		return err
	}

	return app.serve(grpcServer)
}

func (app *Application) serve(grpcServer *grpc.Server) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	if grpcServer != nil {
		lis, err := net.Listen("tcp", fmt.Sprintf("0.0.0.0:%d", app.config.GRPCPort))
		if err != nil {
			return err
		}

		go func() {
			app.logger.Info("starting grpc server", "addr", lis.Addr().String())

			if err := grpcServer.Serve(lis); err != nil {
				app.logger.Error("grpc server stopped", "error", err)
			}
		}()
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// The gateway drains first since its in-flight requests may still
		// need the gRPC server.
		err := srv.Shutdown(ctx)

		if grpcServer != nil {
			grpcServer.GracefulStop()
		}

		shutdownError <- err
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(middleware.RequestID)
	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(middleware.Logger)
	r.Use(app.recoverPanic)
	r.Use(app.requestLogger)
	r.Use(app.validateRequest)

	return api.HandlerWithOptions(app, api.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: app.invalidParamResponse,
	})
}
