package rpc

import (
	"context"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/movie-service/api/moviepb"
	"github.com/metinatakli/movie-service/internal/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type createMovieInput struct {
	Title string `json:"title" validate:"notblank"`
	Genre string `json:"genre" validate:"notblank"`
}

type updateMovieInput struct {
	ID    string `json:"id" validate:"notblank"`
	Title string `json:"title" validate:"notblank"`
	Genre string `json:"genre" validate:"notblank"`
}

// MovieService implements moviepb.MovieServiceServer on top of a
// domain.MovieRepository. It holds no state of its own.
type MovieService struct {
	moviepb.UnimplementedMovieServiceServer

	repo      domain.MovieRepository
	validator *validator.Validate
	logger    *slog.Logger
	telemetry *telemetry
}

func NewMovieService(repo domain.MovieRepository, validator *validator.Validate, logger *slog.Logger) (*MovieService, error) {
	t, err := newTelemetry()
	if err != nil {
		return nil, err
	}

	return &MovieService{
		repo:      repo,
		validator: validator,
		logger:    logger,
		telemetry: t,
	}, nil
}

func (s *MovieService) CreateMovie(ctx context.Context, req *moviepb.CreateMovieRequest) (resp *moviepb.CreateMovieResponse, err error) {
	ctx, done := s.observe(ctx, "CreateMovie")
	defer func() { done(err) }()

	movie := req.GetMovie()
	if movie == nil {
		return nil, status.Error(codes.InvalidArgument, "movie is required")
	}

	input := createMovieInput{Title: movie.GetTitle(), Genre: movie.GetGenre()}
	if err := s.validate(input); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, input.Title, input.Genre)
	if err != nil {
		return nil, storeError(err)
	}

	return &moviepb.CreateMovieResponse{Movie: toProtoMovie(created)}, nil
}

func (s *MovieService) GetMovie(ctx context.Context, req *moviepb.ReadMovieRequest) (resp *moviepb.ReadMovieResponse, err error) {
	ctx, done := s.observe(ctx, "GetMovie")
	defer func() { done(err) }()

	movie, err := s.repo.GetById(ctx, req.GetId())
	if err != nil {
		return nil, storeError(err)
	}

	return &moviepb.ReadMovieResponse{Movie: toProtoMovie(movie)}, nil
}

func (s *MovieService) GetMovies(ctx context.Context, _ *moviepb.ReadMoviesRequest) (resp *moviepb.ReadMoviesResponse, err error) {
	ctx, done := s.observe(ctx, "GetMovies")
	defer func() { done(err) }()

	movies, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, storeError(err)
	}

	resp = &moviepb.ReadMoviesResponse{
		Movies: make([]*moviepb.Movie, 0, len(movies)),
	}

	for _, movie := range movies {
		resp.Movies = append(resp.Movies, toProtoMovie(movie))
	}

	return resp, nil
}

func (s *MovieService) UpdateMovie(ctx context.Context, req *moviepb.UpdateMovieRequest) (resp *moviepb.UpdateMovieResponse, err error) {
	ctx, done := s.observe(ctx, "UpdateMovie")
	defer func() { done(err) }()

	movie := req.GetMovie()
	if movie == nil {
		return nil, status.Error(codes.InvalidArgument, "movie is required")
	}

	input := updateMovieInput{ID: movie.GetId(), Title: movie.GetTitle(), Genre: movie.GetGenre()}
	if err := s.validate(input); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, input.ID, input.Title, input.Genre)
	if err != nil {
		return nil, storeError(err)
	}

	return &moviepb.UpdateMovieResponse{Movie: toProtoMovie(updated)}, nil
}

// DeleteMovie never fails for an unknown id; the response carries success=false instead.
func (s *MovieService) DeleteMovie(ctx context.Context, req *moviepb.DeleteMovieRequest) (resp *moviepb.DeleteMovieResponse, err error) {
	ctx, done := s.observe(ctx, "DeleteMovie")
	defer func() { done(err) }()

	removed, err := s.repo.Delete(ctx, req.GetId())
	if err != nil {
		return nil, storeError(err)
	}

	return &moviepb.DeleteMovieResponse{Success: removed}, nil
}

func toProtoMovie(movie *domain.Movie) *moviepb.Movie {
	if movie == nil {
		return nil
	}

	return &moviepb.Movie{
		Id:    movie.ID,
		Title: movie.Title,
		Genre: movie.Genre,
	}
}
