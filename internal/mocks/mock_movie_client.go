package mocks

import (
	"context"

	"github.com/metinatakli/movie-service/api/moviepb"
	"github.com/stretchr/testify/mock"
	"google.golang.org/grpc"
)

type MockMovieServiceClient struct {
	mock.Mock
	moviepb.MovieServiceClient
}

func (m *MockMovieServiceClient) CreateMovie(ctx context.Context, in *moviepb.CreateMovieRequest, _ ...grpc.CallOption) (*moviepb.CreateMovieResponse, error) {
	args := m.Called(ctx, in)
	resp, _ := args.Get(0).(*moviepb.CreateMovieResponse)
	return resp, args.Error(1)
}

func (m *MockMovieServiceClient) GetMovie(ctx context.Context, in *moviepb.ReadMovieRequest, _ ...grpc.CallOption) (*moviepb.ReadMovieResponse, error) {
	args := m.Called(ctx, in)
	resp, _ := args.Get(0).(*moviepb.ReadMovieResponse)
	return resp, args.Error(1)
}

func (m *MockMovieServiceClient) GetMovies(ctx context.Context, in *moviepb.ReadMoviesRequest, _ ...grpc.CallOption) (*moviepb.ReadMoviesResponse, error) {
	args := m.Called(ctx, in)
	resp, _ := args.Get(0).(*moviepb.ReadMoviesResponse)
	return resp, args.Error(1)
}

func (m *MockMovieServiceClient) UpdateMovie(ctx context.Context, in *moviepb.UpdateMovieRequest, _ ...grpc.CallOption) (*moviepb.UpdateMovieResponse, error) {
	args := m.Called(ctx, in)
	resp, _ := args.Get(0).(*moviepb.UpdateMovieResponse)
	return resp, args.Error(1)
}

func (m *MockMovieServiceClient) DeleteMovie(ctx context.Context, in *moviepb.DeleteMovieRequest, _ ...grpc.CallOption) (*moviepb.DeleteMovieResponse, error) {
	args := m.Called(ctx, in)
	resp, _ := args.Get(0).(*moviepb.DeleteMovieResponse)
	return resp, args.Error(1)
}
