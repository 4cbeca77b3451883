package rpc

import (
	"context"

	"github.com/metinatakli/movie-service/api/moviepb"
	"google.golang.org/grpc"
)

// LocalClient satisfies moviepb.MovieServiceClient by calling a server
// implementation directly, without a network hop. Call options are ignored.
type LocalClient struct {
	srv moviepb.MovieServiceServer
}

func NewLocalClient(srv moviepb.MovieServiceServer) *LocalClient {
	return &LocalClient{srv: srv}
}

func (c *LocalClient) CreateMovie(ctx context.Context, in *moviepb.CreateMovieRequest, _ ...grpc.CallOption) (*moviepb.CreateMovieResponse, error) {
	return c.srv.CreateMovie(ctx, in)
}

func (c *LocalClient) GetMovie(ctx context.Context, in *moviepb.ReadMovieRequest, _ ...grpc.CallOption) (*moviepb.ReadMovieResponse, error) {
	return c.srv.GetMovie(ctx, in)
}

func (c *LocalClient) GetMovies(ctx context.Context, in *moviepb.ReadMoviesRequest, _ ...grpc.CallOption) (*moviepb.ReadMoviesResponse, error) {
	return c.srv.GetMovies(ctx, in)
}

func (c *LocalClient) UpdateMovie(ctx context.Context, in *moviepb.UpdateMovieRequest, _ ...grpc.CallOption) (*moviepb.UpdateMovieResponse, error) {
	return c.srv.UpdateMovie(ctx, in)
}

func (c *LocalClient) DeleteMovie(ctx context.Context, in *moviepb.DeleteMovieRequest, _ ...grpc.CallOption) (*moviepb.DeleteMovieResponse, error) {
	return c.srv.DeleteMovie(ctx, in)
}
