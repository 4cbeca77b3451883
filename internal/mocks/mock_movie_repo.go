package mocks

import (
	"context"

	"github.com/metinatakli/movie-service/internal/domain"
)

type MockMovieRepo struct {
	domain.MovieRepository
	CreateFunc  func(ctx context.Context, title, genre string) (*domain.Movie, error)
	GetByIdFunc func(ctx context.Context, id string) (*domain.Movie, error)
	GetAllFunc  func(ctx context.Context) ([]*domain.Movie, error)
	UpdateFunc  func(ctx context.Context, id, title, genre string) (*domain.Movie, error)
	DeleteFunc  func(ctx context.Context, id string) (bool, error)
}

func (m *MockMovieRepo) Create(ctx context.Context, title, genre string) (*domain.Movie, error) {
	return m.CreateFunc(ctx, title, genre)
}

func (m *MockMovieRepo) GetById(ctx context.Context, id string) (*domain.Movie, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockMovieRepo) GetAll(ctx context.Context) ([]*domain.Movie, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockMovieRepo) Update(ctx context.Context, id, title, genre string) (*domain.Movie, error) {
	return m.UpdateFunc(ctx, id, title, genre)
}

func (m *MockMovieRepo) Delete(ctx context.Context, id string) (bool, error) {
	return m.DeleteFunc(ctx, id)
}
