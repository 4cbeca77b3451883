package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/metinatakli/movie-service/internal/domain"
)

// MemoryMovieRepository keeps movies in process memory. A single mutex guards
// every operation end to end, so no caller ever sees a half-applied write.
type MemoryMovieRepository struct {
	mu     sync.Mutex
	movies map[string]domain.Movie
	order  []string
	issued map[string]struct{}
	newID  func() string
}

func NewMemoryMovieRepository() *MemoryMovieRepository {
	return &MemoryMovieRepository{
		movies: make(map[string]domain.Movie),
		issued: make(map[string]struct{}),
		newID:  uuid.NewString,
	}
}

func (m *MemoryMovieRepository) Create(_ context.Context, title, genre string) (*domain.Movie, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID()

	movie := domain.Movie{
		ID:    id,
		Title: title,
		Genre: genre,
	}

	m.movies[id] = movie
	m.order = append(m.order, id)

	return &movie, nil
}

func (m *MemoryMovieRepository) GetById(_ context.Context, id string) (*domain.Movie, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	movie, ok := m.movies[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return &movie, nil
}

// GetAll returns the live movies in insertion order.
func (m *MemoryMovieRepository) GetAll(_ context.Context) ([]*domain.Movie, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	movies := make([]*domain.Movie, 0, len(m.order))

	for _, id := range m.order {
		movie := m.movies[id]
		movies = append(movies, &movie)
	}

	return movies, nil
}

func (m *MemoryMovieRepository) Update(_ context.Context, id, title, genre string) (*domain.Movie, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	movie, ok := m.movies[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	movie.Title = title
	movie.Genre = genre
	m.movies[id] = movie

	return &movie, nil
}

// Delete reports whether a movie was removed. Deleting an unknown id is not an error.
func (m *MemoryMovieRepository) Delete(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.movies[id]; !ok {
		return false, nil
	}

	delete(m.movies, id)

	if i := slices.Index(m.order, id); i >= 0 {
		m.order = slices.Delete(m.order, i, i+1)
	}

	return true, nil
}

func (m *MemoryMovieRepository) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.movies)
}

// nextID must be called with mu held. Ids are never handed out twice, even
// after the movie that carried one is deleted.
func (m *MemoryMovieRepository) nextID() string {
	for {
		id := m.newID()
		if _, taken := m.issued[id]; taken {
			continue
		}

		m.issued[id] = struct{}{}

		return id
	}
}
