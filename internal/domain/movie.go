package domain

import "context"

type Movie struct {
	ID    string
	Title string
	Genre string
}

// MovieRepository is the sole owner of movie records. Implementations must be
// safe for concurrent use and must hand out copies, never their own records.
type MovieRepository interface {
	Create(ctx context.Context, title, genre string) (*Movie, error)
	GetById(ctx context.Context, id string) (*Movie, error)
	GetAll(ctx context.Context) ([]*Movie, error)
	Update(ctx context.Context, id, title, genre string) (*Movie, error)
	Delete(ctx context.Context, id string) (bool, error)
}
