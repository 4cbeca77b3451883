package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/metinatakli/movie-service/internal/domain"
)

func TestMemoryMovieRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryMovieRepository()

	created, err := repo.Create(ctx, "Inception", "Sci-Fi")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if created.ID == "" {
		t.Fatal("Create() returned an empty id")
	}

	got, err := repo.GetById(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetById() error = %v", err)
	}

	want := &domain.Movie{ID: created.ID, Title: "Inception", Genre: "Sci-Fi"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GetById() mismatch (-want +got):\n%s", diff)
	}
}

func TestMemoryMovieRepository_GetById(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryMovieRepository()

	deleted, _ := repo.Create(ctx, "Alien", "Horror")
	repo.Delete(ctx, deleted.ID)

	tests := []struct {
		name string
		id   string
	}{
		{name: "unknown id", id: "does-not-exist"},
		{name: "empty id", id: ""},
		{name: "deleted id", id: deleted.ID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.GetById(ctx, tt.id)
			if !errors.Is(err, domain.ErrRecordNotFound) {
				t.Errorf("GetById() error = %v, want %v", err, domain.ErrRecordNotFound)
			}
		})
	}
}

func TestMemoryMovieRepository_GetAllKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryMovieRepository()

	movies, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll() error = %v", err)
	}
	if movies == nil || len(movies) != 0 {
		t.Fatalf("GetAll() on empty store = %#v, want empty non-nil slice", movies)
	}

	var want []*domain.Movie
	for i := range 5 {
		m, _ := repo.Create(ctx, fmt.Sprintf("Movie %d", i), "Drama")
		want = append(want, m)
	}

	// drop one from the middle, the rest must keep their relative order
	repo.Delete(ctx, want[2].ID)
	want = append(want[:2], want[3:]...)

	got, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll() error = %v", err)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GetAll() mismatch (-want +got):\n%s", diff)
	}
}

func TestMemoryMovieRepository_ListLengthTracksCreatesAndDeletes(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryMovieRepository()

	var ids []string
	for i := range 10 {
		m, _ := repo.Create(ctx, fmt.Sprintf("Movie %d", i), "Comedy")
		ids = append(ids, m.ID)
	}

	deleted := 0
	for i, id := range ids {
		if i%3 != 0 {
			continue
		}

		ok, _ := repo.Delete(ctx, id)
		if ok {
			deleted++
		}

		// a second delete of the same id never counts
		if ok, _ := repo.Delete(ctx, id); ok {
			t.Errorf("second Delete(%q) = true, want false", id)
		}
	}

	movies, _ := repo.GetAll(ctx)
	if got, want := len(movies), len(ids)-deleted; got != want {
		t.Errorf("len(GetAll()) = %d, want %d", got, want)
	}

	if got, want := repo.Count(), len(ids)-deleted; got != want {
		t.Errorf("Count() = %d, want %d", got, want)
	}
}

func TestMemoryMovieRepository_DeleteTwice(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryMovieRepository()

	m, _ := repo.Create(ctx, "Heat", "Crime")

	first, err := repo.Delete(ctx, m.ID)
	if err != nil || !first {
		t.Fatalf("first Delete() = %v, %v, want true, nil", first, err)
	}

	second, err := repo.Delete(ctx, m.ID)
	if err != nil || second {
		t.Fatalf("second Delete() = %v, %v, want false, nil", second, err)
	}
}

func TestMemoryMovieRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces title and genre and keeps the id", func(t *testing.T) {
		repo := NewMemoryMovieRepository()
		m, _ := repo.Create(ctx, "Inception", "Sci-Fi")

		updated, err := repo.Update(ctx, m.ID, "Interstellar", "Adventure")
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}

		want := &domain.Movie{ID: m.ID, Title: "Interstellar", Genre: "Adventure"}
		if diff := cmp.Diff(want, updated); diff != "" {
			t.Errorf("Update() mismatch (-want +got):\n%s", diff)
		}

		got, _ := repo.GetById(ctx, m.ID)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("GetById() after Update() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unknown id fails and leaves the store untouched", func(t *testing.T) {
		repo := NewMemoryMovieRepository()
		m, _ := repo.Create(ctx, "Inception", "Sci-Fi")

		before, _ := repo.GetAll(ctx)

		_, err := repo.Update(ctx, "missing", "Interstellar", "Adventure")
		if !errors.Is(err, domain.ErrRecordNotFound) {
			t.Fatalf("Update() error = %v, want %v", err, domain.ErrRecordNotFound)
		}

		after, _ := repo.GetAll(ctx)
		if diff := cmp.Diff(before, after); diff != "" {
			t.Errorf("store changed after failed Update() (-before +after):\n%s", diff)
		}

		if after[0].ID != m.ID {
			t.Errorf("unexpected movie %q in store", after[0].ID)
		}
	})
}

func TestMemoryMovieRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryMovieRepository()

	created, _ := repo.Create(ctx, "Jaws", "Thriller")
	created.Title = "changed"

	listed, _ := repo.GetAll(ctx)
	listed[0].Genre = "changed"

	got, _ := repo.GetById(ctx, created.ID)
	got.ID = "changed"

	stored, _ := repo.GetById(ctx, created.ID)

	want := &domain.Movie{ID: created.ID, Title: "Jaws", Genre: "Thriller"}
	if diff := cmp.Diff(want, stored); diff != "" {
		t.Errorf("stored movie was mutated through a returned value (-want +got):\n%s", diff)
	}
}

func TestMemoryMovieRepository_NeverReusesIds(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryMovieRepository()

	// force the generator to repeat an id that belonged to a deleted movie
	ids := []string{"a", "a", "b"}
	repo.newID = func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}

	first, _ := repo.Create(ctx, "First", "Drama")
	repo.Delete(ctx, first.ID)

	second, _ := repo.Create(ctx, "Second", "Drama")

	if first.ID != "a" {
		t.Fatalf("first id = %q, want %q", first.ID, "a")
	}
	if second.ID != "b" {
		t.Errorf("second id = %q, want %q", second.ID, "b")
	}
}

func TestMemoryMovieRepository_ConcurrentCreates(t *testing.T) {
	const callers = 64

	ctx := context.Background()
	repo := NewMemoryMovieRepository()

	var wg sync.WaitGroup
	results := make([]*domain.Movie, callers)

	for i := range callers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			m, err := repo.Create(ctx, fmt.Sprintf("Title %d", i), fmt.Sprintf("Genre %d", i))
			if err != nil {
				t.Errorf("Create() error = %v", err)
				return
			}
			results[i] = m
		}(i)
	}

	wg.Wait()

	seen := make(map[string]struct{}, callers)
	for i, m := range results {
		if _, dup := seen[m.ID]; dup {
			t.Fatalf("duplicate id %q", m.ID)
		}
		seen[m.ID] = struct{}{}

		got, err := repo.GetById(ctx, m.ID)
		if err != nil {
			t.Fatalf("GetById(%q) error = %v", m.ID, err)
		}

		want := &domain.Movie{ID: m.ID, Title: fmt.Sprintf("Title %d", i), Genre: fmt.Sprintf("Genre %d", i)}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("movie %d corrupted (-want +got):\n%s", i, diff)
		}
	}

	if got := repo.Count(); got != callers {
		t.Errorf("Count() = %d, want %d", got, callers)
	}
}

func TestMemoryMovieRepository_ConcurrentMixedOperations(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryMovieRepository()

	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			m, _ := repo.Create(ctx, "Title", "Genre")
			repo.Update(ctx, m.ID, fmt.Sprintf("Title %d", i), "Genre")
			repo.GetAll(ctx)

			if i%2 == 0 {
				repo.Delete(ctx, m.ID)
			}
		}(i)
	}

	wg.Wait()

	movies, _ := repo.GetAll(ctx)
	if len(movies) != 16 {
		t.Errorf("len(GetAll()) = %d, want 16", len(movies))
	}
}
