package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/movie-service/api"
	"github.com/metinatakli/movie-service/api/moviepb"
)

func (app *Application) ListMovies(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := app.rpcContext(r)
	defer cancel()

	resp, err := app.movies.GetMovies(ctx, &moviepb.ReadMoviesRequest{})
	if err != nil {
		app.rpcErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiMovies(resp.GetMovies()), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var input api.MovieInput

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	ctx, cancel := app.rpcContext(r)
	defer cancel()

	resp, err := app.movies.CreateMovie(ctx, &moviepb.CreateMovieRequest{
		Movie: &moviepb.Movie{Title: input.Title, Genre: input.Genre},
	})
	if err != nil {
		app.rpcErrorResponse(w, r, err)
		return
	}

	movie := toApiMovie(resp.GetMovie())

	app.contextGetLogger(r).Info("movie created", "movie_id", movie.Id)

	headers := make(http.Header)
	headers.Set("Location", "/movies/"+movie.Id)

	err = app.writeJSON(w, http.StatusCreated, movie, headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovie(w http.ResponseWriter, r *http.Request, id string) {
	ctx, cancel := app.rpcContext(r)
	defer cancel()

	resp, err := app.movies.GetMovie(ctx, &moviepb.ReadMovieRequest{Id: id})
	if err != nil {
		app.rpcErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiMovie(resp.GetMovie()), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateMovie(w http.ResponseWriter, r *http.Request, id string) {
	var input api.UpdateMovieInput

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if input.Id != nil && *input.Id != id {
		app.badRequestResponse(w, r, errors.New(ErrIdMismatch))
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	ctx, cancel := app.rpcContext(r)
	defer cancel()

	resp, err := app.movies.UpdateMovie(ctx, &moviepb.UpdateMovieRequest{
		Movie: &moviepb.Movie{Id: id, Title: input.Title, Genre: input.Genre},
	})
	if err != nil {
		app.rpcErrorResponse(w, r, err)
		return
	}

	app.contextGetLogger(r).Info("movie updated", "movie_id", id)

	err = app.writeJSON(w, http.StatusOK, toApiMovie(resp.GetMovie()), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteMovie(w http.ResponseWriter, r *http.Request, id string) {
	ctx, cancel := app.rpcContext(r)
	defer cancel()

	resp, err := app.movies.DeleteMovie(ctx, &moviepb.DeleteMovieRequest{Id: id})
	if err != nil {
		app.rpcErrorResponse(w, r, err)
		return
	}

	if resp.GetSuccess() {
		app.contextGetLogger(r).Info("movie deleted", "movie_id", id)
	}

	err = app.writeJSON(w, http.StatusOK, api.DeleteMovieResponse{Success: resp.GetSuccess()}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiMovie(movie *moviepb.Movie) api.Movie {
	return api.Movie{
		Id:    movie.GetId(),
		Title: movie.GetTitle(),
		Genre: movie.GetGenre(),
	}
}

func toApiMovies(movies []*moviepb.Movie) []api.Movie {
	apiMovies := make([]api.Movie, len(movies))

	for i, movie := range movies {
		apiMovies[i] = toApiMovie(movie)
	}

	return apiMovies
}
