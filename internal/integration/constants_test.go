package integration_test

const (
	TestMovieTitle = "Inception"
	TestMovieGenre = "Sci-Fi"

	UpdatedMovieTitle = "Interstellar"
	UpdatedMovieGenre = "Adventure"

	UnknownMovieId = "00000000-0000-0000-0000-000000000000"
)
