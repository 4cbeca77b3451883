package main

import (
	"log/slog"
	"os"

	"github.com/metinatakli/movie-service/internal/app"
)

func main() {
	err := app.Run()
	if err != nil {
		slog.Error("movie service exited", "error", err)
		os.Exit(1)
	}
}
