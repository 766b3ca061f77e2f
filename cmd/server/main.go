package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"
	"travelpins/internal/adapters/repositories"
	"travelpins/internal/api"
	"travelpins/internal/config"
	"travelpins/internal/platform/graceful"
	"travelpins/internal/services"
	"travelpins/internal/store"

	"github.com/joho/godotenv"
)

// main is the application composition root.
// It opens the pin store, wraps it in the PinService worker and serves the HTTP API.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	seedPath := config.Get("SEED_PATH", "")

	ctx, stop := graceful.Context(context.Background())
	defer stop()

	st, err := store.Open(store.Config{
		SQLitePath:  config.Get("DB_PATH", "data/pins.db"),
		DatabaseURL: config.Get("DATABASE_URL", ""),
	})
	if err != nil {
		log.Fatal(err)
	}
	defer st.Close()

	// Demo pins for local runs; seeding is skipped for ids already stored.
	if seedPath != "" {
		n, err := repositories.SeedFromJSON(ctx, st.Repo, seedPath)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("seeded pins count=%d path=%s", n, seedPath)
	}

	pins := services.NewPinService(st.Repo, 32)
	defer pins.Close()

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           api.NewRouter(pins),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server listening addr=:%s", port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Printf("server stopped: %v", err)
		}
		return
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	log.Println("Server stopped")
}
