package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"

	adapthttp "calculator/internal/adapter/http"
	"calculator/internal/adapter/memory"
	"calculator/internal/adapter/postgres"
	"calculator/internal/app"
	"calculator/internal/domain"
)

func main() {
	addr := env("ADDR", ":8080")

	var (
		users    domain.UserRepository
		profiles domain.ProfileRepository
		history  domain.HistoryRepository
		sessions domain.SessionRepository
	)

	if os.Getenv("MEMORY") == "1" {
		// In-memory store for local development; all data is lost on exit.
		db := memory.New()
		users, profiles, history = db, db, db
		sessions = memory.NewSessionRepo(db)
		log.Print("using in-memory storage")
	} else {
		connStr := os.Getenv("DATABASE_URL")
		if connStr == "" {
			log.Fatal("DATABASE_URL is required (or set MEMORY=1)")
		}
		db, err := postgres.Open(connStr)
		if err != nil {
			log.Fatalf("db open: %v", err)
		}
		defer func() { _ = db.Close() }()
		users, profiles, history = db, db, db
		sessions = postgres.NewSessionRepo(db)
	}

	oidcConfig, err := adapthttp.NewOIDCConfig(
		context.Background(),
		os.Getenv("OIDC_ISSUER"),
		os.Getenv("OIDC_CLIENT_ID"),
		os.Getenv("OIDC_CLIENT_SECRET"),
		os.Getenv("OIDC_REDIRECT_URL"),
	)
	if err != nil {
		log.Fatalf("oidc setup: %v", err)
	}

	cfg := app.DefaultNeedsConfig()
	svcs := adapthttp.Services{
		Auth:     app.NewAuthService(users, profiles, sessions),
		Profile:  app.NewProfileService(profiles),
		Entries:  app.NewEntryService(history),
		History:  app.NewHistoryService(history),
		Trends:   app.NewTrendsService(history, cfg),
		Needs:    app.NewNeedsService(profiles, history, cfg),
		Transfer: app.NewTransferService(history),
	}

	h := adapthttp.New(svcs, oidcConfig).Handler()
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
