// Command adduser creates a user in the configured storage backend.
//
//	DATABASE_URL=sqlite://./data/showroom.db adduser -username admin -password 'secret123'
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/mmynk/showroom/internal/accounts"
	"github.com/mmynk/showroom/internal/config"
	"github.com/mmynk/showroom/internal/storage/backend"
	"github.com/mmynk/showroom/pkg/logging"
)

func main() {
	username := flag.String("username", "", "username for the new account")
	password := flag.String("password", "", "password for the new account (at least 8 characters)")
	flag.Parse()

	if *username == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	if cfg.DatabaseURL == "" {
		slog.Warn("DATABASE_URL not set, the user will only exist for the lifetime of this command")
	}

	ctx := context.Background()
	store, err := backend.Open(ctx, cfg)
	if err != nil {
		slog.Error("Failed to open storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	user, err := accounts.NewRegistrar(store).Register(ctx, *username, *password)
	if err != nil {
		slog.Error("Failed to create user", "username", *username, "error", err)
		store.Close()
		os.Exit(1)
	}

	slog.Info("User created", "id", user.ID, "username", user.Username, "backend", store.Name())
	fmt.Println(user.ID)
}
