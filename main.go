package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/danielhkuo/equb-registry/cliparse"
	"github.com/danielhkuo/equb-registry/db"
	"github.com/danielhkuo/equb-registry/router"
	"github.com/danielhkuo/equb-registry/store"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	setupLogging(cfg.LogFormat)

	ctx := context.Background()

	// Connect and verify
	dbConn, err := db.Open(ctx, cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err, "type", cfg.DatabaseType)
		os.Exit(1)
	}
	memberStore := store.New(dbConn, cfg.DatabaseType)
	defer memberStore.Close()

	// Create schema (tables)
	if err := db.CreateSchema(ctx, dbConn, cfg.DatabaseType); err != nil {
		slog.Error("schema creation failed", "error", err)
		memberStore.Close()
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	// Create server
	server := http.Server{
		Handler: router.NewRouter(memberStore),
		Addr:    net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Server is running", "addr", server.Addr)
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

func setupLogging(format string) {
	if format == "json" {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))
	}
}
