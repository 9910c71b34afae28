package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/sessiondesk/server/cliparse"
	"github.com/sessiondesk/server/db"
	"github.com/sessiondesk/server/router"
	"github.com/sessiondesk/server/sheet"
)

func main() {
	// .env is optional; deployments set real environment variables
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Construct the worksheet store for the selected backend. The handle is
	// passed down explicitly; there is no package-level credential state.
	var store sheet.Store
	switch cfg.Backend {
	case cliparse.BackendGoogle:
		gs, err := sheet.NewGoogleStore(context.Background(), cfg.CredentialsFile, cfg.SpreadsheetID)
		if err != nil {
			slog.Error("sheets client setup failed", "error", err)
			os.Exit(1)
		}
		store = gs

	default:
		driver := "sqlite"
		if cfg.Backend == cliparse.BackendPostgres {
			driver = "postgres"
		}
		conn, err := sql.Open(driver, cfg.DatabaseURL)
		if err != nil {
			slog.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		defer conn.Close()

		// Verify connection
		if err := conn.Ping(); err != nil {
			slog.Error("database ping failed", "error", err)
			os.Exit(1)
		}

		// Create schema (tables)
		if err := db.CreateSchema(conn); err != nil {
			slog.Error("schema creation failed", "error", err)
			os.Exit(1)
		}
		store = sheet.NewSQLStore(conn)
	}

	// Make sure both worksheets exist with their canonical headers before
	// taking traffic.
	if _, err := sheet.Open(store, sheet.AttendanceSheet, sheet.AttendanceHeader); err != nil {
		slog.Error("attendance worksheet setup failed", "error", err)
		os.Exit(1)
	}
	if _, err := sheet.Open(store, sheet.FeedbackSheet, sheet.FeedbackHeader); err != nil {
		slog.Error("feedback worksheet setup failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Worksheet store ready", "backend", cfg.Backend)

	// Create router
	mux := router.NewRouter(store, cfg)

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
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
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
