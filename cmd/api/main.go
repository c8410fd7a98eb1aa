package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/sales-crm/internal/config"
	dbpkg "github.com/BruksfildServices01/sales-crm/internal/db"
	"github.com/BruksfildServices01/sales-crm/internal/routes"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run serves until a signal or a listen error. Deferred cleanup flushes the
// audit queue before main exits.
func run() error {
	cfg := config.Load()
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	// runs after srv.Shutdown, flushing queued audit events
	shutdown := routes.RegisterRoutes(r, db, cfg)
	defer shutdown()

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("Server running on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		log.Println("shutting down")
	case runErr = <-serveErr:
		runErr = fmt.Errorf("failed to start server: %w", runErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		// handlers still running may dispatch after the audit queue closes;
		// those events are dropped
		log.Printf("server shutdown: %v", err)
	}
	return runErr
}
