package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var opts []GameOption
	var analytics *Analytics
	if cfg.AnalyticsDB != "" {
		db, err := OpenDB(cfg.AnalyticsDB)
		if err != nil {
			log.Fatalf("analytics db: %v", err)
		}
		defer db.Close()
		analytics = NewAnalytics(db)
		defer analytics.Stop()
		opts = append(opts, WithEventSink(analytics))
		log.Printf("Recording analytics to %s", cfg.AnalyticsDB)
	}

	game := NewGame(opts...)
	go game.Run(ctx)

	hub := NewHub(game, cfg.MaxConnsPerIP, cfg.MaxConns)
	mux := SetupRoutes(hub, cfg.PublicDir, analytics)
	server := &http.Server{Addr: cfg.Addr(), Handler: mux}

	go func() {
		log.Printf("Server starting on %s", cfg.Addr())
		log.Printf("Serving client files from %s", cfg.PublicDir)
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
