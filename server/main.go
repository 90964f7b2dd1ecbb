package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"mindsoul/server/chat"
	"mindsoul/server/config"
	"mindsoul/server/handler"
	"mindsoul/server/room"
)

func main() {
	cfg := config.Load()

	collab := chat.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	registry := room.NewRegistry()

	r := mux.NewRouter()
	r.HandleFunc("/", handler.HandleRoot).Methods("GET")
	r.HandleFunc("/health", handler.HandleHealth).Methods("GET")
	r.HandleFunc("/chat", handler.HandleChat(collab)).Methods("POST")
	r.HandleFunc("/api/chat", handler.HandleChat(collab)).Methods("POST")
	r.HandleFunc("/ws", handler.HandleSocket(registry))

	srv := &http.Server{
		Handler:      r,
		Addr:         ":" + cfg.Port,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // websocket connections are long-lived
	}

	log.Info("server starting", "port", cfg.Port, "model", cfg.GeminiModel)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe error", "error", err)
		}
	}()

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c

	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server forced to shutdown", "error", err)
	}

	log.Info("server exiting")
}
