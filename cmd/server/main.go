package main

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load()

	log := logrus.New()
	if lvl, err := logrus.ParseLevel(getenv("LOG_LEVEL", "info")); err == nil {
		log.SetLevel(lvl)
	}
	if getenv("LOG_FORMAT", "text") == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	srv := newServer(log)
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", srv.handleHealth)
	r.Route("/tables", func(r chi.Router) {
		r.Post("/", srv.handleCreateTable)
		r.Route("/{tableID}", func(r chi.Router) {
			r.Get("/", srv.handleState)
			r.Post("/actions", srv.handleAction)
			r.Post("/tick", srv.handleTick)
			r.Delete("/seats/{seatID}", srv.handleLeave)
		})
	})

	addr := ":" + getenv("PORT", "8080")
	log.WithField("addr", addr).Info("listening")
	if err := http.ListenAndServe(addr, r); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
