package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"medialog/pkg/tracker"
)

type GenericResponse struct {
	Error    *string `json:"error,omitempty"`
	Response any     `json:"response"`
}

var validate = validator.New()

// Server houses the dependencies the http api needs: the tracker and a base logger.
type Server struct {
	baseLogger *zap.SugaredLogger
	tracker    tracker.Tracker
}

// New creates a new tracking server
func New(logger *zap.SugaredLogger, tracker tracker.Tracker) Server {
	return Server{
		baseLogger: logger,
		tracker:    tracker,
	}
}

func writeErrorResponse(w http.ResponseWriter, status int, err error) error {
	msg := err.Error()
	return writeResponse(w, status, GenericResponse{
		Error: &msg,
	})
}

func writeResponse(w http.ResponseWriter, status int, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	w.Header().Set("content-type", "application/json")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}

	w.Write(b)
	return nil
}

// Serve starts the http server and is a blocking call
func (s Server) Serve(port int) error {
	rtr := mux.NewRouter()
	rtr.Use(s.LogMiddleware())
	rtr.HandleFunc("/healthz", s.Healthz()).Methods(http.MethodGet)

	api := rtr.PathPrefix("/api").Subrouter()

	v1 := api.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/entities", s.ListEntities()).Methods(http.MethodGet)
	v1.HandleFunc("/entities", s.CreateEntity()).Methods(http.MethodPost)
	v1.HandleFunc("/entities/{id}", s.GetEntity()).Methods(http.MethodGet)
	v1.HandleFunc("/entities/{id}", s.DeleteEntity()).Methods(http.MethodDelete)
	v1.HandleFunc("/entities/{id}/episodes", s.MarkEpisodeWatched()).Methods(http.MethodPost)
	v1.HandleFunc("/entities/{id}/episodes", s.UnwatchEpisode()).Methods(http.MethodDelete)
	v1.HandleFunc("/entities/{id}/status", s.SetStatus()).Methods(http.MethodPut)
	v1.HandleFunc("/entities/{id}/favorite", s.SetFavorite()).Methods(http.MethodPut)
	v1.HandleFunc("/entities/{id}/progress", s.GetProgress()).Methods(http.MethodGet)

	v1.HandleFunc("/search", s.Search()).Methods(http.MethodGet)

	v1.HandleFunc("/import", s.Import()).Methods(http.MethodPost)
	v1.HandleFunc("/import/confirm", s.ConfirmImport()).Methods(http.MethodPost)
	v1.HandleFunc("/scan", s.Scan()).Methods(http.MethodPost)

	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
	)(rtr)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: corsHandler,
	}

	go func() {
		s.baseLogger.Info("serving...", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil {
			s.baseLogger.Error(err.Error())
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	return srv.Shutdown(ctx)
}

// Healthz is an endpoint that can be used for probes
func (s Server) Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := GenericResponse{
			Response: "ok",
		}
		writeResponse(w, http.StatusOK, response)
	}
}
