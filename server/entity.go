package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"medialog/pkg/catalog"
	"medialog/pkg/logger"
	"medialog/pkg/machine"
	"medialog/pkg/storage"
)

func entityID(r *http.Request) (int64, error) {
	vars := mux.Vars(r)
	return strconv.ParseInt(vars["id"], 10, 64)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, machine.ErrInvalidTransition):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// decodeBody reads and unmarshals a request body, then validates it
func decodeBody(r *http.Request, into any) error {
	b, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(b, into); err != nil {
		return err
	}

	return validate.Struct(into)
}

// ListEntities lists all tracked entities
func (s Server) ListEntities() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		entities, err := s.tracker.List(r.Context())
		if err != nil {
			log.Error("failed to list entities", zap.Error(err))
			http.Error(w, "failed to list entities", http.StatusInternalServerError)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{
			Response: entities,
		})
	}
}

type createEntityRequest struct {
	CatalogID  int64  `json:"catalogId" validate:"required"`
	MediaType  string `json:"mediaType" validate:"required,oneof=show movie"`
	Title      string `json:"title" validate:"required"`
	PosterPath string `json:"posterPath"`
	FirstDate  string `json:"firstDate"`
}

// CreateEntity starts tracking a catalog entry
func (s Server) CreateEntity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		var request createEntityRequest
		if err := decodeBody(r, &request); err != nil {
			log.Debug("invalid request body", zap.Error(err))
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		entity, err := s.tracker.Track(r.Context(), catalog.Match{
			CatalogID:  request.CatalogID,
			MediaType:  catalog.MediaType(request.MediaType),
			Title:      request.Title,
			PosterPath: request.PosterPath,
			FirstDate:  request.FirstDate,
		})
		if err != nil {
			writeErrorResponse(w, statusFor(err), err)
			return
		}

		writeResponse(w, http.StatusCreated, GenericResponse{
			Response: entity,
		})
	}
}

// GetEntity returns one tracked entity
func (s Server) GetEntity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := entityID(r)
		if err != nil {
			http.Error(w, "invalid entity id", http.StatusBadRequest)
			return
		}

		entity, err := s.tracker.Get(r.Context(), id)
		if err != nil {
			writeErrorResponse(w, statusFor(err), err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{
			Response: entity,
		})
	}
}

// DeleteEntity stops tracking an entity
func (s Server) DeleteEntity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := entityID(r)
		if err != nil {
			http.Error(w, "invalid entity id", http.StatusBadRequest)
			return
		}

		if err := s.tracker.Remove(r.Context(), id); err != nil {
			writeErrorResponse(w, statusFor(err), err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{})
	}
}

type markEpisodeRequest struct {
	Season    int32 `json:"season" validate:"gte=0"`
	Episode   int32 `json:"episode" validate:"gte=1"`
	EpisodeID int64 `json:"episodeId"`
}

// MarkEpisodeWatched records one episode in an entity's ledger
func (s Server) MarkEpisodeWatched() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		id, err := entityID(r)
		if err != nil {
			http.Error(w, "invalid entity id", http.StatusBadRequest)
			return
		}

		var request markEpisodeRequest
		if err := decodeBody(r, &request); err != nil {
			log.Debug("invalid request body", zap.Error(err))
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		err = s.tracker.MarkEpisodeWatched(r.Context(), id, request.Season, request.Episode, request.EpisodeID)
		if err != nil {
			writeErrorResponse(w, statusFor(err), err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{})
	}
}

type unwatchEpisodeRequest struct {
	Season  int32 `json:"season" validate:"gte=0"`
	Episode int32 `json:"episode" validate:"gte=1"`
}

// UnwatchEpisode removes one episode from an entity's ledger
func (s Server) UnwatchEpisode() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		id, err := entityID(r)
		if err != nil {
			http.Error(w, "invalid entity id", http.StatusBadRequest)
			return
		}

		var request unwatchEpisodeRequest
		if err := decodeBody(r, &request); err != nil {
			log.Debug("invalid request body", zap.Error(err))
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		err = s.tracker.UnwatchEpisode(r.Context(), id, request.Season, request.Episode)
		if err != nil {
			writeErrorResponse(w, statusFor(err), err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{})
	}
}

type setStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=plan_to_watch watching on_hold completed dropped"`
}

// SetStatus moves an entity to an explicitly chosen status
func (s Server) SetStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		id, err := entityID(r)
		if err != nil {
			http.Error(w, "invalid entity id", http.StatusBadRequest)
			return
		}

		var request setStatusRequest
		if err := decodeBody(r, &request); err != nil {
			log.Debug("invalid request body", zap.Error(err))
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		err = s.tracker.SetStatus(r.Context(), id, storage.EntityState(request.Status))
		if err != nil {
			writeErrorResponse(w, statusFor(err), err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{})
	}
}

type setFavoriteRequest struct {
	Favorite bool `json:"favorite"`
}

// SetFavorite flips the favorite flag on an entity
func (s Server) SetFavorite() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		id, err := entityID(r)
		if err != nil {
			http.Error(w, "invalid entity id", http.StatusBadRequest)
			return
		}

		var request setFavoriteRequest
		if err := decodeBody(r, &request); err != nil {
			log.Debug("invalid request body", zap.Error(err))
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		err = s.tracker.SetFavorite(r.Context(), id, request.Favorite)
		if err != nil {
			writeErrorResponse(w, statusFor(err), err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{})
	}
}

// GetProgress returns the aggregator output for one entity
func (s Server) GetProgress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := entityID(r)
		if err != nil {
			http.Error(w, "invalid entity id", http.StatusBadRequest)
			return
		}

		progress, err := s.tracker.GetProgress(r.Context(), id, time.Now())
		if err != nil {
			writeErrorResponse(w, statusFor(err), err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{
			Response: progress,
		})
	}
}

// Search free-text searches the catalog
func (s Server) Search() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		query := r.URL.Query().Get("q")
		if query == "" {
			http.Error(w, "query is empty", http.StatusBadRequest)
			return
		}

		matches, err := s.tracker.Search(r.Context(), query)
		if err != nil {
			log.Error("search failed", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{
			Response: matches,
		})
	}
}
