package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"medialog/pkg/logger"
	"medialog/pkg/tracker"
)

// Import reconciles an exported foreign history against the catalog
func (s Server) Import() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		b, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "failed to read request body", http.StatusBadRequest)
			return
		}

		records, err := tracker.ParseForeignRecords(b)
		if err != nil {
			log.Debug("failed to parse import payload", zap.Error(err))
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		result, err := s.tracker.ImportHistory(r.Context(), records, nil)
		if err != nil {
			if errors.Is(err, tracker.ErrInvalidPayload) {
				writeErrorResponse(w, http.StatusBadRequest, err)
				return
			}
			log.Error("import failed", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{
			Response: result,
		})
	}
}

type confirmImportResponse struct {
	Shows  int `json:"shows"`
	Movies int `json:"movies"`
}

// ConfirmImport imports pending items the user has reviewed
func (s Server) ConfirmImport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		b, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "failed to read request body", http.StatusBadRequest)
			return
		}

		var items []tracker.PendingImportItem
		if err := json.Unmarshal(b, &items); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		shows, movies, err := s.tracker.ProcessPendingImports(r.Context(), items)
		if err != nil {
			log.Error("confirm import failed", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{
			Response: confirmImportResponse{Shows: shows, Movies: movies},
		})
	}
}

type scanResponse struct {
	Promoted int `json:"promoted"`
}

// Scan runs one catch-up scan over tracked shows
func (s Server) Scan() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		promoted, err := s.tracker.ScanForCompleted(r.Context(), nil)
		if err != nil {
			if errors.Is(err, tracker.ErrScanUnavailable) {
				writeErrorResponse(w, http.StatusServiceUnavailable, err)
				return
			}
			log.Error("scan failed", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{
			Response: scanResponse{Promoted: promoted},
		})
	}
}
