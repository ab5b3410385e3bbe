package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/evcraddock/rems/internal/mockdata"
)

// invalidTypeMessage is the error body for a missing or unknown type.
const invalidTypeMessage = "Invalid data type requested"

// apiError writes a JSON error response.
func apiError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	resp := map[string]string{"error": msg}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("encoding error response", "error", err)
	}
}

// apiJSON writes a JSON response with the given status code.
func apiJSON(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encoding response", "error", err)
	}
}

// handleAPIData serves GET /api/data?type={properties|tenants|payments|expenses|tasks}.
// Only the first type value is considered.
func (s *Server) handleAPIData(w http.ResponseWriter, r *http.Request) {
	typ, err := mockdata.ParseType(r.URL.Query().Get("type"))
	if err != nil {
		apiError(w, invalidTypeMessage, http.StatusBadRequest)
		return
	}

	data, err := mockdata.Generate(typ, s.newSource(), s.now())
	if err != nil {
		if errors.Is(err, mockdata.ErrUnrecognizedType) {
			apiError(w, invalidTypeMessage, http.StatusBadRequest)
			return
		}
		apiError(w, "generating data", http.StatusInternalServerError)
		return
	}

	slog.Debug("generated sample data", "type", typ)
	apiJSON(w, data, http.StatusOK)
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	apiJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
