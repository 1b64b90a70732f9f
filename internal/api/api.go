// Package api exposes classification and similarity over a JSON HTTP API.
//
// The API is a thin stateless layer over the resolution and similarity
// engines: every handler is a pure function of its query, so the server
// needs no sessions, storage, or locking.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/partscout/partscout/pkg/component"
	"github.com/partscout/partscout/pkg/errors"
	"github.com/partscout/partscout/pkg/resolve"
	"github.com/partscout/partscout/pkg/similarity"
)

// Server holds the engines shared by all handlers.
type Server struct {
	eng    *resolve.Engine
	sim    *similarity.Engine
	logger *log.Logger
}

// NewRouter builds the chi router with all API routes mounted.
func NewRouter(eng *resolve.Engine, sim *similarity.Engine, logger *log.Logger) http.Handler {
	s := &Server{eng: eng, sim: sim, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/classify", s.handleClassify)
		r.Post("/classify", s.handleClassifyBatch)
		r.Get("/manufacturers", s.handleManufacturers)
		r.Get("/similarity", s.handleSimilarity)
	})

	return r
}

// =============================================================================
// Payloads
// =============================================================================

type classification struct {
	MPN            string `json:"mpn"`
	Manufacturer   string `json:"manufacturer"`
	ManufacturerID string `json:"manufacturer_id"`
	Type           string `json:"type"`
	Series         string `json:"series,omitempty"`
	Package        string `json:"package,omitempty"`
	Classified     bool   `json:"classified"`
}

type batchResponse struct {
	ID          string           `json:"id"`
	GeneratedAt time.Time        `json:"generated_at"`
	Count       int              `json:"count"`
	Items       []classification `json:"items"`
}

type candidate struct {
	Manufacturer   string `json:"manufacturer"`
	ManufacturerID string `json:"manufacturer_id"`
	Confidence     string `json:"confidence"`
}

type similarityResponse struct {
	A     string  `json:"a"`
	B     string  `json:"b"`
	Score float64 `json:"score"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	mpn := r.URL.Query().Get("mpn")
	if err := errors.ValidateMPN(mpn); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeJSON(w, http.StatusOK, s.classify(mpn))
}

func (s *Server) handleClassifyBatch(w http.ResponseWriter, r *http.Request) {
	var mpns []string
	if err := json.NewDecoder(r.Body).Decode(&mpns); err != nil {
		s.writeError(w, http.StatusBadRequest,
			errors.Wrap(errors.ErrCodeInvalidInput, err, "body must be a JSON array of MPN strings"))
		return
	}
	if len(mpns) == 0 {
		s.writeError(w, http.StatusBadRequest,
			errors.New(errors.ErrCodeInvalidInput, "empty MPN list"))
		return
	}

	items := make([]classification, 0, len(mpns))
	for _, mpn := range mpns {
		if err := errors.ValidateMPN(mpn); err != nil {
			s.writeError(w, http.StatusBadRequest, err)
			return
		}
		items = append(items, s.classify(mpn))
	}

	s.writeJSON(w, http.StatusOK, batchResponse{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Count:       len(items),
		Items:       items,
	})
}

func (s *Server) handleManufacturers(w http.ResponseWriter, r *http.Request) {
	mpn := r.URL.Query().Get("mpn")
	if err := errors.ValidateMPN(mpn); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	list := s.eng.PossibleManufacturers(mpn)
	out := make([]candidate, 0, len(list))
	for _, c := range list {
		out = append(out, candidate{
			Manufacturer:   c.Manufacturer.Name,
			ManufacturerID: string(c.Manufacturer.ID),
			Confidence:     c.Confidence.String(),
		})
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleSimilarity(w http.ResponseWriter, r *http.Request) {
	a := r.URL.Query().Get("a")
	b := r.URL.Query().Get("b")
	for _, mpn := range []string{a, b} {
		if err := errors.ValidateMPN(mpn); err != nil {
			s.writeError(w, http.StatusBadRequest, err)
			return
		}
	}

	s.writeJSON(w, http.StatusOK, similarityResponse{
		A:     resolve.Normalize(a),
		B:     resolve.Normalize(b),
		Score: s.sim.Score(a, b),
	})
}

// =============================================================================
// Helpers
// =============================================================================

func (s *Server) classify(mpn string) classification {
	m := s.eng.Manufacturer(mpn)
	typ := s.eng.Type(mpn)
	return classification{
		MPN:            resolve.Normalize(mpn),
		Manufacturer:   m.Name,
		ManufacturerID: string(m.ID),
		Type:           typ.String(),
		Series:         s.eng.Series(mpn),
		Package:        s.eng.PackageCode(mpn),
		Classified:     typ != component.Unknown,
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Errorf("encode response: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, errorResponse{
		Code:    string(errors.GetCode(err)),
		Message: errors.UserMessage(err),
	})
}
