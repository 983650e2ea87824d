// Package server is the HTTP adapter in front of the panchanga
// engine: it parses and validates the wire request, invokes the pure
// core once per request, and serializes the result. Requests share
// no state, so no coordination happens here.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ansel1/merry"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"panchangad/astro"
	"panchangad/internal/store"
	"panchangad/panchanga"
)

type PanchangRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
	Zone string `json:"zone"`
}

// PanchangData is the response payload: display strings only, with
// the paksha folded into the tithi field.
type PanchangData struct {
	Tithi     string `json:"tithi"`
	Nakshatra string `json:"nakshatra"`
	Yoga      string `json:"yoga"`
	Karana    string `json:"karana"`
	Rashi     string `json:"rashi"`
}

// envelope is the response wrapper every endpoint uses.
type envelope struct {
	Status     string      `json:"status"`
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Timestamp  time.Time   `json:"timestamp"`
	RequestID  string      `json:"requestId"`
}

type Server struct {
	log   *zap.Logger
	store *store.Store
	mux   *http.ServeMux
}

// New builds a Server with its routes registered. The store may be
// nil, in which case computations are served but not recorded.
func New(log *zap.Logger, st *store.Store) *Server {
	s := &Server{
		log:   log,
		store: st,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.healthHandler)
	mux.HandleFunc("/panchang", s.panchangHandler)
	s.mux = mux

	return s
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, http.StatusOK, envelope{
		Status:    "healthy",
		Message:   "service is running",
		RequestID: uuid.NewString(),
	})
}

func (s *Server) panchangHandler(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()

	if r.Method != http.MethodPost {
		s.writeError(w, requestID, http.StatusMethodNotAllowed,
			fmt.Errorf("method %s not allowed", r.Method))
		return
	}

	var req PanchangRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, requestID, http.StatusBadRequest,
			fmt.Errorf("decode request body: %w", err))
		return
	}

	moment, err := ParseMoment(req)
	if err != nil {
		s.writeError(w, requestID, merry.HTTPCode(err), err)
		return
	}

	result, err := panchanga.Compute(moment)
	if err != nil {
		s.writeError(w, requestID, merry.HTTPCode(err), err)
		return
	}

	s.record(r, req, moment, result)
	s.log.Info("computed panchanga",
		zap.String("requestId", requestID),
		zap.String("date", req.Date),
		zap.String("tithi", result.TithiName),
		zap.String("rashi", result.RashiName),
	)

	writeEnvelope(w, http.StatusOK, envelope{
		Status:    "success",
		Message:   "panchang data fetched successfully",
		Data:      formatResult(result),
		RequestID: requestID,
	})
}

// record persists the served computation. Store failures are logged
// and swallowed: the client already has its answer.
func (s *Server) record(r *http.Request, req PanchangRequest, moment astro.CivilMoment, result panchanga.Result) {
	if s.store == nil {
		return
	}

	_, err := s.store.Save(r.Context(), store.Computation{
		CivilDate:        req.Date,
		CivilTime:        req.Time,
		UTCOffsetMinutes: moment.UTCOffsetMinutes,
		JulianDay:        result.JulianDay,
		Tithi:            result.TithiName,
		Paksha:           string(result.Paksha),
		Nakshatra:        result.NakshatraName,
		Yoga:             result.YogaName,
		Karana:           result.KaranaName,
		Rashi:            result.RashiName,
	})
	if err != nil {
		s.log.Warn("record computation", zap.Error(err))
	}
}

func formatResult(result panchanga.Result) PanchangData {
	return PanchangData{
		Tithi:     fmt.Sprintf("%s, %s Paksha", result.TithiName, result.Paksha),
		Nakshatra: result.NakshatraName,
		Yoga:      result.YogaName,
		Karana:    result.KaranaName,
		Rashi:     result.RashiName,
	}
}

func (s *Server) writeError(w http.ResponseWriter, requestID string, code int, err error) {
	if code == 0 {
		code = http.StatusInternalServerError
	}
	s.log.Warn("request failed",
		zap.String("requestId", requestID),
		zap.Int("status", code),
		zap.Error(err),
	)
	writeEnvelope(w, code, envelope{
		Status:    "error",
		Message:   err.Error(),
		RequestID: requestID,
	})
}

func writeEnvelope(w http.ResponseWriter, code int, env envelope) {
	env.StatusCode = code
	env.Timestamp = time.Now().UTC()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(env)
}
