package agent

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"time"

	"pacai/game"
	"pacai/searcher"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const RequestIDHeader = "X-Request-ID"

// DecideRequest asks for a move. Budget and propagation fall back to the
// server defaults when omitted.
type DecideRequest struct {
	State       game.State `json:"state"`
	Budget      *int       `json:"budget,omitempty"`
	Propagation string     `json:"propagation,omitempty"`
}

type DecideResponse struct {
	Move      game.Move               `json:"move"`
	Stats     string                  `json:"stats"`
	Scores    [game.NumMoves]*float64 `json:"scores"` // null for moves never sampled
	Samples   [game.NumMoves]int      `json:"samples"`
	Expanded  int                     `json:"expanded"`
	Generated int                     `json:"generated"`
	Pruned    int                     `json:"pruned"`
	MaxDepth  int                     `json:"maxDepth"`
	Elapsed   time.Duration           `json:"elapsed"`
}

func NewDecideResponse(d searcher.Decision) DecideResponse {
	resp := DecideResponse{
		Move:      d.Move,
		Stats:     d.String(),
		Samples:   d.Samples,
		Expanded:  d.Expanded,
		Generated: d.Generated,
		Pruned:    d.Pruned,
		MaxDepth:  d.MaxDepth,
		Elapsed:   d.Elapsed,
	}
	for i, score := range d.Scores {
		if !math.IsInf(score, 0) && !math.IsNaN(score) {
			v := score
			resp.Scores[i] = &v
		}
	}
	return resp
}

// Decision converts the response back into search statistics.
func (r DecideResponse) Decision() searcher.Decision {
	d := searcher.Decision{
		Move:      r.Move,
		Samples:   r.Samples,
		Expanded:  r.Expanded,
		Generated: r.Generated,
		Pruned:    r.Pruned,
		MaxDepth:  r.MaxDepth,
		Elapsed:   r.Elapsed,
	}
	for i, score := range r.Scores {
		d.Scores[i] = math.Inf(-1)
		if score != nil {
			d.Scores[i] = *score
		}
	}
	return d
}

type TotalsResponse struct {
	Generated int64         `json:"generated"`
	Expanded  int64         `json:"expanded"`
	MaxDepth  int           `json:"maxDepth"`
	Elapsed   time.Duration `json:"elapsed"`
}

// Server exposes a planner over HTTP.
type Server struct {
	planner     *searcher.Planner
	budget      int
	propagation searcher.Propagation
}

func NewServer(planner *searcher.Planner, budget int, propagation searcher.Propagation) *Server {
	return &Server{planner: planner, budget: budget, propagation: propagation}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /decide", s.handleDecide)
	mux.HandleFunc("GET /totals", s.handleTotals)
	return mux
}

// ListenAndServe serves the agent on addr until the server fails.
func (s *Server) ListenAndServe(addr string) error {
	log.Info().Str("addr", addr).Msg("starting agent server")
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) handleDecide(w http.ResponseWriter, r *http.Request) {
	requestID := r.Header.Get(RequestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	logger := log.With().Str("request_id", requestID).Logger()

	var req DecideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn().Err(err).Msg("bad decide request")
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := req.State.Validate(); err != nil {
		logger.Warn().Err(err).Msg("bad decide state")
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}

	budget := s.budget
	if req.Budget != nil {
		budget = *req.Budget
	}
	if budget < 0 {
		http.Error(w, "bad request: budget must not be negative", http.StatusBadRequest)
		return
	}
	propagation := s.propagation
	if req.Propagation != "" {
		p, err := searcher.ParsePropagation(req.Propagation)
		if err != nil {
			http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
			return
		}
		propagation = p
	}

	d := s.planner.Search(req.State, budget, propagation)
	logger.Info().
		Stringer("move", d.Move).
		Int("budget", budget).
		Int("expanded", d.Expanded).
		Dur("elapsed", d.Elapsed).
		Msg("decided")

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set(RequestIDHeader, requestID)
	if err := json.NewEncoder(w).Encode(NewDecideResponse(d)); err != nil {
		logger.Error().Err(err).Msg("failed to encode decision")
	}
}

func (s *Server) handleTotals(w http.ResponseWriter, r *http.Request) {
	t := s.planner.Totals()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(TotalsResponse(t)); err != nil {
		log.Error().Err(err).Msg("failed to encode totals")
	}
}
