package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"pacai/agent"
	"pacai/game"
	"pacai/searcher"

	"github.com/google/uuid"
)

// RemoteAgent asks an agent server for moves over HTTP.
type RemoteAgent struct {
	URL         string
	Budget      *int   // Server default when nil
	Propagation string // Server default when empty
	Client      *http.Client
}

func NewRemoteAgent(url string) *RemoteAgent {
	return &RemoteAgent{
		URL:    url,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (a *RemoteAgent) FindMove(state game.State) (game.Move, searcher.Decision, error) {
	return a.FindMoveContext(context.Background(), state)
}

// FindMoveContext posts the state to /decide and decodes the chosen move.
func (a *RemoteAgent) FindMoveContext(ctx context.Context, state game.State) (game.Move, searcher.Decision, error) {
	payload := agent.DecideRequest{
		State:       state,
		Budget:      a.Budget,
		Propagation: a.Propagation,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, searcher.Decision{}, fmt.Errorf("failed to encode state: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.URL+"/decide", bytes.NewReader(body))
	if err != nil {
		return 0, searcher.Decision{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(agent.RequestIDHeader, uuid.NewString())

	resp, err := a.Client.Do(req)
	if err != nil {
		return 0, searcher.Decision{}, fmt.Errorf("failed to reach agent: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		out, _ := io.ReadAll(resp.Body)
		return 0, searcher.Decision{}, fmt.Errorf("agent returned status %d: %s", resp.StatusCode, bytes.TrimSpace(out))
	}

	var decided agent.DecideResponse
	if err := json.NewDecoder(resp.Body).Decode(&decided); err != nil {
		return 0, searcher.Decision{}, fmt.Errorf("failed to decode decision: %w", err)
	}
	return decided.Move, decided.Decision(), nil
}
