package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"pacai/game"

	"github.com/google/uuid"
)

type GameRecord struct {
	Agent int // AgentConfig.ID
	Seed  uint64
	GameMetric
}

type DecisionRecord struct {
	Game uuid.UUID // GameMetric.ID
	DecisionMetric
}

// ThroughputRecord summarizes the planner speed of one agent config over a
// game.
type ThroughputRecord struct {
	Agent     int
	Decisions int
	Expanded  int64
	Elapsed   time.Duration
}

func (r ThroughputRecord) ExpandedPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Expanded) / r.Elapsed.Seconds()
}

type Writer struct {
	baseDir string
}

// NewWriter creates a folder for the experiment under root, named by the
// experiment and the current timestamp.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	rows := [][]string{{"id", "budget", "propagation"}}
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			strconv.Itoa(config.Budget),
			config.Propagation.String(),
		})
	}
	if err := w.write("agent_configs.csv", rows); err != nil {
		return fmt.Errorf("failed to write agent configs: %w", err)
	}
	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := [][]string{{"id", "agent", "seed", "start_time", "end_time", "duration", "ticks", "score", "level", "lives", "game_over"}}
	for _, record := range records {
		rows = append(rows, []string{
			record.ID.String(),
			strconv.Itoa(record.Agent),
			strconv.FormatUint(record.Seed, 10),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.Ticks),
			strconv.Itoa(record.Score),
			strconv.Itoa(record.Level),
			strconv.Itoa(record.Lives),
			strconv.FormatBool(record.GameOver),
		})
	}
	if err := w.write("game_records.csv", rows); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	return nil
}

func (w *Writer) WriteDecisionRecords(records []DecisionRecord) error {
	header := []string{"game", "tick", "level", "score", "lives", "move", "expanded", "generated", "pruned", "max_depth", "duration"}
	for _, m := range game.Moves {
		header = append(header, "score_"+m.String())
	}
	rows := [][]string{header}
	for _, record := range records {
		row := []string{
			record.Game.String(),
			strconv.Itoa(record.Tick),
			strconv.Itoa(record.Level),
			strconv.Itoa(record.Score),
			strconv.Itoa(record.Lives),
			record.Move.String(),
			strconv.Itoa(record.Expanded),
			strconv.Itoa(record.Generated),
			strconv.Itoa(record.Pruned),
			strconv.Itoa(record.MaxDepth),
			record.Elapsed.String(),
		}
		for _, score := range record.Scores {
			row = append(row, strconv.FormatFloat(score, 'f', 4, 64))
		}
		rows = append(rows, row)
	}
	if err := w.write("decision_records.csv", rows); err != nil {
		return fmt.Errorf("failed to write decision records: %w", err)
	}
	return nil
}

func (w *Writer) WriteThroughputRecords(records []ThroughputRecord) error {
	rows := [][]string{{"agent", "decisions", "expanded", "elapsed", "expanded_per_sec"}}
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Agent),
			strconv.Itoa(record.Decisions),
			strconv.FormatInt(record.Expanded, 10),
			record.Elapsed.String(),
			strconv.FormatFloat(record.ExpandedPerSecond(), 'f', 2, 64),
		})
	}
	if err := w.write("throughput_records.csv", rows); err != nil {
		return fmt.Errorf("failed to write throughput records: %w", err)
	}
	return nil
}

func (w *Writer) write(name string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
