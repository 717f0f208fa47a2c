package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"pegsolitaire/engine"
)

// GameRecord is one row of game_records.csv.
type GameRecord struct {
	ID     int
	Seed   uint64
	Shape  string
	Arm    int
	Score  int
	Moves  int
	Solved bool
}

// MoveRecord is one row of move_records.csv.
type MoveRecord struct {
	Game  int // GameRecord.ID
	Step  int
	Move  string
	Score int
	Hash  uint64
}

// Records flattens a finished engine into its game row and one row per move.
func Records(id int, seed uint64, e *engine.Engine) (GameRecord, []MoveRecord) {
	s := e.Summary()
	game := GameRecord{
		ID:     id,
		Seed:   seed,
		Shape:  e.State.Shape().String(),
		Arm:    e.State.Arm(),
		Score:  s.Score,
		Moves:  s.Moves,
		Solved: s.Solved(),
	}
	moves := make([]MoveRecord, 0, len(e.Updates))
	for i, u := range e.Updates {
		moves = append(moves, MoveRecord{
			Game:  id,
			Step:  i + 1,
			Move:  u.Move.String(),
			Score: u.Score,
			Hash:  u.Hash,
		})
	}
	return game, moves
}

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of root named by the current timestamp.
func NewWriter(root string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405.000000000Z")
	baseDir := filepath.Join(root, timestamp)
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

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.FormatUint(record.Seed, 10),
			record.Shape,
			strconv.Itoa(record.Arm),
			strconv.Itoa(record.Score),
			strconv.Itoa(record.Moves),
			strconv.FormatBool(record.Solved),
		})
	}
	header := []string{"id", "seed", "shape", "arm", "score", "moves", "solved"}
	if err := w.write("game_records.csv", header, rows); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	return nil
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Move,
			strconv.Itoa(record.Score),
			strconv.FormatUint(record.Hash, 16),
		})
	}
	header := []string{"game", "step", "move", "score", "hash"}
	if err := w.write("move_records.csv", header, rows); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	return nil
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	f, err := os.Create(filepath.Join(w.baseDir, name))
	if err != nil {
		return err
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return err
	}
	if err := writer.WriteAll(rows); err != nil {
		return err
	}
	return f.Close()
}
