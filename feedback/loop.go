package feedback

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/jinzhu/now"
)

// UserPerformance is one answered-question outcome recorded by the user portal.
type UserPerformance struct {
	UserID     string    `json:"user_id"`
	QuestionID string    `json:"question_id"`
	IsCorrect  bool      `json:"is_correct"`
	Difficulty string    `json:"difficulty"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Summary aggregates the recorded history.
type Summary struct {
	Total    int     `json:"total"`
	Accuracy float64 `json:"accuracy"`
	Today    int     `json:"today"`
}

// Loop appends performance entries to a JSON log file and aggregates them.
// The log is a plain file so prompt/weight tuning jobs can consume it
// without touching the knowledge store.
type Loop struct {
	logPath string
}

func NewLoop(logPath string) (*Loop, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, err
	}
	return &Loop{logPath: logPath}, nil
}

// Record appends the given performances to the history file. Entries without
// a timestamp get stamped with the current time.
func (l *Loop) Record(performances []UserPerformance) error {
	history, err := l.readHistory()
	if err != nil {
		return err
	}
	for i := range performances {
		if performances[i].RecordedAt.IsZero() {
			performances[i].RecordedAt = time.Now().UTC()
		}
	}
	history = append(history, performances...)

	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(l.logPath, data, 0644)
}

// Aggregate returns totals over the whole history plus the count of entries
// recorded since the beginning of the current day. A missing or empty log
// aggregates to zeros.
func (l *Loop) Aggregate() (*Summary, error) {
	history, err := l.readHistory()
	if err != nil {
		return nil, err
	}

	summary := &Summary{Total: len(history)}
	if len(history) == 0 {
		return summary, nil
	}

	correct := 0
	dayStart := now.BeginningOfDay()
	for _, entry := range history {
		if entry.IsCorrect {
			correct++
		}
		if !entry.RecordedAt.Before(dayStart) {
			summary.Today++
		}
	}
	summary.Accuracy = float64(correct) / float64(len(history))
	return summary, nil
}

func (l *Loop) readHistory() ([]UserPerformance, error) {
	data, err := os.ReadFile(l.logPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var history []UserPerformance
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, err
	}
	return history, nil
}
