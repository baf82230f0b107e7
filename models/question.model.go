package models

import (
	"encoding/json"
	"time"
)

// Choice represents a single multiple-choice option
type Choice struct {
	Label     string `json:"label"`
	Body      string `json:"body"`
	IsCorrect bool   `json:"is_correct"`
}

// QuestionMetadata holds provenance extracted from PDF/image context
type QuestionMetadata struct {
	SourcePath         *string   `json:"source_path"`
	Tags               []string  `json:"tags"`
	Difficulty         *string   `json:"difficulty"`
	Section            *string   `json:"section"`
	IngestionTimestamp time.Time `json:"ingestion_timestamp"`
}

// NewMetadata builds metadata for an ingested asset with the capture time set to now
func NewMetadata(sourcePath string, tags []string, section string) *QuestionMetadata {
	return &QuestionMetadata{
		SourcePath:         &sourcePath,
		Tags:               tags,
		Section:            &section,
		IngestionTimestamp: time.Now().UTC(),
	}
}

// Question is the normalized structure saved in the knowledge store.
// QuestionID stays nil until the store assigns one; after that it never changes.
type Question struct {
	Body        string            `json:"body"`
	Choices     []Choice          `json:"choices"`
	Solution    string            `json:"solution"`
	Explanation *string           `json:"explanation"`
	Metadata    *QuestionMetadata `json:"metadata"`
	QuestionID  *string           `json:"question_id"`
}

// EncodePayload serializes the question to its canonical JSON payload.
// Absent metadata encodes as an explicit null, timestamps as RFC3339.
func (q *Question) EncodePayload() (string, error) {
	data, err := json.Marshal(q)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodePayload reconstructs a question from its canonical JSON payload.
// Missing choices decode to an empty list and missing metadata stays nil
// rather than being defaulted to a fresh instance.
func DecodePayload(payload string) (*Question, error) {
	question := new(Question)
	if err := json.Unmarshal([]byte(payload), question); err != nil {
		return nil, err
	}
	if question.Choices == nil {
		question.Choices = []Choice{}
	}
	if question.Metadata != nil && question.Metadata.Tags == nil {
		question.Metadata.Tags = []string{}
	}
	return question, nil
}
