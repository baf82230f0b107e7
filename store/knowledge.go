package store

import (
	"encoding/json"
	"errors"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"aice/models"
)

// KnowledgeStore persists normalized questions and answers approximate
// similarity queries over their embeddings.
type KnowledgeStore struct {
	db *gorm.DB
}

// New wraps an already connected database handle. The caller owns the
// handle's lifecycle; the store holds no other state.
func New(db *gorm.DB) *KnowledgeStore {
	return &KnowledgeStore{db: db}
}

// Upsert writes every question to the store. Questions without an identifier
// get a fresh UUID assigned in place before the write; questions that already
// carry one overwrite their existing row (body, payload and embedding are
// replaced, the identifier is preserved). Returns the number of questions
// processed.
func (s *KnowledgeStore) Upsert(questions []*models.Question) (int, error) {
	count := 0
	for _, question := range questions {
		if question.QuestionID == nil {
			id := uuid.NewString()
			question.QuestionID = &id
		}

		payload, err := question.EncodePayload()
		if err != nil {
			return count, err
		}
		embedding, err := json.Marshal(Embed(question.Body))
		if err != nil {
			return count, err
		}

		record := models.QuestionRecord{
			QuestionID: *question.QuestionID,
			Body:       question.Body,
			Payload:    payload,
			Embedding:  string(embedding),
		}
		err = s.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "question_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"body", "payload", "embedding"}),
		}).Create(&record).Error
		if err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// Get looks up a question by its external identifier. An unmatched
// identifier returns (nil, nil), not an error.
func (s *KnowledgeStore) Get(questionID string) (*models.Question, error) {
	var record models.QuestionRecord
	err := s.db.Where("question_id = ?", questionID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return recordToQuestion(&record)
}

// Search embeds the query and ranks every stored question by cosine
// similarity, descending. Ties keep row order. A non-positive limit
// defaults to 5. No index is involved; this is a full scan.
func (s *KnowledgeStore) Search(query string, limit int) ([]*models.Question, error) {
	if limit <= 0 {
		limit = 5
	}
	queryVector := Embed(query)

	var records []models.QuestionRecord
	if err := s.db.Order("id").Find(&records).Error; err != nil {
		return nil, err
	}

	type scoredQuestion struct {
		score    float64
		question *models.Question
	}
	scored := make([]scoredQuestion, 0, len(records))
	for i := range records {
		var embedding []float64
		if err := json.Unmarshal([]byte(records[i].Embedding), &embedding); err != nil {
			return nil, err
		}
		question, err := recordToQuestion(&records[i])
		if err != nil {
			return nil, err
		}
		scored = append(scored, scoredQuestion{
			score:    CosineSimilarity(queryVector, embedding),
			question: question,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	if len(scored) > limit {
		scored = scored[:limit]
	}

	results := make([]*models.Question, len(scored))
	for i := range scored {
		results[i] = scored[i].question
	}
	return results, nil
}

// recordToQuestion rebuilds the question from its stored payload and
// re-attaches the row's identifier.
func recordToQuestion(record *models.QuestionRecord) (*models.Question, error) {
	question, err := models.DecodePayload(record.Payload)
	if err != nil {
		return nil, err
	}
	questionID := record.QuestionID
	question.QuestionID = &questionID
	return question, nil
}
