package adaptive

import (
	"aice/models"
	"aice/store"
)

// Difficulty labels used by the blueprint and analytics distribution.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// UserAnswer is one answer submitted through the user portal.
type UserAnswer struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
	IsCorrect  bool   `json:"is_correct"`
}

// Pipeline assembles mock tests and remediation sets from stored questions.
// Classification is deterministic; no model call is involved.
type Pipeline struct {
	store *store.KnowledgeStore
}

func NewPipeline(knowledge *store.KnowledgeStore) *Pipeline {
	return &Pipeline{store: knowledge}
}

// ClassifyDifficulty prefers the difficulty a classifier already stamped
// into the metadata and otherwise bands by prompt length.
func (p *Pipeline) ClassifyDifficulty(question *models.Question) string {
	if question.Metadata != nil && question.Metadata.Difficulty != nil && *question.Metadata.Difficulty != "" {
		return *question.Metadata.Difficulty
	}
	length := len([]rune(question.Body))
	switch {
	case length < 80:
		return DifficultyEasy
	case length < 200:
		return DifficultyMedium
	default:
		return DifficultyHard
	}
}

// BuildMockTest fills the blueprint (difficulty -> slot count) from the
// candidates in order. Bands without enough candidates simply come up short;
// the result length tells the caller what was actually assembled.
func (p *Pipeline) BuildMockTest(candidates []*models.Question, blueprint map[string]int) []*models.Question {
	remaining := make(map[string]int, len(blueprint))
	for difficulty, count := range blueprint {
		remaining[difficulty] = count
	}

	var test []*models.Question
	for _, question := range candidates {
		difficulty := p.ClassifyDifficulty(question)
		if remaining[difficulty] <= 0 {
			continue
		}
		remaining[difficulty]--
		test = append(test, question)
	}
	return test
}

// RemediationQuestions searches the store for questions similar to each one
// the user got wrong, deduplicating across answers and skipping the missed
// question itself.
func (p *Pipeline) RemediationQuestions(answers []UserAnswer, lookup map[string]*models.Question) ([]*models.Question, error) {
	seen := make(map[string]bool)
	var remediations []*models.Question
	for _, answer := range answers {
		if answer.IsCorrect {
			continue
		}
		question := lookup[answer.QuestionID]
		if question == nil {
			continue
		}

		similar, err := p.store.Search(question.Body, 3)
		if err != nil {
			return nil, err
		}
		for _, candidate := range similar {
			if candidate.QuestionID == nil {
				continue
			}
			id := *candidate.QuestionID
			if id == answer.QuestionID || seen[id] {
				continue
			}
			seen[id] = true
			remediations = append(remediations, candidate)
		}
	}
	return remediations, nil
}
