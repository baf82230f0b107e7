package store

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aice/database"
	"aice/models"
)

func newTestStore(t *testing.T) *KnowledgeStore {
	t.Helper()
	db, err := database.Connect(filepath.Join(t.TempDir(), "knowledge.sqlite"))
	require.NoError(t, err)
	return New(db)
}

func sampleQuestion() *models.Question {
	return &models.Question{
		Body: "What is 2 + 2?",
		Choices: []models.Choice{
			{Label: "A", Body: "4", IsCorrect: true},
			{Label: "B", Body: "5"},
		},
		Solution: "A",
		Metadata: models.NewMetadata("/tmp/source.txt", []string{"pdf"}, "page-1"),
	}
}

func TestUpsertAndGetRoundtrip(t *testing.T) {
	knowledge := newTestStore(t)
	question := sampleQuestion()

	stored, err := knowledge.Upsert([]*models.Question{question})
	require.NoError(t, err)
	assert.Equal(t, 1, stored)
	require.NotNil(t, question.QuestionID)

	fetched, err := knowledge.Get(*question.QuestionID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, question.Body, fetched.Body)
	assert.Equal(t, question.Solution, fetched.Solution)
	assert.Equal(t, question.QuestionID, fetched.QuestionID)
	require.NotNil(t, fetched.Metadata)
	require.NotNil(t, fetched.Metadata.Section)
	assert.Equal(t, "page-1", *fetched.Metadata.Section)
}

func TestUpsertAssignsDistinctIdentifiers(t *testing.T) {
	knowledge := newTestStore(t)

	questions := make([]*models.Question, 5)
	for i := range questions {
		questions[i] = &models.Question{
			Body:     fmt.Sprintf("Question number %d?", i),
			Choices:  []models.Choice{{Label: "A", Body: "Answer", IsCorrect: true}},
			Solution: "A",
		}
	}

	stored, err := knowledge.Upsert(questions)
	require.NoError(t, err)
	assert.Equal(t, 5, stored)

	seen := make(map[string]bool)
	for _, question := range questions {
		require.NotNil(t, question.QuestionID)
		assert.False(t, seen[*question.QuestionID], "identifier assigned twice")
		seen[*question.QuestionID] = true
	}
}

func TestUpsertEmptySliceIsNoop(t *testing.T) {
	knowledge := newTestStore(t)

	stored, err := knowledge.Upsert(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, stored)
}

func TestGetUnknownIdentifier(t *testing.T) {
	knowledge := newTestStore(t)

	fetched, err := knowledge.Get("never-used")
	require.NoError(t, err)
	assert.Nil(t, fetched)
}

func TestReupsertOverwritesRowAndKeepsIdentifier(t *testing.T) {
	knowledge := newTestStore(t)
	question := sampleQuestion()

	_, err := knowledge.Upsert([]*models.Question{question})
	require.NoError(t, err)
	originalID := *question.QuestionID

	question.Body = "What is 3 + 3?"
	question.Choices = []models.Choice{
		{Label: "A", Body: "6", IsCorrect: true},
		{Label: "B", Body: "7"},
	}

	stored, err := knowledge.Upsert([]*models.Question{question})
	require.NoError(t, err)
	assert.Equal(t, 1, stored)
	assert.Equal(t, originalID, *question.QuestionID)

	var rowCount int64
	require.NoError(t, knowledge.db.Model(&models.QuestionRecord{}).
		Where("question_id = ?", originalID).Count(&rowCount).Error)
	assert.Equal(t, int64(1), rowCount)

	fetched, err := knowledge.Get(originalID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, "What is 3 + 3?", fetched.Body)
	assert.Equal(t, "6", fetched.Choices[0].Body)
}

func TestSearchEmptyStore(t *testing.T) {
	knowledge := newTestStore(t)

	results, err := knowledge.Search("anything", 5)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchHonorsLimit(t *testing.T) {
	knowledge := newTestStore(t)

	var questions []*models.Question
	for i := 0; i < 8; i++ {
		questions = append(questions, &models.Question{
			Body:     fmt.Sprintf("Question body variant %d", i),
			Choices:  []models.Choice{{Label: "A", Body: "Answer", IsCorrect: true}},
			Solution: "A",
		})
	}
	_, err := knowledge.Upsert(questions)
	require.NoError(t, err)

	results, err := knowledge.Search("Question body", 3)
	require.NoError(t, err)
	assert.Len(t, results, 3)

	// non-positive limit falls back to the default of 5
	results, err = knowledge.Search("Question body", 0)
	require.NoError(t, err)
	assert.Len(t, results, 5)
}

func TestSearchRanksMatchingBodyFirst(t *testing.T) {
	knowledge := newTestStore(t)

	target := sampleQuestion()
	distractors := []*models.Question{
		{
			Body:     "Completely unrelated prose about maritime law and shipping lanes",
			Choices:  []models.Choice{{Label: "A", Body: "n/a", IsCorrect: true}},
			Solution: "A",
		},
		{
			Body:     "zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz",
			Choices:  []models.Choice{{Label: "A", Body: "n/a", IsCorrect: true}},
			Solution: "A",
		},
	}
	_, err := knowledge.Upsert(append([]*models.Question{target}, distractors...))
	require.NoError(t, err)

	results, err := knowledge.Search(target.Body, 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, target.Body, results[0].Body)
	assert.Equal(t, "4", results[0].Choices[0].Body)
	require.NotNil(t, results[0].Metadata)
}

func TestSearchReturnsStoredIdentifiers(t *testing.T) {
	knowledge := newTestStore(t)
	question := sampleQuestion()

	_, err := knowledge.Upsert([]*models.Question{question})
	require.NoError(t, err)

	results, err := knowledge.Search("2 + 2", 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NotNil(t, results[0].QuestionID)
	assert.Equal(t, *question.QuestionID, *results[0].QuestionID)
}
