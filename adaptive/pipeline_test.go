package adaptive

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aice/database"
	"aice/models"
	"aice/store"
)

func newTestPipeline(t *testing.T) (*Pipeline, *store.KnowledgeStore) {
	t.Helper()
	db, err := database.Connect(filepath.Join(t.TempDir(), "knowledge.sqlite"))
	require.NoError(t, err)
	knowledge := store.New(db)
	return NewPipeline(knowledge), knowledge
}

func strPtr(s string) *string {
	return &s
}

func question(body string) *models.Question {
	return &models.Question{
		Body:     body,
		Choices:  []models.Choice{{Label: "A", Body: "Answer", IsCorrect: true}},
		Solution: "A",
	}
}

func TestClassifyDifficultyPrefersMetadata(t *testing.T) {
	pipeline, _ := newTestPipeline(t)

	q := question("short")
	q.Metadata = &models.QuestionMetadata{Difficulty: strPtr(DifficultyHard)}
	assert.Equal(t, DifficultyHard, pipeline.ClassifyDifficulty(q))
}

func TestClassifyDifficultyBandsOnLength(t *testing.T) {
	pipeline, _ := newTestPipeline(t)

	assert.Equal(t, DifficultyEasy, pipeline.ClassifyDifficulty(question("Short prompt?")))
	assert.Equal(t, DifficultyMedium, pipeline.ClassifyDifficulty(question(strings.Repeat("m", 120))))
	assert.Equal(t, DifficultyHard, pipeline.ClassifyDifficulty(question(strings.Repeat("h", 250))))
}

func TestBuildMockTestFillsBlueprint(t *testing.T) {
	pipeline, _ := newTestPipeline(t)

	candidates := []*models.Question{
		question("Easy one?"),
		question("Another easy?"),
		question(strings.Repeat("m", 120)),
		question(strings.Repeat("h", 250)),
		question("Yet another easy?"),
	}
	blueprint := map[string]int{
		DifficultyEasy:   2,
		DifficultyMedium: 1,
		DifficultyHard:   0,
	}

	test := pipeline.BuildMockTest(candidates, blueprint)
	require.Len(t, test, 3)
	assert.Equal(t, "Easy one?", test[0].Body)
	assert.Equal(t, "Another easy?", test[1].Body)
	assert.Equal(t, strings.Repeat("m", 120), test[2].Body)
}

func TestBuildMockTestShortBands(t *testing.T) {
	pipeline, _ := newTestPipeline(t)

	// only one easy candidate for two easy slots
	test := pipeline.BuildMockTest([]*models.Question{question("Easy one?")}, map[string]int{DifficultyEasy: 2})
	assert.Len(t, test, 1)
}

func TestRemediationQuestionsSkipsCorrectAndSelf(t *testing.T) {
	pipeline, knowledge := newTestPipeline(t)

	missed := question("The French revolution started in which year exactly?")
	similar := question("The French revolution started in which year roughly?")
	unrelated := question("zzzzzzzzzzzzzzzzzzzz")

	_, err := knowledge.Upsert([]*models.Question{missed, similar, unrelated})
	require.NoError(t, err)

	answers := []UserAnswer{
		{QuestionID: *missed.QuestionID, Answer: "1917", IsCorrect: false},
		{QuestionID: *unrelated.QuestionID, Answer: "A", IsCorrect: true},
	}
	lookup := map[string]*models.Question{
		*missed.QuestionID:    missed,
		*unrelated.QuestionID: unrelated,
	}

	remediations, err := pipeline.RemediationQuestions(answers, lookup)
	require.NoError(t, err)
	require.NotEmpty(t, remediations)

	for _, candidate := range remediations {
		require.NotNil(t, candidate.QuestionID)
		assert.NotEqual(t, *missed.QuestionID, *candidate.QuestionID)
	}
	assert.Equal(t, *similar.QuestionID, *remediations[0].QuestionID)
}

func TestRemediationQuestionsEmptyWithoutMistakes(t *testing.T) {
	pipeline, knowledge := newTestPipeline(t)

	q := question("Only question?")
	_, err := knowledge.Upsert([]*models.Question{q})
	require.NoError(t, err)

	remediations, err := pipeline.RemediationQuestions(
		[]UserAnswer{{QuestionID: *q.QuestionID, Answer: "A", IsCorrect: true}},
		map[string]*models.Question{*q.QuestionID: q},
	)
	require.NoError(t, err)
	assert.Empty(t, remediations)
}
