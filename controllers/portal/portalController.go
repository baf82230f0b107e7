package controllers

import (
	"aice/adaptive"
	"aice/feedback"
	"aice/middleware"
	"aice/models"
	"aice/store"

	"github.com/gofiber/fiber/v2"
)

// PortalController serves the user-facing mock-test, analytics and
// remediation routes.
type PortalController struct {
	Store    *store.KnowledgeStore
	Adaptive *adaptive.Pipeline
	Feedback *feedback.Loop
}

func NewPortalController(knowledge *store.KnowledgeStore, pipeline *adaptive.Pipeline, loop *feedback.Loop) *PortalController {
	return &PortalController{Store: knowledge, Adaptive: pipeline, Feedback: loop}
}

// MockTests assembles a blueprint-based mock test from stored questions
func (ctrl *PortalController) MockTests(c *fiber.Ctx) error {
	questions, err := ctrl.Store.Search("government exam", 30)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to search questions!", nil)
	}

	blueprint := map[string]int{
		adaptive.DifficultyEasy:   10,
		adaptive.DifficultyMedium: 15,
		adaptive.DifficultyHard:   5,
	}
	mockTest := ctrl.Adaptive.BuildMockTest(questions, blueprint)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Mock test ready!", fiber.Map{
		"count":     len(mockTest),
		"questions": mockTest,
	})
}

// Analytics computes accuracy and a difficulty distribution over submitted
// answers and records them into the feedback log
func (ctrl *PortalController) Analytics(c *fiber.Ctx) error {
	answers, ok := c.Locals("validatedAnswers").([]adaptive.UserAnswer)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid answers payload!", nil)
	}

	sections := map[string]int{
		adaptive.DifficultyEasy:   0,
		adaptive.DifficultyMedium: 0,
		adaptive.DifficultyHard:   0,
	}
	correct := 0
	performances := make([]feedback.UserPerformance, 0, len(answers))

	for _, answer := range answers {
		question, err := ctrl.Store.Get(answer.QuestionID)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to look up question!", nil)
		}

		difficulty := ""
		if question != nil {
			difficulty = ctrl.Adaptive.ClassifyDifficulty(question)
			sections[difficulty]++
		}
		if answer.IsCorrect {
			correct++
		}
		performances = append(performances, feedback.UserPerformance{
			QuestionID: answer.QuestionID,
			IsCorrect:  answer.IsCorrect,
			Difficulty: difficulty,
		})
	}

	if err := ctrl.Feedback.Record(performances); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record feedback!", nil)
	}

	total := len(answers)
	if total == 0 {
		total = 1
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Analytics computed!", fiber.Map{
		"accuracy":     float64(correct) / float64(total),
		"distribution": sections,
	})
}

// Remediation suggests similar stored questions for every incorrect answer
func (ctrl *PortalController) Remediation(c *fiber.Ctx) error {
	answers, ok := c.Locals("validatedAnswers").([]adaptive.UserAnswer)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid answers payload!", nil)
	}

	lookup := make(map[string]*models.Question, len(answers))
	for _, answer := range answers {
		question, err := ctrl.Store.Get(answer.QuestionID)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to look up question!", nil)
		}
		if question != nil {
			lookup[answer.QuestionID] = question
		}
	}

	remediations, err := ctrl.Adaptive.RemediationQuestions(answers, lookup)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to build remediation set!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Remediation ready!", fiber.Map{
		"count":     len(remediations),
		"questions": remediations,
	})
}
