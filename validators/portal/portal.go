package portalValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"aice/adaptive"
	"aice/middleware"
)

// AnswerList validates a submitted batch of user answers
func AnswerList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var answers []adaptive.UserAnswer

		if err := c.BodyParser(&answers); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(answers) == 0 {
			errors["answers"] = "At least one answer is required!"
		}
		for _, answer := range answers {
			if strings.TrimSpace(answer.QuestionID) == "" {
				errors["question_id"] = "Every answer needs a question ID!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAnswers", answers)
		return c.Next()
	}
}
