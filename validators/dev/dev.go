package devValidator

import (
	"encoding/json"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	devControllers "aice/controllers/dev"
	"aice/middleware"
	"aice/models"
)

var validate = validator.New()

// questionPayload mirrors the question schema with the structural rules the
// dev console enforces before a payload is previewed or stored.
type questionPayload struct {
	Body    string `json:"body" validate:"required"`
	Choices []struct {
		Label     string `json:"label" validate:"required"`
		Body      string `json:"body" validate:"required"`
		IsCorrect bool   `json:"is_correct"`
	} `json:"choices" validate:"required,min=1,dive"`
	Solution    string  `json:"solution"`
	Explanation *string `json:"explanation"`
}

// ValidateQuestion checks the submitted question payload structurally and
// stores the decoded question for the controller
func ValidateQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			QuestionPayload string `json:"question_payload"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.QuestionPayload) == "" {
			errors["question_payload"] = "Question payload is required!"
			return middleware.ValidationErrorResponse(c, errors)
		}

		var payload questionPayload
		if err := json.Unmarshal([]byte(reqData.QuestionPayload), &payload); err != nil {
			errors["question_payload"] = "Question payload is not valid JSON!"
			return middleware.ValidationErrorResponse(c, errors)
		}

		if err := validate.Struct(&payload); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[strings.ToLower(fieldErr.Field())] = "Field failed rule: " + fieldErr.Tag()
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		question, err := models.DecodePayload(reqData.QuestionPayload)
		if err != nil {
			errors["question_payload"] = "Question payload does not match the schema!"
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuestion", question)
		return c.Next()
	}
}

// TagQuestion validates the human-in-the-loop tagging request
func TagQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			QuestionID string   `json:"question_id"`
			Tags       []string `json:"tags"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.QuestionID) == "" {
			errors["question_id"] = "Question ID is required!"
		}
		if len(reqData.Tags) == 0 {
			errors["tags"] = "At least one tag is required!"
		}
		for _, tag := range reqData.Tags {
			if strings.TrimSpace(tag) == "" {
				errors["tags"] = "Tags must not be blank!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTag", &devControllers.TagRequest{
			QuestionID: reqData.QuestionID,
			Tags:       reqData.Tags,
		})
		return c.Next()
	}
}
