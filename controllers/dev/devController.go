package controllers

import (
	"aice/config"
	"aice/ingestion"
	"aice/middleware"
	"aice/models"
	"aice/store"
	"aice/utils"

	"github.com/gofiber/fiber/v2"
)

// DevController serves the developer console: batch uploads, validation and
// tagging. Pipeline and store are constructed at startup and injected here;
// there is no process-wide store instance.
type DevController struct {
	Pipeline *ingestion.Pipeline
	Store    *store.KnowledgeStore
}

func NewDevController(pipeline *ingestion.Pipeline, knowledge *store.KnowledgeStore) *DevController {
	return &DevController{Pipeline: pipeline, Store: knowledge}
}

// Root provides a quick index so hitting the base URL is informative
func (ctrl *DevController) Root(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "AICE Developer Portal", fiber.Map{
		"routes": fiber.Map{
			"upload_pdf":    "/dev/upload/pdf",
			"upload_images": "/dev/upload/images",
			"validate":      "/dev/validate",
			"tag":           "/dev/tag",
		},
	})
}

// UploadPDF ingests a single uploaded PDF and stores the parsed questions
func (ctrl *DevController) UploadPDF(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "PDF file is required!", nil)
	}

	savedPath, err := utils.SaveUploadedFile(file, config.AppConfig.TmpDir)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save uploaded file!", nil)
	}

	questions, err := ctrl.Pipeline.IngestPDF(savedPath)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Failed to ingest PDF!", nil)
	}

	stored, err := ctrl.Store.Upsert(questions)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store questions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "PDF ingested!", fiber.Map{
		"stored":    stored,
		"questions": questions,
	})
}

// UploadImages runs OCR over every uploaded image and stores the parsed questions
func (ctrl *DevController) UploadImages(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil || len(form.File["files"]) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "At least one image file is required!", nil)
	}

	paths := make([]string, 0, len(form.File["files"]))
	for _, file := range form.File["files"] {
		savedPath, err := utils.SaveUploadedFile(file, config.AppConfig.TmpDir)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save uploaded file!", nil)
		}
		paths = append(paths, savedPath)
	}

	questions, err := ctrl.Pipeline.IngestImages(paths)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Failed to ingest images!", nil)
	}

	stored, err := ctrl.Store.Upsert(questions)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store questions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Images ingested!", fiber.Map{
		"stored":    stored,
		"questions": questions,
	})
}

// Validate previews a question payload that already passed structural validation
func (ctrl *DevController) Validate(c *fiber.Ctx) error {
	question, ok := c.Locals("validatedQuestion").(*models.Question)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid question payload!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question payload is valid!", fiber.Map{
		"valid":   true,
		"preview": question,
	})
}

// Tag queues tags for human-in-the-loop review. Placeholder endpoint; the
// review queue itself lives outside this service.
func (ctrl *DevController) Tag(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTag").(*TagRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid tag request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tags queued!", fiber.Map{
		"question_id": reqData.QuestionID,
		"tags":        reqData.Tags,
		"status":      "queued",
	})
}

// TagRequest is the validated /dev/tag body.
type TagRequest struct {
	QuestionID string   `json:"question_id"`
	Tags       []string `json:"tags"`
}
