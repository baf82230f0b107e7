package devRoutes

import (
	controllers "aice/controllers/dev"
	validators "aice/validators/dev"

	"github.com/gofiber/fiber/v2"
)

// SetupDevRoutes sets up the developer console routes
func SetupDevRoutes(app *fiber.App, ctrl *controllers.DevController) {
	devGroup := app.Group("/dev")

	devGroup.Get("/", ctrl.Root)

	// Batch uploads
	devGroup.Post("/upload/pdf", ctrl.UploadPDF)
	devGroup.Post("/upload/images", ctrl.UploadImages)

	// Validation and human-in-the-loop tagging
	devGroup.Post("/validate", validators.ValidateQuestion(), ctrl.Validate)
	devGroup.Post("/tag", validators.TagQuestion(), ctrl.Tag)
}
