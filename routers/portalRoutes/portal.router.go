package portalRoutes

import (
	controllers "aice/controllers/portal"
	validators "aice/validators/portal"

	"github.com/gofiber/fiber/v2"
)

// SetupPortalRoutes sets up the user-facing portal routes
func SetupPortalRoutes(app *fiber.App, ctrl *controllers.PortalController) {
	portalGroup := app.Group("/portal")

	portalGroup.Get("/mock-tests", ctrl.MockTests)
	portalGroup.Post("/analytics", validators.AnswerList(), ctrl.Analytics)
	portalGroup.Post("/remediation", validators.AnswerList(), ctrl.Remediation)
}
