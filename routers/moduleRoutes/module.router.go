package moduleRoutes

import (
	"github.com/gofiber/fiber/v2"

	moduleController "github.com/rajdwivedi/aeonaxy-server/controllers/module"
	"github.com/rajdwivedi/aeonaxy-server/middleware"
	courseValidator "github.com/rajdwivedi/aeonaxy-server/validators/course"
	moduleValidator "github.com/rajdwivedi/aeonaxy-server/validators/module"
)

// SetupModuleRoutes sets up all module management routes.
func SetupModuleRoutes(app *fiber.App, module *moduleController.Handler) {
	moduleGroup := app.Group("/api/module")

	moduleGroup.Post("/create", middleware.JWTMiddleware, moduleValidator.CreateModule(), module.CreateModule)
	moduleGroup.Post("/get", middleware.JWTMiddleware, moduleValidator.ModuleID(), module.GetModule)
	moduleGroup.Post("/getAll", middleware.JWTMiddleware, courseValidator.CourseID(), module.GetCourseModules)
	moduleGroup.Delete("/delete", middleware.JWTMiddleware, moduleValidator.ModuleID(), module.DeleteModule)
}
