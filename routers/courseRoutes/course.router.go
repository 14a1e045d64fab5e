package courseRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "github.com/rajdwivedi/aeonaxy-server/controllers/course"
	"github.com/rajdwivedi/aeonaxy-server/middleware"
	validators "github.com/rajdwivedi/aeonaxy-server/validators/course"
)

// SetupCourseRoutes sets up all course management routes.
func SetupCourseRoutes(app *fiber.App, course *controllers.Handler) {
	courseGroup := app.Group("/api/course")

	courseGroup.Post("/create", middleware.JWTMiddleware, validators.CreateCourse(), course.CreateCourse)
	courseGroup.Post("/create/asOne", middleware.JWTMiddleware, validators.CreateCourseAsOne(), course.CreateCourseAsOne)
	courseGroup.Post("/get", middleware.JWTMiddleware, validators.CourseID(), course.GetCourse)
	courseGroup.Get("/getAll", middleware.JWTMiddleware, course.GetAllCourses)
	courseGroup.Patch("/update", middleware.JWTMiddleware, validators.UpdateCourse(), course.UpdateCourse)
	courseGroup.Delete("/delete", middleware.JWTMiddleware, validators.CourseID(), course.DeleteCourse)
	courseGroup.Post("/enroll", middleware.JWTMiddleware, validators.CourseID(), course.Enroll)
}
