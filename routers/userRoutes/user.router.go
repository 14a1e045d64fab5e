package userRoutes

import (
	"github.com/gofiber/fiber/v2"

	authController "github.com/rajdwivedi/aeonaxy-server/controllers/auth"
	userController "github.com/rajdwivedi/aeonaxy-server/controllers/userControllers"
	"github.com/rajdwivedi/aeonaxy-server/middleware"
	authValidator "github.com/rajdwivedi/aeonaxy-server/validators/auth"
	userValidator "github.com/rajdwivedi/aeonaxy-server/validators/user"
)

// SetupUserRoutes sets up authentication and profile routes.
func SetupUserRoutes(app *fiber.App, auth *authController.Handler, profile *userController.Handler) {
	userGroup := app.Group("/api/user")

	userGroup.Post("/signup", authValidator.Signup(), auth.Signup)
	userGroup.Post("/login", authValidator.Login(), auth.Login)
	userGroup.Post("/refreshToken", auth.RefreshToken)
	userGroup.Post("/logout", auth.Logout)

	// Links from the transactional emails land on these GET endpoints.
	userGroup.Get("/verifyEmail", authValidator.TokenQuery(), auth.VerifyEmail)
	userGroup.Post("/forgetPassword", authValidator.ForgetPassword(), auth.ForgetPassword)
	userGroup.Get("/resetPassword", authValidator.TokenQuery(), auth.ResetPassword)
	userGroup.Get("/invalidateResetPassword", authValidator.TokenQuery(), auth.InvalidateResetPassword)

	userGroup.Get("/viewProfile", middleware.JWTMiddleware, profile.ViewProfile)
	userGroup.Get("/enrolledCourses", middleware.JWTMiddleware, profile.EnrolledCourses)
	userGroup.Patch("/updateProfile", middleware.JWTMiddleware, userValidator.UpdateProfile(), profile.UpdateProfile)
	userGroup.Delete("/deleteAccount", middleware.JWTMiddleware, profile.DeleteAccount)
}
