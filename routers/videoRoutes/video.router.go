package videoRoutes

import (
	"github.com/gofiber/fiber/v2"

	videoController "github.com/rajdwivedi/aeonaxy-server/controllers/video"
	"github.com/rajdwivedi/aeonaxy-server/middleware"
	videoValidator "github.com/rajdwivedi/aeonaxy-server/validators/video"
)

// SetupVideoRoutes sets up all video management routes.
func SetupVideoRoutes(app *fiber.App, video *videoController.Handler) {
	videoGroup := app.Group("/api/video")

	videoGroup.Post("/create", middleware.JWTMiddleware, videoValidator.CreateVideo(), video.CreateVideo)
	videoGroup.Post("/get", middleware.JWTMiddleware, videoValidator.VideoID(), video.GetVideo)
	videoGroup.Post("/get/multiple", middleware.JWTMiddleware, videoValidator.VideoIDs(), video.GetMultipleVideos)
	videoGroup.Delete("/delete/one", middleware.JWTMiddleware, videoValidator.VideoID(), video.DeleteVideo)
	videoGroup.Delete("/delete/multiple", middleware.JWTMiddleware, videoValidator.VideoIDs(), video.DeleteMultipleVideos)
}
