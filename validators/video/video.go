package videoValidator

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/rajdwivedi/aeonaxy-server/middleware"
	"github.com/rajdwivedi/aeonaxy-server/store"
)

// CreateVideo validates the multipart form fields of a video upload. The
// file itself is read by the controller.
func CreateVideo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleIDStr := strings.TrimSpace(c.FormValue("moduleId"))
		title := strings.TrimSpace(c.FormValue("title"))
		description := strings.TrimSpace(c.FormValue("description"))
		sortingIndexStr := strings.TrimSpace(c.FormValue("sortingIndex"))

		errors := make(map[string]string)

		if moduleIDStr == "" {
			errors["moduleId"] = "Module ID is required!"
		}
		if title == "" {
			errors["title"] = "Title is required!"
		}
		if description == "" {
			errors["description"] = "Description is required!"
		}

		sortingIndex, err := strconv.Atoi(sortingIndexStr)
		if sortingIndexStr == "" || err != nil {
			errors["sortingIndex"] = "Sorting index is required and must be a number!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		moduleID, err := store.ParseID(moduleIDStr)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}

		c.Locals("moduleID", moduleID)
		c.Locals("videoTitle", title)
		c.Locals("videoDescription", description)
		c.Locals("videoSortingIndex", sortingIndex)
		return c.Next()
	}
}

// VideoID validates the video id carried in the request body.
func VideoID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			VideoID string `json:"videoId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if strings.TrimSpace(reqData.VideoID) == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Video ID is missing.", nil)
		}

		videoID, err := store.ParseID(reqData.VideoID)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Video ID!", nil)
		}

		c.Locals("videoID", videoID)
		return c.Next()
	}
}

// VideoIDs validates the video id list carried in the request body.
func VideoIDs() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			VideoIDs []string `json:"videoIds"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if len(reqData.VideoIDs) == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Video IDs are missing.", nil)
		}

		ids, err := store.ParseIDs(reqData.VideoIDs)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Video ID!", nil)
		}

		c.Locals("videoIDs", ids)
		return c.Next()
	}
}
