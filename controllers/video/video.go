package videoController

import (
	"io"
	"log"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/rajdwivedi/aeonaxy-server/middleware"
	"github.com/rajdwivedi/aeonaxy-server/models"
	"github.com/rajdwivedi/aeonaxy-server/repository"
)

type Handler struct {
	Videos *repository.VideoRepo
}

func NewHandler(videos *repository.VideoRepo) *Handler {
	return &Handler{Videos: videos}
}

// CreateVideo stores the uploaded video file together with its metadata and
// links it into the owning module.
func (h *Handler) CreateVideo(c *fiber.Ctx) error {
	moduleID, ok := c.Locals("moduleID").(bson.ObjectID)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	title, _ := c.Locals("videoTitle").(string)
	description, _ := c.Locals("videoDescription").(string)
	sortingIndex, _ := c.Locals("videoSortingIndex").(int)

	fileHeader, err := c.FormFile("video")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Video file is required!", nil)
	}
	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening uploaded video: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unable to read video file!", nil)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		log.Printf("Error reading uploaded video: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unable to read video file!", nil)
	}

	details := models.VideoDetails{
		Title:        title,
		Description:  description,
		Content:      content,
		SortingIndex: &sortingIndex,
	}

	id, err := h.Videos.Add(c.Context(), moduleID, details)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video added successfully!", fiber.Map{
		"insertedId": id.Hex(),
	})
}

func (h *Handler) GetVideo(c *fiber.Ctx) error {
	videoID, ok := c.Locals("videoID").(bson.ObjectID)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	video, err := h.Videos.Get(c.Context(), videoID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video fetched successfully!", video)
}

func (h *Handler) GetMultipleVideos(c *fiber.Ctx) error {
	videoIDs, ok := c.Locals("videoIDs").([]bson.ObjectID)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	videos, err := h.Videos.GetMultiple(c.Context(), videoIDs)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Videos fetched successfully!", fiber.Map{
		"videos": videos,
	})
}

// DeleteVideo removes the video and its reference from the owning module.
func (h *Handler) DeleteVideo(c *fiber.Ctx) error {
	videoID, ok := c.Locals("videoID").(bson.ObjectID)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := h.Videos.DeleteWithUpdate(c.Context(), videoID); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video deleted successfully!", nil)
}

func (h *Handler) DeleteMultipleVideos(c *fiber.Ctx) error {
	videoIDs, ok := c.Locals("videoIDs").([]bson.ObjectID)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := h.Videos.DeleteMultipleWithUpdates(c.Context(), videoIDs); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Videos deleted successfully!", nil)
}
