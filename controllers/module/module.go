package moduleController

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/rajdwivedi/aeonaxy-server/middleware"
	"github.com/rajdwivedi/aeonaxy-server/models"
	"github.com/rajdwivedi/aeonaxy-server/repository"
)

type Handler struct {
	Modules *repository.ModuleRepo
	Cascade *repository.Cascade
}

func NewHandler(modules *repository.ModuleRepo, cascade *repository.Cascade) *Handler {
	return &Handler{Modules: modules, Cascade: cascade}
}

func (h *Handler) CreateModule(c *fiber.Ctx) error {
	courseID, ok := c.Locals("courseID").(bson.ObjectID)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	details, ok := c.Locals("validatedModule").(*models.ModuleDetails)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	id, err := h.Modules.Create(c.Context(), courseID, *details)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module created successfully!", fiber.Map{
		"insertedId": id.Hex(),
	})
}

func (h *Handler) GetModule(c *fiber.Ctx) error {
	moduleID, ok := c.Locals("moduleID").(bson.ObjectID)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	module, err := h.Modules.Get(c.Context(), moduleID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module fetched successfully!", module)
}

func (h *Handler) GetCourseModules(c *fiber.Ctx) error {
	courseID, ok := c.Locals("courseID").(bson.ObjectID)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	modules, err := h.Modules.GetAllByCourse(c.Context(), courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules fetched successfully!", fiber.Map{
		"modules": modules,
	})
}

// DeleteModule removes the module, its videos and the course reference.
func (h *Handler) DeleteModule(c *fiber.Ctx) error {
	moduleID, ok := c.Locals("moduleID").(bson.ObjectID)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := h.Cascade.DeleteModule(c.Context(), moduleID); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module deleted successfully!", nil)
}
