package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/rajdwivedi/aeonaxy-server/middleware"
	"github.com/rajdwivedi/aeonaxy-server/models"
	"github.com/rajdwivedi/aeonaxy-server/repository"
)

// Handler carries the course endpoints' dependencies.
type Handler struct {
	Courses     *repository.CourseRepo
	Modules     *repository.ModuleRepo
	Cascade     *repository.Cascade
	Enrollments *repository.EnrollmentManager
	Users       *repository.UserRepo
}

func NewHandler(courses *repository.CourseRepo, modules *repository.ModuleRepo, cascade *repository.Cascade, enrollments *repository.EnrollmentManager, users *repository.UserRepo) *Handler {
	return &Handler{Courses: courses, Modules: modules, Cascade: cascade, Enrollments: enrollments, Users: users}
}

func (h *Handler) CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*models.CourseDetails)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	id, err := h.Courses.Create(c.Context(), *reqData)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course created successfully!", fiber.Map{
		"insertedId": id.Hex(),
	})
}

// CreateCourseAsOne creates a course and its modules as one operation.
func (h *Handler) CreateCourseAsOne(c *fiber.Ctx) error {
	details, ok := c.Locals("validatedCourseDetails").(*models.CourseDetails)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	moduleDetails, _ := c.Locals("validatedCourseModules").([]models.ModuleDetails)

	courseID, err := h.Courses.Create(c.Context(), *details)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	moduleIDs, err := h.Modules.CreateMany(c.Context(), courseID, moduleDetails)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	moduleHexes := make([]string, 0, len(moduleIDs))
	for _, id := range moduleIDs {
		moduleHexes = append(moduleHexes, id.Hex())
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course created successfully!", fiber.Map{
		"insertedId": courseID.Hex(),
		"moduleIds":  moduleHexes,
	})
}

func (h *Handler) GetCourse(c *fiber.Ctx) error {
	courseID, ok := c.Locals("courseID").(bson.ObjectID)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := h.Courses.Get(c.Context(), courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

func (h *Handler) GetAllCourses(c *fiber.Ctx) error {
	courses, err := h.Courses.List(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
	})
}

func (h *Handler) UpdateCourse(c *fiber.Ctx) error {
	courseID, ok := c.Locals("courseID").(bson.ObjectID)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	patch, ok := c.Locals("validatedCourseUpdate").(*models.CourseUpdate)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := h.Courses.Update(c.Context(), courseID, *patch)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// DeleteCourse removes the course and cascades over its modules and videos.
func (h *Handler) DeleteCourse(c *fiber.Ctx) error {
	courseID, ok := c.Locals("courseID").(bson.ObjectID)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := h.Cascade.DeleteCourse(c.Context(), courseID); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// Enroll adds the authenticated user to the course.
func (h *Handler) Enroll(c *fiber.Ctx) error {
	uid, ok := c.Locals("uid").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID, ok := c.Locals("courseID").(bson.ObjectID)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	user, err := h.Users.GetByUID(c.Context(), uid)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if err := h.Enrollments.Enroll(c.Context(), courseID, user.ID); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student enrolled!", nil)
}
