package middleware

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/rajdwivedi/aeonaxy-server/repository"
	"github.com/rajdwivedi/aeonaxy-server/store"
)

// ErrorResponse maps a domain error to the HTTP response contract:
// validation failures get a corrective message, missing entities a 404,
// uniqueness conflicts a 409, everything else collapses to a generic server
// error with the detail logged, not exposed.
func ErrorResponse(c *fiber.Ctx, err error) error {
	var validationErr *repository.ValidationError
	if errors.As(err, &validationErr) {
		return JsonResponse(c, fiber.StatusBadRequest, false, validationErr.Message, nil)
	}

	var invalidID *store.InvalidIDError
	if errors.As(err, &invalidID) {
		return JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ID!", nil)
	}

	var notFoundErr *repository.NotFoundError
	if errors.As(err, &notFoundErr) {
		return JsonResponse(c, fiber.StatusNotFound, false, notFoundErr.Error(), nil)
	}

	var existsErr *repository.AlreadyExistsError
	if errors.As(err, &existsErr) {
		return JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	var alreadyEnrolled *repository.AlreadyEnrolledError
	if errors.As(err, &alreadyEnrolled) {
		return JsonResponse(c, fiber.StatusConflict, false, "Student already enrolled!", nil)
	}

	log.Printf("Internal error: %v", err)
	return JsonResponse(c, fiber.StatusInternalServerError, false, "Internal Server Error", nil)
}
