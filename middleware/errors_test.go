package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajdwivedi/aeonaxy-server/middleware"
	"github.com/rajdwivedi/aeonaxy-server/repository"
	"github.com/rajdwivedi/aeonaxy-server/store"
)

func TestErrorResponse(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"Validation", &repository.ValidationError{Field: "title", Message: "title is required"}, fiber.StatusBadRequest},
		{"InvalidID", &store.InvalidIDError{ID: "xyz"}, fiber.StatusBadRequest},
		{"NotFound", &repository.NotFoundError{Entity: "course"}, fiber.StatusNotFound},
		{"AlreadyExists", &repository.AlreadyExistsError{Entity: "user"}, fiber.StatusConflict},
		{"AlreadyEnrolled", &repository.AlreadyEnrolledError{}, fiber.StatusConflict},
		{"Unknown", errors.New("mongo went away"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return middleware.ErrorResponse(c, tt.err)
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
