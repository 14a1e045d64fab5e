package courseValidator_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/rajdwivedi/aeonaxy-server/models"
	courseValidator "github.com/rajdwivedi/aeonaxy-server/validators/course"
)

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestCreateCourseValidator(t *testing.T) {
	var captured *models.CourseDetails
	app := fiber.New()
	app.Post("/create", courseValidator.CreateCourse(), func(c *fiber.Ctx) error {
		captured, _ = c.Locals("validatedCourse").(*models.CourseDetails)
		return c.SendStatus(fiber.StatusOK)
	})

	t.Run("Valid", func(t *testing.T) {
		captured = nil
		resp := postJSON(t, app, "/create",
			`{"title":"Go","description":"Learn Go","categories":["dev"],"price":0,"skill_lvl":"beginner"}`)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.NotNil(t, captured)
		assert.Equal(t, "Go", captured.Title)
		require.NotNil(t, captured.Price)
		assert.Equal(t, float64(0), *captured.Price, "a zero price should pass validation")
	})

	t.Run("MissingPrice", func(t *testing.T) {
		resp := postJSON(t, app, "/create",
			`{"title":"Go","description":"Learn Go","categories":["dev"],"skill_lvl":"beginner"}`)
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("MissingEverything", func(t *testing.T) {
		resp := postJSON(t, app, "/create", `{}`)
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	})
}

func TestCreateCourseAsOneValidator(t *testing.T) {
	var details *models.CourseDetails
	var modules []models.ModuleDetails
	app := fiber.New()
	app.Post("/create/asOne", courseValidator.CreateCourseAsOne(), func(c *fiber.Ctx) error {
		details, _ = c.Locals("validatedCourseDetails").(*models.CourseDetails)
		modules, _ = c.Locals("validatedCourseModules").([]models.ModuleDetails)
		return c.SendStatus(fiber.StatusOK)
	})

	t.Run("Valid", func(t *testing.T) {
		resp := postJSON(t, app, "/create/asOne", `{"data":{"course":{
			"title":"Go","description":"Learn Go","categories":["dev"],"price":10,"skill_lvl":"beginner",
			"modules":[{"title":"Basics","description":"Syntax","sortingIndex":0}]}}}`)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.NotNil(t, details)
		assert.Equal(t, "Go", details.Title)
		require.Len(t, modules, 1)
		assert.Equal(t, "Basics", modules[0].Title)
	})

	t.Run("ModuleMissingSortingIndex", func(t *testing.T) {
		resp := postJSON(t, app, "/create/asOne", `{"data":{"course":{
			"title":"Go","description":"Learn Go","categories":["dev"],"price":10,"skill_lvl":"beginner",
			"modules":[{"title":"Basics","description":"Syntax"}]}}}`)
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	})
}

func TestCourseIDValidator(t *testing.T) {
	var captured bson.ObjectID
	app := fiber.New()
	app.Post("/get", courseValidator.CourseID(), func(c *fiber.Ctx) error {
		captured, _ = c.Locals("courseID").(bson.ObjectID)
		return c.SendStatus(fiber.StatusOK)
	})

	t.Run("Valid", func(t *testing.T) {
		id := bson.NewObjectID()
		resp := postJSON(t, app, "/get", `{"courseId":"`+id.Hex()+`"}`)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, id, captured)
	})

	t.Run("Missing", func(t *testing.T) {
		resp := postJSON(t, app, "/get", `{}`)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Malformed", func(t *testing.T) {
		resp := postJSON(t, app, "/get", `{"courseId":"xyz"}`)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestUpdateCourseValidator(t *testing.T) {
	app := fiber.New()
	app.Post("/update", courseValidator.UpdateCourse(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	id := bson.NewObjectID().Hex()

	t.Run("Valid", func(t *testing.T) {
		resp := postJSON(t, app, "/update", `{"courseId":"`+id+`","title":"New title"}`)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("NoFields", func(t *testing.T) {
		resp := postJSON(t, app, "/update", `{"courseId":"`+id+`"}`)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}
