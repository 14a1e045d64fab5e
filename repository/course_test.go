package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/rajdwivedi/aeonaxy-server/models"
	"github.com/rajdwivedi/aeonaxy-server/repository"
	"github.com/rajdwivedi/aeonaxy-server/store"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }
func strPtr(s string) *string     { return &s }

func courseDetails() models.CourseDetails {
	return models.CourseDetails{
		Title:       "Intro to Design",
		Description: "A first course on product design",
		Categories:  []string{"design"},
		Price:       floatPtr(49.99),
		SkillLevel:  "beginner",
	}
}

func TestCourseRepo_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid", func(t *testing.T) {
		mem := store.NewMemoryStore()
		repo := repository.NewCourseRepo(mem)

		id, err := repo.Create(ctx, courseDetails())
		require.NoError(t, err)

		course, err := repo.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Intro to Design", course.Title)
		assert.Empty(t, course.Modules)
		assert.Empty(t, course.EnrolledUsers)
		assert.False(t, course.CreatedAt.IsZero())
	})

	t.Run("ZeroPriceIsValid", func(t *testing.T) {
		mem := store.NewMemoryStore()
		repo := repository.NewCourseRepo(mem)

		details := courseDetails()
		details.Price = floatPtr(0)
		_, err := repo.Create(ctx, details)
		assert.NoError(t, err, "a free course should pass validation")
	})

	t.Run("MissingTitle", func(t *testing.T) {
		mem := store.NewMemoryStore()
		repo := repository.NewCourseRepo(mem)

		details := courseDetails()
		details.Title = ""
		_, err := repo.Create(ctx, details)

		var verr *repository.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "title", verr.Field)
		assert.Equal(t, 0, mem.Count(store.Courses), "nothing should be written on validation failure")
	})

	t.Run("MissingPrice", func(t *testing.T) {
		mem := store.NewMemoryStore()
		repo := repository.NewCourseRepo(mem)

		details := courseDetails()
		details.Price = nil
		_, err := repo.Create(ctx, details)

		var verr *repository.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "price", verr.Field)
	})
}

func TestCourseRepo_Get(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewCourseRepo(store.NewMemoryStore())

	_, err := repo.Get(ctx, bson.NewObjectID())
	var nf *repository.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "course", nf.Entity)
}

func TestCourseRepo_List(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewCourseRepo(store.NewMemoryStore())

	courses, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, courses)

	_, err = repo.Create(ctx, courseDetails())
	require.NoError(t, err)
	_, err = repo.Create(ctx, courseDetails())
	require.NoError(t, err)

	courses, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, courses, 2)
}

func TestCourseRepo_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("PartialPatch", func(t *testing.T) {
		repo := repository.NewCourseRepo(store.NewMemoryStore())
		id, err := repo.Create(ctx, courseDetails())
		require.NoError(t, err)

		updated, err := repo.Update(ctx, id, models.CourseUpdate{
			Title: strPtr("Advanced Design"),
			Price: floatPtr(99),
		})
		require.NoError(t, err)
		assert.Equal(t, "Advanced Design", updated.Title)
		assert.Equal(t, float64(99), updated.Price)
		assert.Equal(t, "A first course on product design", updated.Description, "untouched fields should survive")
	})

	t.Run("CategoriesAppendByDefault", func(t *testing.T) {
		repo := repository.NewCourseRepo(store.NewMemoryStore())
		id, err := repo.Create(ctx, courseDetails())
		require.NoError(t, err)

		updated, err := repo.Update(ctx, id, models.CourseUpdate{
			Categories: []string{"ux"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"design", "ux"}, updated.Categories)
	})

	t.Run("CategoriesReplace", func(t *testing.T) {
		repo := repository.NewCourseRepo(store.NewMemoryStore())
		id, err := repo.Create(ctx, courseDetails())
		require.NoError(t, err)

		updated, err := repo.Update(ctx, id, models.CourseUpdate{
			Categories:     []string{"ux"},
			CategoryInsert: "replace",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"ux"}, updated.Categories)
	})

	t.Run("EmptyPatch", func(t *testing.T) {
		repo := repository.NewCourseRepo(store.NewMemoryStore())
		id, err := repo.Create(ctx, courseDetails())
		require.NoError(t, err)

		_, err = repo.Update(ctx, id, models.CourseUpdate{})
		var verr *repository.ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("MissingCourse", func(t *testing.T) {
		repo := repository.NewCourseRepo(store.NewMemoryStore())
		_, err := repo.Update(ctx, bson.NewObjectID(), models.CourseUpdate{Title: strPtr("x")})
		var nf *repository.NotFoundError
		assert.ErrorAs(t, err, &nf)
	})
}
