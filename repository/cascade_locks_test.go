package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajdwivedi/aeonaxy-server/models"
	"github.com/rajdwivedi/aeonaxy-server/store"
)

func lockCount(c *Cascade) int {
	n := 0
	c.locks.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

func TestCascade_LockEviction(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemoryStore()
	courses := NewCourseRepo(mem)
	modules := NewModuleRepo(mem)
	videos := NewVideoRepo(mem)
	cascade := NewCascade(mem, modules, videos)

	price := 10.0
	index := 0
	courseID, err := courses.Create(ctx, models.CourseDetails{
		Title:       "Intro to Design",
		Description: "A first course on product design",
		Categories:  []string{"design"},
		Price:       &price,
		SkillLevel:  "beginner",
	})
	require.NoError(t, err)
	moduleID, err := modules.Create(ctx, courseID, models.ModuleDetails{
		Title:        "Getting Started",
		Description:  "The basics",
		SortingIndex: &index,
	})
	require.NoError(t, err)

	// A module delete keeps the course's lock entry around for later cascades.
	require.NoError(t, cascade.DeleteModule(ctx, moduleID))
	assert.Equal(t, 1, lockCount(cascade))

	require.NoError(t, cascade.DeleteCourse(ctx, courseID))
	assert.Equal(t, 0, lockCount(cascade), "deleting the course should drop its lock entry")
}
