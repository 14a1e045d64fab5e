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

func videoDetails(index int) models.VideoDetails {
	return models.VideoDetails{
		Title:        "Lesson",
		Description:  "A lesson video",
		Content:      []byte("fake video bytes"),
		SortingIndex: intPtr(index),
	}
}

// contentFixture wires a course with one module and returns the module id.
func contentFixture(t *testing.T, mem *store.MemoryStore) bson.ObjectID {
	t.Helper()
	ctx := context.Background()

	courseID, err := repository.NewCourseRepo(mem).Create(ctx, courseDetails())
	require.NoError(t, err)
	moduleID, err := repository.NewModuleRepo(mem).Create(ctx, courseID, moduleDetails(0))
	require.NoError(t, err)
	return moduleID
}

func TestVideoRepo_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("UpdatesModule", func(t *testing.T) {
		mem := store.NewMemoryStore()
		moduleID := contentFixture(t, mem)
		videos := repository.NewVideoRepo(mem)
		modules := repository.NewModuleRepo(mem)

		first, err := videos.Add(ctx, moduleID, videoDetails(0))
		require.NoError(t, err)
		second, err := videos.Add(ctx, moduleID, videoDetails(1))
		require.NoError(t, err)

		module, err := modules.Get(ctx, moduleID)
		require.NoError(t, err)
		assert.Equal(t, []bson.ObjectID{first, second}, module.Videos)
		assert.Equal(t, 2, module.NumberOfVideos, "cached count should track the video list")

		video, err := videos.Get(ctx, first)
		require.NoError(t, err)
		assert.Equal(t, moduleID, video.ModuleID)
		assert.Equal(t, []byte("fake video bytes"), video.Content)
	})

	t.Run("MissingModule", func(t *testing.T) {
		videos := repository.NewVideoRepo(store.NewMemoryStore())

		_, err := videos.Add(ctx, bson.NewObjectID(), videoDetails(0))
		var nf *repository.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "module", nf.Entity)
	})

	t.Run("MissingContent", func(t *testing.T) {
		mem := store.NewMemoryStore()
		moduleID := contentFixture(t, mem)
		videos := repository.NewVideoRepo(mem)

		details := videoDetails(0)
		details.Content = nil
		_, err := videos.Add(ctx, moduleID, details)

		var verr *repository.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "content", verr.Field)
	})
}

func TestVideoRepo_GetMultiple(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemoryStore()
	moduleID := contentFixture(t, mem)
	videos := repository.NewVideoRepo(mem)

	first, err := videos.Add(ctx, moduleID, videoDetails(0))
	require.NoError(t, err)
	second, err := videos.Add(ctx, moduleID, videoDetails(1))
	require.NoError(t, err)

	got, err := videos.GetMultiple(ctx, []bson.ObjectID{first, second})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = videos.GetMultiple(ctx, []bson.ObjectID{bson.NewObjectID()})
	var nf *repository.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestVideoRepo_DeleteWithUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("KeepsModuleConsistent", func(t *testing.T) {
		mem := store.NewMemoryStore()
		moduleID := contentFixture(t, mem)
		videos := repository.NewVideoRepo(mem)
		modules := repository.NewModuleRepo(mem)

		first, err := videos.Add(ctx, moduleID, videoDetails(0))
		require.NoError(t, err)
		second, err := videos.Add(ctx, moduleID, videoDetails(1))
		require.NoError(t, err)

		require.NoError(t, videos.DeleteWithUpdate(ctx, first))

		module, err := modules.Get(ctx, moduleID)
		require.NoError(t, err)
		assert.Equal(t, []bson.ObjectID{second}, module.Videos)
		assert.Equal(t, 1, module.NumberOfVideos)
		assert.Equal(t, 1, mem.Count(store.Videos))

		_, err = videos.Get(ctx, first)
		var nf *repository.NotFoundError
		assert.ErrorAs(t, err, &nf)
	})

	t.Run("LostModuleUpdate", func(t *testing.T) {
		mem := store.NewMemoryStore()
		moduleID := contentFixture(t, mem)
		videos := repository.NewVideoRepo(mem)

		id, err := videos.Add(ctx, moduleID, videoDetails(0))
		require.NoError(t, err)

		wrapped := repository.NewVideoRepo(&lostWriteStore{Store: mem, lostUpdates: store.Modules})
		err = wrapped.DeleteWithUpdate(ctx, id)

		var dfe *repository.DeleteFailedError
		require.ErrorAs(t, err, &dfe)
		assert.Equal(t, "video reference", dfe.Entity)
		assert.Equal(t, 1, mem.Count(store.Videos), "the record must survive when the unlink is lost")
	})

	t.Run("MissingVideo", func(t *testing.T) {
		videos := repository.NewVideoRepo(store.NewMemoryStore())

		err := videos.DeleteWithUpdate(ctx, bson.NewObjectID())
		var nf *repository.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "video", nf.Entity)
	})
}

func TestVideoRepo_DeleteMultipleWithUpdates(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemoryStore()
	moduleID := contentFixture(t, mem)
	videos := repository.NewVideoRepo(mem)
	modules := repository.NewModuleRepo(mem)

	first, err := videos.Add(ctx, moduleID, videoDetails(0))
	require.NoError(t, err)
	second, err := videos.Add(ctx, moduleID, videoDetails(1))
	require.NoError(t, err)

	require.NoError(t, videos.DeleteMultipleWithUpdates(ctx, []bson.ObjectID{first, second}))

	module, err := modules.Get(ctx, moduleID)
	require.NoError(t, err)
	assert.Empty(t, module.Videos)
	assert.Equal(t, 0, module.NumberOfVideos)
	assert.Equal(t, 0, mem.Count(store.Videos))
}
