package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/rajdwivedi/aeonaxy-server/models"
	"github.com/rajdwivedi/aeonaxy-server/store"
)

// VideoRepo owns the videos collection. Its public delete keeps the owning
// module's video list and cached count consistent; the cascade coordinator
// uses the raw variant because the module is deleted right after.
type VideoRepo struct {
	store store.Store
}

func NewVideoRepo(s store.Store) *VideoRepo {
	return &VideoRepo{store: s}
}

// Add validates the details, persists the video, then appends the new id to
// the module's video list and bumps the cached count in one update.
func (r *VideoRepo) Add(ctx context.Context, moduleID bson.ObjectID, details models.VideoDetails) (bson.ObjectID, error) {
	if err := checkDetails(details); err != nil {
		return bson.ObjectID{}, err
	}

	var module models.Module
	if err := r.store.FindOne(ctx, store.Modules, bson.M{"_id": moduleID}, &module); err != nil {
		if err == store.ErrNoDocuments {
			return bson.ObjectID{}, &NotFoundError{Entity: "module"}
		}
		return bson.ObjectID{}, err
	}

	video := models.Video{
		ModuleID:     moduleID,
		Title:        details.Title,
		Description:  details.Description,
		Content:      details.Content,
		SortingIndex: *details.SortingIndex,
	}
	id, err := r.store.InsertOne(ctx, store.Videos, video)
	if err != nil {
		return bson.ObjectID{}, err
	}

	if _, err := r.store.UpdateOne(ctx, store.Modules,
		bson.M{"_id": moduleID},
		bson.M{"$push": bson.M{"videos": id}, "$inc": bson.M{"numberOfVideos": 1}},
	); err != nil {
		return bson.ObjectID{}, err
	}
	return id, nil
}

func (r *VideoRepo) Get(ctx context.Context, id bson.ObjectID) (models.Video, error) {
	var video models.Video
	err := r.store.FindOne(ctx, store.Videos, bson.M{"_id": id}, &video)
	if err == store.ErrNoDocuments {
		return models.Video{}, &NotFoundError{Entity: "video"}
	}
	return video, err
}

func (r *VideoRepo) GetMultiple(ctx context.Context, ids []bson.ObjectID) ([]models.Video, error) {
	var videos []models.Video
	if err := r.store.Find(ctx, store.Videos, bson.M{"_id": bson.M{"$in": ids}}, &videos); err != nil {
		return nil, err
	}
	if len(videos) == 0 {
		return nil, &NotFoundError{Entity: "videos"}
	}
	return videos, nil
}

// DeleteWithUpdate removes a single video and keeps the owning module
// consistent: the id is pulled from the module's video list and the cached
// count is decremented before the record itself is deleted.
func (r *VideoRepo) DeleteWithUpdate(ctx context.Context, id bson.ObjectID) error {
	video, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	var module models.Module
	if err := r.store.FindOne(ctx, store.Modules, bson.M{"_id": video.ModuleID}, &module); err != nil {
		if err == store.ErrNoDocuments {
			return &NotFoundError{Entity: "module"}
		}
		return err
	}

	modified, err := r.store.UpdateOne(ctx, store.Modules,
		bson.M{"_id": video.ModuleID},
		bson.M{"$pull": bson.M{"videos": id}, "$inc": bson.M{"numberOfVideos": -1}},
	)
	if err != nil {
		return err
	}
	if modified == 0 {
		return &DeleteFailedError{Entity: "video reference"}
	}

	deleted, err := r.store.DeleteOne(ctx, store.Videos, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if deleted == 0 {
		return &DeleteFailedError{Entity: "video"}
	}
	return nil
}

// DeleteMultipleWithUpdates removes a batch of videos, updating each owning
// module. A failure aborts the remainder.
func (r *VideoRepo) DeleteMultipleWithUpdates(ctx context.Context, ids []bson.ObjectID) error {
	for _, id := range ids {
		if err := r.DeleteWithUpdate(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// deleteWithoutUpdate removes only the video record. The caller owns the
// parent module's consistency; the cascade coordinator calls this when the
// module itself is about to be deleted. Returns the deleted count so the
// caller can log dangling references.
func (r *VideoRepo) deleteWithoutUpdate(ctx context.Context, id bson.ObjectID) (int64, error) {
	return r.store.DeleteOne(ctx, store.Videos, bson.M{"_id": id})
}
