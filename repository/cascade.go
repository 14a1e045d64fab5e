package repository

import (
	"context"
	"errors"
	"log"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/rajdwivedi/aeonaxy-server/models"
	"github.com/rajdwivedi/aeonaxy-server/store"
)

// Cascade orchestrates multi-entity deletes across the denormalized
// collections: a course delete removes its modules, a module delete removes
// its videos. The steps are forward-only with no rollback; a child failure
// aborts the remaining cascade and propagates.
//
// Cascades on the same course are serialized through a per-course lock so
// two overlapping deletes cannot double-delete or strand children. Within a
// cascade the parent's back-reference is unlinked before the child record is
// removed, so a crash can leave a dangling id but never a child that no
// parent references; dangling ids are treated as already deleted on the next
// read.
type Cascade struct {
	store   store.Store
	modules *ModuleRepo
	videos  *VideoRepo

	locks sync.Map // course id hex -> *sync.Mutex
}

func NewCascade(s store.Store, modules *ModuleRepo, videos *VideoRepo) *Cascade {
	return &Cascade{store: s, modules: modules, videos: videos}
}

func (c *Cascade) lockCourse(id bson.ObjectID) func() {
	v, _ := c.locks.LoadOrStore(id.Hex(), &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// DeleteCourse removes a course together with its modules and their videos,
// in stored module order.
func (c *Cascade) DeleteCourse(ctx context.Context, courseID bson.ObjectID) error {
	unlock := c.lockCourse(courseID)
	defer unlock()

	var course models.Course
	if err := c.store.FindOne(ctx, store.Courses, bson.M{"_id": courseID}, &course); err != nil {
		if err == store.ErrNoDocuments {
			return &NotFoundError{Entity: "course"}
		}
		return err
	}

	for _, moduleID := range course.Modules {
		// The course record is deleted right after the loop, so there is no
		// point maintaining its module list per child.
		if err := c.deleteModule(ctx, moduleID, false); err != nil {
			var nf *NotFoundError
			if errors.As(err, &nf) && nf.Entity == "module" {
				log.Printf("Warning: module %s referenced by course %s is already gone, skipping", moduleID.Hex(), courseID.Hex())
				continue
			}
			return err
		}
	}

	deleted, err := c.store.DeleteOne(ctx, store.Courses, bson.M{"_id": courseID})
	if err != nil {
		return err
	}
	if deleted == 0 {
		return &DeleteFailedError{Entity: "course"}
	}

	// The course is gone; its lock entry has nothing left to guard. A late
	// waiter re-creating the entry only observes the missing course.
	c.locks.Delete(courseID.Hex())
	return nil
}

// DeleteModule removes a module together with its videos and unlinks it from
// the owning course.
func (c *Cascade) DeleteModule(ctx context.Context, moduleID bson.ObjectID) error {
	module, err := c.modules.Get(ctx, moduleID)
	if err != nil {
		return err
	}

	unlock := c.lockCourse(module.CourseID)
	defer unlock()

	// Reload under the lock; a concurrent course cascade may have removed
	// the module while we waited.
	return c.deleteModule(ctx, moduleID, true)
}

func (c *Cascade) deleteModule(ctx context.Context, moduleID bson.ObjectID, updateCourse bool) error {
	module, err := c.modules.Get(ctx, moduleID)
	if err != nil {
		return err
	}

	if updateCourse {
		var course models.Course
		if err := c.store.FindOne(ctx, store.Courses, bson.M{"_id": module.CourseID}, &course); err != nil {
			if err == store.ErrNoDocuments {
				return &NotFoundError{Entity: "course"}
			}
			return err
		}
		if _, err := c.store.UpdateOne(ctx, store.Courses,
			bson.M{"_id": module.CourseID},
			bson.M{"$pull": bson.M{"modules": moduleID}},
		); err != nil {
			return err
		}
	}

	for _, videoID := range module.Videos {
		deleted, err := c.videos.deleteWithoutUpdate(ctx, videoID)
		if err != nil {
			return err
		}
		if deleted == 0 {
			log.Printf("Warning: no video deleted with id %s, either it did not exist or there is an error somewhere", videoID.Hex())
		}
	}

	deleted, err := c.store.DeleteOne(ctx, store.Modules, bson.M{"_id": moduleID})
	if err != nil {
		return err
	}
	if deleted == 0 {
		return &DeleteFailedError{Entity: "module"}
	}
	return nil
}
