package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/rajdwivedi/aeonaxy-server/models"
	"github.com/rajdwivedi/aeonaxy-server/store"
)

// ModuleRepo owns create/read access to the modules collection and keeps the
// owning course's module list in sync on create. Deletion goes through the
// Cascade coordinator.
type ModuleRepo struct {
	store store.Store
}

func NewModuleRepo(s store.Store) *ModuleRepo {
	return &ModuleRepo{store: s}
}

// Create validates the details, persists the module with an empty video
// list, then appends the new id to the course's module list.
func (r *ModuleRepo) Create(ctx context.Context, courseID bson.ObjectID, details models.ModuleDetails) (bson.ObjectID, error) {
	if err := checkDetails(details); err != nil {
		return bson.ObjectID{}, err
	}

	var course models.Course
	if err := r.store.FindOne(ctx, store.Courses, bson.M{"_id": courseID}, &course); err != nil {
		if err == store.ErrNoDocuments {
			return bson.ObjectID{}, &NotFoundError{Entity: "course"}
		}
		return bson.ObjectID{}, err
	}

	module := models.Module{
		CourseID:     courseID,
		Title:        details.Title,
		Description:  details.Description,
		Videos:       []bson.ObjectID{},
		SortingIndex: *details.SortingIndex,
	}
	id, err := r.store.InsertOne(ctx, store.Modules, module)
	if err != nil {
		return bson.ObjectID{}, err
	}

	if _, err := r.store.UpdateOne(ctx, store.Courses,
		bson.M{"_id": courseID},
		bson.M{"$push": bson.M{"modules": id}},
	); err != nil {
		return bson.ObjectID{}, err
	}
	return id, nil
}

// CreateMany creates a batch of modules under one course, in order. Used by
// the create-course-as-one operation.
func (r *ModuleRepo) CreateMany(ctx context.Context, courseID bson.ObjectID, details []models.ModuleDetails) ([]bson.ObjectID, error) {
	ids := make([]bson.ObjectID, 0, len(details))
	for _, d := range details {
		id, err := r.Create(ctx, courseID, d)
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *ModuleRepo) Get(ctx context.Context, id bson.ObjectID) (models.Module, error) {
	var module models.Module
	err := r.store.FindOne(ctx, store.Modules, bson.M{"_id": id}, &module)
	if err == store.ErrNoDocuments {
		return models.Module{}, &NotFoundError{Entity: "module"}
	}
	return module, err
}

func (r *ModuleRepo) GetAllByCourse(ctx context.Context, courseID bson.ObjectID) ([]models.Module, error) {
	var modules []models.Module
	if err := r.store.Find(ctx, store.Modules, bson.M{"courseId": courseID}, &modules); err != nil {
		return nil, err
	}
	if len(modules) == 0 {
		return nil, &NotFoundError{Entity: "modules for this course"}
	}
	return modules, nil
}
