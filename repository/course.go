package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/rajdwivedi/aeonaxy-server/models"
	"github.com/rajdwivedi/aeonaxy-server/store"
)

// CourseRepo owns create/read/update access to the courses collection.
// Deletion goes through the Cascade coordinator.
type CourseRepo struct {
	store store.Store
}

func NewCourseRepo(s store.Store) *CourseRepo {
	return &CourseRepo{store: s}
}

// Create validates the details and persists a new course with empty module
// and enrollment lists.
func (r *CourseRepo) Create(ctx context.Context, details models.CourseDetails) (bson.ObjectID, error) {
	if err := checkDetails(details); err != nil {
		return bson.ObjectID{}, err
	}

	course := models.Course{
		Title:         details.Title,
		Description:   details.Description,
		Categories:    details.Categories,
		Price:         *details.Price,
		SkillLevel:    details.SkillLevel,
		Modules:       []bson.ObjectID{},
		EnrolledUsers: []bson.ObjectID{},
		CreatedAt:     time.Now(),
	}

	return r.store.InsertOne(ctx, store.Courses, course)
}

func (r *CourseRepo) Get(ctx context.Context, id bson.ObjectID) (models.Course, error) {
	var course models.Course
	err := r.store.FindOne(ctx, store.Courses, bson.M{"_id": id}, &course)
	if err == store.ErrNoDocuments {
		return models.Course{}, &NotFoundError{Entity: "course"}
	}
	return course, err
}

func (r *CourseRepo) List(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if err := r.store.Find(ctx, store.Courses, bson.M{}, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// Update applies a partial patch to a course. Categories are appended unless
// the patch asks for a replace.
func (r *CourseRepo) Update(ctx context.Context, id bson.ObjectID, patch models.CourseUpdate) (models.Course, error) {
	course, err := r.Get(ctx, id)
	if err != nil {
		return models.Course{}, err
	}

	set := bson.M{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.SkillLevel != nil {
		set["skill_lvl"] = *patch.SkillLevel
	}
	if patch.Categories != nil {
		if patch.CategoryInsert == "replace" {
			set["categories"] = patch.Categories
		} else {
			set["categories"] = append(course.Categories, patch.Categories...)
		}
	}
	if len(set) == 0 {
		return models.Course{}, &ValidationError{Field: "update", Message: "no fields to update"}
	}

	if _, err := r.store.UpdateOne(ctx, store.Courses, bson.M{"_id": id}, bson.M{"$set": set}); err != nil {
		return models.Course{}, err
	}
	return r.Get(ctx, id)
}
