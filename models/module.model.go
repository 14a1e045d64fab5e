package models

import "go.mongodb.org/mongo-driver/v2/bson"

// Module is a section of a course. Videos holds the ids of the module's
// videos in display order; NumberOfVideos is a cached count kept equal to
// len(Videos) outside of cascade deletes.
type Module struct {
	ID             bson.ObjectID   `bson:"_id,omitempty" json:"id"`
	CourseID       bson.ObjectID   `bson:"courseId" json:"course_id"`
	Title          string          `bson:"title" json:"title"`
	Description    string          `bson:"description" json:"description"`
	Videos         []bson.ObjectID `bson:"videos" json:"videos"`
	NumberOfVideos int             `bson:"numberOfVideos" json:"number_of_videos"`
	SortingIndex   int             `bson:"sortingIndex" json:"sorting_index"`
}

// ModuleDetails carries the client-supplied fields for creating a module.
type ModuleDetails struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description" validate:"required"`
	SortingIndex *int   `json:"sortingIndex" validate:"required"`
}
