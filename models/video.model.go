package models

import "go.mongodb.org/mongo-driver/v2/bson"

// Video is a leaf of the content hierarchy. Content is the uploaded file
// payload, stored opaque.
type Video struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	ModuleID     bson.ObjectID `bson:"moduleId" json:"module_id"`
	Title        string        `bson:"title" json:"title"`
	Description  string        `bson:"description" json:"description"`
	Content      []byte        `bson:"content" json:"-"`
	SortingIndex int           `bson:"sortingIndex" json:"sorting_index"`
}

// VideoDetails carries the client-supplied fields for adding a video.
type VideoDetails struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description" validate:"required"`
	Content      []byte `json:"-" validate:"required"`
	SortingIndex *int   `json:"sortingIndex" validate:"required"`
}
