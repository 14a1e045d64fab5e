package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Course is the top of the content hierarchy. Modules holds the ids of the
// course's modules in display order; EnrolledUsers holds the store ids of
// enrolled users. Both back-reference arrays are maintained by the
// repositories, the store enforces nothing.
type Course struct {
	ID            bson.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title         string          `bson:"title" json:"title"`
	Description   string          `bson:"description" json:"description"`
	Categories    []string        `bson:"categories" json:"categories"`
	Price         float64         `bson:"price" json:"price"`
	SkillLevel    string          `bson:"skill_lvl" json:"skill_lvl"`
	Modules       []bson.ObjectID `bson:"modules" json:"modules"`
	EnrolledUsers []bson.ObjectID `bson:"enrolledUsers" json:"enrolled_users"`
	CreatedAt     time.Time       `bson:"created_at" json:"created_at"`
}

// CourseDetails carries the client-supplied fields for creating a course.
// Price is a pointer so a zero price passes the required check.
type CourseDetails struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Categories  []string `json:"categories" validate:"required"`
	Price       *float64 `json:"price" validate:"required"`
	SkillLevel  string   `json:"skill_lvl" validate:"required"`
}

// CourseUpdate carries the optional fields of a partial course update.
// Categories are appended by default; CategoryInsert "replace" swaps the
// whole set instead.
type CourseUpdate struct {
	Title          *string  `json:"title"`
	Description    *string  `json:"description"`
	Categories     []string `json:"categories"`
	CategoryInsert string   `json:"categoryInsert"`
	Price          *float64 `json:"price"`
	SkillLevel     *string  `json:"skill_lvl"`
}
