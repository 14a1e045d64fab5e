package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is a platform account. UID is the public identity (uuid v4), distinct
// from the store id; EnrolledCourses holds the store ids of enrolled courses.
// Password material lives in the credential database, never here.
type User struct {
	ID              bson.ObjectID   `bson:"_id,omitempty" json:"id"`
	UID             string          `bson:"uid" json:"uid"`
	Name            string          `bson:"name" json:"name"`
	Email           string          `bson:"email" json:"email"`
	ProfileImg      []byte          `bson:"profileImg" json:"-"`
	EnrolledCourses []bson.ObjectID `bson:"enrolledCourses" json:"enrolled_courses"`
	IsActive        bool            `bson:"isActive" json:"is_active"`
	EmailVerified   bool            `bson:"emailVerified" json:"email_verified"`
	LastLogin       time.Time       `bson:"lastLogin,omitempty" json:"last_login"`
	CreatedOn       time.Time       `bson:"createdOn" json:"created_on"`
	UpdatedOn       time.Time       `bson:"updatedOn" json:"updated_on"`
}

// UserDetails carries the client-supplied fields for registration.
type UserDetails struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	ProfileImg []byte `json:"-"`
}

// UserUpdate carries the optional fields of a profile update.
type UserUpdate struct {
	Name       *string `json:"updatedName"`
	Email      *string `json:"updatedEmail"`
	ProfileImg []byte  `json:"-"`
	IsActive   *bool   `json:"isActive"`
}
