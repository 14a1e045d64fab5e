package repository

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/rajdwivedi/aeonaxy-server/models"
	"github.com/rajdwivedi/aeonaxy-server/store"
)

// EnrollmentManager maintains the many-to-many relation between users and
// courses, stored as two denormalized arrays. The two writes hit different
// collections with no transaction: a failure on the second write leaves a
// partially-enrolled state that is reported, not rolled back.
type EnrollmentManager struct {
	store store.Store
}

func NewEnrollmentManager(s store.Store) *EnrollmentManager {
	return &EnrollmentManager{store: s}
}

// Enroll adds the user to the course's enrolled list and the course to the
// user's enrolled list. Both appends are atomic add-to-set operations.
func (m *EnrollmentManager) Enroll(ctx context.Context, courseID, userID bson.ObjectID) error {
	var course models.Course
	if err := m.store.FindOne(ctx, store.Courses, bson.M{"_id": courseID}, &course); err != nil {
		if err == store.ErrNoDocuments {
			return &NotFoundError{Entity: "course"}
		}
		return err
	}

	for _, enrolled := range course.EnrolledUsers {
		if enrolled == userID {
			return &AlreadyEnrolledError{}
		}
	}

	modified, err := m.store.UpdateOne(ctx, store.Courses,
		bson.M{"_id": courseID},
		bson.M{"$addToSet": bson.M{"enrolledUsers": userID}},
	)
	if err != nil {
		return err
	}
	if modified == 0 {
		return &EnrollmentFailedError{Side: "course"}
	}

	modified, err = m.store.UpdateOne(ctx, store.Users,
		bson.M{"_id": userID},
		bson.M{"$addToSet": bson.M{"enrolledCourses": courseID}},
	)
	if err != nil {
		return err
	}
	if modified == 0 {
		return &EnrollmentFailedError{Side: "user"}
	}
	return nil
}

// EnrolledCourseTitles resolves a user's enrolled course ids to titles.
// Courses that no longer exist are skipped as already deleted.
func (m *EnrollmentManager) EnrolledCourseTitles(ctx context.Context, user models.User) ([]string, error) {
	titles := make([]string, 0, len(user.EnrolledCourses))
	for _, courseID := range user.EnrolledCourses {
		var course models.Course
		err := m.store.FindOne(ctx, store.Courses, bson.M{"_id": courseID}, &course)
		if err == store.ErrNoDocuments {
			log.Printf("Warning: user %s references deleted course %s, skipping", user.UID, courseID.Hex())
			continue
		}
		if err != nil {
			return nil, err
		}
		titles = append(titles, course.Title)
	}
	return titles, nil
}
