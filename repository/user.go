package repository

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/rajdwivedi/aeonaxy-server/models"
	"github.com/rajdwivedi/aeonaxy-server/store"
)

// UserRepo owns the users collection in the main database and the credential
// records (password hashes, verification and reset tokens) in the password
// database.
type UserRepo struct {
	main store.Store
	cred store.Store
}

func NewUserRepo(main, cred store.Store) *UserRepo {
	return &UserRepo{main: main, cred: cred}
}

// Create registers a new user and stores the password hash in the credential
// database. The public uid is a fresh uuid, distinct from the store id.
func (r *UserRepo) Create(ctx context.Context, details models.UserDetails, hashedPassword string) (models.User, error) {
	if err := checkDetails(details); err != nil {
		return models.User{}, err
	}

	var existing models.User
	err := r.main.FindOne(ctx, store.Users, bson.M{"email": details.Email}, &existing)
	if err == nil {
		return models.User{}, &AlreadyExistsError{Entity: "user"}
	}
	if err != store.ErrNoDocuments {
		return models.User{}, err
	}

	now := time.Now()
	user := models.User{
		UID:             uuid.NewString(),
		Name:            details.Name,
		Email:           details.Email,
		ProfileImg:      details.ProfileImg,
		EnrolledCourses: []bson.ObjectID{},
		IsActive:        true,
		EmailVerified:   false,
		CreatedOn:       now,
		UpdatedOn:       now,
	}
	id, err := r.main.InsertOne(ctx, store.Users, user)
	if err != nil {
		return models.User{}, err
	}
	user.ID = id

	_, err = r.cred.InsertOne(ctx, store.PassHashes, models.PasswordHash{
		User:           id,
		HashedPassword: hashedPassword,
	})
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := r.main.FindOne(ctx, store.Users, bson.M{"email": email}, &user)
	if err == store.ErrNoDocuments {
		return models.User{}, &NotFoundError{Entity: "user"}
	}
	return user, err
}

func (r *UserRepo) GetByUID(ctx context.Context, uid string) (models.User, error) {
	var user models.User
	err := r.main.FindOne(ctx, store.Users, bson.M{"uid": uid}, &user)
	if err == store.ErrNoDocuments {
		return models.User{}, &NotFoundError{Entity: "user"}
	}
	return user, err
}

func (r *UserRepo) GetPasswordHash(ctx context.Context, userID bson.ObjectID) (string, error) {
	var record models.PasswordHash
	err := r.cred.FindOne(ctx, store.PassHashes, bson.M{"user": userID}, &record)
	if err == store.ErrNoDocuments {
		return "", &NotFoundError{Entity: "password record"}
	}
	if err != nil {
		return "", err
	}
	return record.HashedPassword, nil
}

func (r *UserRepo) UpdatePasswordHash(ctx context.Context, userID bson.ObjectID, hashedPassword string) error {
	_, err := r.cred.UpdateOne(ctx, store.PassHashes,
		bson.M{"user": userID},
		bson.M{"$set": bson.M{"hashedPassword": hashedPassword}},
	)
	return err
}

func (r *UserRepo) SaveVerificationToken(ctx context.Context, userID bson.ObjectID, token string) error {
	_, err := r.cred.InsertOne(ctx, store.EmailVerificationTokens, models.EmailVerificationToken{
		User:      userID,
		Token:     token,
		CreatedAt: time.Now(),
	})
	return err
}

func (r *UserRepo) SaveResetToken(ctx context.Context, userID bson.ObjectID, token string) error {
	_, err := r.cred.InsertOne(ctx, store.PasswordResetTokens, models.PasswordResetToken{
		User:      userID,
		Token:     token,
		CreatedAt: time.Now(),
	})
	return err
}

// GetResetToken checks that a reset token record exists for the user.
func (r *UserRepo) GetResetToken(ctx context.Context, userID bson.ObjectID, token string) error {
	var record models.PasswordResetToken
	err := r.cred.FindOne(ctx, store.PasswordResetTokens, bson.M{"user": userID, "token": token}, &record)
	if err == store.ErrNoDocuments {
		return &NotFoundError{Entity: "reset token"}
	}
	return err
}

// InvalidateResetToken deletes a reset token record so the link stops
// working immediately.
func (r *UserRepo) InvalidateResetToken(ctx context.Context, userID bson.ObjectID, token string) error {
	deleted, err := r.cred.DeleteOne(ctx, store.PasswordResetTokens, bson.M{"user": userID, "token": token})
	if err != nil {
		return err
	}
	if deleted == 0 {
		return &NotFoundError{Entity: "reset token"}
	}
	return nil
}

func (r *UserRepo) SetEmailVerified(ctx context.Context, email string) error {
	_, err := r.main.UpdateOne(ctx, store.Users,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"emailVerified": true}},
	)
	return err
}

func (r *UserRepo) UpdateLastLogin(ctx context.Context, userID bson.ObjectID) error {
	_, err := r.main.UpdateOne(ctx, store.Users,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"lastLogin": time.Now()}},
	)
	return err
}

// Update applies a partial profile patch. An email change resets the
// verified flag; the caller is responsible for sending a new verification
// email.
func (r *UserRepo) Update(ctx context.Context, email string, patch models.UserUpdate) (models.User, error) {
	user, err := r.GetByEmail(ctx, email)
	if err != nil {
		return models.User{}, err
	}

	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Email != nil && *patch.Email != user.Email {
		set["email"] = *patch.Email
		set["emailVerified"] = false
	}
	if patch.ProfileImg != nil {
		set["profileImg"] = patch.ProfileImg
	}
	if patch.IsActive != nil {
		set["isActive"] = *patch.IsActive
	}
	if len(set) == 0 {
		return models.User{}, &ValidationError{Field: "update", Message: "no fields to update"}
	}
	set["updatedOn"] = time.Now()

	if _, err := r.main.UpdateOne(ctx, store.Users, bson.M{"_id": user.ID}, bson.M{"$set": set}); err != nil {
		return models.User{}, err
	}

	var updated models.User
	if err := r.main.FindOne(ctx, store.Users, bson.M{"_id": user.ID}, &updated); err != nil {
		return models.User{}, err
	}
	return updated, nil
}

// Delete removes a user and cascades over the credential records, mirroring
// the content cascade: credentials and tokens first, then the enrollment
// back-references, then the user record.
func (r *UserRepo) Delete(ctx context.Context, userID bson.ObjectID) error {
	var user models.User
	if err := r.main.FindOne(ctx, store.Users, bson.M{"_id": userID}, &user); err != nil {
		if err == store.ErrNoDocuments {
			return &NotFoundError{Entity: "user"}
		}
		return err
	}

	if _, err := r.cred.DeleteMany(ctx, store.EmailVerificationTokens, bson.M{"user": userID}); err != nil {
		return err
	}
	if _, err := r.cred.DeleteMany(ctx, store.PasswordResetTokens, bson.M{"user": userID}); err != nil {
		return err
	}
	deleted, err := r.cred.DeleteOne(ctx, store.PassHashes, bson.M{"user": userID})
	if err != nil {
		return err
	}
	if deleted == 0 {
		log.Printf("Warning: no password record deleted for user %s", user.UID)
	}

	for _, courseID := range user.EnrolledCourses {
		if _, err := r.main.UpdateOne(ctx, store.Courses,
			bson.M{"_id": courseID},
			bson.M{"$pull": bson.M{"enrolledUsers": userID}},
		); err != nil {
			return err
		}
	}

	deleted, err = r.main.DeleteOne(ctx, store.Users, bson.M{"_id": userID})
	if err != nil {
		return err
	}
	if deleted == 0 {
		return &DeleteFailedError{Entity: "user"}
	}
	return nil
}
