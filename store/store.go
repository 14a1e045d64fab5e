package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Collection names used across the application. The content collections live
// in the main database, the credential collections in the password database.
const (
	Users   = "users"
	Courses = "courses"
	Modules = "modules"
	Videos  = "videos"

	PassHashes              = "passHash"
	EmailVerificationTokens = "emailVerificationTokens"
	PasswordResetTokens     = "passwordResetTokens"
)

// ErrNoDocuments is returned by FindOne when no record matches the filter.
var ErrNoDocuments = errors.New("store: no documents in result")

// Store is the document-store contract the repositories are written against.
// The production implementation wraps a Mongo database; tests use the
// in-memory implementation in memory.go.
type Store interface {
	FindOne(ctx context.Context, collection string, filter bson.M, out any) error
	Find(ctx context.Context, collection string, filter bson.M, out any) error
	InsertOne(ctx context.Context, collection string, doc any) (bson.ObjectID, error)
	UpdateOne(ctx context.Context, collection string, filter, update bson.M) (int64, error)
	DeleteOne(ctx context.Context, collection string, filter bson.M) (int64, error)
	DeleteMany(ctx context.Context, collection string, filter bson.M) (int64, error)
}

// InvalidIDError reports a client-supplied id string that is not a valid
// object id. It is user-correctable input, not a store failure.
type InvalidIDError struct {
	ID string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("invalid id %q", e.ID)
}

// ParseID converts a client-supplied id string into a store id.
func ParseID(s string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(s)
	if err != nil {
		return bson.ObjectID{}, &InvalidIDError{ID: s}
	}
	return id, nil
}

// ParseIDs converts a batch of id strings, failing on the first invalid one.
func ParseIDs(ss []string) ([]bson.ObjectID, error) {
	ids := make([]bson.ObjectID, 0, len(ss))
	for _, s := range ss {
		id, err := ParseID(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// MongoStore implements Store on top of a *mongo.Database.
type MongoStore struct {
	db *mongo.Database
}

// NewMongoStore wraps the given database handle.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) FindOne(ctx context.Context, collection string, filter bson.M, out any) error {
	err := s.db.Collection(collection).FindOne(ctx, filter).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNoDocuments
	}
	return err
}

func (s *MongoStore) Find(ctx context.Context, collection string, filter bson.M, out any) error {
	cursor, err := s.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return err
	}
	return cursor.All(ctx, out)
}

func (s *MongoStore) InsertOne(ctx context.Context, collection string, doc any) (bson.ObjectID, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return bson.ObjectID{}, err
	}
	id, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return bson.ObjectID{}, fmt.Errorf("store: unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

func (s *MongoStore) UpdateOne(ctx context.Context, collection string, filter, update bson.M) (int64, error) {
	res, err := s.db.Collection(collection).UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (s *MongoStore) DeleteOne(ctx context.Context, collection string, filter bson.M) (int64, error) {
	res, err := s.db.Collection(collection).DeleteOne(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *MongoStore) DeleteMany(ctx context.Context, collection string, filter bson.M) (int64, error) {
	res, err := s.db.Collection(collection).DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
