package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// PasswordHash is the credential record, keyed by the owning user's store id
// and kept in the password database.
type PasswordHash struct {
	ID             bson.ObjectID `bson:"_id,omitempty"`
	User           bson.ObjectID `bson:"user"`
	HashedPassword string        `bson:"hashedPassword"`
}

// EmailVerificationToken is written at signup and on email change. Expired
// records are swept by the token cleanup job rather than consumed.
type EmailVerificationToken struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	User      bson.ObjectID `bson:"user"`
	Token     string        `bson:"token"`
	CreatedAt time.Time     `bson:"createdAt"`
}

// PasswordResetToken is written by forget-password and deleted when
// explicitly invalidated.
type PasswordResetToken struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	User      bson.ObjectID `bson:"user"`
	Token     string        `bson:"token"`
	CreatedAt time.Time     `bson:"createdAt"`
}
