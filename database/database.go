package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/rajdwivedi/aeonaxy-server/config"
)

// Mongo holds the process-wide MongoDB client and the two database handles
// used by the application. It is created once at startup and injected into
// the stores; Close must be called on shutdown.
type Mongo struct {
	Client *mongo.Client
	Main   *mongo.Database
	Pass   *mongo.Database
}

// Connect establishes the MongoDB connection and verifies it with a ping.
func Connect() (*Mongo, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(config.AppConfig.MongoURI))
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	log.Println("Connected to MongoDB")

	return &Mongo{
		Client: client,
		Main:   client.Database(config.AppConfig.DBName),
		Pass:   client.Database(config.AppConfig.PassDBName),
	}, nil
}

// Close disconnects the MongoDB client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}
