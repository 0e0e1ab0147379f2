package mongodb

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	clientInstance *mongo.Client
	dbInstance     *mongo.Database
	once           sync.Once
	connectErr     error
)

const connectTimeout = 10 * time.Second

// NewDB initializes the MongoDB connection and returns a handle to the
// application database. It ensures that the connection is established only
// once (singleton pattern); subsequent calls return the same handle.
func NewDB(ctx context.Context, uri, database string) (*mongo.Database, error) {
	once.Do(func() {
		connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
		defer cancel()

		client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
		if err != nil {
			connectErr = fmt.Errorf("failed to connect to mongodb: %w", err)
			return
		}
		if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
			connectErr = fmt.Errorf("failed to ping mongodb: %w", err)
			return
		}
		clientInstance = client
		dbInstance = client.Database(database)
	})
	if connectErr != nil {
		return nil, connectErr
	}
	return dbInstance, nil
}

// CloseDB disconnects the MongoDB client if it was connected.
func CloseDB(ctx context.Context) error {
	if clientInstance != nil {
		if err := clientInstance.Disconnect(ctx); err != nil {
			return fmt.Errorf("failed to disconnect mongodb: %w", err)
		}
	}
	return nil
}
