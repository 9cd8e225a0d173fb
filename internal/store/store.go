// Package store wraps the MongoDB connection behind a small document
// store adapter: insert one document, list a collection, describe the
// connection for diagnostics.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Sentinel errors surfaced by store operations. Read and write failures
// wrap the underlying driver error.
var (
	ErrUnavailable = errors.New("database not connected")
	ErrRead        = errors.New("database read failed")
	ErrWrite       = errors.New("database write failed")
)

const connectTimeout = 10 * time.Second

// Store is a handle to one MongoDB database. The zero value is a
// disconnected store whose operations return ErrUnavailable.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect establishes a MongoDB connection and verifies it with a ping.
// On an empty URI or a connection failure it returns a disconnected
// Store alongside the error, so the caller can keep serving and report
// the condition through diagnostics.
func Connect(ctx context.Context, uri, dbName string) (*Store, error) {
	if uri == "" {
		return &Store{}, fmt.Errorf("%w: DATABASE_URL is not set", ErrUnavailable)
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return &Store{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return &Store{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return &Store{client: client, db: client.Database(dbName)}, nil
}

// Close releases the underlying connection.
func (s *Store) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

// Insert persists one document into the named collection and returns the
// store-assigned identifier as hex text.
func (s *Store) Insert(ctx context.Context, collection string, doc any) (string, error) {
	if s.db == nil {
		return "", ErrUnavailable
	}
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrWrite, err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("%w: unexpected id type %T", ErrWrite, res.InsertedID)
	}
	return oid.Hex(), nil
}

// ListAll reads every document in the named collection into out, which
// must be a pointer to a slice, in the same way cursor.All does.
func (s *Store) ListAll(ctx context.Context, collection string, out any) error {
	if s.db == nil {
		return ErrUnavailable
	}
	cur, err := s.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRead, err)
	}
	if err := cur.All(ctx, out); err != nil {
		return fmt.Errorf("%w: %v", ErrRead, err)
	}
	return nil
}

// Description reports the connection state for the diagnostics endpoint.
type Description struct {
	Available   bool
	Connected   bool
	Database    string
	Collections []string
	Status      string
}

// Describe inspects the connection without ever returning an error;
// failures are folded into the Status text. At most ten collection names
// are reported.
func (s *Store) Describe(ctx context.Context) Description {
	if s == nil || s.db == nil {
		return Description{Status: "not connected"}
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	d := Description{
		Available: true,
		Database:  s.db.Name(),
	}

	if err := s.client.Ping(ctx, nil); err != nil {
		d.Status = "available but unreachable: " + err.Error()
		return d
	}
	d.Connected = true
	d.Status = "connected"

	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		d.Status = "connected but listing collections failed: " + err.Error()
		return d
	}
	if len(names) > 10 {
		names = names[:10]
	}
	d.Collections = names
	return d
}
