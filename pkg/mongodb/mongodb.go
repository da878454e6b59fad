// Package mongodb wraps the MongoDB driver for the repositories: connecting,
// executing apiquery list queries and classifying driver errors.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// PasswordPlaceholder is replaced in the URI by Config.Password.
const PasswordPlaceholder = "<PASSWORD>"

// Config holds the connection settings.
type Config struct {
	URI      string
	Password string
	Database string
	Timeout  time.Duration
}

// ResolveURI substitutes the password placeholder.
func (c Config) ResolveURI() string {
	return strings.ReplaceAll(c.URI, PasswordPlaceholder, c.Password)
}

// Connect dials MongoDB and pings the primary before returning the database.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.ResolveURI()).
		SetTimeout(cfg.Timeout))
	if err != nil {
		return nil, nil, fmt.Errorf("mongodb connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongodb ping: %w", err)
	}
	return client, client.Database(cfg.Database), nil
}

// IsDuplicateKey reports a unique index violation (code 11000).
func IsDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

// IsNotFound reports an empty single-document result.
func IsNotFound(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

// ObjectID parses a hex id. ok is false for malformed ids so callers can
// answer "not found" or "invalid id" without touching the database.
func ObjectID(hex string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}
