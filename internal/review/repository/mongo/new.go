package mongo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"tour-booking-api/internal/review/repository"
	"tour-booking-api/pkg/log"
)

const (
	// Collection is the MongoDB collection holding reviews.
	Collection = "reviews"

	usersCollection = "users"
)

type implRepository struct {
	coll  *mongo.Collection
	l     log.Logger
	clock func() time.Time
}

// New creates a MongoDB-backed Repository for the review domain.
func New(db *mongo.Database, l log.Logger) repository.Repository {
	if db == nil {
		panic("review/repository/mongo: db is required")
	}
	return &implRepository{
		coll:  db.Collection(Collection),
		l:     l,
		clock: time.Now,
	}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("review/repository/mongo.%s", method)
}
