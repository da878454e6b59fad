package mongo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"tour-booking-api/internal/tour/repository"
	"tour-booking-api/pkg/log"
)

// Collection is the MongoDB collection holding tours.
const Collection = "tours"

type implRepository struct {
	coll  *mongo.Collection
	l     log.Logger
	clock func() time.Time
}

// New creates a MongoDB-backed Repository for the tour domain.
func New(db *mongo.Database, l log.Logger) repository.Repository {
	if db == nil {
		panic("tour/repository/mongo: db is required")
	}
	return &implRepository{
		coll:  db.Collection(Collection),
		l:     l,
		clock: time.Now,
	}
}

// dsn returns a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("tour/repository/mongo.%s", method)
}
