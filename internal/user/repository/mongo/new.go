package mongo

import (
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"tour-booking-api/internal/user/repository"
	"tour-booking-api/pkg/log"
)

// Collection is the MongoDB collection holding users.
const Collection = "users"

type implRepository struct {
	coll *mongo.Collection
	l    log.Logger
}

// New creates a MongoDB-backed Repository for the user domain.
func New(db *mongo.Database, l log.Logger) repository.Repository {
	if db == nil {
		panic("user/repository/mongo: db is required")
	}
	return &implRepository{coll: db.Collection(Collection), l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("user/repository/mongo.%s", method)
}
