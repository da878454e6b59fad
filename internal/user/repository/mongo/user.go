package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tour-booking-api/internal/user"
	repo "tour-booking-api/internal/user/repository"
	"tour-booking-api/pkg/apiquery"
	"tour-booking-api/pkg/mongodb"
)

// CreateUser inserts a new active User.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (user.User, error) {
	enabled := true
	doc := userDoc{
		Name:     opt.Name,
		Email:    opt.Email,
		Photo:    user.DefaultPhoto,
		Role:     string(opt.Role),
		Password: opt.Password,
		Active:   &enabled,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongodb.IsDuplicateKey(err) {
			return user.User{}, repo.ErrDuplicate
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return user.User{}, repo.ErrFailedToInsert
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = id
	}
	doc.Password = ""
	return doc.toUser(), nil
}

// GetOneUser retrieves a single active User, or the zero value.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (user.User, error) {
	filter, ok := r.buildGetOneFilter(opt)
	if !ok {
		return user.User{}, repo.ErrInvalidID
	}

	findOpts := options.FindOne()
	if !opt.WithSecrets {
		findOpts.SetProjection(secretsProjection())
	}

	var doc userDoc
	err := r.coll.FindOne(ctx, filter, findOpts).Decode(&doc)
	if mongodb.IsNotFound(err) {
		return user.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return user.User{}, repo.ErrFailedToGet
	}
	return doc.toUser(), nil
}

// ListUsers executes a built list query over the active users.
func (r *implRepository) ListUsers(ctx context.Context, opt repo.ListUsersOptions) ([]user.User, error) {
	q := hideSecrets(opt.Query)
	q.Filter = active(q.Filter)

	docs, err := mongodb.FindPage[userDoc](ctx, r.coll, q)
	if err != nil {
		if errors.Is(err, apiquery.ErrPageNotFound) {
			return nil, err
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListUsers"), err)
		return nil, repo.ErrFailedToList
	}
	return toUsers(docs), nil
}

// UpdateUser applies a partial update to an active User and returns it, or
// the zero value when it does not exist.
func (r *implRepository) UpdateUser(ctx context.Context, opt repo.UpdateUserOptions) (user.User, error) {
	id, ok := mongodb.ObjectID(opt.ID)
	if !ok {
		return user.User{}, repo.ErrInvalidID
	}

	update := r.buildUpdate(opt)
	if len(update) == 0 {
		return r.GetOneUser(ctx, repo.GetOneUserOptions{ID: opt.ID})
	}

	var doc userDoc
	err := r.coll.FindOneAndUpdate(ctx,
		active(bson.M{"_id": id}),
		update,
		options.FindOneAndUpdate().
			SetReturnDocument(options.After).
			SetProjection(secretsProjection()),
	).Decode(&doc)
	if mongodb.IsNotFound(err) {
		return user.User{}, nil
	}
	if err != nil {
		if mongodb.IsDuplicateKey(err) {
			return user.User{}, repo.ErrDuplicate
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateUser"), err)
		return user.User{}, repo.ErrFailedToUpdate
	}
	return doc.toUser(), nil
}

// DeleteUser removes a User and reports whether it existed.
func (r *implRepository) DeleteUser(ctx context.Context, id string) (bool, error) {
	oid, ok := mongodb.ObjectID(id)
	if !ok {
		return false, repo.ErrInvalidID
	}

	res, err := r.coll.DeleteOne(ctx, active(bson.M{"_id": oid}))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteUser"), err)
		return false, repo.ErrFailedToDelete
	}
	return res.DeletedCount > 0, nil
}

// EnsureIndexes creates the unique email index.
func (r *implRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("EnsureIndexes"), err)
		return err
	}
	return nil
}
