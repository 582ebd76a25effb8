package user

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tradetalent/backend/internal/store"
)

// Store is what the handlers need from user persistence.
type Store interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (User, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (User, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (User, error)
}

// Repository wraps the users collection.
type Repository struct {
	coll *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{coll: db.Collection("users")}
}

// Create inserts the user unless one with the same email already exists.
// The upsert with $setOnInsert makes the uniqueness check and the write a
// single atomic operation, so two concurrent creates cannot both land.
func (r *Repository) Create(ctx context.Context, u User) (User, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"email": u.Email},
		bson.M{"$setOnInsert": u},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return User{}, err
	}
	if res.UpsertedCount == 0 {
		return User{}, store.ErrDuplicate
	}
	u.ID = res.UpsertedID.(primitive.ObjectID)
	return u, nil
}

func (r *Repository) GetByID(ctx context.Context, id primitive.ObjectID) (User, error) {
	var u User
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return User{}, store.ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	return u, nil
}

// UpdateByID applies a partial $set and returns the post-update document.
// Update-if-exists in one round trip; a missing target is ErrNotFound.
func (r *Repository) UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var u User
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return User{}, store.ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	return u, nil
}

// DeleteByID removes the user and returns the removed document.
func (r *Repository) DeleteByID(ctx context.Context, id primitive.ObjectID) (User, error) {
	var u User
	err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return User{}, store.ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	return u, nil
}
