package seller

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tradetalent/backend/internal/store"
)

// Store is what the handlers need from profile persistence.
type Store interface {
	Create(ctx context.Context, p Profile) (Profile, error)
	GetAll(ctx context.Context) ([]Profile, error)
	GetTop(ctx context.Context, limit int64) ([]Profile, error)
	GetByEmail(ctx context.Context, email string) (Profile, error)
	UpdateByEmail(ctx context.Context, email string, fields bson.M) (Profile, error)
}

// Repository wraps the sellerProfiles collection.
type Repository struct {
	coll *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{coll: db.Collection("sellerProfiles")}
}

// Create inserts the profile unless the user already has one. Atomic
// insert-if-absent keyed on userEmail, same shape as the users repository.
func (r *Repository) Create(ctx context.Context, p Profile) (Profile, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"userEmail": p.UserEmail},
		bson.M{"$setOnInsert": p},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return Profile{}, err
	}
	if res.UpsertedCount == 0 {
		return Profile{}, store.ErrDuplicate
	}
	p.ID = res.UpsertedID.(primitive.ObjectID)
	return p, nil
}

func (r *Repository) GetAll(ctx context.Context) ([]Profile, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	profiles := []Profile{}
	if err := cur.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// GetTop returns the highest-rated profiles first.
func (r *Repository) GetTop(ctx context.Context, limit int64) ([]Profile, error) {
	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}}).SetLimit(limit)
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	profiles := []Profile{}
	if err := cur.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (Profile, error) {
	var p Profile
	err := r.coll.FindOne(ctx, bson.M{"userEmail": email}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Profile{}, store.ErrNotFound
	}
	if err != nil {
		return Profile{}, err
	}
	return p, nil
}

// UpdateByEmail applies a partial $set and returns the post-update document.
func (r *Repository) UpdateByEmail(ctx context.Context, email string, fields bson.M) (Profile, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var p Profile
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"userEmail": email}, bson.M{"$set": fields}, opts).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Profile{}, store.ErrNotFound
	}
	if err != nil {
		return Profile{}, err
	}
	return p, nil
}
