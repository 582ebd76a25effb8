package marketplace

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tradetalent/backend/internal/store"
)

// ServiceStore is what the service handlers need from persistence.
type ServiceStore interface {
	Create(ctx context.Context, s Service) (Service, error)
	GetAll(ctx context.Context) ([]Service, error)
	GetFeatured(ctx context.Context, limit int64) ([]Service, error)
	GetBySeller(ctx context.Context, email string) ([]Service, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (Service, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (Service, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (Service, error)
}

// OrderStore is what the order handlers need from persistence.
type OrderStore interface {
	Create(ctx context.Context, o Order) (Order, error)
	GetAll(ctx context.Context) ([]Order, error)
	GetBySeller(ctx context.Context, email string) ([]Order, error)
	GetByBuyer(ctx context.Context, email string) ([]Order, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (Order, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (Order, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (Order, error)
}

// ServiceRepository wraps the services collection.
type ServiceRepository struct {
	coll *mongo.Collection
}

func NewServiceRepository(db *mongo.Database) *ServiceRepository {
	return &ServiceRepository{coll: db.Collection("services")}
}

func (r *ServiceRepository) Create(ctx context.Context, s Service) (Service, error) {
	res, err := r.coll.InsertOne(ctx, s)
	if err != nil {
		return Service{}, err
	}
	s.ID = res.InsertedID.(primitive.ObjectID)
	return s, nil
}

func (r *ServiceRepository) GetAll(ctx context.Context) ([]Service, error) {
	return r.find(ctx, bson.M{})
}

func (r *ServiceRepository) GetFeatured(ctx context.Context, limit int64) ([]Service, error) {
	return r.find(ctx, bson.M{}, options.Find().SetLimit(limit))
}

func (r *ServiceRepository) GetBySeller(ctx context.Context, email string) ([]Service, error) {
	return r.find(ctx, bson.M{"sellerEmail": email})
}

func (r *ServiceRepository) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]Service, error) {
	cur, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	services := []Service{}
	if err := cur.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (r *ServiceRepository) GetByID(ctx context.Context, id primitive.ObjectID) (Service, error) {
	var s Service
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Service{}, store.ErrNotFound
	}
	if err != nil {
		return Service{}, err
	}
	return s, nil
}

func (r *ServiceRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (Service, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var s Service
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Service{}, store.ErrNotFound
	}
	if err != nil {
		return Service{}, err
	}
	return s, nil
}

func (r *ServiceRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (Service, error) {
	var s Service
	err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Service{}, store.ErrNotFound
	}
	if err != nil {
		return Service{}, err
	}
	return s, nil
}

// OrderRepository wraps the orders collection.
type OrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{coll: db.Collection("orders")}
}

func (r *OrderRepository) Create(ctx context.Context, o Order) (Order, error) {
	res, err := r.coll.InsertOne(ctx, o)
	if err != nil {
		return Order{}, err
	}
	o.ID = res.InsertedID.(primitive.ObjectID)
	return o, nil
}

func (r *OrderRepository) GetAll(ctx context.Context) ([]Order, error) {
	return r.find(ctx, bson.M{})
}

func (r *OrderRepository) GetBySeller(ctx context.Context, email string) ([]Order, error) {
	return r.find(ctx, bson.M{"sellerEmail": email})
}

func (r *OrderRepository) GetByBuyer(ctx context.Context, email string) ([]Order, error) {
	return r.find(ctx, bson.M{"buyerEmail": email})
}

func (r *OrderRepository) find(ctx context.Context, filter bson.M) ([]Order, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	orders := []Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id primitive.ObjectID) (Order, error) {
	var o Order
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Order{}, store.ErrNotFound
	}
	if err != nil {
		return Order{}, err
	}
	return o, nil
}

func (r *OrderRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (Order, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var o Order
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Order{}, store.ErrNotFound
	}
	if err != nil {
		return Order{}, err
	}
	return o, nil
}

func (r *OrderRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (Order, error) {
	var o Order
	err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Order{}, store.ErrNotFound
	}
	if err != nil {
		return Order{}, err
	}
	return o, nil
}
