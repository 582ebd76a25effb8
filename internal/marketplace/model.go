package marketplace

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service is a listing offered by a seller. SellerEmail is the owner reference.
type Service struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	SellerEmail  string             `bson:"sellerEmail" json:"sellerEmail"`
	Title        *string            `bson:"title" json:"title"`
	Description  *string            `bson:"description" json:"description"`
	Category     *string            `bson:"category" json:"category"`
	Price        *float64           `bson:"price" json:"price"`
	Pricing      *string            `bson:"pricing" json:"pricing"`
	Images       []string           `bson:"images" json:"images"`
	Rating       float64            `bson:"rating" json:"rating"`
	TotalReviews int                `bson:"totalReviews" json:"totalReviews"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Order references its buyer and seller by email and its service by id.
// The references are advisory; the store does not enforce them.
type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	BuyerEmail  string             `bson:"buyerEmail" json:"buyerEmail"`
	SellerEmail string             `bson:"sellerEmail" json:"sellerEmail"`
	ServiceID   primitive.ObjectID `bson:"serviceId" json:"serviceId"`
	Package     *string            `bson:"package" json:"package"`
	Price       *float64           `bson:"price" json:"price"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
