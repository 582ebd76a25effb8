package seller

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Profile is a user's seller presence. UserEmail is the owner reference and
// unique key; a user has at most one profile.
type Profile struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserEmail    string             `bson:"userEmail" json:"userEmail"`
	Title        *string            `bson:"title" json:"title"`
	Bio          *string            `bson:"bio" json:"bio"`
	Description  *string            `bson:"description" json:"description"`
	Price        *float64           `bson:"price" json:"price"`
	PricingType  *string            `bson:"pricingType" json:"pricingType"`
	Location     *string            `bson:"location" json:"location"`
	Language     *string            `bson:"language" json:"language"`
	Skills       []string           `bson:"skills" json:"skills"`
	Featured     bool               `bson:"featured" json:"featured"`
	Verified     bool               `bson:"verified" json:"verified"`
	Rating       float64            `bson:"rating" json:"rating"`
	TotalOrders  int                `bson:"totalOrders" json:"totalOrders"`
	TotalReviews int                `bson:"totalReviews" json:"totalReviews"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
