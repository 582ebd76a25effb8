package user

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a marketplace account. Email is the unique business key; optional
// fields are pointers so unset values persist and serialize as null.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      *string            `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Role      *string            `bson:"role" json:"role"`
	Avatar    *string            `bson:"avatar" json:"avatar"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
