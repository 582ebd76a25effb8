// Package store holds the plumbing shared by the Mongo repositories:
// sentinel errors that repositories translate driver errors into, and
// identifier parsing for path-supplied ids.
package store

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrNotFound means the target document does not exist.
	ErrNotFound = errors.New("document not found")

	// ErrDuplicate means a document with the same unique key already exists.
	ErrDuplicate = errors.New("document already exists")

	// ErrInvalidID means a path or body identifier is not a valid ObjectID encoding.
	ErrInvalidID = errors.New("invalid object id")
)

// ParseID converts a hex identifier from a path parameter into an ObjectID.
// A malformed encoding returns ErrInvalidID so handlers can answer with a
// handled failure instead of bubbling a driver error.
func ParseID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return id, nil
}
