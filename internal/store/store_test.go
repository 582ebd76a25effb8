package store

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseID(t *testing.T) {
	want := primitive.NewObjectID()
	got, err := ParseID(want.Hex())
	if err != nil {
		t.Fatalf("ParseID: %v", err)
	}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseIDInvalid(t *testing.T) {
	for _, bad := range []string{"", "short", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		if _, err := ParseID(bad); !errors.Is(err, ErrInvalidID) {
			t.Errorf("ParseID(%q) = %v, want ErrInvalidID", bad, err)
		}
	}
}
