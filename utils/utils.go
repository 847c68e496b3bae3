package utils

import (
	"context"
	rndm "math/rand"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyz0123456789_ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// GenerateRandomString creates a random alphanumeric string of length n.
func GenerateRandomString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rndm.Intn(len(letterRunes))]
	}
	return string(b)
}

// RegexFilter builds a case-insensitive partial-match filter for field.
// The value is quoted so callers cannot inject regex metacharacters.
func RegexFilter(field, value string) bson.M {
	return bson.M{field: bson.M{"$regex": regexp.QuoteMeta(value), "$options": "i"}}
}

// Cursorer is the Find half of a collection, enough to drive FindAndDecode.
type Cursorer interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
}

// FindAndDecode runs a Find and decodes every document into a slice of T.
// Always returns a non-nil slice so empty results encode as [] not null.
func FindAndDecode[T any](ctx context.Context, coll Cursorer, filter interface{}, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := []T{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
