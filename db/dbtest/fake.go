// Package dbtest provides an in-memory stand-in for db.Collection so
// handler tests can run without a MongoDB instance. Results are built with
// the driver's own test constructors, so decoding behaves exactly as it
// does against a live server.
package dbtest

import (
	"context"

	"recipebook/db"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FakeCollection records the filter/update/document of the last call and
// returns whatever results the test configured. Zero value behaves like a
// collection where every write matches one document.
type FakeCollection struct {
	FindDocs   []interface{}
	FindErr    error
	FindOneDoc interface{} // nil means no document matches
	FindOneErr error

	InsertedID   interface{}
	InsertErr    error
	UpdateResult *mongo.UpdateResult
	UpdateErr    error
	DeleteResult *mongo.DeleteResult
	DeleteErr    error

	GotFilter         interface{}
	GotUpdate         interface{}
	GotDocument       interface{}
	GotFindOptions    []*options.FindOptions
	GotFindOneOptions []*options.FindOneOptions
}

var _ db.Collection = (*FakeCollection)(nil)

func (f *FakeCollection) Find(_ context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error) {
	f.GotFilter = filter
	f.GotFindOptions = opts
	if f.FindErr != nil {
		return nil, f.FindErr
	}
	return mongo.NewCursorFromDocuments(f.FindDocs, nil, nil)
}

func (f *FakeCollection) FindOne(_ context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult {
	f.GotFilter = filter
	f.GotFindOneOptions = opts
	if f.FindOneErr != nil {
		return mongo.NewSingleResultFromDocument(bson.D{}, f.FindOneErr, nil)
	}
	if f.FindOneDoc == nil {
		return mongo.NewSingleResultFromDocument(bson.D{}, mongo.ErrNoDocuments, nil)
	}
	return mongo.NewSingleResultFromDocument(f.FindOneDoc, nil, nil)
}

func (f *FakeCollection) InsertOne(_ context.Context, document interface{}, _ ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	f.GotDocument = document
	if f.InsertErr != nil {
		return nil, f.InsertErr
	}
	id := f.InsertedID
	if id == nil {
		id = primitive.NewObjectID()
	}
	return &mongo.InsertOneResult{InsertedID: id}, nil
}

func (f *FakeCollection) UpdateOne(_ context.Context, filter interface{}, update interface{}, _ ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	f.GotFilter = filter
	f.GotUpdate = update
	if f.UpdateErr != nil {
		return nil, f.UpdateErr
	}
	if f.UpdateResult != nil {
		return f.UpdateResult, nil
	}
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *FakeCollection) DeleteOne(_ context.Context, filter interface{}, _ ...*options.DeleteOptions) (*mongo.DeleteResult, error) {
	f.GotFilter = filter
	if f.DeleteErr != nil {
		return nil, f.DeleteErr
	}
	if f.DeleteResult != nil {
		return f.DeleteResult, nil
	}
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}
