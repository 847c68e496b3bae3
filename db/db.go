// Package db owns the MongoDB connection and hands out the collection
// handles used by the rest of the service. Handlers receive these handles
// explicitly; there is no package-level database state.
package db

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection is the slice of *mongo.Collection this service actually uses.
// Every route issues exactly one of these calls per request. Narrowing the
// type here lets tests stand in fakes built from the driver's
// NewSingleResultFromDocument and NewCursorFromDocuments helpers.
type Collection interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
}

// Database bundles the long-lived client with the four collections the
// service touches.
type Database struct {
	Client   *mongo.Client
	Recipes  Collection
	Cuisines Collection
	Tags     Collection
	Users    Collection
}

// Connect dials MongoDB, verifies the connection with a ping, and returns
// the collection handles for dbname.
func Connect(ctx context.Context, uri, dbname string) (*Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	d := client.Database(dbname)
	return &Database{
		Client:   client,
		Recipes:  d.Collection("recipes"),
		Cuisines: d.Collection("cuisines"),
		Tags:     d.Collection("tags"),
		Users:    d.Collection("users"),
	}, nil
}

// Close tears down the client connection.
func (d *Database) Close(ctx context.Context) error {
	return d.Client.Disconnect(ctx)
}
