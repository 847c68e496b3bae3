package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CuisineRef is a denormalized snapshot of a cuisines document, copied into a
// recipe at write time. Mutating the cuisines collection afterwards does not
// touch recipes written earlier.
type CuisineRef struct {
	ID   primitive.ObjectID `json:"id" bson:"_id"`
	Name string             `json:"name" bson:"name"`
}

// TagRef is a denormalized snapshot of a tags document, same rules as CuisineRef.
type TagRef struct {
	ID   primitive.ObjectID `json:"id" bson:"_id"`
	Name string             `json:"name" bson:"name"`
}

// Review is an entry in a recipe's embedded reviews array. Reviews have no
// independent existence; ReviewID is generated on append and never changes.
type Review struct {
	ReviewID string    `json:"reviewId" bson:"reviewId"`
	User     string    `json:"user" bson:"user"`
	Rating   int       `json:"rating" bson:"rating"`
	Comment  string    `json:"comment" bson:"comment"`
	Date     time.Time `json:"date" bson:"date"`
}

// Recipe is the stored document shape. PrepTime, CookTime and Servings are
// pass-through values: stored exactly as the caller sent them, no type or
// range checking.
type Recipe struct {
	ID           primitive.ObjectID `json:"id,omitzero" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Cuisine      CuisineRef         `json:"cuisine" bson:"cuisine"`
	PrepTime     any                `json:"prepTime,omitempty" bson:"prepTime,omitempty"`
	CookTime     any                `json:"cookTime,omitempty" bson:"cookTime,omitempty"`
	Servings     any                `json:"servings,omitempty" bson:"servings,omitempty"`
	Ingredients  []map[string]any   `json:"ingredients" bson:"ingredients"`
	Instructions []string           `json:"instructions" bson:"instructions"`
	Tags         []TagRef           `json:"tags" bson:"tags"`
	Reviews      []Review           `json:"reviews" bson:"reviews"`
}

// Cuisine and Tag are the reference collections. This service only reads them.
type Cuisine struct {
	ID   primitive.ObjectID `json:"id" bson:"_id"`
	Name string             `json:"name" bson:"name"`
}

type Tag struct {
	ID   primitive.ObjectID `json:"id" bson:"_id"`
	Name string             `json:"name" bson:"name"`
}
