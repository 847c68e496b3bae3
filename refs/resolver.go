// Package refs resolves human-entered cuisine and tag names to the canonical
// {id, name} sub-documents stored in the reference collections. Resolution is
// a pure read; the snapshots it returns are denormalized into recipes at
// write time.
package refs

import (
	"context"

	"recipebook/apperr"
	"recipebook/db"
	"recipebook/models"
	"recipebook/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Resolver struct {
	cuisines db.Collection
	tags     db.Collection
}

func NewResolver(cuisines, tags db.Collection) *Resolver {
	return &Resolver{cuisines: cuisines, tags: tags}
}

// Resolve looks up the cuisine by exact name and every tag by name. It fails
// with an invalid-reference error when the cuisine is unknown or when the
// number of resolved tags differs from the number requested. Duplicate tag
// names in the request are not deduplicated before that comparison, so a
// duplicate causes a mismatch.
func (r *Resolver) Resolve(ctx context.Context, cuisineName string, tagNames []string) (models.CuisineRef, []models.TagRef, error) {
	var cuisine models.CuisineRef
	err := r.cuisines.FindOne(ctx, bson.M{"name": cuisineName}).Decode(&cuisine)
	if err == mongo.ErrNoDocuments {
		return models.CuisineRef{}, nil, apperr.Newf(apperr.InvalidReference, "cuisine %q does not exist", cuisineName)
	}
	if err != nil {
		return models.CuisineRef{}, nil, apperr.Wrap(apperr.StoreFailure, "cuisine lookup failed", err)
	}

	tags, err := utils.FindAndDecode[models.TagRef](ctx, r.tags, bson.M{"name": bson.M{"$in": tagNames}})
	if err != nil {
		return models.CuisineRef{}, nil, apperr.Wrap(apperr.StoreFailure, "tag lookup failed", err)
	}
	if len(tags) != len(tagNames) {
		return models.CuisineRef{}, nil, apperr.New(apperr.InvalidReference, "one or more tags do not exist")
	}

	return cuisine, tags, nil
}
