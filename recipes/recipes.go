// Package recipes implements the recipe CRUD handlers. Create and full
// replace share one document builder: required fields are checked, cuisine
// and tag names are resolved to stored snapshots, and the optional timing
// fields pass through exactly as supplied.
package recipes

import (
	"context"
	"encoding/json"
	"net/http"

	"recipebook/apperr"
	"recipebook/db"
	"recipebook/models"
	"recipebook/refs"
	"recipebook/utils"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Handler struct {
	recipes  db.Collection
	resolver *refs.Resolver
}

func NewHandler(database *db.Database) *Handler {
	return &Handler{
		recipes:  database.Recipes,
		resolver: refs.NewResolver(database.Cuisines, database.Tags),
	}
}

// RecipeInput is the request shape shared by create and replace. PrepTime,
// CookTime and Servings are deliberately untyped; they are stored as given.
type RecipeInput struct {
	Name         string           `json:"name"`
	Cuisine      string           `json:"cuisine"`
	PrepTime     any              `json:"prepTime"`
	CookTime     any              `json:"cookTime"`
	Servings     any              `json:"servings"`
	Ingredients  []map[string]any `json:"ingredients"`
	Instructions []string         `json:"instructions"`
	Tags         []string         `json:"tags"`
}

func (in RecipeInput) Validate() error {
	err := validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required),
		validation.Field(&in.Cuisine, validation.Required),
		validation.Field(&in.Ingredients, validation.Required),
		validation.Field(&in.Instructions, validation.Required),
		validation.Field(&in.Tags, validation.Required),
	)
	if err != nil {
		return apperr.New(apperr.MissingField, err.Error())
	}
	return nil
}

// buildDocument validates the input and resolves references. It does not
// write anything itself.
func (h *Handler) buildDocument(ctx context.Context, in RecipeInput) (*models.Recipe, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	cuisine, tags, err := h.resolver.Resolve(ctx, in.Cuisine, in.Tags)
	if err != nil {
		return nil, err
	}
	return &models.Recipe{
		Name:         in.Name,
		Cuisine:      cuisine,
		PrepTime:     in.PrepTime,
		CookTime:     in.CookTime,
		Servings:     in.Servings,
		Ingredients:  in.Ingredients,
		Instructions: in.Instructions,
		Tags:         tags,
	}, nil
}

// contractFields lists every field the mutation contract owns. Replace sets
// all of them, so fields omitted from the input are overwritten rather than
// preserved. The embedded reviews array is not in this set and is never
// touched by a replace.
func contractFields(doc *models.Recipe) bson.M {
	return bson.M{
		"name":         doc.Name,
		"cuisine":      doc.Cuisine,
		"prepTime":     doc.PrepTime,
		"cookTime":     doc.CookTime,
		"servings":     doc.Servings,
		"ingredients":  doc.Ingredients,
		"instructions": doc.Instructions,
		"tags":         doc.Tags,
	}
}

// POST /recipes
func (h *Handler) CreateRecipe(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in RecipeInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	doc, err := h.buildDocument(r.Context(), in)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	doc.Reviews = []models.Review{}

	result, err := h.recipes.InsertOne(r.Context(), doc)
	if err != nil {
		utils.RespondWithAppError(w, apperr.Wrap(apperr.StoreFailure, "recipe insert failed", err))
		return
	}

	id := result.InsertedID.(primitive.ObjectID).Hex()
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"message":  "recipe created",
		"recipeId": id,
	})
}

// PUT /recipes/:id — full overwrite of every contract field.
func (h *Handler) UpdateRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "recipe not found")
		return
	}

	var in RecipeInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	doc, err := h.buildDocument(r.Context(), in)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}

	result, err := h.recipes.UpdateOne(r.Context(), bson.M{"_id": id}, bson.M{"$set": contractFields(doc)})
	if err != nil {
		utils.RespondWithAppError(w, apperr.Wrap(apperr.StoreFailure, "recipe update failed", err))
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "recipe not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "recipe updated"})
}

// DELETE /recipes/:id
func (h *Handler) DeleteRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "recipe not found")
		return
	}

	result, err := h.recipes.DeleteOne(r.Context(), bson.M{"_id": id})
	if err != nil {
		utils.RespondWithAppError(w, apperr.Wrap(apperr.StoreFailure, "recipe delete failed", err))
		return
	}
	if result.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "recipe not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "recipe deleted"})
}
