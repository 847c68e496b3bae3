// Package reviews implements the handlers for the reviews array embedded in
// a recipe document. Each operation is a single array update on the parent:
// $push to append, a positional $set to replace, $pull to remove. Review ids
// are assigned on append and never change; the date field is re-stamped on
// both append and replace.
package reviews

import (
	"encoding/json"
	"net/http"
	"time"

	"recipebook/apperr"
	"recipebook/db"
	"recipebook/models"
	"recipebook/utils"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Handler struct {
	recipes db.Collection
}

func NewHandler(database *db.Database) *Handler {
	return &Handler{recipes: database.Recipes}
}

type ReviewInput struct {
	User    string `json:"user"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (in ReviewInput) Validate() error {
	err := validation.ValidateStruct(&in,
		validation.Field(&in.User, validation.Required),
		validation.Field(&in.Rating, validation.Required),
		validation.Field(&in.Comment, validation.Required),
	)
	if err != nil {
		return apperr.New(apperr.MissingField, err.Error())
	}
	return nil
}

func decodeInput(w http.ResponseWriter, r *http.Request) (ReviewInput, bool) {
	var in ReviewInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return in, false
	}
	if err := in.Validate(); err != nil {
		utils.RespondWithAppError(w, err)
		return in, false
	}
	return in, true
}

// POST /recipes/:id/reviews — appends to the end of the parent's array.
func (h *Handler) AddReview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "recipe not found")
		return
	}

	in, ok := decodeInput(w, r)
	if !ok {
		return
	}

	review := models.Review{
		ReviewID: utils.GenerateRandomString(16),
		User:     in.User,
		Rating:   in.Rating,
		Comment:  in.Comment,
		Date:     time.Now(),
	}

	result, err := h.recipes.UpdateOne(r.Context(),
		bson.M{"_id": id},
		bson.M{"$push": bson.M{"reviews": review}},
	)
	if err != nil {
		utils.RespondWithAppError(w, apperr.Wrap(apperr.StoreFailure, "review insert failed", err))
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "recipe not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"message":  "review added",
		"reviewId": review.ReviewID,
	})
}

// PUT /recipes/:id/reviews/:reviewId — replaces the matched array entry
// wholesale. The parent id and review id are matched in one compound filter,
// so a missing recipe and a missing review inside an existing recipe are
// indistinguishable here: both surface as the same not-found response.
func (h *Handler) EditReview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "recipe or review not found")
		return
	}
	reviewID := ps.ByName("reviewId")

	in, ok := decodeInput(w, r)
	if !ok {
		return
	}

	review := models.Review{
		ReviewID: reviewID,
		User:     in.User,
		Rating:   in.Rating,
		Comment:  in.Comment,
		Date:     time.Now(),
	}

	result, err := h.recipes.UpdateOne(r.Context(),
		bson.M{"_id": id, "reviews.reviewId": reviewID},
		bson.M{"$set": bson.M{"reviews.$": review}},
	)
	if err != nil {
		utils.RespondWithAppError(w, apperr.Wrap(apperr.StoreFailure, "review update failed", err))
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "recipe or review not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message":  "review updated",
		"reviewId": reviewID,
	})
}

// DELETE /recipes/:id/reviews/:reviewId — unlike EditReview this reports the
// two failure cases separately: the parent recipe missing, or the parent
// present but no review entry pulled.
func (h *Handler) DeleteReview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "recipe not found")
		return
	}
	reviewID := ps.ByName("reviewId")

	result, err := h.recipes.UpdateOne(r.Context(),
		bson.M{"_id": id},
		bson.M{"$pull": bson.M{"reviews": bson.M{"reviewId": reviewID}}},
	)
	if err != nil {
		utils.RespondWithAppError(w, apperr.Wrap(apperr.StoreFailure, "review delete failed", err))
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "recipe not found")
		return
	}
	if result.ModifiedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "review not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "review deleted"})
}
