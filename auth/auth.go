// Package auth holds the user-registration handler. Passwords are bcrypt
// hashed with the configured cost before they reach the users collection;
// the plaintext is never stored.
package auth

import (
	"encoding/json"
	"net/http"

	"recipebook/apperr"
	"recipebook/db"
	"recipebook/models"
	"recipebook/utils"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/julienschmidt/httprouter"
	"golang.org/x/crypto/bcrypt"
)

type Handler struct {
	users db.Collection
	cost  int
}

func NewHandler(database *db.Database, bcryptCost int) *Handler {
	return &Handler{users: database.Users, cost: bcryptCost}
}

type registrationInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in registrationInput) Validate() error {
	err := validation.ValidateStruct(&in,
		validation.Field(&in.Email, validation.Required),
		validation.Field(&in.Password, validation.Required),
	)
	if err != nil {
		return apperr.New(apperr.MissingField, err.Error())
	}
	return nil
}

// POST /users
func (h *Handler) Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in registrationInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := in.Validate(); err != nil {
		utils.RespondWithAppError(w, err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), h.cost)
	if err != nil {
		utils.RespondWithAppError(w, apperr.Wrap(apperr.StoreFailure, "password hashing failed", err))
		return
	}

	user := models.User{
		Email:    in.Email,
		Password: string(hashed),
	}

	result, err := h.users.InsertOne(r.Context(), user)
	if err != nil {
		utils.RespondWithAppError(w, apperr.Wrap(apperr.StoreFailure, "user insert failed", err))
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message": "user registered",
		"result":  result.InsertedID,
	})
}
