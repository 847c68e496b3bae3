package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is the users collection document. The plaintext password never reaches
// storage; only the bcrypt hash does.
type User struct {
	ID       primitive.ObjectID `json:"id,omitzero" bson:"_id,omitempty"`
	Email    string             `json:"email" bson:"email"`
	Password string             `json:"-" bson:"password"`
}
