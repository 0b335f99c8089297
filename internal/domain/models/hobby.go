package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Hobby is a name/description pair shown on the about card.
type Hobby struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
}
