package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Achievement is an award or milestone. Date is a display string, not a
// parsed date; it is rendered verbatim.
type Achievement struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Date        string             `bson:"date,omitempty" json:"date,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	Link        string             `bson:"link,omitempty" json:"link,omitempty"`
}
