package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Education is a degree/program record. Like About, the about card only
// renders the first document in the collection.
type Education struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Institution string             `bson:"institution" json:"institution"`
	Degree      string             `bson:"degree" json:"degree"`
	Field       string             `bson:"field" json:"field"`
	StartDate   string             `bson:"start_date,omitempty" json:"start_date,omitempty"`
	EndDate     string             `bson:"end_date,omitempty" json:"end_date,omitempty"`
	Location    string             `bson:"location" json:"location"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`

	CreatedAt time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
