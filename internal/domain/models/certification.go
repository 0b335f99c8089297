package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Certification is an earned credential. Date is an ISO date string
// (YYYY-MM-DD).
type Certification struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Link        string             `bson:"link,omitempty" json:"link,omitempty"`
	Date        string             `bson:"date,omitempty" json:"date,omitempty"`
}
