package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// About is the site owner's biographical record. The UI treats the about
// collection as a singleton and always reads the first document.
type About struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Headline string             `bson:"headline" json:"headline"`
	Bio      string             `bson:"bio" json:"bio"`
	Email    string             `bson:"email" json:"email"`
	Location string             `bson:"location" json:"location"`

	Photo       string       `bson:"photo,omitempty" json:"photo,omitempty"`
	Phone       string       `bson:"phone,omitempty" json:"phone,omitempty"`
	SocialLinks []SocialLink `bson:"social_links,omitempty" json:"social_links,omitempty"`

	CreatedAt time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
