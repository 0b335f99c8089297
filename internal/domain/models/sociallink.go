package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// SocialLink is a contact-section link. Platform is the natural key in the
// contact-section variant (one link per platform); a unique index enforces it.
type SocialLink struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Platform    string             `bson:"platform" json:"platform"`
	URL         string             `bson:"url" json:"url"`
	Username    string             `bson:"username,omitempty" json:"username,omitempty"`
	Placeholder string             `bson:"placeholder,omitempty" json:"placeholder,omitempty"`
}
