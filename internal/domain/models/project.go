package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Project is a portfolio project card. Technologies is an ordered list with
// no uniqueness constraint; duplicates render as duplicate badges.
type Project struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	Summary      string             `bson:"summary,omitempty" json:"summary,omitempty"`
	Image        string             `bson:"image,omitempty" json:"image,omitempty"`
	Technologies []string           `bson:"technologies,omitempty" json:"technologies,omitempty"`
	DemoURL      string             `bson:"demo_url,omitempty" json:"demo_url,omitempty"`
	CodeURL      string             `bson:"code_url,omitempty" json:"code_url,omitempty"`
}
