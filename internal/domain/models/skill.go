package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Skill is a named proficiency with a 0-100 level and an ordered list of
// subtopics.
type Skill struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Level     int                `bson:"level" json:"level"`
	Subtopics Subtopics          `bson:"subtopics,omitempty" json:"subtopics,omitempty"`
}

// Subtopics is an ordered list of subtopic names. Older documents persisted
// the field as a single comma-joined string; both representations decode to
// the same list, so the rest of the app only ever sees the canonical shape.
type Subtopics []string

// UnmarshalBSONValue accepts either a BSON array of strings or a single
// comma-joined string.
func (s *Subtopics) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bsontype.Null, bsontype.Undefined:
		*s = nil
		return nil
	case bsontype.String:
		var joined string
		if err := bson.UnmarshalValue(t, data, &joined); err != nil {
			return err
		}
		*s = SplitSubtopics(joined)
		return nil
	case bsontype.Array:
		var items []string
		if err := bson.UnmarshalValue(t, data, &items); err != nil {
			return err
		}
		*s = items
		return nil
	}
	return fmt.Errorf("subtopics: cannot decode BSON type %s", t)
}

// UnmarshalJSON mirrors the BSON behavior for API payloads: a JSON string
// is comma-split, a JSON array is taken as-is.
func (s *Subtopics) UnmarshalJSON(data []byte) error {
	var joined string
	if err := json.Unmarshal(data, &joined); err == nil {
		*s = SplitSubtopics(joined)
		return nil
	}
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("subtopics: want string or array of strings: %w", err)
	}
	*s = items
	return nil
}

// SplitSubtopics splits a comma-joined subtopic string into trimmed,
// non-empty entries. "SQL, Python, Tableau" becomes three entries.
func SplitSubtopics(joined string) []string {
	parts := strings.Split(joined, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Join renders the list back into the comma-joined display form.
func (s Subtopics) Join() string {
	return strings.Join(s, ", ")
}
