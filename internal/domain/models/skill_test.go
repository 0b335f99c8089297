package models

import (
	"encoding/json"
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestSplitSubtopics(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"comma separated", "SQL, Python, Tableau", []string{"SQL", "Python", "Tableau"}},
		{"extra whitespace", "  Go ,  Rust  ", []string{"Go", "Rust"}},
		{"single entry", "Kubernetes", []string{"Kubernetes"}},
		{"empty pieces dropped", "a,,b,", []string{"a", "b"}},
		{"empty string", "", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitSubtopics(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitSubtopics(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSubtopicsJoin(t *testing.T) {
	s := Subtopics{"SQL", "Python", "Tableau"}
	if got, want := s.Join(), "SQL, Python, Tableau"; got != want {
		t.Errorf("Join() = %q, want %q", got, want)
	}
}

func TestSubtopicsBSONString(t *testing.T) {
	// Older documents persisted subtopics as one comma-joined string.
	raw, err := bson.Marshal(bson.M{"name": "Data", "level": 80, "subtopics": "SQL, Python, Tableau"})
	if err != nil {
		t.Fatal(err)
	}
	var s Skill
	if err := bson.Unmarshal(raw, &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := Subtopics{"SQL", "Python", "Tableau"}
	if !reflect.DeepEqual(s.Subtopics, want) {
		t.Errorf("subtopics = %v, want %v", s.Subtopics, want)
	}
}

func TestSubtopicsBSONArray(t *testing.T) {
	raw, err := bson.Marshal(bson.M{"name": "Data", "level": 80, "subtopics": []string{"SQL", "Python"}})
	if err != nil {
		t.Fatal(err)
	}
	var s Skill
	if err := bson.Unmarshal(raw, &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := Subtopics{"SQL", "Python"}
	if !reflect.DeepEqual(s.Subtopics, want) {
		t.Errorf("subtopics = %v, want %v", s.Subtopics, want)
	}
}

func TestSubtopicsBSONNull(t *testing.T) {
	raw, err := bson.Marshal(bson.M{"name": "Data", "subtopics": nil})
	if err != nil {
		t.Fatal(err)
	}
	var s Skill
	if err := bson.Unmarshal(raw, &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s.Subtopics != nil {
		t.Errorf("subtopics = %v, want nil", s.Subtopics)
	}
}

func TestSubtopicsJSON(t *testing.T) {
	var fromString Skill
	if err := json.Unmarshal([]byte(`{"name":"Data","subtopics":"SQL, Python, Tableau"}`), &fromString); err != nil {
		t.Fatalf("unmarshal string form: %v", err)
	}
	var fromArray Skill
	if err := json.Unmarshal([]byte(`{"name":"Data","subtopics":["SQL","Python","Tableau"]}`), &fromArray); err != nil {
		t.Fatalf("unmarshal array form: %v", err)
	}
	if !reflect.DeepEqual(fromString.Subtopics, fromArray.Subtopics) {
		t.Errorf("string form %v != array form %v", fromString.Subtopics, fromArray.Subtopics)
	}

	var s Skill
	if err := json.Unmarshal([]byte(`{"subtopics":42}`), &s); err == nil {
		t.Error("want error for numeric subtopics, got nil")
	}
}
