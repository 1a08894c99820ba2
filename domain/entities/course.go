package entities

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lesson is a single unit of course content. Lessons have no identity of
// their own; their position in Course.Lessons is their display order.
type Lesson struct {
	Title    string `json:"title" bson:"title"`
	Content  string `json:"content" bson:"content"`
	VideoURL string `json:"videoUrl,omitempty" bson:"videoUrl,omitempty"`
}

// Course represents a course in the catalog with its ordered lessons.
type Course struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Instructor  string             `json:"instructor" bson:"instructor"`
	Lessons     []Lesson           `json:"lessons" bson:"lessons"`
}

// Validate validates the course data before it is written to the store.
func (c *Course) Validate() error {
	if c.Title == "" {
		return &ValidationError{Field: "title", Reason: "is required"}
	}
	if c.Description == "" {
		return &ValidationError{Field: "description", Reason: "is required"}
	}
	if c.Instructor == "" {
		return &ValidationError{Field: "instructor", Reason: "is required"}
	}
	return nil
}
