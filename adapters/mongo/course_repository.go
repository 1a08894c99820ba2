package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/learnly/server/domain/entities"
	"github.com/learnly/server/domain/repositories"
)

type CourseRepository struct {
	collection *mongo.Collection
}

// NewCourseRepository creates a new MongoDB course repository
func NewCourseRepository(db *mongo.Database) repositories.CourseRepository {
	return &CourseRepository{
		collection: db.Collection("courses"),
	}
}

// Create implements repositories.CourseRepository
func (r *CourseRepository) Create(ctx context.Context, course *entities.Course) error {
	if course == nil {
		return errors.New("course cannot be nil")
	}

	if err := course.Validate(); err != nil {
		return err
	}

	doc := bson.M{
		"title":       course.Title,
		"description": course.Description,
		"instructor":  course.Instructor,
		"lessons":     course.Lessons,
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}

	// Set the generated ID back to the course
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		course.ID = oid
	}

	return nil
}

// GetByID implements repositories.CourseRepository
func (r *CourseRepository) GetByID(ctx context.Context, id string) (*entities.Course, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id can never match a stored document.
		return nil, entities.ErrCourseNotFound
	}

	var course entities.Course
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&course)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entities.ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to get course %s: %w", id, err)
	}

	return &course, nil
}

// GetByTitle implements repositories.CourseRepository
func (r *CourseRepository) GetByTitle(ctx context.Context, title string) (*entities.Course, error) {
	if title == "" {
		return nil, errors.New("title cannot be empty")
	}

	var course entities.Course
	err := r.collection.FindOne(ctx, bson.M{"title": title}).Decode(&course)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil // No course found, return nil without error
		}
		return nil, fmt.Errorf("failed to get course by title %q: %w", title, err)
	}

	return &course, nil
}

// GetAll implements repositories.CourseRepository
func (r *CourseRepository) GetAll(ctx context.Context) ([]*entities.Course, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	defer cursor.Close(ctx)

	courses := make([]*entities.Course, 0)
	for cursor.Next(ctx) {
		var course entities.Course
		if err := cursor.Decode(&course); err != nil {
			return nil, fmt.Errorf("failed to decode course: %w", err)
		}
		courses = append(courses, &course)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate courses: %w", err)
	}

	return courses, nil
}
