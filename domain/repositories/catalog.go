package repositories

import (
	"context"

	"github.com/learnly/server/domain/entities"
)

// CourseRepository defines data access methods for courses.
type CourseRepository interface {
	Create(ctx context.Context, course *entities.Course) error
	// GetByID resolves a course by its hex id, failing with
	// entities.ErrCourseNotFound when there is no match.
	GetByID(ctx context.Context, id string) (*entities.Course, error)
	// GetByTitle returns the course whose title exactly matches, or
	// (nil, nil) when none exists.
	GetByTitle(ctx context.Context, title string) (*entities.Course, error)
	GetAll(ctx context.Context) ([]*entities.Course, error)
}

// UserRepository defines data access methods for users.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	// GetByID resolves a user by its hex id, failing with
	// entities.ErrUserNotFound when there is no match.
	GetByID(ctx context.Context, id string) (*entities.User, error)
	// GetByEmail returns the user with the given email, or (nil, nil)
	// when none exists.
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
}
