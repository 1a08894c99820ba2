package adapters

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/learnly/server/domain/entities"
)

// MemoryCourseRepository is an in-memory implementation of CourseRepository.
// It backs unit tests and store-less development runs.
type MemoryCourseRepository struct {
	mu      sync.RWMutex
	courses map[string]*entities.Course // hex id -> course
	order   []string                    // insertion order of ids
}

// NewMemoryCourseRepository creates a new in-memory course repository
func NewMemoryCourseRepository() *MemoryCourseRepository {
	return &MemoryCourseRepository{
		courses: make(map[string]*entities.Course),
	}
}

// copyCourse clones a course so callers never share the stored Lessons
// backing array.
func copyCourse(course *entities.Course) *entities.Course {
	copied := *course
	copied.Lessons = append([]entities.Lesson(nil), course.Lessons...)
	return &copied
}

// Create implements repositories.CourseRepository
func (m *MemoryCourseRepository) Create(ctx context.Context, course *entities.Course) error {
	if course == nil {
		return errors.New("course cannot be nil")
	}

	if err := course.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if course.ID.IsZero() {
		course.ID = primitive.NewObjectID()
	}

	m.courses[course.ID.Hex()] = copyCourse(course)
	m.order = append(m.order, course.ID.Hex())
	return nil
}

// GetByID implements repositories.CourseRepository
func (m *MemoryCourseRepository) GetByID(ctx context.Context, id string) (*entities.Course, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	course, exists := m.courses[id]
	if !exists {
		return nil, entities.ErrCourseNotFound
	}

	return copyCourse(course), nil
}

// GetByTitle implements repositories.CourseRepository
func (m *MemoryCourseRepository) GetByTitle(ctx context.Context, title string) (*entities.Course, error) {
	if title == "" {
		return nil, errors.New("title cannot be empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, id := range m.order {
		if m.courses[id].Title == title {
			return copyCourse(m.courses[id]), nil
		}
	}
	return nil, nil
}

// GetAll implements repositories.CourseRepository
func (m *MemoryCourseRepository) GetAll(ctx context.Context) ([]*entities.Course, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	courses := make([]*entities.Course, 0, len(m.order))
	for _, id := range m.order {
		courses = append(courses, copyCourse(m.courses[id]))
	}
	return courses, nil
}

// MemoryUserRepository is an in-memory implementation of UserRepository.
type MemoryUserRepository struct {
	mu     sync.RWMutex
	users  map[string]*entities.User // hex id -> user
	emails map[string]string         // email -> hex id
}

// NewMemoryUserRepository creates a new in-memory user repository
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users:  make(map[string]*entities.User),
		emails: make(map[string]string),
	}
}

// Create implements repositories.UserRepository
func (m *MemoryUserRepository) Create(ctx context.Context, user *entities.User) error {
	if user == nil {
		return errors.New("user cannot be nil")
	}

	if err := user.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.emails[user.Email]; exists {
		return &entities.ValidationError{Field: "email", Reason: "is already registered"}
	}

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if user.Date.IsZero() {
		user.Date = time.Now()
	}
	if user.EnrolledCourses == nil {
		user.EnrolledCourses = make([]primitive.ObjectID, 0)
	}

	stored := *user
	m.users[user.ID.Hex()] = &stored
	m.emails[user.Email] = user.ID.Hex()
	return nil
}

// GetByID implements repositories.UserRepository
func (m *MemoryUserRepository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, exists := m.users[id]
	if !exists {
		return nil, entities.ErrUserNotFound
	}

	copied := *user
	copied.EnrolledCourses = append([]primitive.ObjectID(nil), user.EnrolledCourses...)
	return &copied, nil
}

// GetByEmail implements repositories.UserRepository
func (m *MemoryUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	if email == "" {
		return nil, errors.New("email cannot be empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	id, exists := m.emails[email]
	if !exists {
		return nil, nil
	}

	copied := *m.users[id]
	copied.EnrolledCourses = append([]primitive.ObjectID(nil), m.users[id].EnrolledCourses...)
	return &copied, nil
}

// Update implements repositories.UserRepository
func (m *MemoryUserRepository) Update(ctx context.Context, user *entities.User) error {
	if user == nil {
		return errors.New("user cannot be nil")
	}
	if user.ID.IsZero() {
		return errors.New("user ID cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	existing, exists := m.users[user.ID.Hex()]
	if !exists {
		return entities.ErrUserNotFound
	}

	delete(m.emails, existing.Email)
	stored := *user
	stored.EnrolledCourses = append([]primitive.ObjectID(nil), user.EnrolledCourses...)
	m.users[user.ID.Hex()] = &stored
	m.emails[user.Email] = user.ID.Hex()
	return nil
}
