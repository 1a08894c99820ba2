package entities

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered account. Password always holds the stored
// credential hash, never the raw password.
type User struct {
	ID              primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Username        string               `json:"username" bson:"username"`
	Email           string               `json:"email" bson:"email"`
	Password        string               `json:"-" bson:"password"`
	Date            time.Time            `json:"date" bson:"date"`
	EnrolledCourses []primitive.ObjectID `json:"enrolledCourses" bson:"enrolledCourses"`
}

// NewUser creates a new user with the creation timestamp defaulted.
func NewUser(username, email, passwordHash string) *User {
	return &User{
		Username:        username,
		Email:           email,
		Password:        passwordHash,
		Date:            time.Now(),
		EnrolledCourses: make([]primitive.ObjectID, 0),
	}
}

// IsEnrolled reports whether the user is already enrolled in the course.
func (u *User) IsEnrolled(courseID primitive.ObjectID) bool {
	for _, id := range u.EnrolledCourses {
		if id == courseID {
			return true
		}
	}
	return false
}

// Enroll appends the course to the user's enrollments. It fails with
// ErrAlreadyEnrolled instead of producing a duplicate entry.
func (u *User) Enroll(courseID primitive.ObjectID) error {
	if u.IsEnrolled(courseID) {
		return ErrAlreadyEnrolled
	}
	u.EnrolledCourses = append(u.EnrolledCourses, courseID)
	return nil
}

// Validate validates the user data before it is written to the store.
// Email uniqueness is the repository's concern, not checked here.
func (u *User) Validate() error {
	if l := len(u.Username); l < 3 || l > 255 {
		return &ValidationError{Field: "username", Reason: "must be 3 to 255 characters"}
	}
	if l := len(u.Email); l < 6 || l > 255 {
		return &ValidationError{Field: "email", Reason: "must be 6 to 255 characters"}
	}
	if u.Password == "" {
		return &ValidationError{Field: "password", Reason: "is required"}
	}
	return nil
}
