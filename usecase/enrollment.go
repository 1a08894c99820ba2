package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/learnly/server/domain/repositories"
)

// EnrollmentService links users to courses
type EnrollmentService struct {
	courses repositories.CourseRepository
	users   repositories.UserRepository
	logger  *zap.Logger
}

// NewEnrollmentService creates a new enrollment service
func NewEnrollmentService(courses repositories.CourseRepository, users repositories.UserRepository, logger *zap.Logger) *EnrollmentService {
	return &EnrollmentService{
		courses: courses,
		users:   users,
		logger:  logger,
	}
}

// Enroll adds the course to the user's enrollments. It fails with
// entities.ErrCourseNotFound, entities.ErrUserNotFound or
// entities.ErrAlreadyEnrolled; on the duplicate case no mutation occurs.
//
// The membership check and the write are separate store operations, so two
// concurrent enrollments for the same user can both pass the check. Known
// limitation, inherited from the store's per-document guarantees.
func (s *EnrollmentService) Enroll(ctx context.Context, courseID, userID string) error {
	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := user.Enroll(course.ID); err != nil {
		return err
	}

	if err := s.users.Update(ctx, user); err != nil {
		s.logger.Error("Failed to persist enrollment",
			zap.String("user_id", userID),
			zap.String("course_id", courseID),
			zap.Error(err))
		return err
	}

	s.logger.Info("User enrolled in course",
		zap.String("user_id", userID),
		zap.String("course_id", courseID))

	return nil
}
