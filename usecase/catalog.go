package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/learnly/server/domain/entities"
	"github.com/learnly/server/domain/repositories"
)

// CatalogService handles read-only course listing and fetching
type CatalogService struct {
	courses repositories.CourseRepository
	logger  *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(courses repositories.CourseRepository, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		courses: courses,
		logger:  logger,
	}
}

// List returns all courses in store order.
func (s *CatalogService) List(ctx context.Context) ([]*entities.Course, error) {
	courses, err := s.courses.GetAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list courses", zap.Error(err))
		return nil, err
	}
	return courses, nil
}

// Get returns the course with the given id, or entities.ErrCourseNotFound.
func (s *CatalogService) Get(ctx context.Context, id string) (*entities.Course, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, entities.ErrCourseNotFound) {
			s.logger.Error("Failed to get course",
				zap.String("course_id", id),
				zap.Error(err))
		}
		return nil, err
	}
	return course, nil
}
