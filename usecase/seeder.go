package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/learnly/server/domain/repositories"
)

// Seeder populates the store with the fixed sample course list at startup
type Seeder struct {
	courses repositories.CourseRepository
	logger  *zap.Logger
}

// NewSeeder creates a new catalog seeder
func NewSeeder(courses repositories.CourseRepository, logger *zap.Logger) *Seeder {
	return &Seeder{
		courses: courses,
		logger:  logger,
	}
}

// Run seeds each sample course whose title is not yet present. Existing
// courses are skipped without being updated, so re-runs are no-ops and edits
// to the sample list never propagate to an already seeded store. A failure
// on one sample is logged and does not abort the remaining ones.
//
// The title lookup and the create are separate store operations; concurrent
// startups of multiple instances can race to create duplicate titles.
func (s *Seeder) Run(ctx context.Context) {
	for _, sample := range SampleCourses() {
		existing, err := s.courses.GetByTitle(ctx, sample.Title)
		if err != nil {
			s.logger.Error("Error adding sample course",
				zap.String("title", sample.Title),
				zap.Error(err))
			continue
		}
		if existing != nil {
			continue
		}

		course := sample
		if err := s.courses.Create(ctx, &course); err != nil {
			s.logger.Error("Error adding sample course",
				zap.String("title", sample.Title),
				zap.Error(err))
			continue
		}

		s.logger.Info("Added sample course", zap.String("title", course.Title))
	}
}
