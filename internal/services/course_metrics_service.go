package services

import (
	"math"

	"github.com/apper-canvas/skillbites-light-omni/internal/models"
)

// courseMetricsService computes course-level aggregates from the section
// list. Every method is pure: recomputation on an unchanged sequence yields
// the same value.
type courseMetricsService struct{}

// NewCourseMetricsService creates a new course metrics service
func NewCourseMetricsService() *courseMetricsService {
	return &courseMetricsService{}
}

// TotalDurationSeconds sums the video durations across all sections, in the
// content's native unit. Document and quiz sections contribute zero. The sum
// is order-independent.
func (s *courseMetricsService) TotalDurationSeconds(course *models.Course) int {
	total := 0
	for _, section := range course.Sections {
		if section.Type == models.SectionTypeVideo && section.Video != nil {
			total += section.Video.DurationSeconds
		}
	}
	return total
}

// StoredDurationMinutes converts the summed seconds to whole minutes with a
// single rounding, avoiding cumulative per-section rounding error. This is
// the value stamped on the course at save time.
func (s *courseMetricsService) StoredDurationMinutes(course *models.Course) int {
	return int(math.Round(float64(s.TotalDurationSeconds(course)) / 60))
}

// DisplayDurationMinutes converts the summed seconds to the ceiling minute
// count the builder footer shows.
func (s *courseMetricsService) DisplayDurationMinutes(course *models.Course) int {
	return int(math.Ceil(float64(s.TotalDurationSeconds(course)) / 60))
}

// SectionCount returns the number of sections in the course
func (s *courseMetricsService) SectionCount(course *models.Course) int {
	return len(course.Sections)
}
