package services

import (
	"fmt"
	"slices"
	"sort"

	"github.com/apper-canvas/skillbites-light-omni/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DurationCalculator computes the stored course duration from the section list
type DurationCalculator interface {
	// StoredDurationMinutes returns the total video duration in whole minutes,
	// rounded once from the summed seconds.
	StoredDurationMinutes(course *models.Course) int
}

// courseBuilderService maintains the ordered section sequence of a course
// draft.
//
// Invariant after every operation: sorting the sections by Order yields the
// authoring sequence, and the Order values form the dense range [0, n-1].
type courseBuilderService struct {
	metrics DurationCalculator
	logger  *zap.Logger
	newID   func() string
}

// NewCourseBuilderService creates a new course builder service
func NewCourseBuilderService(metrics DurationCalculator, logger *zap.Logger) *courseBuilderService {
	return &courseBuilderService{
		metrics: metrics,
		logger:  logger,
		newID:   uuid.NewString,
	}
}

// NewSection builds an uncommitted draft section of the given type with an
// empty title and an empty content payload. The course is not mutated until
// the section is committed.
func (s *courseBuilderService) NewSection(course *models.Course, sectionType models.SectionType) (models.Section, error) {
	section := models.Section{
		ID:    s.newID(),
		Type:  sectionType,
		Order: len(course.Sections),
	}

	switch sectionType {
	case models.SectionTypeVideo:
		section.Video = &models.VideoContent{}
	case models.SectionTypeDocument:
		section.Document = &models.DocumentContent{}
	case models.SectionTypeQuiz:
		section.Quiz = &models.QuizContent{}
	default:
		return models.Section{}, fmt.Errorf("unknown section type %q", sectionType)
	}
	return section, nil
}

// CommitSection replaces the section with the same id in place, or appends it
// when the id is new. All Order values are re-derived afterwards, regardless
// of the Order the caller supplied.
func (s *courseBuilderService) CommitSection(course *models.Course, section models.Section) {
	sortSectionsByOrder(course)

	replaced := false
	for i := range course.Sections {
		if course.Sections[i].ID == section.ID {
			course.Sections[i] = section
			replaced = true
			break
		}
	}
	if !replaced {
		course.Sections = append(course.Sections, section)
	}
	reindexSections(course)

	s.logger.Debug("builder: committed section",
		zap.String("sectionId", section.ID),
		zap.String("type", string(section.Type)),
		zap.Bool("replaced", replaced),
	)
}

// RemoveSection deletes the section with the given id and re-derives the
// remaining Order values
func (s *courseBuilderService) RemoveSection(course *models.Course, sectionID string) error {
	sortSectionsByOrder(course)

	for i := range course.Sections {
		if course.Sections[i].ID == sectionID {
			course.Sections = append(course.Sections[:i], course.Sections[i+1:]...)
			reindexSections(course)
			s.logger.Debug("builder: removed section", zap.String("sectionId", sectionID))
			return nil
		}
	}
	s.logger.Warn("builder: remove of unknown section", zap.String("sectionId", sectionID))
	return models.ErrSectionNotFound
}

// Reorder moves the section at fromIndex to toIndex, list-move style. Indices
// address positions in the order-sorted sequence. Out-of-range indices leave
// the course unmodified.
func (s *courseBuilderService) Reorder(course *models.Course, fromIndex, toIndex int) error {
	sortSectionsByOrder(course)

	n := len(course.Sections)
	if fromIndex < 0 || fromIndex >= n || toIndex < 0 || toIndex >= n {
		s.logger.Warn("builder: reorder out of range",
			zap.Int("fromIndex", fromIndex),
			zap.Int("toIndex", toIndex),
			zap.Int("sections", n),
		)
		return models.ErrSectionIndexOutOfRange
	}

	moved := course.Sections[fromIndex]
	course.Sections = slices.Delete(course.Sections, fromIndex, fromIndex+1)
	course.Sections = slices.Insert(course.Sections, toIndex, moved)
	reindexSections(course)
	return nil
}

// FinalizeDraft stamps the derived duration ahead of a save. The stored
// duration is the summed video seconds converted to minutes in one rounding.
func (s *courseBuilderService) FinalizeDraft(course *models.Course) {
	course.Duration = s.metrics.StoredDurationMinutes(course)
}

// sortSectionsByOrder puts the sequence into display order. The sort is
// stable so sections with equal Order values keep their relative position.
func sortSectionsByOrder(course *models.Course) {
	sort.SliceStable(course.Sections, func(i, j int) bool {
		return course.Sections[i].Order < course.Sections[j].Order
	})
}

// reindexSections re-derives Order as the position in the sequence
func reindexSections(course *models.Course) {
	for i := range course.Sections {
		course.Sections[i].Order = i
	}
}
