package services

import (
	"fmt"
	"testing"

	"github.com/apper-canvas/skillbites-light-omni/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestBuilder creates a builder whose section ids are deterministic
func newTestBuilder(t *testing.T) *courseBuilderService {
	t.Helper()
	logger, err := zap.NewDevelopment()
	require.NoError(t, err)

	builder := NewCourseBuilderService(NewCourseMetricsService(), logger)
	counter := 0
	builder.newID = func() string {
		counter++
		return fmt.Sprintf("s%d", counter)
	}
	return builder
}

// assertDenseOrder checks the ordering invariant: orders are exactly 0..n-1
// in sequence position.
func assertDenseOrder(t *testing.T, course *models.Course) {
	t.Helper()
	for i, section := range course.Sections {
		assert.Equal(t, i, section.Order, "section %q at position %d", section.ID, i)
	}
}

func TestCourseBuilderService_NewSection(t *testing.T) {
	tests := []struct {
		name        string
		sectionType models.SectionType
		check       func(t *testing.T, section models.Section)
	}{
		{
			name:        "video gets empty video payload",
			sectionType: models.SectionTypeVideo,
			check: func(t *testing.T, section models.Section) {
				require.NotNil(t, section.Video)
				assert.Nil(t, section.Document)
				assert.Nil(t, section.Quiz)
			},
		},
		{
			name:        "document gets empty document payload",
			sectionType: models.SectionTypeDocument,
			check: func(t *testing.T, section models.Section) {
				require.NotNil(t, section.Document)
			},
		},
		{
			name:        "quiz gets empty question list",
			sectionType: models.SectionTypeQuiz,
			check: func(t *testing.T, section models.Section) {
				require.NotNil(t, section.Quiz)
				assert.Empty(t, section.Quiz.Questions)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			builder := newTestBuilder(t)
			course := &models.Course{}

			section, err := builder.NewSection(course, tt.sectionType)
			require.NoError(t, err)

			assert.NotEmpty(t, section.ID)
			assert.Empty(t, section.Title)
			assert.Equal(t, 0, section.Order)
			// The draft section is not committed yet.
			assert.Empty(t, course.Sections)
			tt.check(t, section)
		})
	}
}

func TestCourseBuilderService_NewSectionUnknownType(t *testing.T) {
	builder := newTestBuilder(t)
	_, err := builder.NewSection(&models.Course{}, "podcast")
	assert.Error(t, err)
}

func TestCourseBuilderService_CommitAppendsAndReplaces(t *testing.T) {
	builder := newTestBuilder(t)
	course := &models.Course{}

	first, err := builder.NewSection(course, models.SectionTypeVideo)
	require.NoError(t, err)
	first.Title = "Intro"
	builder.CommitSection(course, first)

	second, err := builder.NewSection(course, models.SectionTypeDocument)
	require.NoError(t, err)
	builder.CommitSection(course, second)

	require.Len(t, course.Sections, 2)
	assertDenseOrder(t, course)

	// Committing the same id again replaces in place, keeping the position.
	first.Title = "Intro v2"
	builder.CommitSection(course, first)
	require.Len(t, course.Sections, 2)
	assert.Equal(t, "Intro v2", course.Sections[0].Title)
	assertDenseOrder(t, course)
}

func TestCourseBuilderService_CommitNormalizesSuppliedOrder(t *testing.T) {
	builder := newTestBuilder(t)
	course := &models.Course{}

	section, err := builder.NewSection(course, models.SectionTypeVideo)
	require.NoError(t, err)
	section.Order = 99 // whatever the caller supplies gets re-derived
	builder.CommitSection(course, section)

	other, err := builder.NewSection(course, models.SectionTypeQuiz)
	require.NoError(t, err)
	other.Order = -5
	builder.CommitSection(course, other)

	assertDenseOrder(t, course)
}

func TestCourseBuilderService_RemoveSection(t *testing.T) {
	builder := newTestBuilder(t)
	course := &models.Course{}

	for _, sectionType := range []models.SectionType{models.SectionTypeVideo, models.SectionTypeDocument, models.SectionTypeQuiz} {
		section, err := builder.NewSection(course, sectionType)
		require.NoError(t, err)
		builder.CommitSection(course, section)
	}

	require.NoError(t, builder.RemoveSection(course, "s2"))
	require.Len(t, course.Sections, 2)
	assert.Equal(t, "s1", course.Sections[0].ID)
	assert.Equal(t, "s3", course.Sections[1].ID)
	assertDenseOrder(t, course)

	assert.ErrorIs(t, builder.RemoveSection(course, "s2"), models.ErrSectionNotFound)
}

func TestCourseBuilderService_Reorder(t *testing.T) {
	tests := []struct {
		name      string
		fromIndex int
		toIndex   int
		expected  []string
		wantErr   bool
	}{
		{name: "move first to last", fromIndex: 0, toIndex: 2, expected: []string{"s2", "s3", "s1"}},
		{name: "move last to first", fromIndex: 2, toIndex: 0, expected: []string{"s3", "s1", "s2"}},
		{name: "move to same position", fromIndex: 1, toIndex: 1, expected: []string{"s1", "s2", "s3"}},
		{name: "from index negative", fromIndex: -1, toIndex: 0, wantErr: true},
		{name: "from index past end", fromIndex: 3, toIndex: 0, wantErr: true},
		{name: "to index past end", fromIndex: 0, toIndex: 3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			builder := newTestBuilder(t)
			course := &models.Course{}
			for _, sectionType := range []models.SectionType{models.SectionTypeVideo, models.SectionTypeDocument, models.SectionTypeQuiz} {
				section, err := builder.NewSection(course, sectionType)
				require.NoError(t, err)
				builder.CommitSection(course, section)
			}

			err := builder.Reorder(course, tt.fromIndex, tt.toIndex)

			if tt.wantErr {
				assert.ErrorIs(t, err, models.ErrSectionIndexOutOfRange)
				// A failed reorder leaves the course unmodified.
				assert.Equal(t, []string{"s1", "s2", "s3"}, sectionIDs(course))
				assertDenseOrder(t, course)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, sectionIDs(course))
			assertDenseOrder(t, course)
		})
	}
}

func TestCourseBuilderService_ReorderRoundTripRestoresSequence(t *testing.T) {
	builder := newTestBuilder(t)
	course := &models.Course{}
	for i := 0; i < 4; i++ {
		section, err := builder.NewSection(course, models.SectionTypeVideo)
		require.NoError(t, err)
		builder.CommitSection(course, section)
	}
	original := sectionIDs(course)

	require.NoError(t, builder.Reorder(course, 0, 3))
	require.NoError(t, builder.Reorder(course, 3, 0))

	assert.Equal(t, original, sectionIDs(course))
	assertDenseOrder(t, course)
}

func TestCourseBuilderService_OperationSequencesKeepDenseOrder(t *testing.T) {
	builder := newTestBuilder(t)
	course := &models.Course{}

	for i := 0; i < 5; i++ {
		section, err := builder.NewSection(course, models.SectionTypeVideo)
		require.NoError(t, err)
		builder.CommitSection(course, section)
	}
	require.NoError(t, builder.RemoveSection(course, "s3"))
	require.NoError(t, builder.Reorder(course, 0, 2))
	require.NoError(t, builder.RemoveSection(course, "s5"))
	require.NoError(t, builder.Reorder(course, 2, 1))

	assert.Len(t, course.Sections, 3)
	assertDenseOrder(t, course)
}

func TestCourseBuilderService_FinalizeDraft(t *testing.T) {
	builder := newTestBuilder(t)
	course := &models.Course{}

	video, err := builder.NewSection(course, models.SectionTypeVideo)
	require.NoError(t, err)
	video.Video.DurationSeconds = 600
	builder.CommitSection(course, video)

	document, err := builder.NewSection(course, models.SectionTypeDocument)
	require.NoError(t, err)
	builder.CommitSection(course, document)

	builder.FinalizeDraft(course)

	assert.Len(t, course.Sections, 2)
	assertDenseOrder(t, course)
	assert.Equal(t, 10, course.Duration)
}

func sectionIDs(course *models.Course) []string {
	ids := make([]string, len(course.Sections))
	for i, section := range course.Sections {
		ids[i] = section.ID
	}
	return ids
}
