package services

import (
	"testing"

	"github.com/apper-canvas/skillbites-light-omni/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func quizFixture() models.Section {
	return models.Section{
		ID:   "quiz",
		Type: models.SectionTypeQuiz,
		Quiz: &models.QuizContent{
			Questions: []models.Question{
				{ID: "q1", Type: models.AnswerTypeMultiple, Options: []string{"a", "b"}, Points: 1},
			},
		},
	}
}

func TestCourseMetricsService_TotalDurationSeconds(t *testing.T) {
	metrics := NewCourseMetricsService()

	tests := []struct {
		name     string
		sections []models.Section
		expected int
	}{
		{
			name:     "empty course",
			sections: nil,
			expected: 0,
		},
		{
			name: "videos sum in seconds",
			sections: []models.Section{
				{ID: "v1", Type: models.SectionTypeVideo, Video: &models.VideoContent{DurationSeconds: 600}},
				{ID: "v2", Type: models.SectionTypeVideo, Video: &models.VideoContent{DurationSeconds: 450}},
			},
			expected: 1050,
		},
		{
			name: "documents and quizzes contribute zero",
			sections: []models.Section{
				{ID: "v1", Type: models.SectionTypeVideo, Video: &models.VideoContent{DurationSeconds: 600}},
				{ID: "d1", Type: models.SectionTypeDocument, Document: &models.DocumentContent{Pages: 5}},
				quizFixture(),
			},
			expected: 600,
		},
		{
			name: "only non-video sections",
			sections: []models.Section{
				{ID: "d1", Type: models.SectionTypeDocument, Document: &models.DocumentContent{Pages: 5}},
				quizFixture(),
			},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			course := &models.Course{Sections: tt.sections}
			assert.Equal(t, tt.expected, metrics.TotalDurationSeconds(course))
			// Pure and idempotent.
			assert.Equal(t, tt.expected, metrics.TotalDurationSeconds(course))
		})
	}
}

func TestCourseMetricsService_InvariantUnderReorder(t *testing.T) {
	logger, err := zap.NewDevelopment()
	require.NoError(t, err)
	metrics := NewCourseMetricsService()
	builder := NewCourseBuilderService(metrics, logger)

	course := &models.Course{Sections: []models.Section{
		{ID: "v1", Type: models.SectionTypeVideo, Order: 0, Video: &models.VideoContent{DurationSeconds: 600}},
		{ID: "d1", Type: models.SectionTypeDocument, Order: 1, Document: &models.DocumentContent{}},
		{ID: "v2", Type: models.SectionTypeVideo, Order: 2, Video: &models.VideoContent{DurationSeconds: 300}},
	}}

	before := metrics.TotalDurationSeconds(course)
	require.NoError(t, builder.Reorder(course, 0, 2))
	assert.Equal(t, before, metrics.TotalDurationSeconds(course))

	// Removing every video drops the total to zero.
	require.NoError(t, builder.RemoveSection(course, "v1"))
	require.NoError(t, builder.RemoveSection(course, "v2"))
	assert.Equal(t, 0, metrics.TotalDurationSeconds(course))
}

func TestCourseMetricsService_MinuteConversions(t *testing.T) {
	metrics := NewCourseMetricsService()

	tests := []struct {
		name           string
		seconds        int
		storedMinutes  int
		displayMinutes int
	}{
		{name: "exact minutes", seconds: 600, storedMinutes: 10, displayMinutes: 10},
		{name: "rounds down under half", seconds: 620, storedMinutes: 10, displayMinutes: 11},
		{name: "rounds up over half", seconds: 650, storedMinutes: 11, displayMinutes: 11},
		{name: "zero", seconds: 0, storedMinutes: 0, displayMinutes: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			course := &models.Course{Sections: []models.Section{
				{ID: "v1", Type: models.SectionTypeVideo, Video: &models.VideoContent{DurationSeconds: tt.seconds}},
			}}
			assert.Equal(t, tt.storedMinutes, metrics.StoredDurationMinutes(course))
			assert.Equal(t, tt.displayMinutes, metrics.DisplayDurationMinutes(course))
		})
	}
}

func TestCourseMetricsService_SectionCount(t *testing.T) {
	metrics := NewCourseMetricsService()
	assert.Equal(t, 0, metrics.SectionCount(&models.Course{}))
	assert.Equal(t, 2, metrics.SectionCount(&models.Course{Sections: []models.Section{
		{ID: "v1", Type: models.SectionTypeVideo},
		quizFixture(),
	}}))
}
