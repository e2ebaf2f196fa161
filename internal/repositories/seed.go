package repositories

import (
	"time"

	"github.com/apper-canvas/skillbites-light-omni/internal/models"
)

// SeedCourses returns the demo course fixtures the stores ship with
func SeedCourses() []models.Course {
	return []models.Course{
		{
			ID:          1,
			Title:       "JavaScript Fundamentals for Beginners",
			Description: "Learn the basics of JavaScript programming with hands-on exercises and real-world examples.",
			Price:       49.99,
			Currency:    models.CurrencyUSD,
			Category:    "Technology",
			Thumbnail:   "https://images.unsplash.com/photo-1627398242454-45a1465c2479?w=400&h=225&fit=crop",
			Status:      models.CourseStatusPublished,
			Duration:    180,
			Sections: []models.Section{
				{
					ID:    "1",
					Type:  models.SectionTypeVideo,
					Title: "Introduction to JavaScript",
					Order: 0,
					Video: &models.VideoContent{
						URL:             "https://example.com/video1.mp4",
						DurationSeconds: 600,
						Thumbnail:       "https://images.unsplash.com/photo-1627398242454-45a1465c2479?w=200&h=113&fit=crop",
					},
				},
				{
					ID:    "2",
					Type:  models.SectionTypeDocument,
					Title: "JavaScript Cheat Sheet",
					Order: 1,
					Document: &models.DocumentContent{
						URL:    "https://example.com/cheatsheet.pdf",
						Pages:  5,
						SizeMB: 2.3,
					},
				},
				{
					ID:    "3",
					Type:  models.SectionTypeQuiz,
					Title: "Variables and Functions Quiz",
					Order: 2,
					Quiz: &models.QuizContent{
						Questions: []models.Question{
							{
								ID:            "q1",
								Text:          "What keyword is used to declare a variable in JavaScript?",
								Type:          models.AnswerTypeMultiple,
								Options:       []string{"var", "let", "const", "All of the above"},
								CorrectOption: 3,
								Points:        1,
							},
						},
					},
				},
			},
			EnrollmentCount: 234,
			Rating:          4.8,
			CreatedAt:       time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
			UpdatedAt:       time.Date(2024, 1, 20, 14, 22, 0, 0, time.UTC),
		},
		{
			ID:          2,
			Title:       "Creative Writing Workshop",
			Description: "Unlock your creativity and learn the fundamentals of storytelling, character development, and narrative structure.",
			Price:       59.99,
			Currency:    models.CurrencyUSD,
			Category:    "Creative",
			Thumbnail:   "https://images.unsplash.com/photo-1455390582262-044cdead277a?w=400&h=225&fit=crop",
			Status:      models.CourseStatusPublished,
			Duration:    200,
			Sections: []models.Section{
				{
					ID:    "4",
					Type:  models.SectionTypeVideo,
					Title: "Finding Your Voice",
					Order: 0,
					Video: &models.VideoContent{
						URL:             "https://example.com/voice.mp4",
						DurationSeconds: 540,
					},
				},
				{
					ID:    "5",
					Type:  models.SectionTypeQuiz,
					Title: "Story Structure Quiz",
					Order: 1,
					Quiz: &models.QuizContent{
						Questions: []models.Question{
							{
								ID:          "q2",
								Text:        "What are the three acts of a story?",
								Type:        models.AnswerTypeShort,
								CorrectText: "Setup, Confrontation, Resolution",
								Points:      2,
							},
						},
					},
				},
			},
			EnrollmentCount: 127,
			Rating:          4.7,
			CreatedAt:       time.Date(2024, 1, 8, 14, 30, 0, 0, time.UTC),
			UpdatedAt:       time.Date(2024, 1, 16, 10, 25, 0, 0, time.UTC),
		},
		{
			ID:          3,
			Title:       "React Development Bootcamp",
			Description: "Build modern web applications with React. Learn components, hooks, state management, and deployment strategies.",
			Price:       129.99,
			Currency:    models.CurrencyUSD,
			Category:    "Development",
			Thumbnail:   "https://images.unsplash.com/photo-1633356122544-f134324a6cee?w=400&h=225&fit=crop",
			Status:      models.CourseStatusPublished,
			Duration:    480,
			Sections: []models.Section{
				{
					ID:    "6",
					Type:  models.SectionTypeVideo,
					Title: "React Components",
					Order: 0,
					Video: &models.VideoContent{
						URL:             "https://example.com/react-components.mp4",
						DurationSeconds: 840,
					},
				},
				{
					ID:    "7",
					Type:  models.SectionTypeVideo,
					Title: "State Management",
					Order: 1,
					Video: &models.VideoContent{
						URL:             "https://example.com/state.mp4",
						DurationSeconds: 720,
					},
				},
				{
					ID:    "8",
					Type:  models.SectionTypeQuiz,
					Title: "Hooks and State Quiz",
					Order: 2,
					Quiz: &models.QuizContent{
						Questions: []models.Question{
							{
								ID:            "q3",
								Text:          "Which hook is used for side effects?",
								Type:          models.AnswerTypeMultiple,
								Options:       []string{"useState", "useEffect", "useContext", "useReducer"},
								CorrectOption: 1,
								Points:        1,
							},
							{
								ID:          "q4",
								Text:        "React uses a virtual DOM",
								Type:        models.AnswerTypeTrueFalse,
								CorrectBool: true,
								Points:      1,
							},
						},
					},
				},
			},
			EnrollmentCount: 312,
			Rating:          4.9,
			CreatedAt:       time.Date(2024, 1, 5, 16, 0, 0, 0, time.UTC),
			UpdatedAt:       time.Date(2024, 1, 21, 12, 15, 0, 0, time.UTC),
		},
		{
			ID:              4,
			Title:           "Business Strategy Fundamentals",
			Description:     "Develop strategic thinking skills and learn how to create effective business strategies.",
			Price:           99.99,
			Currency:        models.CurrencyUSD,
			Category:        "Business",
			Status:          models.CourseStatusDraft,
			Sections:        []models.Section{},
			EnrollmentCount: 45,
			Rating:          4.4,
			CreatedAt:       time.Date(2024, 1, 22, 8, 45, 0, 0, time.UTC),
			UpdatedAt:       time.Date(2024, 1, 22, 15, 12, 0, 0, time.UTC),
		},
	}
}

// SeedEnrollments returns the demo enrollment fixtures the stores ship with.
// Enrollment 6 deliberately references a course id with no stored course to
// exercise consumer-side filtering of dangling references.
func SeedEnrollments() []models.Enrollment {
	completedFirst := time.Date(2024, 1, 25, 14, 30, 0, 0, time.UTC)
	completedThird := time.Date(2024, 1, 23, 18, 30, 0, 0, time.UTC)

	return []models.Enrollment{
		{
			ID:           1,
			CourseID:     1,
			StudentEmail: "sarah.johnson@email.com",
			Progress:     85,
			QuizScores:   map[string]int{"3": 90},
			CompletedAt:  &completedFirst,
			EnrolledAt:   time.Date(2024, 1, 15, 9, 20, 0, 0, time.UTC),
		},
		{
			ID:           2,
			CourseID:     1,
			StudentEmail: "mike.chen@email.com",
			Progress:     45,
			QuizScores:   map[string]int{},
			EnrolledAt:   time.Date(2024, 1, 18, 11, 45, 0, 0, time.UTC),
		},
		{
			ID:           3,
			CourseID:     3,
			StudentEmail: "rachel.kim@email.com",
			Progress:     95,
			QuizScores:   map[string]int{"8": 95},
			CompletedAt:  &completedThird,
			EnrolledAt:   time.Date(2024, 1, 11, 12, 40, 0, 0, time.UTC),
		},
		{
			ID:           4,
			CourseID:     2,
			StudentEmail: "maria.garcia@email.com",
			Progress:     30,
			QuizScores:   map[string]int{"5": 75},
			EnrolledAt:   time.Date(2024, 1, 21, 14, 50, 0, 0, time.UTC),
		},
		{
			ID:           5,
			CourseID:     3,
			StudentEmail: "john.taylor@email.com",
			Progress:     55,
			QuizScores:   map[string]int{"8": 80},
			EnrolledAt:   time.Date(2024, 1, 19, 9, 15, 0, 0, time.UTC),
		},
		{
			ID:           6,
			CourseID:     42,
			StudentEmail: "ghost.student@email.com",
			Progress:     10,
			QuizScores:   map[string]int{},
			EnrolledAt:   time.Date(2024, 1, 24, 11, 30, 0, 0, time.UTC),
		},
	}
}
