package models

import "time"

// Enrollment represents a student's enrollment in a course.
//
// CourseID is a weak reference: the course may have been deleted since, and
// consumers are expected to filter enrollments whose course no longer
// resolves.
type Enrollment struct {
	ID           int    `json:"Id"`
	CourseID     int    `json:"courseId"`
	StudentEmail string `json:"studentEmail"`
	// Progress is a percentage in [0, 100].
	Progress int `json:"progress"`
	// QuizScores maps quiz section ids to integer percentages.
	QuizScores map[string]int `json:"quizScores"`
	// CompletedAt is nil until the student finishes the course.
	CompletedAt *time.Time `json:"completedAt"`
	EnrolledAt  time.Time  `json:"enrolledAt"`
}

// Clone returns a deep copy of the enrollment
func (e Enrollment) Clone() Enrollment {
	clone := e
	if e.QuizScores != nil {
		clone.QuizScores = make(map[string]int, len(e.QuizScores))
		for sectionID, score := range e.QuizScores {
			clone.QuizScores[sectionID] = score
		}
	}
	if e.CompletedAt != nil {
		completedAt := *e.CompletedAt
		clone.CompletedAt = &completedAt
	}
	return clone
}

// UpdateEnrollmentRequest represents a request to update an enrollment (partial update)
//
// Unset fields leave the stored record untouched. QuizScores is replaced
// wholesale when present.
type UpdateEnrollmentRequest struct {
	CourseID     *int           `json:"courseId,omitempty"`
	StudentEmail string         `json:"studentEmail,omitempty"`
	Progress     *int           `json:"progress,omitempty"`
	QuizScores   map[string]int `json:"quizScores,omitempty"`
	CompletedAt  *time.Time     `json:"completedAt,omitempty"`
}
