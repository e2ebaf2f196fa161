package models

import "time"

// CourseStatus represents the publication state of a course
type CourseStatus string

const (
	CourseStatusDraft     CourseStatus = "draft"
	CourseStatusPublished CourseStatus = "published"
	CourseStatusArchived  CourseStatus = "archived"
)

// Currency represents the pricing currency of a course
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

// SuggestedCategories lists the categories offered by the course form.
// Category stays free text; these are suggestions, not an enum.
var SuggestedCategories = []string{
	"Technology", "Business", "Creative", "Marketing",
	"Design", "Development", "Photography", "Writing",
}

// Course represents a course assembled from ordered content sections
type Course struct {
	ID          int          `json:"Id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Price       float64      `json:"price"`
	Currency    Currency     `json:"currency"`
	Category    string       `json:"category"`
	Thumbnail   string       `json:"thumbnail,omitempty"`
	Status      CourseStatus `json:"status"`
	Sections    []Section    `json:"sections"`
	// EnrollmentCount and Rating are maintained by the platform, not the author.
	EnrollmentCount int     `json:"enrollmentCount"`
	Rating          float64 `json:"rating"`
	// Duration is derived from the video sections at save time, in whole minutes.
	Duration  int       `json:"duration"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Clone returns a deep copy of the course, including its section sequence
func (c Course) Clone() Course {
	clone := c
	if c.Sections != nil {
		clone.Sections = make([]Section, len(c.Sections))
		for i, section := range c.Sections {
			clone.Sections[i] = section.Clone()
		}
	}
	return clone
}

// UpdateCourseRequest represents a request to update a course (partial update)
//
// Unset fields leave the stored record untouched. Sections is replaced
// wholesale when present; there is no deep merge of the section sequence.
type UpdateCourseRequest struct {
	Title           string       `json:"title,omitempty"`
	Description     string       `json:"description,omitempty"`
	Price           *float64     `json:"price,omitempty"`
	Currency        Currency     `json:"currency,omitempty"`
	Category        string       `json:"category,omitempty"`
	Thumbnail       string       `json:"thumbnail,omitempty"`
	Status          CourseStatus `json:"status,omitempty"`
	Sections        *[]Section   `json:"sections,omitempty"`
	EnrollmentCount *int         `json:"enrollmentCount,omitempty"`
	Rating          *float64     `json:"rating,omitempty"`
	Duration        *int         `json:"duration,omitempty"`
}
