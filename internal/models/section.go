package models

import (
	"encoding/json"
	"fmt"
)

// SectionType represents the kind of content unit a section holds
type SectionType string

const (
	SectionTypeVideo    SectionType = "video"
	SectionTypeDocument SectionType = "document"
	SectionTypeQuiz     SectionType = "quiz"
)

// VideoContent is the payload of a video section
type VideoContent struct {
	URL             string `json:"url"`
	DurationSeconds int    `json:"duration"`
	Thumbnail       string `json:"thumbnail,omitempty"`
}

// DocumentContent is the payload of a document section
type DocumentContent struct {
	URL    string  `json:"url"`
	Pages  int     `json:"pages"`
	SizeMB float64 `json:"size"`
}

// QuizContent is the payload of a quiz section
type QuizContent struct {
	Questions []Question `json:"questions"`
}

// Clone returns a deep copy of the quiz payload
func (q QuizContent) Clone() QuizContent {
	clone := q
	if q.Questions != nil {
		clone.Questions = make([]Question, len(q.Questions))
		for i, question := range q.Questions {
			clone.Questions[i] = question.Clone()
		}
	}
	return clone
}

// Section represents one ordered content unit inside a course.
//
// The content payload is a closed variant keyed by Type: exactly one of
// Video, Document or Quiz is non-nil. On the wire it serializes as a single
// "content" object whose fields depend on "type".
type Section struct {
	ID    string      `json:"id"`
	Type  SectionType `json:"type"`
	Title string      `json:"title"`
	// Order is assigned by the ordering engine: dense, zero-based, unique
	// within the course.
	Order int `json:"order"`

	Video    *VideoContent
	Document *DocumentContent
	Quiz     *QuizContent
}

// Clone returns a deep copy of the section and its content payload
func (s Section) Clone() Section {
	clone := s
	if s.Video != nil {
		video := *s.Video
		clone.Video = &video
	}
	if s.Document != nil {
		document := *s.Document
		clone.Document = &document
	}
	if s.Quiz != nil {
		quiz := s.Quiz.Clone()
		clone.Quiz = &quiz
	}
	return clone
}

// sectionJSON is the wire shape of a section
type sectionJSON struct {
	ID      string          `json:"id"`
	Type    SectionType     `json:"type"`
	Title   string          `json:"title"`
	Order   int             `json:"order"`
	Content json.RawMessage `json:"content"`
}

// MarshalJSON encodes the active content variant under the "content" key
func (s Section) MarshalJSON() ([]byte, error) {
	var content any = struct{}{}
	switch {
	case s.Video != nil:
		content = s.Video
	case s.Document != nil:
		content = s.Document
	case s.Quiz != nil:
		content = s.Quiz
	}
	raw, err := json.Marshal(content)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal section content: %w", err)
	}
	return json.Marshal(sectionJSON{
		ID:      s.ID,
		Type:    s.Type,
		Title:   s.Title,
		Order:   s.Order,
		Content: raw,
	})
}

// UnmarshalJSON decodes the "content" object into the variant named by "type"
func (s *Section) UnmarshalJSON(data []byte) error {
	var aux sectionJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	s.ID = aux.ID
	s.Type = aux.Type
	s.Title = aux.Title
	s.Order = aux.Order
	s.Video, s.Document, s.Quiz = nil, nil, nil

	switch aux.Type {
	case SectionTypeVideo:
		s.Video = &VideoContent{}
		if len(aux.Content) > 0 {
			return json.Unmarshal(aux.Content, s.Video)
		}
	case SectionTypeDocument:
		s.Document = &DocumentContent{}
		if len(aux.Content) > 0 {
			return json.Unmarshal(aux.Content, s.Document)
		}
	case SectionTypeQuiz:
		s.Quiz = &QuizContent{}
		if len(aux.Content) > 0 {
			return json.Unmarshal(aux.Content, s.Quiz)
		}
	default:
		return fmt.Errorf("unknown section type %q", aux.Type)
	}
	return nil
}
