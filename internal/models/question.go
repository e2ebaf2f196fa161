package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// AnswerType represents the kind of answer key a quiz question carries
type AnswerType string

const (
	AnswerTypeMultiple  AnswerType = "multiple"
	AnswerTypeTrueFalse AnswerType = "truefalse"
	AnswerTypeShort     AnswerType = "short"
)

// Question represents a single quiz question.
//
// The answer key is a variant keyed by Type: CorrectOption indexes Options
// for multiple choice, CorrectBool holds the true/false key, CorrectText the
// short-answer key. Switching Type does not clear the other variants' fields;
// the stale values are simply not serialized.
type Question struct {
	ID      string     `json:"id"`
	Text    string     `json:"question"`
	Type    AnswerType `json:"type"`
	Options []string   `json:"options,omitempty"`

	CorrectOption int    `json:"-"`
	CorrectBool   bool   `json:"-"`
	CorrectText   string `json:"-"`

	Points int `json:"points"`
}

// Clone returns a deep copy of the question
func (q Question) Clone() Question {
	clone := q
	if q.Options != nil {
		clone.Options = make([]string, len(q.Options))
		copy(clone.Options, q.Options)
	}
	return clone
}

// questionJSON is the wire shape of a question
type questionJSON struct {
	ID            string          `json:"id"`
	Text          string          `json:"question"`
	Type          AnswerType      `json:"type"`
	Options       []string        `json:"options,omitempty"`
	CorrectAnswer json.RawMessage `json:"correctAnswer"`
	Points        int             `json:"points"`
}

// MarshalJSON emits a single "correctAnswer" key whose value type follows
// the answer type: option index, boolean, or free text.
func (q Question) MarshalJSON() ([]byte, error) {
	aux := questionJSON{
		ID:     q.ID,
		Text:   q.Text,
		Type:   q.Type,
		Points: q.Points,
	}

	var answer any
	switch q.Type {
	case AnswerTypeMultiple:
		aux.Options = q.Options
		answer = q.CorrectOption
	case AnswerTypeTrueFalse:
		answer = q.CorrectBool
	case AnswerTypeShort:
		answer = q.CorrectText
	default:
		return nil, fmt.Errorf("unknown answer type %q", q.Type)
	}

	raw, err := json.Marshal(answer)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal correct answer: %w", err)
	}
	aux.CorrectAnswer = raw
	return json.Marshal(aux)
}

// UnmarshalJSON decodes "correctAnswer" into the variant named by "type"
func (q *Question) UnmarshalJSON(data []byte) error {
	var aux questionJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	q.ID = aux.ID
	q.Text = aux.Text
	q.Type = aux.Type
	q.Options = aux.Options
	q.Points = aux.Points
	q.CorrectOption, q.CorrectBool, q.CorrectText = 0, false, ""

	if len(aux.CorrectAnswer) == 0 {
		return nil
	}

	switch aux.Type {
	case AnswerTypeMultiple:
		if err := json.Unmarshal(aux.CorrectAnswer, &q.CorrectOption); err != nil {
			return fmt.Errorf("invalid multiple-choice answer key: %w", err)
		}
	case AnswerTypeTrueFalse:
		if err := json.Unmarshal(aux.CorrectAnswer, &q.CorrectBool); err != nil {
			// Legacy records store the key as the string "true"/"false".
			var legacy string
			if err := json.Unmarshal(aux.CorrectAnswer, &legacy); err != nil {
				return fmt.Errorf("invalid true/false answer key: %w", err)
			}
			parsed, err := strconv.ParseBool(legacy)
			if err != nil {
				return fmt.Errorf("invalid true/false answer key %q: %w", legacy, err)
			}
			q.CorrectBool = parsed
		}
	case AnswerTypeShort:
		if err := json.Unmarshal(aux.CorrectAnswer, &q.CorrectText); err != nil {
			return fmt.Errorf("invalid short answer key: %w", err)
		}
	default:
		return fmt.Errorf("unknown answer type %q", aux.Type)
	}
	return nil
}

// UpdateQuestionRequest represents a request to update a question (partial update)
//
// Unset fields leave the question untouched. Changing Type deliberately does
// not clear the other answer variants' fields.
type UpdateQuestionRequest struct {
	Text          *string    `json:"question,omitempty"`
	Type          AnswerType `json:"type,omitempty"`
	Options       *[]string  `json:"options,omitempty"`
	CorrectOption *int       `json:"correctAnswer,omitempty"`
	CorrectBool   *bool      `json:"-"`
	CorrectText   *string    `json:"-"`
	Points        *int       `json:"points,omitempty"`
}
