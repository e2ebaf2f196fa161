package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionMarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		question Question
		expected string
	}{
		{
			name: "multiple choice emits options and index",
			question: Question{
				ID:            "q1",
				Text:          "Which hook is used for side effects?",
				Type:          AnswerTypeMultiple,
				Options:       []string{"useState", "useEffect"},
				CorrectOption: 1,
				Points:        1,
			},
			expected: `{"id":"q1","question":"Which hook is used for side effects?","type":"multiple","options":["useState","useEffect"],"correctAnswer":1,"points":1}`,
		},
		{
			name: "true false emits boolean",
			question: Question{
				ID:          "q2",
				Text:        "React uses a virtual DOM",
				Type:        AnswerTypeTrueFalse,
				CorrectBool: true,
				Points:      1,
			},
			expected: `{"id":"q2","question":"React uses a virtual DOM","type":"truefalse","correctAnswer":true,"points":1}`,
		},
		{
			name: "short answer emits text",
			question: Question{
				ID:          "q3",
				Text:        "What are the three acts of a story?",
				Type:        AnswerTypeShort,
				CorrectText: "Setup, Confrontation, Resolution",
				Points:      2,
			},
			expected: `{"id":"q3","question":"What are the three acts of a story?","type":"short","correctAnswer":"Setup, Confrontation, Resolution","points":2}`,
		},
		{
			name: "stale variant fields are not serialized",
			question: Question{
				ID:            "q4",
				Text:          "Switched from multiple to short",
				Type:          AnswerTypeShort,
				Options:       []string{"a", "b", "c", "d"},
				CorrectOption: 2,
				CorrectText:   "answer",
				Points:        1,
			},
			expected: `{"id":"q4","question":"Switched from multiple to short","type":"short","correctAnswer":"answer","points":1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.question)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(data))
		})
	}
}

func TestQuestionUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected Question
	}{
		{
			name: "multiple choice",
			raw:  `{"id":"q1","question":"2+2?","type":"multiple","options":["3","4"],"correctAnswer":1,"points":1}`,
			expected: Question{
				ID: "q1", Text: "2+2?", Type: AnswerTypeMultiple,
				Options: []string{"3", "4"}, CorrectOption: 1, Points: 1,
			},
		},
		{
			name: "true false boolean",
			raw:  `{"id":"q2","question":"Go has classes","type":"truefalse","correctAnswer":false,"points":1}`,
			expected: Question{
				ID: "q2", Text: "Go has classes", Type: AnswerTypeTrueFalse,
				CorrectBool: false, Points: 1,
			},
		},
		{
			name: "legacy true false string key",
			raw:  `{"id":"q3","question":"React uses a virtual DOM","type":"truefalse","correctAnswer":"true","points":1}`,
			expected: Question{
				ID: "q3", Text: "React uses a virtual DOM", Type: AnswerTypeTrueFalse,
				CorrectBool: true, Points: 1,
			},
		},
		{
			name: "short answer",
			raw:  `{"id":"q4","question":"Acts?","type":"short","correctAnswer":"three","points":2}`,
			expected: Question{
				ID: "q4", Text: "Acts?", Type: AnswerTypeShort,
				CorrectText: "three", Points: 2,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var question Question
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &question))
			assert.Equal(t, tt.expected, question)
		})
	}
}

func TestQuestionUnmarshalJSONInvalidKey(t *testing.T) {
	var question Question
	err := json.Unmarshal([]byte(`{"id":"q1","type":"truefalse","correctAnswer":"maybe"}`), &question)
	assert.Error(t, err)
}
