package services

import (
	"github.com/apper-canvas/skillbites-light-omni/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// defaultOptionCount is the number of blank options a new question starts with
const defaultOptionCount = 4

// quizEditorService manages the question list of one quiz section's payload.
//
// Edits targeting a question id that is no longer present are silent no-ops:
// the presentation layer may race a field update against a deletion from
// another interaction path, and the editor treats the update as idempotent
// rather than failing.
type quizEditorService struct {
	logger *zap.Logger
	newID  func() string
}

// NewQuizEditorService creates a new quiz editor service
func NewQuizEditorService(logger *zap.Logger) *quizEditorService {
	return &quizEditorService{
		logger: logger,
		newID:  uuid.NewString,
	}
}

// AddQuestion appends a fresh question: multiple choice, four empty options,
// first option marked correct, one point. Returns a pointer into the quiz's
// question sequence for immediate population.
func (s *quizEditorService) AddQuestion(quiz *models.QuizContent) *models.Question {
	question := models.Question{
		ID:      s.newID(),
		Type:    models.AnswerTypeMultiple,
		Options: make([]string, defaultOptionCount),
		Points:  1,
	}
	quiz.Questions = append(quiz.Questions, question)
	s.logger.Debug("quiz editor: added question", zap.String("questionId", question.ID))
	return &quiz.Questions[len(quiz.Questions)-1]
}

// UpdateQuestion patches the matching question field by field. Changing the
// answer type does not clear the other variants' fields; stale values are a
// display-layer concern.
func (s *quizEditorService) UpdateQuestion(quiz *models.QuizContent, questionID string, patch models.UpdateQuestionRequest) {
	question := findQuestion(quiz, questionID)
	if question == nil {
		s.logger.Debug("quiz editor: update on missing question", zap.String("questionId", questionID))
		return
	}

	if patch.Text != nil {
		question.Text = *patch.Text
	}
	if patch.Type != "" {
		question.Type = patch.Type
	}
	if patch.Options != nil {
		options := make([]string, len(*patch.Options))
		copy(options, *patch.Options)
		question.Options = options
	}
	if patch.CorrectOption != nil {
		question.CorrectOption = *patch.CorrectOption
	}
	if patch.CorrectBool != nil {
		question.CorrectBool = *patch.CorrectBool
	}
	if patch.CorrectText != nil {
		question.CorrectText = *patch.CorrectText
	}
	if patch.Points != nil {
		question.Points = *patch.Points
	}
}

// UpdateOption replaces one option of the matching question in place. Unknown
// question ids and out-of-range indices are silent no-ops, mirroring the
// editor's lenient contract.
func (s *quizEditorService) UpdateOption(quiz *models.QuizContent, questionID string, optionIndex int, value string) {
	question := findQuestion(quiz, questionID)
	if question == nil {
		s.logger.Debug("quiz editor: option update on missing question", zap.String("questionId", questionID))
		return
	}
	if optionIndex < 0 || optionIndex >= len(question.Options) {
		return
	}
	question.Options[optionIndex] = value
}

// RemoveQuestion deletes the matching question. Question ids are not
// positional, so nothing is renumbered; removing an already-removed id is a
// no-op.
func (s *quizEditorService) RemoveQuestion(quiz *models.QuizContent, questionID string) {
	for i := range quiz.Questions {
		if quiz.Questions[i].ID == questionID {
			quiz.Questions = append(quiz.Questions[:i], quiz.Questions[i+1:]...)
			s.logger.Debug("quiz editor: removed question", zap.String("questionId", questionID))
			return
		}
	}
}

func findQuestion(quiz *models.QuizContent, questionID string) *models.Question {
	for i := range quiz.Questions {
		if quiz.Questions[i].ID == questionID {
			return &quiz.Questions[i]
		}
	}
	return nil
}
