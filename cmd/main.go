package main

import (
	"context"
	"log"

	"github.com/apper-canvas/skillbites-light-omni/internal/config"
	"github.com/apper-canvas/skillbites-light-omni/internal/logger"
	"github.com/apper-canvas/skillbites-light-omni/internal/models"
	"github.com/apper-canvas/skillbites-light-omni/internal/repositories"
	"github.com/apper-canvas/skillbites-light-omni/internal/services"
	"go.uber.org/zap"
)

// main wires the authoring core together and walks through a scripted
// authoring session in place of the builder UI: compose a draft course,
// edit a quiz, save it through the mock backend, patch it, and read back
// the catalog.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting SkillBites authoring sandbox")

	// Initialize stores with the demo fixtures
	courseRepo := repositories.NewCourseRepository(cfg.Store, logger.Logger)
	courseRepo.Seed(repositories.SeedCourses())
	enrollmentRepo := repositories.NewEnrollmentRepository(cfg.Store, logger.Logger)
	enrollmentRepo.Seed(repositories.SeedEnrollments())

	// Initialize services
	metrics := services.NewCourseMetricsService()
	builder := services.NewCourseBuilderService(metrics, logger.Logger)
	quizEditor := services.NewQuizEditorService(logger.Logger)

	ctx := context.Background()

	// Compose a new course draft
	draft := models.Course{
		Title:       "Go for Web Developers",
		Description: "A practical introduction to building backends in Go.",
		Price:       89.99,
		Currency:    models.CurrencyUSD,
		Category:    "Development",
	}

	intro, err := builder.NewSection(&draft, models.SectionTypeVideo)
	if err != nil {
		logger.Logger.Fatal("Failed to create video section", zap.Error(err))
	}
	intro.Title = "Why Go?"
	intro.Video.URL = "https://example.com/why-go.mp4"
	intro.Video.DurationSeconds = 540
	builder.CommitSection(&draft, intro)

	handout, err := builder.NewSection(&draft, models.SectionTypeDocument)
	if err != nil {
		logger.Logger.Fatal("Failed to create document section", zap.Error(err))
	}
	handout.Title = "Setup Guide"
	handout.Document.URL = "https://example.com/setup.pdf"
	handout.Document.Pages = 12
	handout.Document.SizeMB = 1.8
	builder.CommitSection(&draft, handout)

	quizSection, err := builder.NewSection(&draft, models.SectionTypeQuiz)
	if err != nil {
		logger.Logger.Fatal("Failed to create quiz section", zap.Error(err))
	}
	quizSection.Title = "Basics Check"

	// Author a quiz question
	question := quizEditor.AddQuestion(quizSection.Quiz)
	text := "Which keyword starts a goroutine?"
	quizEditor.UpdateQuestion(quizSection.Quiz, question.ID, models.UpdateQuestionRequest{Text: &text})
	quizEditor.UpdateOption(quizSection.Quiz, question.ID, 0, "go")
	quizEditor.UpdateOption(quizSection.Quiz, question.ID, 1, "run")
	quizEditor.UpdateOption(quizSection.Quiz, question.ID, 2, "spawn")
	quizEditor.UpdateOption(quizSection.Quiz, question.ID, 3, "func")
	builder.CommitSection(&draft, quizSection)

	// Move the handout behind the quiz
	if err := builder.Reorder(&draft, 1, 2); err != nil {
		logger.Logger.Fatal("Failed to reorder sections", zap.Error(err))
	}

	// Finalize and save
	builder.FinalizeDraft(&draft)
	saved := courseRepo.Create(ctx, draft)
	logger.Logger.Info("Draft saved",
		zap.Int("id", saved.ID),
		zap.Int("sections", metrics.SectionCount(saved)),
		zap.Int("durationMinutes", saved.Duration),
		zap.Int("displayMinutes", metrics.DisplayDurationMinutes(saved)),
	)

	// Publish it through a partial update
	published, err := courseRepo.Update(ctx, saved.ID, models.UpdateCourseRequest{
		Status: models.CourseStatusPublished,
	})
	if err != nil {
		logger.Logger.Fatal("Failed to publish course", zap.Error(err))
	}
	logger.Logger.Info("Course published", zap.Int("id", published.ID), zap.String("status", string(published.Status)))

	// Read back the catalog, filtering enrollments whose course is gone
	courses := courseRepo.GetAll(ctx)
	known := make(map[int]bool, len(courses))
	for _, course := range courses {
		known[course.ID] = true
	}
	active := 0
	for _, enrollment := range enrollmentRepo.GetAll(ctx) {
		if known[enrollment.CourseID] {
			active++
		}
	}
	logger.Logger.Info("Catalog state",
		zap.Int("courses", len(courses)),
		zap.Int("activeEnrollments", active),
	)
}
