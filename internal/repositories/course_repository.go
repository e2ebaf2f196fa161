package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/apper-canvas/skillbites-light-omni/internal/config"
	"github.com/apper-canvas/skillbites-light-omni/internal/models"
	"go.uber.org/zap"
)

type courseRepository struct {
	delay  *storeDelay
	logger *zap.Logger
	clock  func() time.Time

	mu      sync.Mutex
	records []models.Course
	lastID  int
}

// NewCourseRepository creates a new in-memory course store
func NewCourseRepository(cfg config.StoreConfig, logger *zap.Logger) *courseRepository {
	return &courseRepository{
		delay:  newStoreDelay(cfg),
		logger: logger,
		clock:  time.Now,
	}
}

// Seed preloads the store with the given courses, keeping their identifiers.
// Intended for fixtures and tests, not part of the CRUD surface.
func (r *courseRepository) Seed(courses []models.Course) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, course := range courses {
		r.records = append(r.records, course.Clone())
		if course.ID > r.lastID {
			r.lastID = course.ID
		}
	}
}

// GetAll retrieves a snapshot of every stored course, in storage order.
// It never fails.
func (r *courseRepository) GetAll(ctx context.Context) []models.Course {
	r.delay.sleep()

	r.mu.Lock()
	defer r.mu.Unlock()

	courses := make([]models.Course, len(r.records))
	for i, course := range r.records {
		courses[i] = course.Clone()
	}
	r.logger.Debug("course store: get all", zap.Int("count", len(courses)))
	return courses
}

// GetByID retrieves a snapshot of the course with the given id
func (r *courseRepository) GetByID(ctx context.Context, id int) (*models.Course, error) {
	r.delay.sleep()

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, course := range r.records {
		if course.ID == id {
			clone := course.Clone()
			return &clone, nil
		}
	}
	r.logger.Debug("course store: get by id missed", zap.Int("id", id))
	return nil, models.ErrCourseNotFound
}

// Create stores a new course and returns a snapshot of the stored record.
//
// Any identifier on the input is ignored; a fresh one is allocated. Status
// defaults to draft when unset. Creation never fails.
func (r *courseRepository) Create(ctx context.Context, course models.Course) *models.Course {
	r.delay.sleep()

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := course.Clone()
	stored.ID = r.allocateID()
	if stored.Status == "" {
		stored.Status = models.CourseStatusDraft
	}
	now := r.clock()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	r.records = append(r.records, stored)
	r.lastID = stored.ID
	r.logger.Info("course store: created", zap.Int("id", stored.ID), zap.String("title", stored.Title))

	clone := stored.Clone()
	return &clone
}

// Update merges the patch over the stored course and returns a snapshot.
//
// Scalar fields patch individually; Sections is replaced wholesale when the
// patch carries it. The identifier cannot be changed.
func (r *courseRepository) Update(ctx context.Context, id int, patch models.UpdateCourseRequest) (*models.Course, error) {
	r.delay.sleep()

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.records {
		if r.records[i].ID != id {
			continue
		}

		updated := r.records[i].Clone()
		if patch.Title != "" {
			updated.Title = patch.Title
		}
		if patch.Description != "" {
			updated.Description = patch.Description
		}
		if patch.Price != nil {
			updated.Price = *patch.Price
		}
		if patch.Currency != "" {
			updated.Currency = patch.Currency
		}
		if patch.Category != "" {
			updated.Category = patch.Category
		}
		if patch.Thumbnail != "" {
			updated.Thumbnail = patch.Thumbnail
		}
		if patch.Status != "" {
			updated.Status = patch.Status
		}
		if patch.Sections != nil {
			sections := make([]models.Section, len(*patch.Sections))
			for j, section := range *patch.Sections {
				sections[j] = section.Clone()
			}
			updated.Sections = sections
		}
		if patch.EnrollmentCount != nil {
			updated.EnrollmentCount = *patch.EnrollmentCount
		}
		if patch.Rating != nil {
			updated.Rating = *patch.Rating
		}
		if patch.Duration != nil {
			updated.Duration = *patch.Duration
		}
		updated.ID = id
		updated.UpdatedAt = r.clock()

		r.records[i] = updated
		r.logger.Info("course store: updated", zap.Int("id", id))

		clone := updated.Clone()
		return &clone, nil
	}

	r.logger.Debug("course store: update missed", zap.Int("id", id))
	return nil, models.ErrCourseNotFound
}

// Delete removes the course with the given id
func (r *courseRepository) Delete(ctx context.Context, id int) error {
	r.delay.sleep()

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.records {
		if r.records[i].ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			r.logger.Info("course store: deleted", zap.Int("id", id))
			return nil
		}
	}
	r.logger.Debug("course store: delete missed", zap.Int("id", id))
	return models.ErrCourseNotFound
}

// allocateID must be called with the mutex held
func (r *courseRepository) allocateID() int {
	ids := make([]int, len(r.records))
	for i, course := range r.records {
		ids[i] = course.ID
	}
	return nextID(r.lastID, ids)
}
