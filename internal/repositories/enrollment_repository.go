package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/apper-canvas/skillbites-light-omni/internal/config"
	"github.com/apper-canvas/skillbites-light-omni/internal/models"
	"go.uber.org/zap"
)

type enrollmentRepository struct {
	delay  *storeDelay
	logger *zap.Logger
	clock  func() time.Time

	mu      sync.Mutex
	records []models.Enrollment
	lastID  int
}

// NewEnrollmentRepository creates a new in-memory enrollment store
func NewEnrollmentRepository(cfg config.StoreConfig, logger *zap.Logger) *enrollmentRepository {
	return &enrollmentRepository{
		delay:  newStoreDelay(cfg),
		logger: logger,
		clock:  time.Now,
	}
}

// Seed preloads the store with the given enrollments, keeping their identifiers
func (r *enrollmentRepository) Seed(enrollments []models.Enrollment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, enrollment := range enrollments {
		r.records = append(r.records, enrollment.Clone())
		if enrollment.ID > r.lastID {
			r.lastID = enrollment.ID
		}
	}
}

// GetAll retrieves a snapshot of every stored enrollment, in storage order.
// It never fails.
func (r *enrollmentRepository) GetAll(ctx context.Context) []models.Enrollment {
	r.delay.sleep()

	r.mu.Lock()
	defer r.mu.Unlock()

	enrollments := make([]models.Enrollment, len(r.records))
	for i, enrollment := range r.records {
		enrollments[i] = enrollment.Clone()
	}
	r.logger.Debug("enrollment store: get all", zap.Int("count", len(enrollments)))
	return enrollments
}

// GetByID retrieves a snapshot of the enrollment with the given id
func (r *enrollmentRepository) GetByID(ctx context.Context, id int) (*models.Enrollment, error) {
	r.delay.sleep()

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, enrollment := range r.records {
		if enrollment.ID == id {
			clone := enrollment.Clone()
			return &clone, nil
		}
	}
	r.logger.Debug("enrollment store: get by id missed", zap.Int("id", id))
	return nil, models.ErrEnrollmentNotFound
}

// GetByCourseID retrieves snapshots of the enrollments referencing the given
// course. A deleted course simply yields an empty result; the store does not
// enforce referential integrity.
func (r *enrollmentRepository) GetByCourseID(ctx context.Context, courseID int) []models.Enrollment {
	r.delay.sleep()

	r.mu.Lock()
	defer r.mu.Unlock()

	var enrollments []models.Enrollment
	for _, enrollment := range r.records {
		if enrollment.CourseID == courseID {
			enrollments = append(enrollments, enrollment.Clone())
		}
	}
	return enrollments
}

// Create stores a new enrollment and returns a snapshot of the stored record.
//
// Any identifier on the input is ignored; a fresh one is allocated and the
// enrollment timestamp is stamped. Creation never fails.
func (r *enrollmentRepository) Create(ctx context.Context, enrollment models.Enrollment) *models.Enrollment {
	r.delay.sleep()

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := enrollment.Clone()
	stored.ID = r.allocateID()
	stored.EnrolledAt = r.clock()

	r.records = append(r.records, stored)
	r.lastID = stored.ID
	r.logger.Info("enrollment store: created",
		zap.Int("id", stored.ID),
		zap.Int("courseId", stored.CourseID),
		zap.String("studentEmail", stored.StudentEmail),
	)

	clone := stored.Clone()
	return &clone
}

// Update merges the patch over the stored enrollment and returns a snapshot.
//
// Scalar fields patch individually; QuizScores is replaced wholesale when the
// patch carries it. The identifier cannot be changed.
func (r *enrollmentRepository) Update(ctx context.Context, id int, patch models.UpdateEnrollmentRequest) (*models.Enrollment, error) {
	r.delay.sleep()

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.records {
		if r.records[i].ID != id {
			continue
		}

		updated := r.records[i].Clone()
		if patch.CourseID != nil {
			updated.CourseID = *patch.CourseID
		}
		if patch.StudentEmail != "" {
			updated.StudentEmail = patch.StudentEmail
		}
		if patch.Progress != nil {
			updated.Progress = *patch.Progress
		}
		if patch.QuizScores != nil {
			scores := make(map[string]int, len(patch.QuizScores))
			for sectionID, score := range patch.QuizScores {
				scores[sectionID] = score
			}
			updated.QuizScores = scores
		}
		if patch.CompletedAt != nil {
			completedAt := *patch.CompletedAt
			updated.CompletedAt = &completedAt
		}
		updated.ID = id

		r.records[i] = updated
		r.logger.Info("enrollment store: updated", zap.Int("id", id))

		clone := updated.Clone()
		return &clone, nil
	}

	r.logger.Debug("enrollment store: update missed", zap.Int("id", id))
	return nil, models.ErrEnrollmentNotFound
}

// Delete removes the enrollment with the given id
func (r *enrollmentRepository) Delete(ctx context.Context, id int) error {
	r.delay.sleep()

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.records {
		if r.records[i].ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			r.logger.Info("enrollment store: deleted", zap.Int("id", id))
			return nil
		}
	}
	r.logger.Debug("enrollment store: delete missed", zap.Int("id", id))
	return models.ErrEnrollmentNotFound
}

// allocateID must be called with the mutex held
func (r *enrollmentRepository) allocateID() int {
	ids := make([]int, len(r.records))
	for i, enrollment := range r.records {
		ids[i] = enrollment.ID
	}
	return nextID(r.lastID, ids)
}
