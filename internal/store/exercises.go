package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/abhi911kumar/freecode-ExerciseTracker/internal/datefmt"
	"github.com/abhi911kumar/freecode-ExerciseTracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewExercise carries the raw fields of an add request before validation.
// Duration arrives as the request string so the store owns the numeric
// interpretation.
type NewExercise struct {
	UserID      string
	Username    string
	Description string
	Duration    string
	Date        string
}

// LogFilter narrows a user's exercise log. A zero-valued bound leaves that
// side of the date range open; a nil Limit returns every match.
type LogFilter struct {
	From  time.Time
	To    time.Time
	Limit *int
}

// ExerciseStore persists exercise entries.
type ExerciseStore struct {
	db *gorm.DB
}

// NewExerciseStore creates a new exercise store backed by db.
func NewExerciseStore(db *gorm.DB) *ExerciseStore {
	return &ExerciseStore{db: db}
}

// Create validates and persists one exercise entry. Duration must be a
// positive integer number of minutes. An empty date defaults to the current
// moment; an unparseable one is stored as the zero time and renders as
// "Invalid Date".
func (s *ExerciseStore) Create(ctx context.Context, in NewExercise) (*models.Exercise, error) {
	if in.Description == "" {
		return nil, &ValidationError{Field: "description"}
	}
	if in.Duration == "" {
		return nil, &ValidationError{Field: "duration"}
	}
	minutes, err := strconv.Atoi(in.Duration)
	if err != nil || minutes <= 0 {
		return nil, &ValidationError{Field: "duration"}
	}

	date := time.Now()
	if in.Date != "" {
		date = datefmt.Parse(in.Date)
	}

	entry := &models.Exercise{
		ID:          uuid.New().String(),
		Username:    in.Username,
		Description: in.Description,
		Duration:    minutes,
		UserID:      in.UserID,
		Date:        date,
	}

	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, fmt.Errorf("failed to create exercise: %w", err)
	}

	return entry, nil
}

// QueryByUser returns the entries belonging to userID that satisfy filter,
// ordered by date then by creation time so results are deterministic. Only
// the description, duration and date columns are selected.
func (s *ExerciseStore) QueryByUser(ctx context.Context, userID string, filter LogFilter) ([]models.Exercise, error) {
	q := s.db.WithContext(ctx).
		Select("description", "duration", "date").
		Where("user_id = ?", userID).
		Order("date ASC, created_at ASC")

	if !filter.From.IsZero() {
		q = q.Where("date >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		q = q.Where("date <= ?", filter.To)
	}
	if filter.Limit != nil {
		q = q.Limit(*filter.Limit)
	}

	var entries []models.Exercise
	if err := q.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to query exercises: %w", err)
	}
	return entries, nil
}
