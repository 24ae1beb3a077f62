package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhi911kumar/freecode-ExerciseTracker/internal/ident"
	"github.com/abhi911kumar/freecode-ExerciseTracker/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserStore persists user records.
type UserStore struct {
	db *gorm.DB
}

// NewUserStore creates a new user store backed by db.
func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Create registers username under a freshly generated id. The insert is
// atomic: a concurrent registration of the same username resolves at the
// unique index, not at a prior lookup, so exactly one of the writers wins.
func (s *UserStore) Create(ctx context.Context, username string) (*models.User, error) {
	if username == "" {
		return nil, &ValidationError{Field: "username"}
	}

	user := &models.User{
		ID:       ident.New(),
		Username: username,
	}

	res := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "username"}},
			DoNothing: true,
		}).
		Create(user)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to create user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrUsernameTaken
	}

	return user, nil
}

// FindByUsername returns the user with the exact username.
func (s *UserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user by username: %w", err)
	}
	return &user, nil
}

// FindByID returns the user with the given id.
func (s *UserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user by id: %w", err)
	}
	return &user, nil
}

// ListAll returns every registered user. No ordering is promised.
func (s *UserStore) ListAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
