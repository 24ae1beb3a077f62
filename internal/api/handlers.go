package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/abhi911kumar/freecode-ExerciseTracker/internal/datefmt"
	"github.com/abhi911kumar/freecode-ExerciseTracker/internal/models"
	"github.com/abhi911kumar/freecode-ExerciseTracker/internal/observability"
	"github.com/abhi911kumar/freecode-ExerciseTracker/internal/store"

	"github.com/gin-gonic/gin"
)

// UserStore is the user persistence surface the handlers depend on.
type UserStore interface {
	Create(ctx context.Context, username string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	ListAll(ctx context.Context) ([]models.User, error)
}

// ExerciseStore is the exercise persistence surface the handlers depend on.
type ExerciseStore interface {
	Create(ctx context.Context, in store.NewExercise) (*models.Exercise, error)
}

// LogBuilder answers filtered log queries.
type LogBuilder interface {
	BuildLog(ctx context.Context, userID, from, to string, limit *int) (*store.LogResult, error)
}

// Handler contains API handlers
type Handler struct {
	users     UserStore
	exercises ExerciseStore
	logs      LogBuilder
}

// NewHandler creates a new API handler
func NewHandler(users UserStore, exercises ExerciseStore, logs LogBuilder) *Handler {
	return &Handler{
		users:     users,
		exercises: exercises,
		logs:      logs,
	}
}

// Health reports process liveness
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type createUserRequest struct {
	Username string `form:"username" json:"username"`
}

// CreateUser registers a new user
func (h *Handler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.users.Create(c.Request.Context(), req.Username)
	if err != nil {
		writeError(c, err)
		return
	}

	observability.ObserveUserCreated()
	c.JSON(http.StatusOK, gin.H{
		"username": user.Username,
		"_id":      user.ID,
	})
}

type addExerciseRequest struct {
	UserID      string `form:"userId" json:"userId"`
	Description string `form:"description" json:"description"`
	Duration    string `form:"duration" json:"duration"`
	Date        string `form:"date" json:"date"`
}

// AddExercise logs an exercise entry against an existing user
func (h *Handler) AddExercise(c *gin.Context) {
	var req addExerciseRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.users.FindByID(c.Request.Context(), req.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// The add endpoint names the field _id, unlike the log endpoint
			c.String(http.StatusNotFound, "unknown _id")
			return
		}
		writeError(c, err)
		return
	}

	entry, err := h.exercises.Create(c.Request.Context(), store.NewExercise{
		UserID:      user.ID,
		Username:    user.Username,
		Description: req.Description,
		Duration:    req.Duration,
		Date:        req.Date,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	observability.ObserveExerciseCreated()
	c.JSON(http.StatusOK, gin.H{
		"username":    user.Username,
		"description": entry.Description,
		"duration":    entry.Duration,
		"_id":         user.ID,
		"date":        datefmt.Format(entry.Date),
	})
}

// ListUsers returns every registered user
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.users.ListAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetLog returns a user's exercise log, optionally narrowed by
// from/to/limit query parameters
func (h *Handler) GetLog(c *gin.Context) {
	userID := c.Query("userId")
	from := c.Query("from")
	to := c.Query("to")

	var limit *int
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = &n
		}
	}

	result, err := h.logs.BuildLog(c.Request.Context(), userID, from, to, limit)
	if err != nil {
		observability.ObserveLogQuery("error")
		writeError(c, err)
		return
	}

	observability.ObserveLogQuery("ok")
	c.JSON(http.StatusOK, result)
}

// writeError maps store failures onto plain-text responses. Bodies keep the
// exact text clients of the original service match on, but each failure
// carries a real status code: 400 for validation, 404 for missing users,
// 409 for taken usernames, 500 for everything else.
func writeError(c *gin.Context, err error) {
	var verr *store.ValidationError
	switch {
	case errors.As(err, &verr):
		c.String(http.StatusBadRequest, verr.Error())
	case errors.Is(err, store.ErrUsernameTaken):
		c.String(http.StatusConflict, err.Error())
	case errors.Is(err, store.ErrUserNotFound):
		c.String(http.StatusNotFound, err.Error())
	default:
		c.String(http.StatusInternalServerError, "Internal Server Error")
	}
}
