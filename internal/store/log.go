package store

import (
	"context"

	"github.com/abhi911kumar/freecode-ExerciseTracker/internal/datefmt"
	"github.com/abhi911kumar/freecode-ExerciseTracker/internal/models"
)

// UserFinder and ExerciseQuerier are the store surfaces the log builder
// depends on, declared as interfaces so tests can substitute fakes.
type UserFinder interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

type ExerciseQuerier interface {
	QueryByUser(ctx context.Context, userID string, filter LogFilter) ([]models.Exercise, error)
}

// LogEntry is one row of a log response, its date already rendered.
type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// LogResult aggregates a log query: user identity, the echoed date range
// when one was requested, and the matching entries.
type LogResult struct {
	ID       string     `json:"_id"`
	Username string     `json:"username"`
	From     string     `json:"from,omitempty"`
	To       string     `json:"to,omitempty"`
	Count    int        `json:"count"`
	Log      []LogEntry `json:"log"`
}

// LogBuilder translates log requests into store queries and shapes the
// result for the API.
type LogBuilder struct {
	users     UserFinder
	exercises ExerciseQuerier
}

// NewLogBuilder creates a log builder over the given stores.
func NewLogBuilder(users UserFinder, exercises ExerciseQuerier) *LogBuilder {
	return &LogBuilder{users: users, exercises: exercises}
}

// BuildLog resolves userID, narrows the query by the optional from/to date
// strings and limit, and assembles the result. From and to are echoed back
// only when the request carried them; an unparseable bound is echoed as
// "Invalid Date" and leaves that side of the range open. A nil limit never
// truncates.
func (b *LogBuilder) BuildLog(ctx context.Context, userID, from, to string, limit *int) (*LogResult, error) {
	user, err := b.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	filter := LogFilter{Limit: limit}
	result := &LogResult{ID: user.ID, Username: user.Username}

	if from != "" {
		filter.From = datefmt.Parse(from)
		result.From = datefmt.Format(filter.From)
	}
	if to != "" {
		filter.To = datefmt.Parse(to)
		result.To = datefmt.Format(filter.To)
	}

	entries, err := b.exercises.QueryByUser(ctx, user.ID, filter)
	if err != nil {
		return nil, err
	}

	result.Count = len(entries)
	result.Log = make([]LogEntry, 0, len(entries))
	for _, e := range entries {
		result.Log = append(result.Log, LogEntry{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        datefmt.Format(e.Date),
		})
	}

	return result, nil
}
