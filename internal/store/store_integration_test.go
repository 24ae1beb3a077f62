//go:build integration

package store

import (
	"context"
	"testing"
	"time"

	"github.com/abhi911kumar/freecode-ExerciseTracker/internal/models"

	"github.com/stretchr/testify/require"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDatabase(t *testing.T) *gorm.DB {
	ctx := context.Background()

	pg, err := postgrescontainer.RunContainer(ctx,
		postgrescontainer.WithDatabase("exercise_tracker"),
		postgrescontainer.WithUsername("tracker"),
		postgrescontainer.WithPassword("tracker"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	connStr, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	var db *gorm.DB
	require.Eventually(t, func() bool {
		db, err = gorm.Open(postgres.Open(connStr), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		return err == nil
	}, 30*time.Second, time.Second, "database never became reachable")

	require.NoError(t, models.Migrate(db))
	return db
}

func TestUserStoreCreateIsAtomicallyUnique(t *testing.T) {
	db := setupDatabase(t)
	users := NewUserStore(db)
	ctx := context.Background()

	first, err := users.Create(ctx, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	_, err = users.Create(ctx, "alice")
	require.ErrorIs(t, err, ErrUsernameTaken)

	all, err := users.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1, "duplicate registration must leave exactly one user")

	found, err := users.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, first.ID, found.ID)

	_, err = users.FindByID(ctx, "nosuchid")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestExerciseStoreCreateValidation(t *testing.T) {
	db := setupDatabase(t)
	exercises := NewExerciseStore(db)
	ctx := context.Background()

	var verr *ValidationError

	_, err := exercises.Create(ctx, NewExercise{UserID: "u1", Username: "alice", Duration: "30"})
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "description", verr.Field)

	_, err = exercises.Create(ctx, NewExercise{UserID: "u1", Username: "alice", Description: "run"})
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "duration", verr.Field)

	_, err = exercises.Create(ctx, NewExercise{UserID: "u1", Username: "alice", Description: "run", Duration: "soon"})
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "duration", verr.Field)

	var count int64
	require.NoError(t, db.Model(&models.Exercise{}).Count(&count).Error)
	require.Zero(t, count, "rejected requests must not persist entries")
}

func TestExerciseStoreQueryByUser(t *testing.T) {
	db := setupDatabase(t)
	users := NewUserStore(db)
	exercises := NewExerciseStore(db)
	ctx := context.Background()

	alice, err := users.Create(ctx, "alice")
	require.NoError(t, err)
	bob, err := users.Create(ctx, "bob")
	require.NoError(t, err)

	dates := []string{"2023-01-02", "2023-02-03", "2023-03-04"}
	for _, d := range dates {
		_, err := exercises.Create(ctx, NewExercise{
			UserID:      alice.ID,
			Username:    alice.Username,
			Description: "run " + d,
			Duration:    "30",
			Date:        d,
		})
		require.NoError(t, err)
	}
	_, err = exercises.Create(ctx, NewExercise{
		UserID:      bob.ID,
		Username:    bob.Username,
		Description: "swim",
		Duration:    "45",
		Date:        "2023-02-03",
	})
	require.NoError(t, err)

	// No filters returns every entry for the user, date ascending
	all, err := exercises.QueryByUser(ctx, alice.ID, LogFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "run 2023-01-02", all[0].Description)
	require.Equal(t, "run 2023-03-04", all[2].Description)

	from := time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC)

	fromOnly, err := exercises.QueryByUser(ctx, alice.ID, LogFilter{From: from})
	require.NoError(t, err)
	require.Len(t, fromOnly, 2)

	toOnly, err := exercises.QueryByUser(ctx, alice.ID, LogFilter{To: to})
	require.NoError(t, err)
	require.Len(t, toOnly, 2)

	// A closed range is a subset of either single-bound result
	ranged, err := exercises.QueryByUser(ctx, alice.ID, LogFilter{From: from, To: to})
	require.NoError(t, err)
	require.Len(t, ranged, 1)
	require.Equal(t, "run 2023-02-03", ranged[0].Description)

	limit := 2
	capped, err := exercises.QueryByUser(ctx, alice.ID, LogFilter{Limit: &limit})
	require.NoError(t, err)
	require.Len(t, capped, 2)
}
