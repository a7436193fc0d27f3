package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domainErrors "github.com/ecologicaleaving/wikigaialab/internal/domain/errors"
	"github.com/ecologicaleaving/wikigaialab/internal/domain/model"
)

const (
	lockProfileSQL  = `SELECT "id","reputation_score" FROM "user_profiles" WHERE id = \$1 .*FOR UPDATE`
	clampedScoreSQL = `UPDATE "user_profiles" SET "reputation_score"=CASE WHEN reputation_score \+ \$1 < 0 THEN 0 ELSE reputation_score \+ \$2 END`
	insertDeltaSQL  = `INSERT INTO "user_reputation_history"`
	readScoreSQL    = `SELECT "?reputation_score"? FROM "user_profiles" WHERE id = \$1`
)

func TestReputationRepository_ApplyDeltas(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("negative delta past zero uses the clamped update", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewReputationRepository(db, zap.NewNop())

		mock.ExpectBegin()
		mock.ExpectQuery(lockProfileSQL).
			WillReturnRows(sqlmock.NewRows([]string{"id", "reputation_score"}).AddRow(userID.String(), 30))
		mock.ExpectExec(clampedScoreSQL).
			WithArgs(-50, -50, sqlmock.AnyArg(), userID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(insertDeltaSQL).WillReturnRows(idRows(1))
		mock.ExpectQuery(readScoreSQL).
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{"reputation_score"}).AddRow(0))
		mock.ExpectCommit()

		before, after, err := repo.ApplyDeltas(ctx, userID, []*model.UserReputationHistory{
			{UserID: userID, PointsChange: -50, Reason: model.ReasonManualAdjustment},
		})

		require.NoError(t, err)
		assert.Equal(t, 30, before)
		assert.Equal(t, 0, after)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("every delta is clamped and logged", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewReputationRepository(db, zap.NewNop())

		mock.ExpectBegin()
		mock.ExpectQuery(lockProfileSQL).
			WillReturnRows(sqlmock.NewRows([]string{"id", "reputation_score"}).AddRow(userID.String(), 90))
		mock.ExpectExec(clampedScoreSQL).
			WithArgs(10, 10, sqlmock.AnyArg(), userID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(clampedScoreSQL).
			WithArgs(25, 25, sqlmock.AnyArg(), userID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(insertDeltaSQL).WillReturnRows(idRows(2))
		mock.ExpectQuery(readScoreSQL).
			WillReturnRows(sqlmock.NewRows([]string{"reputation_score"}).AddRow(125))
		mock.ExpectCommit()

		before, after, err := repo.ApplyDeltas(ctx, userID, []*model.UserReputationHistory{
			{UserID: userID, PointsChange: 10, Reason: model.ReasonAchievementEarned},
			{UserID: userID, PointsChange: 25, Reason: model.ReasonAchievementEarned},
		})

		require.NoError(t, err)
		assert.Equal(t, 90, before)
		assert.Equal(t, 125, after)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing profile rolls back", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewReputationRepository(db, zap.NewNop())

		mock.ExpectBegin()
		mock.ExpectQuery(lockProfileSQL).WillReturnRows(sqlmock.NewRows([]string{"id", "reputation_score"}))
		mock.ExpectRollback()

		_, _, err := repo.ApplyDeltas(ctx, userID, []*model.UserReputationHistory{
			{UserID: userID, PointsChange: 5, Reason: model.ReasonManualAdjustment},
		})

		assert.ErrorIs(t, err, domainErrors.ErrUserNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
