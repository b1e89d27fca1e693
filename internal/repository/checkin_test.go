package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckInRepository_GetVerifiedOverlapping(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCheckInRepository(db)
	ctx := context.Background()

	windowStart := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	windowEnd := time.Date(2026, 3, 1, 13, 30, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "check_ins" WHERE \(location_id = \$1 AND verified = \$2\) AND checked_in_at <= \$3 AND COALESCE\(checked_out_at, checked_in_at \+ INTERVAL '4 hours'\) >= \$4`).
		WithArgs(3, true, windowEnd, windowStart).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "location_id", "verified"}).
			AddRow(1, 10, 3, true).
			AddRow(2, 11, 3, true))

	checkIns, err := repo.GetVerifiedOverlapping(ctx, 3, windowStart, windowEnd)
	require.NoError(t, err)
	assert.Len(t, checkIns, 2)
	assert.Equal(t, uint(10), checkIns[0].UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckInRepository_GetOpenForUserAbsent(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCheckInRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "check_ins"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	checkIn, err := repo.GetOpenForUser(context.Background(), 4)
	assert.NoError(t, err)
	assert.Nil(t, checkIn)
	assert.NoError(t, mock.ExpectationsWereMet())
}
