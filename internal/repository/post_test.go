package repository

import (
	"context"
	"testing"

	"spotted/internal/cache"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepository_ListActiveOrdersDeterministically(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "posts" WHERE is_active = \$1 AND \(expires_at IS NULL OR expires_at > NOW\(\)\) AND "posts"\."deleted_at" IS NULL ORDER BY created_at DESC, id DESC`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "producer_id", "location_id", "is_active"}).
			AddRow(2, 1, 3, true).
			AddRow(1, 1, 3, true))
	mock.ExpectQuery(`SELECT \* FROM "places"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	posts, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, uint(2), posts[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_ListActiveServedFromCache(t *testing.T) {
	mr := miniredis.RunT(t)
	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { cache.SetClient(nil) })

	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "posts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "producer_id", "location_id", "is_active"}).
			AddRow(7, 1, 3, true))
	mock.ExpectQuery(`SELECT \* FROM "places"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	first, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)

	// No second DB expectation: the repeat read must hit the feed key.
	second, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, uint(7), second[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
