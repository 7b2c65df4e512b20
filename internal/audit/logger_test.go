package audit

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestLogger_Log(t *testing.T) {
	db, mock := newMockDB(t)
	l := New(db)

	mock.ExpectQuery(`INSERT INTO "audit_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	uid := uint(3)
	err := l.Log(context.Background(), Event{
		UserID:   &uid,
		Action:   "cut_created",
		Entity:   "cut",
		Metadata: map[string]any{"amount": 20000},
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogger_List(t *testing.T) {
	db, mock := newMockDB(t)
	l := New(db)

	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "audit_logs" WHERE action = \$1`).
		WithArgs("cut_created").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectQuery(`SELECT \* FROM "audit_logs" WHERE action = \$1 ORDER BY created_at DESC`).
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "user_id", "action", "entity", "entity_id", "metadata", "created_at"}).
				AddRow(7, 3, "cut_created", "cut", 11, `{"amount":20000}`, now),
		)

	page, err := l.List(context.Background(), Query{Action: "cut_created", Limit: 500})

	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, defaultPageSize, page.Limit)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "cut_created", page.Data[0].Action)
	require.NotNil(t, page.Data[0].EntityID)
	assert.Equal(t, uint(11), *page.Data[0].EntityID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
