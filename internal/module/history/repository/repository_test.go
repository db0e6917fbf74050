package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"simplexdss/internal/module/history/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.SolveRecord{}))
	return db
}

func sampleRecord(status string) *domain.SolveRecord {
	return &domain.SolveRecord{
		Status:     status,
		Iterations: 3,
		Request:    []byte(`{"problem_type":"maximization"}`),
		Result:     []byte(`{"status":"` + status + `"}`),
	}
}

func TestRepository_CreateAssignsID(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	record := sampleRecord("optimo")
	require.NoError(t, repo.Create(context.Background(), record))
	assert.NotEqual(t, uuid.Nil, record.ID)
	assert.False(t, record.CreatedAt.IsZero())
}

func TestRepository_GetByID(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	record := sampleRecord("optimo")
	v := 36.0
	record.OptimalValue = &v
	require.NoError(t, repo.Create(context.Background(), record))

	loaded, err := repo.GetByID(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Equal(t, "optimo", loaded.Status)
	require.NotNil(t, loaded.OptimalValue)
	assert.Equal(t, 36.0, *loaded.OptimalValue)
	assert.JSONEq(t, string(record.Request), string(loaded.Request))
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestRepository_ListPaginates(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(context.Background(), sampleRecord("optimo")))
	}

	records, total, err := repo.List(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, records, 2)

	records, _, err = repo.List(context.Background(), 3, 2)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestRepository_Delete(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	record := sampleRecord("infactible")
	require.NoError(t, repo.Create(context.Background(), record))
	require.NoError(t, repo.Delete(context.Background(), record.ID))

	_, err := repo.GetByID(context.Background(), record.ID)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	assert.ErrorIs(t, repo.Delete(context.Background(), record.ID), ErrRecordNotFound)
}
