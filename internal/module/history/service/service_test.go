package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"simplexdss/internal/module/history/domain"
	"simplexdss/internal/module/history/dto"
	"simplexdss/internal/module/history/repository"
)

func setupService(t *testing.T) Service {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.SolveRecord{}))
	return NewService(repository.NewRepository(db), zap.NewNop())
}

func TestService_RecordAndGet(t *testing.T) {
	svc := setupService(t)

	v := 13.0
	err := svc.Record(context.Background(), &dto.CreateRecordInput{
		Status:       "optimo",
		OptimalValue: &v,
		Iterations:   4,
		Request:      []byte(`{"problem_type":"maximization"}`),
		Result:       []byte(`{"status":"optimo"}`),
	})
	require.NoError(t, err)

	summaries, total, err := svc.List(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, summaries, 1)
	assert.Equal(t, "optimo", summaries[0].Status)

	detail, err := svc.Get(context.Background(), summaries[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 4, detail.Iterations)
	assert.JSONEq(t, `{"status":"optimo"}`, string(detail.Result))
}

func TestService_ListClampsPagination(t *testing.T) {
	svc := setupService(t)

	require.NoError(t, svc.Record(context.Background(), &dto.CreateRecordInput{
		Status:  "no acotado",
		Request: []byte(`{}`),
		Result:  []byte(`{}`),
	}))

	// Out-of-range pagination falls back to the defaults instead of failing.
	summaries, total, err := svc.List(context.Background(), 0, 100000)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, summaries, 1)
}

func TestService_Delete(t *testing.T) {
	svc := setupService(t)

	require.NoError(t, svc.Record(context.Background(), &dto.CreateRecordInput{
		Status:  "infactible",
		Request: []byte(`{}`),
		Result:  []byte(`{}`),
	}))

	summaries, _, err := svc.List(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	require.NoError(t, svc.Delete(context.Background(), summaries[0].ID))

	_, err = svc.Get(context.Background(), summaries[0].ID)
	assert.ErrorIs(t, err, repository.ErrRecordNotFound)
}
