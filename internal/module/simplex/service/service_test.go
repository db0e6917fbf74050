package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"simplexdss/internal/module/simplex/domain"
	"simplexdss/internal/module/simplex/dto"
)

func boundedMaxRequest() *dto.SimplexRequest {
	return &dto.SimplexRequest{
		ProblemType: "maximization",
		C:           []float64{3, 5},
		LI:          [][]float64{{1, 0}, {0, 2}, {3, 2}},
		LD:          []float64{4, 12, 18},
		O:           []string{"<=", "<=", "<="},
	}
}

func TestService_SolveTabular(t *testing.T) {
	svc := NewService(NoopCache{}, zap.NewNop())

	resp, err := svc.SolveTabular(context.Background(), boundedMaxRequest())
	require.NoError(t, err)
	assert.Equal(t, "optimo", resp.Status)
	require.NotNil(t, resp.Solucion)
	assert.InDelta(t, 36.0, resp.Solucion.ValorOptimo, 1e-3)
	assert.NotEmpty(t, resp.Tablas)
}

func TestService_SolveTabular_InvalidInput(t *testing.T) {
	svc := NewService(NoopCache{}, zap.NewNop())

	req := boundedMaxRequest()
	req.LD = []float64{4}

	_, err := svc.SolveTabular(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDimensionMismatch)
}

func TestService_SolveBatch_PreservesOrder(t *testing.T) {
	svc := NewService(NoopCache{}, zap.NewNop())

	unbounded := &dto.SimplexRequest{
		ProblemType: "maximization",
		C:           []float64{2, 3},
		LI:          [][]float64{{1, -1}},
		LD:          []float64{2},
		O:           []string{"<="},
	}

	resp, err := svc.SolveBatch(context.Background(), &dto.BatchSolveRequest{
		Problems: []dto.SimplexRequest{*boundedMaxRequest(), *unbounded, *boundedMaxRequest()},
	})
	require.NoError(t, err)
	require.Len(t, resp.Results, 3)
	assert.Equal(t, "optimo", resp.Results[0].Status)
	assert.Equal(t, "no acotado", resp.Results[1].Status)
	assert.Equal(t, "optimo", resp.Results[2].Status)
}

// memoryCache records Set calls and replays them on Get.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string]*dto.SolveResponse
	hits    int
	sets    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string]*dto.SolveResponse)}
}

func (c *memoryCache) Get(ctx context.Context, key string) (*dto.SolveResponse, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	resp, ok := c.entries[key]
	if ok {
		c.hits++
	}
	return resp, ok
}

func (c *memoryCache) Set(ctx context.Context, key string, resp *dto.SolveResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = resp
	c.sets++
}

func TestService_SolveTabular_UsesCache(t *testing.T) {
	cache := newMemoryCache()
	svc := NewService(cache, zap.NewNop())

	first, err := svc.SolveTabular(context.Background(), boundedMaxRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)

	second, err := svc.SolveTabular(context.Background(), boundedMaxRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, cache.hits)
	assert.Equal(t, first.Solucion.ValorOptimo, second.Solucion.ValorOptimo)
}

func TestRequestKey_Deterministic(t *testing.T) {
	a, err := requestKey(boundedMaxRequest())
	require.NoError(t, err)
	b, err := requestKey(boundedMaxRequest())
	require.NoError(t, err)
	assert.Equal(t, a, b)

	other := boundedMaxRequest()
	other.C[0] = 4
	c, err := requestKey(other)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}
