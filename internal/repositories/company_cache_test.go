package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/jobly/internal/logger"
	"github.com/sbilibin2017/jobly/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestCompanyCacheRepository(t *testing.T) {
	ctx := context.Background()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	repo := NewCompanyCacheRepository(rdb, time.Minute)

	n := 5
	company := &models.CompanyDetail{
		Company: models.Company{Handle: "acme", Name: "Acme", NumEmployees: &n},
		Jobs: []models.Job{
			{ID: 1, Title: "Engineer", Salary: 100, Equity: 0.1, CompanyHandle: "acme", DatePosted: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)},
		},
	}

	t.Run("miss returns nil", func(t *testing.T) {
		got, err := repo.Get(ctx, "acme")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, company))

		got, err := repo.Get(ctx, "acme")
		require.NoError(t, err)
		assert.Equal(t, company, got)
		assert.True(t, mr.Exists("company:acme"))
	})

	t.Run("entries expire", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, company))
		mr.FastForward(2 * time.Minute)

		got, err := repo.Get(ctx, "acme")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("invalidate", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, company))
		require.NoError(t, repo.Invalidate(ctx, "acme"))

		got, err := repo.Get(ctx, "acme")
		require.NoError(t, err)
		assert.Nil(t, got)

		assert.NoError(t, repo.Invalidate(ctx, "missing"))
	})

	t.Run("corrupt entry is an error", func(t *testing.T) {
		require.NoError(t, mr.Set("company:bad", "{not json"))
		_, err := repo.Get(ctx, "bad")
		assert.Error(t, err)
	})
}

func TestCompanyCacheRepository_Logs(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	old := logger.Log
	logger.Log = zap.New(core).Sugar()
	t.Cleanup(func() { logger.Log = old })

	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	repo := NewCompanyCacheRepository(rdb, time.Minute)

	require.NoError(t, repo.Set(ctx, &models.CompanyDetail{Company: models.Company{Handle: "acme", Name: "Acme"}}))
	_, err := repo.Get(ctx, "acme")
	require.NoError(t, err)
	require.NoError(t, repo.Invalidate(ctx, "acme"))

	entries := logs.All()
	require.Len(t, entries, 3)
	for i, msg := range []string{"company cache set", "company cache get", "company cache invalidate"} {
		assert.Equal(t, msg, entries[i].Message)
		fields := entries[i].ContextMap()
		assert.Equal(t, "company:acme", fields["key"])
		assert.NotContains(t, fields, "ignored")
	}
	assert.Equal(t, true, entries[1].ContextMap()["hit"])
}
