package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/jobly/internal/logger"
	"github.com/sbilibin2017/jobly/internal/models"
)

// CompanyCacheRepository caches company details in Redis.
type CompanyCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration of cached entries
}

func NewCompanyCacheRepository(client *redis.Client, expiration time.Duration) *CompanyCacheRepository {
	return &CompanyCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func companyKey(handle string) string {
	return fmt.Sprintf("company:%s", handle)
}

// Get returns the cached company, or nil on a miss.
func (r *CompanyCacheRepository) Get(ctx context.Context, handle string) (*models.CompanyDetail, error) {
	key := companyKey(handle)

	val, err := r.client.Get(ctx, key).Bytes()
	logger.Log.Infow("company cache get",
		"key", key,
		"hit", err == nil,
		"error", err,
	)
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var company models.CompanyDetail
	if err := json.Unmarshal(val, &company); err != nil {
		return nil, err
	}
	return &company, nil
}

// Set caches company under its handle.
func (r *CompanyCacheRepository) Set(ctx context.Context, company *models.CompanyDetail) error {
	val, err := json.Marshal(company)
	if err != nil {
		return err
	}

	key := companyKey(company.Handle)
	err = r.client.Set(ctx, key, val, r.exp).Err()

	logger.Log.Infow("company cache set",
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}

// Invalidate drops the cached entry of handle.
func (r *CompanyCacheRepository) Invalidate(ctx context.Context, handle string) error {
	key := companyKey(handle)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("company cache invalidate",
		"key", key,
		"result", "deleted",
		"error", err,
	)

	return err
}
