package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kbenzi/trivia/internal/domain"
)

const (
	categoriesKey = "trivia:categories"
	categoriesTTL = 5 * time.Minute
)

// CategoryCache is a read-through Redis cache over a category repository.
// Categories are seed data and read-only through the API, so the cache
// needs no invalidation beyond its TTL. Any cache failure falls back to
// the underlying repository.
type CategoryCache struct {
	redis *redis.Client
	repo  domain.CategoryRepository
}

// NewCategoryCache creates a new category cache
func NewCategoryCache(redis *redis.Client, repo domain.CategoryRepository) *CategoryCache {
	return &CategoryCache{
		redis: redis,
		repo:  repo,
	}
}

// List retrieves all categories, from Redis when the entry is warm
func (c *CategoryCache) List(ctx context.Context) ([]domain.Category, error) {
	data, err := c.redis.Get(ctx, categoriesKey).Bytes()
	if err == nil {
		var categories []domain.Category
		if err := json.Unmarshal(data, &categories); err == nil {
			return categories, nil
		}
	}

	categories, err := c.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(categories); err == nil {
		c.redis.Set(ctx, categoriesKey, data, categoriesTTL)
	}

	return categories, nil
}
