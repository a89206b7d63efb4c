package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/sarthakm19/product-catalog-service/models"
)

const (
	productCachePrefix     = "product:detail:"
	productListCachePrefix = "products:v:"
	cacheVersionKey        = "products:version"

	defaultCacheTTL = 5 * time.Minute
)

// cachedPage is the serialized form of one list-query result.
type cachedPage struct {
	Products []models.Product `json:"products"`
	Total    int64            `json:"total"`
}

// CacheManager is a read-through redis cache for product reads. List
// entries are keyed under a version counter; bumping the version on any
// write invalidates every cached page at once. A nil manager (or nil
// client) disables caching, every lookup is a miss and every write a no-op.
type CacheManager struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCacheManager(client *redis.Client) *CacheManager {
	if client == nil {
		return nil
	}
	return &CacheManager{redis: client, ttl: defaultCacheTTL}
}

func (cm *CacheManager) enabled() bool {
	return cm != nil && cm.redis != nil
}

// GetProduct returns the cached product for code, if any.
func (cm *CacheManager) GetProduct(ctx context.Context, code string) (*models.Product, bool) {
	if !cm.enabled() {
		return nil, false
	}

	data, err := cm.redis.Get(ctx, productCachePrefix+code).Result()
	if err != nil {
		return nil, false
	}

	var product models.Product
	if err := json.Unmarshal([]byte(data), &product); err != nil {
		zap.L().Warn("Failed to unmarshal cached product", zap.String("code", code), zap.Error(err))
		return nil, false
	}
	return &product, true
}

// SetProductAsync caches a product without blocking the request.
func (cm *CacheManager) SetProductAsync(product *models.Product) {
	if !cm.enabled() {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		data, err := json.Marshal(product)
		if err != nil {
			zap.L().Warn("Failed to marshal product for cache", zap.Error(err))
			return
		}
		if err := cm.redis.Set(ctx, productCachePrefix+product.Code, data, cm.ttl).Err(); err != nil {
			zap.L().Warn("Failed to cache product", zap.String("code", product.Code), zap.Error(err))
		}
	}()
}

// GetList returns a cached list page matching the query, if any.
func (cm *CacheManager) GetList(ctx context.Context, query ListQuery) ([]models.Product, int64, bool) {
	if !cm.enabled() {
		return nil, 0, false
	}

	version, err := cm.redis.Get(ctx, cacheVersionKey).Int64()
	if err != nil || version == 0 {
		return nil, 0, false
	}

	data, err := cm.redis.Get(ctx, cm.listKey(version, query)).Result()
	if err != nil {
		return nil, 0, false
	}

	var page cachedPage
	if err := json.Unmarshal([]byte(data), &page); err != nil {
		zap.L().Warn("Failed to unmarshal cached product list", zap.Error(err))
		return nil, 0, false
	}
	return page.Products, page.Total, true
}

// SetListAsync caches a list page without blocking the request.
func (cm *CacheManager) SetListAsync(query ListQuery, products []models.Product, total int64) {
	if !cm.enabled() {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		version, err := cm.redis.Get(ctx, cacheVersionKey).Int64()
		if err != nil || version == 0 {
			// No version yet: establish one so subsequent pages can cache.
			version, err = cm.redis.Incr(ctx, cacheVersionKey).Result()
			if err != nil {
				return
			}
		}

		data, err := json.Marshal(cachedPage{Products: products, Total: total})
		if err != nil {
			zap.L().Warn("Failed to marshal product list for cache", zap.Error(err))
			return
		}
		if err := cm.redis.Set(ctx, cm.listKey(version, query), data, cm.ttl).Err(); err != nil {
			zap.L().Warn("Failed to cache product list", zap.Error(err))
		}
	}()
}

// InvalidateProduct drops the detail entry for code and bumps the list
// version so all cached pages go stale.
func (cm *CacheManager) InvalidateProduct(ctx context.Context, code string) {
	if !cm.enabled() {
		return
	}

	if err := cm.redis.Incr(ctx, cacheVersionKey).Err(); err != nil {
		zap.L().Error("Failed to invalidate list cache", zap.Error(err))
	}
	if err := cm.redis.Del(ctx, productCachePrefix+code).Err(); err != nil {
		zap.L().Warn("Failed to drop cached product", zap.String("code", code), zap.Error(err))
	}
}

func (cm *CacheManager) listKey(version int64, query ListQuery) string {
	category := ""
	if query.CategoryCode != nil {
		category = *query.CategoryCode
	}
	stock := ""
	if query.InStock != nil {
		stock = fmt.Sprintf("%t", *query.InStock)
	}
	return fmt.Sprintf("%s%d:page:%d:size:%d:sort:%s:%t:cat:%s:stock:%s",
		productListCachePrefix, version, query.Page, query.Size,
		query.SortField, query.SortDesc, category, stock)
}
