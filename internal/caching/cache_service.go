package caching

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"agrihub/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type CacheService interface {
	// Inventory caching
	GetInventoryItem(ctx context.Context, orgID, itemID uuid.UUID) (*models.InventoryItem, error)
	SetInventoryItem(ctx context.Context, orgID uuid.UUID, item *models.InventoryItem, ttl time.Duration) error
	DeleteInventoryItem(ctx context.Context, orgID, itemID uuid.UUID) error

	// Structure caching
	GetStructure(ctx context.Context, orgID, structureID uuid.UUID) (*models.Structure, error)
	SetStructure(ctx context.Context, orgID uuid.UUID, structure *models.Structure, ttl time.Duration) error
	DeleteStructure(ctx context.Context, orgID, structureID uuid.UUID) error

	// Cache invalidation
	InvalidateOrganizationCache(ctx context.Context, orgID uuid.UUID) error
	InvalidateAllCache(ctx context.Context) error
}

type redisCacheService struct {
	client *redis.Client
}

// NewRedisClient builds a redis client, accepting either host:port or a
// redis:// URL for the address. Connectivity problems are logged, not
// fatal; callers degrade to uncached reads.
func NewRedisClient(addr, password string, db int) *redis.Client {
	parsedAddr := addr
	if hostPort := strings.TrimPrefix(strings.TrimPrefix(addr, "redis://"), "rediss://"); hostPort != addr {
		parsedAddr = hostPort
	}

	client := redis.NewClient(&redis.Options{
		Addr:     parsedAddr,
		Password: password,
		DB:       db,
	})

	if pingErr := client.Ping(context.Background()).Err(); pingErr != nil {
		log.Printf("WARN: redis ping failed on initialization: %v (address: %s)", pingErr, parsedAddr)
	}
	return client
}

func NewRedisCacheService(client *redis.Client) CacheService {
	return &redisCacheService{client: client}
}

func (r *redisCacheService) GetInventoryItem(ctx context.Context, orgID, itemID uuid.UUID) (*models.InventoryItem, error) {
	key := fmt.Sprintf("agrihub:inventory:%s:%s", orgID.String(), itemID.String())
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var item models.InventoryItem
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *redisCacheService) SetInventoryItem(ctx context.Context, orgID uuid.UUID, item *models.InventoryItem, ttl time.Duration) error {
	key := fmt.Sprintf("agrihub:inventory:%s:%s", orgID.String(), item.ID.String())
	data, err := json.Marshal(item)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, ttl).Err()
}

func (r *redisCacheService) DeleteInventoryItem(ctx context.Context, orgID, itemID uuid.UUID) error {
	key := fmt.Sprintf("agrihub:inventory:%s:%s", orgID.String(), itemID.String())
	return r.client.Del(ctx, key).Err()
}

func (r *redisCacheService) GetStructure(ctx context.Context, orgID, structureID uuid.UUID) (*models.Structure, error) {
	key := fmt.Sprintf("agrihub:structure:%s:%s", orgID.String(), structureID.String())
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var structure models.Structure
	if err := json.Unmarshal(data, &structure); err != nil {
		return nil, err
	}
	return &structure, nil
}

func (r *redisCacheService) SetStructure(ctx context.Context, orgID uuid.UUID, structure *models.Structure, ttl time.Duration) error {
	key := fmt.Sprintf("agrihub:structure:%s:%s", orgID.String(), structure.ID.String())
	data, err := json.Marshal(structure)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, ttl).Err()
}

func (r *redisCacheService) DeleteStructure(ctx context.Context, orgID, structureID uuid.UUID) error {
	key := fmt.Sprintf("agrihub:structure:%s:%s", orgID.String(), structureID.String())
	return r.client.Del(ctx, key).Err()
}

func (r *redisCacheService) InvalidateOrganizationCache(ctx context.Context, orgID uuid.UUID) error {
	pattern := fmt.Sprintf("agrihub:*:%s:*", orgID.String())
	keys, err := r.client.Keys(ctx, pattern).Result()
	if err != nil {
		return err
	}

	if len(keys) > 0 {
		return r.client.Del(ctx, keys...).Err()
	}
	return nil
}

func (r *redisCacheService) InvalidateAllCache(ctx context.Context) error {
	keys, err := r.client.Keys(ctx, "agrihub:*").Result()
	if err != nil {
		return err
	}

	if len(keys) > 0 {
		return r.client.Del(ctx, keys...).Err()
	}
	return nil
}
