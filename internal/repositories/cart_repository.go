package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/canso2044/developer-store/internal/models"
	"github.com/canso2044/developer-store/internal/utils"
	"github.com/redis/go-redis/v9"
)

// CartRepository is the durable mirror of the in-session cart: one
// string key per session holding a JSON array of line items.
type CartRepository interface {
	Load(ctx context.Context, sessionID string) ([]models.CartItem, error)
	Save(ctx context.Context, sessionID string, items []models.CartItem) error
	Delete(ctx context.Context, sessionID string) error
}

type cartRepository struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

func NewCartRepo(client *redis.Client, keyPrefix string, ttl time.Duration) CartRepository {
	return &cartRepository{client: client, keyPrefix: keyPrefix, ttl: ttl}
}

func (r *cartRepository) key(sessionID string) string {
	return r.keyPrefix + ":" + sessionID
}

// Load reads the mirrored line items. A missing key yields an empty
// cart. A payload that fails to parse as a line-item array is deleted
// and treated as empty: corruption must never crash the store.
func (r *cartRepository) Load(ctx context.Context, sessionID string) ([]models.CartItem, error) {
	storeCtx, cancel := utils.WithStoreTimeout(ctx)
	defer cancel()

	key := r.key(sessionID)

	data, err := r.client.Get(storeCtx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get key %s from redis: %w", key, err)
	}

	var items []models.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		slog.Warn("Discarding corrupted cart data",
			slog.String("key", key),
			slog.String("error", err.Error()))

		if delErr := r.client.Del(storeCtx, key).Err(); delErr != nil {
			slog.Error("Failed to delete corrupted cart data",
				slog.String("key", key),
				slog.String("error", delErr.Error()))
		}

		return nil, nil
	}

	return items, nil
}

func (r *cartRepository) Save(ctx context.Context, sessionID string, items []models.CartItem) error {
	storeCtx, cancel := utils.WithStoreTimeout(ctx)
	defer cancel()

	if items == nil {
		items = []models.CartItem{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal cart items: %w", err)
	}

	if err := r.client.Set(storeCtx, r.key(sessionID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}

	return nil
}

func (r *cartRepository) Delete(ctx context.Context, sessionID string) error {
	storeCtx, cancel := utils.WithStoreTimeout(ctx)
	defer cancel()

	if err := r.client.Del(storeCtx, r.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}

	return nil
}
