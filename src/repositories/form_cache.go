package repositories

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Jafre0912/ReactNativeFORM/src/models"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CachedFormRepository is a read-through Redis cache in front of a
// FormRepository. Forms never change after creation, so cached entries
// are only evicted by TTL. Redis errors fall back to the wrapped store.
type CachedFormRepository struct {
	FormRepository
	rdb *redis.Client
	ttl time.Duration
}

func NewCachedFormRepository(inner FormRepository, rdb *redis.Client, ttl time.Duration) *CachedFormRepository {
	return &CachedFormRepository{FormRepository: inner, rdb: rdb, ttl: ttl}
}

func formCacheKey(id primitive.ObjectID) string {
	return "form:" + id.Hex()
}

func (r *CachedFormRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Form, error) {
	key := formCacheKey(id)

	data, err := r.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var form models.Form
		if err := bson.Unmarshal(data, &form); err == nil {
			return &form, nil
		}
		slog.Warn("discarding undecodable cached form", slog.String("formId", id.Hex()))
	case !errors.Is(err, redis.Nil):
		slog.Warn("form cache read failed", slog.String("formId", id.Hex()), slog.String("error", err.Error()))
	}

	form, err := r.FormRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := bson.Marshal(form); err == nil {
		if err := r.rdb.Set(ctx, key, data, r.ttl).Err(); err != nil {
			slog.Warn("form cache write failed", slog.String("formId", id.Hex()), slog.String("error", err.Error()))
		}
	}
	return form, nil
}
