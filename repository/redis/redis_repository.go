package redis

import (
	"context"
	"encoding/json"
	"time"

	goredis "github.com/redis/go-redis/v9"

	redisclient "github.com/muhammadheryan/contact-manager/cmd/redis"
	"github.com/muhammadheryan/contact-manager/model"
)

const contactListKey = "contacts:list"

// Repository caches the contact listing. Every method degrades to a
// no-op/miss when the Redis client is not initialized, so callers can
// treat the cache as strictly optional.
type Repository interface {
	GetContactList(ctx context.Context) ([]model.ContactEntity, error)
	SetContactList(ctx context.Context, contacts []model.ContactEntity, ttl time.Duration) error
	InvalidateContactList(ctx context.Context) error
}

type redis struct{}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

// GetContactList returns the cached listing, or nil on a miss.
func (r *redis) GetContactList(ctx context.Context) ([]model.ContactEntity, error) {
	client := redisclient.Get()
	if client == nil {
		return nil, nil
	}

	raw, err := client.Get(ctx, contactListKey).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var contacts []model.ContactEntity
	if err := json.Unmarshal(raw, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

// SetContactList stores the listing with a TTL.
func (r *redis) SetContactList(ctx context.Context, contacts []model.ContactEntity, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}

	raw, err := json.Marshal(contacts)
	if err != nil {
		return err
	}
	return client.Set(ctx, contactListKey, raw, ttl).Err()
}

// InvalidateContactList drops the cached listing after a write.
func (r *redis) InvalidateContactList(ctx context.Context) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, contactListKey).Err()
}
