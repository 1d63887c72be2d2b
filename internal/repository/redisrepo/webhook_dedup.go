// Package redisrepo хранилище в Redis для дедупликации уведомлений платежного шлюза.
package redisrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultDedupTTL = 24 * time.Hour
	keyPrefix       = "webhook:"
)

// Cmdable часть redis.Cmdable, используемая дедупликацией.
type Cmdable interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// WebhookDedup отмечает обработанные уведомления по x-request-id.
type WebhookDedup struct {
	client Cmdable
	ttl    time.Duration
}

func NewWebhookDedup(client Cmdable, ttl time.Duration) *WebhookDedup {
	if ttl <= 0 {
		ttl = DefaultDedupTTL
	}
	return &WebhookDedup{client: client, ttl: ttl}
}

// Acquire атомарно занимает requestID. Возвращает false, если уведомление с таким id уже обрабатывалось.
func (d *WebhookDedup) Acquire(ctx context.Context, requestID string) (bool, error) {
	ok, err := d.client.SetNX(ctx, key(requestID), time.Now().Unix(), d.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("acquire webhook `%s`: %w", requestID, err)
	}
	return ok, nil
}

// Release освобождает requestID, чтобы повторная доставка уведомления была обработана.
func (d *WebhookDedup) Release(ctx context.Context, requestID string) error {
	if err := d.client.Del(ctx, key(requestID)).Err(); err != nil {
		return fmt.Errorf("release webhook `%s`: %w", requestID, err)
	}
	return nil
}

// NoopDedup используется без Redis: каждое уведомление обрабатывается, идемпотентность обеспечивает
// условный переход заказа.
type NoopDedup struct{}

func (NoopDedup) Acquire(_ context.Context, _ string) (bool, error) { return true, nil }

func (NoopDedup) Release(_ context.Context, _ string) error { return nil }

// Connect создает клиент Redis и проверяет соединение.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis %s: %w", addr, err)
	}
	return client, nil
}

func key(requestID string) string {
	return keyPrefix + requestID
}
