package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/InQaaaaGit/qr_route.git/internal/models"
)

// routesHashKey ключ хеша, в котором хранятся все маршруты
const routesHashKey = "qrroute:routes"

// updateIfExists записывает поле, только если оно уже есть в хеше.
// Возвращает 0, если поля нет.
var updateIfExists = redis.NewScript(`
if redis.call("HEXISTS", KEYS[1], ARGV[1]) == 0 then
	return 0
end
redis.call("HSET", KEYS[1], ARGV[1], ARGV[2])
return 1
`)

// RedisStorage реализует RouteStorage поверх Redis.
// Используется, когда несколько экземпляров сервиса должны разделять маршруты.
type RedisStorage struct {
	client *redis.Client
}

// NewRedisStorage подключается к Redis по URL вида redis://host:port/db
func NewRedisStorage(ctx context.Context, redisURL string) (*RedisStorage, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return NewRedisStorageFromClient(client), nil
}

// NewRedisStorageFromClient оборачивает уже созданный клиент
func NewRedisStorageFromClient(client *redis.Client) *RedisStorage {
	return &RedisStorage{client: client}
}

// Get получает адрес назначения по имени
func (rs *RedisStorage) Get(ctx context.Context, name string) (string, error) {
	destination, err := rs.client.HGet(ctx, routesHashKey, name).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrRouteNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get route error: %w", err)
	}
	return destination, nil
}

// Put сохраняет маршрут
func (rs *RedisStorage) Put(ctx context.Context, name, destination string) error {
	if err := rs.client.HSet(ctx, routesHashKey, name, destination).Err(); err != nil {
		return fmt.Errorf("save route error: %w", err)
	}
	return nil
}

// Update меняет адрес существующего маршрута; проверка и запись выполняются одним скриптом
func (rs *RedisStorage) Update(ctx context.Context, name, destination string) error {
	updated, err := updateIfExists.Run(ctx, rs.client, []string{routesHashKey}, name, destination).Int()
	if err != nil {
		return fmt.Errorf("update route error: %w", err)
	}
	if updated == 0 {
		return ErrRouteNotFound
	}
	return nil
}

// Delete удаляет маршрут; HDEL атомарно сообщает, было ли поле
func (rs *RedisStorage) Delete(ctx context.Context, name string) error {
	removed, err := rs.client.HDel(ctx, routesHashKey, name).Result()
	if err != nil {
		return fmt.Errorf("delete route error: %w", err)
	}
	if removed == 0 {
		return ErrRouteNotFound
	}
	return nil
}

// List возвращает все маршруты, отсортированные по имени
func (rs *RedisStorage) List(ctx context.Context) ([]models.Route, error) {
	all, err := rs.client.HGetAll(ctx, routesHashKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list routes error: %w", err)
	}
	return routesFromMap(all), nil
}

// CheckConnection проверяет соединение с Redis
func (rs *RedisStorage) CheckConnection(ctx context.Context) error {
	return rs.client.Ping(ctx).Err()
}

// Close закрывает соединение с Redis
func (rs *RedisStorage) Close() error {
	return rs.client.Close()
}
