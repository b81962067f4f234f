package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	_ "github.com/lib/pq" // драйвер postgres для database/sql

	"github.com/InQaaaaGit/qr_route.git/internal/models"
)

// PostgresStorage реализует RouteStorage с использованием PostgreSQL
type PostgresStorage struct {
	db *sql.DB
}

// NewPostgresStorage подключается к базе и создает таблицу routes при необходимости
func NewPostgresStorage(ctx context.Context, dsn string) (*PostgresStorage, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			log.Printf("Failed to close DB connection after ping error: %v", closeErr)
		}
		return nil, fmt.Errorf("database connection check error: %w", err)
	}

	createTableSQL := `CREATE TABLE IF NOT EXISTS routes (` +
		`name VARCHAR(64) PRIMARY KEY,` +
		`destination TEXT NOT NULL` +
		`)`
	if _, err := db.ExecContext(ctx, createTableSQL); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			log.Printf("Failed to close DB connection after table creation error: %v", closeErr)
		}
		return nil, fmt.Errorf("table creation error: %w", err)
	}

	return &PostgresStorage{db: db}, nil
}

// Get получает адрес назначения по имени
func (ps *PostgresStorage) Get(ctx context.Context, name string) (string, error) {
	var destination string
	err := ps.db.QueryRowContext(ctx, "SELECT destination FROM routes WHERE name = $1", name).Scan(&destination)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrRouteNotFound
		}
		return "", fmt.Errorf("get route error: %w", err)
	}
	return destination, nil
}

// Put сохраняет маршрут, при совпадении имени заменяет адрес назначения
func (ps *PostgresStorage) Put(ctx context.Context, name, destination string) error {
	_, err := ps.db.ExecContext(ctx,
		"INSERT INTO routes (name, destination) VALUES ($1, $2) "+
			"ON CONFLICT (name) DO UPDATE SET destination = EXCLUDED.destination",
		name, destination)
	if err != nil {
		return fmt.Errorf("save route error: %w", err)
	}
	return nil
}

// Update меняет адрес существующего маршрута одним UPDATE
func (ps *PostgresStorage) Update(ctx context.Context, name, destination string) error {
	res, err := ps.db.ExecContext(ctx, "UPDATE routes SET destination = $2 WHERE name = $1", name, destination)
	if err != nil {
		return fmt.Errorf("update route error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update route error: %w", err)
	}
	if affected == 0 {
		return ErrRouteNotFound
	}
	return nil
}

// Delete удаляет маршрут
func (ps *PostgresStorage) Delete(ctx context.Context, name string) error {
	res, err := ps.db.ExecContext(ctx, "DELETE FROM routes WHERE name = $1", name)
	if err != nil {
		return fmt.Errorf("delete route error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete route error: %w", err)
	}
	if affected == 0 {
		return ErrRouteNotFound
	}
	return nil
}

// List возвращает все маршруты, отсортированные по имени
func (ps *PostgresStorage) List(ctx context.Context) ([]models.Route, error) {
	rows, err := ps.db.QueryContext(ctx, "SELECT name, destination FROM routes ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list routes error: %w", err)
	}
	defer rows.Close()

	routes := make([]models.Route, 0)
	for rows.Next() {
		var r models.Route
		if err := rows.Scan(&r.Name, &r.Destination); err != nil {
			return nil, fmt.Errorf("scan route error: %w", err)
		}
		routes = append(routes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list routes error: %w", err)
	}
	return routes, nil
}

// CheckConnection проверяет соединение с базой данных
func (ps *PostgresStorage) CheckConnection(ctx context.Context) error {
	return ps.db.PingContext(ctx)
}

// Close закрывает соединение с базой данных
func (ps *PostgresStorage) Close() error {
	return ps.db.Close()
}
