package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/akozadaev/go_hotel_search/internal/models"
)

// PostgresStorage предоставляет справочники типов размещения и направлений из PostgreSQL.
type PostgresStorage struct {
	db *sql.DB // Подключение к базе данных PostgreSQL
}

// NewPostgresStorage создает новый экземпляр PostgresStorage и проверяет подключение к БД.
// DSN должен быть в формате: "host=... port=... user=... password=... dbname=... sslmode=..."
func NewPostgresStorage(ctx context.Context, dsn string) (*PostgresStorage, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return NewPostgresStorageFromDB(db), nil
}

// NewPostgresStorageFromDB оборачивает уже открытое подключение
func NewPostgresStorageFromDB(db *sql.DB) *PostgresStorage {
	return &PostgresStorage{db: db}
}

// Close закрывает подключение к базе данных PostgreSQL.
func (ps *PostgresStorage) Close() error {
	return ps.db.Close()
}

// GetAccommodationTypes возвращает все типы размещения, отсортированные по имени.
func (ps *PostgresStorage) GetAccommodationTypes(ctx context.Context) ([]models.AccommodationType, error) {
	query := `SELECT id, name, description, created_at, updated_at FROM accommodation_types ORDER BY name`

	rows, err := ps.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query accommodation types: %w", err)
	}
	defer rows.Close()

	types := make([]models.AccommodationType, 0)
	for rows.Next() {
		var at models.AccommodationType
		if err := rows.Scan(
			&at.ID,
			&at.Name,
			&at.Description,
			&at.CreatedAt,
			&at.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan accommodation type: %w", err)
		}
		types = append(types, at)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return types, nil
}

// GetDestinations возвращает направления, отсортированные по стране и имени.
func (ps *PostgresStorage) GetDestinations(ctx context.Context) ([]models.Destination, error) {
	query := `SELECT id, name, country, created_at, updated_at FROM destinations ORDER BY country, name`

	rows, err := ps.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query destinations: %w", err)
	}
	defer rows.Close()

	destinations := make([]models.Destination, 0)
	for rows.Next() {
		var d models.Destination
		if err := rows.Scan(
			&d.ID,
			&d.Name,
			&d.Country,
			&d.CreatedAt,
			&d.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan destination: %w", err)
		}
		destinations = append(destinations, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return destinations, nil
}
