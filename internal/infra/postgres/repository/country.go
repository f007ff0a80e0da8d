package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ozdilmelih/FlagGame/internal/domain/entities"
	"github.com/ozdilmelih/FlagGame/internal/infra/postgres"
)

// CountryRepository reads the country catalog from the countries table.
type CountryRepository struct {
	db postgres.DBTX
}

// NewCountryRepository creates a new CountryRepository with the provided database handle.
func NewCountryRepository(db postgres.DBTX) *CountryRepository {
	return &CountryRepository{db: db}
}

// GetAll returns all enabled countries ordered by name.
func (r *CountryRepository) GetAll(ctx context.Context) ([]entities.Country, error) {
	query := `
		SELECT name, code
		FROM countries
		WHERE enabled
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query countries: %w", err)
	}
	defer rows.Close()

	var countries []entities.Country
	for rows.Next() {
		var c entities.Country
		if err := rows.Scan(&c.Name, &c.Code); err != nil {
			return nil, fmt.Errorf("scan country: %w", err)
		}
		countries = append(countries, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate countries: %w", err)
	}

	return countries, nil
}

// ReplaceAll disables every country and upserts the given ones as enabled.
// Run it inside a transaction so readers never see an empty catalog.
func (r *CountryRepository) ReplaceAll(ctx context.Context, tx pgx.Tx, countries []entities.Country) error {
	if _, err := tx.Exec(ctx, `UPDATE countries SET enabled = FALSE`); err != nil {
		return fmt.Errorf("disable countries: %w", err)
	}

	query := `
		INSERT INTO countries (name, code, enabled)
		VALUES ($1, $2, TRUE)
		ON CONFLICT (name) DO UPDATE SET
			code = EXCLUDED.code,
			enabled = TRUE
	`

	for _, c := range countries {
		if _, err := tx.Exec(ctx, query, c.Name, c.Code); err != nil {
			return fmt.Errorf("upsert country %s: %w", c.Name, err)
		}
	}

	return nil
}
