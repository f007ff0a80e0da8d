package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/ozdilmelih/FlagGame/internal/domain/entities"
)

var (
	ErrEmptyCatalog   = errors.New("country catalog is empty")
	ErrInvalidCountry = errors.New("invalid country")
)

// CountryRepository provides the country catalog loaded from a JSON file.
type CountryRepository struct {
	countries []entities.Country
}

// NewCountryRepository reads and validates the catalog at path.
func NewCountryRepository(path string) (*CountryRepository, error) {
	countries, err := loadCountries(path)
	if err != nil {
		return nil, err
	}

	return &CountryRepository{
		countries: countries,
	}, nil
}

// GetAll returns a copy of the catalog.
func (r *CountryRepository) GetAll(_ context.Context) ([]entities.Country, error) {
	out := make([]entities.Country, len(r.countries))
	copy(out, r.countries)
	return out, nil
}

func loadCountries(path string) ([]entities.Country, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var wrapper struct {
		Countries []entities.Country `json:"countries"`
	}
	if err = json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal countries JSON: %w", err)
	}

	if err := ValidateCatalog(wrapper.Countries); err != nil {
		return nil, err
	}

	return wrapper.Countries, nil
}

// ValidateCatalog checks that every country has a name, a two-letter code,
// and that names are unique.
func ValidateCatalog(countries []entities.Country) error {
	if len(countries) == 0 {
		return ErrEmptyCatalog
	}

	seen := make(map[string]struct{}, len(countries))
	for i, c := range countries {
		if c.Name == "" {
			return fmt.Errorf("%w: entry %d has no name", ErrInvalidCountry, i)
		}
		if len(c.Code) != 2 {
			return fmt.Errorf("%w: %s has code %q", ErrInvalidCountry, c.Name, c.Code)
		}
		if _, ok := seen[c.Name]; ok {
			return fmt.Errorf("%w: %s is listed twice", ErrInvalidCountry, c.Name)
		}
		seen[c.Name] = struct{}{}
	}

	return nil
}
