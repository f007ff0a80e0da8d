package service

import (
	"context"
	"time"

	"github.com/ozdilmelih/FlagGame/internal/domain/entities"
	"github.com/ozdilmelih/FlagGame/internal/quiz"
)

// CountryRepository is the source of the country catalog.
type CountryRepository interface {
	GetAll(ctx context.Context) ([]entities.Country, error)
}

// SessionStore keeps one quiz engine per chat and serializes calls into it.
type SessionStore interface {
	WithSession(chatID int64, fn func(e *quiz.Engine) error) error
	WithOrCreateSession(chatID int64, newEngine func() *quiz.Engine, fn func(e *quiz.Engine) error) error
	EvictIdle(cutoff time.Time) int
}
