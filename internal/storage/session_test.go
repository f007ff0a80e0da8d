package storage

import (
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozdilmelih/FlagGame/internal/domain/entities"
	"github.com/ozdilmelih/FlagGame/internal/quiz"
)

func newEngine() *quiz.Engine {
	return quiz.NewEngine(rand.New(rand.NewSource(1)))
}

func TestWithSession_NotFound(t *testing.T) {
	s := NewSessionStorage()

	err := s.WithSession(42, func(*quiz.Engine) error { return nil })
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestWithOrCreateSession_ReusesEngine(t *testing.T) {
	s := NewSessionStorage()

	var first, second *quiz.Engine
	require.NoError(t, s.WithOrCreateSession(1, newEngine, func(e *quiz.Engine) error {
		first = e
		return nil
	}))
	require.NoError(t, s.WithOrCreateSession(1, func() *quiz.Engine {
		t.Fatal("engine must not be recreated")
		return nil
	}, func(e *quiz.Engine) error {
		second = e
		return nil
	}))
	require.NoError(t, s.WithSession(1, func(e *quiz.Engine) error {
		assert.Same(t, first, e)
		return nil
	}))

	assert.Same(t, first, second)
	assert.Equal(t, 1, s.Len())

	s.Delete(1)
	assert.Equal(t, 0, s.Len())
}

func TestWithOrCreateSession_DropsEngineWhenFirstCallFails(t *testing.T) {
	s := NewSessionStorage()
	boom := errors.New("boom")

	err := s.WithOrCreateSession(1, newEngine, func(*quiz.Engine) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, s.Len())

	err = s.WithSession(1, func(*quiz.Engine) error { return nil })
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestWithOrCreateSession_KeepsExistingEngineOnError(t *testing.T) {
	s := NewSessionStorage()
	boom := errors.New("boom")

	require.NoError(t, s.WithOrCreateSession(1, newEngine, func(*quiz.Engine) error { return nil }))

	err := s.WithOrCreateSession(1, newEngine, func(*quiz.Engine) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, s.Len())
}

func TestEvictIdle(t *testing.T) {
	s := NewSessionStorage()
	now := time.Date(2024, 3, 18, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	require.NoError(t, s.WithOrCreateSession(1, newEngine, func(*quiz.Engine) error { return nil }))
	now = now.Add(time.Hour)
	require.NoError(t, s.WithOrCreateSession(2, newEngine, func(*quiz.Engine) error { return nil }))

	evicted := s.EvictIdle(now.Add(-30 * time.Minute))
	assert.Equal(t, 1, evicted)

	assert.ErrorIs(t, s.WithSession(1, func(*quiz.Engine) error { return nil }), ErrSessionNotFound)
	assert.NoError(t, s.WithSession(2, func(*quiz.Engine) error { return nil }))
}

func TestWithSession_Serialized(t *testing.T) {
	s := NewSessionStorage()
	countries := []entities.Country{{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}}
	require.NoError(t, s.WithOrCreateSession(1, newEngine, func(e *quiz.Engine) error {
		_, err := e.NewSession(countries)
		return err
	}))

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		answers int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.WithSession(1, func(e *quiz.Engine) error {
				if e.State().Phase != entities.PhaseAwaitingAnswer {
					return nil
				}
				if _, err := e.Answer(e.State().Choices.CorrectIndex); err != nil {
					return err
				}
				mu.Lock()
				answers++
				mu.Unlock()
				return nil
			})
		}()
	}
	wg.Wait()

	// Four countries allow exactly two rounds.
	assert.Equal(t, 2, answers)
	require.NoError(t, s.WithSession(1, func(e *quiz.Engine) error {
		assert.Equal(t, entities.PhaseGameOver, e.State().Phase)
		assert.Equal(t, 2, e.State().Score)
		return nil
	}))
}
